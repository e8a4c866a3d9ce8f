// CLAUDE:SUMMARY Context keys shared across transports (request id, transport tag).
// Package kit holds the glue shared by atelier's transports: request-scoped
// context keys and MCP tool registration.
package kit

import "context"

type contextKey string

const (
	// TransportKey tags a request with its inbound transport: "http" or "mcp".
	TransportKey contextKey = "kit_transport"
	// RequestIDKey carries the per-request correlation id.
	RequestIDKey contextKey = "kit_request_id"
)

// WithTransport tags ctx with the inbound transport name.
func WithTransport(ctx context.Context, transport string) context.Context {
	return context.WithValue(ctx, TransportKey, transport)
}

// Transport returns the inbound transport name, or "" if untagged.
func Transport(ctx context.Context) string {
	v, _ := ctx.Value(TransportKey).(string)
	return v
}

// WithRequestID attaches a correlation id to ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// RequestID returns the correlation id, or "" if none was set.
func RequestID(ctx context.Context) string {
	v, _ := ctx.Value(RequestIDKey).(string)
	return v
}
