// CLAUDE:SUMMARY Request-id middleware — tags each request with an id and a scoped slog logger.
package shield

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/pagewright/atelier/idgen"
	"github.com/pagewright/atelier/kit"
)

var requestIDs = idgen.NanoID(8)

// RequestID assigns each request a short correlation id, exposes it via the
// X-Request-ID response header and the kit context key, and stores a
// request-scoped logger under LoggerKey.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := requestIDs()

		ctx := kit.WithRequestID(r.Context(), id)
		ctx = kit.WithTransport(ctx, "http")
		w.Header().Set("X-Request-ID", id)

		logger := slog.Default().With(
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
		)
		ctx = context.WithValue(ctx, LoggerKey, logger)
		logger.Info("request")

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
