// CLAUDE:SUMMARY JSON request body size cap middleware.
package shield

import "net/http"

// MaxJSONBody caps request bodies at maxBytes. Imported layout documents
// arrive through this path, so the cap doubles as the import size limit.
// The cap is unconditional: a missing or lying Content-Type header must not
// open an unbounded read.
func MaxJSONBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
