// CLAUDE:SUMMARY HEAD→GET rewrite so HEAD requests reach GET handlers.
package shield

import "net/http"

// HeadToGet rewrites HEAD requests to GET so they match GET routes.
// net/http suppresses the body automatically for HEAD responses.
func HeadToGet(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			r.Method = http.MethodGet
		}
		next.ServeHTTP(w, r)
	})
}
