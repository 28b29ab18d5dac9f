// Package middleware provides HTTP middleware for the flipbook API.
package middleware

import (
	"net/http"
)

// CORS returns a middleware allowing cross-origin requests from the
// given origins ("*" allows any).
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			// The wildcard is echoed as "*" so requests without an
			// Origin header never see an empty allow value.
			allow := ""
			for _, o := range allowedOrigins {
				if o == "*" {
					allow = "*"
					break
				}
				if o == origin && origin != "" {
					allow = origin
					break
				}
			}

			if allow != "" {
				w.Header().Set("Access-Control-Allow-Origin", allow)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
				w.Header().Set("Access-Control-Max-Age", "86400")
			}

			// Handle preflight
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
