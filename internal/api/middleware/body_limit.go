package middleware

import "net/http"

// DefaultMaxBodyBytes is the default max request body size (64KB); chat
// payloads are small.
const DefaultMaxBodyBytes = 64 * 1024

// MaxBodySize returns middleware that limits request body size for methods
// that may carry a body (POST, PUT, PATCH). GET/HEAD/DELETE are not limited.
func MaxBodySize(max int64) func(http.Handler) http.Handler {
	if max <= 0 {
		max = DefaultMaxBodyBytes
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil {
				next.ServeHTTP(w, r)
				return
			}
			switch r.Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch:
				r.Body = http.MaxBytesReader(w, r.Body, max)
			}
			next.ServeHTTP(w, r)
		})
	}
}
