package middleware

import (
	"net/http"
	"strings"
)

// StripSlash returns middleware that rewrites requests with trailing slashes
// to their canonical form without the slash. The path is rewritten in place
// rather than redirected so request bodies survive. The root path "/" is
// preserved.
func StripSlash() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.URL.Path) > 1 && strings.HasSuffix(r.URL.Path, "/") {
				r.URL.Path = strings.TrimSuffix(r.URL.Path, "/")
				if r.URL.RawPath != "" {
					r.URL.RawPath = strings.TrimSuffix(r.URL.RawPath, "/")
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
