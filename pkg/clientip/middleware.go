package clientip

import "net/http"

// Middleware resolves the client IP once and stores it in the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ip := GetIP(r); ip != "" {
			r = r.WithContext(SetIPToContext(r.Context(), ip))
		}
		next.ServeHTTP(w, r)
	})
}
