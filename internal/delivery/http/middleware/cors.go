package middleware

import (
	"net/http"
	"strings"
)

const (
	corsAllowMethods  = "GET, POST, PUT, DELETE, OPTIONS"
	corsAllowHeaders  = "Authorization, Content-Type, Accept, X-Request-Id"
	corsExposeHeaders = "X-Request-Id"
	corsMaxAge        = "86400"
)

// corsOrigins is the normalized allow list. "*" admits any origin, but credentials are then
// never advertised.
type corsOrigins struct {
	any     bool
	allowed map[string]struct{}
}

func newCORSOrigins(origins []string) corsOrigins {
	c := corsOrigins{allowed: make(map[string]struct{}, len(origins))}
	for _, o := range origins {
		o = strings.TrimSuffix(strings.TrimSpace(o), "/")
		switch o {
		case "":
		case "*":
			c.any = true
		default:
			c.allowed[o] = struct{}{}
		}
	}
	return c
}

func (c corsOrigins) permits(origin string) bool {
	if origin == "" {
		return false
	}
	if _, ok := c.allowed[origin]; ok {
		return true
	}
	return c.any
}

// CORS adds CORS headers for allowed origins and answers OPTIONS preflight requests with 204.
// The view endpoints are called from the browser front end, so the roster UI origin must be listed
// in CORS_ALLOWED_ORIGINS.
func CORS(allowedOrigins []string, next http.Handler) http.Handler {
	origins := newCORSOrigins(allowedOrigins)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		h := w.Header()
		h.Add("Vary", "Origin")

		if origins.permits(origin) {
			h.Set("Access-Control-Allow-Origin", origin)
			if _, listed := origins.allowed[origin]; listed {
				h.Set("Access-Control-Allow-Credentials", "true")
			}
			h.Set("Access-Control-Expose-Headers", corsExposeHeaders)
			if r.Method == http.MethodOptions {
				h.Set("Access-Control-Allow-Methods", corsAllowMethods)
				h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
				h.Set("Access-Control-Max-Age", corsMaxAge)
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
