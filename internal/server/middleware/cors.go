package middleware

import (
	"net/http"
	"strconv"

	"github.com/glimmerclean/cleanup-backend/internal/config"
)

// CORS sets the cross-origin headers from the configuration and
// short-circuits preflight requests.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			allowed := cfg.AllowedOrigin
			if allowed != "*" && origin != allowed {
				next.ServeHTTP(w, r)
				return
			}
			if allowed == "*" && cfg.AllowCredentials {
				// The wildcard is invalid with credentials; echo the origin.
				allowed = origin
			}

			h := w.Header()
			h.Set("Access-Control-Allow-Origin", allowed)
			h.Set("Vary", "Origin")
			if cfg.AllowCredentials {
				h.Set("Access-Control-Allow-Credentials", "true")
			}

			if r.Method == http.MethodOptions {
				h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				h.Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
