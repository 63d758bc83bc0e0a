// Package middleware provides the HTTP middleware chain of the server.
package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/glimmerclean/cleanup-backend/internal/server/handlers"
	"github.com/glimmerclean/cleanup-backend/internal/server/token"
)

// Auth gates protected routes behind a verified access token.
//
// The token is extracted from the accessToken cookie first, then from the
// Authorization header ("Bearer <token>"); the cookie wins when both are
// present. On success the decoded identity is attached to the request
// context. The gate performs no database access: claims reflect the admin
// record at token-issuance time.
func Auth(logger *slog.Logger, codec *token.Codec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := extractToken(r)
			if tokenString == "" {
				logger.Warn("missing access token", "path", r.URL.Path)
				unauthorized(w, "no token provided")
				return
			}

			claims, err := codec.VerifyAccessToken(tokenString)
			if err != nil {
				logger.Warn("invalid access token", "path", r.URL.Path)
				unauthorized(w, "invalid or expired token")
				return
			}

			ctx := handlers.WithIdentity(r.Context(), handlers.Identity{
				ID:    claims.ID,
				Email: claims.Email,
				Name:  claims.Name,
			})

			logger.Debug("admin authenticated", "admin_id", claims.ID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken returns the bearer token of the request, preferring the
// cookie over the Authorization header.
func extractToken(r *http.Request) string {
	if c, err := r.Cookie(handlers.AccessTokenCookie); err == nil && c.Value != "" {
		return c.Value
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return parts[1]
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"Unauthorized","message":"` + message + `"}`))
}
