package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/glimmerclean/cleanup-backend/internal/crypto"
	"github.com/glimmerclean/cleanup-backend/internal/server/storage"
	"github.com/glimmerclean/cleanup-backend/internal/server/token"
	"github.com/glimmerclean/cleanup-backend/internal/validation"
	"github.com/glimmerclean/cleanup-backend/pkg/api"
)

// Cookie names used by the cookie-auth deployment variant.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// invalidCredentials is the single message returned for both an unknown
// email and a wrong password, so login cannot be used to enumerate emails.
const invalidCredentials = "invalid email or password"

// AuthHandler implements the admin authentication endpoints.
type AuthHandler struct {
	logger        *slog.Logger
	admins        storage.AdminStorage
	codec         *token.Codec
	cookieAuth    bool
	secureCookies bool
}

// NewAuthHandler creates the auth handler. With cookieAuth enabled, login
// and refresh additionally deliver tokens as http-only SameSite=Strict
// cookies; secureCookies adds the Secure attribute (production).
func NewAuthHandler(logger *slog.Logger, admins storage.AdminStorage, codec *token.Codec, cookieAuth, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		logger:        logger,
		admins:        admins,
		codec:         codec,
		cookieAuth:    cookieAuth,
		secureCookies: secureCookies,
	}
}

// Login handles POST /api/admin/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.Struct(req); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	admin, err := h.admins.GetAdminByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrAdminNotFound) {
			h.logger.WarnContext(ctx, "login failed: unknown email")
			sendError(h.logger, w, invalidCredentials, http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get admin", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := crypto.CheckPassword(req.Password, admin.PasswordHash); err != nil {
		h.logger.WarnContext(ctx, "login failed: wrong password", slog.String("admin_id", admin.ID))
		sendError(h.logger, w, invalidCredentials, http.StatusUnauthorized)
		return
	}

	accessToken, err := h.codec.IssueAccessToken(admin.ID, admin.Email, admin.Name)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to issue access token", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	refreshToken, err := h.codec.IssueRefreshToken(admin.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to issue refresh token", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if h.cookieAuth {
		h.setAuthCookies(w, accessToken, refreshToken)
	}

	h.logger.InfoContext(ctx, "admin logged in", slog.String("admin_id", admin.ID))

	resp := api.LoginResponse{
		Message:      "Login successful",
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Admin: api.AdminInfo{
			ID:    admin.ID,
			Email: admin.Email,
			Name:  admin.Name,
		},
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Refresh handles POST /api/admin/refresh.
// The refresh token is read from the refreshToken cookie first, falling
// back to the request body.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	refreshToken := ""
	if c, err := r.Cookie(RefreshTokenCookie); err == nil && c.Value != "" {
		refreshToken = c.Value
	} else {
		var req api.RefreshRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			refreshToken = req.RefreshToken
		}
	}

	if refreshToken == "" {
		sendError(h.logger, w, "refresh token is required", http.StatusBadRequest)
		return
	}

	claims, err := h.codec.VerifyRefreshToken(refreshToken)
	if err != nil {
		h.logger.WarnContext(ctx, "refresh failed: invalid token")
		sendError(h.logger, w, "invalid or expired refresh token", http.StatusUnauthorized)
		return
	}

	admin, err := h.admins.GetAdminByID(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, storage.ErrAdminNotFound) {
			// Admin deleted after token issuance.
			h.logger.WarnContext(ctx, "refresh failed: admin not found", slog.String("admin_id", claims.ID))
			sendError(h.logger, w, "admin not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get admin", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	accessToken, err := h.codec.IssueAccessToken(admin.ID, admin.Email, admin.Name)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to issue access token", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	// The refresh token is not rotated; it stays valid until expiry.
	if h.cookieAuth {
		h.setCookie(w, AccessTokenCookie, accessToken, int(h.codec.AccessTTL().Seconds()))
	}

	h.logger.InfoContext(ctx, "access token refreshed", slog.String("admin_id", admin.ID))

	sendJSON(h.logger, w, api.RefreshResponse{AccessToken: accessToken}, http.StatusOK)
}

// Profile handles GET /api/admin/profile.
// The admin record is re-fetched so the response reflects the store, not
// the possibly stale token claims.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := GetIdentity(ctx)
	if !ok {
		sendError(h.logger, w, "not authenticated", http.StatusUnauthorized)
		return
	}

	admin, err := h.admins.GetAdminByID(ctx, identity.ID)
	if err != nil {
		if errors.Is(err, storage.ErrAdminNotFound) {
			sendError(h.logger, w, "admin not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get admin", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.ProfileResponse{
		Admin: api.ProfileAdmin{
			ID:        admin.ID,
			Email:     admin.Email,
			Name:      admin.Name,
			CreatedAt: admin.CreatedAt,
			UpdatedAt: admin.UpdatedAt,
		},
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Logout handles POST /api/admin/logout.
// Tokens are stateless, so there is nothing to invalidate server-side;
// the cookie variant clears both cookies, otherwise the client simply
// drops its copies.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	identity, ok := GetIdentity(r.Context())
	if !ok {
		sendError(h.logger, w, "not authenticated", http.StatusUnauthorized)
		return
	}

	if h.cookieAuth {
		h.setCookie(w, AccessTokenCookie, "", -1)
		h.setCookie(w, RefreshTokenCookie, "", -1)
	}

	h.logger.InfoContext(r.Context(), "admin logged out", slog.String("admin_id", identity.ID))

	sendJSON(h.logger, w, api.MessageResponse{Message: "Logout successful"}, http.StatusOK)
}

func (h *AuthHandler) setAuthCookies(w http.ResponseWriter, accessToken, refreshToken string) {
	h.setCookie(w, AccessTokenCookie, accessToken, int(h.codec.AccessTTL().Seconds()))
	h.setCookie(w, RefreshTokenCookie, refreshToken, int(h.codec.RefreshTTL().Seconds()))
}

func (h *AuthHandler) setCookie(w http.ResponseWriter, name, value string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})
}
