package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glimmerclean/cleanup-backend/internal/server/handlers"
	"github.com/glimmerclean/cleanup-backend/internal/server/token"
)

func testCodec(t *testing.T) *token.Codec {
	t.Helper()
	return token.NewCodec(token.Config{
		AccessSecret:  []byte("test-access-secret-test-access-secret"),
		RefreshSecret: []byte("test-refresh-secret-test-refresh-secret"),
		Issuer:        "test",
		AccessTTL:     time.Minute,
		RefreshTTL:    time.Hour,
	})
}

func TestAuth(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	codec := testCodec(t)

	validToken, err := codec.IssueAccessToken("admin-1", "admin@example.com", "Admin")
	require.NoError(t, err)

	otherToken, err := codec.IssueAccessToken("admin-2", "other@example.com", "Other")
	require.NoError(t, err)

	refreshToken, err := codec.IssueRefreshToken("admin-1")
	require.NoError(t, err)

	tests := []struct {
		name       string
		cookie     string
		header     string
		wantStatus int
		wantID     string
	}{
		{
			name:       "no token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token in cookie",
			cookie:     validToken,
			wantStatus: http.StatusOK,
			wantID:     "admin-1",
		},
		{
			name:       "valid token in header",
			header:     "Bearer " + validToken,
			wantStatus: http.StatusOK,
			wantID:     "admin-1",
		},
		{
			name:       "cookie wins over header",
			cookie:     validToken,
			header:     "Bearer " + otherToken,
			wantStatus: http.StatusOK,
			wantID:     "admin-1",
		},
		{
			name:       "garbage token",
			header:     "Bearer not-a-jwt",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "refresh token rejected as access token",
			header:     "Bearer " + refreshToken,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed authorization header",
			header:     validToken,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     "Basic " + validToken,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				id, ok := handlers.GetIdentity(r.Context())
				require.True(t, ok)
				gotID = id.ID
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/admin/profile", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: handlers.AccessTokenCookie, Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			Auth(logger, codec)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantID, gotID)
			} else {
				assert.Contains(t, rec.Body.String(), `"error":"Unauthorized"`)
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			}
		})
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	expiredCodec := token.NewCodec(token.Config{
		AccessSecret:  []byte("test-access-secret-test-access-secret"),
		RefreshSecret: []byte("test-refresh-secret-test-refresh-secret"),
		Issuer:        "test",
		AccessTTL:     -time.Minute,
		RefreshTTL:    time.Hour,
	})

	expired, err := expiredCodec.IssueAccessToken("admin-1", "admin@example.com", "Admin")
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/profile", nil)
	req.Header.Set("Authorization", "Bearer "+expired)

	rec := httptest.NewRecorder()
	Auth(logger, testCodec(t))(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
