package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("Secret123", 10)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2a$"), "expected bcrypt hash, got %q", hash)
	assert.NotContains(t, hash, "Secret123")
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("", 10)
	assert.Error(t, err)
}

func TestHashPassword_Salted(t *testing.T) {
	h1, err := HashPassword("Secret123", 10)
	require.NoError(t, err)
	h2, err := HashPassword("Secret123", 10)
	require.NoError(t, err)

	// bcrypt salts every hash, so two hashes of the same password differ.
	assert.NotEqual(t, h1, h2)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("Secret123", 10)
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "correct password", password: "Secret123", wantErr: false},
		{name: "wrong password", password: "Secret124", wantErr: true},
		{name: "empty password", password: "", wantErr: true},
		{name: "case sensitive", password: "secret123", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPassword(tt.password, hash)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
