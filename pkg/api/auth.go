// Package api defines the request and response types of the HTTP API.
package api

import "time"

// LoginRequest represents the admin login request body.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// AdminInfo carries the non-sensitive admin fields returned on login.
type AdminInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Message      string    `json:"message"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	Admin        AdminInfo `json:"admin"`
}

// RefreshRequest represents the refresh request body. The token may
// alternatively arrive in the refreshToken cookie, which takes precedence.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshResponse carries the newly minted access token.
type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// ProfileAdmin carries the fresh admin fields returned by the profile
// endpoint. The password hash is never part of any response.
type ProfileAdmin struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProfileResponse represents the profile endpoint response.
type ProfileResponse struct {
	Admin ProfileAdmin `json:"admin"`
}

// MessageResponse is a plain acknowledgement (logout, deletes).
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error reply. Message is user-safe and never
// distinguishes between an unknown email and a wrong password, or between
// a bad token signature and an expired token.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
