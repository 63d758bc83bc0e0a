package models

import "time"

// Admin represents an administrator account.
// There is a single principal type in the system; admins are provisioned
// via cmd/seed, never through the public API.
type Admin struct {
	ID           string    `json:"id"`         // UUID
	Email        string    `json:"email"`      // unique login email
	PasswordHash string    `json:"-"`          // bcrypt hash, never serialized
	Name         string    `json:"name"`       // display name
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
