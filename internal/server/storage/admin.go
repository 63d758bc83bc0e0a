// Package storage defines the persistence interfaces of the server and
// their common errors. The sqlite subpackage provides the implementation.
package storage

import (
	"context"

	"github.com/glimmerclean/cleanup-backend/internal/models"
)

// AdminStorage defines the interface for admin credential persistence.
// The auth core only ever reads admins; records are created by cmd/seed.
type AdminStorage interface {
	// CreateAdmin creates a new admin record.
	// Returns ErrAdminAlreadyExists if the email is taken.
	CreateAdmin(ctx context.Context, admin *models.Admin) error

	// GetAdminByEmail retrieves an admin by login email.
	// Returns ErrAdminNotFound if no such admin exists.
	GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error)

	// GetAdminByID retrieves an admin by id.
	// Returns ErrAdminNotFound if no such admin exists.
	GetAdminByID(ctx context.Context, id string) (*models.Admin, error)
}
