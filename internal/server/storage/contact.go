package storage

import (
	"context"

	"github.com/glimmerclean/cleanup-backend/internal/models"
)

// ContactStorage defines the interface for the single contact record.
type ContactStorage interface {
	// GetContact returns the contact record.
	// Returns ErrContactNotFound if none was created yet.
	GetContact(ctx context.Context) (*models.Contact, error)

	// CreateContact stores the contact record.
	// Returns ErrContactAlreadyExists if one already exists.
	CreateContact(ctx context.Context, contact *models.Contact) error

	// UpdateContact overwrites the contact record.
	// Returns ErrContactNotFound if none exists.
	UpdateContact(ctx context.Context, contact *models.Contact) error
}
