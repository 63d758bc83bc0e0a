package storage

import (
	"context"

	"github.com/glimmerclean/cleanup-backend/internal/models"
)

// WorkStorage defines the interface for portfolio entry persistence.
type WorkStorage interface {
	// CreateWork stores a new portfolio entry.
	CreateWork(ctx context.Context, work *models.PreviousWork) error

	// GetWorkByID retrieves a portfolio entry by id.
	// Returns ErrWorkNotFound if it doesn't exist.
	GetWorkByID(ctx context.Context, id string) (*models.PreviousWork, error)

	// ListWorks returns entries matching the filter, newest first, plus the
	// total count matching the filter regardless of limit/offset.
	ListWorks(ctx context.Context, filter models.WorkFilter) ([]*models.PreviousWork, int, error)

	// UpdateWork overwrites the mutable fields of an entry.
	// Returns ErrWorkNotFound if it doesn't exist.
	UpdateWork(ctx context.Context, work *models.PreviousWork) error

	// DeleteWork removes an entry.
	// Returns ErrWorkNotFound if it doesn't exist.
	DeleteWork(ctx context.Context, id string) error
}
