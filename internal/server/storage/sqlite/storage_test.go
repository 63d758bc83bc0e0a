package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/glimmerclean/cleanup-backend/internal/models"
)

// setupTestStorage creates an in-memory storage with migrations applied.
func setupTestStorage(t *testing.T) (*Storage, func()) {
	t.Helper()

	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		require.NoError(t, s.Close())
	}

	return s, cleanup
}

func testAdmin(email string) *models.Admin {
	now := time.Now()
	return &models.Admin{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: "$2a$12$fakehashfakehashfakehashfakehash",
		Name:         "Admin User",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func testWork(title string, featured bool) *models.PreviousWork {
	now := time.Now()
	return &models.PreviousWork{
		ID:          uuid.New().String(),
		Title:       title,
		Description: "Complete deep cleaning of a 5000 sq ft office space.",
		Category:    "Commercial",
		Images:      []string{"https://res.cloudinary.com/demo/image/upload/v1/cleaning-services/previous-work/a.jpg"},
		Featured:    featured,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
