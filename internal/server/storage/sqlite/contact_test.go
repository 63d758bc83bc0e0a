package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glimmerclean/cleanup-backend/internal/models"
	"github.com/glimmerclean/cleanup-backend/internal/server/storage"
)

func testContact() *models.Contact {
	now := time.Now()
	return &models.Contact{
		ID:        uuid.New().String(),
		Hours:     []string{"Mon-Fri 8:00-18:00", "Sat 9:00-14:00"},
		Address:   "123 Main St, City",
		Email:     "contact@cleaningservices.com",
		Phone:     "+1234567890",
		WhatsApp:  "+1234567890",
		Facebook:  "https://facebook.com/cleaningservices",
		Instagram: "https://instagram.com/cleaningservices",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestContactStorage_GetContact_Empty(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	contact, err := s.GetContact(ctx)
	assert.ErrorIs(t, err, storage.ErrContactNotFound)
	assert.Nil(t, contact)
}

func TestContactStorage_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	contact := testContact()
	require.NoError(t, s.CreateContact(ctx, contact))

	retrieved, err := s.GetContact(ctx)
	require.NoError(t, err)
	assert.Equal(t, contact.ID, retrieved.ID)
	assert.Equal(t, contact.Hours, retrieved.Hours)
	assert.Equal(t, contact.Address, retrieved.Address)
	assert.Equal(t, contact.Phone, retrieved.Phone)
	assert.Equal(t, contact.Instagram, retrieved.Instagram)
}

func TestContactStorage_CreateContact_AlreadyExists(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	require.NoError(t, s.CreateContact(ctx, testContact()))

	err := s.CreateContact(ctx, testContact())
	assert.ErrorIs(t, err, storage.ErrContactAlreadyExists)
}

func TestContactStorage_UpdateContact(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	contact := testContact()
	require.NoError(t, s.CreateContact(ctx, contact))

	contact.Phone = "+9876543210"
	contact.Hours = []string{"Mon-Sun 0:00-24:00"}
	contact.UpdatedAt = time.Now()
	require.NoError(t, s.UpdateContact(ctx, contact))

	retrieved, err := s.GetContact(ctx)
	require.NoError(t, err)
	assert.Equal(t, "+9876543210", retrieved.Phone)
	assert.Equal(t, []string{"Mon-Sun 0:00-24:00"}, retrieved.Hours)
}

func TestContactStorage_UpdateContact_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	err := s.UpdateContact(ctx, testContact())
	assert.ErrorIs(t, err, storage.ErrContactNotFound)
}
