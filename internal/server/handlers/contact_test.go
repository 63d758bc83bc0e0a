package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glimmerclean/cleanup-backend/internal/models"
	"github.com/glimmerclean/cleanup-backend/internal/server/storage"
	"github.com/glimmerclean/cleanup-backend/pkg/api"
)

// mockContactStorage is a mock implementation of ContactStorage for testing.
type mockContactStorage struct {
	contact     *models.Contact
	getError    error
	createError error
	updateError error
}

func (m *mockContactStorage) GetContact(ctx context.Context) (*models.Contact, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	if m.contact == nil {
		return nil, storage.ErrContactNotFound
	}
	return m.contact, nil
}

func (m *mockContactStorage) CreateContact(ctx context.Context, contact *models.Contact) error {
	if m.createError != nil {
		return m.createError
	}
	if m.contact != nil {
		return storage.ErrContactAlreadyExists
	}
	m.contact = contact
	return nil
}

func (m *mockContactStorage) UpdateContact(ctx context.Context, contact *models.Contact) error {
	if m.updateError != nil {
		return m.updateError
	}
	if m.contact == nil {
		return storage.ErrContactNotFound
	}
	m.contact = contact
	return nil
}

func existingContact() *models.Contact {
	now := time.Now().UTC()
	return &models.Contact{
		ID:        "contact-1",
		Hours:     []string{"Monday - Friday: 8:00 AM - 6:00 PM"},
		Address:   "123 Main Street",
		Email:     "contact@example.com",
		Phone:     "+1 555 0100",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestContactHandler_Get(t *testing.T) {
	t.Run("existing record", func(t *testing.T) {
		h := NewContactHandler(testLogger(), &mockContactStorage{contact: existingContact()})

		req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
		rec := httptest.NewRecorder()
		h.Get(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.ContactResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "contact-1", resp.Data.ID)
		assert.Equal(t, "contact@example.com", resp.Data.Email)
	})

	t.Run("no record yet", func(t *testing.T) {
		h := NewContactHandler(testLogger(), &mockContactStorage{})

		req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
		rec := httptest.NewRecorder()
		h.Get(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("storage failure", func(t *testing.T) {
		h := NewContactHandler(testLogger(), &mockContactStorage{getError: errors.New("boom")})

		req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
		rec := httptest.NewRecorder()
		h.Get(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestContactHandler_Create(t *testing.T) {
	t.Run("creates the record", func(t *testing.T) {
		store := &mockContactStorage{}
		h := NewContactHandler(testLogger(), store)

		body := `{"hours":["Mon-Fri: 9-5"],"address":"456 Oak Ave","email":"hello@example.com","phone":"+1 555 0200"}`
		req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		h.Create(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, store.contact)
		assert.NotEmpty(t, store.contact.ID)
		assert.Equal(t, []string{"Mon-Fri: 9-5"}, store.contact.Hours)
		assert.Equal(t, "456 Oak Ave", store.contact.Address)

		var resp api.ContactResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Contact created successfully", resp.Message)
	})

	t.Run("second create conflicts", func(t *testing.T) {
		h := NewContactHandler(testLogger(), &mockContactStorage{contact: existingContact()})

		body := `{"email":"second@example.com"}`
		req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		h.Create(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "use PATCH to update")
	})

	t.Run("invalid json", func(t *testing.T) {
		h := NewContactHandler(testLogger(), &mockContactStorage{})

		req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewBufferString(`{broken`))
		rec := httptest.NewRecorder()
		h.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		h := NewContactHandler(testLogger(), &mockContactStorage{})

		req := httptest.NewRequest(http.MethodPost, "/api/contact",
			bytes.NewBufferString(`{"email":"not-an-email"}`))
		rec := httptest.NewRecorder()
		h.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("phone and email are optional", func(t *testing.T) {
		store := &mockContactStorage{}
		h := NewContactHandler(testLogger(), store)

		req := httptest.NewRequest(http.MethodPost, "/api/contact",
			bytes.NewBufferString(`{"hours":["Mon-Fri: 9-5"]}`))
		rec := httptest.NewRecorder()
		h.Create(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, store.contact)
		assert.Empty(t, store.contact.Phone)
		assert.Empty(t, store.contact.Email)
	})

	t.Run("nil hours stored as empty list", func(t *testing.T) {
		store := &mockContactStorage{}
		h := NewContactHandler(testLogger(), store)

		req := httptest.NewRequest(http.MethodPost, "/api/contact",
			bytes.NewBufferString(`{"address":"789 Pine Rd"}`))
		rec := httptest.NewRecorder()
		h.Create(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, store.contact)
		assert.NotNil(t, store.contact.Hours)
		assert.Empty(t, store.contact.Hours)
	})
}

func TestContactHandler_Patch(t *testing.T) {
	t.Run("updates only provided fields", func(t *testing.T) {
		store := &mockContactStorage{contact: existingContact()}
		h := NewContactHandler(testLogger(), store)

		body := `{"phone":"+1 555 0999","whatsapp":"+1 555 0999"}`
		req := httptest.NewRequest(http.MethodPatch, "/api/contact", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		h.Patch(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "+1 555 0999", store.contact.Phone)
		assert.Equal(t, "+1 555 0999", store.contact.WhatsApp)
		// Untouched fields keep their values.
		assert.Equal(t, "123 Main Street", store.contact.Address)
		assert.Equal(t, "contact@example.com", store.contact.Email)
	})

	t.Run("no record yet", func(t *testing.T) {
		h := NewContactHandler(testLogger(), &mockContactStorage{})

		req := httptest.NewRequest(http.MethodPatch, "/api/contact",
			bytes.NewBufferString(`{"phone":"+1 555 0999"}`))
		rec := httptest.NewRecorder()
		h.Patch(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "use POST to create")
	})

	t.Run("empty string clears a field", func(t *testing.T) {
		store := &mockContactStorage{contact: existingContact()}
		h := NewContactHandler(testLogger(), store)

		req := httptest.NewRequest(http.MethodPatch, "/api/contact",
			bytes.NewBufferString(`{"address":""}`))
		rec := httptest.NewRecorder()
		h.Patch(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, store.contact.Address)
	})
}
