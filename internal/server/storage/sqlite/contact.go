package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/glimmerclean/cleanup-backend/internal/models"
	"github.com/glimmerclean/cleanup-backend/internal/server/storage"
)

// GetContact returns the contact record.
func (s *Storage) GetContact(ctx context.Context) (*models.Contact, error) {
	query := `
		SELECT id, hours, address, email, phone, whatsapp, facebook, instagram, twitter, created_at, updated_at
		FROM contacts
		LIMIT 1
	`

	contact := &models.Contact{}
	var hours string

	err := s.db.QueryRowContext(ctx, query).Scan(
		&contact.ID,
		&hours,
		&contact.Address,
		&contact.Email,
		&contact.Phone,
		&contact.WhatsApp,
		&contact.Facebook,
		&contact.Instagram,
		&contact.Twitter,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	if err := json.Unmarshal([]byte(hours), &contact.Hours); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hours: %w", err)
	}

	return contact, nil
}

// CreateContact stores the contact record. The resource is singular:
// creation fails once a record exists.
func (s *Storage) CreateContact(ctx context.Context, contact *models.Contact) error {
	existing, err := s.GetContact(ctx)
	if err != nil && !errors.Is(err, storage.ErrContactNotFound) {
		return err
	}
	if existing != nil {
		return storage.ErrContactAlreadyExists
	}

	hours, err := json.Marshal(contact.Hours)
	if err != nil {
		return fmt.Errorf("failed to marshal hours: %w", err)
	}

	query := `
		INSERT INTO contacts (id, hours, address, email, phone, whatsapp, facebook, instagram, twitter, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		contact.ID,
		string(hours),
		contact.Address,
		contact.Email,
		contact.Phone,
		contact.WhatsApp,
		contact.Facebook,
		contact.Instagram,
		contact.Twitter,
		contact.CreatedAt,
		contact.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert contact: %w", err)
	}

	return nil
}

// UpdateContact overwrites the contact record.
func (s *Storage) UpdateContact(ctx context.Context, contact *models.Contact) error {
	hours, err := json.Marshal(contact.Hours)
	if err != nil {
		return fmt.Errorf("failed to marshal hours: %w", err)
	}

	query := `
		UPDATE contacts
		SET hours = ?, address = ?, email = ?, phone = ?, whatsapp = ?, facebook = ?, instagram = ?, twitter = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		string(hours),
		contact.Address,
		contact.Email,
		contact.Phone,
		contact.WhatsApp,
		contact.Facebook,
		contact.Instagram,
		contact.Twitter,
		contact.UpdatedAt,
		contact.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrContactNotFound
	}

	return nil
}
