package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/glimmerclean/cleanup-backend/internal/models"
	"github.com/glimmerclean/cleanup-backend/internal/server/storage"
)

// CreateAdmin creates a new admin record.
func (s *Storage) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	query := `
		INSERT INTO admins (id, email, password_hash, name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		admin.ID,
		admin.Email,
		admin.PasswordHash,
		admin.Name,
		admin.CreatedAt,
		admin.UpdatedAt,
	)

	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: admins.email") {
			return storage.ErrAdminAlreadyExists
		}
		return fmt.Errorf("failed to insert admin: %w", err)
	}

	return nil
}

// GetAdminByEmail retrieves an admin by login email.
func (s *Storage) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	query := `
		SELECT id, email, password_hash, name, created_at, updated_at
		FROM admins
		WHERE email = ?
	`

	return s.scanAdmin(s.db.QueryRowContext(ctx, query, email))
}

// GetAdminByID retrieves an admin by id.
func (s *Storage) GetAdminByID(ctx context.Context, id string) (*models.Admin, error) {
	query := `
		SELECT id, email, password_hash, name, created_at, updated_at
		FROM admins
		WHERE id = ?
	`

	return s.scanAdmin(s.db.QueryRowContext(ctx, query, id))
}

func (s *Storage) scanAdmin(row *sql.Row) (*models.Admin, error) {
	admin := &models.Admin{}

	err := row.Scan(
		&admin.ID,
		&admin.Email,
		&admin.PasswordHash,
		&admin.Name,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	return admin, nil
}
