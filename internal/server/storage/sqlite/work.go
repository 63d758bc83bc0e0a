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

// CreateWork stores a new portfolio entry.
func (s *Storage) CreateWork(ctx context.Context, work *models.PreviousWork) error {
	images, err := json.Marshal(work.Images)
	if err != nil {
		return fmt.Errorf("failed to marshal images: %w", err)
	}

	query := `
		INSERT INTO previous_works (id, title, description, category, images, featured, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		work.ID,
		work.Title,
		work.Description,
		work.Category,
		string(images),
		work.Featured,
		work.CreatedAt,
		work.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert previous work: %w", err)
	}

	return nil
}

// GetWorkByID retrieves a portfolio entry by id.
func (s *Storage) GetWorkByID(ctx context.Context, id string) (*models.PreviousWork, error) {
	query := `
		SELECT id, title, description, category, images, featured, created_at, updated_at
		FROM previous_works
		WHERE id = ?
	`

	work, err := scanWork(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrWorkNotFound
		}
		return nil, fmt.Errorf("failed to get previous work: %w", err)
	}

	return work, nil
}

// ListWorks returns entries matching the filter, newest first, plus the
// total count matching the filter regardless of limit/offset.
func (s *Storage) ListWorks(ctx context.Context, filter models.WorkFilter) ([]*models.PreviousWork, int, error) {
	where := " WHERE 1=1"
	args := []any{}

	if filter.Category != nil {
		where += " AND category = ?"
		args = append(args, *filter.Category)
	}
	if filter.Featured != nil {
		where += " AND featured = ?"
		args = append(args, *filter.Featured)
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM previous_works" + where
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count previous works: %w", err)
	}

	query := `
		SELECT id, title, description, category, images, featured, created_at, updated_at
		FROM previous_works` + where + `
		ORDER BY created_at DESC`

	if filter.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list previous works: %w", err)
	}
	defer rows.Close()

	works := []*models.PreviousWork{}
	for rows.Next() {
		work, err := scanWork(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan previous work: %w", err)
		}
		works = append(works, work)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate previous works: %w", err)
	}

	return works, total, nil
}

// UpdateWork overwrites the mutable fields of an entry.
func (s *Storage) UpdateWork(ctx context.Context, work *models.PreviousWork) error {
	images, err := json.Marshal(work.Images)
	if err != nil {
		return fmt.Errorf("failed to marshal images: %w", err)
	}

	query := `
		UPDATE previous_works
		SET title = ?, description = ?, category = ?, images = ?, featured = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		work.Title,
		work.Description,
		work.Category,
		string(images),
		work.Featured,
		work.UpdatedAt,
		work.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update previous work: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrWorkNotFound
	}

	return nil
}

// DeleteWork removes an entry.
func (s *Storage) DeleteWork(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM previous_works WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete previous work: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrWorkNotFound
	}

	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanWork.
type scanner interface {
	Scan(dest ...any) error
}

func scanWork(row scanner) (*models.PreviousWork, error) {
	work := &models.PreviousWork{}
	var images string

	err := row.Scan(
		&work.ID,
		&work.Title,
		&work.Description,
		&work.Category,
		&images,
		&work.Featured,
		&work.CreatedAt,
		&work.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(images), &work.Images); err != nil {
		return nil, fmt.Errorf("failed to unmarshal images: %w", err)
	}

	return work, nil
}
