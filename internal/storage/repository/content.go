package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/chatco/chatco-backend/internal/models"
)

// ListContentSections returns every content section ordered by key.
func (s *Storage) ListContentSections(ctx context.Context) ([]*models.ContentSection, error) {
	const op = "repository.ListContentSections"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, section_key, section_content, section_type, created_at, updated_at
			  FROM content_sections
			  ORDER BY section_key`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanContentSections(op, rows)
}

// GetContentSectionsByKeys returns the sections stored for the given
// keys. Absent keys are simply missing from the result, the caller
// supplies fallbacks.
func (s *Storage) GetContentSectionsByKeys(ctx context.Context, keys []string) ([]*models.ContentSection, error) {
	const op = "repository.GetContentSectionsByKeys"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}
	if len(keys) == 0 {
		return nil, nil
	}

	query := `SELECT id, section_key, section_content, section_type, created_at, updated_at
			  FROM content_sections
			  WHERE section_key = ANY($1)
			  ORDER BY section_key`
	rows, err := s.DB.QueryContext(ctx, query, keys)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanContentSections(op, rows)
}

// GetContentSection returns one section by key, or ErrNotFound.
func (s *Storage) GetContentSection(ctx context.Context, key string) (*models.ContentSection, error) {
	const op = "repository.GetContentSection"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, section_key, section_content, section_type, created_at, updated_at
			  FROM content_sections
			  WHERE section_key = $1`
	c := &models.ContentSection{}
	err := s.DB.QueryRowContext(ctx, query, key).Scan(
		&c.ID, &c.SectionKey, &c.SectionContent, &c.SectionType, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

// UpdateContentSection replaces the content of one key. Last writer
// wins. Returns ErrNotFound for an unknown key.
func (s *Storage) UpdateContentSection(ctx context.Context, key, content string) error {
	const op = "repository.UpdateContentSection"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE content_sections
			  SET section_content = $1, updated_at = now()
			  WHERE section_key = $2`
	res, err := s.DB.ExecContext(ctx, query, content, key)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

func scanContentSections(op string, rows *sql.Rows) ([]*models.ContentSection, error) {
	var result []*models.ContentSection
	for rows.Next() {
		var c models.ContentSection
		if err := rows.Scan(&c.ID, &c.SectionKey, &c.SectionContent, &c.SectionType,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
