package repository

import (
	"context"
	"fmt"

	"github.com/chatco/chatco-backend/internal/models"
)

// InsertContactSubmission stores one contact form submission and returns
// its id.
func (s *Storage) InsertContactSubmission(ctx context.Context, sub models.ContactSubmission) (int, error) {
	const op = "repository.InsertContactSubmission"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var id int
	query := `INSERT INTO contact_submissions (name, email, message)
			  VALUES ($1, $2, $3)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query, sub.Name, sub.Email, sub.Message).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// ListContactSubmissions returns all submissions, newest first.
func (s *Storage) ListContactSubmissions(ctx context.Context) ([]*models.ContactSubmission, error) {
	const op = "repository.ListContactSubmissions"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, email, message, created_at
			  FROM contact_submissions
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.ContactSubmission
	for rows.Next() {
		var c models.ContactSubmission
		if err = rows.Scan(&c.ID, &c.Name, &c.Email, &c.Message, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
