package repository

import (
	"context"
	"fmt"
	"time"
)

// CreateResetToken stores a password reset token for a profile.
func (s *Storage) CreateResetToken(ctx context.Context, token, userUID string, expiresAt time.Time) error {
	const op = "repository.CreateResetToken"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO password_reset_tokens (token, user_uid, expires_at)
			  VALUES ($1, $2, $3)`
	if _, err := s.DB.ExecContext(ctx, query, token, userUID, expiresAt); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
