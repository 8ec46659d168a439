package repository

import (
	"context"
	"fmt"

	"github.com/chatco/chatco-backend/internal/models"
)

// InsertChatMessage appends one message to a user's history and returns
// the stored row with its server-assigned id and timestamp.
func (s *Storage) InsertChatMessage(ctx context.Context, userUID, role, message string) (*models.ChatMessage, error) {
	const op = "repository.InsertChatMessage"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO chat_messages (user_uid, role, message)
			  VALUES ($1, $2, $3)
			  RETURNING id, created_at;`
	m := &models.ChatMessage{
		UserUID: userUID,
		Role:    role,
		Message: message,
	}
	if err := s.DB.QueryRowContext(ctx, query, userUID, role, message).
		Scan(&m.ID, &m.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return m, nil
}

// ListChatMessages returns the most recent messages of one user in
// ascending timestamp order.
func (s *Storage) ListChatMessages(ctx context.Context, userUID string, limit int) ([]*models.ChatMessage, error) {
	const op = "repository.ListChatMessages"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	// inner query picks the newest rows, outer restores chronology
	query := `SELECT id, user_uid, role, message, created_at FROM (
			      SELECT id, user_uid, role, message, created_at
			      FROM chat_messages
			      WHERE user_uid = $1
			      ORDER BY created_at DESC, id DESC
			      LIMIT $2
			  ) AS recent
			  ORDER BY created_at ASC, id ASC`
	rows, err := s.DB.QueryContext(ctx, query, userUID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.ChatMessage
	for rows.Next() {
		var m models.ChatMessage
		if err = rows.Scan(&m.ID, &m.UserUID, &m.Role, &m.Message, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
