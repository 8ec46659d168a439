// Package services holds the chat business logic: persisting the
// per-user history and producing assistant replies through a pluggable
// responder.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/chatco/chatco-backend/internal/models"
)

// ErrEmptyMessage is returned when the trimmed message is empty.
// Nothing is persisted in that case.
var ErrEmptyMessage = errors.New("message is empty")

// ChatRepository describes the chat storage used by this service.
type ChatRepository interface {
	// InsertChatMessage appends one message and returns the stored row.
	InsertChatMessage(ctx context.Context, userUID, role, message string) (*models.ChatMessage, error)
	// ListChatMessages returns the most recent messages in ascending order.
	ListChatMessages(ctx context.Context, userUID string, limit int) ([]*models.ChatMessage, error)
}

// Responder produces the assistant reply for one user message.
type Responder interface {
	Respond(ctx context.Context, message string) (string, error)
}

// ChatService implements sending messages and reading history.
type ChatService struct {
	repo         ChatRepository
	responder    Responder
	historyLimit int
	log          *slog.Logger
}

// NewChatService creates a ChatService.
func NewChatService(repo ChatRepository, responder Responder, historyLimit int, log *slog.Logger) *ChatService {
	return &ChatService{
		repo:         repo,
		responder:    responder,
		historyLimit: historyLimit,
		log:          log,
	}
}

// Send persists the user message, produces the assistant reply and
// persists it too. The user row is stored before the responder runs, so
// history keeps the question even if the reply fails. clientMessageID
// is echoed back untouched.
func (s *ChatService) Send(ctx context.Context, userUID, message, clientMessageID string) (*models.ChatExchange, error) {
	const op = "services.Send"

	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	userMsg, err := s.repo.InsertChatMessage(ctx, userUID, models.ChatRoleUser, message)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	reply, err := s.responder.Respond(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	assistantMsg, err := s.repo.InsertChatMessage(ctx, userUID, models.ChatRoleAssistant, reply)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("chat exchange stored",
		slog.String("user_uid", userUID),
		slog.Int("user_message_id", userMsg.ID),
		slog.Int("assistant_message_id", assistantMsg.ID))

	return &models.ChatExchange{
		UserMessage:      *userMsg,
		AssistantMessage: *assistantMsg,
		ClientMessageID:  clientMessageID,
	}, nil
}

// History returns the most recent messages of one user in chronological
// order, capped at the configured limit.
func (s *ChatService) History(ctx context.Context, userUID string) ([]*models.ChatMessage, error) {
	return s.repo.ListChatMessages(ctx, userUID, s.historyLimit)
}
