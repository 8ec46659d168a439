// Package services accepts contact form submissions and notifies the
// site owner through the broker.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chatco/chatco-backend/internal/lib/sl"
	"github.com/chatco/chatco-backend/internal/models"
	"github.com/chatco/chatco-backend/internal/rabbitmq"
)

// ContactRepository describes the submission storage.
type ContactRepository interface {
	// InsertContactSubmission stores one submission and returns its id.
	InsertContactSubmission(ctx context.Context, sub models.ContactSubmission) (int, error)
	// ListContactSubmissions returns all submissions, newest first.
	ListContactSubmissions(ctx context.Context) ([]*models.ContactSubmission, error)
}

// EventPublisher sends notification events to the broker.
type EventPublisher interface {
	Publish(routingKey string, message any) error
}

// ContactService implements the contact form.
type ContactService struct {
	repo      ContactRepository
	publisher EventPublisher
	log       *slog.Logger
}

// NewContactService creates a ContactService.
func NewContactService(repo ContactRepository, publisher EventPublisher, log *slog.Logger) *ContactService {
	return &ContactService{repo: repo, publisher: publisher, log: log}
}

// Submit stores a submission and queues the owner notification. A
// failed publish is logged but does not fail the submission, the row is
// already persisted.
func (s *ContactService) Submit(ctx context.Context, name, email, message string) (int, error) {
	const op = "services.Submit"

	id, err := s.repo.InsertContactSubmission(ctx, models.ContactSubmission{
		Name:    name,
		Email:   email,
		Message: message,
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	event := models.ContactSubmissionEvent{
		Name:    name,
		Email:   email,
		Message: message,
	}
	if err := s.publisher.Publish(rabbitmq.ContactSubmissionKey, event); err != nil {
		s.log.Error("failed to publish contact submission event", sl.Err(err))
	}

	s.log.Info("contact submission stored", slog.Int("id", id))
	return id, nil
}

// List returns all submissions. Admin only.
func (s *ContactService) List(ctx context.Context) ([]*models.ContactSubmission, error) {
	return s.repo.ListContactSubmissions(ctx)
}
