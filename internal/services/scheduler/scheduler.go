// Package services finds trials that expire today and publishes one
// notification event per affected profile. The profile rows themselves
// are never mutated, expiry is always derived at read time.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/chatco/chatco-backend/internal/lib/sl"
	"github.com/chatco/chatco-backend/internal/models"
	"github.com/chatco/chatco-backend/internal/rabbitmq"
)

// ProfileRepository describes the profile reads the scheduler needs.
type ProfileRepository interface {
	// FindTrialsExpiringToday returns profiles whose trial ends today.
	FindTrialsExpiringToday(ctx context.Context) ([]*models.Profile, error)
}

// EventPublisher sends notification events to the broker.
type EventPublisher interface {
	Publish(routingKey string, message any) error
}

// SchedulerService runs the daily trial expiry sweep.
type SchedulerService struct {
	repo      ProfileRepository
	publisher EventPublisher
	log       *slog.Logger
}

// NewSchedulerService creates a SchedulerService.
func NewSchedulerService(repo ProfileRepository, publisher EventPublisher, log *slog.Logger) *SchedulerService {
	return &SchedulerService{
		repo:      repo,
		publisher: publisher,
		log:       log,
	}
}

// Run sweeps immediately and then once per day until ctx is cancelled.
func (s *SchedulerService) Run(ctx context.Context) {
	s.sweepExpiringTrials(ctx)

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweepExpiringTrials(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (s *SchedulerService) sweepExpiringTrials(ctx context.Context) {
	s.log.Info("starting sweep for trials expiring today")
	profiles, err := s.repo.FindTrialsExpiringToday(ctx)
	if err != nil {
		s.log.Error("failed to find expiring trials", sl.Err(err))
		return
	}
	if len(profiles) == 0 {
		s.log.Info("no expiring trials found")
		return
	}
	s.log.Info("found expiring trials", "count", len(profiles))
	for _, profile := range profiles {
		event := models.TrialExpiryEvent{
			Email:    profile.Email,
			Username: profile.Username,
		}
		if profile.TrialEndDate != nil {
			event.TrialEndDate = *profile.TrialEndDate
		}
		if err := s.publisher.Publish(rabbitmq.TrialExpiringKey, event); err != nil {
			s.log.Error("failed to publish trial expiry event", sl.Err(err))
		}
	}
}
