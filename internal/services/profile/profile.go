// Package services holds the business logic of reading and updating
// user profiles.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/chatco/chatco-backend/internal/lib/access"
	"github.com/chatco/chatco-backend/internal/models"
)

// ProfileRepository describes the profile storage used by this service.
type ProfileRepository interface {
	// GetProfile returns the profile by UID.
	GetProfile(ctx context.Context, userUID string) (*models.Profile, error)
	// ListProfiles returns all profiles, newest first.
	ListProfiles(ctx context.Context) ([]*models.Profile, error)
	// UpdateUsername renames a profile.
	UpdateUsername(ctx context.Context, userUID, username string) error
	// GetSubscriptionStatus returns the stored subscription status.
	GetSubscriptionStatus(ctx context.Context, userUID string) (string, error)
}

// ProfileInfo is a profile enriched with the derived trial countdown.
// TrialDaysLeft is computed at read time and never stored.
type ProfileInfo struct {
	models.Profile
	TrialDaysLeft int `json:"trial_days_left"`
}

// ProfileService implements profile reads and updates.
type ProfileService struct {
	repo ProfileRepository
	log  *slog.Logger
}

// NewProfileService creates a ProfileService.
func NewProfileService(repo ProfileRepository, log *slog.Logger) *ProfileService {
	return &ProfileService{repo: repo, log: log}
}

// Get returns the profile with its trial countdown.
func (s *ProfileService) Get(ctx context.Context, userUID string) (*ProfileInfo, error) {
	profile, err := s.repo.GetProfile(ctx, userUID)
	if err != nil {
		return nil, err
	}
	return &ProfileInfo{
		Profile:       *profile,
		TrialDaysLeft: access.TrialDaysLeft(profile.TrialEndDate, time.Now().UTC()),
	}, nil
}

// ListAll returns every profile with its trial countdown. Admin only.
func (s *ProfileService) ListAll(ctx context.Context) ([]*ProfileInfo, error) {
	profiles, err := s.repo.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	result := make([]*ProfileInfo, 0, len(profiles))
	for _, p := range profiles {
		result = append(result, &ProfileInfo{
			Profile:       *p,
			TrialDaysLeft: access.TrialDaysLeft(p.TrialEndDate, now),
		})
	}
	return result, nil
}

// UpdateUsername renames the profile. Last writer wins.
func (s *ProfileService) UpdateUsername(ctx context.Context, userUID, username string) error {
	if err := s.repo.UpdateUsername(ctx, userUID, username); err != nil {
		return err
	}
	s.log.Info("profile renamed", slog.String("uid", userUID))
	return nil
}

// GetSubscriptionStatus reads the current status from storage. Used by
// the chat gate on every request.
func (s *ProfileService) GetSubscriptionStatus(ctx context.Context, userUID string) (string, error) {
	return s.repo.GetSubscriptionStatus(ctx, userUID)
}
