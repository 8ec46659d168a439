package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chatco/chatco-backend/internal/models"
)

type ProfileRepoMock struct {
	mock.Mock
}

func (m *ProfileRepoMock) GetProfile(ctx context.Context, userUID string) (*models.Profile, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *ProfileRepoMock) ListProfiles(ctx context.Context) ([]*models.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Profile), args.Error(1)
}

func (m *ProfileRepoMock) UpdateUsername(ctx context.Context, userUID, username string) error {
	args := m.Called(ctx, userUID, username)
	return args.Error(0)
}

func (m *ProfileRepoMock) GetSubscriptionStatus(ctx context.Context, userUID string) (string, error) {
	args := m.Called(ctx, userUID)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestProfileService_Get(t *testing.T) {
	tests := []struct {
		name         string
		trialEnd     *time.Time
		wantDaysLeft int
	}{
		{
			name: "partial day rounds up",
			trialEnd: func() *time.Time {
				d := time.Now().UTC().Add(5 * 24 * time.Hour).Add(time.Minute)
				return &d
			}(),
			wantDaysLeft: 6,
		},
		{
			name: "expired trial clamps to zero",
			trialEnd: func() *time.Time {
				d := time.Now().UTC().Add(-48 * time.Hour)
				return &d
			}(),
			wantDaysLeft: 0,
		},
		{
			name:         "no trial date",
			trialEnd:     nil,
			wantDaysLeft: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(ProfileRepoMock)
			repo.On("GetProfile", mock.Anything, "uid-1").Return(&models.Profile{
				UID:                "uid-1",
				Username:           "jonas",
				SubscriptionStatus: models.SubscriptionTrial,
				TrialEndDate:       tt.trialEnd,
			}, nil).Once()

			svc := NewProfileService(repo, newNoopLogger())
			info, err := svc.Get(context.Background(), "uid-1")

			require.NoError(t, err)
			assert.Equal(t, "jonas", info.Username)
			assert.Equal(t, tt.wantDaysLeft, info.TrialDaysLeft)
			repo.AssertExpectations(t)
		})
	}
}

func TestProfileService_UpdateUsername(t *testing.T) {
	repo := new(ProfileRepoMock)
	repo.On("UpdateUsername", mock.Anything, "uid-1", "naujas").Return(nil).Once()

	svc := NewProfileService(repo, newNoopLogger())
	require.NoError(t, svc.UpdateUsername(context.Background(), "uid-1", "naujas"))
	repo.AssertExpectations(t)
}

func TestProfileService_UpdateUsernameError(t *testing.T) {
	repo := new(ProfileRepoMock)
	repo.On("UpdateUsername", mock.Anything, "uid-1", "naujas").
		Return(errors.New("db error")).Once()

	svc := NewProfileService(repo, newNoopLogger())
	require.Error(t, svc.UpdateUsername(context.Background(), "uid-1", "naujas"))
	repo.AssertExpectations(t)
}

func TestProfileService_ListAll(t *testing.T) {
	repo := new(ProfileRepoMock)
	repo.On("ListProfiles", mock.Anything).Return([]*models.Profile{
		{UID: "uid-1", Username: "jonas"},
		{UID: "uid-2", Username: "ona"},
	}, nil).Once()

	svc := NewProfileService(repo, newNoopLogger())
	infos, err := svc.ListAll(context.Background())

	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "jonas", infos[0].Username)
	assert.Equal(t, 0, infos[0].TrialDaysLeft)
	repo.AssertExpectations(t)
}
