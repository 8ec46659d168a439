// Package services holds the business logic of registration, login and
// password reset requests.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/chatco/chatco-backend/internal/lib/jwt"
	"github.com/chatco/chatco-backend/internal/lib/password"
	"github.com/chatco/chatco-backend/internal/lib/sl"
	"github.com/chatco/chatco-backend/internal/models"
	"github.com/chatco/chatco-backend/internal/rabbitmq"
	"github.com/chatco/chatco-backend/internal/storage/repository"
)

// ErrInvalidCredentials is returned on any login failure. The caller
// must not reveal whether the e-mail or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrEmailTaken is returned when registering an already known e-mail.
var ErrEmailTaken = errors.New("email already registered")

const resetTokenTTL = time.Hour

// ProfileRepository describes the profile storage the auth flow needs.
type ProfileRepository interface {
	// CreateProfile stores a new profile and returns its UID.
	CreateProfile(ctx context.Context, profile models.Profile) (string, error)
	// GetProfileByEmail returns the profile registered under an e-mail.
	GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error)
	// CreateResetToken stores a password reset token.
	CreateResetToken(ctx context.Context, token, userUID string, expiresAt time.Time) error
}

// EventPublisher sends notification events to the broker.
type EventPublisher interface {
	Publish(routingKey string, message any) error
}

// AuthService implements registration, login and reset requests.
type AuthService struct {
	profiles  ProfileRepository
	jwtMaker  jwt.Maker
	publisher EventPublisher
	trialDays int
	log       *slog.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(profiles ProfileRepository, jwtMaker jwt.Maker, publisher EventPublisher, trialDays int, log *slog.Logger) *AuthService {
	return &AuthService{
		profiles:  profiles,
		jwtMaker:  jwtMaker,
		publisher: publisher,
		trialDays: trialDays,
		log:       log,
	}
}

// Register creates a profile with a hashed password, the default user
// role and a fresh trial. Returns the new profile UID.
func (s *AuthService) Register(ctx context.Context, email, username, rawPassword string) (string, error) {
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", err
	}
	trialEndDate := time.Now().UTC().AddDate(0, 0, s.trialDays)
	profile := models.Profile{
		Email:              email,
		Username:           username,
		PasswordHash:       hashed,
		Role:               models.RoleUser,
		SubscriptionStatus: models.SubscriptionTrial,
		TrialEndDate:       &trialEndDate,
	}
	uid, err := s.profiles.CreateProfile(ctx, profile)
	if err != nil {
		return "", err
	}
	s.log.Info("registered new profile", slog.String("uid", uid))
	return uid, nil
}

// Login verifies the e-mail and password and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (token, role string, err error) {
	profile, err := s.profiles.GetProfileByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", err
	}
	if err := password.CompareHash(profile.PasswordHash, rawPassword); err != nil {
		return "", "", ErrInvalidCredentials
	}
	token, err = s.jwtMaker.GenerateToken(profile.Username, profile.Role, profile.UID)
	if err != nil {
		return "", "", err
	}
	return token, profile.Role, nil
}

// RequestPasswordReset stores a reset token and queues the reset
// e-mail. An unknown e-mail is treated as success so the endpoint does
// not leak which addresses are registered.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	const op = "services.RequestPasswordReset"

	profile, err := s.profiles.GetProfileByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Info("password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	token := uuid.NewString()
	expiresAt := time.Now().UTC().Add(resetTokenTTL)
	if err := s.profiles.CreateResetToken(ctx, token, profile.UID, expiresAt); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	event := models.PasswordResetEvent{
		Email: profile.Email,
		Token: token,
	}
	if err := s.publisher.Publish(rabbitmq.PasswordResetKey, event); err != nil {
		s.log.Error("failed to publish password reset event", sl.Err(err))
	}
	return nil
}
