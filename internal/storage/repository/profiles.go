package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/chatco/chatco-backend/internal/models"
)

// CreateProfile stores a new profile and returns its server-assigned UID.
func (s *Storage) CreateProfile(ctx context.Context, profile models.Profile) (string, error) {
	const op = "repository.CreateProfile"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUID string
	query := `INSERT INTO profiles (email, username, password_hash, role,
			      subscription_status, trial_end_date)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING uid;`
	if err := s.DB.QueryRowContext(ctx, query,
		profile.Email, profile.Username, profile.PasswordHash, profile.Role,
		profile.SubscriptionStatus, profile.TrialEndDate).Scan(&newUID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// GetProfileByEmail returns the profile registered under an e-mail
// address, or ErrNotFound.
func (s *Storage) GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error) {
	const op = "repository.GetProfileByEmail"
	return s.getProfile(ctx, op, `WHERE email = $1`, email)
}

// GetProfile returns the profile by its UID, or ErrNotFound.
func (s *Storage) GetProfile(ctx context.Context, userUID string) (*models.Profile, error) {
	const op = "repository.GetProfile"
	return s.getProfile(ctx, op, `WHERE uid = $1`, userUID)
}

func (s *Storage) getProfile(ctx context.Context, op, where string, arg any) (*models.Profile, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, email, username, password_hash, role,
			      subscription_status, trial_end_date, created_at, updated_at
			  FROM profiles ` + where
	p := &models.Profile{}
	row := s.DB.QueryRowContext(ctx, query, arg)

	var trialEndDate sql.NullTime
	if err := row.Scan(&p.UID, &p.Email, &p.Username, &p.PasswordHash, &p.Role,
		&p.SubscriptionStatus, &trialEndDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if trialEndDate.Valid {
		p.TrialEndDate = &trialEndDate.Time
	}
	return p, nil
}

// ListProfiles returns all profiles, newest first. Used by the admin
// surface only.
func (s *Storage) ListProfiles(ctx context.Context) ([]*models.Profile, error) {
	const op = "repository.ListProfiles"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, email, username, password_hash, role,
			      subscription_status, trial_end_date, created_at, updated_at
			  FROM profiles
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Profile
	for rows.Next() {
		var p models.Profile
		var trialEndDate sql.NullTime
		if err = rows.Scan(&p.UID, &p.Email, &p.Username, &p.PasswordHash, &p.Role,
			&p.SubscriptionStatus, &trialEndDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if trialEndDate.Valid {
			p.TrialEndDate = &trialEndDate.Time
		}
		result = append(result, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateUsername renames a profile. Last writer wins, there is no
// optimistic concurrency control.
func (s *Storage) UpdateUsername(ctx context.Context, userUID, username string) error {
	const op = "repository.UpdateUsername"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE profiles
			  SET username = $1, updated_at = now()
			  WHERE uid = $2`
	res, err := s.DB.ExecContext(ctx, query, username, userUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

// GetSubscriptionStatus returns the stored subscription status of a
// profile. Read fresh on every gated request.
func (s *Storage) GetSubscriptionStatus(ctx context.Context, userUID string) (string, error) {
	const op = "repository.GetSubscriptionStatus"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT subscription_status FROM profiles WHERE uid = $1`
	var status string
	if err := s.DB.QueryRowContext(ctx, query, userUID).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return status, nil
}

// FindTrialsExpiringToday returns profiles whose trial ends today, for
// the notification scheduler. The profile row itself is never mutated.
func (s *Storage) FindTrialsExpiringToday(ctx context.Context) ([]*models.Profile, error) {
	const op = "repository.FindTrialsExpiringToday"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, email, username, password_hash, role,
			      subscription_status, trial_end_date, created_at, updated_at
			  FROM profiles
			  WHERE subscription_status = 'trial'
			    AND trial_end_date::DATE = CURRENT_DATE;`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Profile
	for rows.Next() {
		var p models.Profile
		var trialEndDate sql.NullTime
		if err = rows.Scan(&p.UID, &p.Email, &p.Username, &p.PasswordHash, &p.Role,
			&p.SubscriptionStatus, &trialEndDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if trialEndDate.Valid {
			p.TrialEndDate = &trialEndDate.Time
		}
		result = append(result, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
