package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/chatco/chatco-backend/internal/migrations"
	"github.com/chatco/chatco-backend/internal/models"
)

// setupTestDatabase starts a throwaway postgres container and runs the
// real migrations against it. Skipped with -short.
func setupTestDatabase(t *testing.T) (*Storage, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	pgContainer, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("chatco_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	storage, err := New(connStr)
	require.NoError(t, err)

	require.NoError(t, migrations.Run(storage.DB, "../../../migrations"))

	cleanup := func() {
		_ = storage.DB.Close()
		_ = pgContainer.Terminate(ctx)
	}
	return storage, cleanup
}

// TestDataFactory creates rows for integration tests.
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory returns a factory bound to the given storage.
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateProfile inserts a profile and returns its UID.
func (f *TestDataFactory) CreateProfile(t *testing.T, email, username, role, status string, trialEnd *time.Time) string {
	t.Helper()
	var uid string
	err := f.storage.DB.QueryRow(`INSERT INTO profiles
		(email, username, password_hash, role, subscription_status, trial_end_date)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING uid`,
		email, username, "hashedpassword", role, status, trialEnd).Scan(&uid)
	require.NoError(t, err)
	return uid
}

// CreateChatMessage inserts one chat row.
func (f *TestDataFactory) CreateChatMessage(t *testing.T, userUID, role, message string) {
	t.Helper()
	_, err := f.storage.DB.Exec(`INSERT INTO chat_messages (user_uid, role, message)
		VALUES ($1, $2, $3)`, userUID, role, message)
	require.NoError(t, err)
}

// GetTestProfileData returns standard profile fixture values.
func GetTestProfileData() models.Profile {
	trialEnd := time.Now().UTC().AddDate(0, 0, 7)
	return models.Profile{
		Email:              "test@example.com",
		Username:           "testuser",
		PasswordHash:       "hashedpassword",
		Role:               models.RoleUser,
		SubscriptionStatus: models.SubscriptionTrial,
		TrialEndDate:       &trialEnd,
	}
}
