package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatco/chatco-backend/internal/models"
)

func TestStorage_CreateAndGetProfile(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	data := GetTestProfileData()
	uid, err := storage.CreateProfile(context.Background(), data)
	require.NoError(t, err)
	require.NotEmpty(t, uid)

	got, err := storage.GetProfile(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, data.Email, got.Email)
	assert.Equal(t, models.RoleUser, got.Role)
	assert.Equal(t, models.SubscriptionTrial, got.SubscriptionStatus)
	require.NotNil(t, got.TrialEndDate)

	byEmail, err := storage.GetProfileByEmail(context.Background(), data.Email)
	require.NoError(t, err)
	assert.Equal(t, uid, byEmail.UID)
}

func TestStorage_GetProfile_NotFound(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	_, err := storage.GetProfileByEmail(context.Background(), "niekas@example.com")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStorage_UpdateUsername(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	uid := factory.CreateProfile(t, "a@example.com", "senas", models.RoleUser, models.SubscriptionTrial, nil)

	require.NoError(t, storage.UpdateUsername(context.Background(), uid, "naujas"))

	got, err := storage.GetProfile(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, "naujas", got.Username)

	err = storage.UpdateUsername(context.Background(), "00000000-0000-0000-0000-000000000000", "x")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStorage_ContentSection_UpdateVisibleOnRead(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	// about_title is seeded by migration
	before, err := storage.GetContentSection(context.Background(), "about_title")
	require.NoError(t, err)
	require.NotEmpty(t, before.SectionContent)

	require.NoError(t, storage.UpdateContentSection(context.Background(), "about_title", "Naujas pavadinimas"))

	after, err := storage.GetContentSection(context.Background(), "about_title")
	require.NoError(t, err)
	assert.Equal(t, "Naujas pavadinimas", after.SectionContent)

	err = storage.UpdateContentSection(context.Background(), "no_such_key", "x")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStorage_GetContentSectionsByKeys(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	sections, err := storage.GetContentSectionsByKeys(context.Background(),
		[]string{"about_title", "no_such_key"})
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, "about_title", sections[0].SectionKey)
}

func TestStorage_ChatMessages_OrderAndLimit(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	uid := factory.CreateProfile(t, "chat@example.com", "chatuser", models.RoleUser, models.SubscriptionActive, nil)

	first, err := storage.InsertChatMessage(context.Background(), uid, models.ChatRoleUser, "labas")
	require.NoError(t, err)
	second, err := storage.InsertChatMessage(context.Background(), uid, models.ChatRoleAssistant, "atsakymas")
	require.NoError(t, err)
	require.Greater(t, second.ID, first.ID)

	got, err := storage.ListChatMessages(context.Background(), uid, 50)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.ChatRoleUser, got[0].Role)
	assert.Equal(t, models.ChatRoleAssistant, got[1].Role)
	assert.False(t, got[1].CreatedAt.Before(got[0].CreatedAt))

	limited, err := storage.ListChatMessages(context.Background(), uid, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "atsakymas", limited[0].Message)
}

func TestStorage_Plans_Seeded(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	active, err := storage.ListActivePlans(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, active)
	for i := 1; i < len(active); i++ {
		assert.LessOrEqual(t, active[i-1].SortOrder, active[i].SortOrder)
	}
	for _, p := range active {
		assert.True(t, p.IsActive)
		assert.NotEmpty(t, p.Features)
	}
}

func TestStorage_ContactSubmissions(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	id, err := storage.InsertContactSubmission(context.Background(), models.ContactSubmission{
		Name:    "Jonas",
		Email:   "jonas@example.com",
		Message: "Sveiki!",
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	got, err := storage.ListContactSubmissions(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Jonas", got[0].Name)
}

func TestStorage_FindTrialsExpiringToday(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	today := time.Now().UTC()
	tomorrow := today.AddDate(0, 0, 1)
	factory.CreateProfile(t, "today@example.com", "today", models.RoleUser, models.SubscriptionTrial, &today)
	factory.CreateProfile(t, "tomorrow@example.com", "tomorrow", models.RoleUser, models.SubscriptionTrial, &tomorrow)
	factory.CreateProfile(t, "active@example.com", "active", models.RoleUser, models.SubscriptionActive, &today)

	got, err := storage.FindTrialsExpiringToday(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "today@example.com", got[0].Email)
}
