package middlewarectx_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chatco/chatco-backend/internal/http/middlewarectx"
	"github.com/chatco/chatco-backend/internal/lib/jwt"
	"github.com/chatco/chatco-backend/internal/models"
)

type SubscriptionServiceMock struct {
	mock.Mock
}

func (m *SubscriptionServiceMock) GetSubscriptionStatus(ctx context.Context, userUID string) (string, error) {
	args := m.Called(ctx, userUID)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestJWTMiddleware(t *testing.T) {
	maker := jwt.NewJWTMaker("test-secret", time.Hour)
	logger := newNoopLogger()

	validToken, err := maker.GenerateToken("jonas", models.RoleUser, "uid-123")
	require.NoError(t, err)

	staleMaker := jwt.NewJWTMaker("other-secret", time.Hour)
	foreignToken, err := staleMaker.GenerateToken("jonas", models.RoleUser, "uid-123")
	require.NoError(t, err)

	handlerCalled := false
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		assert.Equal(t, "jonas", r.Context().Value(middlewarectx.User))
		assert.Equal(t, models.RoleUser, r.Context().Value(middlewarectx.Role))
		assert.Equal(t, "uid-123", r.Context().Value(middlewarectx.UserUID))
		w.WriteHeader(http.StatusOK)
	})

	mw := middlewarectx.JWTMiddleware(maker, logger)(nextHandler)

	tests := []struct {
		name           string
		authHeader     string
		wantStatusCode int
		wantCalled     bool
	}{
		{
			name:           "missing Authorization header",
			authHeader:     "",
			wantStatusCode: http.StatusUnauthorized,
			wantCalled:     false,
		},
		{
			name:           "invalid Authorization header prefix",
			authHeader:     "Basic sometoken",
			wantStatusCode: http.StatusUnauthorized,
			wantCalled:     false,
		},
		{
			name:           "token signed with another key",
			authHeader:     "Bearer " + foreignToken,
			wantStatusCode: http.StatusUnauthorized,
			wantCalled:     false,
		},
		{
			name:           "valid token",
			authHeader:     "Bearer " + validToken,
			wantStatusCode: http.StatusOK,
			wantCalled:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled = false

			req := httptest.NewRequest(http.MethodGet, "/somepath", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			mw.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Equal(t, tt.wantCalled, handlerCalled)
		})
	}
}

func TestAdminOnlyMiddleware(t *testing.T) {
	logger := newNoopLogger()

	handlerCalled := false
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	})

	mw := middlewarectx.AdminOnlyMiddleware(logger)(nextHandler)

	tests := []struct {
		name           string
		role           string
		wantStatusCode int
		wantCalled     bool
	}{
		{
			name:           "no role in context",
			role:           "",
			wantStatusCode: http.StatusUnauthorized,
			wantCalled:     false,
		},
		{
			name:           "regular user denied",
			role:           models.RoleUser,
			wantStatusCode: http.StatusForbidden,
			wantCalled:     false,
		},
		{
			name:           "admin allowed",
			role:           models.RoleAdmin,
			wantStatusCode: http.StatusOK,
			wantCalled:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled = false

			req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
			if tt.role != "" {
				ctx := context.WithValue(req.Context(), middlewarectx.Role, tt.role)
				req = req.WithContext(ctx)
			}
			rec := httptest.NewRecorder()

			mw.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Equal(t, tt.wantCalled, handlerCalled)
		})
	}
}

func TestSubscriptionStatusMiddleware(t *testing.T) {
	logger := newNoopLogger()

	tests := []struct {
		name           string
		userUID        string
		mockStatus     string
		mockErr        error
		wantStatusCode int
		wantCalled     bool
	}{
		{
			name:           "missing user uid",
			userUID:        "",
			wantStatusCode: http.StatusUnauthorized,
			wantCalled:     false,
		},
		{
			name:           "status lookup error",
			userUID:        "uid-1",
			mockErr:        errors.New("storage down"),
			wantStatusCode: http.StatusInternalServerError,
			wantCalled:     false,
		},
		{
			name:           "inactive subscription denied",
			userUID:        "uid-1",
			mockStatus:     models.SubscriptionInactive,
			wantStatusCode: http.StatusForbidden,
			wantCalled:     false,
		},
		{
			name:           "trial allowed",
			userUID:        "uid-1",
			mockStatus:     models.SubscriptionTrial,
			wantStatusCode: http.StatusOK,
			wantCalled:     true,
		},
		{
			name:           "active allowed",
			userUID:        "uid-1",
			mockStatus:     models.SubscriptionActive,
			wantStatusCode: http.StatusOK,
			wantCalled:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subMock := new(SubscriptionServiceMock)
			if tt.userUID != "" {
				subMock.On("GetSubscriptionStatus", mock.Anything, tt.userUID).
					Return(tt.mockStatus, tt.mockErr).Once()
			}

			handlerCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				w.WriteHeader(http.StatusOK)
			})

			mw := middlewarectx.SubscriptionStatusMiddleware(logger, subMock)(nextHandler)

			req := httptest.NewRequest(http.MethodPost, "/chat/messages", nil)
			if tt.userUID != "" {
				ctx := context.WithValue(req.Context(), middlewarectx.UserUID, tt.userUID)
				req = req.WithContext(ctx)
			}
			rec := httptest.NewRecorder()

			mw.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Equal(t, tt.wantCalled, handlerCalled)
			subMock.AssertExpectations(t)
		})
	}
}
