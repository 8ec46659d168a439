package login_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chatco/chatco-backend/internal/http/handlers/auth/login"
	"github.com/chatco/chatco-backend/internal/http/response"
	authservice "github.com/chatco/chatco-backend/internal/services/auth"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Login(ctx context.Context, email, rawPassword string) (string, string, error) {
	args := m.Called(ctx, email, rawPassword)
	return args.String(0), args.String(1), args.Error(2)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(s *ServiceMock)
		wantStatusCode int
		wantStatus     string
	}{
		{
			name: "successful login",
			body: `{"email":"jonas@example.lt","password":"password123"}`,
			setupMocks: func(s *ServiceMock) {
				s.On("Login", mock.Anything, "jonas@example.lt", "password123").
					Return("token-abc", "user", nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantStatus:     response.StatusOK,
		},
		{
			name:           "invalid json",
			body:           `{broken`,
			setupMocks:     func(s *ServiceMock) {},
			wantStatusCode: http.StatusBadRequest,
			wantStatus:     response.StatusError,
		},
		{
			name:           "missing email",
			body:           `{"password":"password123"}`,
			setupMocks:     func(s *ServiceMock) {},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantStatus:     response.StatusError,
		},
		{
			name: "wrong credentials",
			body: `{"email":"jonas@example.lt","password":"wrong"}`,
			setupMocks: func(s *ServiceMock) {
				s.On("Login", mock.Anything, "jonas@example.lt", "wrong").
					Return("", "", authservice.ErrInvalidCredentials).Once()
			},
			wantStatusCode: http.StatusUnauthorized,
			wantStatus:     response.StatusError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setupMocks(svc)

			handler := login.New(newNoopLogger(), svc)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var resp response.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantStatus, resp.Status)
			svc.AssertExpectations(t)
		})
	}
}
