package register_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chatco/chatco-backend/internal/http/handlers/auth/register"
	"github.com/chatco/chatco-backend/internal/http/response"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Register(ctx context.Context, email, username, rawPassword string) (string, error) {
	args := m.Called(ctx, email, username, rawPassword)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(s *ServiceMock)
		wantStatusCode int
		wantStatus     string
	}{
		{
			name: "successful registration",
			body: `{"email":"jonas@example.lt","username":"jonas","password":"password123","confirm_password":"password123"}`,
			setupMocks: func(s *ServiceMock) {
				s.On("Register", mock.Anything, "jonas@example.lt", "jonas", "password123").
					Return("uid-1", nil).Once()
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
			name:           "password too short",
			body:           `{"email":"jonas@example.lt","username":"jonas","password":"short","confirm_password":"short"}`,
			setupMocks:     func(s *ServiceMock) {},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantStatus:     response.StatusError,
		},
		{
			name:           "password confirmation mismatch",
			body:           `{"email":"jonas@example.lt","username":"jonas","password":"password123","confirm_password":"password124"}`,
			setupMocks:     func(s *ServiceMock) {},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantStatus:     response.StatusError,
		},
		{
			name:           "invalid email",
			body:           `{"email":"not-an-email","username":"jonas","password":"password123","confirm_password":"password123"}`,
			setupMocks:     func(s *ServiceMock) {},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantStatus:     response.StatusError,
		},
		{
			name: "service error",
			body: `{"email":"jonas@example.lt","username":"jonas","password":"password123","confirm_password":"password123"}`,
			setupMocks: func(s *ServiceMock) {
				s.On("Register", mock.Anything, "jonas@example.lt", "jonas", "password123").
					Return("", errors.New("db error")).Once()
			},
			wantStatusCode: http.StatusInternalServerError,
			wantStatus:     response.StatusError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setupMocks(svc)

			handler := register.New(newNoopLogger(), svc)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewBufferString(tt.body))
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
