package send_test

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

	"github.com/chatco/chatco-backend/internal/http/handlers/chat/send"
	"github.com/chatco/chatco-backend/internal/http/middlewarectx"
	"github.com/chatco/chatco-backend/internal/http/response"
	"github.com/chatco/chatco-backend/internal/models"
	chatservice "github.com/chatco/chatco-backend/internal/services/chat"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Send(ctx context.Context, userUID, message, clientMessageID string) (*models.ChatExchange, error) {
	args := m.Called(ctx, userUID, message, clientMessageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatExchange), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestSendHandler(t *testing.T) {
	exchange := &models.ChatExchange{
		UserMessage:      models.ChatMessage{ID: 1, Role: models.ChatRoleUser, Message: "Labas"},
		AssistantMessage: models.ChatMessage{ID: 2, Role: models.ChatRoleAssistant, Message: "Atsakymas"},
		ClientMessageID:  "client-1",
	}

	tests := []struct {
		name           string
		userUID        string
		body           string
		setupMocks     func(s *ServiceMock)
		wantStatusCode int
		wantStatus     string
	}{
		{
			name:    "successful exchange",
			userUID: "uid-1",
			body:    `{"message":"Labas","client_message_id":"client-1"}`,
			setupMocks: func(s *ServiceMock) {
				s.On("Send", mock.Anything, "uid-1", "Labas", "client-1").
					Return(exchange, nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantStatus:     response.StatusOK,
		},
		{
			name:           "missing user identity",
			userUID:        "",
			body:           `{"message":"Labas"}`,
			setupMocks:     func(s *ServiceMock) {},
			wantStatusCode: http.StatusUnauthorized,
			wantStatus:     response.StatusError,
		},
		{
			name:           "invalid json",
			userUID:        "uid-1",
			body:           `{broken`,
			setupMocks:     func(s *ServiceMock) {},
			wantStatusCode: http.StatusBadRequest,
			wantStatus:     response.StatusError,
		},
		{
			name:    "whitespace-only message",
			userUID: "uid-1",
			body:    `{"message":"   "}`,
			setupMocks: func(s *ServiceMock) {
				s.On("Send", mock.Anything, "uid-1", "   ", "").
					Return(nil, chatservice.ErrEmptyMessage).Once()
			},
			wantStatusCode: http.StatusBadRequest,
			wantStatus:     response.StatusError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setupMocks(svc)

			handler := send.New(newNoopLogger(), svc)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/messages", bytes.NewBufferString(tt.body))
			if tt.userUID != "" {
				ctx := context.WithValue(req.Context(), middlewarectx.UserUID, tt.userUID)
				req = req.WithContext(ctx)
			}
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

func TestSendHandlerEchoesClientMessageID(t *testing.T) {
	svc := new(ServiceMock)
	svc.On("Send", mock.Anything, "uid-1", "Labas", "tmp-42").
		Return(&models.ChatExchange{
			UserMessage:      models.ChatMessage{ID: 10, Message: "Labas"},
			AssistantMessage: models.ChatMessage{ID: 11, Message: "Atsakymas"},
			ClientMessageID:  "tmp-42",
		}, nil).Once()

	handler := send.New(newNoopLogger(), svc)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/messages",
		bytes.NewBufferString(`{"message":"Labas","client_message_id":"tmp-42"}`))
	req = req.WithContext(context.WithValue(req.Context(), middlewarectx.UserUID, "uid-1"))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status string              `json:"status"`
		Data   models.ChatExchange `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "tmp-42", resp.Data.ClientMessageID)
	assert.Equal(t, 10, resp.Data.UserMessage.ID)
	svc.AssertExpectations(t)
}
