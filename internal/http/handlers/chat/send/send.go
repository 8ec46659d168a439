// Package send implements the HTTP handler for posting a chat message.
// It returns both the persisted user message and the assistant reply so
// the client can reconcile its optimistic insert.
package send

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/chatco/chatco-backend/internal/http/middlewarectx"
	"github.com/chatco/chatco-backend/internal/http/response"
	"github.com/chatco/chatco-backend/internal/lib/sl"
	"github.com/chatco/chatco-backend/internal/models"
	chatservice "github.com/chatco/chatco-backend/internal/services/chat"
)

// Request is the chat message payload. ClientMessageID is optional and
// echoed back untouched.
type Request struct {
	Message         string `json:"message" validate:"required,max=4000"`
	ClientMessageID string `json:"client_message_id" validate:"omitempty,max=100"`
}

// Service describes the chat send logic.
type Service interface {
	Send(ctx context.Context, userUID, message, clientMessageID string) (*models.ChatExchange, error)
}

// Handler handles chat message posts.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New creates a Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Send a chat message
// @Description Stores the message, produces the assistant reply and returns both.
// @Tags Chat
// @Accept  json
// @Produce  json
// @Param request body Request true "Message"
// @Success 200 {object} map[string]any "Stored exchange"
// @Failure 400 {object} response.ErrorResponse "Invalid JSON or empty message"
// @Failure 401 {object} response.ErrorResponse "Not authenticated"
// @Failure 403 {object} response.ErrorResponse "Subscription inactive"
// @Security BearerAuth
// @Router /chat/messages [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.chat.send"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user identification missing")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("user identification missing"))
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	exchange, err := h.service.Send(r.Context(), userUID, req.Message, req.ClientMessageID)
	if err != nil {
		if errors.Is(err, chatservice.ErrEmptyMessage) {
			log.Warn("empty message rejected")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("message is empty"))
			return
		}
		log.Error("failed to send message", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not send message"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(exchange))
}
