// Package history implements the HTTP handler that returns the current
// user's recent chat history in chronological order.
package history

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/chatco/chatco-backend/internal/http/middlewarectx"
	"github.com/chatco/chatco-backend/internal/http/response"
	"github.com/chatco/chatco-backend/internal/lib/sl"
	"github.com/chatco/chatco-backend/internal/models"
)

// Service describes the chat history logic.
type Service interface {
	History(ctx context.Context, userUID string) ([]*models.ChatMessage, error)
}

// Handler handles chat history reads.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates a Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Read chat history
// @Description Returns the most recent messages in chronological order.
// @Tags Chat
// @Produce  json
// @Success 200 {object} map[string]any "Messages"
// @Failure 401 {object} response.ErrorResponse "Not authenticated"
// @Failure 403 {object} response.ErrorResponse "Subscription inactive"
// @Security BearerAuth
// @Router /chat/messages [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.chat.history"

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

	messages, err := h.service.History(r.Context(), userUID)
	if err != nil {
		log.Error("failed to read history", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read history"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"messages": messages,
	}))
}
