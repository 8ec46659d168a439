// Package rename implements the HTTP handler for changing the current
// user's display name.
package rename

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
	"github.com/chatco/chatco-backend/internal/storage/repository"
)

// Request is the rename payload.
type Request struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
}

// Service describes the rename logic.
type Service interface {
	UpdateUsername(ctx context.Context, userUID, username string) error
}

// Handler handles profile renames.
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
// @Summary Rename own profile
// @Description Updates the authenticated user's display name. Last writer wins.
// @Tags Profile
// @Accept  json
// @Produce  json
// @Param request body Request true "New username"
// @Success 200 {object} map[string]any "Profile renamed"
// @Failure 400 {object} response.ErrorResponse "Invalid JSON"
// @Failure 401 {object} response.ErrorResponse "Not authenticated"
// @Failure 422 {object} response.ErrorResponse "Validation error"
// @Security BearerAuth
// @Router /profile/username [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.profile.rename"

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

	if err := h.service.UpdateUsername(r.Context(), userUID, req.Username); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn("profile not found", slog.String("uid", userUID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("profile not found"))
			return
		}
		log.Error("failed to rename profile", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not rename profile"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"username": req.Username,
	}))
}
