// Package read implements the HTTP handler that returns the current
// user's profile with the derived trial countdown.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/chatco/chatco-backend/internal/http/middlewarectx"
	"github.com/chatco/chatco-backend/internal/http/response"
	"github.com/chatco/chatco-backend/internal/lib/sl"
	profileservice "github.com/chatco/chatco-backend/internal/services/profile"
	"github.com/chatco/chatco-backend/internal/storage/repository"
)

// Service describes the profile read logic.
type Service interface {
	Get(ctx context.Context, userUID string) (*profileservice.ProfileInfo, error)
}

// Handler handles profile reads.
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
// @Summary Read own profile
// @Description Returns the authenticated user's profile and trial countdown.
// @Tags Profile
// @Produce  json
// @Success 200 {object} map[string]any "Profile"
// @Failure 401 {object} response.ErrorResponse "Not authenticated"
// @Failure 404 {object} response.ErrorResponse "Profile not found"
// @Security BearerAuth
// @Router /profile [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.profile.read"

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

	info, err := h.service.Get(r.Context(), userUID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn("profile not found", slog.String("uid", userUID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("profile not found"))
			return
		}
		log.Error("failed to read profile", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read profile"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"profile": info,
	}))
}
