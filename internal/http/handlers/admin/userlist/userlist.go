// Package userlist implements the admin listing of registered profiles.
package userlist

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/chatco/chatco-backend/internal/http/response"
	"github.com/chatco/chatco-backend/internal/lib/sl"
	profileservice "github.com/chatco/chatco-backend/internal/services/profile"
)

// Service describes the admin profile listing logic.
type Service interface {
	ListAll(ctx context.Context) ([]*profileservice.ProfileInfo, error)
}

// Handler handles admin profile listings.
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
// @Summary List users
// @Description Returns every profile, newest first.
// @Tags Admin
// @Produce  json
// @Success 200 {object} map[string]any "Profiles"
// @Failure 403 {object} response.ErrorResponse "Admin access required"
// @Security BearerAuth
// @Router /admin/users [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.userlist"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	profiles, err := h.service.ListAll(r.Context())
	if err != nil {
		log.Error("failed to list profiles", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list users"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"users": profiles,
	}))
}
