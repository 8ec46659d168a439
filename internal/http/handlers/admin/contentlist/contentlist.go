// Package contentlist implements the admin listing of raw content
// sections.
package contentlist

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/chatco/chatco-backend/internal/http/response"
	"github.com/chatco/chatco-backend/internal/lib/sl"
	"github.com/chatco/chatco-backend/internal/models"
)

// Service describes the admin content listing logic.
type Service interface {
	ListAll(ctx context.Context) ([]*models.ContentSection, error)
}

// Handler handles admin content listings.
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
// @Summary List content sections
// @Description Returns every stored section with its raw content.
// @Tags Admin
// @Produce  json
// @Success 200 {object} map[string]any "Sections"
// @Failure 403 {object} response.ErrorResponse "Admin access required"
// @Security BearerAuth
// @Router /admin/content [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.contentlist"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sections, err := h.service.ListAll(r.Context())
	if err != nil {
		log.Error("failed to list content sections", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list content sections"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"sections": sections,
	}))
}
