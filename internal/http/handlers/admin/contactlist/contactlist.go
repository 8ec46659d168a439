// Package contactlist implements the admin listing of contact form
// submissions.
package contactlist

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

// Service describes the admin submission listing logic.
type Service interface {
	List(ctx context.Context) ([]*models.ContactSubmission, error)
}

// Handler handles admin submission listings.
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
// @Summary List contact submissions
// @Description Returns every submission, newest first.
// @Tags Admin
// @Produce  json
// @Success 200 {object} map[string]any "Submissions"
// @Failure 403 {object} response.ErrorResponse "Admin access required"
// @Security BearerAuth
// @Router /admin/contact [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.contactlist"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	submissions, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list submissions", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list submissions"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"submissions": submissions,
	}))
}
