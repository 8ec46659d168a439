// Package planlist implements the admin listing of every pricing plan,
// inactive ones included.
package planlist

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

// Service describes the admin plan listing logic.
type Service interface {
	ListAll(ctx context.Context) ([]*models.PricingPlan, error)
}

// Handler handles admin plan listings.
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
// @Summary List all plans
// @Description Returns every plan, active or not.
// @Tags Admin
// @Produce  json
// @Success 200 {object} map[string]any "Plans"
// @Failure 403 {object} response.ErrorResponse "Admin access required"
// @Security BearerAuth
// @Router /admin/plans [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.planlist"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	plans, err := h.service.ListAll(r.Context())
	if err != nil {
		log.Error("failed to list plans", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list plans"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"plans": plans,
	}))
}
