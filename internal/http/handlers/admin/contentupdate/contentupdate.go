// Package contentupdate implements the admin edit of one content
// section. The updated value is visible on the next public read.
package contentupdate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/chatco/chatco-backend/internal/http/response"
	"github.com/chatco/chatco-backend/internal/lib/sl"
	"github.com/chatco/chatco-backend/internal/storage/repository"
)

// Request is the edit payload.
type Request struct {
	Content string `json:"content" validate:"required"`
}

// Service describes the content edit logic.
type Service interface {
	Update(ctx context.Context, key, content string) error
}

// Handler handles admin content edits.
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
// @Summary Update a content section
// @Description Replaces the content of one key. Last writer wins.
// @Tags Admin
// @Accept  json
// @Produce  json
// @Param key path string true "Section key"
// @Param request body Request true "New content"
// @Success 200 {object} map[string]any "Section updated"
// @Failure 400 {object} response.ErrorResponse "Invalid JSON"
// @Failure 403 {object} response.ErrorResponse "Admin access required"
// @Failure 404 {object} response.ErrorResponse "Unknown section key"
// @Security BearerAuth
// @Router /admin/content/{key} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.contentupdate"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	key := chi.URLParam(r, "key")
	if key == "" {
		log.Error("missing section key in url")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing section key"))
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

	if err := h.service.Update(r.Context(), key, req.Content); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn("unknown section key", slog.String("key", key))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("unknown section key"))
			return
		}
		log.Error("failed to update section", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update section"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"section_key": key,
	}))
}
