// Package resolve implements the public content endpoint. Clients
// request sections by key and get stored content or the built-in
// fallback for each.
package resolve

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/chatco/chatco-backend/internal/http/response"
	"github.com/chatco/chatco-backend/internal/lib/sl"
	"github.com/chatco/chatco-backend/internal/models"
	contentservice "github.com/chatco/chatco-backend/internal/services/content"
)

// Service describes the content resolution logic.
type Service interface {
	Resolve(ctx context.Context, keys []string) ([]models.ResolvedSection, error)
}

// Handler handles public content reads.
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
// @Summary Read content sections
// @Description Returns the requested sections by key, with fallbacks for absent keys.
// @Tags Content
// @Produce  json
// @Param keys query string true "Comma-separated section keys"
// @Success 200 {object} map[string]any "Resolved sections"
// @Failure 400 {object} response.ErrorResponse "Missing keys parameter"
// @Failure 500 {object} response.ErrorResponse "Internal error"
// @Router /content [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.content.resolve"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	raw := r.URL.Query().Get("keys")
	if raw == "" {
		log.Error("missing keys query parameter")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing keys query parameter"))
		return
	}

	var keys []string
	for _, key := range strings.Split(raw, ",") {
		key = strings.TrimSpace(key)
		if key != "" {
			keys = append(keys, key)
		}
	}

	sections, err := h.service.Resolve(r.Context(), keys)
	if err != nil {
		if errors.Is(err, contentservice.ErrMalformedContent) {
			log.Error("stored content is malformed", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("content section is malformed"))
			return
		}
		log.Error("failed to resolve content", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read content"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"sections": sections,
	}))
}
