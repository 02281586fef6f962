package latest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/avdonin/grocery-catalog/internal/http/response"
	"github.com/avdonin/grocery-catalog/internal/lib/sl"
	"github.com/avdonin/grocery-catalog/internal/models"
)

// Границы параметра limit для последних поступлений.
const (
	DefaultLimit = 4
	MaxLimit     = 20
)

// Service описывает интерфейс выборки последних поступлений.
type Service interface {
	Latest(ctx context.Context, n int) ([]*models.Product, error)
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.latest"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	n := DefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > MaxLimit {
			log.Error("invalid limit parameter", slog.String("limit", raw))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("parameter limit must be between 1 and 20"))
			return
		}
		n = v
	}

	items, err := h.service.Latest(r.Context(), n)
	if err != nil {
		log.Error("failed to fetch latest products", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to fetch latest products"))
		return
	}

	log.Info("latest products fetched", slog.Int("count", len(items)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"products": items,
	}))
}
