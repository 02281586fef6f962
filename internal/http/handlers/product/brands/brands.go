package brands

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/avdonin/grocery-catalog/internal/http/response"
	"github.com/avdonin/grocery-catalog/internal/lib/sl"
)

// Service описывает интерфейс справочника брендов.
type Service interface {
	Brands(ctx context.Context) ([]string, error)
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
	const op = "handlers.product.brands"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	values, err := h.service.Brands(r.Context())
	if err != nil {
		log.Error("failed to fetch brands", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to fetch brands"))
		return
	}
	if values == nil {
		values = []string{}
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"brands": values,
	}))
}
