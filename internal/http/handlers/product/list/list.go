package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/avdonin/grocery-catalog/internal/http/response"
	"github.com/avdonin/grocery-catalog/internal/lib/query"
	"github.com/avdonin/grocery-catalog/internal/lib/sl"
	"github.com/avdonin/grocery-catalog/internal/models"
)

// Service описывает интерфейс выборки страницы каталога.
type Service interface {
	List(ctx context.Context, q models.ListQuery) (*models.ProductPage, error)
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

// ServeHTTP godoc
// @Summary Список товаров
// @Description Возвращает отфильтрованную, отсортированную страницу каталога с метаданными пагинации.
// @Tags Products
// @Produce json
// @Param search query string false "Подстрока для поиска по name/title/brand/category"
// @Param category query string false "Точное совпадение категории"
// @Param brand query string false "Точное совпадение бренда"
// @Param minPrice query number false "Нижняя граница цены (включительно)"
// @Param maxPrice query number false "Верхняя граница цены (включительно)"
// @Param sortBy query string false "Ключ сортировки" Enums(createdAt, price, rating, name, title, brand, category)
// @Param order query string false "Направление сортировки" Enums(asc, desc)
// @Param page query int false "Номер страницы, с 1"
// @Param limit query int false "Размер страницы, 1..100"
// @Success 200 {object} response.Response "Страница каталога"
// @Failure 400 {object} response.ErrorResponse "Некорректные параметры запроса"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /products [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	q, err := query.Build(r.URL.Query())
	if err != nil {
		log.Error("invalid list parameters", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	page, err := h.service.List(r.Context(), *q)
	if err != nil {
		log.Error("failed to list products", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list products"))
		return
	}

	log.Info("products listed",
		slog.Int("count", len(page.Items)),
		slog.Int("total", page.Pagination.Total))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"products":   page.Items,
		"pagination": page.Pagination,
	}))
}
