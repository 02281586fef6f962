// Package query переводит сырые query-параметры HTTP-запроса в проверенный
// models.ListQuery.
//
// Параметры приходят от клиента и не заслуживают доверия: числа разбираются
// строго (некорректное значение — ошибка, а не молчаливое приведение),
// limit ограничен сверху, ключ сортировки проверяется по белому списку.
package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/avdonin/grocery-catalog/internal/models"
)

// Значения по умолчанию и границы пагинации.
const (
	DefaultPage  = 1
	DefaultLimit = 8
	MaxLimit     = 100
)

var sortKeys = map[string]struct{}{
	models.SortByCreatedAt: {},
	models.SortByPrice:     {},
	models.SortByRating:    {},
	models.SortByName:      {},
	models.SortByTitle:     {},
	models.SortByBrand:     {},
	models.SortByCategory:  {},
}

// Build разбирает query-параметры списка товаров и возвращает ListQuery.
//
// Поддерживаются: search, category, brand, minPrice, maxPrice, sortBy,
// order, page, limit. Пустой search не порождает текстового предиката.
// Любая ошибка Build — ошибка валидации входных данных, безопасная для
// показа клиенту.
func Build(values url.Values) (*models.ListQuery, error) {
	q := &models.ListQuery{
		Search:   strings.TrimSpace(values.Get("search")),
		Category: strings.TrimSpace(values.Get("category")),
		Brand:    strings.TrimSpace(values.Get("brand")),
		SortBy:   models.SortByCreatedAt,
		Order:    models.OrderDesc,
		Page:     DefaultPage,
		Limit:    DefaultLimit,
	}

	page, err := parseIntParam(values, "page", DefaultPage)
	if err != nil {
		return nil, err
	}
	if page < 1 {
		return nil, fmt.Errorf("parameter page must be a positive integer")
	}
	q.Page = page

	limit, err := parseIntParam(values, "limit", DefaultLimit)
	if err != nil {
		return nil, err
	}
	if limit < 1 || limit > MaxLimit {
		return nil, fmt.Errorf("parameter limit must be between 1 and %d", MaxLimit)
	}
	q.Limit = limit

	if q.MinPrice, err = parsePriceParam(values, "minPrice"); err != nil {
		return nil, err
	}
	if q.MaxPrice, err = parsePriceParam(values, "maxPrice"); err != nil {
		return nil, err
	}
	if q.MinPrice != nil && q.MaxPrice != nil && *q.MinPrice > *q.MaxPrice {
		return nil, fmt.Errorf("parameter minPrice must not exceed maxPrice")
	}

	if raw := values.Get("sortBy"); raw != "" {
		if _, ok := sortKeys[raw]; !ok {
			return nil, fmt.Errorf("unknown sortBy key: %q", raw)
		}
		q.SortBy = raw
	}

	switch raw := values.Get("order"); raw {
	case "", "desc":
	case "asc":
		q.Order = models.OrderAsc
	default:
		return nil, fmt.Errorf("parameter order must be %q or %q", "asc", "desc")
	}

	return q, nil
}

func parseIntParam(values url.Values, name string, def int) (int, error) {
	raw := values.Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parameter %s must be an integer", name)
	}
	return v, nil
}

func parsePriceParam(values url.Values, name string) (*float64, error) {
	raw := values.Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("parameter %s must be a number", name)
	}
	if v < 0 {
		return nil, fmt.Errorf("parameter %s must not be negative", name)
	}
	return &v, nil
}
