package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/avdonin/grocery-catalog/internal/models"
)

// Соответствие ключей сортировки ListQuery колонкам таблицы products.
// Неизвестный ключ сводится к created_at, в SQL попадают только значения
// из этой таблицы.
var sortColumns = map[string]string{
	models.SortByCreatedAt: "created_at",
	models.SortByPrice:     "price",
	models.SortByRating:    "rating",
	models.SortByName:      "name",
	models.SortByTitle:     "title",
	models.SortByBrand:     "brand",
	models.SortByCategory:  "category",
}

const productColumns = `id, name, title, brand, category, price, rating,
			      description, stock, image, reviews, created_at`

// buildFilter собирает WHERE-часть запроса по предикатам ListQuery.
// Поисковая строка разворачивается в OR-группу ILIKE по четырём текстовым
// полям; остальные предикаты объединяются через AND.
func buildFilter(q models.ListQuery) (string, []any) {
	var conds []string
	var args []any

	if q.Search != "" {
		args = append(args, "%"+q.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(name ILIKE $%d OR title ILIKE $%d OR brand ILIKE $%d OR category ILIKE $%d)",
			n, n, n, n))
	}
	if q.Category != "" {
		args = append(args, q.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if q.Brand != "" {
		args = append(args, q.Brand)
		conds = append(conds, fmt.Sprintf("brand = $%d", len(args)))
	}
	if q.MinPrice != nil {
		args = append(args, *q.MinPrice)
		conds = append(conds, fmt.Sprintf("price >= $%d", len(args)))
	}
	if q.MaxPrice != nil {
		args = append(args, *q.MaxPrice)
		conds = append(conds, fmt.Sprintf("price <= $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// orderClause собирает ORDER BY. Вторичный ключ id в том же направлении
// делает порядок полностью детерминированным между страницами.
func orderClause(q models.ListQuery) string {
	col, ok := sortColumns[q.SortBy]
	if !ok {
		col = "created_at"
	}
	dir := "DESC"
	if q.Order == models.OrderAsc {
		dir = "ASC"
	}
	return fmt.Sprintf(" ORDER BY %s %s, id %s", col, dir, dir)
}

// ListProducts возвращает страницу каталога по фильтру, сортировке и пагинации.
func (s *Storage) ListProducts(ctx context.Context, q models.ListQuery) ([]*models.Product, error) {
	const op = "storage.ListProducts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	where, args := buildFilter(q)
	args = append(args, q.Limit, q.Offset())
	query := fmt.Sprintf(`SELECT %s FROM products%s%s LIMIT $%d OFFSET $%d`,
		productColumns, where, orderClause(q), len(args)-1, len(args))

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Product
	for rows.Next() {
		item, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CountProducts считает размер всей отфильтрованной выборки без учёта пагинации.
func (s *Storage) CountProducts(ctx context.Context, q models.ListQuery) (int, error) {
	const op = "storage.CountProducts"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	where, args := buildFilter(q)
	query := `SELECT COUNT(*) FROM products` + where

	var total int
	if err := s.DB.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}

// GetProduct возвращает товар по ID или ErrNotFound.
func (s *Storage) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	const op = "storage.GetProduct"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns)
	row := s.DB.QueryRowContext(ctx, query, id)

	item, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return item, nil
}

// LatestProducts возвращает n последних добавленных товаров без учёта фильтров.
func (s *Storage) LatestProducts(ctx context.Context, n int) ([]*models.Product, error) {
	const op = "storage.LatestProducts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := fmt.Sprintf(`SELECT %s FROM products ORDER BY created_at DESC, id DESC LIMIT $1`,
		productColumns)
	rows, err := s.DB.QueryContext(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Product
	for rows.Next() {
		item, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// DistinctCategories возвращает множество категорий каталога.
func (s *Storage) DistinctCategories(ctx context.Context) ([]string, error) {
	return s.distinctColumn(ctx, "storage.DistinctCategories", "category")
}

// DistinctBrands возвращает множество брендов каталога.
func (s *Storage) DistinctBrands(ctx context.Context) ([]string, error) {
	return s.distinctColumn(ctx, "storage.DistinctBrands", "brand")
}

func (s *Storage) distinctColumn(ctx context.Context, op, column string) ([]string, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := fmt.Sprintf(`SELECT DISTINCT %s FROM products ORDER BY 1`, column)
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ReplaceProducts заменяет весь каталог переданным набором в одной транзакции,
// поэтому читатели не видят промежуточного пустого каталога.
// Возвращает количество вставленных записей.
func (s *Storage) ReplaceProducts(ctx context.Context, items []models.Product) (int, error) {
	const op = "storage.ReplaceProducts"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM products`); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO products (name, title, brand, category, price, rating,
			      description, stock, image, reviews, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	for _, item := range items {
		reviews, err := json.Marshal(item.Reviews)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
		if _, err = tx.ExecContext(ctx, query,
			item.Name, item.Title, item.Brand, item.Category, item.Price, item.Rating,
			item.Description, item.Stock, item.Image, reviews, item.CreatedAt); err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return len(items), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var item models.Product
	var reviews []byte
	if err := row.Scan(&item.ID, &item.Name, &item.Title, &item.Brand, &item.Category,
		&item.Price, &item.Rating, &item.Description, &item.Stock, &item.Image,
		&reviews, &item.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(reviews, &item.Reviews); err != nil {
		return nil, err
	}
	return &item, nil
}
