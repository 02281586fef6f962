// Package catalog содержит бизнес-логику чтения каталога товаров:
// страницы списка с метаданными пагинации, последние поступления,
// точечное чтение, справочники фильтров и пересев каталога.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/avdonin/grocery-catalog/internal/models"
	"github.com/avdonin/grocery-catalog/internal/storage/repository"
)

// ErrNotFound — товар с указанным ID отсутствует в каталоге.
var ErrNotFound = errors.New("product not found")

// ProductRepository определяет методы работы с каталогом в хранилище.
type ProductRepository interface {
	// ListProducts возвращает страницу каталога по фильтру и сортировке.
	ListProducts(ctx context.Context, q models.ListQuery) ([]*models.Product, error)
	// CountProducts считает всю отфильтрованную выборку.
	CountProducts(ctx context.Context, q models.ListQuery) (int, error)
	// GetProduct возвращает товар по ID или repository.ErrNotFound.
	GetProduct(ctx context.Context, id int) (*models.Product, error)
	// LatestProducts возвращает n последних добавленных товаров.
	LatestProducts(ctx context.Context, n int) ([]*models.Product, error)
	// DistinctCategories возвращает множество категорий.
	DistinctCategories(ctx context.Context) ([]string, error)
	// DistinctBrands возвращает множество брендов.
	DistinctBrands(ctx context.Context) ([]string, error)
	// ReplaceProducts атомарно заменяет каталог и возвращает число записей.
	ReplaceProducts(ctx context.Context, items []models.Product) (int, error)
}

// CatalogService реализует операции чтения каталога поверх репозитория.
type CatalogService struct {
	repo ProductRepository
	log  *slog.Logger
}

// New создает новый экземпляр CatalogService.
func New(repo ProductRepository, log *slog.Logger) *CatalogService {
	return &CatalogService{
		repo: repo,
		log:  log,
	}
}

// List выполняет запрос страницы каталога и независимо считает полный размер
// отфильтрованной выборки. pages = ceil(total/limit).
func (s *CatalogService) List(ctx context.Context, q models.ListQuery) (*models.ProductPage, error) {
	items, err := s.repo.ListProducts(ctx, q)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.CountProducts(ctx, q)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*models.Product{}
	}

	return &models.ProductPage{
		Items: items,
		Pagination: models.Pagination{
			Page:  q.Page,
			Limit: q.Limit,
			Total: total,
			Pages: (total + q.Limit - 1) / q.Limit,
		},
	}, nil
}

// Latest возвращает n последних добавленных товаров, игнорируя фильтры.
func (s *CatalogService) Latest(ctx context.Context, n int) ([]*models.Product, error) {
	items, err := s.repo.LatestProducts(ctx, n)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*models.Product{}
	}
	return items, nil
}

// GetByID возвращает товар по ID; отсутствие записи — ErrNotFound.
func (s *CatalogService) GetByID(ctx context.Context, id int) (*models.Product, error) {
	item, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

// Categories возвращает справочник категорий для фильтров.
func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.DistinctCategories(ctx)
}

// Brands возвращает справочник брендов для фильтров.
func (s *CatalogService) Brands(ctx context.Context) ([]string, error) {
	return s.repo.DistinctBrands(ctx)
}

// Seed заменяет каталог встроенным демонстрационным набором.
func (s *CatalogService) Seed(ctx context.Context) (int, error) {
	count, err := s.repo.ReplaceProducts(ctx, SampleProducts())
	if err != nil {
		return 0, fmt.Errorf("catalog.Seed: %w", err)
	}
	s.log.Info("catalog reseeded", slog.Int("count", count))
	return count, nil
}
