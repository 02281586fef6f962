package catalog

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/avdonin/grocery-catalog/internal/models"
	"github.com/avdonin/grocery-catalog/internal/storage/repository"
)

// MockProductRepository реализует интерфейс catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) ListProducts(ctx context.Context, q models.ListQuery) ([]*models.Product, error) {
	args := m.Called(ctx, q)
	if res := args.Get(0); res != nil {
		return res.([]*models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) CountProducts(ctx context.Context, q models.ListQuery) (int, error) {
	args := m.Called(ctx, q)
	return args.Int(0), args.Error(1)
}

func (m *MockProductRepository) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) LatestProducts(ctx context.Context, n int) ([]*models.Product, error) {
	args := m.Called(ctx, n)
	if res := args.Get(0); res != nil {
		return res.([]*models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) DistinctBrands(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) ReplaceProducts(ctx context.Context, items []models.Product) (int, error) {
	args := m.Called(ctx, items)
	return args.Int(0), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestCatalogService_List_PaginationMetadata(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		total     int
		wantPages int
	}{
		{
			name:      "ровное деление",
			page:      1,
			limit:     8,
			total:     16,
			wantPages: 2,
		},
		{
			name:      "неполная последняя страница",
			page:      2,
			limit:     8,
			total:     17,
			wantPages: 3,
		},
		{
			name:      "пустая выборка",
			page:      1,
			limit:     8,
			total:     0,
			wantPages: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockProductRepository)
			q := models.ListQuery{Page: tt.page, Limit: tt.limit}

			items := make([]*models.Product, 0)
			for i := 0; i < tt.limit && i < tt.total; i++ {
				items = append(items, &models.Product{ID: i + 1})
			}
			repo.On("ListProducts", mock.Anything, q).Return(items, nil)
			repo.On("CountProducts", mock.Anything, q).Return(tt.total, nil)

			service := New(repo, testLogger())

			page, err := service.List(context.Background(), q)
			require.NoError(t, err)

			assert.Equal(t, tt.page, page.Pagination.Page)
			assert.Equal(t, tt.limit, page.Pagination.Limit)
			assert.Equal(t, tt.total, page.Pagination.Total)
			assert.Equal(t, tt.wantPages, page.Pagination.Pages)
			assert.NotNil(t, page.Items)
		})
	}
}

func TestCatalogService_List_NilItemsBecomeEmptySlice(t *testing.T) {
	repo := new(MockProductRepository)
	q := models.ListQuery{Page: 99, Limit: 8}
	repo.On("ListProducts", mock.Anything, q).Return(nil, nil)
	repo.On("CountProducts", mock.Anything, q).Return(0, nil)

	service := New(repo, testLogger())

	page, err := service.List(context.Background(), q)
	require.NoError(t, err)
	require.NotNil(t, page.Items)
	assert.Len(t, page.Items, 0)
}

func TestCatalogService_List_RepositoryFault(t *testing.T) {
	repo := new(MockProductRepository)
	q := models.ListQuery{Page: 1, Limit: 8}
	repo.On("ListProducts", mock.Anything, q).Return(nil, errors.New("connection refused"))

	service := New(repo, testLogger())

	page, err := service.List(context.Background(), q)
	require.Error(t, err)
	assert.Nil(t, page)
}

func TestCatalogService_GetByID(t *testing.T) {
	repo := new(MockProductRepository)
	repo.On("GetProduct", mock.Anything, 1).
		Return(&models.Product{ID: 1, Name: "Органические яблоки"}, nil)
	repo.On("GetProduct", mock.Anything, 404).
		Return(nil, repository.ErrNotFound)

	service := New(repo, testLogger())

	item, err := service.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, item.ID)

	item, err = service.GetByID(context.Background(), 404)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, item)
}

func TestCatalogService_Latest(t *testing.T) {
	repo := new(MockProductRepository)
	repo.On("LatestProducts", mock.Anything, 4).
		Return([]*models.Product{{ID: 20}, {ID: 19}, {ID: 18}, {ID: 17}}, nil)

	service := New(repo, testLogger())

	items, err := service.Latest(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, 20, items[0].ID)
}

func TestCatalogService_Seed(t *testing.T) {
	sample := SampleProducts()

	repo := new(MockProductRepository)
	repo.On("ReplaceProducts", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			passed := args.Get(1).([]models.Product)
			assert.Len(t, passed, len(sample))
		}).
		Return(len(sample), nil)

	service := New(repo, testLogger())

	count, err := service.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(sample), count)
	repo.AssertExpectations(t)
}

func TestCatalogService_Seed_Fault(t *testing.T) {
	repo := new(MockProductRepository)
	repo.On("ReplaceProducts", mock.Anything, mock.Anything).
		Return(0, errors.New("deadlock detected"))

	service := New(repo, testLogger())

	count, err := service.Seed(context.Background())
	require.Error(t, err)
	assert.Zero(t, count)
}
