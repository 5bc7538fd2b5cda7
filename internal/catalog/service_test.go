package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jchairstudios/catalog-backend/pkg/config"
	"github.com/jchairstudios/catalog-backend/pkg/db/models"
	"github.com/jchairstudios/catalog-backend/pkg/enums"
	pkgerrors "github.com/jchairstudios/catalog-backend/pkg/errors"
	"github.com/jchairstudios/catalog-backend/pkg/logger"
	"github.com/jchairstudios/catalog-backend/pkg/pagination"
)

type stubSource struct {
	rows    []models.CatalogProduct
	listErr error
	calls   int
}

func (s *stubSource) ListActive(ctx context.Context, category enums.CatalogCategory) ([]models.CatalogProduct, error) {
	s.calls++
	if s.listErr != nil {
		return nil, s.listErr
	}
	if category == "" {
		return s.rows, nil
	}
	var out []models.CatalogProduct
	for _, row := range s.rows {
		if row.Category == category {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *stubSource) FindByID(ctx context.Context, id string) (*models.CatalogProduct, error) {
	for _, row := range s.rows {
		if row.ID == id {
			return &row, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type stubCache struct {
	data map[enums.CatalogCategory][]Product
	hits int
}

func (c *stubCache) GetProducts(ctx context.Context, category enums.CatalogCategory) ([]Product, bool, error) {
	products, ok := c.data[category]
	if ok {
		c.hits++
	}
	return products, ok, nil
}

func (c *stubCache) SetProducts(ctx context.Context, category enums.CatalogCategory, products []Product) error {
	if c.data == nil {
		c.data = map[enums.CatalogCategory][]Product{}
	}
	c.data[category] = products
	return nil
}

func testService(t *testing.T, repo productSource, cache productCache) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Repo:   repo,
		Cache:  cache,
		Config: config.CatalogConfig{DefaultLimit: 24, MaxLimit: 100},
		Logger: logger.New(logger.Options{ServiceName: "catalog-test"}),
	})
	require.NoError(t, err)
	return svc
}

func catalogRows() []models.CatalogProduct {
	return []models.CatalogProduct{
		{
			ID:          "tinta-loreal-loiro",
			Name:        "L'Oréal Excellence Loiro Claro",
			Brand:       "L'Oréal Paris",
			Category:    enums.CatalogCategoryTintas,
			Subcategory: "Coloração Permanente",
			Description: "Cobertura total com fórmula sem amônia.",
			Price:       dec("17.84"),
			Features:    []string{"Sem Amônia"},
			IsActive:    true,
		},
		{
			ID:          "tinta-wella-castanho",
			Name:        "Wella Koleston Castanho",
			Brand:       "Wella",
			Category:    enums.CatalogCategoryTintas,
			Subcategory: "Coloração Permanente",
			Description: "Tons castanhos profissionais.",
			Price:       dec("23.50"),
			IsActive:    true,
		},
		{
			ID:          "btx-forever-zero",
			Name:        "Forever Liss BTOX Zero",
			Brand:       "Forever Liss",
			Category:    enums.CatalogCategoryBotox,
			Subcategory: "Botox Capilar",
			Description: "Redução de volume sem formol.",
			Price:       dec("39.90"),
			IsActive:    true,
		},
	}
}

func TestListProductsFiltersAndPaginates(t *testing.T) {
	repo := &stubSource{rows: catalogRows()}
	svc := testService(t, repo, nil)

	result, err := svc.ListProducts(context.Background(), ListInput{
		Category: "tintas",
		Filters:  Filters{Ammonia: true},
		Sort:     "price-low-high",
	})
	require.NoError(t, err)

	require.Len(t, result.Products, 1)
	assert.Equal(t, "tinta-loreal-loiro", result.Products[0].ID)
	assert.Equal(t, 1, result.ActiveFilters)
	assert.Equal(t, 1, result.TotalMatched)
	assert.Equal(t, 1, result.Pagination.Page)
	assert.Equal(t, 24, result.Pagination.Limit)
}

func TestListProductsUnknownCategoryPassesThrough(t *testing.T) {
	repo := &stubSource{rows: catalogRows()}
	svc := testService(t, repo, nil)

	result, err := svc.ListProducts(context.Background(), ListInput{Category: ""})
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalMatched)
}

func TestListProductsPagination(t *testing.T) {
	repo := &stubSource{rows: catalogRows()}
	svc := testService(t, repo, nil)

	result, err := svc.ListProducts(context.Background(), ListInput{
		Pagination: pagination.Params{Page: 2, Limit: 2},
	})
	require.NoError(t, err)
	assert.Len(t, result.Products, 1)
	assert.Equal(t, 2, result.Pagination.TotalPages)
	assert.Equal(t, 3, result.Pagination.TotalItems)
}

func TestListProductsUsesSnapshotCache(t *testing.T) {
	repo := &stubSource{rows: catalogRows()}
	cache := &stubCache{}
	svc := testService(t, repo, cache)

	_, err := svc.ListProducts(context.Background(), ListInput{Category: "tintas"})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)

	_, err = svc.ListProducts(context.Background(), ListInput{Category: "tintas"})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls, "second read should come from cache")
	assert.Equal(t, 1, cache.hits)
}

func TestListProductsRepoErrorIsDependency(t *testing.T) {
	repo := &stubSource{listErr: errors.New("connection refused")}
	svc := testService(t, repo, nil)

	_, err := svc.ListProducts(context.Background(), ListInput{})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeDependency, typed.Code())
}

func TestFilterOptions(t *testing.T) {
	svc := testService(t, &stubSource{}, nil)

	dto, err := svc.FilterOptions(context.Background(), "tintas")
	require.NoError(t, err)
	assert.Equal(t, "tintas", dto.Category)
	assert.NotEmpty(t, dto.Options.Groups)

	_, err = svc.FilterOptions(context.Background(), "perfumes")
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestProductLookup(t *testing.T) {
	svc := testService(t, &stubSource{rows: catalogRows()}, nil)

	product, err := svc.Product(context.Background(), "btx-forever-zero")
	require.NoError(t, err)
	assert.Equal(t, "Forever Liss BTOX Zero", product.Name)
	assert.Equal(t, "Botox Capilar", product.Category)

	_, err = svc.Product(context.Background(), "missing")
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())

	_, err = svc.Product(context.Background(), "")
	require.Error(t, err)
	typed = pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestNewServiceRequiresRepoAndLogger(t *testing.T) {
	_, err := NewService(ServiceParams{Logger: logger.New(logger.Options{})})
	require.Error(t, err)

	_, err = NewService(ServiceParams{Repo: &stubSource{}})
	require.Error(t, err)
}
