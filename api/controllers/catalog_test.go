package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jchairstudios/catalog-backend/internal/catalog"
	pkgerrors "github.com/jchairstudios/catalog-backend/pkg/errors"
	"github.com/jchairstudios/catalog-backend/pkg/pagination"
)

type stubCatalogService struct {
	lastInput catalog.ListInput
	listResp  *catalog.ListResult
	listErr   error

	optionsResp *catalog.FilterOptionsDTO
	optionsErr  error

	productResp *catalog.Product
	productErr  error
}

func (s *stubCatalogService) ListProducts(ctx context.Context, input catalog.ListInput) (*catalog.ListResult, error) {
	s.lastInput = input
	return s.listResp, s.listErr
}

func (s *stubCatalogService) FilterOptions(ctx context.Context, category string) (*catalog.FilterOptionsDTO, error) {
	return s.optionsResp, s.optionsErr
}

func (s *stubCatalogService) Product(ctx context.Context, id string) (*catalog.Product, error) {
	return s.productResp, s.productErr
}

func TestCatalogListProductsParsesQuery(t *testing.T) {
	svc := &stubCatalogService{
		listResp: &catalog.ListResult{
			Products:   []catalog.Product{},
			Pagination: pagination.Page{Page: 2, Limit: 12, TotalItems: 0, TotalPages: 1},
		},
	}
	handler := CatalogListProducts(svc, CatalogSettings{DefaultLimit: 24, MaxLimit: 100}, nil)

	target := "/api/v1/catalog/products?category=tintas&brands=L%27Or%C3%A9al,Wella" +
		"&hair_color=7.0-loiro-medio&ammonia=true&min_rating=4&sort=price-low-high&page=2&limit=12"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tintas", svc.lastInput.Category)
	assert.Equal(t, []string{"L'Oréal", "Wella"}, svc.lastInput.Filters.Brands)
	assert.Equal(t, []string{"7.0-loiro-medio"}, svc.lastInput.Filters.HairColor)
	assert.True(t, svc.lastInput.Filters.Ammonia)
	assert.Equal(t, 4.0, svc.lastInput.Filters.MinRating)
	assert.Equal(t, "price-low-high", svc.lastInput.Sort)
	assert.Equal(t, 2, svc.lastInput.Pagination.Page)
	assert.Equal(t, 12, svc.lastInput.Pagination.Limit)
}

func TestCatalogListProductsDefaults(t *testing.T) {
	svc := &stubCatalogService{listResp: &catalog.ListResult{}}
	handler := CatalogListProducts(svc, CatalogSettings{DefaultLimit: 24, MaxLimit: 100}, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.lastInput.Pagination.Page)
	assert.Equal(t, 24, svc.lastInput.Pagination.Limit)
	assert.Empty(t, svc.lastInput.Category)
}

func TestCatalogListProductsRejectsBadPage(t *testing.T) {
	svc := &stubCatalogService{listResp: &catalog.ListResult{}}
	handler := CatalogListProducts(svc, CatalogSettings{}, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products?page=zero", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalogListProductsLimitAboveMaxRejected(t *testing.T) {
	svc := &stubCatalogService{listResp: &catalog.ListResult{}}
	handler := CatalogListProducts(svc, CatalogSettings{DefaultLimit: 24, MaxLimit: 100}, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products?limit=500", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalogFilterOptions(t *testing.T) {
	svc := &stubCatalogService{optionsResp: &catalog.FilterOptionsDTO{Category: "tintas"}}

	router := chi.NewRouter()
	router.Get("/filters/{category}", CatalogFilterOptions(svc, nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/filters/tintas", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data catalog.FilterOptionsDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "tintas", body.Data.Category)
}

func TestCatalogFilterOptionsUnknownCategory(t *testing.T) {
	svc := &stubCatalogService{optionsErr: pkgerrors.New(pkgerrors.CodeNotFound, "unknown category")}

	router := chi.NewRouter()
	router.Get("/filters/{category}", CatalogFilterOptions(svc, nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/filters/perfumes", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCatalogGetProduct(t *testing.T) {
	svc := &stubCatalogService{productResp: &catalog.Product{ID: "tinta-loreal-001", Name: "Excellence Creme"}}

	router := chi.NewRouter()
	router.Get("/products/{productId}", CatalogGetProduct(svc, nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/tinta-loreal-001", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data catalog.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "tinta-loreal-001", body.Data.ID)
}

func TestCatalogGetProductMissing(t *testing.T) {
	svc := &stubCatalogService{productErr: pkgerrors.New(pkgerrors.CodeNotFound, "product not found")}

	router := chi.NewRouter()
	router.Get("/products/{productId}", CatalogGetProduct(svc, nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/nope", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
}
