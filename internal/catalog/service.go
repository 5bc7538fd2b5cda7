package catalog

import (
	"context"
	"time"

	"github.com/jchairstudios/catalog-backend/pkg/config"
	"github.com/jchairstudios/catalog-backend/pkg/db/models"
	"github.com/jchairstudios/catalog-backend/pkg/enums"
	pkgerrors "github.com/jchairstudios/catalog-backend/pkg/errors"
	"github.com/jchairstudios/catalog-backend/pkg/logger"
	"github.com/jchairstudios/catalog-backend/pkg/metrics"
	"github.com/jchairstudios/catalog-backend/pkg/pagination"
)

// Service exposes catalog browsing operations.
type Service interface {
	ListProducts(ctx context.Context, input ListInput) (*ListResult, error)
	FilterOptions(ctx context.Context, category string) (*FilterOptionsDTO, error)
	Product(ctx context.Context, id string) (*Product, error)
}

// ListInput captures one browse request.
type ListInput struct {
	Category   string
	Filters    Filters
	Sort       string
	Pagination pagination.Params
}

type productSource interface {
	ListActive(ctx context.Context, category enums.CatalogCategory) ([]models.CatalogProduct, error)
	FindByID(ctx context.Context, id string) (*models.CatalogProduct, error)
}

type productCache interface {
	GetProducts(ctx context.Context, category enums.CatalogCategory) ([]Product, bool, error)
	SetProducts(ctx context.Context, category enums.CatalogCategory, products []Product) error
}

type service struct {
	repo    productSource
	cache   productCache
	metrics *metrics.CatalogMetrics
	cfg     config.CatalogConfig
	logg    *logger.Logger
}

// ServiceParams groups dependencies for the catalog service. Cache and
// metrics are optional; the service degrades to direct reads without them.
type ServiceParams struct {
	Repo    productSource
	Cache   productCache
	Metrics *metrics.CatalogMetrics
	Config  config.CatalogConfig
	Logger  *logger.Logger
}

// NewService constructs a catalog service instance.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog repository is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &service{
		repo:    params.Repo,
		cache:   params.Cache,
		metrics: params.Metrics,
		cfg:     params.Config,
		logg:    params.Logger,
	}, nil
}

// ListProducts loads the category snapshot, runs the filter pipeline, and
// paginates the result. An unknown category is not an error; the engine
// simply skips the category predicate stage.
func (s *service) ListProducts(ctx context.Context, input ListInput) (*ListResult, error) {
	category := enums.CatalogCategory(input.Category)
	s.metrics.IncRequest(category.String())

	products, err := s.loadProducts(ctx, category)
	if err != nil {
		return nil, err
	}

	sortKey := enums.ParseSortKey(input.Sort)

	start := time.Now()
	matched := FilterProducts(products, input.Filters, category, sortKey)
	s.metrics.ObserveDuration(category.String(), time.Since(start))

	params := pagination.Params{
		Page:  pagination.NormalizePage(input.Pagination.Page),
		Limit: pagination.NormalizeLimit(input.Pagination.Limit, s.cfg.DefaultLimit, s.cfg.MaxLimit),
	}

	return &ListResult{
		Products:      pagination.Slice(matched, params),
		Pagination:    pagination.Build(params, len(matched)),
		ActiveFilters: input.Filters.ActiveCount(),
		TotalMatched:  len(matched),
	}, nil
}

// FilterOptions returns the facet vocabulary for a category.
func (s *service) FilterOptions(ctx context.Context, category string) (*FilterOptionsDTO, error) {
	parsed, err := enums.ParseCatalogCategory(category)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "unknown catalog category")
	}
	opts, ok := FilterOptionsFor(parsed)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no filter options for category")
	}
	return &FilterOptionsDTO{Category: parsed.String(), Options: opts}, nil
}

// Product loads one product by slug ID.
func (s *service) Product(ctx context.Context, id string) (*Product, error) {
	if id == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	product := FromModel(*row)
	return &product, nil
}

func (s *service) loadProducts(ctx context.Context, category enums.CatalogCategory) ([]Product, error) {
	if s.cache != nil {
		cached, hit, err := s.cache.GetProducts(ctx, category)
		if err != nil {
			s.logg.Warn(ctx, "snapshot cache read failed: "+err.Error())
		}
		if hit {
			s.metrics.IncCacheHit(category.String())
			return cached, nil
		}
		s.metrics.IncCacheMiss(category.String())
	}

	rows, err := s.repo.ListActive(ctx, category)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list catalog products")
	}
	products := FromModels(rows)

	if s.cache != nil {
		if err := s.cache.SetProducts(ctx, category, products); err != nil {
			s.logg.Warn(ctx, "snapshot cache write failed: "+err.Error())
		}
	}
	return products, nil
}
