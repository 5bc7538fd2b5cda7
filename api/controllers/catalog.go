package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jchairstudios/catalog-backend/api/responses"
	"github.com/jchairstudios/catalog-backend/api/validators"
	"github.com/jchairstudios/catalog-backend/internal/catalog"
	pkgerrors "github.com/jchairstudios/catalog-backend/pkg/errors"
	"github.com/jchairstudios/catalog-backend/pkg/logger"
	"github.com/jchairstudios/catalog-backend/pkg/pagination"
)

const maxSearchLen = 128

// CatalogListProducts serves the filtered, sorted, paginated product browse
// endpoint. Every filter facet arrives as a comma-separated query parameter.
func CatalogListProducts(svc catalog.Service, cfg CatalogSettings, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		input, err := parseListInput(r, cfg)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.ListProducts(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// CatalogFilterOptions returns the facet groups available for one category.
func CatalogFilterOptions(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		category := strings.TrimSpace(chi.URLParam(r, "category"))
		if category == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "category is required"))
			return
		}

		options, err := svc.FilterOptions(ctx, category)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, options)
	}
}

// CatalogGetProduct returns one product by its slug identifier.
func CatalogGetProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		productID := strings.TrimSpace(chi.URLParam(r, "productId"))
		product, err := svc.Product(ctx, productID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// CatalogSettings carries the pagination bounds the controller enforces.
type CatalogSettings struct {
	DefaultLimit int
	MaxLimit     int
}

func (c CatalogSettings) defaults() CatalogSettings {
	if c.DefaultLimit <= 0 {
		c.DefaultLimit = pagination.DefaultLimit
	}
	if c.MaxLimit <= 0 {
		c.MaxLimit = pagination.MaxLimit
	}
	return c
}

func parseListInput(r *http.Request, cfg CatalogSettings) (catalog.ListInput, error) {
	cfg = cfg.defaults()

	page, err := validators.ParseQueryInt(r, "page", 1, 1, 1<<20)
	if err != nil {
		return catalog.ListInput{}, err
	}
	limit, err := validators.ParseQueryInt(r, "limit", cfg.DefaultLimit, 1, cfg.MaxLimit)
	if err != nil {
		return catalog.ListInput{}, err
	}
	minRating, err := validators.ParseQueryFloat(r, "min_rating", 0, 0, 5)
	if err != nil {
		return catalog.ListInput{}, err
	}

	filters := catalog.Filters{
		Search:     validators.SanitizeString(r.URL.Query().Get("search"), maxSearchLen),
		Brands:     validators.ParseQueryCSV(r, "brands"),
		PriceRange: validators.SanitizeString(r.URL.Query().Get("price_range"), 64),

		HairColor:   validators.ParseQueryCSV(r, "hair_color"),
		ColorFamily: validators.ParseQueryCSV(r, "color_family"),
		Coverage:    validators.ParseQueryCSV(r, "coverage"),
		Ammonia:     validators.ParseQueryBool(r, "ammonia"),

		StraighteningLevel: validators.ParseQueryCSV(r, "straightening_level"),
		Formula:            validators.ParseQueryCSV(r, "formula"),

		TreatmentType: validators.ParseQueryCSV(r, "treatment_type"),
		HairType:      validators.ParseQueryCSV(r, "hair_type"),
		ProblemTarget: validators.ParseQueryCSV(r, "problem_target"),

		ChemicalType:  validators.ParseQueryCSV(r, "chemical_type"),
		Concentration: validators.ParseQueryCSV(r, "concentration"),
		Volume:        validators.ParseQueryCSV(r, "volume"),

		IsNew:       validators.ParseQueryBool(r, "is_new"),
		Featured:    validators.ParseQueryBool(r, "featured"),
		HasDiscount: validators.ParseQueryBool(r, "has_discount"),
		InStock:     validators.ParseQueryBool(r, "in_stock"),
		MinRating:   minRating,
	}

	return catalog.ListInput{
		Category:   validators.SanitizeString(r.URL.Query().Get("category"), 64),
		Filters:    filters,
		Sort:       validators.SanitizeString(r.URL.Query().Get("sort"), 32),
		Pagination: pagination.Params{Page: page, Limit: limit},
	}, nil
}
