package catalog

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jchairstudios/catalog-backend/pkg/enums"
)

// FilterProducts is the single entry point of the filtering engine. It applies
// the universal filters, dispatches to the category predicate set, applies the
// universal flags, and sorts. The pipeline order is fixed; every stage narrows
// the working set. Inputs are never mutated.
func FilterProducts(products []Product, filters Filters, category enums.CatalogCategory, sortKey enums.SortKey) []Product {
	filtered := products

	if term := strings.ToLower(strings.TrimSpace(filters.Search)); term != "" {
		filtered = keep(filtered, func(p Product) bool {
			return strings.Contains(strings.ToLower(p.Name), term) ||
				strings.Contains(strings.ToLower(p.Brand), term) ||
				strings.Contains(strings.ToLower(p.Description), term) ||
				anyContains(p.Tags, term) ||
				anyContains(p.Features, term)
		})
	}

	if len(filters.Brands) > 0 {
		filtered = keep(filtered, func(p Product) bool {
			return matchesBrand(p.Brand, filters.Brands)
		})
	}

	if rng, ok := parsePriceRange(filters.PriceRange); ok {
		filtered = keep(filtered, func(p Product) bool {
			if p.Price.Cmp(rng.min) < 0 {
				return false
			}
			return rng.max == nil || p.Price.Cmp(*rng.max) <= 0
		})
	}

	switch category {
	case enums.CatalogCategoryTintas:
		filtered = applyTintasFilters(filtered, filters)
	case enums.CatalogCategoryProgressivas:
		filtered = applyProgressivasFilters(filtered, filters)
	case enums.CatalogCategoryHidratacao:
		filtered = applyHidratacaoFilters(filtered, filters)
	case enums.CatalogCategoryBotox:
		filtered = applyBotoxFilters(filtered, filters)
	case enums.CatalogCategoryQuimicos:
		filtered = applyQuimicosFilters(filtered, filters)
	}

	if filters.IsNew {
		filtered = keep(filtered, func(p Product) bool { return p.IsNew })
	}
	if filters.Featured {
		filtered = keep(filtered, func(p Product) bool { return p.Featured })
	}
	if filters.HasDiscount {
		filtered = keep(filtered, func(p Product) bool { return p.HasDiscount })
	}
	if filters.InStock {
		filtered = keep(filtered, func(p Product) bool { return p.Available() })
	}
	if filters.MinRating > 0 {
		filtered = keep(filtered, func(p Product) bool { return p.Rating >= filters.MinRating })
	}

	return sortProducts(filtered, sortKey)
}

// matchesBrand implements the storefront's three-way brand containment: the
// product's brand slug contains the selected value, the raw brand contains it,
// or the selected value contains the slug. The looseness absorbs minor
// mismatches between filter UI labels and stored brand strings.
func matchesBrand(brand string, selected []string) bool {
	slug := Slugify(brand)
	lowerBrand := strings.ToLower(brand)
	for _, raw := range selected {
		value := strings.ToLower(strings.TrimSpace(raw))
		if value == "" {
			continue
		}
		if strings.Contains(slug, value) ||
			strings.Contains(lowerBrand, value) ||
			strings.Contains(value, slug) {
			return true
		}
	}
	return false
}

type priceRange struct {
	min decimal.Decimal
	max *decimal.Decimal
}

// parsePriceRange parses "min-max" or "min-" (open ended). A range that fails
// numeric parsing deactivates the filter instead of excluding everything; the
// storefront's NaN comparisons silently returned an empty catalog.
func parsePriceRange(raw string) (priceRange, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return priceRange{}, false
	}
	parts := strings.SplitN(raw, "-", 2)
	min, err := decimal.NewFromString(strings.TrimSpace(parts[0]))
	if err != nil {
		return priceRange{}, false
	}
	rng := priceRange{min: min}
	if len(parts) == 2 && strings.TrimSpace(parts[1]) != "" {
		max, err := decimal.NewFromString(strings.TrimSpace(parts[1]))
		if err != nil {
			return priceRange{}, false
		}
		rng.max = &max
	}
	return rng, true
}

func keep(products []Product, predicate func(Product) bool) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if predicate(p) {
			out = append(out, p)
		}
	}
	return out
}

func anyContains(values []string, term string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), term) {
			return true
		}
	}
	return false
}

func joinedFeatures(p Product) string {
	return strings.ToLower(strings.Join(p.Features, " "))
}

// specBlob serializes the specifications map for the quimicos volume matcher,
// which greps the raw JSON the way the storefront did.
func specBlob(p Product) string {
	if len(p.Specifications) == 0 {
		return "{}"
	}
	raw, err := json.Marshal(p.Specifications)
	if err != nil {
		return "{}"
	}
	return strings.ToLower(string(raw))
}
