package enums

import "fmt"

// CatalogCategory represents the canonical storefront categories that carry
// category-specific filter predicates.
type CatalogCategory string

const (
	CatalogCategoryTintas       CatalogCategory = "tintas"
	CatalogCategoryProgressivas CatalogCategory = "progressivas"
	CatalogCategoryHidratacao   CatalogCategory = "hidratacao"
	CatalogCategoryBotox        CatalogCategory = "botox"
	CatalogCategoryQuimicos     CatalogCategory = "quimicos"
)

var validCatalogCategories = []CatalogCategory{
	CatalogCategoryTintas,
	CatalogCategoryProgressivas,
	CatalogCategoryHidratacao,
	CatalogCategoryBotox,
	CatalogCategoryQuimicos,
}

// String implements fmt.Stringer.
func (c CatalogCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CatalogCategory.
func (c CatalogCategory) IsValid() bool {
	for _, candidate := range validCatalogCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCatalogCategory converts raw input into a CatalogCategory.
func ParseCatalogCategory(value string) (CatalogCategory, error) {
	for _, candidate := range validCatalogCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid catalog category %q", value)
}

// CatalogCategories returns all known categories in declaration order.
func CatalogCategories() []CatalogCategory {
	out := make([]CatalogCategory, len(validCatalogCategories))
	copy(out, validCatalogCategories)
	return out
}
