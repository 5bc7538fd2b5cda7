package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jchairstudios/catalog-backend/pkg/enums"
)

var nameCollator = collate.New(language.BrazilianPortuguese, collate.IgnoreCase)

func compareNames(a, b string) int {
	return nameCollator.CompareString(a, b)
}

// sortProducts orders the filtered slice by the requested key. The input is
// copied; FilterProducts promises not to touch its arguments. Unknown keys
// already degraded to name ordering at parse time, but the default arm keeps
// that promise for callers constructing keys directly.
func sortProducts(products []Product, key enums.SortKey) []Product {
	out := make([]Product, len(products))
	copy(out, products)

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch key {
		case enums.SortKeyPriceLowHigh:
			return a.Price.Cmp(b.Price) < 0
		case enums.SortKeyPriceHighLow:
			return b.Price.Cmp(a.Price) < 0
		case enums.SortKeyRating:
			return b.Rating < a.Rating
		case enums.SortKeyPopularity:
			return b.Reviews < a.Reviews
		case enums.SortKeyNewest:
			if a.IsNew != b.IsNew {
				return a.IsNew
			}
			return compareNames(a.Name, b.Name) < 0
		default:
			return compareNames(a.Name, b.Name) < 0
		}
	})

	return out
}
