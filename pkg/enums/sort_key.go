package enums

// SortKey selects one comparator from the fixed catalog ordering set. The
// values mirror the storefront's sort dropdown.
type SortKey string

const (
	SortKeyPriceLowHigh SortKey = "price-low-high"
	SortKeyPriceHighLow SortKey = "price-high-low"
	SortKeyRating       SortKey = "rating-high"
	SortKeyPopularity   SortKey = "popularity"
	SortKeyNewest       SortKey = "newest"
	SortKeyName         SortKey = "name"
)

var validSortKeys = []SortKey{
	SortKeyPriceLowHigh,
	SortKeyPriceHighLow,
	SortKeyRating,
	SortKeyPopularity,
	SortKeyNewest,
	SortKeyName,
}

// String implements fmt.Stringer.
func (s SortKey) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SortKey.
func (s SortKey) IsValid() bool {
	for _, candidate := range validSortKeys {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSortKey normalizes raw input into a SortKey. Unknown values degrade to
// alphabetical ordering rather than erroring; a sort dropdown must never take
// the page down.
func ParseSortKey(value string) SortKey {
	for _, candidate := range validSortKeys {
		if string(candidate) == value {
			return candidate
		}
	}
	return SortKeyName
}
