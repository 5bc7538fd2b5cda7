package pagination

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 24
	// MaxLimit caps how many rows any page can request.
	MaxLimit = 100
)

// Params holds page pagination inputs from controllers or services.
type Params struct {
	Page  int
	Limit int
}

// Page metadata returned alongside paginated results.
type Page struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// NormalizeLimit enforces the configured default and maximum limits. Zero or
// negative bounds fall back to the package defaults.
func NormalizeLimit(limit, defaultLimit, maxLimit int) int {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	if maxLimit <= 0 {
		maxLimit = MaxLimit
	}
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

// NormalizePage clamps the requested page to 1 or greater.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// Offset converts normalized page parameters into a slice offset.
func (p Params) Offset() int {
	return (NormalizePage(p.Page) - 1) * p.Limit
}

// Build assembles page metadata for the given total item count.
func Build(params Params, totalItems int) Page {
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	totalPages := totalItems / limit
	if totalItems%limit != 0 {
		totalPages++
	}
	if totalPages == 0 {
		totalPages = 1
	}
	return Page{
		Page:       NormalizePage(params.Page),
		Limit:      limit,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// Slice returns the window of items for the page, guarding both bounds.
func Slice[T any](items []T, params Params) []T {
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	start := (NormalizePage(params.Page) - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
