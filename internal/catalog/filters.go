package catalog

import "strings"

// Filters is the full set of user-selected filter values for one browse
// request. The zero value means "no filtering". Values inside a facet slice
// combine with OR; distinct active facets combine with AND.
type Filters struct {
	Search     string   `json:"search,omitempty"`
	Brands     []string `json:"brands,omitempty"`
	PriceRange string   `json:"price_range,omitempty"`

	// Tintas.
	HairColor   []string `json:"hair_color,omitempty"`
	ColorFamily []string `json:"color_family,omitempty"`
	Coverage    []string `json:"coverage,omitempty"`
	// Ammonia true restricts results to products carrying an ammonia-FREE
	// marker phrase ("sem amônia"). The inverted name is inherited from the
	// storefront filter UI and kept for compatibility.
	Ammonia bool `json:"ammonia,omitempty"`

	// Progressivas.
	StraighteningLevel []string `json:"straightening_level,omitempty"`
	Formula            []string `json:"formula,omitempty"`

	// Hidratacao.
	TreatmentType []string `json:"treatment_type,omitempty"`
	HairType      []string `json:"hair_type,omitempty"`
	ProblemTarget []string `json:"problem_target,omitempty"`

	// Quimicos.
	ChemicalType  []string `json:"chemical_type,omitempty"`
	Concentration []string `json:"concentration,omitempty"`
	Volume        []string `json:"volume,omitempty"`

	// Universal flags.
	IsNew       bool    `json:"is_new,omitempty"`
	Featured    bool    `json:"featured,omitempty"`
	HasDiscount bool    `json:"has_discount,omitempty"`
	InStock     bool    `json:"in_stock,omitempty"`
	MinRating   float64 `json:"min_rating,omitempty"`
}

// FilterPatch carries a partial filter update; nil fields leave the current
// value untouched.
type FilterPatch struct {
	Search     *string
	Brands     *[]string
	PriceRange *string

	HairColor   *[]string
	ColorFamily *[]string
	Coverage    *[]string
	Ammonia     *bool

	StraighteningLevel *[]string
	Formula            *[]string

	TreatmentType *[]string
	HairType      *[]string
	ProblemTarget *[]string

	ChemicalType  *[]string
	Concentration *[]string
	Volume        *[]string

	IsNew       *bool
	Featured    *bool
	HasDiscount *bool
	InStock     *bool
	MinRating   *float64
}

// Merge returns a copy of f with the non-nil patch fields applied.
func (f Filters) Merge(patch FilterPatch) Filters {
	if patch.Search != nil {
		f.Search = *patch.Search
	}
	if patch.Brands != nil {
		f.Brands = append([]string(nil), *patch.Brands...)
	}
	if patch.PriceRange != nil {
		f.PriceRange = *patch.PriceRange
	}
	if patch.HairColor != nil {
		f.HairColor = append([]string(nil), *patch.HairColor...)
	}
	if patch.ColorFamily != nil {
		f.ColorFamily = append([]string(nil), *patch.ColorFamily...)
	}
	if patch.Coverage != nil {
		f.Coverage = append([]string(nil), *patch.Coverage...)
	}
	if patch.Ammonia != nil {
		f.Ammonia = *patch.Ammonia
	}
	if patch.StraighteningLevel != nil {
		f.StraighteningLevel = append([]string(nil), *patch.StraighteningLevel...)
	}
	if patch.Formula != nil {
		f.Formula = append([]string(nil), *patch.Formula...)
	}
	if patch.TreatmentType != nil {
		f.TreatmentType = append([]string(nil), *patch.TreatmentType...)
	}
	if patch.HairType != nil {
		f.HairType = append([]string(nil), *patch.HairType...)
	}
	if patch.ProblemTarget != nil {
		f.ProblemTarget = append([]string(nil), *patch.ProblemTarget...)
	}
	if patch.ChemicalType != nil {
		f.ChemicalType = append([]string(nil), *patch.ChemicalType...)
	}
	if patch.Concentration != nil {
		f.Concentration = append([]string(nil), *patch.Concentration...)
	}
	if patch.Volume != nil {
		f.Volume = append([]string(nil), *patch.Volume...)
	}
	if patch.IsNew != nil {
		f.IsNew = *patch.IsNew
	}
	if patch.Featured != nil {
		f.Featured = *patch.Featured
	}
	if patch.HasDiscount != nil {
		f.HasDiscount = *patch.HasDiscount
	}
	if patch.InStock != nil {
		f.InStock = *patch.InStock
	}
	if patch.MinRating != nil {
		f.MinRating = *patch.MinRating
	}
	return f
}

// Clear returns the empty filter state.
func (f Filters) Clear() Filters {
	return Filters{}
}

// ActiveCount mirrors the storefront badge: each selected facet value counts
// one, set booleans count one, a non-empty search or price range counts one,
// a positive rating threshold counts one.
func (f Filters) ActiveCount() int {
	count := 0
	if strings.TrimSpace(f.Search) != "" {
		count++
	}
	if strings.TrimSpace(f.PriceRange) != "" {
		count++
	}
	for _, group := range [][]string{
		f.Brands, f.HairColor, f.ColorFamily, f.Coverage,
		f.StraighteningLevel, f.Formula,
		f.TreatmentType, f.HairType, f.ProblemTarget,
		f.ChemicalType, f.Concentration, f.Volume,
	} {
		count += len(group)
	}
	for _, flag := range []bool{f.Ammonia, f.IsNew, f.Featured, f.HasDiscount, f.InStock} {
		if flag {
			count++
		}
	}
	if f.MinRating > 0 {
		count++
	}
	return count
}
