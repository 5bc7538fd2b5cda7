package catalog

import (
	"github.com/jchairstudios/catalog-backend/pkg/db/models"
	"github.com/jchairstudios/catalog-backend/pkg/pagination"
)

// ListResult is the browse payload returned to clients.
type ListResult struct {
	Products      []Product       `json:"products"`
	Pagination    pagination.Page `json:"pagination"`
	ActiveFilters int             `json:"active_filters"`
	TotalMatched  int             `json:"total_matched"`
}

// FilterOptionsDTO pairs a category with its facet vocabulary.
type FilterOptionsDTO struct {
	Category string        `json:"category"`
	Options  FilterOptions `json:"options"`
}

// FromModel converts a persisted row into the engine record. The engine
// matches predicates against the display category label, so the subcategory
// ("Descolorantes") wins over the route segment ("quimicos") when present.
func FromModel(row models.CatalogProduct) Product {
	displayCategory := row.Subcategory
	if displayCategory == "" {
		displayCategory = row.Category.String()
	}

	p := Product{
		ID:            row.ID,
		Name:          row.Name,
		Brand:         row.Brand,
		Category:      displayCategory,
		Subcategory:   row.Subcategory,
		Description:   row.Description,
		Price:         row.Price,
		OriginalPrice: row.OriginalPrice,
		PriceBRL:      row.PriceBRL,
		Features:      append([]string{}, row.Features...),
		Tags:          append([]string{}, row.Tags...),
		Colors:        append([]string{}, row.Colors...),
		Stock:         row.Stock,
		InStock:       row.InStock,
		Rating:        row.Rating,
		Reviews:       row.Reviews,
		Featured:      row.Featured,
		IsNew:         row.IsNew,
		HasDiscount:   row.HasDiscount,
	}

	if len(row.Specifications) > 0 {
		p.Specifications = map[string]string(row.Specifications)
	}

	if row.ColorTone != nil || row.ColorHex != nil || row.ColorUndertone != nil {
		info := &ColorInfo{}
		if row.ColorTone != nil {
			info.Tone = *row.ColorTone
		}
		if row.ColorHex != nil {
			info.HexColor = *row.ColorHex
		}
		if row.ColorUndertone != nil {
			info.Undertone = *row.ColorUndertone
		}
		p.ColorInfo = info
	}

	return p
}

// FromModels converts a batch of rows.
func FromModels(rows []models.CatalogProduct) []Product {
	out := make([]Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromModel(row))
	}
	return out
}
