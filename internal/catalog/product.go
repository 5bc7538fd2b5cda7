package catalog

import (
	"github.com/shopspring/decimal"
)

// ColorInfo carries the structured shade metadata some dye products ship with.
type ColorInfo struct {
	Tone      string `json:"tone,omitempty"`
	HexColor  string `json:"hex_color,omitempty"`
	Undertone string `json:"undertone,omitempty"`
}

// Product is the immutable record the filtering engine operates on. Instances
// are built from catalog rows (or seed data) and are never mutated by the
// engine.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Brand       string `json:"brand"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory,omitempty"`
	Description string `json:"description"`

	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	// PriceBRL is display-only; it is never filtered or sorted on.
	PriceBRL *decimal.Decimal `json:"price_brl,omitempty"`

	Features       []string          `json:"features,omitempty"`
	Tags           []string          `json:"tags,omitempty"`
	Colors         []string          `json:"colors,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
	ColorInfo      *ColorInfo        `json:"color_info,omitempty"`

	Stock   *int  `json:"stock,omitempty"`
	InStock *bool `json:"in_stock,omitempty"`

	Rating  float64 `json:"rating,omitempty"`
	Reviews int     `json:"reviews,omitempty"`

	Featured    bool `json:"featured,omitempty"`
	IsNew       bool `json:"is_new,omitempty"`
	HasDiscount bool `json:"has_discount,omitempty"`
}

// Available reports whether the product counts as in stock. An absent InStock
// flag defaults to available unless the stock counter says zero.
func (p Product) Available() bool {
	if p.InStock != nil {
		return *p.InStock
	}
	if p.Stock != nil && *p.Stock == 0 {
		return false
	}
	return true
}
