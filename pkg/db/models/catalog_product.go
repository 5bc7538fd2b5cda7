package models

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	dbtypes "github.com/jchairstudios/catalog-backend/pkg/db/types"
	"github.com/jchairstudios/catalog-backend/pkg/enums"
)

// CatalogProduct is the persisted storefront listing. IDs are stable slugs
// assigned at seed time ("tinta-loreal-excellence-60"), not surrogate keys,
// so catalog URLs stay portable across environments.
type CatalogProduct struct {
	ID            string                `gorm:"column:id;primaryKey"`
	Name          string                `gorm:"column:name;not null"`
	Brand         string                `gorm:"column:brand;not null"`
	Category      enums.CatalogCategory `gorm:"column:category;not null;index"`
	Subcategory   string                `gorm:"column:subcategory"`
	Description   string                `gorm:"column:description;not null"`
	Price         decimal.Decimal       `gorm:"column:price;type:numeric(10,2);not null"`
	OriginalPrice *decimal.Decimal      `gorm:"column:original_price;type:numeric(10,2)"`
	PriceBRL      *decimal.Decimal      `gorm:"column:price_brl;type:numeric(10,2)"`

	Features       pq.StringArray    `gorm:"column:features;type:text[];not null;default:ARRAY[]::text[]"`
	Tags           pq.StringArray    `gorm:"column:tags;type:text[];not null;default:ARRAY[]::text[]"`
	Colors         pq.StringArray    `gorm:"column:colors;type:text[];not null;default:ARRAY[]::text[]"`
	Specifications dbtypes.StringMap `gorm:"column:specifications;type:jsonb;not null;default:'{}'"`

	ColorTone      *string `gorm:"column:color_tone"`
	ColorHex       *string `gorm:"column:color_hex"`
	ColorUndertone *string `gorm:"column:color_undertone"`

	Stock   *int  `gorm:"column:stock"`
	InStock *bool `gorm:"column:in_stock"`

	Rating  float64 `gorm:"column:rating;type:numeric(3,2);not null;default:0"`
	Reviews int     `gorm:"column:reviews;not null;default:0"`

	Featured    bool `gorm:"column:featured;not null;default:false"`
	IsNew       bool `gorm:"column:is_new;not null;default:false"`
	HasDiscount bool `gorm:"column:has_discount;not null;default:false"`
	IsActive    bool `gorm:"column:is_active;not null;default:true"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName pins the table name regardless of GORM pluralization rules.
func (CatalogProduct) TableName() string {
	return "catalog_products"
}
