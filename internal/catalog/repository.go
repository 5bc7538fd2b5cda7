package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jchairstudios/catalog-backend/pkg/db/models"
	"github.com/jchairstudios/catalog-backend/pkg/enums"
)

// Repository wires together catalog persistence helpers.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// FindByID loads a single product row.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.CatalogProduct, error) {
	var product models.CatalogProduct
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// ListActive returns every active product for the category, oldest first. An
// empty category returns the whole active catalog. Rows sharing a created_at
// tie-break on the slug so snapshots stay byte-stable across reads.
func (r *Repository) ListActive(ctx context.Context, category enums.CatalogCategory) ([]models.CatalogProduct, error) {
	query := r.db.WithContext(ctx).Where("is_active = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var products []models.CatalogProduct
	if err := query.Order("created_at").Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// CountActive returns the number of active rows per category.
func (r *Repository) CountActive(ctx context.Context, category enums.CatalogCategory) (int64, error) {
	query := r.db.WithContext(ctx).Model(&models.CatalogProduct{}).Where("is_active = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// UpsertProducts inserts or refreshes the provided rows keyed on the slug ID.
// The seeder uses it to stay idempotent across runs.
func (r *Repository) UpsertProducts(ctx context.Context, products []models.CatalogProduct) error {
	if len(products) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&products).
		Error
}
