package seed

import (
	"context"

	"go.uber.org/multierr"

	"github.com/jchairstudios/catalog-backend/pkg/db"
	"github.com/jchairstudios/catalog-backend/pkg/db/models"
	"github.com/jchairstudios/catalog-backend/pkg/enums"
	pkgerrors "github.com/jchairstudios/catalog-backend/pkg/errors"
	"github.com/jchairstudios/catalog-backend/pkg/logger"
)

type productWriter interface {
	UpsertProducts(ctx context.Context, products []models.CatalogProduct) error
}

type snapshotInvalidator interface {
	Invalidate(ctx context.Context, categories ...enums.CatalogCategory) error
}

// Seeder loads the starter catalog and drops any stale snapshots afterwards.
type Seeder struct {
	repo  productWriter
	cache snapshotInvalidator
	logg  *logger.Logger
}

// NewSeeder builds a seeder. The cache is optional.
func NewSeeder(repo productWriter, cache snapshotInvalidator, logg *logger.Logger) (*Seeder, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product writer is required")
	}
	if logg == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &Seeder{repo: repo, cache: cache, logg: logg}, nil
}

// Run upserts the starter rows category by category. A failing category does
// not stop the others; the aggregated error reports every failure.
func (s *Seeder) Run(ctx context.Context) error {
	byCategory := map[enums.CatalogCategory][]models.CatalogProduct{}
	for _, product := range Products() {
		byCategory[product.Category] = append(byCategory[product.Category], product)
	}

	var errs error
	seeded := make([]enums.CatalogCategory, 0, len(byCategory))
	for _, category := range enums.CatalogCategories() {
		rows, ok := byCategory[category]
		if !ok {
			continue
		}
		if err := s.repo.UpsertProducts(ctx, rows); err != nil {
			// A unique violation means another writer beat us to the rows,
			// not that the database is unhealthy.
			code := pkgerrors.CodeDependency
			if db.IsUniqueViolation(err, "") {
				code = pkgerrors.CodeConflict
			}
			errs = multierr.Append(errs, pkgerrors.Wrap(code, err, "seed "+category.String()))
			continue
		}
		seeded = append(seeded, category)
		s.logg.Info(s.logg.WithCategory(ctx, category.String()), "seeded catalog category")
	}

	if s.cache != nil && len(seeded) > 0 {
		// The uncategorized snapshot covers the "all products" browse path.
		targets := append(seeded, "")
		if err := s.cache.Invalidate(ctx, targets...); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	return errs
}
