package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jchairstudios/catalog-backend/pkg/enums"
	pkgerrors "github.com/jchairstudios/catalog-backend/pkg/errors"
)

// snapshotVersion is baked into every cache key. Bump it when the Product
// shape changes so stale payloads from a previous deploy are skipped.
const snapshotVersion = "v1"

type snapshotStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	SnapshotKey(category, digest string) string
}

// SnapshotCache keeps per-category product snapshots in Redis so browse
// requests skip the database between catalog updates.
type SnapshotCache struct {
	store snapshotStore
	ttl   time.Duration
}

// NewSnapshotCache builds the cache with the configured TTL.
func NewSnapshotCache(store snapshotStore, ttl time.Duration) (*SnapshotCache, error) {
	if store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "snapshot store is required")
	}
	if ttl <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "snapshot ttl must be positive")
	}
	return &SnapshotCache{store: store, ttl: ttl}, nil
}

// GetProducts returns the cached snapshot for the category. The second return
// reports a hit; a corrupt payload counts as a miss.
func (c *SnapshotCache) GetProducts(ctx context.Context, category enums.CatalogCategory) ([]Product, bool, error) {
	raw, err := c.store.Get(ctx, c.key(category))
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read snapshot")
	}

	var products []Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		return nil, false, nil
	}
	return products, true, nil
}

// SetProducts replaces the cached snapshot for the category.
func (c *SnapshotCache) SetProducts(ctx context.Context, category enums.CatalogCategory, products []Product) error {
	payload, err := json.Marshal(products)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode snapshot")
	}
	if err := c.store.Set(ctx, c.key(category), string(payload), c.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "write snapshot")
	}
	return nil
}

// Invalidate drops the cached snapshot for the categories. The seeder calls
// it after rewriting catalog rows.
func (c *SnapshotCache) Invalidate(ctx context.Context, categories ...enums.CatalogCategory) error {
	keys := make([]string, 0, len(categories))
	for _, category := range categories {
		keys = append(keys, c.key(category))
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.store.Del(ctx, keys...); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "invalidate snapshot")
	}
	return nil
}

func (c *SnapshotCache) key(category enums.CatalogCategory) string {
	name := category.String()
	if name == "" {
		name = "all"
	}
	return c.store.SnapshotKey(name, snapshotVersion)
}
