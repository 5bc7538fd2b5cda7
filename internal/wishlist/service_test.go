package wishlist

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jchairstudios/catalog-backend/pkg/config"
	"github.com/jchairstudios/catalog-backend/pkg/db/models"
	pkgerrors "github.com/jchairstudios/catalog-backend/pkg/errors"
)

type fakeStore struct {
	sets        map[string]map[string]bool
	expireCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{sets: map[string]map[string]bool{}}
}

func (f *fakeStore) SAdd(ctx context.Context, key string, members ...any) (int64, error) {
	set, ok := f.sets[key]
	if !ok {
		set = map[string]bool{}
		f.sets[key] = set
	}
	var added int64
	for _, member := range members {
		s := member.(string)
		if !set[s] {
			set[s] = true
			added++
		}
	}
	return added, nil
}

func (f *fakeStore) SRem(ctx context.Context, key string, members ...any) (int64, error) {
	var removed int64
	for _, member := range members {
		s := member.(string)
		if f.sets[key][s] {
			delete(f.sets[key], s)
			removed++
		}
	}
	return removed, nil
}

func (f *fakeStore) SMembers(ctx context.Context, key string) ([]string, error) {
	out := make([]string, 0, len(f.sets[key]))
	for member := range f.sets[key] {
		out = append(out, member)
	}
	return out, nil
}

func (f *fakeStore) SCard(ctx context.Context, key string) (int64, error) {
	return int64(len(f.sets[key])), nil
}

func (f *fakeStore) Expire(ctx context.Context, key string, ttl time.Duration) error {
	f.expireCalls++
	return nil
}

func (f *fakeStore) WishlistKey(sessionID string) string {
	return "jchair:wishlist:" + sessionID
}

type fakeFinder struct {
	known map[string]bool
}

func (f *fakeFinder) FindByID(ctx context.Context, id string) (*models.CatalogProduct, error) {
	if !f.known[id] {
		return nil, gorm.ErrRecordNotFound
	}
	return &models.CatalogProduct{ID: id}, nil
}

func newTestService(t *testing.T, store sessionStore, maxItems int) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Store:    store,
		Products: &fakeFinder{known: map[string]bool{"tinta-001": true, "btx-002": true, "oleo-003": true}},
		Config:   config.WishlistConfig{SessionTTL: time.Hour, MaxItems: maxItems},
	})
	require.NoError(t, err)
	return svc
}

func TestWishlistLifecycle(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(t, store, 10)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, "sess-1", "tinta-001"))
	require.NoError(t, svc.AddItem(ctx, "sess-1", "btx-002"))

	dto, err := svc.GetWishlist(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 2, dto.Count)
	assert.Equal(t, []string{"btx-002", "tinta-001"}, dto.ProductIDs)

	require.NoError(t, svc.RemoveItem(ctx, "sess-1", "tinta-001"))
	dto, err = svc.GetWishlist(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"btx-002"}, dto.ProductIDs)

	assert.Greater(t, store.expireCalls, 0, "mutations should refresh the session TTL")
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc := newTestService(t, newFakeStore(), 10)

	err := svc.AddItem(context.Background(), "sess-1", "missing")
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestAddItemEnforcesMaxItems(t *testing.T) {
	svc := newTestService(t, newFakeStore(), 2)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, "sess-1", "tinta-001"))
	require.NoError(t, svc.AddItem(ctx, "sess-1", "btx-002"))

	err := svc.AddItem(ctx, "sess-1", "oleo-003")
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeConflict, typed.Code())
}

func TestValidationErrors(t *testing.T) {
	svc := newTestService(t, newFakeStore(), 10)
	ctx := context.Background()

	for _, err := range []error{
		svc.AddItem(ctx, "", "tinta-001"),
		svc.AddItem(ctx, "sess-1", " "),
		svc.RemoveItem(ctx, "sess-1", ""),
	} {
		require.Error(t, err)
		typed := pkgerrors.As(err)
		require.NotNil(t, typed)
		assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	}

	_, err := svc.GetWishlist(ctx, "")
	require.Error(t, err)
}
