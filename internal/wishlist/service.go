package wishlist

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jchairstudios/catalog-backend/pkg/config"
	"github.com/jchairstudios/catalog-backend/pkg/db/models"
	pkgerrors "github.com/jchairstudios/catalog-backend/pkg/errors"
)

type sessionStore interface {
	SAdd(ctx context.Context, key string, members ...any) (int64, error)
	SRem(ctx context.Context, key string, members ...any) (int64, error)
	SMembers(ctx context.Context, key string) ([]string, error)
	SCard(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
	WishlistKey(sessionID string) string
}

type productFinder interface {
	FindByID(ctx context.Context, id string) (*models.CatalogProduct, error)
}

// Service exposes business rules for session wishlists. Wishlists are
// anonymous: the session ID is a client-held token, not an account.
type Service interface {
	AddItem(ctx context.Context, sessionID, productID string) error
	RemoveItem(ctx context.Context, sessionID, productID string) error
	GetWishlist(ctx context.Context, sessionID string) (WishlistDTO, error)
}

// ServiceParams groups dependencies for the wishlist service.
type ServiceParams struct {
	Store    sessionStore
	Products productFinder
	Config   config.WishlistConfig
}

type service struct {
	store    sessionStore
	products productFinder
	cfg      config.WishlistConfig
}

// NewService builds a wishlist service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "wishlist store is required")
	}
	if params.Products == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product finder is required")
	}
	return &service{
		store:    params.Store,
		products: params.Products,
		cfg:      params.Config,
	}, nil
}

// AddItem verifies the product exists, enforces the size cap, and refreshes
// the session TTL so active sessions never expire mid-browse.
func (s *service) AddItem(ctx context.Context, sessionID, productID string) error {
	key, err := s.sessionKey(sessionID)
	if err != nil {
		return err
	}
	if strings.TrimSpace(productID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	if _, err := s.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	if s.cfg.MaxItems > 0 {
		count, err := s.store.SCard(ctx, key)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count wishlist")
		}
		if count >= int64(s.cfg.MaxItems) {
			return pkgerrors.New(pkgerrors.CodeConflict, "wishlist is full")
		}
	}

	if _, err := s.store.SAdd(ctx, key, productID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "add wishlist item")
	}
	return s.touch(ctx, key)
}

// RemoveItem drops the entry regardless of prior state.
func (s *service) RemoveItem(ctx context.Context, sessionID, productID string) error {
	key, err := s.sessionKey(sessionID)
	if err != nil {
		return err
	}
	if strings.TrimSpace(productID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if _, err := s.store.SRem(ctx, key, productID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "remove wishlist item")
	}
	return s.touch(ctx, key)
}

// GetWishlist returns the liked product IDs for the session, sorted for
// stable responses.
func (s *service) GetWishlist(ctx context.Context, sessionID string) (WishlistDTO, error) {
	key, err := s.sessionKey(sessionID)
	if err != nil {
		return WishlistDTO{}, err
	}

	ids, err := s.store.SMembers(ctx, key)
	if err != nil {
		return WishlistDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list wishlist")
	}
	sort.Strings(ids)

	return WishlistDTO{
		SessionID:  sessionID,
		ProductIDs: ids,
		Count:      len(ids),
	}, nil
}

func (s *service) sessionKey(sessionID string) (string, error) {
	if strings.TrimSpace(sessionID) == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	return s.store.WishlistKey(sessionID), nil
}

func (s *service) touch(ctx context.Context, key string) error {
	if s.cfg.SessionTTL <= 0 {
		return nil
	}
	if err := s.store.Expire(ctx, key, s.cfg.SessionTTL); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "refresh wishlist ttl")
	}
	return nil
}
