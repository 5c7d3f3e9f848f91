package ports

import (
	"context"
	"errors"
	"time"

	"github.com/srgjo27/cabin_portal/internal/core/domain"
)

var ErrNotFound = errors.New("not found")

// TokenStore keeps the upstream bearer token of a browser session.
// Get returns an empty token when the session has none.
type TokenStore interface {
	Get(ctx context.Context, sessionID string) (string, error)
	Set(ctx context.Context, sessionID string, token string) error
	Clear(ctx context.Context, sessionID string) error
}

type SearchPrefsRepository interface {
	Get(ctx context.Context, sessionID string) (*domain.SearchPrefs, error)
	Save(ctx context.Context, sessionID string, prefs domain.SearchPrefs) error
	Delete(ctx context.Context, sessionID string) error
	PurgeStale(ctx context.Context, before time.Time) (int64, error)
}

// InflightGuard marks an action as running so duplicate submissions are refused.
// Acquire returns an owner token; Release only frees the key while that owner
// still holds it.
type InflightGuard interface {
	Acquire(ctx context.Context, key string) (owner string, ok bool, err error)
	Release(ctx context.Context, key, owner string) error
}

type CatalogCache interface {
	GetCabins(ctx context.Context) ([]domain.Cabin, bool, error)
	SetCabins(ctx context.Context, cabins []domain.Cabin) error
	Invalidate(ctx context.Context) error
}
