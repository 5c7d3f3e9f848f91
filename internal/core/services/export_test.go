package services

import (
	"context"
	"time"
)

func SetAccountClock(s *AccountService, now func() time.Time) {
	s.now = now
}

func PurgeStalePrefs(s *CatalogService, ctx context.Context, before time.Time) {
	s.purgeStalePrefs(ctx, before)
}

func RefreshCatalog(s *CatalogService, ctx context.Context) {
	s.refresh(ctx)
}
