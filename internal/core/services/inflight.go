package services

import (
	"context"
	"fmt"
	"log"

	"github.com/srgjo27/cabin_portal/internal/core/ports"
)

// inflight gates one action per key so a double submit is refused while the
// first call is still running.
type inflight struct {
	guard ports.InflightGuard
}

func (g inflight) run(ctx context.Context, key string, fn func() error) error {
	if g.guard == nil {
		return fn()
	}

	owner, ok, err := g.guard.Acquire(ctx, key)
	if err != nil {
		return fmt.Errorf("acquire %s: %w", key, err)
	}

	if !ok {
		return ErrInFlight
	}

	defer func() {
		if err := g.guard.Release(context.WithoutCancel(ctx), key, owner); err != nil {
			log.Printf("Failed to release %s: %v", key, err)
		}
	}()

	return fn()
}
