package repository

import (
	"context"

	"pantry/internal/domain/entity"
)

// FavoriteRepository persists the per-user favorite set as a whole value.
// There is no partial-update primitive: callers read the full set, modify it
// and write it back, so last-write-wins applies at set granularity.
type FavoriteRepository interface {
	// Get returns the user's favorite set, or an empty set when nothing is
	// stored (or the stored value is unreadable).
	Get(ctx context.Context, username string) (entity.FavoriteSet, error)

	// Save overwrites the user's favorite set.
	Save(ctx context.Context, username string, favorites entity.FavoriteSet) error
}
