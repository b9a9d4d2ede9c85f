package usecase

import (
	"context"

	"pantry/internal/domain/entity"
)

// FavoriteUsecase manages the per-user favorite set.
type FavoriteUsecase interface {
	// List returns the user's favorites in insertion order.
	List(ctx context.Context, username string) (entity.FavoriteSet, error)

	// Toggle flips the favorite state of a recipe for the user and reports
	// the new state. Toggling twice restores the prior state.
	Toggle(ctx context.Context, username, recipeID string) (favorited bool, err error)
}
