package usecase

import (
	"context"

	"pantry/internal/domain/entity"
)

// MealPlanUsecase manages the per-user weekly meal grid.
type MealPlanUsecase interface {
	// Get returns the user's grid with all 21 slots present.
	Get(ctx context.Context, username string) (entity.MealPlan, error)

	// SetSlot assigns a recipe to a (day, meal) slot, silently overwriting
	// any prior assignment. A nil recipeID clears the slot.
	SetSlot(ctx context.Context, username, day, meal string, recipeID *string) error
}
