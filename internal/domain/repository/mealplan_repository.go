package repository

import (
	"context"

	"pantry/internal/domain/entity"
)

// MealPlanRepository persists the per-user weekly grid as a whole value.
// Implementations must return a fully-populated grid on Get: absent or
// unreadable stored plans come back as the default all-nil grid, and
// partially-stored grids are merged onto the default template.
type MealPlanRepository interface {
	Get(ctx context.Context, username string) (entity.MealPlan, error)

	// Save overwrites the user's whole grid.
	Save(ctx context.Context, username string, plan entity.MealPlan) error
}
