package impl

import (
	"context"
	"log/slog"

	deliverycontext "pantry/internal/delivery/context"
	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	"pantry/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// mealPlanService implements the MealPlanUsecase interface on top of the
// whole-value meal plan store.
type mealPlanService struct {
	mealPlanRepo repository.MealPlanRepository
	logger       *slog.Logger
}

// MealPlanServiceParams holds dependencies for MealPlanService, injected by Fx.
type MealPlanServiceParams struct {
	fx.In

	MealPlanRepo repository.MealPlanRepository
	Logger       *slog.Logger
}

// NewMealPlanService creates a new meal plan service instance.
func NewMealPlanService(params MealPlanServiceParams) usecase.MealPlanUsecase {
	return &mealPlanService{
		mealPlanRepo: params.MealPlanRepo,
		logger:       params.Logger,
	}
}

func (s *mealPlanService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Get returns the user's grid; the repository guarantees all 21 slots are
// present, defaulting to unassigned.
func (s *mealPlanService) Get(ctx context.Context, username string) (entity.MealPlan, error) {
	plan, err := s.mealPlanRepo.Get(ctx, username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load meal plan")
	}

	return plan, nil
}

// SetSlot overwrites one (day, meal) slot and persists the whole grid. An
// existing assignment is silently replaced; a nil recipeID clears the slot.
func (s *mealPlanService) SetSlot(ctx context.Context, username, day, meal string, recipeID *string) error {
	plan, err := s.mealPlanRepo.Get(ctx, username)
	if err != nil {
		return errors.Wrap(err, "failed to load meal plan")
	}

	if ok := plan.SetSlot(day, meal, recipeID); !ok {
		return domainerrors.ErrUnknownMealSlot
	}

	if err := s.mealPlanRepo.Save(ctx, username, plan); err != nil {
		return errors.Wrap(err, "failed to save meal plan")
	}

	s.log(ctx).Info("Meal slot updated",
		slog.String("username", username),
		slog.String("day", day),
		slog.String("meal", meal),
		slog.Bool("cleared", recipeID == nil),
	)

	return nil
}
