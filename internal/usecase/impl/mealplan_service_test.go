package impl

import (
	"context"
	"testing"

	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	mockRepo "pantry/internal/mocks/repository"
	"pantry/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mealPlanServiceFixtures struct {
	service      usecase.MealPlanUsecase
	mealPlanRepo *mockRepo.MockMealPlanRepository
}

func createTestMealPlanService(t *testing.T) mealPlanServiceFixtures {
	t.Helper()

	mealPlanRepo := mockRepo.NewMockMealPlanRepository(t)

	return mealPlanServiceFixtures{
		service: NewMealPlanService(MealPlanServiceParams{
			MealPlanRepo: mealPlanRepo,
			Logger:       testLogger(),
		}),
		mealPlanRepo: mealPlanRepo,
	}
}

func TestMealPlanService_Get(t *testing.T) {
	f := createTestMealPlanService(t)
	ctx := context.Background()

	f.mealPlanRepo.EXPECT().Get(ctx, "alice").Return(entity.NewMealPlan(), nil)

	plan, err := f.service.Get(ctx, "alice")

	require.NoError(t, err)
	require.Len(t, plan, len(entity.WeekDays))
	for _, day := range entity.WeekDays {
		for _, meal := range entity.MealTypes {
			assert.Nil(t, plan.Slot(day, meal))
		}
	}
}

func TestMealPlanService_SetSlot_PersistsWholeGrid(t *testing.T) {
	f := createTestMealPlanService(t)
	ctx := context.Background()
	recipeID := "local:tomato-pasta"

	f.mealPlanRepo.EXPECT().Get(ctx, "alice").Return(entity.NewMealPlan(), nil)

	var saved entity.MealPlan
	f.mealPlanRepo.EXPECT().Save(ctx, "alice", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, plan entity.MealPlan) error {
			saved = plan
			return nil
		})

	err := f.service.SetSlot(ctx, "alice", "Monday", "dinner", &recipeID)

	require.NoError(t, err)
	require.NotNil(t, saved)
	require.NotNil(t, saved.Slot("Monday", "dinner"))
	assert.Equal(t, recipeID, *saved.Slot("Monday", "dinner"))

	// Every other slot stays untouched.
	for _, day := range entity.WeekDays {
		for _, meal := range entity.MealTypes {
			if day == "Monday" && meal == "dinner" {
				continue
			}
			assert.Nil(t, saved.Slot(day, meal))
		}
	}
}

func TestMealPlanService_SetSlot_OverwritesSilently(t *testing.T) {
	f := createTestMealPlanService(t)
	ctx := context.Background()

	existing := entity.NewMealPlan()
	previous := "local:old"
	existing.SetSlot("Friday", "lunch", &previous)

	f.mealPlanRepo.EXPECT().Get(ctx, "alice").Return(existing, nil)

	var saved entity.MealPlan
	f.mealPlanRepo.EXPECT().Save(ctx, "alice", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, plan entity.MealPlan) error {
			saved = plan
			return nil
		})

	next := "local:new"
	err := f.service.SetSlot(ctx, "alice", "Friday", "lunch", &next)

	require.NoError(t, err)
	require.NotNil(t, saved.Slot("Friday", "lunch"))
	assert.Equal(t, "local:new", *saved.Slot("Friday", "lunch"))
}

func TestMealPlanService_SetSlot_ClearsWithNil(t *testing.T) {
	f := createTestMealPlanService(t)
	ctx := context.Background()

	existing := entity.NewMealPlan()
	previous := "local:old"
	existing.SetSlot("Sunday", "breakfast", &previous)

	f.mealPlanRepo.EXPECT().Get(ctx, "alice").Return(existing, nil)

	var saved entity.MealPlan
	f.mealPlanRepo.EXPECT().Save(ctx, "alice", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, plan entity.MealPlan) error {
			saved = plan
			return nil
		})

	err := f.service.SetSlot(ctx, "alice", "Sunday", "breakfast", nil)

	require.NoError(t, err)
	assert.Nil(t, saved.Slot("Sunday", "breakfast"))
}

func TestMealPlanService_SetSlot_UnknownKeys(t *testing.T) {
	testCases := []struct {
		name string
		day  string
		meal string
	}{
		{name: "unknown day", day: "Funday", meal: "dinner"},
		{name: "unknown meal", day: "Monday", meal: "brunch"},
		{name: "day keys are case-sensitive", day: "monday", meal: "dinner"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			f := createTestMealPlanService(t)
			ctx := context.Background()
			recipeID := "local:tomato-pasta"

			f.mealPlanRepo.EXPECT().Get(ctx, "alice").Return(entity.NewMealPlan(), nil)

			err := f.service.SetSlot(ctx, "alice", testCase.day, testCase.meal, &recipeID)

			assert.ErrorIs(t, err, domainerrors.ErrUnknownMealSlot)
			f.mealPlanRepo.AssertNotCalled(t, "Save")
		})
	}
}
