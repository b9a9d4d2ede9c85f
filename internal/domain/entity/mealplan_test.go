package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMealPlan_AllSlotsPresentAndUnassigned(t *testing.T) {
	plan := NewMealPlan()

	require.Len(t, plan, 7)
	for _, day := range WeekDays {
		require.Contains(t, plan, day)
		require.Len(t, plan[day], 3)
		for _, meal := range MealTypes {
			assert.Nil(t, plan[day][meal], "slot %s/%s should start unassigned", day, meal)
		}
	}
}

func TestMealPlan_SetSlot(t *testing.T) {
	plan := NewMealPlan()
	ref := "local:tomato-pasta"

	ok := plan.SetSlot("Monday", "dinner", &ref)

	require.True(t, ok)
	require.NotNil(t, plan.Slot("Monday", "dinner"))
	assert.Equal(t, ref, *plan.Slot("Monday", "dinner"))

	// The other 20 slots stay untouched.
	for _, day := range WeekDays {
		for _, meal := range MealTypes {
			if day == "Monday" && meal == "dinner" {
				continue
			}
			assert.Nil(t, plan.Slot(day, meal))
		}
	}
}

func TestMealPlan_SetSlot_OverwritesSilently(t *testing.T) {
	plan := NewMealPlan()
	first := "mealdb:52772"
	second := "local:tomato-pasta"

	require.True(t, plan.SetSlot("Friday", "lunch", &first))
	require.True(t, plan.SetSlot("Friday", "lunch", &second))

	require.NotNil(t, plan.Slot("Friday", "lunch"))
	assert.Equal(t, second, *plan.Slot("Friday", "lunch"))
}

func TestMealPlan_SetSlot_ClearsWithNil(t *testing.T) {
	plan := NewMealPlan()
	ref := "mealdb:52772"

	require.True(t, plan.SetSlot("Sunday", "breakfast", &ref))
	require.True(t, plan.SetSlot("Sunday", "breakfast", nil))

	assert.Nil(t, plan.Slot("Sunday", "breakfast"))
}

func TestMealPlan_SetSlot_RejectsUnknownKeys(t *testing.T) {
	plan := NewMealPlan()
	ref := "local:anything"

	assert.False(t, plan.SetSlot("Funday", "dinner", &ref))
	assert.False(t, plan.SetSlot("Monday", "brunch", &ref))
	assert.False(t, plan.SetSlot("monday", "dinner", &ref), "day keys are case-sensitive")
}

func TestMealPlan_Normalize_FillsMissingSlots(t *testing.T) {
	ref := "local:tomato-pasta"
	stored := MealPlan{
		"Monday": DayPlan{
			"dinner": &ref,
		},
		"Someday": DayPlan{ // unknown day is dropped
			"dinner": &ref,
		},
	}

	normalized := stored.Normalize()

	require.Len(t, normalized, 7)
	for _, day := range WeekDays {
		require.Len(t, normalized[day], 3)
	}
	require.NotNil(t, normalized.Slot("Monday", "dinner"))
	assert.Equal(t, ref, *normalized.Slot("Monday", "dinner"))
	assert.NotContains(t, normalized, "Someday")
	assert.Nil(t, normalized.Slot("Monday", "lunch"))
}
