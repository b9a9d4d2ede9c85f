package entity

import "slices"

// WeekDays are the seven fixed day keys of the weekly plan, in display order.
var WeekDays = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// MealTypes are the three fixed meal keys of each day, in display order.
var MealTypes = []string{"breakfast", "lunch", "dinner"}

// MealPlan is the per-user weekly assignment grid: 7 days x 3 meals, each
// slot holding at most one recipe reference (nil when unassigned). All 21
// slots are always present; the grid is never partially initialized.
type MealPlan map[string]DayPlan

// DayPlan maps a meal type to an optional recipe reference.
type DayPlan map[string]*string

// NewMealPlan builds the default grid with every slot present and unassigned.
func NewMealPlan() MealPlan {
	plan := make(MealPlan, len(WeekDays))
	for _, day := range WeekDays {
		slots := make(DayPlan, len(MealTypes))
		for _, meal := range MealTypes {
			slots[meal] = nil
		}
		plan[day] = slots
	}

	return plan
}

// Normalize merges the plan onto the default template so that days or meals
// missing from a partially-stored grid come back as present, unassigned
// slots. Unknown keys in the stored grid are dropped.
func (p MealPlan) Normalize() MealPlan {
	normalized := NewMealPlan()
	for _, day := range WeekDays {
		stored, ok := p[day]
		if !ok {
			continue
		}
		for _, meal := range MealTypes {
			if ref, ok := stored[meal]; ok {
				normalized[day][meal] = ref
			}
		}
	}

	return normalized
}

// SetSlot assigns a recipe reference to the (day, meal) slot, silently
// overwriting any existing assignment. A nil ref clears the slot.
// It reports whether the slot keys are valid.
func (p MealPlan) SetSlot(day, meal string, ref *string) bool {
	if !ValidDay(day) || !ValidMeal(meal) {
		return false
	}
	p[day][meal] = ref

	return true
}

// Slot returns the reference assigned to the (day, meal) slot, nil when the
// slot is unassigned or the keys are unknown.
func (p MealPlan) Slot(day, meal string) *string {
	slots, ok := p[day]
	if !ok {
		return nil
	}

	return slots[meal]
}

// ValidDay reports whether day is one of the seven fixed day keys.
func ValidDay(day string) bool {
	return slices.Contains(WeekDays, day)
}

// ValidMeal reports whether meal is one of the three fixed meal keys.
func ValidMeal(meal string) bool {
	return slices.Contains(MealTypes, meal)
}
