package handler

import (
	"net/http"

	"pantry/internal/delivery/http/response"
	"pantry/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MealPlanHandler holds dependencies for the per-user weekly meal grid.
type MealPlanHandler struct {
	uc usecase.MealPlanUsecase
}

// NewMealPlanHandler is the constructor for MealPlanHandler, injected by Fx.
func NewMealPlanHandler(uc usecase.MealPlanUsecase) *MealPlanHandler {
	return &MealPlanHandler{uc: uc}
}

// Get returns the caller's weekly grid with every slot present.
func (h *MealPlanHandler) Get(c echo.Context) error {
	username, ok := authenticatedUsername(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	plan, err := h.uc.Get(c.Request().Context(), username)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plan, "")
}

type setSlotInput struct {
	Day  string `json:"day" validate:"required"`
	Meal string `json:"meal" validate:"required"`

	// RecipeID is nil to clear the slot.
	RecipeID *string `json:"recipeId"`
}

// SetSlot assigns or clears one (day, meal) slot in the caller's grid.
func (h *MealPlanHandler) SetSlot(c echo.Context) error {
	username, ok := authenticatedUsername(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	var input setSlotInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meal slot input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.SetSlot(c.Request().Context(), username, input.Day, input.Meal, input.RecipeID); err != nil {
		return errors.WithStack(err)
	}

	plan, err := h.uc.Get(c.Request().Context(), username)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plan, "Meal slot updated")
}
