package handler

import (
	"net/http"

	"pantry/internal/delivery/http/middleware"
	"pantry/internal/delivery/http/response"
	"pantry/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FavoriteHandler holds dependencies for the per-user favorite set.
type FavoriteHandler struct {
	uc usecase.FavoriteUsecase
}

// NewFavoriteHandler is the constructor for FavoriteHandler, injected by Fx.
func NewFavoriteHandler(uc usecase.FavoriteUsecase) *FavoriteHandler {
	return &FavoriteHandler{uc: uc}
}

// authenticatedUsername reads the username placed on the context by the auth
// middleware.
func authenticatedUsername(c echo.Context) (string, bool) {
	username, ok := c.Get(middleware.ContextKeyUsername).(string)

	return username, ok && username != ""
}

// List returns the caller's favorites in insertion order.
func (h *FavoriteHandler) List(c echo.Context) error {
	username, ok := authenticatedUsername(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	favorites, err := h.uc.List(c.Request().Context(), username)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"favorites": favorites,
		"count":     len(favorites),
	}, "")
}

type toggleFavoriteInput struct {
	RecipeID string `json:"recipeId" validate:"required"`
}

// Toggle flips the favorite state of a recipe for the caller and reports the
// new state.
func (h *FavoriteHandler) Toggle(c echo.Context) error {
	username, ok := authenticatedUsername(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	var input toggleFavoriteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid favorite toggle input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	favorited, err := h.uc.Toggle(c.Request().Context(), username, input.RecipeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"recipeId":  input.RecipeID,
		"favorited": favorited,
	}, "")
}
