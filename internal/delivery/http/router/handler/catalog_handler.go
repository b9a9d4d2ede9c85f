package handler

import (
	"net/http"
	"slices"

	"pantry/internal/delivery/http/response"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for catalog browsing and search.
type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Ingredients returns the distinct ingredient vocabulary of the catalog.
func (h *CatalogHandler) Ingredients(c echo.Context) error {
	ingredients := slices.Collect(h.uc.Ingredients(c.Request().Context()))
	if ingredients == nil {
		ingredients = []string{}
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"ingredients": ingredients,
		"count":       len(ingredients),
	}, "")
}

// Search returns recipes matching the ingredient selection, minus any that
// trigger the excluded allergen categories.
func (h *CatalogHandler) Search(c echo.Context) error {
	var input usecase.SearchInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search input")
	}
	if len(input.Ingredients) == 0 {
		return errors.WithStack(domainerrors.ErrEmptySelection)
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	recipes, err := h.uc.Search(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"recipes": recipes,
		"count":   len(recipes),
	}, "")
}

// GetRecipe returns one recipe by its canonical ID.
func (h *CatalogHandler) GetRecipe(c echo.Context) error {
	recipe, err := h.uc.GetRecipe(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recipe, "")
}
