package usecase

import (
	"context"
	"iter"

	"pantry/internal/domain/entity"
)

// SearchInput defines a recipe search: the user's ingredient selection plus
// the allergen categories to exclude. Ingredients are matched as exact,
// lowercased terms.
type SearchInput struct {
	Ingredients []string `json:"ingredients" validate:"required,min=1,dive,required"`
	Allergens   []string `json:"allergens"`
}

// CatalogUsecase exposes the normalized recipe catalog: building it from the
// configured providers, the derived ingredient vocabulary, and filtered
// lookups.
type CatalogUsecase interface {
	// Build fetches all providers and swaps in the freshly normalized
	// catalog. A provider failing wholesale logs and contributes nothing;
	// Build only errors when every provider failed and the catalog would be
	// empty.
	Build(ctx context.Context) error

	// Ingredients yields the distinct, lowercase, sorted ingredient
	// vocabulary of the current catalog. The sequence is restartable.
	Ingredients(ctx context.Context) iter.Seq[string]

	// Search returns matching recipes in stable catalog order. Allergen
	// exclusion takes precedence over ingredient inclusion. An empty
	// selection yields an empty result; handlers reject it before calling.
	Search(ctx context.Context, input *SearchInput) ([]*entity.Recipe, error)

	// GetRecipe returns one recipe by canonical ID.
	GetRecipe(ctx context.Context, id string) (*entity.Recipe, error)
}
