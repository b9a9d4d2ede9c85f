package repository

import (
	"context"

	"pantry/internal/domain/entity"
)

// CommentRepository persists the append-only comment collections. Comments
// are never edited or deleted.
type CommentRepository interface {
	// Append stores a new comment in its scope (recipe feed when
	// comment.RecipeID is set, otherwise the general feed).
	Append(ctx context.Context, comment *entity.Comment) error

	// ListByRecipe returns the comments for one recipe in insertion order.
	// An unknown recipe yields an empty list.
	ListByRecipe(ctx context.Context, recipeID string) ([]*entity.Comment, error)

	// ListGeneral returns the general feed, newest first.
	ListGeneral(ctx context.Context) ([]*entity.Comment, error)
}
