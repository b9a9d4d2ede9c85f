package usecase

import (
	"context"

	"pantry/internal/domain/entity"
)

// CommentUsecase manages the append-only comment feeds.
type CommentUsecase interface {
	// PostRecipeComment appends a comment to one recipe's feed. Blank text
	// is rejected without any write.
	PostRecipeComment(ctx context.Context, author, recipeID, text string) (*entity.Comment, error)

	// PostGeneralComment appends a comment to the general feed. Blank text
	// is rejected without any write.
	PostGeneralComment(ctx context.Context, author, text string) (*entity.Comment, error)

	// ListRecipeComments returns one recipe's comments in insertion order.
	ListRecipeComments(ctx context.Context, recipeID string) ([]*entity.Comment, error)

	// ListGeneralComments returns the general feed, newest first.
	ListGeneralComments(ctx context.Context) ([]*entity.Comment, error)
}
