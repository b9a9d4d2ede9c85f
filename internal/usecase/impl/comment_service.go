package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "pantry/internal/delivery/context"
	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	"pantry/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// commentService implements the CommentUsecase interface.
type commentService struct {
	commentRepo repository.CommentRepository
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for CommentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	CommentRepo repository.CommentRepository
	Logger      *slog.Logger
}

// NewCommentService creates a new comment service instance.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		commentRepo: params.CommentRepo,
		logger:      params.Logger,
	}
}

func (s *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// PostRecipeComment appends a comment to the recipe's feed.
func (s *commentService) PostRecipeComment(ctx context.Context, author, recipeID, text string) (*entity.Comment, error) {
	return s.post(ctx, author, &recipeID, text)
}

// PostGeneralComment appends a comment to the general feed.
func (s *commentService) PostGeneralComment(ctx context.Context, author, text string) (*entity.Comment, error) {
	return s.post(ctx, author, nil, text)
}

// post validates and persists one comment. Blank text is rejected before any
// write so a failed post never mutates the feed.
func (s *commentService) post(ctx context.Context, author string, recipeID *string, text string) (*entity.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domainerrors.ErrEmptyComment
	}

	comment := &entity.Comment{
		ID:        uuid.New(),
		RecipeID:  recipeID,
		Author:    author,
		Text:      text,
		CreatedAt: time.Now(),
	}

	if err := s.commentRepo.Append(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "failed to append comment")
	}

	s.log(ctx).Info("Comment posted",
		slog.String("author", author),
		slog.Bool("general", comment.IsGeneral()),
	)

	return comment, nil
}

// ListRecipeComments returns one recipe's comments in insertion order.
func (s *commentService) ListRecipeComments(ctx context.Context, recipeID string) ([]*entity.Comment, error) {
	comments, err := s.commentRepo.ListByRecipe(ctx, recipeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipe comments")
	}

	return comments, nil
}

// ListGeneralComments returns the general feed, newest first.
func (s *commentService) ListGeneralComments(ctx context.Context) ([]*entity.Comment, error) {
	comments, err := s.commentRepo.ListGeneral(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list general comments")
	}

	return comments, nil
}
