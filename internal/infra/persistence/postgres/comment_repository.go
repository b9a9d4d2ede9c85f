package postgres

import (
	"context"

	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	"pantry/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// commentRepository implements the repository.CommentRepository interface using GORM.
// Comments are append-only rows; nothing ever updates or deletes them.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

// Append persists a new comment row.
func (repo *commentRepository) Append(ctx context.Context, comment *entity.Comment) error {
	commentM := fromCommentDomain(comment)

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append comment")
	}

	comment.CreatedAt = commentM.CreatedAt

	return nil
}

// ListByRecipe returns a recipe's comment thread in the order it was written.
func (repo *commentRepository) ListByRecipe(ctx context.Context, recipeID string) ([]*entity.Comment, error) {
	var rows []*model.CommentModel
	if err := repo.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recipe comments")
	}

	return toCommentDomainList(rows), nil
}

// ListGeneral returns the general feed newest first.
func (repo *commentRepository) ListGeneral(ctx context.Context) ([]*entity.Comment, error) {
	var rows []*model.CommentModel
	if err := repo.db.WithContext(ctx).
		Where("recipe_id IS NULL").
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list general comments")
	}

	return toCommentDomainList(rows), nil
}

// --- Mapper Functions ---

func toCommentDomain(data *model.CommentModel) *entity.Comment {
	if data == nil {
		return nil
	}

	return &entity.Comment{
		ID:        data.ID,
		RecipeID:  data.RecipeID,
		Author:    data.Author,
		Text:      data.Text,
		CreatedAt: data.CreatedAt,
	}
}

func toCommentDomainList(rows []*model.CommentModel) []*entity.Comment {
	comments := make([]*entity.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, toCommentDomain(row))
	}

	return comments
}

func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	if data == nil {
		return nil
	}

	return &model.CommentModel{
		ID:       data.ID,
		RecipeID: data.RecipeID,
		Author:   data.Author,
		Text:     data.Text,
	}
}
