package impl

import (
	"context"
	"testing"
	"time"

	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	mockRepo "pantry/internal/mocks/repository"
	"pantry/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type commentServiceFixtures struct {
	service     usecase.CommentUsecase
	commentRepo *mockRepo.MockCommentRepository
}

func createTestCommentService(t *testing.T) commentServiceFixtures {
	t.Helper()

	commentRepo := mockRepo.NewMockCommentRepository(t)

	return commentServiceFixtures{
		service: NewCommentService(CommentServiceParams{
			CommentRepo: commentRepo,
			Logger:      testLogger(),
		}),
		commentRepo: commentRepo,
	}
}

func TestCommentService_PostRecipeComment(t *testing.T) {
	f := createTestCommentService(t)
	ctx := context.Background()

	var appended *entity.Comment
	f.commentRepo.EXPECT().Append(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, comment *entity.Comment) error {
			appended = comment
			return nil
		})

	comment, err := f.service.PostRecipeComment(ctx, "alice", "local:tomato-pasta", "  Loved it!  ")

	require.NoError(t, err)
	assert.Same(t, appended, comment)
	assert.NotEqual(t, uuid.Nil, comment.ID)
	require.NotNil(t, comment.RecipeID)
	assert.Equal(t, "local:tomato-pasta", *comment.RecipeID)
	assert.Equal(t, "alice", comment.Author)
	assert.Equal(t, "Loved it!", comment.Text, "text is stored trimmed")
	assert.WithinDuration(t, time.Now(), comment.CreatedAt, time.Minute)
	assert.False(t, comment.IsGeneral())
}

func TestCommentService_PostGeneralComment(t *testing.T) {
	f := createTestCommentService(t)
	ctx := context.Background()

	f.commentRepo.EXPECT().Append(ctx, mock.Anything).Return(nil)

	comment, err := f.service.PostGeneralComment(ctx, "bob", "What should I cook tonight?")

	require.NoError(t, err)
	assert.Nil(t, comment.RecipeID)
	assert.True(t, comment.IsGeneral())
}

func TestCommentService_Post_RejectsBlankText(t *testing.T) {
	testCases := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "whitespace only", text: "   \t\n"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			f := createTestCommentService(t)
			ctx := context.Background()

			_, err := f.service.PostRecipeComment(ctx, "alice", "local:tomato-pasta", testCase.text)
			assert.ErrorIs(t, err, domainerrors.ErrEmptyComment)

			_, err = f.service.PostGeneralComment(ctx, "alice", testCase.text)
			assert.ErrorIs(t, err, domainerrors.ErrEmptyComment)

			f.commentRepo.AssertNotCalled(t, "Append")
		})
	}
}

func TestCommentService_ListRecipeComments(t *testing.T) {
	f := createTestCommentService(t)
	ctx := context.Background()
	recipeID := "local:tomato-pasta"

	stored := []*entity.Comment{
		{ID: uuid.New(), RecipeID: &recipeID, Author: "alice", Text: "First"},
		{ID: uuid.New(), RecipeID: &recipeID, Author: "bob", Text: "Second"},
	}
	f.commentRepo.EXPECT().ListByRecipe(ctx, recipeID).Return(stored, nil)

	comments, err := f.service.ListRecipeComments(ctx, recipeID)

	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "First", comments[0].Text)
	assert.Equal(t, "Second", comments[1].Text)
}

func TestCommentService_ListGeneralComments(t *testing.T) {
	f := createTestCommentService(t)
	ctx := context.Background()

	stored := []*entity.Comment{
		{ID: uuid.New(), Author: "bob", Text: "Newest"},
		{ID: uuid.New(), Author: "alice", Text: "Older"},
	}
	f.commentRepo.EXPECT().ListGeneral(ctx).Return(stored, nil)

	comments, err := f.service.ListGeneralComments(ctx)

	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "Newest", comments[0].Text)
}
