package impl

import (
	"context"
	"testing"

	"pantry/internal/domain/entity"
	mockRepo "pantry/internal/mocks/repository"
	"pantry/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type favoriteServiceFixtures struct {
	service      usecase.FavoriteUsecase
	favoriteRepo *mockRepo.MockFavoriteRepository
}

func createTestFavoriteService(t *testing.T) favoriteServiceFixtures {
	t.Helper()

	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)

	return favoriteServiceFixtures{
		service: NewFavoriteService(FavoriteServiceParams{
			FavoriteRepo: favoriteRepo,
			Logger:       testLogger(),
		}),
		favoriteRepo: favoriteRepo,
	}
}

func TestFavoriteService_List(t *testing.T) {
	f := createTestFavoriteService(t)
	ctx := context.Background()

	f.favoriteRepo.EXPECT().Get(ctx, "alice").
		Return(entity.FavoriteSet{"local:tomato-pasta", "mealdb:52772"}, nil)

	favorites, err := f.service.List(ctx, "alice")

	require.NoError(t, err)
	assert.Equal(t, entity.FavoriteSet{"local:tomato-pasta", "mealdb:52772"}, favorites)
}

func TestFavoriteService_Toggle_AddsWhenAbsent(t *testing.T) {
	f := createTestFavoriteService(t)
	ctx := context.Background()

	f.favoriteRepo.EXPECT().Get(ctx, "alice").
		Return(entity.FavoriteSet{"local:a"}, nil)
	f.favoriteRepo.EXPECT().Save(ctx, "alice", entity.FavoriteSet{"local:a", "local:b"}).
		Return(nil)

	favorited, err := f.service.Toggle(ctx, "alice", "local:b")

	require.NoError(t, err)
	assert.True(t, favorited)
}

func TestFavoriteService_Toggle_RemovesWhenPresent(t *testing.T) {
	f := createTestFavoriteService(t)
	ctx := context.Background()

	f.favoriteRepo.EXPECT().Get(ctx, "alice").
		Return(entity.FavoriteSet{"local:a", "local:b", "local:c"}, nil)
	f.favoriteRepo.EXPECT().Save(ctx, "alice", entity.FavoriteSet{"local:a", "local:c"}).
		Return(nil)

	favorited, err := f.service.Toggle(ctx, "alice", "local:b")

	require.NoError(t, err)
	assert.False(t, favorited)
}

func TestFavoriteService_Toggle_RoundTripRestoresSet(t *testing.T) {
	f := createTestFavoriteService(t)
	ctx := context.Background()

	stored := entity.FavoriteSet{"local:a"}
	f.favoriteRepo.EXPECT().Get(ctx, "alice").
		RunAndReturn(func(context.Context, string) (entity.FavoriteSet, error) {
			return stored, nil
		})
	f.favoriteRepo.EXPECT().Save(ctx, "alice", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, favorites entity.FavoriteSet) error {
			stored = favorites
			return nil
		})

	favorited, err := f.service.Toggle(ctx, "alice", "local:b")
	require.NoError(t, err)
	assert.True(t, favorited)

	favorited, err = f.service.Toggle(ctx, "alice", "local:b")
	require.NoError(t, err)
	assert.False(t, favorited)

	assert.Equal(t, entity.FavoriteSet{"local:a"}, stored)
}

func TestFavoriteService_Toggle_SaveFailure(t *testing.T) {
	f := createTestFavoriteService(t)
	ctx := context.Background()

	f.favoriteRepo.EXPECT().Get(ctx, "alice").
		Return(entity.FavoriteSet{}, nil)
	f.favoriteRepo.EXPECT().Save(ctx, "alice", entity.FavoriteSet{"local:a"}).
		Return(errors.New("write failed"))

	_, err := f.service.Toggle(ctx, "alice", "local:a")

	assert.Error(t, err)
}
