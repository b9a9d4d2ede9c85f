package impl

import (
	"context"
	"log/slog"

	deliverycontext "pantry/internal/delivery/context"
	"pantry/internal/domain/entity"
	"pantry/internal/domain/repository"
	"pantry/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// favoriteService implements the FavoriteUsecase interface on top of the
// whole-value favorite store.
type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo repository.FavoriteRepository
	Logger       *slog.Logger
}

// NewFavoriteService creates a new favorite service instance.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: params.FavoriteRepo,
		logger:       params.Logger,
	}
}

func (s *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// List returns the user's favorites in insertion order.
func (s *favoriteService) List(ctx context.Context, username string) (entity.FavoriteSet, error) {
	favorites, err := s.favoriteRepo.Get(ctx, username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load favorites")
	}

	return favorites, nil
}

// Toggle reads the whole set, flips the recipe's membership and writes the
// whole set back. Last write wins at set granularity.
func (s *favoriteService) Toggle(ctx context.Context, username, recipeID string) (bool, error) {
	favorites, err := s.favoriteRepo.Get(ctx, username)
	if err != nil {
		return false, errors.Wrap(err, "failed to load favorites")
	}

	updated, favorited := favorites.Toggle(recipeID)
	if err := s.favoriteRepo.Save(ctx, username, updated); err != nil {
		return false, errors.Wrap(err, "failed to save favorites")
	}

	s.log(ctx).Info("Favorite toggled",
		slog.String("username", username),
		slog.String("recipe_id", recipeID),
		slog.Bool("favorited", favorited),
	)

	return favorited, nil
}
