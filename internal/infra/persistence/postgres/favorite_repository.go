package postgres

import (
	"context"
	"encoding/json"

	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	"pantry/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// favoriteRepository implements the repository.FavoriteRepository interface using GORM.
// Each user's favorites are stored whole as a single jsonb document.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Get loads the user's favorite set. A missing row or an unreadable document
// both resolve to an empty set so a first toggle always starts from a clean
// baseline.
func (repo *favoriteRepository) Get(ctx context.Context, username string) (entity.FavoriteSet, error) {
	var favM model.FavoriteModel
	if err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&favM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.FavoriteSet{}, nil
		}

		return nil, errors.Wrap(err, "failed to load favorites")
	}

	var refs entity.FavoriteSet
	if err := json.Unmarshal([]byte(favM.Refs), &refs); err != nil {
		return entity.FavoriteSet{}, nil
	}
	if refs == nil {
		refs = entity.FavoriteSet{}
	}

	return refs, nil
}

// Save upserts the user's whole favorite set, replacing whatever was stored.
func (repo *favoriteRepository) Save(ctx context.Context, username string, favorites entity.FavoriteSet) error {
	if favorites == nil {
		favorites = entity.FavoriteSet{}
	}

	raw, err := json.Marshal(favorites)
	if err != nil {
		return errors.Wrap(err, "failed to encode favorites")
	}

	favM := model.FavoriteModel{
		Username: username,
		Refs:     string(raw),
	}
	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "username"}},
			DoUpdates: clause.AssignmentColumns([]string{"refs", "updated_at"}),
		}).
		Create(&favM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save favorites")
	}

	return nil
}
