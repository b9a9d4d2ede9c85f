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

// mealPlanRepository implements the repository.MealPlanRepository interface using GORM.
// Each user's weekly grid is stored whole as a single jsonb document.
type mealPlanRepository struct {
	db *gorm.DB
}

// NewMealPlanRepository is the constructor for mealPlanRepository.
func NewMealPlanRepository(db *gorm.DB) repository.MealPlanRepository {
	return &mealPlanRepository{db: db}
}

// Get loads the user's weekly plan. A missing row or an unreadable document
// resolve to an all-empty grid, and a stored document is merged onto the full
// week template so every day and meal slot is present in the result.
func (repo *mealPlanRepository) Get(ctx context.Context, username string) (entity.MealPlan, error) {
	var planM model.MealPlanModel
	if err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&planM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.NewMealPlan(), nil
		}

		return nil, errors.Wrap(err, "failed to load meal plan")
	}

	var stored entity.MealPlan
	if err := json.Unmarshal([]byte(planM.Grid), &stored); err != nil {
		return entity.NewMealPlan(), nil
	}

	return stored.Normalize(), nil
}

// Save upserts the user's whole weekly grid, replacing whatever was stored.
func (repo *mealPlanRepository) Save(ctx context.Context, username string, plan entity.MealPlan) error {
	raw, err := json.Marshal(plan.Normalize())
	if err != nil {
		return errors.Wrap(err, "failed to encode meal plan")
	}

	planM := model.MealPlanModel{
		Username: username,
		Grid:     string(raw),
	}
	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "username"}},
			DoUpdates: clause.AssignmentColumns([]string{"grid", "updated_at"}),
		}).
		Create(&planM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save meal plan")
	}

	return nil
}
