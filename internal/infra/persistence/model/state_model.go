package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteModel mirrors the 'favorites' table: one row per user holding the
// whole favorite set as a JSON array. Reads and writes always move the
// whole value.
type FavoriteModel struct {
	Username  string `gorm:"type:varchar(100);primaryKey"`
	Refs      string `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}

// MealPlanModel mirrors the 'meal_plans' table: one row per user holding the
// whole 7x3 grid as a JSON object.
type MealPlanModel struct {
	Username  string `gorm:"type:varchar(100);primaryKey"`
	Grid      string `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MealPlanModel) TableName() string {
	return "meal_plans"
}

// CommentModel mirrors the 'comments' table. RecipeID is nil for general
// feed comments. Rows are append-only.
type CommentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	RecipeID  *string   `gorm:"type:varchar(255);index"`
	Author    string    `gorm:"type:varchar(100);not null"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}
