package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is an append-only message, scoped either to a specific recipe
// (RecipeID set) or to the general feed (RecipeID nil). Comments are never
// edited or deleted.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	RecipeID  *string   `json:"recipeId,omitempty"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsGeneral reports whether the comment belongs to the general feed.
func (c *Comment) IsGeneral() bool {
	return c.RecipeID == nil
}
