package service

import (
	"context"

	"pantry/internal/domain/entity"
)

// RecipeProvider adapts one raw recipe source into canonical Recipe entities.
// Fetch returns every recipe the provider could normalize; a provider must
// skip individual malformed or unreachable records rather than fail the
// whole fetch.
type RecipeProvider interface {
	// Name identifies the provider in logs.
	Name() string

	Fetch(ctx context.Context) ([]*entity.Recipe, error)
}
