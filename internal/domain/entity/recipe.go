// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "slices"

// Recipe source tags identifying the origin provider.
const (
	SourceLocal  = "local"
	SourceMealDB = "themealdb"
)

// ID prefixes qualifying recipe IDs per provider. The local prefix matches
// the source tag; the remote one is the short form used in IDs like
// "mealdb:52772".
const (
	IDPrefixLocal  = SourceLocal
	IDPrefixMealDB = "mealdb"
)

// DefaultInstructions is substituted when a provider record carries no
// instructions text.
const DefaultInstructions = "No instructions available."

// Nutrition holds the optional per-recipe nutrition facts.
type Nutrition struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"proteinG"`
	FatG     float64 `json:"fatG"`
	CarbsG   float64 `json:"carbsG"`
}

// Recipe is the canonical schema all providers are normalized into.
// Instances are immutable once normalization has produced them; every
// ingredient is lowercase, trimmed and non-empty, with source duplicates
// preserved in order.
type Recipe struct {
	// ID is stable and provider-qualified, e.g. "mealdb:52772" or
	// "local:tomato-pasta".
	ID   string `json:"id"`
	Name string `json:"name"`

	// Ingredients are the matching terms: lowercase, trimmed, non-empty.
	Ingredients []string `json:"ingredients"`

	// IngredientsWithMeasures are display strings combining the source
	// measure with the ingredient. Never used for matching.
	IngredientsWithMeasures []string `json:"ingredientsWithMeasures,omitempty"`

	Instructions string     `json:"instructions"`
	PrepTimeMin  *int       `json:"prepTimeMin,omitempty"`
	CookTimeMin  *int       `json:"cookTimeMin,omitempty"`
	HeatLevel    *int       `json:"heatLevel,omitempty"`
	Nutrition    *Nutrition `json:"nutrition,omitempty"`
	Source       string     `json:"source"`
}

// HasIngredient reports whether the recipe lists the exact (already
// lowercased) ingredient term.
func (r *Recipe) HasIngredient(term string) bool {
	return slices.Contains(r.Ingredients, term)
}
