package entity

import "slices"

// FavoriteSet is the per-user set of favorited recipe IDs. Insertion order is
// preserved and the set never contains duplicates.
type FavoriteSet []string

// Has reports whether the recipe ID is favorited.
func (f FavoriteSet) Has(recipeID string) bool {
	return slices.Contains(f, recipeID)
}

// Toggle flips the membership of recipeID and returns the resulting set
// together with the new membership state. Toggling twice with the same ID
// restores the original set.
func (f FavoriteSet) Toggle(recipeID string) (FavoriteSet, bool) {
	if idx := slices.Index(f, recipeID); idx >= 0 {
		return slices.Delete(slices.Clone(f), idx, idx+1), false
	}

	return append(slices.Clone(f), recipeID), true
}
