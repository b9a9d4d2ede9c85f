package service

// AllergenClassifier is a pure predicate engine mapping an allergen category
// to a match test over an ingredient list. The keyword table behind an
// implementation is the single point of truth for category logic.
type AllergenClassifier interface {
	// Matches reports whether any ingredient triggers the category. Unknown
	// categories never match.
	Matches(ingredients []string, category string) bool

	// Categories returns the known category names, sorted.
	Categories() []string
}
