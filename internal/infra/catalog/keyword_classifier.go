// Package catalog provides the concrete recipe providers and the allergen
// keyword engine behind the catalog domain services.
package catalog

import (
	"sort"
	"strings"

	"pantry/config"
	"pantry/internal/domain/service"
)

// keywordClassifier implements AllergenClassifier over the configured
// category → keyword table. The table is the single point of truth; no
// category logic lives anywhere else.
type keywordClassifier struct {
	keywords   map[string][]string
	categories []string
}

// NewKeywordClassifier builds the classifier from config. Categories and
// keywords are lowercased once so matching stays a plain substring test.
func NewKeywordClassifier(cfg *config.Config) service.AllergenClassifier {
	table := cfg.Allergens
	if table == nil {
		table = config.DefaultAllergens()
	}

	keywords := make(map[string][]string, len(table))
	categories := make([]string, 0, len(table))
	for category, words := range table {
		category = strings.ToLower(strings.TrimSpace(category))
		if category == "" {
			continue
		}

		lowered := make([]string, 0, len(words))
		for _, word := range words {
			word = strings.ToLower(strings.TrimSpace(word))
			if word == "" {
				continue
			}
			lowered = append(lowered, word)
		}

		keywords[category] = lowered
		categories = append(categories, category)
	}
	sort.Strings(categories)

	return &keywordClassifier{keywords: keywords, categories: categories}
}

// Matches reports whether any ingredient contains any keyword of the
// category, case-insensitively. Unknown categories never match.
func (c *keywordClassifier) Matches(ingredients []string, category string) bool {
	words, ok := c.keywords[strings.ToLower(strings.TrimSpace(category))]
	if !ok {
		return false
	}

	for _, ingredient := range ingredients {
		ingredient = strings.ToLower(ingredient)
		for _, word := range words {
			if strings.Contains(ingredient, word) {
				return true
			}
		}
	}

	return false
}

// Categories returns the known category names, sorted.
func (c *keywordClassifier) Categories() []string {
	return c.categories
}
