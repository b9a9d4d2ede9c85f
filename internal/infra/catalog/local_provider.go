package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"strings"

	"pantry/internal/domain/entity"
	"pantry/internal/domain/service"

	"github.com/pkg/errors"
)

// localRecord mirrors one entry of the local catalog JSON file.
type localRecord struct {
	Name         string   `json:"name"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	PrepTimeMin  *int     `json:"prep_time_min"`
	CookTimeMin  *int     `json:"cook_time_min"`
	Heat         *int     `json:"heat"`
	Nutrition    *struct {
		Calories float64 `json:"calories"`
		ProteinG float64 `json:"protein_g"`
		FatG     float64 `json:"fat_g"`
		CarbsG   float64 `json:"carbs_g"`
	} `json:"nutrition"`
}

// localProvider normalizes the local catalog file into canonical recipes.
type localProvider struct {
	path   string
	logger *slog.Logger
}

// NewLocalProvider is the constructor for the local file provider.
func NewLocalProvider(path string, logger *slog.Logger) service.RecipeProvider {
	return &localProvider{path: path, logger: logger}
}

// Name identifies the provider in logs.
func (p *localProvider) Name() string {
	return entity.SourceLocal
}

// Fetch reads and normalizes the catalog file. One malformed record is
// logged and skipped; only an unreadable file or a broken top-level
// document fails the whole fetch.
func (p *localProvider) Fetch(_ context.Context) ([]*entity.Recipe, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read local catalog file")
	}

	var rawRecords []json.RawMessage
	if err := json.Unmarshal(data, &rawRecords); err != nil {
		return nil, errors.Wrap(err, "failed to parse local catalog file")
	}

	recipes := make([]*entity.Recipe, 0, len(rawRecords))
	for i, raw := range rawRecords {
		var record localRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			p.logger.Warn("Skipping malformed local catalog record",
				slog.Int("index", i),
				slog.Any("error", err),
			)

			continue
		}

		recipe := p.normalize(&record)
		if recipe == nil {
			p.logger.Warn("Skipping unusable local catalog record", slog.Int("index", i))

			continue
		}
		recipes = append(recipes, recipe)
	}

	return recipes, nil
}

// normalize adapts one local record into the canonical Recipe shape.
// Returns nil when the record carries no name or no usable ingredient.
func (p *localProvider) normalize(record *localRecord) *entity.Recipe {
	name := strings.TrimSpace(record.Name)
	if name == "" {
		return nil
	}

	ingredients := make([]string, 0, len(record.Ingredients))
	for _, ingredient := range record.Ingredients {
		ingredient = strings.ToLower(strings.TrimSpace(ingredient))
		if ingredient == "" {
			continue
		}
		ingredients = append(ingredients, ingredient)
	}
	if len(ingredients) == 0 {
		return nil
	}

	instructions := strings.TrimSpace(record.Instructions)
	if instructions == "" {
		instructions = entity.DefaultInstructions
	}

	recipe := &entity.Recipe{
		ID:           entity.IDPrefixLocal + ":" + slugify(name),
		Name:         name,
		Ingredients:  ingredients,
		Instructions: instructions,
		PrepTimeMin:  record.PrepTimeMin,
		CookTimeMin:  record.CookTimeMin,
		HeatLevel:    record.Heat,
		Source:       entity.SourceLocal,
	}

	if record.Nutrition != nil {
		recipe.Nutrition = &entity.Nutrition{
			Calories: record.Nutrition.Calories,
			ProteinG: record.Nutrition.ProteinG,
			FatG:     record.Nutrition.FatG,
			CarbsG:   record.Nutrition.CarbsG,
		}
	}

	return recipe
}

// slugify derives a stable lowercase identifier from a recipe name.
func slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
