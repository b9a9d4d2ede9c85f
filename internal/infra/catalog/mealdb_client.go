package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"pantry/config"
	"pantry/internal/domain/entity"
	"pantry/internal/domain/service"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const (
	defaultRemoteTimeout      = 10 * time.Second
	defaultStubsPerIngredient = 3

	// The remote API models a recipe's ingredients as 20 discrete slots.
	ingredientSlots = 20
)

// mealStub is the shape returned by the filter endpoint: an ID plus fields
// we do not need.
type mealStub struct {
	IDMeal string `json:"idMeal"`
}

// mealListResponse wraps both the filter and lookup endpoint payloads. The
// lookup endpoint returns full records; the slot fields are read from the
// untyped map because they are 40 numbered keys.
type mealListResponse struct {
	Meals []map[string]any `json:"meals"`
}

type mealStubResponse struct {
	Meals []mealStub `json:"meals"`
}

// mealDBClient fetches and normalizes recipes from a TheMealDB-style API.
type mealDBClient struct {
	client             *resty.Client
	commonIngredients  []string
	stubsPerIngredient int
	logger             *slog.Logger
}

// NewMealDBClient is the constructor for the remote provider.
func NewMealDBClient(cfg *config.RemoteProviderConfig, logger *slog.Logger) service.RecipeProvider {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRemoteTimeout
	}

	stubs := cfg.StubsPerIngredient
	if stubs <= 0 {
		stubs = defaultStubsPerIngredient
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout)

	return &mealDBClient{
		client:             client,
		commonIngredients:  cfg.CommonIngredients,
		stubsPerIngredient: stubs,
		logger:             logger,
	}
}

// Name identifies the provider in logs.
func (c *mealDBClient) Name() string {
	return entity.SourceMealDB
}

// Fetch walks the configured common ingredients, discovers recipe stubs per
// ingredient and looks each one up in full. Any single failed request or
// unusable record is logged and skipped; recipes seen under two ingredients
// collapse to one entry.
func (c *mealDBClient) Fetch(ctx context.Context) ([]*entity.Recipe, error) {
	if len(c.commonIngredients) == 0 {
		return nil, errors.New("remote provider has no common ingredients configured")
	}

	seen := make(map[string]struct{})
	recipes := make([]*entity.Recipe, 0)

	for _, ingredient := range c.commonIngredients {
		stubs, err := c.filterByIngredient(ctx, ingredient)
		if err != nil {
			c.logger.Warn("Failed to filter recipes by ingredient, skipping",
				slog.String("ingredient", ingredient),
				slog.Any("error", err),
			)

			continue
		}

		if len(stubs) > c.stubsPerIngredient {
			stubs = stubs[:c.stubsPerIngredient]
		}

		for _, stub := range stubs {
			if stub.IDMeal == "" {
				continue
			}
			if _, ok := seen[stub.IDMeal]; ok {
				continue
			}

			record, err := c.lookupMeal(ctx, stub.IDMeal)
			if err != nil {
				c.logger.Warn("Failed to look up recipe, skipping",
					slog.String("meal_id", stub.IDMeal),
					slog.Any("error", err),
				)

				continue
			}
			if record == nil {
				continue
			}

			recipe := normalizeMealRecord(record)
			if recipe == nil {
				c.logger.Warn("Skipping unusable remote recipe record",
					slog.String("meal_id", stub.IDMeal),
				)

				continue
			}

			seen[stub.IDMeal] = struct{}{}
			recipes = append(recipes, recipe)
		}
	}

	return recipes, nil
}

// filterByIngredient calls the filter endpoint, which returns recipe stubs
// for one ingredient. A null meals array means no results.
func (c *mealDBClient) filterByIngredient(ctx context.Context, ingredient string) ([]mealStub, error) {
	var result mealStubResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("i", ingredient).
		SetResult(&result).
		Get("/filter.php")
	if err != nil {
		return nil, errors.Wrap(err, "filter request failed")
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, errors.Errorf("filter request returned status %d", resp.StatusCode())
	}

	return result.Meals, nil
}

// lookupMeal calls the lookup endpoint for one recipe ID. Returns nil when
// the API knows no such recipe.
func (c *mealDBClient) lookupMeal(ctx context.Context, mealID string) (map[string]any, error) {
	var result mealListResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("i", mealID).
		SetResult(&result).
		Get("/lookup.php")
	if err != nil {
		return nil, errors.Wrap(err, "lookup request failed")
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, errors.Errorf("lookup request returned status %d", resp.StatusCode())
	}

	if len(result.Meals) == 0 {
		return nil, nil
	}

	return result.Meals[0], nil
}

// normalizeMealRecord adapts one raw lookup record into the canonical
// Recipe shape. Slots with a blank ingredient are skipped; a non-blank
// measure is kept in a combined display string that never participates in
// matching. Returns nil when the record has no ID, no name or no usable
// ingredient.
func normalizeMealRecord(record map[string]any) *entity.Recipe {
	id := stringField(record, "idMeal")
	name := strings.TrimSpace(stringField(record, "strMeal"))
	if id == "" || name == "" {
		return nil
	}

	ingredients := make([]string, 0, ingredientSlots)
	withMeasures := make([]string, 0, ingredientSlots)
	for i := 1; i <= ingredientSlots; i++ {
		ingredient := strings.TrimSpace(stringField(record, fmt.Sprintf("strIngredient%d", i)))
		if ingredient == "" {
			continue
		}

		ingredients = append(ingredients, strings.ToLower(ingredient))

		measure := strings.TrimSpace(stringField(record, fmt.Sprintf("strMeasure%d", i)))
		if measure != "" {
			withMeasures = append(withMeasures, measure+" "+ingredient)
		} else {
			withMeasures = append(withMeasures, ingredient)
		}
	}
	if len(ingredients) == 0 {
		return nil
	}

	instructions := strings.TrimSpace(stringField(record, "strInstructions"))
	if instructions == "" {
		instructions = entity.DefaultInstructions
	}

	return &entity.Recipe{
		ID:                      entity.IDPrefixMealDB + ":" + id,
		Name:                    name,
		Ingredients:             ingredients,
		IngredientsWithMeasures: withMeasures,
		Instructions:            instructions,
		Source:                  entity.SourceMealDB,
	}
}

// stringField reads a string value from an untyped JSON object, treating
// null and non-string values as absent.
func stringField(record map[string]any, key string) string {
	value, ok := record[key].(string)
	if !ok {
		return ""
	}

	return value
}
