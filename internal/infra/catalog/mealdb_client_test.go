package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pantry/config"
	"pantry/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMealDB serves a minimal filter/lookup API for the remote client tests.
type fakeMealDB struct {
	// byIngredient maps an ingredient to the stub IDs the filter endpoint
	// returns for it.
	byIngredient map[string][]string

	// meals maps a meal ID to the full lookup record.
	meals map[string]map[string]any

	lookupCalls int
}

func (f *fakeMealDB) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/filter.php", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		ids := f.byIngredient[r.URL.Query().Get("i")]
		if len(ids) == 0 {
			_ = json.NewEncoder(w).Encode(map[string]any{"meals": nil})

			return
		}

		stubs := make([]map[string]string, 0, len(ids))
		for _, id := range ids {
			stubs = append(stubs, map[string]string{"idMeal": id})
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"meals": stubs})
	})
	mux.HandleFunc("/lookup.php", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		f.lookupCalls++
		meal, ok := f.meals[r.URL.Query().Get("i")]
		if !ok {
			_ = json.NewEncoder(w).Encode(map[string]any{"meals": nil})

			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"meals": []map[string]any{meal}})
	})

	return mux
}

func newTestMealDBClient(t *testing.T, fake *fakeMealDB, commonIngredients []string, stubsPerIngredient int) *mealDBClient {
	t.Helper()

	server := httptest.NewServer(fake.handler())
	t.Cleanup(server.Close)

	cfg := &config.RemoteProviderConfig{
		Enabled:            true,
		BaseURL:            server.URL,
		CommonIngredients:  commonIngredients,
		StubsPerIngredient: stubsPerIngredient,
	}

	return NewMealDBClient(cfg, discardLogger()).(*mealDBClient)
}

func TestMealDBClient_Fetch_NormalizesSlots(t *testing.T) {
	fake := &fakeMealDB{
		byIngredient: map[string][]string{"chicken": {"52940"}},
		meals: map[string]map[string]any{
			"52940": {
				"idMeal":         "52940",
				"strMeal":        "Brown Stew Chicken",
				"strInstructions": "Squeeze lime over chicken.",
				"strIngredient1": "Chicken",
				"strMeasure1":    "1 whole",
				"strIngredient2": "  Tomato ",
				"strMeasure2":    "",
				"strIngredient3": "",
				"strMeasure3":    "ignored without ingredient",
				"strIngredient4": nil,
			},
		},
	}
	client := newTestMealDBClient(t, fake, []string{"chicken"}, 3)

	recipes, err := client.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, recipes, 1)

	recipe := recipes[0]
	assert.Equal(t, "mealdb:52940", recipe.ID)
	assert.Equal(t, "Brown Stew Chicken", recipe.Name)
	assert.Equal(t, []string{"chicken", "tomato"}, recipe.Ingredients)
	assert.Equal(t, []string{"1 whole Chicken", "Tomato"}, recipe.IngredientsWithMeasures)
	assert.Equal(t, "Squeeze lime over chicken.", recipe.Instructions)
	assert.Equal(t, entity.SourceMealDB, recipe.Source)
}

func TestMealDBClient_Fetch_DefaultInstructions(t *testing.T) {
	fake := &fakeMealDB{
		byIngredient: map[string][]string{"rice": {"1"}},
		meals: map[string]map[string]any{
			"1": {"idMeal": "1", "strMeal": "Plain Rice", "strIngredient1": "Rice"},
		},
	}
	client := newTestMealDBClient(t, fake, []string{"rice"}, 3)

	recipes, err := client.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, entity.DefaultInstructions, recipes[0].Instructions)
}

func TestMealDBClient_Fetch_CapsStubsPerIngredient(t *testing.T) {
	fake := &fakeMealDB{
		byIngredient: map[string][]string{"beef": {"1", "2", "3", "4", "5"}},
		meals: map[string]map[string]any{
			"1": {"idMeal": "1", "strMeal": "One", "strIngredient1": "Beef"},
			"2": {"idMeal": "2", "strMeal": "Two", "strIngredient1": "Beef"},
			"3": {"idMeal": "3", "strMeal": "Three", "strIngredient1": "Beef"},
			"4": {"idMeal": "4", "strMeal": "Four", "strIngredient1": "Beef"},
			"5": {"idMeal": "5", "strMeal": "Five", "strIngredient1": "Beef"},
		},
	}
	client := newTestMealDBClient(t, fake, []string{"beef"}, 2)

	recipes, err := client.Fetch(context.Background())

	require.NoError(t, err)
	assert.Len(t, recipes, 2)
	assert.Equal(t, 2, fake.lookupCalls)
}

func TestMealDBClient_Fetch_DeduplicatesAcrossIngredients(t *testing.T) {
	fake := &fakeMealDB{
		byIngredient: map[string][]string{
			"chicken": {"7"},
			"rice":    {"7"},
		},
		meals: map[string]map[string]any{
			"7": {"idMeal": "7", "strMeal": "Chicken Rice", "strIngredient1": "Chicken", "strIngredient2": "Rice"},
		},
	}
	client := newTestMealDBClient(t, fake, []string{"chicken", "rice"}, 3)

	recipes, err := client.Fetch(context.Background())

	require.NoError(t, err)
	assert.Len(t, recipes, 1)
	assert.Equal(t, 1, fake.lookupCalls, "second sighting of the same ID must not trigger a lookup")
}

func TestMealDBClient_Fetch_SkipsUnusableRecords(t *testing.T) {
	fake := &fakeMealDB{
		byIngredient: map[string][]string{"salt": {"1", "2", "3"}},
		meals: map[string]map[string]any{
			"1": {"idMeal": "1", "strMeal": "", "strIngredient1": "Salt"},
			"2": {"idMeal": "2", "strMeal": "No Slots"},
			"3": {"idMeal": "3", "strMeal": "Keeper", "strIngredient1": "Salt"},
		},
	}
	client := newTestMealDBClient(t, fake, []string{"salt"}, 5)

	recipes, err := client.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Keeper", recipes[0].Name)
}

func TestMealDBClient_Fetch_NoCommonIngredients(t *testing.T) {
	client := newTestMealDBClient(t, &fakeMealDB{}, nil, 3)

	_, err := client.Fetch(context.Background())

	assert.Error(t, err)
}

func TestNormalizeMealRecord_NilCases(t *testing.T) {
	assert.Nil(t, normalizeMealRecord(map[string]any{"strMeal": "No ID", "strIngredient1": "x"}))
	assert.Nil(t, normalizeMealRecord(map[string]any{"idMeal": "1", "strIngredient1": "x"}))
	assert.Nil(t, normalizeMealRecord(map[string]any{"idMeal": "1", "strMeal": "Empty"}))
}
