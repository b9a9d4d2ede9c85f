package catalog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"pantry/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLocalProvider_Fetch_NormalizesRecords(t *testing.T) {
	path := writeCatalogFile(t, `[
		{
			"name": "Tomato Pasta",
			"ingredients": ["Tomato", "  PASTA ", ""],
			"instructions": "Boil pasta, add tomato.",
			"prep_time_min": 10,
			"cook_time_min": 20,
			"heat": 1,
			"nutrition": {"calories": 450, "protein_g": 12, "fat_g": 8, "carbs_g": 80}
		}
	]`)
	provider := NewLocalProvider(path, discardLogger())

	recipes, err := provider.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, recipes, 1)

	recipe := recipes[0]
	assert.Equal(t, "local:tomato-pasta", recipe.ID)
	assert.Equal(t, "Tomato Pasta", recipe.Name)
	assert.Equal(t, []string{"tomato", "pasta"}, recipe.Ingredients)
	assert.Equal(t, "Boil pasta, add tomato.", recipe.Instructions)
	assert.Equal(t, entity.SourceLocal, recipe.Source)
	require.NotNil(t, recipe.PrepTimeMin)
	assert.Equal(t, 10, *recipe.PrepTimeMin)
	require.NotNil(t, recipe.Nutrition)
	assert.InDelta(t, 450.0, recipe.Nutrition.Calories, 0.001)
}

func TestLocalProvider_Fetch_DefaultInstructions(t *testing.T) {
	path := writeCatalogFile(t, `[
		{"name": "Plain Rice", "ingredients": ["rice"], "instructions": "   "}
	]`)
	provider := NewLocalProvider(path, discardLogger())

	recipes, err := provider.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, entity.DefaultInstructions, recipes[0].Instructions)
}

func TestLocalProvider_Fetch_SkipsUnusableRecords(t *testing.T) {
	path := writeCatalogFile(t, `[
		{"name": "", "ingredients": ["salt"]},
		{"name": "No Ingredients", "ingredients": ["", "  "]},
		{"name": 42, "ingredients": ["salt"]},
		{"name": "Keeper", "ingredients": ["salt"]}
	]`)
	provider := NewLocalProvider(path, discardLogger())

	recipes, err := provider.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Keeper", recipes[0].Name)
}

func TestLocalProvider_Fetch_MissingFile(t *testing.T) {
	provider := NewLocalProvider(filepath.Join(t.TempDir(), "nope.json"), discardLogger())

	_, err := provider.Fetch(context.Background())

	assert.Error(t, err)
}

func TestLocalProvider_Fetch_BrokenDocument(t *testing.T) {
	path := writeCatalogFile(t, `{"not": "an array"}`)
	provider := NewLocalProvider(path, discardLogger())

	_, err := provider.Fetch(context.Background())

	assert.Error(t, err)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "Tomato Pasta", want: "tomato-pasta"},
		{name: "  Chicken & Rice!  ", want: "chicken-rice"},
		{name: "Crème Brûlée", want: "cr-me-br-l-e"},
		{name: "100% Rye", want: "100-rye"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slugify(tt.name))
		})
	}
}
