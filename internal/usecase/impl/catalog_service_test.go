package impl

import (
	"context"
	"slices"
	"testing"

	"pantry/config"
	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/service"
	"pantry/internal/infra/catalog"
	mockSvc "pantry/internal/mocks/service"
	"pantry/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalogConfig(matchPolicy string) *config.Config {
	cfg := &config.Config{Allergens: config.DefaultAllergens()}
	cfg.Catalog = &config.CatalogConfig{MatchPolicy: matchPolicy}

	return cfg
}

func recipeFixture(id, name string, ingredients ...string) *entity.Recipe {
	return &entity.Recipe{
		ID:           id,
		Name:         name,
		Ingredients:  ingredients,
		Instructions: entity.DefaultInstructions,
		Source:       entity.SourceLocal,
	}
}

// createTestCatalogService builds the service around one mock provider
// serving the given recipes, with the real keyword classifier.
func createTestCatalogService(t *testing.T, matchPolicy string, recipes []*entity.Recipe) usecase.CatalogUsecase {
	t.Helper()

	cfg := testCatalogConfig(matchPolicy)
	provider := mockSvc.NewMockRecipeProvider(t)
	provider.EXPECT().Fetch(context.Background()).Return(recipes, nil)
	provider.EXPECT().Name().Return("test").Maybe()

	service := NewCatalogService(CatalogServiceParams{
		Providers:  []service.RecipeProvider{provider},
		Classifier: catalog.NewKeywordClassifier(cfg),
		Config:     cfg,
		Logger:     testLogger(),
	})

	require.NoError(t, service.Build(context.Background()))

	return service
}

func TestCatalogService_Search_AnyOverlap(t *testing.T) {
	service := createTestCatalogService(t, config.MatchPolicyAny, []*entity.Recipe{
		recipeFixture("local:tomato-pasta", "Tomato Pasta", "tomato", "pasta"),
		recipeFixture("local:rice-bowl", "Rice Bowl", "rice", "chicken"),
	})

	recipes, err := service.Search(context.Background(), &usecase.SearchInput{
		Ingredients: []string{"Tomato"},
	})

	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Tomato Pasta", recipes[0].Name)
}

func TestCatalogService_Search_AllergenExclusionWins(t *testing.T) {
	service := createTestCatalogService(t, config.MatchPolicyAny, []*entity.Recipe{
		recipeFixture("local:tomato-pasta", "Tomato Pasta", "tomato", "pasta"),
	})

	recipes, err := service.Search(context.Background(), &usecase.SearchInput{
		Ingredients: []string{"tomato"},
		Allergens:   []string{"gluten"},
	})

	require.NoError(t, err)
	assert.Empty(t, recipes, "pasta triggers gluten, so the overlap must not matter")
}

func TestCatalogService_Search_AllPolicy(t *testing.T) {
	service := createTestCatalogService(t, config.MatchPolicyAll, []*entity.Recipe{
		recipeFixture("local:a", "Tomato Only", "tomato"),
		recipeFixture("local:b", "Tomato Rice", "tomato", "rice"),
	})

	recipes, err := service.Search(context.Background(), &usecase.SearchInput{
		Ingredients: []string{"tomato", "rice"},
	})

	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Tomato Rice", recipes[0].Name)
}

func TestCatalogService_Search_EmptySelection(t *testing.T) {
	service := createTestCatalogService(t, config.MatchPolicyAny, []*entity.Recipe{
		recipeFixture("local:a", "Anything", "tomato"),
	})

	recipes, err := service.Search(context.Background(), &usecase.SearchInput{
		Ingredients: []string{"  ", ""},
	})

	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestCatalogService_Search_StableCatalogOrder(t *testing.T) {
	service := createTestCatalogService(t, config.MatchPolicyAny, []*entity.Recipe{
		recipeFixture("local:c", "Third", "rice"),
		recipeFixture("local:a", "First", "rice"),
		recipeFixture("local:b", "Second", "rice"),
	})

	recipes, err := service.Search(context.Background(), &usecase.SearchInput{
		Ingredients: []string{"rice"},
	})

	require.NoError(t, err)
	require.Len(t, recipes, 3)
	assert.Equal(t, "Third", recipes[0].Name)
	assert.Equal(t, "First", recipes[1].Name)
	assert.Equal(t, "Second", recipes[2].Name)
}

func TestCatalogService_Ingredients_SortedDistinctRestartable(t *testing.T) {
	service := createTestCatalogService(t, config.MatchPolicyAny, []*entity.Recipe{
		recipeFixture("local:a", "A", "tomato", "rice"),
		recipeFixture("local:b", "B", "rice", "basil"),
	})

	seq := service.Ingredients(context.Background())

	first := slices.Collect(seq)
	second := slices.Collect(seq)

	assert.Equal(t, []string{"basil", "rice", "tomato"}, first)
	assert.Equal(t, first, second, "the sequence must be restartable")
}

func TestCatalogService_GetRecipe(t *testing.T) {
	service := createTestCatalogService(t, config.MatchPolicyAny, []*entity.Recipe{
		recipeFixture("local:a", "A", "tomato"),
	})

	recipe, err := service.GetRecipe(context.Background(), "local:a")
	require.NoError(t, err)
	assert.Equal(t, "A", recipe.Name)

	_, err = service.GetRecipe(context.Background(), "local:missing")
	assert.ErrorIs(t, err, domainerrors.ErrRecipeNotFound)
}

func TestCatalogService_Build_DeduplicatesAcrossProviders(t *testing.T) {
	cfg := testCatalogConfig(config.MatchPolicyAny)

	first := mockSvc.NewMockRecipeProvider(t)
	first.EXPECT().Fetch(context.Background()).Return([]*entity.Recipe{
		recipeFixture("mealdb:1", "Original", "rice"),
	}, nil)
	first.EXPECT().Name().Return("first").Maybe()

	second := mockSvc.NewMockRecipeProvider(t)
	second.EXPECT().Fetch(context.Background()).Return([]*entity.Recipe{
		recipeFixture("mealdb:1", "Duplicate", "rice"),
		recipeFixture("mealdb:2", "Fresh", "rice"),
	}, nil)
	second.EXPECT().Name().Return("second").Maybe()

	service := NewCatalogService(CatalogServiceParams{
		Providers:  []service.RecipeProvider{first, second},
		Classifier: catalog.NewKeywordClassifier(cfg),
		Config:     cfg,
		Logger:     testLogger(),
	})

	require.NoError(t, service.Build(context.Background()))

	recipe, err := service.GetRecipe(context.Background(), "mealdb:1")
	require.NoError(t, err)
	assert.Equal(t, "Original", recipe.Name, "first fetch of an ID wins")

	_, err = service.GetRecipe(context.Background(), "mealdb:2")
	assert.NoError(t, err)
}

func TestCatalogService_Build_SkipsFailedProvider(t *testing.T) {
	cfg := testCatalogConfig(config.MatchPolicyAny)

	broken := mockSvc.NewMockRecipeProvider(t)
	broken.EXPECT().Fetch(context.Background()).Return(nil, errors.New("connection refused"))
	broken.EXPECT().Name().Return("broken")

	healthy := mockSvc.NewMockRecipeProvider(t)
	healthy.EXPECT().Fetch(context.Background()).Return([]*entity.Recipe{
		recipeFixture("local:a", "A", "rice"),
	}, nil)
	healthy.EXPECT().Name().Return("healthy").Maybe()

	service := NewCatalogService(CatalogServiceParams{
		Providers:  []service.RecipeProvider{broken, healthy},
		Classifier: catalog.NewKeywordClassifier(cfg),
		Config:     cfg,
		Logger:     testLogger(),
	})

	require.NoError(t, service.Build(context.Background()))

	_, err := service.GetRecipe(context.Background(), "local:a")
	assert.NoError(t, err)
}

func TestCatalogService_Build_AllProvidersFailed(t *testing.T) {
	cfg := testCatalogConfig(config.MatchPolicyAny)

	broken := mockSvc.NewMockRecipeProvider(t)
	broken.EXPECT().Fetch(context.Background()).Return(nil, errors.New("connection refused"))
	broken.EXPECT().Name().Return("broken")

	service := NewCatalogService(CatalogServiceParams{
		Providers:  []service.RecipeProvider{broken},
		Classifier: catalog.NewKeywordClassifier(cfg),
		Config:     cfg,
		Logger:     testLogger(),
	})

	err := service.Build(context.Background())

	assert.ErrorIs(t, err, ErrNoCatalogSources)
}
