package impl

import (
	"context"
	"iter"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"pantry/config"
	deliverycontext "pantry/internal/delivery/context"
	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/service"
	"pantry/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ErrNoCatalogSources is returned by Build when every configured provider
// failed and no recipes could be loaded at all.
var ErrNoCatalogSources = errors.New("no catalog source produced any recipes")

// catalogService holds the in-memory normalized catalog and implements the
// CatalogUsecase interface. The catalog is immutable between builds; Build
// swaps in a fresh snapshot under the write lock.
type catalogService struct {
	providers   []service.RecipeProvider
	classifier  service.AllergenClassifier
	matchPolicy string
	logger      *slog.Logger

	mu      sync.RWMutex
	recipes []*entity.Recipe
	byID    map[string]*entity.Recipe
	vocab   []string
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	Providers  []service.RecipeProvider `group:"recipeProviders"`
	Classifier service.AllergenClassifier
	Config     *config.Config
	Logger     *slog.Logger
}

// NewCatalogService creates a new catalog service instance.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	// Disabled providers are injected as nil; skip them.
	providers := make([]service.RecipeProvider, 0, len(params.Providers))
	for _, provider := range params.Providers {
		if provider != nil {
			providers = append(providers, provider)
		}
	}

	return &catalogService{
		providers:   providers,
		classifier:  params.Classifier,
		matchPolicy: params.Config.Catalog.MatchPolicy,
		logger:      params.Logger,
		byID:        map[string]*entity.Recipe{},
	}
}

func (s *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Build fetches every provider and swaps in the merged, deduplicated
// catalog. A failing provider is logged and skipped so one unreachable
// source never aborts the build.
func (s *catalogService) Build(ctx context.Context) error {
	merged := make([]*entity.Recipe, 0)
	byID := make(map[string]*entity.Recipe)
	failures := 0

	for _, provider := range s.providers {
		recipes, err := provider.Fetch(ctx)
		if err != nil {
			failures++
			s.log(ctx).Warn("Recipe provider failed, continuing without it",
				slog.String("provider", provider.Name()),
				slog.Any("error", err),
			)

			continue
		}

		added := 0
		for _, recipe := range recipes {
			// First fetch of an ID wins; re-fetching the same recipe
			// collapses to one catalog entry.
			if _, seen := byID[recipe.ID]; seen {
				continue
			}
			byID[recipe.ID] = recipe
			merged = append(merged, recipe)
			added++
		}

		s.log(ctx).Info("Recipe provider loaded",
			slog.String("provider", provider.Name()),
			slog.Int("recipes", added),
		)
	}

	if len(merged) == 0 && failures > 0 {
		return errors.WithStack(ErrNoCatalogSources)
	}

	vocab := buildVocabulary(merged)

	s.mu.Lock()
	s.recipes = merged
	s.byID = byID
	s.vocab = vocab
	s.mu.Unlock()

	s.log(ctx).Info("Catalog built",
		slog.Int("recipes", len(merged)),
		slog.Int("ingredients", len(vocab)),
	)

	return nil
}

// Ingredients yields the distinct sorted ingredient vocabulary. The returned
// sequence snapshots the current catalog and may be ranged over any number
// of times.
func (s *catalogService) Ingredients(_ context.Context) iter.Seq[string] {
	s.mu.RLock()
	vocab := s.vocab
	s.mu.RUnlock()

	return func(yield func(string) bool) {
		for _, ingredient := range vocab {
			if !yield(ingredient) {
				return
			}
		}
	}
}

// Search filters the catalog by the ingredient selection and the active
// allergen categories. Exclusion takes precedence: a recipe triggering any
// active allergen never matches, regardless of ingredient overlap. Results
// keep stable catalog order.
func (s *catalogService) Search(ctx context.Context, input *usecase.SearchInput) ([]*entity.Recipe, error) {
	selection := normalizeTerms(input.Ingredients)
	if len(selection) == 0 {
		// Empty selection is a caller-side precondition failure; the
		// matcher's documented policy is to match nothing.
		return []*entity.Recipe{}, nil
	}

	s.mu.RLock()
	recipes := s.recipes
	s.mu.RUnlock()

	matched := make([]*entity.Recipe, 0)
	for _, recipe := range recipes {
		if s.triggersAllergen(recipe, input.Allergens) {
			continue
		}
		if s.matchesSelection(recipe, selection) {
			matched = append(matched, recipe)
		}
	}

	return matched, nil
}

// GetRecipe returns one recipe by its canonical provider-qualified ID.
func (s *catalogService) GetRecipe(_ context.Context, id string) (*entity.Recipe, error) {
	s.mu.RLock()
	recipe, ok := s.byID[id]
	s.mu.RUnlock()

	if !ok {
		return nil, domainerrors.ErrRecipeNotFound
	}

	return recipe, nil
}

func (s *catalogService) triggersAllergen(recipe *entity.Recipe, allergens []string) bool {
	for _, category := range allergens {
		if s.classifier.Matches(recipe.Ingredients, category) {
			return true
		}
	}

	return false
}

func (s *catalogService) matchesSelection(recipe *entity.Recipe, selection []string) bool {
	if s.matchPolicy == config.MatchPolicyAll {
		for _, term := range selection {
			if !recipe.HasIngredient(term) {
				return false
			}
		}

		return true
	}

	// Default at-least-one-overlap policy.
	for _, term := range selection {
		if recipe.HasIngredient(term) {
			return true
		}
	}

	return false
}

// buildVocabulary derives the distinct, lowercase, sorted union of all
// ingredient terms across the catalog.
func buildVocabulary(recipes []*entity.Recipe) []string {
	seen := make(map[string]struct{})
	for _, recipe := range recipes {
		for _, ingredient := range recipe.Ingredients {
			seen[ingredient] = struct{}{}
		}
	}

	vocab := make([]string, 0, len(seen))
	for ingredient := range seen {
		vocab = append(vocab, ingredient)
	}
	sort.Strings(vocab)

	return vocab
}

// normalizeTerms lowercases and trims the selection, dropping empties so a
// sloppy caller cannot widen the match.
func normalizeTerms(terms []string) []string {
	normalized := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		normalized = append(normalized, term)
	}

	return normalized
}
