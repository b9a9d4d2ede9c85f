package main

import (
	"context"
	"log/slog"
	"os"

	"pantry/config"
	"pantry/internal/delivery"
	"pantry/internal/delivery/http"
	httpmiddleware "pantry/internal/delivery/http/middleware"
	"pantry/internal/delivery/http/router/handler"
	deliverymiddleware "pantry/internal/delivery/middleware"
	"pantry/internal/domain/service"
	"pantry/internal/infra/auth"
	"pantry/internal/infra/catalog"
	logs "pantry/internal/infra/log"
	"pantry/internal/infra/persistence/postgres"
	"pantry/internal/usecase"
	"pantry/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			buildCatalog,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewFavoriteRepository,
			postgres.NewMealPlanRepository,
			postgres.NewCommentRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			catalog.NewKeywordClassifier,
			fx.Annotate(
				newLocalProvider,
				fx.ResultTags(`group:"recipeProviders"`),
			),
			fx.Annotate(
				newMealDBProvider,
				fx.ResultTags(`group:"recipeProviders"`),
			),
		),
	)
}

// newLocalProvider creates the local JSON catalog provider when a catalog
// file is configured.
func newLocalProvider(cfg *config.Config, logger *slog.Logger) service.RecipeProvider {
	if cfg.Catalog.LocalPath == "" {
		return nil // local catalog is optional
	}

	return catalog.NewLocalProvider(cfg.Catalog.LocalPath, logger)
}

// newMealDBProvider creates the remote TheMealDB provider when enabled.
func newMealDBProvider(cfg *config.Config, logger *slog.Logger) service.RecipeProvider {
	if cfg.Catalog.Remote == nil || !cfg.Catalog.Remote.Enabled {
		return nil // remote catalog is optional
	}

	return catalog.NewMealDBClient(cfg.Catalog.Remote, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewCatalogService,
			impl.NewFavoriteService,
			impl.NewMealPlanService,
			impl.NewCommentService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewErrorMiddleware,
			deliverymiddleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewCatalogHandler,
			handler.NewFavoriteHandler,
			handler.NewMealPlanHandler,
			handler.NewCommentHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// buildCatalog loads all providers once at startup so search and browse work
// from the first request.
func buildCatalog(lc fx.Lifecycle, catalogUC usecase.CatalogUsecase) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return catalogUC.Build(ctx)
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
