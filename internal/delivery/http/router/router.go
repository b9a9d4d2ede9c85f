// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pantry/internal/delivery/http/middleware"
	"pantry/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	CatalogHandler  *handler.CatalogHandler
	FavoriteHandler *handler.FavoriteHandler
	MealPlanHandler *handler.MealPlanHandler
	CommentHandler  *handler.CommentHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	catalogHandler  *handler.CatalogHandler
	favoriteHandler *handler.FavoriteHandler
	mealPlanHandler *handler.MealPlanHandler
	commentHandler  *handler.CommentHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		catalogHandler:  params.CatalogHandler,
		favoriteHandler: params.FavoriteHandler,
		mealPlanHandler: params.MealPlanHandler,
		commentHandler:  params.CommentHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Catalog routes are public: browsing needs no account
	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("/ingredients", r.catalogHandler.Ingredients)
		catalogGroup.POST("/search", r.catalogHandler.Search)
		catalogGroup.GET("/recipes/:id", r.catalogHandler.GetRecipe)
	}

	// Per-user state requires authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/favorites", r.favoriteHandler.List)
		userGroup.POST("/favorites/toggle", r.favoriteHandler.Toggle)
		userGroup.GET("/plan", r.mealPlanHandler.Get)
		userGroup.PUT("/plan/slot", r.mealPlanHandler.SetSlot)
	}

	// Comment feeds: reading is public, writing requires authentication
	e.GET("/recipes/:id/comments", r.commentHandler.ListRecipeComments)
	e.POST("/recipes/:id/comments", r.commentHandler.PostRecipeComment, r.authMiddleware.Authenticate)
	e.GET("/comments", r.commentHandler.ListGeneralComments)
	e.POST("/comments", r.commentHandler.PostGeneralComment, r.authMiddleware.Authenticate)
}
