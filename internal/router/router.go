package router

import (
	"fmt"
	"strings"

	"github.com/feastline-api/internal/cache"
	"github.com/feastline-api/internal/config"
	publichandlers "github.com/feastline-api/internal/http/handlers/public"
	"github.com/feastline-api/internal/logger"
	"github.com/feastline-api/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the HTTP engine and mounts all routes.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	handler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "fl"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		Message:       "too many login attempts",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// Static file serving for uploaded images.
	r.Static("/uploads", "./uploads")

	accessControl := AccessControlMiddleware(c.AuthzService)

	apiV1 := r.Group("/api/v1")
	{
		// Catalog and auth endpoints are open to anonymous callers.
		// Optional auth resolves the identity so favorite flags follow
		// the signed-in user.
		open := apiV1.Group("")
		open.Use(OptionalUserJWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo), accessControl)
		{
			open.POST("/token", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("username")), handler.Login)
			open.POST("/token/refresh", handler.Refresh)
			open.POST("/users", handler.Register)

			open.GET("/products", handler.ListProducts)
			open.GET("/products/:id", handler.GetProduct)
			open.GET("/products/:id/reviews", handler.ListProductReviews)
			open.GET("/categories", handler.ListCategories)
			open.GET("/categories/:id", handler.GetCategory)
			open.GET("/chefs", handler.ListChefs)
			open.GET("/chefs/:id", handler.GetChef)
			open.GET("/ads", handler.ListAds)
		}

		// Everything below requires an access token.
		authed := apiV1.Group("")
		authed.Use(UserJWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo), accessControl)
		{
			authed.GET("/users/me", handler.GetProfile)
			authed.PUT("/users/me", handler.UpdateProfile)

			authed.GET("/carts/me", handler.GetMyCart)
			authed.POST("/carts/:id/add_item", handler.AddCartItem)
			authed.POST("/carts/:id/remove_item", handler.RemoveCartItem)
			authed.POST("/carts/:id/clear", handler.ClearCart)

			authed.POST("/orders", handler.CreateOrder)
			authed.GET("/orders", handler.ListOrders)
			authed.GET("/orders/:id", handler.GetOrder)
			authed.POST("/orders/:id/cancel", handler.CancelOrder)

			authed.GET("/favorites", handler.ListFavorites)
			authed.POST("/favorites/toggle/:product_id", handler.ToggleFavorite)

			authed.POST("/payments", handler.CreatePayment)
			authed.GET("/payments", handler.ListPayments)
			authed.GET("/payments/:id", handler.GetPayment)

			authed.POST("/products/:id/reviews", handler.CreateProductReview)
			authed.DELETE("/reviews/:id", handler.DeleteReview)

			authed.POST("/products", handler.CreateProduct)
			authed.PUT("/products/:id", handler.UpdateProduct)
			authed.DELETE("/products/:id", handler.DeleteProduct)

			authed.POST("/categories", handler.CreateCategory)
			authed.PUT("/categories/:id", handler.UpdateCategory)
			authed.DELETE("/categories/:id", handler.DeleteCategory)

			authed.POST("/chefs", handler.CreateChef)
			authed.PUT("/chefs/:id", handler.UpdateChef)
			authed.DELETE("/chefs/:id", handler.DeleteChef)

			authed.POST("/ads", handler.CreateAd)
			authed.PUT("/ads/:id", handler.UpdateAd)
			authed.DELETE("/ads/:id", handler.DeleteAd)
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
