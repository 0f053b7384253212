package router

import (
	"fmt"
	"strings"

	"github.com/northcart/northcart/internal/cache"
	"github.com/northcart/northcart/internal/config"
	apihandlers "github.com/northcart/northcart/internal/http/handlers/api"
	"github.com/northcart/northcart/internal/logger"
	"github.com/northcart/northcart/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the gin engine with every storefront route.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	handler := apihandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "nc"
	}
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
	}
	redisClient := cache.Client()

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	apiV1 := r.Group("/api/v1")
	{
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", handler.Register)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), handler.Login)
		}

		// Public catalog reads.
		apiV1.GET("/product/list", handler.ListProducts)
		apiV1.GET("/product/list/search/:name", handler.SearchProducts)
		apiV1.GET("/product/item/:slug", handler.GetProduct)
		apiV1.GET("/brand/list", handler.ListBrands)
		apiV1.GET("/review/:slug", handler.ListProductReviews)

		// Member routes.
		member := apiV1.Group("")
		member.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo))
		{
			member.GET("/me", handler.Me)

			member.POST("/cart/add", handler.AddCart)
			member.DELETE("/cart/delete/:cartId", handler.DeleteCart)
			member.POST("/cart/add/:cartId", handler.AppendCartItem)
			member.DELETE("/cart/delete/:cartId/:productId", handler.RemoveCartItem)

			member.POST("/order/add", handler.AddOrder)
			member.GET("/order", RequireAdmin(), handler.ListOrders)
			member.GET("/order/me", handler.ListMyOrders)
			member.GET("/order/search", handler.SearchOrders)
			member.GET("/order/:orderId", handler.GetOrder)
			member.DELETE("/order/cancel/:orderId", handler.CancelOrder)
			member.PUT("/order/status/item/:itemId", handler.UpdateOrderItemStatus)

			member.POST("/review/add", handler.CreateReview)
			member.PUT("/review/:id", handler.UpdateReview)
			member.DELETE("/review/delete/:id", handler.DeleteReview)

			member.POST("/wishlist", handler.SetWishlist)
			member.GET("/wishlist", handler.ListWishlist)
		}

		// Admin routes.
		admin := apiV1.Group("/admin")
		admin.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo), RequireAdmin())
		{
			admin.POST("/product/add", handler.CreateProduct)
			admin.PUT("/product/:id", handler.UpdateProduct)
			admin.DELETE("/product/delete/:id", handler.DeleteProduct)

			admin.GET("/brand/list", handler.ListAllBrands)
			admin.GET("/brand/:id", handler.GetBrand)
			admin.POST("/brand/add", handler.CreateBrand)
			admin.PUT("/brand/:id", handler.UpdateBrand)
			admin.DELETE("/brand/delete/:id", handler.DeleteBrand)

			admin.PUT("/review/approve/:id", handler.ApproveReview)
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
