package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/senxilab/senxi-backend/internal/handlers"
	"github.com/senxilab/senxi-backend/internal/middleware"
)

type RouterConfig struct {
	Mode           string
	AllowedOrigins []string

	AuthMiddleware *middleware.AuthMiddleware

	Healthcheck *handlers.HealthcheckHandler
	Auth        *handlers.AuthHandler
	Guide       *handlers.GuideHandler
	Butler      *handlers.ButlerHandler
	Product     *handlers.ProductHandler
	Cart        *handlers.CartHandler
	Order       *handlers.OrderHandler
	Address     *handlers.AddressHandler
	Community   *handlers.CommunityHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Mode == "prod" || cfg.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(otelgin.Middleware("senxi-backend"))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", cfg.Healthcheck.Healthcheck)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/send-code", cfg.Auth.SendCode)
			auth.POST("/login", cfg.Auth.Login)
			auth.POST("/password-login", cfg.Auth.PasswordLogin)
			auth.GET("/:platform/url", cfg.Auth.OAuthURL)
			auth.GET("/:platform/callback", cfg.Auth.OAuthCallback)

			auth.GET("/user", cfg.AuthMiddleware.RequireAuth(), cfg.Auth.CurrentUser)
			auth.POST("/password", cfg.AuthMiddleware.RequireAuth(), cfg.Auth.SetPassword)
			auth.POST("/logout", cfg.AuthMiddleware.RequireAuth(), cfg.Auth.Logout)
		}

		guide := api.Group("/guide")
		{
			guide.POST("/start", cfg.Guide.Start)
			guide.POST("/chat", cfg.Guide.Chat)
			guide.POST("/recommend", cfg.Guide.Recommend)
		}

		butler := api.Group("/butler")
		{
			butler.POST("/chat", cfg.Butler.Chat)
			butler.GET("/quick-reply", cfg.Butler.QuickReplies)
			butler.POST("/transfer", cfg.Butler.Transfer)
		}

		products := api.Group("/products")
		{
			products.GET("", cfg.Product.List)
			products.GET("/categories", cfg.Product.Categories)
			products.GET("/featured", cfg.Product.Featured)
			products.GET("/search", cfg.Product.Search)
			products.POST("/compare", cfg.Product.Compare)
			products.GET("/:id", cfg.Product.Get)
			products.GET("/:id/related", cfg.Product.Related)
			products.GET("/:id/stock", cfg.Product.Stock)
		}

		community := api.Group("/community")
		{
			community.GET("/posts", cfg.Community.ListPosts)
			community.GET("/posts/:id", cfg.AuthMiddleware.OptionalAuth(), cfg.Community.GetPost)

			community.POST("/posts", cfg.AuthMiddleware.RequireAuth(), cfg.Community.CreatePost)
			community.POST("/posts/:id/comments", cfg.AuthMiddleware.RequireAuth(), cfg.Community.AddComment)
			community.POST("/posts/:id/like", cfg.AuthMiddleware.RequireAuth(), cfg.Community.LikePost)
			community.DELETE("/posts/:id/like", cfg.AuthMiddleware.RequireAuth(), cfg.Community.UnlikePost)
		}

		cart := api.Group("/cart", cfg.AuthMiddleware.RequireAuth())
		{
			cart.GET("", cfg.Cart.List)
			cart.POST("", cfg.Cart.Add)
			cart.PUT("/:product_id", cfg.Cart.UpdateQuantity)
			cart.DELETE("/:product_id", cfg.Cart.Remove)
			cart.DELETE("", cfg.Cart.Clear)
		}

		orders := api.Group("/orders", cfg.AuthMiddleware.RequireAuth())
		{
			orders.POST("", cfg.Order.Create)
			orders.POST("/checkout", cfg.Order.Checkout)
			orders.GET("", cfg.Order.List)
			orders.GET("/:order_no", cfg.Order.Get)
			orders.POST("/:order_no/pay", cfg.Order.Pay)
			orders.POST("/:order_no/ship", cfg.Order.Ship)
			orders.POST("/:order_no/cancel", cfg.Order.Cancel)
			orders.POST("/:order_no/confirm", cfg.Order.Confirm)
		}

		addresses := api.Group("/addresses", cfg.AuthMiddleware.RequireAuth())
		{
			addresses.GET("", cfg.Address.List)
			addresses.POST("", cfg.Address.Create)
			addresses.PUT("/:id", cfg.Address.Update)
			addresses.DELETE("/:id", cfg.Address.Delete)
			addresses.POST("/:id/default", cfg.Address.SetDefault)
		}

		favorites := api.Group("/favorites", cfg.AuthMiddleware.RequireAuth())
		{
			favorites.GET("", cfg.Community.ListFavorites)
			favorites.POST("/:product_id", cfg.Community.AddFavorite)
			favorites.DELETE("/:product_id", cfg.Community.RemoveFavorite)
		}
	}

	return router
}
