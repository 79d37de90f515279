package main

import (
	"context"
	"strings"
	"time"

	"github.com/senxilab/senxi-backend/internal/butler"
	"github.com/senxilab/senxi-backend/internal/catalog"
	redisclient "github.com/senxilab/senxi-backend/internal/clients/redis"
	"github.com/senxilab/senxi-backend/internal/db"
	"github.com/senxilab/senxi-backend/internal/guide"
	"github.com/senxilab/senxi-backend/internal/handlers"
	"github.com/senxilab/senxi-backend/internal/logger"
	"github.com/senxilab/senxi-backend/internal/middleware"
	"github.com/senxilab/senxi-backend/internal/observability"
	"github.com/senxilab/senxi-backend/internal/repos"
	"github.com/senxilab/senxi-backend/internal/server"
	"github.com/senxilab/senxi-backend/internal/services"
	"github.com/senxilab/senxi-backend/internal/utils"
)

func main() {
	ctx := context.Background()

	mode := utils.GetEnv("MODE", "dev", nil)
	log, err := logger.New(mode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	shutdownOtel := observability.InitOTel(ctx, log, observability.OtelConfig{
		ServiceName: "senxi-backend",
		Environment: mode,
		Version:     utils.GetEnv("SERVICE_VERSION", "dev", log),
	})
	if shutdownOtel != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdownOtel(shutdownCtx)
		}()
	}

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Failed to initialize postgres", "error", err)
	}
	if err := pg.AutoMigrateAll(); err != nil {
		log.Fatal("Failed to migrate postgres tables", "error", err)
	}

	rdb, err := redisclient.NewClient(log)
	if err != nil {
		log.Fatal("Failed to initialize redis", "error", err)
	}
	codeStore := redisclient.NewStore(rdb, "auth:code:")
	stateStore := redisclient.NewStore(rdb, "auth:state:")
	guideStore := redisclient.NewStore(rdb, "guide:sess:")

	userRepo := repos.NewUserRepo(pg.DB(), log)
	productRepo := repos.NewProductRepo(pg.DB(), log)
	orderRepo := repos.NewOrderRepo(pg.DB(), log)
	cartRepo := repos.NewCartRepo(pg.DB(), log)
	addressRepo := repos.NewAddressRepo(pg.DB(), log)
	postRepo := repos.NewPostRepo(pg.DB(), log)
	commentRepo := repos.NewCommentRepo(pg.DB(), log)
	likeRepo := repos.NewLikeRepo(pg.DB(), log)
	favoriteRepo := repos.NewFavoriteRepo(pg.DB(), log)

	productCatalog := catalog.New()
	guideEngine := guide.New(productCatalog)
	airButler := butler.New()

	jwtSecret := utils.GetEnv("JWT_SECRET", "senxi-dev-secret", log)
	authService := services.NewAuthService(userRepo, codeStore, stateStore, jwtSecret, log)
	productService := services.NewProductService(productCatalog, productRepo, log)
	guideService := services.NewGuideService(guideEngine, guideStore, log)
	butlerService := services.NewButlerService(airButler, log)
	cartService := services.NewCartService(cartRepo, productRepo, log)
	orderService := services.NewOrderService(pg.DB(), orderRepo, productRepo, cartRepo, addressRepo, userRepo, log)
	addressService := services.NewAddressService(pg.DB(), addressRepo, log)
	communityService := services.NewCommunityService(pg.DB(), postRepo, commentRepo, likeRepo, favoriteRepo, userRepo, log)

	if err := productService.Seed(ctx); err != nil {
		log.Fatal("Failed to seed products", "error", err)
	}

	authMiddleware := middleware.NewAuthMiddleware(authService, log)

	router := server.NewRouter(server.RouterConfig{
		Mode:           mode,
		AllowedOrigins: strings.Split(utils.GetEnv("ALLOWED_ORIGINS", "http://localhost:3000", log), ","),
		AuthMiddleware: authMiddleware,
		Healthcheck:    handlers.NewHealthcheckHandler(),
		Auth:           handlers.NewAuthHandler(authService, log),
		Guide:          handlers.NewGuideHandler(guideService, guideEngine, log),
		Butler:         handlers.NewButlerHandler(butlerService, log),
		Product:        handlers.NewProductHandler(productService, log),
		Cart:           handlers.NewCartHandler(cartService, log),
		Order:          handlers.NewOrderHandler(orderService, log),
		Address:        handlers.NewAddressHandler(addressService, log),
		Community:      handlers.NewCommunityHandler(communityService, log),
	})

	port := utils.GetEnv("PORT", "8080", log)
	log.Info("Starting server", "port", port, "mode", mode)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server exited", "error", err)
	}
}
