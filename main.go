package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Sunilkumarmehta2002/swipemyhood/cache"
	"github.com/Sunilkumarmehta2002/swipemyhood/catalog"
	"github.com/Sunilkumarmehta2002/swipemyhood/config"
	"github.com/Sunilkumarmehta2002/swipemyhood/controllers"
	"github.com/Sunilkumarmehta2002/swipemyhood/database"
	"github.com/Sunilkumarmehta2002/swipemyhood/kafka"
	"github.com/Sunilkumarmehta2002/swipemyhood/logger"
	"github.com/Sunilkumarmehta2002/swipemyhood/middleware"
	"github.com/Sunilkumarmehta2002/swipemyhood/repository"
	"github.com/Sunilkumarmehta2002/swipemyhood/routes"
	"github.com/Sunilkumarmehta2002/swipemyhood/services"
)

func main() {
	cfg := config.Load()
	log := logger.Initialize(cfg.Env)
	defer log.Sync()

	mongo, err := database.ConnectMongo(cfg.MongoURL, cfg.MongoDB)
	if err != nil {
		zap.L().Fatal("failed to connect to MongoDB", zap.Error(err))
	}

	redisClient := database.NewRedisClient(cfg.RedisURL)
	appCache := cache.New(redisClient, cfg.CacheTTL)
	producer := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)

	users := repository.NewUserRepository(mongo.DB)
	carts := repository.NewCartRepository(mongo.DB)
	swipes := repository.NewSwipeRepository(mongo.DB)
	matches := repository.NewMatchRepository(mongo.DB)
	orders := repository.NewOrderRepository(mongo.DB)
	messages := repository.NewMessageRepository(mongo.DB)
	neighborhoods := repository.NewNeighborhoodRepository(mongo.DB)
	settings := repository.NewSettingsRepository(mongo.DB)

	tokenService := services.NewTokenService(cfg.JWTSecret)
	authService := services.NewAuthService(users, tokenService)
	cartService := services.NewCartService(carts, cfg.StoreTimeout)
	swipeService := services.NewSwipeService(catalog.Neighborhoods(), swipes, matches)
	checkoutService := services.NewCheckoutService(
		cartService,
		orders,
		services.NewSimulatedProcessor(cfg.PaymentLatency),
		producer,
	)
	statsService := services.NewStatsService(users, swipes, matches, orders, messages, appCache)

	startupCtx, cancel := context.WithTimeout(context.Background(), cfg.StoreTimeout)
	if err := authService.EnsureDefaultAdmin(startupCtx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		zap.L().Error("failed to ensure default admin", zap.Error(err))
	}
	if err := neighborhoods.Seed(startupCtx, catalog.Neighborhoods()); err != nil {
		zap.L().Error("failed to seed neighborhoods", zap.Error(err))
	}
	cancel()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.RequestLogger())
	router.Use(middleware.SecurityHeaders())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(router, cfg, routes.Deps{
		Tokens:        tokenService,
		Auth:          controllers.NewAuthController(authService, cartService),
		Cart:          controllers.NewCartController(cartService),
		Swipe:         controllers.NewSwipeController(swipeService),
		Checkout:      controllers.NewCheckoutController(checkoutService),
		Contact:       controllers.NewContactController(messages),
		Neighborhoods: controllers.NewNeighborhoodController(neighborhoods, appCache),
		Dashboard:     controllers.NewDashboardController(statsService, users),
		Admin:         controllers.NewAdminController(users, messages, neighborhoods, settings, statsService, appCache),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		zap.L().Info("server listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zap.L().Info("shutting down gracefully")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("shutdown error", zap.Error(err))
	}

	producer.Close()
	if err := mongo.Close(); err != nil {
		zap.L().Error("failed to close MongoDB connection", zap.Error(err))
	}
	zap.L().Info("server shutdown complete")
}
