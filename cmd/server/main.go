package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"work_market/internal/config"
	"work_market/internal/handler"
	"work_market/internal/middleware"
	"work_market/internal/repository"
	"work_market/internal/seed"
	"work_market/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, relying on environment variables")
	}

	// --- Configuration ---
	appCfg := config.Load()
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		logger.Fatal("failed to load DB config", zap.Error(err))
	}

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(dbCfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer dbPool.Close()

	if err := config.AutoMigrate(dbPool, logger); err != nil {
		logger.Fatal("failed to auto-migrate database", zap.Error(err))
	}

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	orderRepo := repository.NewOrderRepository(dbPool)
	offerRepo := repository.NewOfferRepository(dbPool)

	// --- Seed Data ---
	seeder := seed.New(appCfg.SeedDir, userRepo, orderRepo, offerRepo, logger)
	if err := seeder.Run(context.Background()); err != nil {
		logger.Fatal("failed to seed store", zap.Error(err))
	}

	// --- Initialize Services ---
	userService := service.NewUserService(userRepo)
	orderService := service.NewOrderService(orderRepo)
	offerService := service.NewOfferService(offerRepo)

	// --- Initialize Handlers ---
	userHandler := handler.NewUserHandler(userService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	offerHandler := handler.NewOfferHandler(offerService, logger)

	// --- Setup Gin Router ---
	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(gin.Recovery())

	// --- Register Routes ---
	root := router.Group("")
	userHandler.RegisterUserRoutes(root)
	orderHandler.RegisterOrderRoutes(root)
	offerHandler.RegisterOfferRoutes(root)

	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + appCfg.ServerPort,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", zap.String("port", appCfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exiting")
}
