package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-marketplace-backend/config"
	_ "go-marketplace-backend/docs" // Important for Swagger
	v1 "go-marketplace-backend/internal/delivery/http/v1"
	"go-marketplace-backend/internal/repository/postgres"
	"go-marketplace-backend/internal/usecase"
	"go-marketplace-backend/pkg/auth"
	"go-marketplace-backend/pkg/database"
	"go-marketplace-backend/pkg/logger"
	"go-marketplace-backend/pkg/redis"
)

// @title           Marketplace Backend API
// @version         1.0
// @description     Freelance marketplace core: projects, bids, messaging, reviews.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting marketplace backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting); the middleware falls back to an
	// in-memory store when this fails, so a missing Redis is not fatal.
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	projectRepo := postgres.NewProjectRepository(dbPool)
	bidRepo := postgres.NewBidRepository(dbPool)
	messageRepo := postgres.NewMessageRepository(dbPool)
	reviewRepo := postgres.NewReviewRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)

	// 6. Setup Token Manager
	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)

	// 7. Setup UseCases
	authUC := usecase.NewAuthUsecase(userRepo, tokens)
	projectUC := usecase.NewProjectUsecase(projectRepo)
	bidUC := usecase.NewBidUsecase(bidRepo, projectRepo)
	messageUC := usecase.NewMessageUsecase(messageRepo, projectRepo)
	reviewUC := usecase.NewReviewUsecase(reviewRepo, projectRepo)
	userUC := usecase.NewUserUsecase(userRepo, skillRepo)
	skillUC := usecase.NewSkillUsecase(skillRepo)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:    authUC,
		ProjectUC: projectUC,
		BidUC:     bidUC,
		MessageUC: messageUC,
		ReviewUC:  reviewUC,
		UserUC:    userUC,
		SkillUC:   skillUC,
		Tokens:    tokens,
		Config:    cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
