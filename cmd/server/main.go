package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"alcyxob/trainer-api/internal/api"
	"alcyxob/trainer-api/internal/catalog"
	"alcyxob/trainer-api/internal/config"
	"alcyxob/trainer-api/internal/llm"
	"alcyxob/trainer-api/internal/logger"
	"alcyxob/trainer-api/internal/service"
)

func main() {
	// Best effort; credentials usually live in .env during development.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	appLog, err := logger.New(cfg.Log.Mode)
	if err != nil {
		log.Fatalf("FATAL: Could not initialize logger: %v", err)
	}
	defer appLog.Sync()
	appLog.Info("Starting Personal Trainer API server")

	// --- Initialize Pipeline Dependencies ---
	catalogCache := catalog.NewCache(catalog.NewClient(cfg.ExerciseDB))
	planGenerator := llm.NewAnthropicGenerator(cfg.Anthropic)
	workoutService := service.NewWorkoutService(catalogCache, planGenerator, appLog)

	// --- Initialize Gin Engine ---
	if cfg.Log.Mode == "prod" || cfg.Log.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(api.RequestID())
	router.Use(api.RequestLogger(appLog))
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api.SetupRoutes(router, workoutService)

	// Write timeout must cover a full catalog fetch plus one model call.
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	appLog.Info("Server starting", "address", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal("ListenAndServe error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("Shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		appLog.Fatal("Server forced to shutdown", "error", err)
	}

	appLog.Info("Server exiting")
}
