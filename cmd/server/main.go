package main

import (
	"alcyxob/fitness-coach/internal/api"
	"alcyxob/fitness-coach/internal/assistant"
	"alcyxob/fitness-coach/internal/config"
	"alcyxob/fitness-coach/internal/repository/mongo"
	"alcyxob/fitness-coach/internal/service"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting Fitness Coach Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	log.Println("Ensuring database indexes...")
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureProfileIndexes(ctx, appDB.Collection("profiles"))
		mongo.EnsureCatalogIndexes(ctx, appDB.Collection("exercise_catalog"))
		mongo.EnsurePlanIndexes(ctx, appDB.Collection("workout_plans"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	profileRepo := mongo.NewMongoProfileRepository(appDB)
	catalogRepo := mongo.NewMongoCatalogRepository(appDB)
	planRepo := mongo.NewMongoPlanRepository(appDB)

	// --- Initialize Assistant (optional) ---
	var asst assistant.Assistant
	if cfg.Assistant.APIKey != "" {
		log.Println("Initializing plan-edit assistant...")
		geminiAssistant, err := assistant.NewGeminiAssistant(context.Background(), cfg.Assistant.APIKey, cfg.Assistant.Model)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize assistant: %v", err)
		}
		defer func() {
			if err := geminiAssistant.Close(); err != nil {
				log.Printf("ERROR: Failed to close assistant: %v", err)
			}
		}()
		asst = geminiAssistant
	} else {
		log.Println("No assistant API key configured; plan-edit proposals disabled.")
	}

	// --- Initialize Services ---
	log.Println("Initializing services...")
	profileService := service.NewProfileService(profileRepo)
	catalogService := service.NewCatalogService(catalogRepo)
	planService := service.NewPlanService(planRepo, asst)
	coachService := service.NewCoachService(profileRepo, planRepo, catalogRepo, cfg.Coach.Weeks, cfg.Coach.SubstitutionHistory)

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.New()
	router.Use(gin.Recovery())

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, profileService, catalogService, planService, coachService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
