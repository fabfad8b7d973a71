package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"real-estate-listings/internal/config"
	"real-estate-listings/internal/database"
	"real-estate-listings/internal/handlers"
	"real-estate-listings/internal/logger"
	"real-estate-listings/internal/service"
	"real-estate-listings/web"
)

func main() {
	// Load configuration
	configPath := getEnv("CONFIG_PATH", "config/config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		slog.Error("failed to load config", "path", configPath, "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging, cfg.IsProduction())
	slog.SetDefault(log)
	log.Info("configuration loaded", "path", configPath, "env", cfg.Server.Env)

	// Connect to MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.GetTimeout())
	db, err := database.NewDB(ctx, cfg.Mongo)
	cancel()
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close(context.Background())
	log.Info("connected to mongodb", "database", cfg.Mongo.Database)

	// Initialize indexes
	if !cfg.Mongo.SkipInit {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.GetTimeout())
		if err := db.InitSchema(ctx); err != nil {
			log.Warn("failed to initialize indexes, queries may be slow", "error", err)
		}
		cancel()
	}

	repo := database.NewPropertyRepository(db)
	propertyService := service.NewPropertyService(repo, log)
	propertyHandler := handlers.NewPropertyHandler(propertyService, log, cfg.IsProduction())
	seedHandler := handlers.NewSeedHandler(database.NewSeeder(db, log), log, cfg.IsProduction())

	// Setup Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(handlers.RequestID())
	r.Use(handlers.RequestLogger(log))
	r.Use(handlers.Recovery(log, cfg.IsProduction()))

	// CORS configuration: permissive in development, origin list in
	// production
	if cfg.IsProduction() {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.Server.CORSOrigins,
			AllowMethods:     []string{"GET", "POST"},
			AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
			AllowCredentials: true,
		}))
	} else {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
		r.Use(cors.New(corsCfg))
	}

	// Routes
	r.GET("/health", handlers.HealthCheck)

	api := r.Group("/api")
	{
		api.GET("/properties", propertyHandler.GetProperties)
		api.GET("/properties/:id", propertyHandler.GetPropertyByID)
		api.POST("/seed", seedHandler.Seed)
	}

	// Embedded frontend
	if err := web.Register(r); err != nil {
		log.Error("failed to register frontend", "error", err)
		os.Exit(1)
	}

	log.Info("server starting", "port", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
