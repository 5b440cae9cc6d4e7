package main

import (
	"context"
	"log"
	"os"

	"github.com/westeen/Medala-v3/config"
	"github.com/westeen/Medala-v3/routes"
	"github.com/westeen/Medala-v3/services"
	"github.com/westeen/Medala-v3/utils"

	"go.uber.org/zap"
)

func main() {
	logger, err := utils.NewLogger(os.Getenv("DEBUG") == "true")
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}

	gemini, err := services.NewGeminiService(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Fatal("failed to initialize gemini client", zap.Error(err))
	}

	r := routes.SetupRouter(cfg, db, gemini, logger)
	logger.Info("listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
