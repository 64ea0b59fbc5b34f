package main

import (
	"context"
	"log"
	"time"

	"studytrack/internal/adapter"
	"studytrack/internal/adapter/llm"
	"studytrack/internal/cache"
	"studytrack/internal/config"
	"studytrack/internal/domain"
	"studytrack/internal/logger"
	"studytrack/internal/service"

	"go.uber.org/zap"
)

// batch_generate warms the quiz cache for the configured topic list. It is
// meant to run on a schedule, off the request path.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	var generator domain.TextGenerator
	switch cfg.LLM.Provider {
	case "ollama":
		generator, err = llm.NewOllamaGenerator(cfg.LLM.ServerURL, cfg.LLM.Model, cfg.LLM.Temperature, cfg.LLM.Timeout)
	default:
		generator, err = llm.NewGoogleAIGenerator(ctx, cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.Temperature, cfg.LLM.Timeout)
	}
	if err != nil {
		appLogger.Fatal("Failed to create LLM client", zap.Error(err))
	}

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	// No history repository: batch runs are anonymous cache warming.
	generationService := service.NewGenerationService(generator, cacheAdapter, nil, cfg)
	batchService := service.NewBatchService(generationService, cfg)

	if err := batchService.PreGenerateQuizzes(ctx); err != nil {
		appLogger.Fatal("Batch pre-generation failed", zap.Error(err))
	}
}
