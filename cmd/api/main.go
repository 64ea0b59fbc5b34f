// @title StudyTrack API
// @version 1.0
// @description AI-powered study tools and streak-based feature unlocks.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"studytrack/internal/adapter"
	"studytrack/internal/adapter/llm"
	"studytrack/internal/cache"
	"studytrack/internal/config"
	"studytrack/internal/database"
	"studytrack/internal/domain"
	"studytrack/internal/handler"
	"studytrack/internal/logger"
	"studytrack/internal/middleware"
	"studytrack/internal/repository"
	"studytrack/internal/service"

	_ "studytrack/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

// newTextGenerator picks the LLM backend from config.
func newTextGenerator(cfg *config.Config) (domain.TextGenerator, error) {
	switch cfg.LLM.Provider {
	case "ollama":
		return llm.NewOllamaGenerator(cfg.LLM.ServerURL, cfg.LLM.Model, cfg.LLM.Temperature, cfg.LLM.Timeout)
	default:
		return llm.NewGoogleAIGenerator(context.Background(), cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.Temperature, cfg.LLM.Timeout)
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	generator, err := newTextGenerator(cfg)
	if err != nil {
		appLogger.Fatal("Failed to create LLM client",
			zap.String("provider", cfg.LLM.Provider), zap.Error(err))
	}
	appLogger.Info("LLM client initialized",
		zap.String("provider", cfg.LLM.Provider), zap.String("model", cfg.LLM.Model))

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	activityRepository := repository.NewActivityDatabaseAdapter(db)
	userRepository := repository.NewUserDatabaseAdapter(db)
	historyRepository := repository.NewGenerationHistoryDatabaseAdapter(db)

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	generationService := service.NewGenerationService(generator, cacheAdapter, historyRepository, cfg)
	activityService := service.NewActivityService(activityRepository)
	authService, err := service.NewAuthService(userRepository, cfg)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}

	toolsHandler := handler.NewToolsHandler(generationService)
	activityHandler := handler.NewActivityHandler(activityService)
	authHandler := handler.NewAuthHandler(authService, cfg)

	app := fiber.New(fiber.Config{
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	apiGroup := app.Group("/api")

	// Auth routes
	authGroup := apiGroup.Group("/auth")
	authGroup.Get("/google/login", authHandler.GoogleLogin)
	authGroup.Get("/google/callback", authHandler.GoogleCallback)
	authGroup.Post("/refresh", authHandler.RefreshToken)
	authGroup.Post("/logout", middleware.Protected(authService), authHandler.Logout)
	authGroup.Get("/me", middleware.Protected(authService), authHandler.GetProfile)

	// Study tools. Generation works anonymously; history needs a login.
	toolsGroup := apiGroup.Group("/tools", middleware.OptionalAuth(authService))
	toolsGroup.Post("/quiz", toolsHandler.GenerateQuiz)
	toolsGroup.Post("/summary", toolsHandler.SummarizeMaterial)
	toolsGroup.Get("/topics", toolsHandler.SuggestTopics)
	toolsGroup.Post("/productivity", toolsHandler.AnalyzeProductivity)
	toolsGroup.Post("/transcript", toolsHandler.ProcessTranscript)
	toolsGroup.Post("/doubt", toolsHandler.SolveDoubt)
	toolsGroup.Post("/vocab", toolsHandler.GenerateVocabularySession)
	toolsGroup.Get("/history", middleware.Protected(authService), toolsHandler.GetHistory)

	// Activity and unlock routes (all protected)
	activityGroup := apiGroup.Group("/activity", middleware.Protected(authService))
	activityGroup.Post("/interactions", activityHandler.RecordInteraction)
	activityGroup.Get("/unlock-status", activityHandler.GetUnlockStatus)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
