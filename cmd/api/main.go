package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"resumatch/resume-analyzer/internal/config"
	apperrors "resumatch/resume-analyzer/internal/errors"
	"resumatch/resume-analyzer/internal/handlers"
	"resumatch/resume-analyzer/internal/repositories"
	"resumatch/resume-analyzer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	analysisRepo := repositories.NewAnalysisRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	extractorService := services.NewExtractorService()
	matcherService := services.NewMatcherService()
	suggestionService := services.NewSuggestionService()
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI (optional, disabled without an API key)
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Timeout)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	if geminiService.Available() {
		log.Println("✅ Gemini AI initialized successfully")
	}

	// Initialize analyzer
	analyzerService := services.NewAnalyzerService(
		matcherService,
		suggestionService,
		geminiService,
	)
	log.Println("✅ Analyzer service initialized")

	// Start upload cleaner
	cleaner := services.NewCleaner(storageService, cfg.Cleaner.SweepInterval, cfg.Cleaner.Retention)
	cleaner.Start()

	// Initialize handlers
	analyzeHandler := handlers.NewAnalyzeHandler(
		analysisRepo,
		storageService,
		extractorService,
		analyzerService,
		cfg.Storage.MaxFileSize,
	)
	resultHandler := handlers.NewResultHandler(analysisRepo)
	historyHandler := handlers.NewHistoryHandler(analysisRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Analyzer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + 1024*1024,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Session-ID",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/analyze", analyzeHandler.HandleAnalyze)
	api.Get("/results/:id", resultHandler.HandleGetResult)
	api.Get("/history", historyHandler.HandleGetHistory)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Analyzer API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/analyze",
				"GET /api/v1/results/:id",
				"GET /api/v1/history",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		cleaner.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	switch {
	case errors.Is(err, apperrors.ErrExtraction):
		code = fiber.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrEmptyInput):
		code = fiber.StatusBadRequest
	case errors.Is(err, apperrors.ErrAnalysisNotFound):
		code = fiber.StatusNotFound
	default:
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
