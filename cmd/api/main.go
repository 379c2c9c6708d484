package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"ai-resume-generator/internal/config"
	"ai-resume-generator/internal/handlers"
	"ai-resume-generator/internal/logger"
	"ai-resume-generator/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zlog, err := logger.New(cfg.Server.Env == "production", cfg.Server.Env == "development")
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()
	zlog.Info("config loaded", zap.String("env", cfg.Server.Env))

	if cfg.Gemini.APIKey == "" {
		// Not fatal: the generation client reports this on first use.
		zlog.Warn("GEMINI_API_KEY is not set; generation requests will fail until it is configured")
	}

	// Initialize services
	store := services.NewSessionStore(cfg.Session.TTL, cfg.Session.SweepInterval, zlog)
	store.Start()

	extractor := services.NewExtractorService()
	gemini := services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model, zlog)
	generator := services.NewGeneratorService(gemini, zlog)
	export := services.NewExportService()
	zlog.Info("services initialized", zap.String("model", cfg.Gemini.Model))

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(store)
	uploadHandler := handlers.NewUploadHandler(store, extractor, cfg.Upload.MaxFileSize)
	generateHandler := handlers.NewGenerateHandler(store, generator)
	downloadHandler := handlers.NewDownloadHandler(store, export)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:     "AI Resume & Cover Letter Generator",
		ReadTimeout: 30 * time.Second,
		// Generation blocks until the backend responds; leave room for it.
		WriteTimeout: 2 * time.Minute,
		BodyLimit:    int(cfg.Upload.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/sessions", sessionHandler.HandleCreateSession)
	api.Post("/sessions/:id/upload", uploadHandler.HandleUpload)
	api.Post("/sessions/:id/generate", generateHandler.HandleGenerate)
	api.Get("/sessions/:id/result", sessionHandler.HandleGetResult)
	api.Get("/sessions/:id/artifacts/:kind/download", downloadHandler.HandleDownload)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AI Resume & Cover Letter Generator",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/sessions",
				"POST /api/v1/sessions/:id/upload",
				"POST /api/v1/sessions/:id/generate",
				"GET /api/v1/sessions/:id/result",
				"GET /api/v1/sessions/:id/artifacts/:kind/download",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zlog.Info("shutting down server")
		store.Stop()
		if err := app.Shutdown(); err != nil {
			zlog.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zlog.Info("server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
