package main

import (
	"context"
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

	"github.com/tarun-1313/PrepInterview/internal/config"
	"github.com/tarun-1313/PrepInterview/internal/demo"
	"github.com/tarun-1313/PrepInterview/internal/handlers"
	"github.com/tarun-1313/PrepInterview/internal/repositories"
	"github.com/tarun-1313/PrepInterview/internal/services"
	"github.com/tarun-1313/PrepInterview/internal/store"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize document store
	ctx := context.Background()
	db, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize document store: %v", err)
	}
	log.Printf("✅ Document store initialized (%s)", cfg.Store.Driver)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	interviewRepo := repositories.NewInterviewRepository(db)
	feedbackRepo := repositories.NewFeedbackRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize Gemini AI. A missing key is an expected mode: the prep
	// coach answers offline and generation endpoints report failure.
	var geminiService services.GeminiService
	if cfg.Gemini.APIKey != "" {
		geminiService, err = services.NewGeminiService(cfg.Gemini.APIKey)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
		}
		log.Println("✅ Gemini AI initialized successfully")
	} else {
		log.Println("⚠️  GEMINI_API_KEY not set, running with offline coach fallback")
	}

	// Initialize services
	seedProvider := demo.NewProvider()
	listingService := services.NewListingService(userRepo, interviewRepo, seedProvider, cfg.Listing.DefaultLimit)
	feedbackService := services.NewFeedbackService(feedbackRepo, geminiService, cfg.Gemini.FeedbackModel)
	generatorService := services.NewGeneratorService(interviewRepo, geminiService, cfg.Gemini.QuestionModel)
	coachService := services.NewCoachService(geminiService, cfg.Gemini.ChatModel)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	interviewHandler := handlers.NewInterviewHandler(listingService, generatorService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)
	coachHandler := handlers.NewCoachHandler(coachService, userRepo)
	profileHandler := handlers.NewProfileHandler(userRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "PrepWise Interview API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
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
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
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
	api.Get("/interviews", interviewHandler.HandleListLatest)
	api.Get("/interviews/mine", interviewHandler.HandleListMine)
	api.Post("/interviews/generate", interviewHandler.HandleGenerate)
	api.Get("/interviews/:id", interviewHandler.HandleGetByID)
	api.Post("/feedback", feedbackHandler.HandleCreate)
	api.Get("/feedback", feedbackHandler.HandleGet)
	api.Post("/prep-coach", coachHandler.HandleChat)
	api.Get("/profile/:id", profileHandler.HandleGet)
	api.Put("/profile/:id", profileHandler.HandleUpdate)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "PrepWise Interview API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /api/v1/interviews",
				"GET /api/v1/interviews/mine",
				"POST /api/v1/interviews/generate",
				"GET /api/v1/interviews/:id",
				"POST /api/v1/feedback",
				"GET /api/v1/feedback",
				"POST /api/v1/prep-coach",
				"GET /api/v1/profile/:id",
				"PUT /api/v1/profile/:id",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
		if err := db.Close(); err != nil {
			log.Printf("❌ Failed to close document store: %v", err)
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

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
