package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"summerhome/internal/config"
	"summerhome/internal/handler"
	"summerhome/internal/model"
	"summerhome/internal/service"
	"summerhome/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	log.Printf("Summer Home Finder")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Load the property dataset. A missing or broken file degrades to an
	// empty store rather than killing the server.
	properties, err := store.LoadProperties(cfg.Data.PropertiesFile)
	if err != nil {
		log.Printf("Warning: failed to load properties from %s: %v", cfg.Data.PropertiesFile, err)
		log.Printf("Warning: starting with an empty property store")
		properties = store.NewPropertyStore([]model.Property{})
	}

	// Open the account database
	accounts, err := store.NewAccountStore(cfg.Data.AccountsDB)
	if err != nil {
		log.Fatalf("Failed to open accounts database: %v", err)
	}
	defer accounts.Close()
	log.Printf("Account store ready at %s", cfg.Data.AccountsDB)

	// Initialize OpenAI client
	var completer service.TextCompleter
	if cfg.OpenAI.Enabled {
		completer = service.NewOpenAIClient(&cfg.OpenAI)
		log.Printf("OpenAI client initialized")
		log.Printf("   - API Base: %s", cfg.OpenAI.APIBase)
		log.Printf("   - Chat model: %s", cfg.OpenAI.ChatModel)
		log.Printf("   - Temperature: %.2f", cfg.OpenAI.Temperature)
	} else {
		log.Println("OpenAI is disabled - the chat advisor will not work")
		log.Println("   Set OPENAI_API_KEY environment variable to enable it")
	}

	// Initialize services
	scorer := service.NewScorer(cfg.Scoring, properties)
	recommender := service.NewRecommender(properties, scorer)
	authService := service.NewAuthService(accounts)
	chatService := service.NewChatService(completer, properties)

	log.Println("Services initialized")

	// Initialize handlers
	searchHandler := handler.NewSearchHandler(recommender, properties, cfg.Search.DefaultTopK, cfg.Search.MaxTopK)
	chatHandler := handler.NewChatHandler(chatService)
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(authService)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "summer-home-finder",
			"version":    Version,
			"properties": properties.Len(),
			"chat":       chatService.IsEnabled(),
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/search", searchHandler.Search)
		apiV1.GET("/properties/:id", searchHandler.GetProperty)

		apiV1.POST("/chat", chatHandler.Chat)
		apiV1.POST("/chat/stream", chatHandler.ChatStream)

		apiV1.POST("/auth/signup", authHandler.Signup)
		apiV1.POST("/auth/login", authHandler.Login)
		apiV1.PUT("/profile", profileHandler.Update)
	}

	// Serve static files (frontend)
	// Implemented in embed.go (production) or static_dev.go (development)
	setupStaticFiles(router)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Starting server on %s", addr)
	log.Printf("Web UI: http://localhost:%d", cfg.Server.Port)

	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	log.Println("Server stopped")
}
