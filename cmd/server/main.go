package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rentassist/internal/config"
	"rentassist/internal/handler"
	"rentassist/internal/repository"
	"rentassist/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	log.Printf("Rental Chat Assistant")
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

	// Initialize database connection
	repo, err := repository.NewPostgresRepository(
		cfg.GetPostgreSQLDSN(),
		cfg.PostgreSQL.MaxConnections,
		cfg.PostgreSQL.MaxIdleConnections,
	)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer repo.Close()

	log.Println("✅ Connected to PostgreSQL database")

	// Initialize JamAI client
	jamaiClient := service.NewJamAIClient(&cfg.JamAI)
	if cfg.JamAI.Enabled {
		log.Printf("✅ JamAI client initialized")
		log.Printf("   - Base URL: %s", cfg.JamAI.BaseURL)
		log.Printf("   - Chat table: %s", cfg.JamAI.ChatTableID)
		log.Printf("   - Knowledge table: %s", cfg.JamAI.KnowledgeTableID)
		log.Printf("   - Timeout: %ds", cfg.JamAI.Timeout)
		log.Printf("   - AI replies: %t", cfg.JamAI.UseAIReply)
	} else {
		log.Println("⚠️  JamAI is disabled - replies will always use the deterministic template")
		log.Println("   Set JAMAI_API_KEY and JAMAI_PROJECT_ID to enable enrichment")
	}

	// Initialize services
	planner := service.NewQueryPlanner(repo, cfg.Chat.FetchLimit)
	renderer := service.NewResultRenderer(cfg.Chat.DisplayLimit)
	enricher := service.NewEnrichmentController(
		jamaiClient,
		renderer,
		cfg.JamAI.ChatTableID,
		time.Duration(cfg.JamAI.Timeout)*time.Second,
		cfg.JamAI.UseAIReply,
	)
	chatService := service.NewChatService(planner, enricher, repo)
	syncService := service.NewSyncService(repo, jamaiClient, cfg.JamAI.KnowledgeTableID)

	log.Println("✅ Services initialized")

	// Initialize handlers
	chatHandler := handler.NewChatHandler(chatService)
	jamaiHandler := handler.NewJamAIHandler(jamaiClient, syncService, cfg.JamAI.RecommendTableID)

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
			"service":    "rental-chat-assistant",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	router.POST("/api/chat", chatHandler.Chat)

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/jamai/setup", jamaiHandler.Setup)
		apiV1.POST("/jamai/sync-properties", jamaiHandler.SyncProperties)
		apiV1.POST("/jamai/recommendations", jamaiHandler.Recommendations)
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 Starting server on %s", addr)

	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	log.Println("✅ Server stopped")
}
