package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fingraph/internal/chat"
	"fingraph/internal/config"
	"fingraph/internal/database"
	"fingraph/internal/graph"
	"fingraph/internal/handlers"
	"fingraph/internal/logger"
	"fingraph/internal/middleware"
	"fingraph/internal/services"
	"fingraph/internal/validator"

	_ "fingraph/internal/docs" // Import swagger docs
)

// @title           fingraph API
// @version         1.0
// @description     fingraph mirrors a personal transaction ledger into a Neo4j knowledge graph and answers natural-language questions about it through a single-capability conversational assistant.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()
	ctx := context.Background()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	validator.Register()

	// Ledger store
	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to open ledger database: %w", err)
	}
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run ledger migrations: %w", err)
	}

	// Graph store: unreachable at startup is fatal.
	graphClient, err := graph.NewClient(ctx, appConfig, log)
	if err != nil {
		return fmt.Errorf("failed to connect to graph store: %w", err)
	}
	defer func() {
		if err := graphClient.Close(ctx); err != nil {
			log.Warnf("graph client close error: %v", err)
		}
	}()

	if err := graphClient.EnsureOntology(ctx); err != nil {
		return fmt.Errorf("failed to seed graph ontology: %w", err)
	}

	// Reasoning model
	reasoner, err := chat.NewGeminiReasoner(ctx, appConfig.GeminiModel)
	if err != nil {
		return fmt.Errorf("failed to create reasoner: %w", err)
	}

	// Services
	ledgerService := services.NewLedgerService(dbManager.DB())
	syncService := services.NewSyncService(ledgerService, graphClient, log)
	chatService := services.NewChatService(reasoner, graphClient, log)

	// Bring the projection in line with the ledger before serving.
	report, err := syncService.FullResync(ctx)
	if err != nil {
		return fmt.Errorf("initial full resync failed: %w", err)
	}
	log.Infow("initial sync", "total", report.Total, "synced", report.Synced, "failed", len(report.Failed))

	// Handlers
	transactionHandler := handlers.NewTransactionHandler(ledgerService, syncService)
	syncHandler := handlers.NewSyncHandler(syncService)
	chatHandler := handlers.NewChatHandler(chatService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)

	v1.POST("/sync", syncHandler.FullResync)

	chatRoutes := v1.Group("/chat")
	chatRoutes.POST("/ask", chatHandler.Ask)
	chatRoutes.GET("/messages", chatHandler.GetMessages)
	chatRoutes.POST("/clear", chatHandler.ClearConversation)

	log.Infof("Starting fingraph server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
