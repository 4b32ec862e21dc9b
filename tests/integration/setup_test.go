package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fingraph/internal/chat"
	apperrors "fingraph/internal/errors"
	"fingraph/internal/handlers"
	"fingraph/internal/logger"
	"fingraph/internal/middleware"
	"fingraph/internal/models"
	"fingraph/internal/services"
	"fingraph/internal/validator"
)

// testApp holds the full application stack for integration tests. The graph
// store and the reasoner are in-process fakes; everything else is real.
type testApp struct {
	DB       *gorm.DB
	Router   *gin.Engine
	Graph    *memoryGraph
	Reasoner *scriptedReasoner
	Sync     services.SyncServicer
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// memoryGraph is an in-memory projection keyed like the real one.
type memoryGraph struct {
	categories   map[string]bool
	transactions map[string]models.Transaction
	queryFn      func(cypher string) ([]map[string]any, error)
	queryCalls   int
}

func newMemoryGraph() *memoryGraph {
	g := &memoryGraph{
		categories:   make(map[string]bool),
		transactions: make(map[string]models.Transaction),
	}
	for _, c := range models.Categories {
		g.categories[c] = true
	}
	return g
}

func (g *memoryGraph) EnsureOntology(ctx context.Context) error { return nil }

func (g *memoryGraph) MergeTransaction(ctx context.Context, rec *models.Transaction) error {
	if !g.categories[rec.Category] {
		return apperrors.WithMessage(apperrors.ErrCategoryNotInGraph,
			fmt.Sprintf("no Category node named %q", rec.Category))
	}
	g.transactions[strconv.FormatUint(uint64(rec.ID), 10)] = *rec
	return nil
}

func (g *memoryGraph) DeleteAllTransactions(ctx context.Context) error {
	g.transactions = make(map[string]models.Transaction)
	return nil
}

func (g *memoryGraph) Query(ctx context.Context, cypher string) ([]map[string]any, error) {
	g.queryCalls++
	if g.queryFn != nil {
		return g.queryFn(cypher)
	}
	return []map[string]any{}, nil
}

var _ services.GraphStore = (*memoryGraph)(nil)

// scriptedReasoner plays back a fixed first-pass reply and final answer.
type scriptedReasoner struct {
	reply     *chat.Reply
	finalText string
}

func (r *scriptedReasoner) Complete(ctx context.Context, system string, history []chat.Message, tool chat.ToolSpec) (*chat.Reply, error) {
	if r.reply != nil {
		return r.reply, nil
	}
	return &chat.Reply{Text: "direct answer"}, nil
}

func (r *scriptedReasoner) ResolveTool(ctx context.Context, system string, history []chat.Message, call *chat.ToolCall, result string) (string, error) {
	return r.finalText, nil
}

var _ chat.Reasoner = (*scriptedReasoner)(nil)

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Transaction{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	graph := newMemoryGraph()
	reasoner := &scriptedReasoner{}

	ledgerService := services.NewLedgerService(db)
	syncService := services.NewSyncService(ledgerService, graph, logger.Get())
	chatService := services.NewChatService(reasoner, graph, logger.Get())

	transactionHandler := handlers.NewTransactionHandler(ledgerService, syncService)
	syncHandler := handlers.NewSyncHandler(syncService)
	chatHandler := handlers.NewChatHandler(chatService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")
	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	v1.POST("/sync", syncHandler.FullResync)
	chatRoutes := v1.Group("/chat")
	chatRoutes.POST("/ask", chatHandler.Ask)
	chatRoutes.GET("/messages", chatHandler.GetMessages)
	chatRoutes.POST("/clear", chatHandler.ClearConversation)

	return &testApp{DB: db, Router: router, Graph: graph, Reasoner: reasoner, Sync: syncService}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}
