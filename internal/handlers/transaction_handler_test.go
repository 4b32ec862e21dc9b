package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "fingraph/internal/errors"
	"fingraph/internal/logger"
	"fingraph/internal/models"
	"fingraph/internal/services"
	"fingraph/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// --- mock ledger service ---

type mockLedgerService struct {
	insertFn  func(rec *models.Transaction) (uint, error)
	listAllFn func() ([]models.Transaction, error)
}

func (m *mockLedgerService) Insert(rec *models.Transaction) (uint, error) {
	if m.insertFn != nil {
		return m.insertFn(rec)
	}
	rec.ID = 1
	return 1, nil
}

func (m *mockLedgerService) ListAll() ([]models.Transaction, error) {
	if m.listAllFn != nil {
		return m.listAllFn()
	}
	return []models.Transaction{}, nil
}

var _ services.LedgerServicer = (*mockLedgerService)(nil)

// --- mock sync service ---

type mockSyncService struct {
	fullResyncFn   func(ctx context.Context) (*services.SyncReport, error)
	propagateOneFn func(ctx context.Context, rec *models.Transaction) error
}

func (m *mockSyncService) FullResync(ctx context.Context) (*services.SyncReport, error) {
	if m.fullResyncFn != nil {
		return m.fullResyncFn(ctx)
	}
	return &services.SyncReport{}, nil
}

func (m *mockSyncService) PropagateOne(ctx context.Context, rec *models.Transaction) error {
	if m.propagateOneFn != nil {
		return m.propagateOneFn(ctx, rec)
	}
	return nil
}

var _ services.SyncServicer = (*mockSyncService)(nil)

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	r.POST("/transactions", handler.CreateTransaction)
	r.GET("/transactions", handler.GetTransactions)
	return r
}

const validTransactionBody = `{
	"name": "Coffee",
	"amount": 4.50,
	"brand": "Cafe X",
	"category": "Food",
	"type": "out",
	"transaction_time": "2024-01-01"
}`

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 with id and synced flag", func(t *testing.T) {
		handler := NewTransactionHandler(&mockLedgerService{}, &mockSyncService{})
		router := setupTransactionRouter(handler)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(validTransactionBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var resp CreateTransactionResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.ID != 1 || !resp.Synced {
			t.Errorf("expected id 1 synced, got %+v", resp)
		}
	})

	t.Run("returns 400 on negative amount", func(t *testing.T) {
		handler := NewTransactionHandler(&mockLedgerService{}, &mockSyncService{})
		router := setupTransactionRouter(handler)

		body := strings.Replace(validTransactionBody, "4.50", "-4.50", 1)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("returns 400 on unknown type", func(t *testing.T) {
		handler := NewTransactionHandler(&mockLedgerService{}, &mockSyncService{})
		router := setupTransactionRouter(handler)

		body := strings.Replace(validTransactionBody, `"out"`, `"sideways"`, 1)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("returns 400 on bad date", func(t *testing.T) {
		handler := NewTransactionHandler(&mockLedgerService{}, &mockSyncService{})
		router := setupTransactionRouter(handler)

		body := strings.Replace(validTransactionBody, "2024-01-01", "yesterday-ish", 1)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("propagation failure still returns 201 with sync_error", func(t *testing.T) {
		syncSvc := &mockSyncService{
			propagateOneFn: func(context.Context, *models.Transaction) error {
				return apperrors.ErrGraphUnavailable
			},
		}
		handler := NewTransactionHandler(&mockLedgerService{}, syncSvc)
		router := setupTransactionRouter(handler)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(validTransactionBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var resp CreateTransactionResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Synced || resp.SyncError == "" {
			t.Errorf("expected unsynced response with error, got %+v", resp)
		}
	})
}

func TestTransactionHandler_GetTransactions(t *testing.T) {
	t.Run("returns all records", func(t *testing.T) {
		ledger := &mockLedgerService{
			listAllFn: func() ([]models.Transaction, error) {
				return []models.Transaction{
					{ID: 1, Name: "Coffee"},
					{ID: 2, Name: "Salary"},
				}, nil
			},
		}
		handler := NewTransactionHandler(ledger, &mockSyncService{})
		router := setupTransactionRouter(handler)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp struct {
			Transactions []models.Transaction `json:"transactions"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(resp.Transactions) != 2 {
			t.Errorf("expected 2 transactions, got %d", len(resp.Transactions))
		}
	})
}
