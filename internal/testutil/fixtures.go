package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"fingraph/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewTestTransaction builds an unsaved expense transaction with sane defaults.
func NewTestTransaction() *models.Transaction {
	n := nextID()
	return &models.Transaction{
		Name:            fmt.Sprintf("Test Purchase %d", n),
		Amount:          10.50,
		Brand:           fmt.Sprintf("Test Brand %d", n),
		Category:        "Food",
		TransactionTime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Type:            models.TransactionTypeOut,
	}
}

// CreateTestTransaction persists a default transaction and returns it.
func CreateTestTransaction(t *testing.T, db *gorm.DB) *models.Transaction {
	t.Helper()

	rec := NewTestTransaction()
	if err := db.Create(rec).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return rec
}

// CreateTestTransactionWithCategory persists a transaction in the given category.
func CreateTestTransactionWithCategory(t *testing.T, db *gorm.DB, category string) *models.Transaction {
	t.Helper()

	rec := NewTestTransaction()
	rec.Category = category
	if err := db.Create(rec).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return rec
}
