package services

import (
	"gorm.io/gorm"

	apperrors "fingraph/internal/errors"
	"fingraph/internal/models"
)

// ledgerService handles the relational transaction store.
type ledgerService struct {
	db *gorm.DB
}

// NewLedgerService creates a new LedgerServicer.
func NewLedgerService(db *gorm.DB) LedgerServicer {
	return &ledgerService{db: db}
}

// Insert validates and persists a transaction. The identity is assigned by
// the store via autoincrement, never by the caller; a caller-supplied ID is
// rejected rather than silently overwritten.
func (s *ledgerService) Insert(rec *models.Transaction) (uint, error) {
	if rec.ID != 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "transaction ID is assigned by the store")
	}
	if rec.Amount < 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be non-negative")
	}
	if rec.Type != models.TransactionTypeIn && rec.Type != models.TransactionTypeOut {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be 'in' or 'out'")
	}
	if rec.Name == "" {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}

	if err := s.db.Create(rec).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrLedger, err)
	}
	return rec.ID, nil
}

// ListAll returns every stored record in storage order. Callers needing
// recency order sort by transaction_time themselves.
func (s *ledgerService) ListAll() ([]models.Transaction, error) {
	var records []models.Transaction
	if err := s.db.Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrLedger, err)
	}
	return records, nil
}
