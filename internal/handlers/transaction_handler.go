package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fingraph/internal/errors"
	"fingraph/internal/models"
	"fingraph/internal/services"
)

// TransactionHandler handles ledger transaction requests.
type TransactionHandler struct {
	ledgerService services.LedgerServicer
	syncService   services.SyncServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledgerService services.LedgerServicer, syncService services.SyncServicer) *TransactionHandler {
	return &TransactionHandler{ledgerService: ledgerService, syncService: syncService}
}

// CreateTransactionRequest represents the request payload for creating a transaction
type CreateTransactionRequest struct {
	Name     string                 `json:"name" binding:"required,max=200"`
	Amount   float64                `json:"amount" binding:"gte=0"`
	Brand    string                 `json:"brand" binding:"required,max=200"`
	Category string                 `json:"category" binding:"required,max=100"`
	Type     models.TransactionType `json:"type" binding:"required,transaction_type"`
	Date     string                 `json:"transaction_time" binding:"required"`
}

// CreateTransactionResponse reports the assigned identity and whether the
// record reached the graph projection.
type CreateTransactionResponse struct {
	ID        uint   `json:"id"`
	Synced    bool   `json:"synced"`
	SyncError string `json:"sync_error,omitempty"`
}

// CreateTransaction handles the creation of a new ledger transaction and its
// incremental propagation into the graph.
// @Summary     Add a transaction
// @Description Persist a transaction in the ledger and project it into the knowledge graph
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} CreateTransactionResponse "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseFlexibleTime(req.Date)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	rec := &models.Transaction{
		Name:            req.Name,
		Amount:          req.Amount,
		Brand:           req.Brand,
		Category:        req.Category,
		TransactionTime: date,
		Type:            req.Type,
	}

	id, err := h.ledgerService.Insert(rec)
	if err != nil {
		respondWithError(c, err)
		return
	}

	// The ledger insert is committed; a propagation failure leaves the graph
	// stale until the next full resync, so the response still reports the id.
	resp := CreateTransactionResponse{ID: id, Synced: true}
	if err := h.syncService.PropagateOne(c.Request.Context(), rec); err != nil {
		resp.Synced = false
		resp.SyncError = err.Error()
	}

	c.JSON(http.StatusCreated, resp)
}

// GetTransactions returns every ledger record.
// @Summary     List transactions
// @Description Return all ledger transactions in storage order
// @Tags        transactions
// @Produce     json
// @Success     200 {array} models.Transaction
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	records, err := h.ledgerService.ListAll()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": records})
}
