package services

import (
	"context"

	"fingraph/internal/chat"
	"fingraph/internal/models"
)

// LedgerServicer defines the contract for the relational transaction store.
type LedgerServicer interface {
	// Insert validates and persists a record, assigning its identity.
	Insert(rec *models.Transaction) (uint, error)
	// ListAll returns every stored record in storage order.
	ListAll() ([]models.Transaction, error)
}

// GraphStore defines the graph-side operations the sync engine and the
// conversational session depend on. Implemented by graph.Client.
type GraphStore interface {
	EnsureOntology(ctx context.Context) error
	MergeTransaction(ctx context.Context, rec *models.Transaction) error
	DeleteAllTransactions(ctx context.Context) error
	Query(ctx context.Context, cypher string) ([]map[string]any, error)
}

// FailedRecord identifies a ledger record that could not be projected.
type FailedRecord struct {
	ID       uint   `json:"id"`
	Category string `json:"category"`
	Reason   string `json:"reason"`
}

// SyncReport summarizes a full resync: per-record failures do not abort the
// batch, so a report can be partially successful.
type SyncReport struct {
	Total  int            `json:"total"`
	Synced int            `json:"synced"`
	Failed []FailedRecord `json:"failed,omitempty"`
}

// SyncServicer defines the contract for ledger-to-graph synchronization.
type SyncServicer interface {
	FullResync(ctx context.Context) (*SyncReport, error)
	PropagateOne(ctx context.Context, rec *models.Transaction) error
}

// ChatServicer defines the contract for the conversational session.
type ChatServicer interface {
	Ask(ctx context.Context, question string) (string, error)
	Messages() []chat.Message
	ClearConversation()
}
