package services

import (
	"context"
	"fmt"
	"strconv"

	"fingraph/internal/chat"
	apperrors "fingraph/internal/errors"
	"fingraph/internal/models"
)

// fakeGraphStore is an in-memory stand-in for the Neo4j projection. Nodes
// are keyed by sqlite_id, mirroring the MERGE semantics of the real client.
type fakeGraphStore struct {
	categories   map[string]bool
	transactions map[string]*models.Transaction

	mergeCalls  int
	deleteCalls int
	queryCalls  int

	queryFn func(cypher string) ([]map[string]any, error)
	failAll bool
}

func newFakeGraphStore(categories ...string) *fakeGraphStore {
	cats := make(map[string]bool, len(categories))
	for _, c := range categories {
		cats[c] = true
	}
	return &fakeGraphStore{
		categories:   cats,
		transactions: make(map[string]*models.Transaction),
	}
}

func (f *fakeGraphStore) EnsureOntology(ctx context.Context) error { return nil }

func (f *fakeGraphStore) MergeTransaction(ctx context.Context, rec *models.Transaction) error {
	f.mergeCalls++
	if f.failAll {
		return apperrors.Wrap(apperrors.ErrGraphUnavailable, fmt.Errorf("connection refused"))
	}
	if !f.categories[rec.Category] {
		return apperrors.WithMessage(apperrors.ErrCategoryNotInGraph,
			fmt.Sprintf("no Category node named %q", rec.Category))
	}
	copied := *rec
	f.transactions[strconv.FormatUint(uint64(rec.ID), 10)] = &copied
	return nil
}

func (f *fakeGraphStore) DeleteAllTransactions(ctx context.Context) error {
	f.deleteCalls++
	if f.failAll {
		return apperrors.Wrap(apperrors.ErrGraphUnavailable, fmt.Errorf("connection refused"))
	}
	f.transactions = make(map[string]*models.Transaction)
	return nil
}

func (f *fakeGraphStore) Query(ctx context.Context, cypher string) ([]map[string]any, error) {
	f.queryCalls++
	if f.queryFn != nil {
		return f.queryFn(cypher)
	}
	return []map[string]any{}, nil
}

var _ GraphStore = (*fakeGraphStore)(nil)

// fakeReasoner scripts the reasoning function: an optional tool call on the
// first pass and a fixed final answer on the second.
type fakeReasoner struct {
	reply     *chat.Reply
	finalText string

	completeCalls int
	resolveCalls  int

	lastHistory    []chat.Message
	lastTool       chat.ToolSpec
	lastToolResult string
}

func (f *fakeReasoner) Complete(ctx context.Context, system string, history []chat.Message, tool chat.ToolSpec) (*chat.Reply, error) {
	f.completeCalls++
	f.lastHistory = history
	f.lastTool = tool
	if f.reply != nil {
		return f.reply, nil
	}
	return &chat.Reply{Text: "direct answer"}, nil
}

func (f *fakeReasoner) ResolveTool(ctx context.Context, system string, history []chat.Message, call *chat.ToolCall, result string) (string, error) {
	f.resolveCalls++
	f.lastToolResult = result
	return f.finalText, nil
}

var _ chat.Reasoner = (*fakeReasoner)(nil)
