package services

import (
	"context"

	"go.uber.org/zap"

	apperrors "fingraph/internal/errors"
	"fingraph/internal/models"
)

// syncService keeps the graph projection consistent with the ledger.
type syncService struct {
	ledger LedgerServicer
	graph  GraphStore
	logger *zap.SugaredLogger
}

// NewSyncService creates a new SyncServicer.
func NewSyncService(ledger LedgerServicer, graph GraphStore, logger *zap.SugaredLogger) SyncServicer {
	return &syncService{ledger: ledger, graph: graph, logger: logger}
}

// FullResync rebuilds the projection from scratch: every Transaction node is
// deleted, then each ledger record is merged back in. Records are
// independent, so one record failing (typically a category with no matching
// node) leaves the rest of the batch projected; failures are reported, not
// rolled back.
func (s *syncService) FullResync(ctx context.Context) (*SyncReport, error) {
	records, err := s.ledger.ListAll()
	if err != nil {
		return nil, err
	}

	if err := s.graph.DeleteAllTransactions(ctx); err != nil {
		return nil, err
	}

	report := &SyncReport{Total: len(records)}
	for i := range records {
		rec := &records[i]
		if err := s.graph.MergeTransaction(ctx, rec); err != nil {
			s.logger.Warnw("failed to project transaction",
				"transaction_id", rec.ID,
				"category", rec.Category,
				"error", err,
			)
			report.Failed = append(report.Failed, FailedRecord{
				ID:       rec.ID,
				Category: rec.Category,
				Reason:   err.Error(),
			})
			continue
		}
		report.Synced++
	}

	s.logger.Infow("full resync completed",
		"total", report.Total,
		"synced", report.Synced,
		"failed", len(report.Failed),
	)
	return report, nil
}

// PropagateOne projects a single record right after its ledger insert. A
// failure here leaves the ledger and the graph inconsistent until the next
// full resync; the insert itself is never rolled back.
func (s *syncService) PropagateOne(ctx context.Context, rec *models.Transaction) error {
	if err := s.graph.MergeTransaction(ctx, rec); err != nil {
		s.logger.Warnw("incremental propagation failed; graph is stale until next full resync",
			"transaction_id", rec.ID,
			"error", err,
		)
		if appErr, ok := err.(*apperrors.AppError); ok {
			return appErr
		}
		return apperrors.Wrap(apperrors.ErrGraphUnavailable, err)
	}
	return nil
}
