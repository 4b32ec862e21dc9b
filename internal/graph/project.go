package graph

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	apperrors "fingraph/internal/errors"
	"fingraph/internal/models"
)

// mergeTransactionQuery upserts one Transaction node keyed by sqlite_id and
// its Brand/Type nodes keyed by name, then connects the edges. The Category
// node must already exist; when it does not, the MATCH yields nothing and
// the RETURN count stays at zero, which surfaces as a projection gap.
const mergeTransactionQuery = `
	MATCH (cat:Category {name: $category})
	MERGE (trans:Transaction {sqlite_id: $sqlite_id})
	ON CREATE SET
		trans.name = $name,
		trans.amount = $amount,
		trans.brand = $brand,
		trans.transaction_time = $time,
		trans.type = $type
	ON MATCH SET
		trans.name = $name,
		trans.amount = $amount,
		trans.brand = $brand,
		trans.transaction_time = $time,
		trans.type = $type
	MERGE (brand:Brand {name: $brand})
	MERGE (type:Type {name: $type})
	MERGE (trans)-[:HAS_CATEGORY]->(cat)
	MERGE (trans)-[:FROM_BRAND]->(brand)
	MERGE (trans)-[:OF_TYPE]->(type)
	RETURN trans.sqlite_id AS sqlite_id
`

// MergeTransaction projects a single ledger record into the graph. The
// upsert is keyed by sqlite_id, so projecting the same record twice never
// duplicates its node. Each call is one write unit in its own session.
func (c *Client) MergeTransaction(ctx context.Context, rec *models.Transaction) error {
	session := c.writeSession(ctx)
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, mergeTransactionQuery, map[string]any{
			"sqlite_id": strconv.FormatUint(uint64(rec.ID), 10),
			"name":      rec.Name,
			"amount":    rec.Amount,
			"brand":     rec.Brand,
			"category":  rec.Category,
			"time":      rec.TransactionTime.Format(time.RFC3339),
			"type":      string(rec.Type),
		})
		if err != nil {
			return nil, err
		}

		if !result.Next(ctx) {
			return nil, apperrors.WithMessage(apperrors.ErrCategoryNotInGraph,
				fmt.Sprintf("no Category node named %q for transaction %d", rec.Category, rec.ID))
		}
		return nil, result.Err()
	})
	if err != nil {
		if appErr, ok := err.(*apperrors.AppError); ok {
			return appErr
		}
		return apperrors.Wrap(apperrors.ErrGraphUnavailable, err)
	}
	return nil
}

// DeleteAllTransactions removes every Transaction node and its relationships.
// Run before a full rebuild so the projection becomes a pure function of the
// ledger table.
func (c *Client) DeleteAllTransactions(ctx context.Context) error {
	session := c.writeSession(ctx)
	defer session.Close(ctx)

	_, err := session.Run(ctx, "MATCH (t:Transaction) DETACH DELETE t", nil)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrGraphUnavailable, err)
	}
	return nil
}
