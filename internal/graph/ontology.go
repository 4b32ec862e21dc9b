package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"fingraph/internal/models"
)

// ontologyQuery seeds the static finance taxonomy. Everything is MERGEd so
// seeding is idempotent: restarting the service never duplicates ontology
// nodes.
const ontologyQuery = `
	MERGE (fin:Domain {name: 'Finance'})

	MERGE (trans:Category {name: 'Transaction'})
	MERGE (income:Type {name: 'Income'})
	MERGE (expense:Type {name: 'Expense'})

	MERGE (food:Category {name: 'Food'})
	MERGE (groceries:Subcategory {name: 'Groceries'})
	MERGE (restaurant:Subcategory {name: 'Restaurant'})

	MERGE (fin)-[:HAS_CATEGORY]->(trans)
	MERGE (trans)-[:HAS_TYPE]->(income)
	MERGE (trans)-[:HAS_TYPE]->(expense)
	MERGE (trans)-[:HAS_CATEGORY]->(food)
	MERGE (food)-[:HAS_SUBCATEGORY]->(groceries)
	MERGE (food)-[:HAS_SUBCATEGORY]->(restaurant)
`

// EnsureOntology materializes the fixed taxonomy plus a Category node for
// every label the transaction form offers, so category lookups during
// projection always resolve for known labels.
func (c *Client) EnsureOntology(ctx context.Context) error {
	session := c.writeSession(ctx)
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		if _, err := tx.Run(ctx, ontologyQuery, nil); err != nil {
			return nil, err
		}

		categoryQuery := `
			MERGE (cat:Category {name: $name})
			WITH cat
			MATCH (fin:Domain {name: 'Finance'})
			MERGE (fin)-[:HAS_CATEGORY]->(cat)
		`
		for _, name := range models.Categories {
			if _, err := tx.Run(ctx, categoryQuery, map[string]any{"name": name}); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("failed to seed ontology: %w", err)
	}

	c.logger.Info("graph ontology seeded")
	return nil
}
