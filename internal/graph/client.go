// Package graph maintains the Neo4j projection of the ledger: the static
// finance ontology, one node per ledger transaction, and a read-only query
// surface for the conversational assistant.
package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"fingraph/internal/config"
)

// Client wraps the Neo4j driver. The driver is a long-lived, process-wide
// handle; every logical operation opens its own session and closes it on
// completion.
type Client struct {
	driver neo4j.DriverWithContext
	logger *zap.SugaredLogger
}

// NewClient connects to the graph store and verifies connectivity.
// A store that cannot be reached at startup is a fatal condition for the
// process, so the caller should treat an error here as unrecoverable.
func NewClient(ctx context.Context, cfg *config.Config, logger *zap.SugaredLogger) (*Client, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.Neo4jURI, neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, fmt.Errorf("failed to reach neo4j at %s: %w", cfg.Neo4jURI, err)
	}

	logger.Infow("connected to graph store", "uri", cfg.Neo4jURI)
	return &Client{driver: driver, logger: logger}, nil
}

// Close releases the underlying driver.
func (c *Client) Close(ctx context.Context) error {
	return c.driver.Close(ctx)
}

func (c *Client) writeSession(ctx context.Context) neo4j.SessionWithContext {
	return c.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
}

func (c *Client) readSession(ctx context.Context) neo4j.SessionWithContext {
	return c.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
}
