package graph

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"

	apperrors "fingraph/internal/errors"
)

// Query runs a Cypher query and returns the result rows as plain data,
// detached from the live graph. Execution errors come back as typed
// failures rather than panics; callers decide how to report them.
func (c *Client) Query(ctx context.Context, cypher string) ([]map[string]any, error) {
	session := c.readSession(ctx)
	defer session.Close(ctx)

	result, err := session.Run(ctx, cypher, nil)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrQueryFailed, err)
	}

	records, err := result.Collect(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrQueryFailed, err)
	}

	rows := make([]map[string]any, 0, len(records))
	for _, record := range records {
		rows = append(rows, plainMap(record.AsMap()))
	}
	return rows, nil
}

// plainMap copies a record map, flattening driver entity types into their
// property maps so rows serialize cleanly and hold no graph references.
func plainMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = plainValue(v)
	}
	return out
}

func plainValue(v any) any {
	switch val := v.(type) {
	case dbtype.Node:
		return plainMap(val.Props)
	case dbtype.Relationship:
		return plainMap(val.Props)
	case dbtype.Path:
		return plainPath(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = plainValue(item)
		}
		return out
	case map[string]any:
		return plainMap(val)
	default:
		return v
	}
}

func plainPath(p dbtype.Path) map[string]any {
	nodes := make([]any, len(p.Nodes))
	for i, n := range p.Nodes {
		nodes[i] = plainMap(n.Props)
	}
	rels := make([]any, len(p.Relationships))
	for i, r := range p.Relationships {
		rels[i] = plainMap(r.Props)
	}
	return map[string]any{"nodes": nodes, "relationships": rels}
}
