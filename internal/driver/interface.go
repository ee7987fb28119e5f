package driver

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Tx runs statements inside a managed write transaction.
type Tx interface {
	Run(ctx context.Context, query string, params map[string]interface{}) ([]*neo4j.Record, error)
}

type GraphDriver interface {
	ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error)
	// ExecuteWrite runs work inside one transaction; returning an error rolls
	// back every statement issued through the Tx.
	ExecuteWrite(ctx context.Context, work func(ctx context.Context, tx Tx) error) error
	BuildConstraints(ctx context.Context) error
	Close(ctx context.Context) error
}
