package warehouse

import (
	"context"

	"clientatech-analyst/internal/model"
)

// Store is the read boundary to the business database.
type Store interface {
	// Schema renders one line per known table:
	//   Table <name>: <col1> (<type1>), <col2> (<type2>), ...
	// This text is injected into every generation prompt. Failure is
	// fatal to the caller — there is no query generation without it.
	Schema(ctx context.Context) (string, error)

	// Execute runs a single read-only query, exactly once, and
	// returns rows preserving the store's row and column order.
	Execute(ctx context.Context, query string) ([]model.Row, error)

	// Close releases the database connection.
	Close() error
}
