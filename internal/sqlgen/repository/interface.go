package repository

import (
	"context"
	"strings"
)

// Entry is one cached question-to-SQL mapping.
type Entry struct {
	QueryHash string
	Question  string
	SQL       string
	Intent    string
}

// Repository is the exact-match query cache.
type Repository interface {
	// Lookup returns the cached entry for a question, or found=false.
	// Matching is exact over the normalized question text.
	Lookup(ctx context.Context, question string) (Entry, bool, error)

	// Save persists a successful generation. Saving is idempotent:
	// a repeated question overwrites the previous entry. Error
	// sentinels are silently dropped (see IsErrorQuery).
	Save(ctx context.Context, question, sql, intent string) error

	// Close releases the cache storage.
	Close() error
}

// ErrorMarker tags sentinel serializations of failed generations.
// The guard is textual because the sentinel crosses the cache boundary
// as a plain string.
const ErrorMarker = "Error:"

// IsErrorQuery reports whether sql is a failure sentinel rather than
// a real query. Sentinels must never be cached.
func IsErrorQuery(sql string) bool {
	return strings.Contains(sql, ErrorMarker)
}
