package sqlite

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	_ "modernc.org/sqlite"

	"clientatech-analyst/internal/sqlgen/repository"
	"clientatech-analyst/pkg/log"
)

const componentName = "query_cache"

const createTableStmt = `
CREATE TABLE IF NOT EXISTS llm_cache (
	query_hash    TEXT PRIMARY KEY,
	user_query    TEXT NOT NULL,
	sql_generated TEXT NOT NULL,
	intent        TEXT NOT NULL,
	created_at    TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

// Cache is the SQLite-backed exact-match query cache with an
// in-process expirable hot layer in front of it.
type Cache struct {
	db  *sql.DB
	hot *expirable.LRU[string, repository.Entry]
	l   log.Logger
}

// Ensure Cache implements the repository boundary
var _ repository.Repository = (*Cache)(nil)

// New opens (and if needed creates) the cache database.
func New(dbPath string, hotEntries int, hotTTL time.Duration, l log.Logger) (*Cache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}
	if _, err := db.Exec(createTableStmt); err != nil {
		db.Close()
		return nil, fmt.Errorf("create cache table: %w", err)
	}

	return &Cache{
		db:  db,
		hot: expirable.NewLRU[string, repository.Entry](hotEntries, nil, hotTTL),
		l:   l,
	}, nil
}

// Lookup checks the hot layer, then the database. A database hit
// backfills the hot layer.
func (c *Cache) Lookup(ctx context.Context, question string) (repository.Entry, bool, error) {
	hash := hashQuestion(question)

	if entry, ok := c.hot.Get(hash); ok {
		c.logLookup(ctx, "hit_hot", entry.Intent)
		return entry, true, nil
	}

	var entry repository.Entry
	err := c.db.QueryRowContext(ctx,
		"SELECT query_hash, user_query, sql_generated, intent FROM llm_cache WHERE query_hash = ?",
		hash,
	).Scan(&entry.QueryHash, &entry.Question, &entry.SQL, &entry.Intent)
	if errors.Is(err, sql.ErrNoRows) {
		c.logLookup(ctx, "miss", "")
		return repository.Entry{}, false, nil
	}
	if err != nil {
		return repository.Entry{}, false, fmt.Errorf("cache lookup: %w", err)
	}

	c.hot.Add(hash, entry)
	c.logLookup(ctx, "hit", entry.Intent)
	return entry, true, nil
}

// Save persists a generation. Sentinel serializations are dropped
// without touching storage; a repeated question overwrites its row.
func (c *Cache) Save(ctx context.Context, question, sqlText, intent string) error {
	if repository.IsErrorQuery(sqlText) {
		c.l.Debugf(ctx, "cache: refused to store error sentinel for query %q", question)
		c.logStore(ctx, intent, "rejected_sentinel")
		return nil
	}

	hash := hashQuestion(question)
	_, err := c.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO llm_cache (query_hash, user_query, sql_generated, intent) VALUES (?, ?, ?, ?)",
		hash, question, sqlText, intent,
	)
	if err != nil {
		return fmt.Errorf("cache save: %w", err)
	}

	c.hot.Add(hash, repository.Entry{
		QueryHash: hash,
		Question:  question,
		SQL:       sqlText,
		Intent:    intent,
	})
	c.logStore(ctx, intent, "saved")
	return nil
}

// Close releases the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) logLookup(ctx context.Context, outcome, intent string) {
	args := []any{"cache_lookup", "component", componentName, "outcome", outcome}
	if intent != "" {
		args = append(args, "intent", intent)
	}
	c.l.Info(ctx, args...)
}

func (c *Cache) logStore(ctx context.Context, intent, outcome string) {
	c.l.Info(ctx, "cache_update",
		"component", componentName,
		"intent", intent,
		"outcome", outcome,
	)
}

// hashQuestion normalizes the question (trim + lower) before hashing
// so trivially different phrasings of the same bytes collide.
func hashQuestion(question string) string {
	normalized := strings.ToLower(strings.TrimSpace(question))
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}
