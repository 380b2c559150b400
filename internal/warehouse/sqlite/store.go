package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"clientatech-analyst/internal/model"
	"clientatech-analyst/internal/warehouse"
)

// Store is the SQLite-backed business database.
type Store struct {
	db     *sql.DB
	tables []string
}

// Ensure Store implements the warehouse boundary
var _ warehouse.Store = (*Store)(nil)

// New opens the warehouse database. tables is the fixed list the
// schema introspector renders; queries may still touch other tables,
// but generation prompts only ever see these.
func New(dbPath string, tables []string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open warehouse db: %w", err)
	}
	return &Store{db: db, tables: tables}, nil
}

// Schema introspects the configured tables via PRAGMA table_info and
// renders the textual schema contract consumed by the generators.
func (s *Store) Schema(ctx context.Context) (string, error) {
	var b strings.Builder

	for _, table := range s.tables {
		rows, err := s.db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%q)", table))
		if err != nil {
			return "", fmt.Errorf("introspect table %s: %w", table, err)
		}

		var cols []string
		for rows.Next() {
			var (
				cid       int
				name      string
				colType   string
				notNull   int
				dfltValue sql.NullString
				pk        int
			)
			if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
				rows.Close()
				return "", fmt.Errorf("introspect table %s: %w", table, err)
			}
			cols = append(cols, fmt.Sprintf("%s (%s)", name, colType))
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return "", fmt.Errorf("introspect table %s: %w", table, err)
		}
		rows.Close()

		if len(cols) == 0 {
			return "", fmt.Errorf("introspect table %s: table not found or empty schema", table)
		}

		b.WriteString(fmt.Sprintf("Table %s: %s\n", table, strings.Join(cols, ", ")))
	}

	return b.String(), nil
}

// Execute runs the query once and materializes the result set.
// No retry: a malformed query will not become well-formed on retry.
func (s *Store) Execute(ctx context.Context, query string) ([]model.Row, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var result []model.Row
	for rows.Next() {
		values := make([]any, len(columns))
		scanTargets := make([]any, len(columns))
		for i := range values {
			scanTargets[i] = &values[i]
		}
		if err := rows.Scan(scanTargets...); err != nil {
			return nil, err
		}

		row := model.Row{
			Columns: columns,
			Values:  make(map[string]any, len(columns)),
		}
		for i, col := range columns {
			row.Values[col] = normalizeValue(values[i])
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// normalizeValue converts driver byte slices to strings so rows
// serialize as text, not base64.
func normalizeValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
