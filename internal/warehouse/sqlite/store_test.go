package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStore(t *testing.T, tables []string) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "warehouse.db")

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open seed connection: %v", err)
	}
	stmts := []string{
		`CREATE TABLE clientes (id_cliente INTEGER PRIMARY KEY, nome TEXT NOT NULL, status TEXT)`,
		`CREATE TABLE contratos (id_contrato INTEGER PRIMARY KEY, id_cliente INTEGER, valor_mensal REAL)`,
		`INSERT INTO clientes (id_cliente, nome, status) VALUES (1, 'TechSolutions', 'Ativo')`,
		`INSERT INTO clientes (id_cliente, nome, status) VALUES (2, 'EpsilonFood', 'Ativo')`,
		`INSERT INTO clientes (id_cliente, nome, status) VALUES (3, 'MegaVarejo', 'Inativo')`,
		`INSERT INTO contratos (id_contrato, id_cliente, valor_mensal) VALUES (1, 1, 3500.0)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	db.Close()

	store, err := New(path, tables)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSchema(t *testing.T) {
	ctx := context.Background()

	t.Run("Renders Configured Tables", func(t *testing.T) {
		store := newTestStore(t, []string{"clientes", "contratos"})

		schema, err := store.Schema(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(schema), "\n")
		if len(lines) != 2 {
			t.Fatalf("expected 2 schema lines, got %d: %q", len(lines), schema)
		}
		if !strings.HasPrefix(lines[0], "Table clientes: ") {
			t.Errorf("unexpected first line: %q", lines[0])
		}
		if !strings.Contains(lines[0], "nome (TEXT)") {
			t.Errorf("expected column with type in %q", lines[0])
		}
		if !strings.Contains(lines[1], "valor_mensal (REAL)") {
			t.Errorf("expected contratos columns in %q", lines[1])
		}
	})

	t.Run("Missing Table Is An Error", func(t *testing.T) {
		store := newTestStore(t, []string{"clientes", "interacoes"})
		if _, err := store.Schema(ctx); err == nil {
			t.Error("expected error for missing table")
		}
	})
}

func TestExecute(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, []string{"clientes"})

	t.Run("Preserves Row And Column Order", func(t *testing.T) {
		rows, err := store.Execute(ctx, "SELECT nome, status FROM clientes ORDER BY id_cliente")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 3 {
			t.Fatalf("expected 3 rows, got %d", len(rows))
		}
		if rows[0].Columns[0] != "nome" || rows[0].Columns[1] != "status" {
			t.Errorf("unexpected column order: %v", rows[0].Columns)
		}
		if rows[0].Values["nome"] != "TechSolutions" {
			t.Errorf("unexpected first row: %v", rows[0].Values)
		}
		if rows[2].Values["status"] != "Inativo" {
			t.Errorf("unexpected last row: %v", rows[2].Values)
		}
	})

	t.Run("Empty Result Set", func(t *testing.T) {
		rows, err := store.Execute(ctx, "SELECT nome FROM clientes WHERE status = 'Pendente'")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 0 {
			t.Errorf("expected 0 rows, got %d", len(rows))
		}
	})

	t.Run("Calculated Columns", func(t *testing.T) {
		rows, err := store.Execute(ctx, "SELECT COUNT(*) AS total FROM clientes WHERE status = 'Ativo'")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(rows))
		}
		total, ok := rows[0].Values["total"].(int64)
		if !ok || total != 2 {
			t.Errorf("expected total=2, got %v", rows[0].Values["total"])
		}
	})

	t.Run("Malformed SQL Errors", func(t *testing.T) {
		if _, err := store.Execute(ctx, "SELEKT * FROM clientes"); err == nil {
			t.Error("expected syntax error")
		}
	})
}
