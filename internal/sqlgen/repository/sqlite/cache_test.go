package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// recordingLogger captures Info events so tests can assert on the
// structured fields the cache emits.
type recordingLogger struct {
	mockLogger
	events [][]any
}

func (r *recordingLogger) Info(ctx context.Context, arg ...any) {
	r.events = append(r.events, arg)
}

// fields returns the key/value pairs of the first recorded event with
// the given name, or nil when no such event was emitted.
func (r *recordingLogger) fields(name string) map[string]any {
	for _, ev := range r.events {
		if len(ev) == 0 || ev[0] != name {
			continue
		}
		m := make(map[string]any)
		rest := ev[1:]
		for i := 0; i+1 < len(rest); i += 2 {
			if k, ok := rest[i].(string); ok {
				m[k] = rest[i+1]
			}
		}
		return m
	}
	return nil
}

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	cache, err := New(filepath.Join(t.TempDir(), "cache.db"), 16, time.Minute, &mockLogger{})
	if err != nil {
		t.Fatalf("failed to open test cache: %v", err)
	}
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestCacheLookupAndSave(t *testing.T) {
	ctx := context.Background()

	t.Run("Miss On Empty Cache", func(t *testing.T) {
		cache := newTestCache(t)
		_, found, err := cache.Lookup(ctx, "faturamento total")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found {
			t.Error("expected miss on empty cache")
		}
	})

	t.Run("Save Then Hit", func(t *testing.T) {
		cache := newTestCache(t)
		if err := cache.Save(ctx, "faturamento total", "SELECT SUM(valor_mensal) FROM contratos", "GENERAL"); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		entry, found, err := cache.Lookup(ctx, "faturamento total")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found {
			t.Fatal("expected hit after save")
		}
		if entry.SQL != "SELECT SUM(valor_mensal) FROM contratos" {
			t.Errorf("unexpected SQL: %q", entry.SQL)
		}
		if entry.Intent != "GENERAL" {
			t.Errorf("unexpected intent: %q", entry.Intent)
		}
		if entry.Question != "faturamento total" {
			t.Errorf("unexpected question: %q", entry.Question)
		}
	})

	t.Run("Normalized Match", func(t *testing.T) {
		cache := newTestCache(t)
		if err := cache.Save(ctx, "Faturamento Total  ", "SELECT 1", "GENERAL"); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		// Case and surrounding whitespace collapse to the same key
		_, found, err := cache.Lookup(ctx, "faturamento total")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found {
			t.Error("expected hit for normalized variant")
		}

		// A genuinely different question stays a miss
		_, found, _ = cache.Lookup(ctx, "faturamento do mês")
		if found {
			t.Error("different question must not hit")
		}
	})

	t.Run("Repeat Save Overwrites", func(t *testing.T) {
		cache := newTestCache(t)
		if err := cache.Save(ctx, "clientes ativos", "SELECT 1", "GENERAL"); err != nil {
			t.Fatalf("save failed: %v", err)
		}
		if err := cache.Save(ctx, "clientes ativos", "SELECT 2", "PROFILE"); err != nil {
			t.Fatalf("overwrite failed: %v", err)
		}

		entry, found, _ := cache.Lookup(ctx, "clientes ativos")
		if !found {
			t.Fatal("expected hit")
		}
		if entry.SQL != "SELECT 2" || entry.Intent != "PROFILE" {
			t.Errorf("expected overwritten entry, got %+v", entry)
		}
	})

	t.Run("Error Sentinel Is Not Stored", func(t *testing.T) {
		cache := newTestCache(t)
		if err := cache.Save(ctx, "pergunta ruim", "SELECT 'Error: model generated text instead of SQL' WHERE 0", "GENERAL"); err != nil {
			t.Fatalf("sentinel save must be a silent no-op: %v", err)
		}

		_, found, _ := cache.Lookup(ctx, "pergunta ruim")
		if found {
			t.Error("sentinel must never be cached")
		}
	})

	t.Run("Persists Across Reopen", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "cache.db")

		cache, err := New(path, 16, time.Minute, &mockLogger{})
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		if err := cache.Save(ctx, "quantos clientes?", "SELECT COUNT(*) FROM clientes", "GENERAL"); err != nil {
			t.Fatalf("save: %v", err)
		}
		cache.Close()

		reopened, err := New(path, 16, time.Minute, &mockLogger{})
		if err != nil {
			t.Fatalf("reopen: %v", err)
		}
		defer reopened.Close()

		entry, found, err := reopened.Lookup(ctx, "quantos clientes?")
		if err != nil {
			t.Fatalf("lookup after reopen: %v", err)
		}
		if !found || entry.SQL != "SELECT COUNT(*) FROM clientes" {
			t.Errorf("expected persisted entry, found=%v entry=%+v", found, entry)
		}
	})
}

func TestCacheEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("Save And Hit Carry Component And Intent", func(t *testing.T) {
		rec := &recordingLogger{}
		cache, err := New(filepath.Join(t.TempDir(), "cache.db"), 16, time.Minute, rec)
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		defer cache.Close()

		if err := cache.Save(ctx, "faturamento total", "SELECT SUM(valor_mensal) FROM contratos", "GENERAL"); err != nil {
			t.Fatalf("save: %v", err)
		}
		update := rec.fields("cache_update")
		if update == nil {
			t.Fatal("save emitted no cache_update event")
		}
		if update["component"] != "query_cache" || update["intent"] != "GENERAL" || update["outcome"] != "saved" {
			t.Errorf("unexpected cache_update fields: %v", update)
		}

		if _, found, _ := cache.Lookup(ctx, "faturamento total"); !found {
			t.Fatal("expected hit after save")
		}
		lookup := rec.fields("cache_lookup")
		if lookup == nil {
			t.Fatal("lookup emitted no cache_lookup event")
		}
		if lookup["outcome"] != "hit_hot" || lookup["intent"] != "GENERAL" {
			t.Errorf("hot hit must carry outcome and intent: %v", lookup)
		}
	})

	t.Run("Cold Hit Carries Intent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cache.db")
		cache, err := New(path, 16, time.Minute, &mockLogger{})
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		if err := cache.Save(ctx, "quantos clientes?", "SELECT COUNT(*) FROM clientes", "GENERAL"); err != nil {
			t.Fatalf("save: %v", err)
		}
		cache.Close()

		rec := &recordingLogger{}
		reopened, err := New(path, 16, time.Minute, rec)
		if err != nil {
			t.Fatalf("reopen: %v", err)
		}
		defer reopened.Close()

		if _, found, _ := reopened.Lookup(ctx, "quantos clientes?"); !found {
			t.Fatal("expected database hit")
		}
		lookup := rec.fields("cache_lookup")
		if lookup == nil || lookup["outcome"] != "hit" || lookup["intent"] != "GENERAL" {
			t.Errorf("database hit must carry outcome and intent: %v", lookup)
		}
	})

	t.Run("Rejected Sentinel Is Reported", func(t *testing.T) {
		rec := &recordingLogger{}
		cache, err := New(filepath.Join(t.TempDir(), "cache.db"), 16, time.Minute, rec)
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		defer cache.Close()

		if err := cache.Save(ctx, "pergunta ruim", "SELECT 'Error: model generated text instead of SQL' WHERE 0", "RISK"); err != nil {
			t.Fatalf("sentinel save must not error: %v", err)
		}
		update := rec.fields("cache_update")
		if update == nil {
			t.Fatal("rejected sentinel emitted no cache_update event")
		}
		if update["outcome"] != "rejected_sentinel" || update["intent"] != "RISK" {
			t.Errorf("unexpected cache_update fields: %v", update)
		}
	})
}

func TestHashQuestion(t *testing.T) {
	if hashQuestion("Foo ") != hashQuestion("foo") {
		t.Error("normalized variants must hash identically")
	}
	if hashQuestion("foo") == hashQuestion("bar") {
		t.Error("different questions must not collide")
	}
}
