package sqlgen

import (
	"context"

	"clientatech-analyst/internal/router"
	"clientatech-analyst/internal/sqlgen/repository"
	"clientatech-analyst/pkg/llmprovider"
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

// Mock chat client for testing
type mockChatClient struct {
	content string
	err     error
	calls   int
}

func (m *mockChatClient) Chat(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Content: m.content}, nil
}

// Mock classifier for testing
type mockClassifier struct {
	intent router.Intent
	calls  int
}

func (m *mockClassifier) Classify(ctx context.Context, question string) router.Intent {
	m.calls++
	return m.intent
}

// Mock cache repository for testing
type mockCache struct {
	entries   map[string]repository.Entry
	lookupErr error
	saveErr   error
	saves     int
}

func newMockCache() *mockCache {
	return &mockCache{entries: map[string]repository.Entry{}}
}

func (m *mockCache) Lookup(ctx context.Context, question string) (repository.Entry, bool, error) {
	if m.lookupErr != nil {
		return repository.Entry{}, false, m.lookupErr
	}
	entry, ok := m.entries[question]
	return entry, ok, nil
}

func (m *mockCache) Save(ctx context.Context, question, sql, intent string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.entries[question] = repository.Entry{Question: question, SQL: sql, Intent: intent}
	return nil
}

func (m *mockCache) Close() error { return nil }
