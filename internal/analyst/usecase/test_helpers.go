package usecase

import (
	"context"

	"clientatech-analyst/internal/model"
	"clientatech-analyst/internal/sqlgen"
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

// Mock dispatcher for testing
type mockDispatcher struct {
	output sqlgen.Output
	calls  int
}

func (m *mockDispatcher) Route(ctx context.Context, question string) sqlgen.Output {
	m.calls++
	return m.output
}

// Mock warehouse store for testing
type mockStore struct {
	rows  []model.Row
	err   error
	calls int
}

func (m *mockStore) Schema(ctx context.Context) (string, error) {
	return "Table clientes: nome (TEXT)\n", nil
}

func (m *mockStore) Execute(ctx context.Context, query string) ([]model.Row, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.rows, nil
}

func (m *mockStore) Close() error { return nil }

// Mock chat client for testing
type mockChatClient struct {
	content string
	err     error
	calls   int

	// lastRequest captures the synthesis prompt for assertions
	lastRequest *llmprovider.Request
}

func (m *mockChatClient) Chat(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	m.lastRequest = req
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Content: m.content}, nil
}
