package router

import (
	"context"
	"errors"
	"testing"

	"clientatech-analyst/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                      {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)    {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                      {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)    {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)   {}

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

func TestClassify(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid Labels", func(t *testing.T) {
		for _, intent := range Taxonomy {
			r := New(&mockChatClient{content: `{"category": "` + string(intent) + `", "reasoning": "test"}`}, &mockLogger{})
			got := r.Classify(ctx, "pergunta")
			if got != intent {
				t.Errorf("expected %s, got %s", intent, got)
			}
		}
	})

	t.Run("Fenced JSON", func(t *testing.T) {
		r := New(&mockChatClient{content: "```json\n{\"category\": \"RISK\", \"reasoning\": \"x\"}\n```"}, &mockLogger{})
		if got := r.Classify(ctx, "quem está em risco?"); got != IntentRisk {
			t.Errorf("expected RISK, got %s", got)
		}
	})

	t.Run("Generic Fence", func(t *testing.T) {
		r := New(&mockChatClient{content: "```\n{\"category\": \"PROFILE\"}\n```"}, &mockLogger{})
		if got := r.Classify(ctx, "perfil da TechSolutions"); got != IntentProfile {
			t.Errorf("expected PROFILE, got %s", got)
		}
	})

	t.Run("LLM Error Falls Back", func(t *testing.T) {
		r := New(&mockChatClient{err: errors.New("connection refused")}, &mockLogger{})
		if got := r.Classify(ctx, "oi"); got != FallbackIntent {
			t.Errorf("expected fallback %s, got %s", FallbackIntent, got)
		}
	})

	t.Run("Malformed JSON Falls Back Without Retry", func(t *testing.T) {
		client := &mockChatClient{content: "not json at all"}
		r := New(client, &mockLogger{})
		if got := r.Classify(ctx, "oi"); got != FallbackIntent {
			t.Errorf("expected fallback %s, got %s", FallbackIntent, got)
		}
		if client.calls != 1 {
			t.Errorf("expected exactly 1 model call, got %d", client.calls)
		}
	})

	t.Run("Label Wrapped In Prose", func(t *testing.T) {
		r := New(&mockChatClient{content: `{"category": "The category is HISTORY."}`}, &mockLogger{})
		if got := r.Classify(ctx, "histórico da MegaVarejo"); got != IntentHistory {
			t.Errorf("expected HISTORY, got %s", got)
		}
	})

	t.Run("Lowercase Label", func(t *testing.T) {
		r := New(&mockChatClient{content: `{"category": "absence"}`}, &mockLogger{})
		if got := r.Classify(ctx, "clientes sumidos"); got != IntentAbsence {
			t.Errorf("expected ABSENCE, got %s", got)
		}
	})

	t.Run("Unknown Label Falls Back", func(t *testing.T) {
		r := New(&mockChatClient{content: `{"category": "BANANA"}`}, &mockLogger{})
		if got := r.Classify(ctx, "???"); got != FallbackIntent {
			t.Errorf("expected fallback %s, got %s", FallbackIntent, got)
		}
	})
}

func TestNormalizeLabel(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want Intent
	}{
		{"Exact", "PROFILE", IntentProfile},
		{"Whitespace", "  RISK  ", IntentRisk},
		{"Lower", "general", IntentGeneral},
		{"Substring", "I think this is a HISTORY question", IntentHistory},
		{"Preference Order On Conflict", "PROFILE or maybe GENERAL", IntentProfile},
		{"Empty", "", FallbackIntent},
		{"Garbage", "42", FallbackIntent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizeLabel(tc.raw); got != tc.want {
				t.Errorf("normalizeLabel(%q) = %s, want %s", tc.raw, got, tc.want)
			}
		})
	}
}

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"No Fence", `{"a":1}`, `{"a":1}`},
		{"JSON Fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"Generic Fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"Unclosed Fence", "```json\n{\"a\":1}", `{"a":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := stripCodeFence(tc.in); got != tc.want {
				t.Errorf("stripCodeFence(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
