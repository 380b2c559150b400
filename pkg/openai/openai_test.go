package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	t.Run("Missing API Key", func(t *testing.T) {
		cfg := Config{Model: "gpt-4o-mini"}
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for missing API key")
		}
	})

	t.Run("Missing Model", func(t *testing.T) {
		cfg := Config{APIKey: "sk-test"}
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for missing model")
		}
	})

	t.Run("Defaults Applied", func(t *testing.T) {
		cfg := Config{APIKey: "sk-test", Model: "gpt-4o-mini"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.BaseURL != DefaultBaseURL {
			t.Errorf("expected default base URL, got %q", cfg.BaseURL)
		}
		if cfg.HTTPClient == nil {
			t.Error("expected default HTTP client")
		}
	})
}

func TestChat(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		var gotAuth string
		var gotReq chatCompletionRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			if r.URL.Path != "/chat/completions" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			json.NewDecoder(r.Body).Decode(&gotReq)
			json.NewEncoder(w).Encode(chatCompletionResponse{
				Choices: []choice{{Message: Message{Role: "assistant", Content: "SELECT 1"}}},
				Usage:   usage{PromptTokens: 50, CompletionTokens: 4},
			})
		}))
		defer server.Close()

		client, err := New(Config{APIKey: "sk-test", Model: "gpt-4o-mini", BaseURL: server.URL})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		temp := 0.1
		resp, err := client.Chat(ctx, &Request{
			Messages:    []Message{{Role: "user", Content: "pergunta"}},
			Temperature: &temp,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Content != "SELECT 1" {
			t.Errorf("unexpected content: %q", resp.Content)
		}
		if resp.PromptTokens != 50 || resp.CompletionTokens != 4 {
			t.Errorf("unexpected usage: %d/%d", resp.PromptTokens, resp.CompletionTokens)
		}
		if gotAuth != "Bearer sk-test" {
			t.Errorf("unexpected auth header: %q", gotAuth)
		}
		if gotReq.Temperature == nil || *gotReq.Temperature != 0.1 {
			t.Error("temperature must be forwarded on the wire")
		}
	})

	t.Run("API Error Status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error": {"message": "invalid key"}}`, http.StatusUnauthorized)
		}))
		defer server.Close()

		client, _ := New(Config{APIKey: "bad", Model: "m", BaseURL: server.URL})
		if _, err := client.Chat(ctx, &Request{Messages: []Message{{Role: "user", Content: "oi"}}}); err == nil {
			t.Error("expected error on 401")
		}
	})

	t.Run("Empty Choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(chatCompletionResponse{Usage: usage{PromptTokens: 10}})
		}))
		defer server.Close()

		client, _ := New(Config{APIKey: "k", Model: "m", BaseURL: server.URL})
		resp, err := client.Chat(ctx, &Request{Messages: []Message{{Role: "user", Content: "oi"}}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Content != "" {
			t.Errorf("expected empty content, got %q", resp.Content)
		}
	})
}
