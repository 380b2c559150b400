package llmprovider

import (
	"context"
	"fmt"
	"time"

	"clientatech-analyst/pkg/log"
)

// Manager orchestrates provider selection, fallback, and retry logic
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // Global timeout for the entire fallback chain
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// Chat iterates through providers in priority order with fallback logic.
// Every call is logged with duration and token counts, tagged by the
// request's Component.
func (m *Manager) Chat(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if len(req.Messages) == 0 {
		return nil, fmt.Errorf("%w: no messages", ErrInvalidRequest)
	}

	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error

	for _, provider := range m.providers {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("global timeout exceeded after trying %d provider(s): %w",
				len(m.providers), ctx.Err())
		default:
		}

		start := time.Now()
		resp, err := m.chatWithRetry(ctx, provider, req)
		duration := time.Since(start)

		if err == nil {
			resp.ProviderName = provider.Name()
			resp.ModelName = provider.Model()
			m.logSuccess(ctx, provider, req, resp, duration)
			return resp, nil
		}

		m.logFailure(ctx, provider, req, err, duration)
		lastErr = &ProviderError{Provider: provider.Name(), Err: err}

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// chatWithRetry implements a retry mechanism with linear backoff
func (m *Manager) chatWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	attempts := m.config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := provider.Chat(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
	}

	return nil, lastErr
}

func (m *Manager) logSuccess(ctx context.Context, provider Provider, req *Request, resp *Response, duration time.Duration) {
	usage := resp.Usage
	if usage == nil {
		usage = &Usage{}
	}
	m.logger.Info(ctx, "llm_call",
		"component", req.Component,
		"provider", provider.Name(),
		"model", provider.Model(),
		"duration_ms", duration.Milliseconds(),
		"tokens_in", usage.InputTokens,
		"tokens_out", usage.OutputTokens,
		"status", "success",
	)
}

func (m *Manager) logFailure(ctx context.Context, provider Provider, req *Request, err error, duration time.Duration) {
	m.logger.Warn(ctx, "llm_call",
		"component", req.Component,
		"provider", provider.Name(),
		"model", provider.Model(),
		"duration_ms", duration.Milliseconds(),
		"status", "error",
		"error", err.Error(),
	)
}
