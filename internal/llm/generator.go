package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hansollabs/clausecraft/internal/common"
)

// Generator wraps a provider client with rate limiting and retry. It is the
// single path the pipeline stages use to reach the external service; each
// call carries the caller's context so cancellation aborts in-flight
// requests.
type Generator struct {
	client      Client
	logger      *slog.Logger
	rateLimiter *rateLimiter
	retryOpts   common.RetryOptions
}

// NewGenerator creates a Generator from configuration.
func NewGenerator(cfg Config, logger *slog.Logger) (*Generator, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return NewGeneratorWithClient(client, cfg, logger), nil
}

// NewGeneratorWithClient wraps an existing client; used by tests to inject
// mock providers.
func NewGeneratorWithClient(client Client, cfg Config, logger *slog.Logger) *Generator {
	retryOpts := common.RetryOptions{
		MaxAttempts:  cfg.MaxRetries,
		InitialDelay: time.Duration(cfg.RetryDelay) * time.Millisecond,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}
	if retryOpts.MaxAttempts == 0 {
		retryOpts.MaxAttempts = 2
	}
	if retryOpts.InitialDelay == 0 {
		retryOpts.InitialDelay = time.Second
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Generator{
		client:      client,
		logger:      logger,
		rateLimiter: newRateLimiter(cfg.RateLimit, cfg.Burst),
		retryOpts:   retryOpts,
	}
}

// Model returns the underlying model name for provenance metadata.
func (g *Generator) Model() string {
	return g.client.Model()
}

// Complete runs one completion with rate limiting and retry. Transport
// failures are retried; context cancellation is not.
func (g *Generator) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if err := g.rateLimiter.wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit error: %w", err)
	}

	var content string
	err := common.WithRetry(ctx, func() error {
		response, err := g.client.Complete(ctx, systemPrompt, userPrompt)
		if err != nil {
			g.logger.Warn("generation attempt failed", "error", err)
			return &common.RetryableError{Err: err, Retryable: ctx.Err() == nil}
		}
		content = response
		return nil
	}, g.retryOpts)

	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}
	return content, nil
}
