// Package llm provides clients for external text-generation services and the
// repair parser that makes their output safe to consume.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/hansollabs/clausecraft/internal/common"
)

// Client defines the interface for text-generation providers. Both usage
// patterns of the engine (ranking calls against an enumerated list, drafting
// calls for full clause text) go through Complete; callers parse the
// returned text through the repair parser before trusting it.
type Client interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Model() string
}

// Config holds configuration for a text-generation client.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	MaxRetries  int
	RetryDelay  int // milliseconds
	RateLimit   int // requests per minute
	Burst       int // requests allowed immediately after idle
	TimeoutSecs int
}

// NewClient creates a provider client from configuration. A missing API key
// is a configuration error surfaced immediately, never retried.
func NewClient(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai", "":
		return newOpenAIClient(cfg)
	case "anthropic":
		return newAnthropicClient(cfg)
	default:
		return nil, fmt.Errorf("%w: unsupported provider %q", common.ErrInvalidConfig, cfg.Provider)
	}
}
