// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"fmt"
	"sync"

	"github.com/pdiddy/arxiv-summarizer/pkg/types"
)

var (
	defaultOnce sync.Once
	defaultSum  *Summarizer
	defaultErr  error
)

// Default returns the process-wide Summarizer, building the configured
// provider lazily on the first call. The first caller's configuration wins;
// every later call reuses the same instance for the process lifetime.
func Default(cfg types.SummarizerConfig) (*Summarizer, error) {
	defaultOnce.Do(func() {
		defaultSum, defaultErr = FromConfig(cfg)
	})
	return defaultSum, defaultErr
}

// FromConfig builds a fresh Summarizer for the configured provider.
func FromConfig(cfg types.SummarizerConfig) (*Summarizer, error) {
	provider, err := newProvider(cfg)
	if err != nil {
		return nil, err
	}
	return New(provider, Options{
		MaxLength: cfg.MaxLength,
		MinLength: cfg.MinLength,
		MinInput:  cfg.MinInput,
	}), nil
}

func newProvider(cfg types.SummarizerConfig) (Provider, error) {
	switch cfg.Provider {
	case types.ProviderOllama, "":
		return NewOllama(cfg)
	case types.ProviderOpenAI:
		return NewOpenAI(cfg)
	case types.ProviderCohere:
		return NewCohere(cfg)
	default:
		return nil, fmt.Errorf("unknown summarizer provider %q (valid: ollama, openai, cohere)", cfg.Provider)
	}
}
