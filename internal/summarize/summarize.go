// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summarize shortens article abstracts through a pluggable model
// provider. The provider is an opaque black box: it receives text plus length
// bounds and returns a shorter version of the text.
package summarize

import (
	"context"
	"fmt"
	"strings"
)

// Defaults for Options fields left at zero.
const (
	DefaultMaxLength  = 140
	DefaultMinLength  = 30
	DefaultMinInput   = 30
	DefaultTruncateAt = 6000
)

// OverallFallback is the overall summary used when no item had an abstract.
const OverallFallback = "No abstracts were available to summarize."

// Options bound a summarization request.
type Options struct {
	// MaxLength is the requested upper bound on summary length, in words.
	// The bound is advisory: models may run slightly over.
	MaxLength int

	// MinLength is the requested lower bound on summary length, in words.
	MinLength int

	// MinInput is the input length threshold, in characters. Input at or
	// below the threshold passes through unsummarized.
	MinInput int

	// TruncateAt caps the input length, in runes, before the provider call
	// so arbitrarily long abstracts do not fail it.
	TruncateAt int
}

func (o Options) withDefaults() Options {
	if o.MaxLength <= 0 {
		o.MaxLength = DefaultMaxLength
	}
	if o.MinLength <= 0 {
		o.MinLength = DefaultMinLength
	}
	if o.MinInput <= 0 {
		o.MinInput = DefaultMinInput
	}
	if o.TruncateAt <= 0 {
		o.TruncateAt = DefaultTruncateAt
	}
	return o
}

// Provider is a model backend that shortens text. Each backend (Ollama,
// OpenAI, Cohere) implements this interface.
type Provider interface {
	Name() string
	Summarize(ctx context.Context, text string, opts Options) (string, error)
}

// Summarizer applies the invocation policy around a Provider: short or empty
// input passes through unchanged, long input is truncated before the call.
// A Summarizer is immutable after construction and safe to reuse.
type Summarizer struct {
	provider Provider
	opts     Options
}

// New wraps provider with opts, filling zero option fields with defaults.
func New(provider Provider, opts Options) *Summarizer {
	return &Summarizer{provider: provider, opts: opts.withDefaults()}
}

// Provider returns the wrapped model backend.
func (s *Summarizer) Provider() Provider { return s.provider }

// Text summarizes text through the provider. Empty input, or input no longer
// than the MinInput threshold, is returned unchanged without a provider call.
func (s *Summarizer) Text(ctx context.Context, text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || len(trimmed) <= s.opts.MinInput {
		return text, nil
	}

	out, err := s.provider.Summarize(ctx, truncateRunes(trimmed, s.opts.TruncateAt), s.opts)
	if err != nil {
		return "", fmt.Errorf("summarizing with %s: %w", s.provider.Name(), err)
	}
	return strings.TrimSpace(out), nil
}

// Overall summarizes the aggregate of all abstracts. An empty aggregate
// yields the fixed fallback message, never a provider call.
func (s *Summarizer) Overall(ctx context.Context, aggregate string) (string, error) {
	if strings.TrimSpace(aggregate) == "" {
		return OverallFallback, nil
	}
	return s.Text(ctx, aggregate)
}

// prompt builds the instruction sent to chat-style providers.
func prompt(text string, opts Options) string {
	return fmt.Sprintf(
		"Summarize the following text in %d to %d words. Respond with the summary only, no preamble.\n\n%s",
		opts.MinLength, opts.MaxLength, text)
}

// truncateRunes caps s at max runes without splitting a multi-byte character.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
