// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"net/http"

	"github.com/pdiddy/arxiv-summarizer/pkg/types"
)

// userAgentTransport stamps a User-Agent header on every outgoing request
// before delegating to the base round tripper.
type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone before mutating: RoundTrippers must not modify the caller's request.
	r := req.Clone(req.Context())
	if r.Header.Get("User-Agent") == "" {
		r.Header.Set("User-Agent", t.userAgent)
	}
	return t.base.RoundTrip(r)
}

// NewClient builds an http.Client from shared HTTP settings. A non-empty
// UserAgent is applied to every request that does not already carry one.
// A zero Timeout leaves the client without a deadline.
func NewClient(cfg types.HTTPConfig) *http.Client {
	client := &http.Client{Timeout: cfg.Timeout}
	if cfg.UserAgent != "" {
		client.Transport = &userAgentTransport{
			base:      http.DefaultTransport,
			userAgent: cfg.UserAgent,
		}
	}
	return client
}
