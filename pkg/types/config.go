package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "arxiv-summarizer/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FeedConfig holds settings for the arXiv feed stage.
type FeedConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the default result-count bound for a search. Valid
	// values are 1 through 100; the default is 10.
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// SummarizerProvider identifies the model backend used for summarization.
type SummarizerProvider string

const (
	ProviderOllama SummarizerProvider = "ollama"
	ProviderOpenAI SummarizerProvider = "openai"
	ProviderCohere SummarizerProvider = "cohere"
)

// SummarizerConfig holds settings for the summarization stage.
type SummarizerConfig struct {
	HTTPConfig `yaml:",inline"`

	// Provider selects the model backend: ollama, openai, or cohere.
	Provider SummarizerProvider `json:"provider" yaml:"provider"`

	// Model is the model identifier (e.g. "llama3.2", "gpt-4o-mini",
	// "command-r"). Empty selects the provider's default.
	Model string `json:"model" yaml:"model"`

	// OllamaHost is the Ollama server address. Empty falls back to the
	// OLLAMA_HOST environment variable, then http://localhost:11434.
	OllamaHost string `json:"ollama_host,omitempty" yaml:"ollama_host,omitempty"`

	// APIKey authenticates against hosted providers (openai, cohere).
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxLength is the requested upper bound on summary length, in words
	// (default 140). The bound is advisory: the model may run slightly over.
	MaxLength int `json:"max_length" yaml:"max_length"`

	// MinLength is the requested lower bound on summary length, in words
	// (default 30).
	MinLength int `json:"min_length" yaml:"min_length"`

	// MinInput is the input length threshold, in characters, below which
	// text passes through unsummarized (default 30).
	MinInput int `json:"min_input" yaml:"min_input"`
}

// ServerConfig holds settings for the web presentation layer.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`
}

// HistoryConfig holds settings for the search history store.
type HistoryConfig struct {
	// Path is the SQLite database file path (default "history/searches.db").
	Path string `json:"path" yaml:"path"`

	// Limit is the maximum number of entries returned by a listing
	// (default 10).
	Limit int `json:"limit" yaml:"limit"`
}

// Config groups all stage configurations.
type Config struct {
	Feed       FeedConfig       `json:"feed" yaml:"feed"`
	Summarizer SummarizerConfig `json:"summarizer" yaml:"summarizer"`
	Server     ServerConfig     `json:"server" yaml:"server"`
	History    HistoryConfig    `json:"history" yaml:"history"`
}
