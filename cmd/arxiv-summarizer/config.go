package main

import (
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-summarizer/internal/secrets"
	"github.com/pdiddy/arxiv-summarizer/pkg/types"
)

const (
	defaultTimeout     = 30 * time.Second
	defaultUserAgent   = "arxiv-summarizer/0.1"
	defaultAddr        = ":8080"
	defaultHistoryPath = "history/searches.db"
)

// loadConfig assembles the runtime configuration from viper, applying
// defaults and resolving the summarizer API key from loaded secrets.
func loadConfig() types.Config {
	cfg := types.Config{
		Feed: types.FeedConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("feed.timeout"),
				UserAgent: viper.GetString("feed.user_agent"),
			},
			MaxResults: viper.GetInt("feed.max_results"),
		},
		Summarizer: types.SummarizerConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("summarizer.timeout"),
				UserAgent: viper.GetString("summarizer.user_agent"),
			},
			Provider:   types.SummarizerProvider(viper.GetString("summarizer.provider")),
			Model:      viper.GetString("summarizer.model"),
			OllamaHost: viper.GetString("summarizer.ollama_host"),
			MaxLength:  viper.GetInt("summarizer.max_length"),
			MinLength:  viper.GetInt("summarizer.min_length"),
			MinInput:   viper.GetInt("summarizer.min_input"),
		},
		Server: types.ServerConfig{
			Addr: viper.GetString("server.addr"),
		},
		History: types.HistoryConfig{
			Path:  viper.GetString("history.path"),
			Limit: viper.GetInt("history.limit"),
		},
	}

	if cfg.Feed.Timeout == 0 {
		cfg.Feed.Timeout = defaultTimeout
	}
	if cfg.Feed.UserAgent == "" {
		cfg.Feed.UserAgent = defaultUserAgent
	}
	if cfg.Summarizer.UserAgent == "" {
		cfg.Summarizer.UserAgent = defaultUserAgent
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = defaultAddr
	}
	if cfg.History.Path == "" {
		cfg.History.Path = defaultHistoryPath
	}

	switch cfg.Summarizer.Provider {
	case types.ProviderOpenAI:
		cfg.Summarizer.APIKey = secrets.Resolve(loadedSecrets, "openai-api-key", "OPENAI_API_KEY")
	case types.ProviderCohere:
		cfg.Summarizer.APIKey = secrets.Resolve(loadedSecrets, "cohere-api-key", "COHERE_API_KEY")
	}

	return cfg
}
