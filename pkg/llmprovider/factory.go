package llmprovider

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"travel-assistant/config"
	"travel-assistant/pkg/gemini"
	"travel-assistant/pkg/openai"
)

// Provider names accepted in llm.providers[].name
const (
	ProviderGemini   = "gemini"
	ProviderOpenAI   = "openai"
	ProviderOllama   = "ollama"
	ProviderDeepSeek = "deepseek"
	ProviderQwen     = "qwen"
)

var defaultBaseURLs = map[string]string{
	ProviderOpenAI:   "https://api.openai.com/v1",
	ProviderOllama:   "http://localhost:11434/v1",
	ProviderDeepSeek: "https://api.deepseek.com/v1",
	ProviderQwen:     "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
}

// InitializeProviders creates Provider instances from config.LLMConfig.
// Returns providers sorted by priority (ascending) with disabled providers filtered out.
// Providers that fail to initialize are skipped; the returned warnings describe them.
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, []string, error) {
	if cfg == nil {
		return nil, nil, fmt.Errorf("LLM config is nil")
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var warnings []string

	for _, p := range enabledProviders {
		provider, err := createProvider(p)
		if err != nil {
			warnings = append(warnings,
				fmt.Sprintf("failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, warnings, fmt.Errorf("no providers successfully initialized: %s", strings.Join(warnings, "; "))
	}

	return providers, warnings, nil
}

// NewManagerConfig converts the string durations of config.LLMConfig.
func NewManagerConfig(cfg *config.LLMConfig) (*Config, error) {
	out := &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
	}

	var err error
	if out.RetryDelay, err = parseDuration(cfg.RetryDelay); err != nil {
		return nil, fmt.Errorf("llm.retry_delay: %w", err)
	}
	if out.MaxTotalTimeout, err = parseDuration(cfg.MaxTotalTimeout); err != nil {
		return nil, fmt.Errorf("llm.max_total_timeout: %w", err)
	}

	return out, nil
}

func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("provider %s: model is required", cfg.Name)
	}

	timeout, err := parseDuration(cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("provider %s: invalid timeout: %w", cfg.Name, err)
	}
	httpClient := &http.Client{Timeout: timeout}
	if timeout == 0 {
		httpClient.Timeout = openai.DefaultTimeout
	}

	name := strings.ToLower(cfg.Name)
	switch name {
	case ProviderGemini:
		client, err := gemini.New(gemini.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			APIURL:     cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case ProviderOpenAI, ProviderOllama, ProviderDeepSeek, ProviderQwen, "alibaba":
		if name == "alibaba" {
			name = ProviderQwen
		}
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = defaultBaseURLs[name]
		}
		client, err := openai.New(openai.Config{
			APIKey:         cfg.APIKey,
			Model:          cfg.Model,
			BaseURL:        baseURL,
			HTTPClient:     httpClient,
			AllowAnonymous: name == ProviderOllama,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", name, err)
		}
		return NewOpenAIAdapter(name, client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}
