package llmprovider

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"student-task-priority/config"
	"student-task-priority/pkg/gemini"
	"student-task-priority/pkg/openaicompat"
)

// ProviderSpec describes a single provider instance.
type ProviderSpec struct {
	Name    string
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// InitializeProviders creates Provider instances from config.LLMConfig
// Returns providers sorted by priority (ascending) with disabled providers filtered out
// Skips providers that fail to initialize instead of failing the entire service
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	// Filter enabled providers
	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var initErrors []string

	for _, p := range enabledProviders {
		timeout, _ := time.ParseDuration(p.Timeout)
		provider, err := NewProvider(ProviderSpec{
			Name:    p.Name,
			APIKey:  p.APIKey,
			Model:   p.Model,
			BaseURL: p.BaseURL,
			Timeout: timeout,
		})
		if err != nil {
			initErrors = append(initErrors, fmt.Sprintf("%s (priority %d): %v", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	return providers, nil
}

// NewProvider creates a concrete provider from spec.
// An empty name selects the OpenAI protocol.
func NewProvider(spec ProviderSpec) (Provider, error) {
	if strings.TrimSpace(spec.APIKey) == "" {
		return nil, fmt.Errorf("provider %s: %w", spec.Name, ErrMissingAPIKey)
	}

	var httpClient *http.Client
	if spec.Timeout > 0 {
		httpClient = &http.Client{Timeout: spec.Timeout}
	}

	name := strings.ToLower(strings.TrimSpace(spec.Name))
	switch name {
	case "gemini", "google":
		client, err := gemini.New(gemini.Config{
			APIKey:     spec.APIKey,
			Model:      spec.Model,
			APIURL:     spec.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case "", openaicompat.VendorOpenAI, openaicompat.VendorDeepSeek, openaicompat.VendorQwen, "alibaba":
		client, err := openaicompat.New(openaicompat.Config{
			Vendor:     name,
			APIKey:     spec.APIKey,
			Model:      spec.Model,
			BaseURL:    spec.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", name, err)
		}
		return NewOpenAICompatAdapter(client), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, spec.Name)
	}
}

// ManagerConfig converts the string durations of cfg. They are validated by
// config.Validate, so unparseable values here fall back to zero.
func ManagerConfig(cfg *config.LLMConfig) *Config {
	retryDelay, _ := time.ParseDuration(cfg.RetryDelay)
	maxTotal, _ := time.ParseDuration(cfg.MaxTotalTimeout)
	return &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}
}
