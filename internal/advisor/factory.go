package advisor

import (
	"fmt"
	"strings"

	"github.com/psarda/clauselens/internal/model"
)

// NewProvider creates a provider from configuration. An empty provider name
// disables the advisor and returns (nil, nil).
func NewProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIProvider(config)
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown advisor provider: %s (supported: openai)", config.Provider)
	}
}

// ConfigFromModel converts model.AdvisorConfig to advisor.Config
func ConfigFromModel(mc model.AdvisorConfig) Config {
	return Config{
		Provider:          mc.Provider,
		Model:             mc.Model,
		APIKey:            mc.APIKey,
		BaseURL:           mc.BaseURL,
		Timeout:           mc.Timeout,
		MaxTokens:         mc.MaxTokens,
		RequestsPerSecond: mc.RequestsPerSecond,
		MaxClauses:        mc.MaxClauses,
	}
}
