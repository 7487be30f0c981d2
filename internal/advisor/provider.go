// Package advisor generates optional plain-language advice about analyzed
// clauses through an external text-generation provider.
//
// CRITICAL: advisor output never affects the numeric risk scores. Any
// provider failure substitutes the static fallback text and the analysis
// continues with the core's output untouched.
package advisor

import "context"

// Provider is a text-generation backend
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete sends one system+user exchange and returns the raw reply
	Complete(ctx context.Context, system, user string, maxTokens int) (string, error)
}

// Config holds advisor provider configuration
type Config struct {
	Provider          string  // "openai" or "" (disabled)
	Model             string
	APIKey            string
	BaseURL           string  // Custom endpoint, e.g. an OpenAI-compatible proxy
	Timeout           int     // Seconds per request
	MaxTokens         int
	RequestsPerSecond float64 // Client-side rate limit toward the API
	MaxClauses        int     // Analyze at most N highest-risk clauses
}

// DefaultConfig returns sensible defaults with the advisor disabled
func DefaultConfig() Config {
	return Config{
		Provider:          "",
		Timeout:           30,
		MaxTokens:         800,
		RequestsPerSecond: 2,
		MaxClauses:        5,
	}
}
