// Package enhance layers optional remote AI analysis on top of the
// local classifier. The local result is always computed first; remote
// analysis refines annotations and confidence but a remote failure
// never fails a classification.
package enhance

import (
	"context"

	"github.com/integridai/culturacheck/internal/model"
)

// Provider is a remote analysis backend
type Provider interface {
	// Name returns the provider name
	Name() string

	// Analyze requests a structured compliance analysis for the text
	Analyze(ctx context.Context, req Request) (*Analysis, error)

	// IsAvailable checks whether the provider is configured and reachable
	IsAvailable(ctx context.Context) bool
}

// Request is the input to a remote analysis call
type Request struct {
	// Text is the phrase under analysis
	Text string

	// Local is the already-computed local classification, given to the
	// provider as context
	Local *model.ClassificationResult

	// Sector selects sector-specific prompt context (construccion,
	// salud, energia, finanzas); empty means general
	Sector string

	// Model overrides the configured model for this call
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// Analysis is the structured response expected from every provider
type Analysis struct {
	RiskLevel            int      `json:"risk_level"`
	Category             string   `json:"category"`
	LegalArticles        []string `json:"legal_articles"`
	CulturalSignificance string   `json:"cultural_significance"`
	InternationalGap     string   `json:"international_tools_gap"`
	RiskReasoning        []string `json:"risk_reasoning"`
	Remediation          []string `json:"remediation"`

	// Filled by the provider, not the model response
	Model      string `json:"-"`
	TokensUsed int    `json:"-"`
}

// Config holds provider configuration
type Config struct {
	// Provider name: "openai", "moonshot", "ollama", "" (disabled)
	Provider string

	// Model name, provider-specific
	Model string

	// APIKey for hosted providers
	APIKey string

	// BaseURL for custom endpoints
	BaseURL string

	// Timeout in seconds for one API request
	Timeout int

	// MaxTokens for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults with enhancement disabled
func DefaultConfig() Config {
	return Config{
		Provider:  "",
		Timeout:   30,
		MaxTokens: 1000,
	}
}

// ConfigFromModel converts the runtime LLM configuration
func ConfigFromModel(mc model.LLMConfig) Config {
	return Config{
		Provider:  mc.Provider,
		Model:     mc.Model,
		APIKey:    mc.APIKey,
		BaseURL:   mc.BaseURL,
		Timeout:   mc.Timeout,
		MaxTokens: mc.MaxTokens,
	}
}
