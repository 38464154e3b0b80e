package enhance

import (
	"fmt"
	"strings"
)

// NewProvider creates a provider from configuration. An empty provider
// name disables enhancement and returns (nil, nil).
func NewProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIProvider(config)

	case "moonshot":
		return NewMoonshotProvider(config)

	case "ollama":
		return NewOllamaProvider(config)

	case "":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown provider: %s (supported: openai, moonshot, ollama)", config.Provider)
	}
}
