package enhance

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const (
	moonshotBaseURL      = "https://api.moonshot.cn/v1"
	moonshotDefaultModel = "moonshot-v1-8k"
)

// OpenAIProvider talks to any OpenAI-compatible chat completion API.
// Moonshot exposes the same protocol, so the "moonshot" provider is
// this client pointed at the Moonshot base URL.
type OpenAIProvider struct {
	client *openai.Client
	config Config
	name   string
}

// NewOpenAIProvider creates an OpenAI provider
func NewOpenAIProvider(config Config) (*OpenAIProvider, error) {
	return newCompatibleProvider(config, "openai", "", openai.GPT4oMini)
}

// NewMoonshotProvider creates a Moonshot provider over the
// OpenAI-compatible endpoint
func NewMoonshotProvider(config Config) (*OpenAIProvider, error) {
	return newCompatibleProvider(config, "moonshot", moonshotBaseURL, moonshotDefaultModel)
}

func newCompatibleProvider(config Config, name, defaultBaseURL, defaultModel string) (*OpenAIProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("%s API key is required", name)
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	switch {
	case config.BaseURL != "":
		clientConfig.BaseURL = config.BaseURL
	case defaultBaseURL != "":
		clientConfig.BaseURL = defaultBaseURL
	}

	if config.Model == "" {
		config.Model = defaultModel
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
		name:   name,
	}, nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return p.name
}

// IsAvailable checks the API with a lightweight model listing
func (p *OpenAIProvider) IsAvailable(ctx context.Context) bool {
	_, err := p.client.ListModels(ctx)
	return err == nil
}

// Analyze requests a structured compliance analysis
func (p *OpenAIProvider) Analyze(ctx context.Context, req Request) (*Analysis, error) {
	model := req.Model
	if model == "" {
		model = p.config.Model
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = p.config.MaxTokens
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		MaxTokens:   maxTokens,
		Temperature: 0.2,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "Respondés únicamente con un objeto JSON válido, sin texto adicional.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildPrompt(req),
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%s chat completion: %w", p.name, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%s returned no choices", p.name)
	}

	analysis, err := parseAnalysis(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, fmt.Errorf("%s response: %w", p.name, err)
	}

	analysis.Model = model
	analysis.TokensUsed = resp.Usage.TotalTokens

	return analysis, nil
}
