package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"

	"github.com/integridai/culturacheck/internal/cache"
	"github.com/integridai/culturacheck/internal/classify"
	"github.com/integridai/culturacheck/internal/dataset"
	"github.com/integridai/culturacheck/internal/enhance"
	"github.com/integridai/culturacheck/internal/model"
	"github.com/integridai/culturacheck/internal/worker"
)

// Flags shared by check, batch and scan
var (
	datasetPath string
	sector      string
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// buildConfig resolves defaults, config file and flags into the
// runtime configuration
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if datasetPath != "" {
		cfg.Dataset.Path = datasetPath
	}
	cfg.Output.Verbose = verbose

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel

		// Get API key from environment
		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "moonshot":
			cfg.LLM.APIKey = os.Getenv("MOONSHOT_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("MOONSHOT_API_KEY environment variable not set")
			}
		case "ollama":
			// Ollama doesn't need an API key
			if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	} else {
		cfg.LLM.Provider = ""
	}

	return cfg, nil
}

// buildAnalyzer loads the dataset and assembles the classifier plus,
// when a provider is configured, the enhancer around it. A dataset
// load failure is the one fatal error.
func buildAnalyzer(cfg *model.Config, log *logrus.Logger) (*classify.Classifier, *enhance.Enhancer, error) {
	data, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("load dataset: %w", err)
	}

	classifier := classify.New(data, log)

	if cfg.LLM.Provider == "" {
		return classifier, nil, nil
	}

	provider, err := enhance.NewProvider(enhance.ConfigFromModel(cfg.LLM))
	if err != nil {
		return nil, nil, err
	}

	var results cache.Cache
	if cfg.Cache.Enabled {
		results = cache.NewMemory(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	}

	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)

	return classifier, enhance.New(classifier, provider, results, limiter, log), nil
}

// analyzerRunner adapts the classifier or enhancer to the worker pool
func analyzerRunner(classifier *classify.Classifier, enhancer *enhance.Enhancer) worker.Runner {
	if enhancer != nil {
		return worker.RunnerFunc(func(ctx context.Context, text, sector string) (*model.ClassificationResult, error) {
			return enhancer.Analyze(ctx, text, sector)
		})
	}
	return worker.RunnerFunc(func(ctx context.Context, text, sector string) (*model.ClassificationResult, error) {
		return classifier.Classify(text)
	})
}
