package enhance

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/integridai/culturacheck/internal/cache"
	"github.com/integridai/culturacheck/internal/classify"
	"github.com/integridai/culturacheck/internal/model"
)

// Enhancer orchestrates local classification plus optional remote
// refinement. With a nil provider it degrades to pure local analysis
// while still recording the routing decision.
type Enhancer struct {
	classifier *classify.Classifier
	provider   Provider
	limiter    *rate.Limiter
	results    cache.Cache
	log        *logrus.Logger
}

// New creates an enhancer. provider, limiter and results may be nil.
func New(classifier *classify.Classifier, provider Provider, results cache.Cache, limiter *rate.Limiter, log *logrus.Logger) *Enhancer {
	if log == nil {
		log = logrus.New()
	}
	return &Enhancer{
		classifier: classifier,
		provider:   provider,
		limiter:    limiter,
		results:    results,
		log:        log,
	}
}

// Analyze classifies text and, when routing calls for it, refines the
// result with the remote provider. Remote failures fall back to the
// local result with a logged warning.
func (e *Enhancer) Analyze(ctx context.Context, text, sector string) (*model.ClassificationResult, error) {
	start := time.Now()

	cacheKey := cache.Key(text + "|" + sector)
	if e.results != nil {
		if data, found := e.results.Get(cacheKey); found {
			var cached model.ClassificationResult
			if err := json.Unmarshal(data, &cached); err == nil {
				if cached.Enhancement != nil {
					cached.Enhancement.CacheHit = true
				}
				return &cached, nil
			}
			// Unreadable entry, drop it and recompute
			e.results.Delete(cacheKey)
		}
	}

	local, err := e.classifier.Classify(text)
	if err != nil {
		return nil, err
	}

	complexity := AnalyzeComplexity(text, local.CulturalMarkers)

	if e.provider == nil || complexity.Decision == RoutingLocalOnly {
		local.Enhancement = &model.Enhancement{
			Provider:         "local",
			Routing:          string(complexity.Decision),
			ProcessingTimeMS: msSince(start),
		}
		e.store(cacheKey, local)
		return local, nil
	}

	if e.limiter != nil {
		if err := e.limiter.Wait(ctx); err != nil {
			e.log.WithError(err).Warn("rate limit wait aborted, using local result")
			local.Enhancement = &model.Enhancement{
				Provider:         "local",
				Routing:          string(complexity.Decision),
				ProcessingTimeMS: msSince(start),
			}
			return local, nil
		}
	}

	analysis, err := e.provider.Analyze(ctx, Request{
		Text:   text,
		Local:  local,
		Sector: sector,
	})
	if err != nil {
		e.log.WithError(err).WithField("provider", e.provider.Name()).
			Warn("remote analysis failed, using local result")
		local.Enhancement = &model.Enhancement{
			Provider:         "local",
			Routing:          string(complexity.Decision),
			ProcessingTimeMS: msSince(start),
		}
		return local, nil
	}

	result := e.merge(local, analysis, complexity)
	result.Enhancement.ProcessingTimeMS = msSince(start)

	e.store(cacheKey, result)
	return result, nil
}

// merge folds the remote analysis into the local result. Curated
// exact-match results keep their risk and 0.95 confidence: remote
// analysis never overrides the reference dataset.
func (e *Enhancer) merge(local *model.ClassificationResult, analysis *Analysis, complexity Complexity) *model.ClassificationResult {
	result := *local

	exactMatch := local.Confidence == 0.95

	if !exactMatch && analysis.RiskLevel >= 1 && analysis.RiskLevel <= 5 {
		result.RiskLevel = analysis.RiskLevel
	}

	if !exactMatch {
		if complexity.Decision == RoutingRemotePriority {
			result.Confidence = 0.95
		} else if result.Confidence < 0.85 {
			result.Confidence = 0.85
		}
	}

	if len(analysis.LegalArticles) > 0 {
		result.LegalReference = strings.Join(analysis.LegalArticles, "; ")
	}
	if analysis.CulturalSignificance != "" {
		result.Explanation = analysis.CulturalSignificance
	}
	if analysis.InternationalGap != "" {
		result.CompetitiveNote = analysis.InternationalGap
	}
	result.Validation = fmt.Sprintf("Híbrido: patrones locales + análisis %s", e.provider.Name())

	result.Enhancement = &model.Enhancement{
		Provider:      e.provider.Name(),
		Model:         analysis.Model,
		Routing:       string(complexity.Decision),
		LegalArticles: analysis.LegalArticles,
		RiskReasoning: analysis.RiskReasoning,
		Remediation:   analysis.Remediation,
	}

	return &result
}

func (e *Enhancer) store(key string, result *model.ClassificationResult) {
	if e.results == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	e.results.Set(key, data, 0)
}

func msSince(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}
