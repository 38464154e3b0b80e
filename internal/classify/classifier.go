// Package classify implements the cultural-marker pattern matcher and
// risk-scoring engine for Argentine business phrases under Ley 27.401.
// One Classifier instance owns one immutable reference dataset;
// instances with different datasets coexist and score independently.
package classify

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/integridai/culturacheck/internal/dataset"
	"github.com/integridai/culturacheck/internal/model"
)

const (
	genericExplanation = "Análisis basado en patrones culturales argentinos"
	genericNote        = "Dataset local detecta matices culturales que herramientas genéricas no pueden identificar"
)

// Classifier scores Spanish business text for compliance risk
type Classifier struct {
	data   *dataset.Dataset
	scorer *Scorer
	folded []string // reference phrases, folded, in load order
	log    *logrus.Logger
}

// New builds a classifier over an already-loaded dataset. The dataset
// is treated as read-only from here on.
func New(d *dataset.Dataset, log *logrus.Logger) *Classifier {
	if log == nil {
		log = logrus.New()
	}

	phrases := make([]string, len(d.Phrases))
	risks := make([]int, len(d.Phrases))
	folded := make([]string, len(d.Phrases))
	for i, p := range d.Phrases {
		phrases[i] = p.Phrase
		risks[i] = p.RiskLevel
		folded[i] = Fold(p.Phrase)
	}

	return &Classifier{
		data:   d,
		scorer: NewScorer(phrases, risks),
		folded: folded,
		log:    log,
	}
}

// Classify scores a single phrase. Empty or malformed input surfaces
// an error to the caller; it never silently defaults.
func (c *Classifier) Classify(text string) (*model.ClassificationResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("classify: empty input")
	}
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("classify: input is not valid UTF-8")
	}

	folded := Fold(text)

	markers := ExtractMarkers(folded)
	risk, confidence := c.scorer.Score(folded, markers)
	category := PredictCategory(folded)

	result := &model.ClassificationResult{
		Phrase:          text,
		RiskLevel:       risk,
		Category:        category,
		CulturalMarkers: markers,
		LegalReference:  c.data.CategoryLabel(category),
		Explanation:     genericExplanation,
		CompetitiveNote: c.competitiveNote(folded),
		Confidence:      confidence,
		Validation:      fmt.Sprintf("Consenso multi-modelo: %.0f%%", c.data.ValidationSummary.MultiModelConsensus*100),
	}

	// Recover curated annotations from the first reference phrase
	// contained in the input, dataset order.
	for i, ref := range c.folded {
		if strings.Contains(folded, ref) {
			p := c.data.Phrases[i]
			result.LegalReference = p.LegalReference
			result.Explanation = p.Explanation
			if p.Validation != "" {
				result.Validation = p.Validation
			}
			break
		}
	}

	return result, nil
}

// ClassifyBatch classifies each input independently. A failure on one
// item is logged and the item dropped; remaining items still run.
// Output order follows input order, length <= len(texts).
func (c *Classifier) ClassifyBatch(texts []string) []*model.ClassificationResult {
	results := make([]*model.ClassificationResult, 0, len(texts))
	for _, text := range texts {
		result, err := c.Classify(text)
		if err != nil {
			c.log.WithError(err).WithField("input", text).Error("classification failed, item dropped")
			continue
		}
		results = append(results, result)
	}
	return results
}

// competitiveNote explains why generic tooling would miss the phrase.
// Curated note when a reference phrase matches, pattern-based fallback
// otherwise.
func (c *Classifier) competitiveNote(folded string) string {
	for i, ref := range c.folded {
		if strings.Contains(folded, ref) {
			if note := c.data.Phrases[i].CompetitiveNote; note != "" {
				return note
			}
			break
		}
	}

	switch {
	case strings.Contains(folded, "regalito"):
		return "Herramientas internacionales interpretan como 'small gift' - Dataset lo marca como soborno crítico"
	case strings.Contains(folded, "por izquierda"):
		return "Sin traducción literal - Herramientas internacionales: falso negativo garantizado"
	case strings.Contains(folded, "cunado") || strings.Contains(folded, "hermano"):
		return "Peso cultural de lazos familiares no comprendido por sistemas internacionales"
	default:
		return genericNote
	}
}

// Dataset exposes the read-only reference dataset
func (c *Classifier) Dataset() *dataset.Dataset {
	return c.data
}

// Stats reports dataset statistics for display
func (c *Classifier) Stats() model.Stats {
	return c.data.Stats()
}
