package classify

import (
	"math"
	"strings"
)

// highRiskTerm is a standalone keyword with a risk multiplier, matched
// by substring containment against folded input.
type highRiskTerm struct {
	term   string
	factor float64
}

// highRiskTerms is evaluated in this fixed order. All factors exceed
// 1.0, so with per-step clamping the final risk does not depend on the
// order, but the fixed slice keeps runs reproducible.
var highRiskTerms = []highRiskTerm{
	{"inspector", 2.5},
	{"funcionario", 2.0},
	{"regalito", 2.5},
	{"consultoria", 2.0},
	{"viaticos", 1.8},
	{"por izquierda", 2.5},
	{"cunado", 2.0},
	{"hermano", 2.2},
	{"arreglar", 1.5},
}

// Scorer combines reference lookups, marker weights and high-risk
// keywords into a risk level and confidence. The reference list is
// immutable after construction; iteration order is dataset load order
// and decides first-match-wins ties.
type Scorer struct {
	refs []scoredRef
}

type scoredRef struct {
	folded string
	risk   int
}

// NewScorer builds a scorer over the folded reference phrases
func NewScorer(phrases []string, risks []int) *Scorer {
	refs := make([]scoredRef, len(phrases))
	for i, p := range phrases {
		refs[i] = scoredRef{folded: Fold(p), risk: risks[i]}
	}
	return &Scorer{refs: refs}
}

// Score computes (risk level, confidence) for folded text with its
// extracted markers. Steps, in strict order:
//
//  1. Exact/substring reference match short-circuits with the stored
//     risk level and confidence 0.95. Curated data beats heuristics.
//  2. Each matched marker multiplies the base risk by its weight
//     (clamped to 5) and adds 0.1 confidence.
//  3. Each high-risk keyword present multiplies by its factor (clamped
//     to 5) and adds 0.15 confidence.
//
// Multiplicative combination lets several weak signals compound into a
// high score without any single signal being decisive.
func (s *Scorer) Score(folded string, markers []string) (int, float64) {
	for _, ref := range s.refs {
		if strings.Contains(folded, ref.folded) || strings.Contains(ref.folded, folded) {
			return ref.risk, 0.95
		}
	}

	baseRisk := 1.0
	confidence := 0.5

	for _, m := range markers {
		baseRisk = math.Min(5, baseRisk*MarkerWeight(m))
		confidence += 0.1
	}

	for _, t := range highRiskTerms {
		if strings.Contains(folded, t.term) {
			baseRisk = math.Min(5, baseRisk*t.factor)
			confidence += 0.15
		}
	}

	risk := int(math.Round(baseRisk))
	if risk < 1 {
		risk = 1
	}
	if risk > 5 {
		risk = 5
	}
	if confidence > 1.0 {
		confidence = 1.0
	}

	return risk, confidence
}
