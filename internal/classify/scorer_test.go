package classify

import (
	"testing"
)

func newTestScorer() *Scorer {
	return NewScorer(
		[]string{"Lo arreglamos por izquierda", "Un matecito mientras charlamos el contrato"},
		[]int{5, 2},
	)
}

func TestScorer_Range(t *testing.T) {
	s := newTestScorer()

	inputs := []string{
		"texto neutro sin riesgo",
		"regalito inspector funcionario cuñado hermano por izquierda",
		"dale che un asadito con mi primo y el inspector de viáticos",
	}

	for _, in := range inputs {
		folded := Fold(in)
		risk, conf := s.Score(folded, ExtractMarkers(folded))
		if risk < 1 || risk > 5 {
			t.Errorf("Score(%q): risk %d out of [1,5]", in, risk)
		}
		if conf < 0 || conf > 1 {
			t.Errorf("Score(%q): confidence %f out of [0,1]", in, conf)
		}
	}
}

func TestScorer_ExactMatchShortCircuit(t *testing.T) {
	s := newTestScorer()

	// Case-insensitive exact match returns the stored risk level with
	// fixed 0.95 confidence, ignoring marker and keyword signals.
	folded := Fold("LO ARREGLAMOS POR IZQUIERDA")
	risk, conf := s.Score(folded, ExtractMarkers(folded))

	if risk != 5 {
		t.Errorf("risk = %d, want stored 5", risk)
	}
	if conf != 0.95 {
		t.Errorf("confidence = %f, want 0.95", conf)
	}

	// The low-risk stored phrase wins over its own keyword signals too
	folded = Fold("un matecito mientras charlamos el contrato")
	risk, conf = s.Score(folded, ExtractMarkers(folded))
	if risk != 2 || conf != 0.95 {
		t.Errorf("got (%d, %f), want stored (2, 0.95)", risk, conf)
	}
}

func TestScorer_SubstringMatchBothDirections(t *testing.T) {
	s := newTestScorer()

	// Reference phrase contained in longer input
	folded := Fold("che, lo arreglamos por izquierda y listo")
	if risk, conf := s.Score(folded, nil); risk != 5 || conf != 0.95 {
		t.Errorf("phrase-in-text: got (%d, %f), want (5, 0.95)", risk, conf)
	}

	// Input contained in a reference phrase
	folded = Fold("arreglamos por izquierda")
	if risk, conf := s.Score(folded, nil); risk != 5 || conf != 0.95 {
		t.Errorf("text-in-phrase: got (%d, %f), want (5, 0.95)", risk, conf)
	}
}

func TestScorer_MarkerAccumulation(t *testing.T) {
	s := newTestScorer()

	// familia (1.5) and keyword "cunado" (2.0): 1 * 1.5 * 2.0 = 3.0
	folded := Fold("Mi cuñado tiene una empresa")
	risk, conf := s.Score(folded, ExtractMarkers(folded))

	if risk != 3 {
		t.Errorf("risk = %d, want 3", risk)
	}
	if diff := conf - 0.75; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("confidence = %f, want 0.75", conf)
	}
}

func TestScorer_KeywordClamp(t *testing.T) {
	s := newTestScorer()

	// regalito (x2.5) + inspector (x2.5) drive the base past the clamp
	folded := Fold("Un regalito para el inspector")
	risk, conf := s.Score(folded, ExtractMarkers(folded))

	if risk != 5 {
		t.Errorf("risk = %d, want clamped 5", risk)
	}
	if conf != 1.0 {
		t.Errorf("confidence = %f, want clamped 1.0", conf)
	}
}

func TestScorer_NoSignals(t *testing.T) {
	s := newTestScorer()

	folded := Fold("Reunión de directorio mañana a las 10")
	risk, conf := s.Score(folded, ExtractMarkers(folded))

	if risk != 1 {
		t.Errorf("risk = %d, want 1", risk)
	}
	if conf != 0.5 {
		t.Errorf("confidence = %f, want base 0.5", conf)
	}
}

func TestScorer_KeywordMonotonicity(t *testing.T) {
	s := newTestScorer()

	base := "la reunion con el equipo del proyecto"
	withKeyword := base + " y el inspector"

	foldedBase := Fold(base)
	foldedKw := Fold(withKeyword)

	riskBase, _ := s.Score(foldedBase, ExtractMarkers(foldedBase))
	riskKw, _ := s.Score(foldedKw, ExtractMarkers(foldedKw))

	if riskKw < riskBase {
		t.Errorf("adding high-risk keyword decreased risk: %d -> %d", riskBase, riskKw)
	}
}
