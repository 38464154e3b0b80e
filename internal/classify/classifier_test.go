package classify

import (
	"io"
	"reflect"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/integridai/culturacheck/internal/dataset"
	"github.com/integridai/culturacheck/internal/model"
)

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()

	d, err := dataset.Load("")
	if err != nil {
		t.Fatalf("load embedded dataset: %v", err)
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	return New(d, log)
}

func TestClassify_HighRiskScenario(t *testing.T) {
	c := newTestClassifier(t)

	result, err := c.Classify("Un regalito para el inspector")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.RiskLevel != 5 {
		t.Errorf("risk = %d, want 5", result.RiskLevel)
	}
	if result.Category != model.CategorySoborno {
		t.Errorf("category = %s, want SOBORNO", result.Category)
	}

	foundDiminutive := false
	for _, m := range result.CulturalMarkers {
		if m == model.MarkerDiminutivo {
			foundDiminutive = true
		}
	}
	if !foundDiminutive {
		t.Errorf("markers %v missing %s", result.CulturalMarkers, model.MarkerDiminutivo)
	}
}

func TestClassify_NeutralScenario(t *testing.T) {
	c := newTestClassifier(t)

	result, err := c.Classify("Reunión de directorio mañana a las 10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.RiskLevel != 1 {
		t.Errorf("risk = %d, want 1", result.RiskLevel)
	}
	if result.Category != model.CategoryCulturaRiesgo {
		t.Errorf("category = %s, want CULTURA_RIESGO fallback", result.Category)
	}
	if result.Confidence != 0.5 {
		t.Errorf("confidence = %f, want 0.5", result.Confidence)
	}
	if len(result.CulturalMarkers) != 0 {
		t.Errorf("expected no markers, got %v", result.CulturalMarkers)
	}
}

func TestClassify_FamilyConflictScenario(t *testing.T) {
	c := newTestClassifier(t)

	result, err := c.Classify("Mi cuñado tiene una empresa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.RiskLevel != 3 {
		t.Errorf("risk = %d, want 3 (1 x 1.5 x 2.0)", result.RiskLevel)
	}
	if result.Category != model.CategoryConflictoInteres {
		t.Errorf("category = %s, want CONFLICTO_INTERES", result.Category)
	}

	want := []string{model.MarkerFamilia}
	if !reflect.DeepEqual(result.CulturalMarkers, want) {
		t.Errorf("markers = %v, want %v", result.CulturalMarkers, want)
	}
}

func TestClassify_ExactMatchUsesCuratedData(t *testing.T) {
	c := newTestClassifier(t)

	// "Lo arreglamos por izquierda" is a curated reference phrase
	result, err := c.Classify("Lo arreglamos por izquierda")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Confidence != 0.95 {
		t.Errorf("confidence = %f, want 0.95 on exact match", result.Confidence)
	}
	if result.RiskLevel != 5 {
		t.Errorf("risk = %d, want stored 5", result.RiskLevel)
	}
	if result.LegalReference != "Art. 2 Ley 27.401" {
		t.Errorf("legal reference = %q, want curated citation", result.LegalReference)
	}
	if result.Explanation == genericExplanation {
		t.Error("expected curated explanation, got generic fallback")
	}
}

func TestClassify_Idempotent(t *testing.T) {
	c := newTestClassifier(t)

	first, err := c.Classify("Dale que lo gestionamos con mi primo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := c.Classify("Dale que lo gestionamos con mi primo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("classification not idempotent:\n%+v\n%+v", first, second)
	}
}

func TestClassify_InvalidInput(t *testing.T) {
	c := newTestClassifier(t)

	if _, err := c.Classify(""); err == nil {
		t.Error("expected error for empty input")
	}
	if _, err := c.Classify("   \t  "); err == nil {
		t.Error("expected error for whitespace-only input")
	}
	if _, err := c.Classify("frase rota \xff\xfe"); err == nil {
		t.Error("expected error for invalid UTF-8 input")
	}
}

func TestClassifyBatch_PartialFailure(t *testing.T) {
	c := newTestClassifier(t)

	texts := []string{
		"Un asadito con el cliente nuevo",
		"", // malformed, must be dropped without aborting
		"Mi hermano revisa las facturas",
	}

	results := c.ClassifyBatch(texts)

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Phrase != texts[0] {
		t.Errorf("result[0] = %q, want %q", results[0].Phrase, texts[0])
	}
	if results[1].Phrase != texts[2] {
		t.Errorf("result[1] = %q, want %q", results[1].Phrase, texts[2])
	}
}

func TestClassify_IndependentInstances(t *testing.T) {
	// Two classifiers over different datasets produce independent
	// exact-match results.
	d1 := &dataset.Dataset{
		Info: dataset.Info{Version: "test-a"},
		Phrases: []dataset.ReferencePhrase{
			{ID: "a-1", Phrase: "frase de prueba interna", RiskLevel: 2, Category: model.CategoryCulturaRiesgo},
		},
	}
	d2 := &dataset.Dataset{
		Info: dataset.Info{Version: "test-b"},
		Phrases: []dataset.ReferencePhrase{
			{ID: "b-1", Phrase: "frase de prueba interna", RiskLevel: 5, Category: model.CategorySoborno},
		},
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	c1 := New(d1, log)
	c2 := New(d2, log)

	r1, err := c1.Classify("frase de prueba interna")
	if err != nil {
		t.Fatal(err)
	}
	r2, err := c2.Classify("frase de prueba interna")
	if err != nil {
		t.Fatal(err)
	}

	if r1.RiskLevel != 2 || r2.RiskLevel != 5 {
		t.Errorf("instances not independent: got %d and %d", r1.RiskLevel, r2.RiskLevel)
	}
}

func TestPredictCategory_FirstMatchWins(t *testing.T) {
	// Text with both a bribery term and a family term resolves to the
	// earlier SOBORNO rule.
	folded := Fold("el inspector es hermano del gerente")
	if got := PredictCategory(folded); got != model.CategorySoborno {
		t.Errorf("category = %s, want SOBORNO (priority order)", got)
	}
}

func TestPredictCategory_AllRules(t *testing.T) {
	tests := []struct {
		text string
		want model.Category
	}{
		{"hay que agilizar el permiso", model.CategorySoborno},
		{"la hospitalidad del evento", model.CategoryGastosExcesivos},
		{"es una empresa de la familia", model.CategoryConflictoInteres},
		{"cargalo a la cuenta de la obra", model.CategoryFraudeGastos},
		{"tengo un contacto en el ministerio", model.CategoryTraficoInfluencias},
		{"hay que facturar antes del cierre", model.CategoryFraudeFiscal},
		{"lo podemos gestionar nosotros", model.CategoryAccionClandestina},
		{"presentamos el informe trimestral", model.CategoryCulturaRiesgo},
	}

	for _, tt := range tests {
		if got := PredictCategory(Fold(tt.text)); got != tt.want {
			t.Errorf("PredictCategory(%q) = %s, want %s", tt.text, got, tt.want)
		}
	}
}
