package enhance

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/integridai/culturacheck/internal/cache"
	"github.com/integridai/culturacheck/internal/classify"
	"github.com/integridai/culturacheck/internal/dataset"
)

type mockProvider struct {
	analysis *Analysis
	err      error
	calls    int
}

func (m *mockProvider) Name() string { return "mock" }

func (m *mockProvider) IsAvailable(ctx context.Context) bool { return true }

func (m *mockProvider) Analyze(ctx context.Context, req Request) (*Analysis, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.analysis, nil
}

func newTestEnhancer(t *testing.T, provider Provider, results cache.Cache) *Enhancer {
	t.Helper()

	d, err := dataset.Load("")
	if err != nil {
		t.Fatalf("load dataset: %v", err)
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	return New(classify.New(d, log), provider, results, nil, log)
}

func TestEnhancer_HybridMerge(t *testing.T) {
	provider := &mockProvider{
		analysis: &Analysis{
			RiskLevel:            4,
			Category:             "CONFLICTO_INTERES",
			LegalArticles:        []string{"Art. 22 Ley 27.401", "Art. 3 Ley 27.401"},
			CulturalSignificance: "Vínculo familiar con proveedor directo",
			Remediation:          []string{"Declarar el vínculo en el registro de conflictos"},
			Model:                "mock-v1",
		},
	}
	e := newTestEnhancer(t, provider, nil)

	result, err := e.Analyze(context.Background(), "Mi cuñado tiene una empresa", "construccion")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if provider.calls != 1 {
		t.Fatalf("provider calls = %d, want 1", provider.calls)
	}
	if result.RiskLevel != 4 {
		t.Errorf("risk = %d, want remote 4", result.RiskLevel)
	}
	if result.Confidence != 0.85 {
		t.Errorf("confidence = %f, want hybrid 0.85", result.Confidence)
	}
	if result.LegalReference != "Art. 22 Ley 27.401; Art. 3 Ley 27.401" {
		t.Errorf("legal reference = %q", result.LegalReference)
	}
	if result.Enhancement == nil {
		t.Fatal("expected enhancement metadata")
	}
	if result.Enhancement.Provider != "mock" {
		t.Errorf("enhancement provider = %s", result.Enhancement.Provider)
	}
	if result.Enhancement.Routing != string(RoutingHybrid) {
		t.Errorf("routing = %s, want hybrid", result.Enhancement.Routing)
	}
	if len(result.Enhancement.Remediation) != 1 {
		t.Errorf("remediation = %v", result.Enhancement.Remediation)
	}
}

func TestEnhancer_LocalOnlySkipsProvider(t *testing.T) {
	provider := &mockProvider{analysis: &Analysis{RiskLevel: 5}}
	e := newTestEnhancer(t, provider, nil)

	result, err := e.Analyze(context.Background(), "Reunión de directorio mañana a las 10", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if provider.calls != 0 {
		t.Errorf("provider called %d times for local_only query", provider.calls)
	}
	if result.RiskLevel != 1 {
		t.Errorf("risk = %d, want local 1", result.RiskLevel)
	}
	if result.Enhancement == nil || result.Enhancement.Routing != string(RoutingLocalOnly) {
		t.Errorf("enhancement = %+v, want local_only routing", result.Enhancement)
	}
}

func TestEnhancer_ProviderFailureFallsBack(t *testing.T) {
	provider := &mockProvider{err: errors.New("api unreachable")}
	e := newTestEnhancer(t, provider, nil)

	result, err := e.Analyze(context.Background(), "Un regalito para el inspector", "")
	if err != nil {
		t.Fatalf("remote failure must not fail classification: %v", err)
	}

	if result.RiskLevel != 5 {
		t.Errorf("risk = %d, want local 5", result.RiskLevel)
	}
	if result.Enhancement == nil || result.Enhancement.Provider != "local" {
		t.Errorf("enhancement = %+v, want local fallback", result.Enhancement)
	}
}

func TestEnhancer_ExactMatchNotOverridden(t *testing.T) {
	provider := &mockProvider{analysis: &Analysis{RiskLevel: 2, Model: "mock-v1"}}
	e := newTestEnhancer(t, provider, nil)

	// Curated reference phrase: risk 5, confidence 0.95, and the
	// "por izquierda" trigger routes it to the provider anyway.
	result, err := e.Analyze(context.Background(), "Lo arreglamos por izquierda", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if provider.calls != 1 {
		t.Fatalf("provider calls = %d, want 1", provider.calls)
	}
	if result.RiskLevel != 5 {
		t.Errorf("risk = %d, curated value must win over remote", result.RiskLevel)
	}
	if result.Confidence != 0.95 {
		t.Errorf("confidence = %f, want curated 0.95", result.Confidence)
	}
}

func TestEnhancer_CacheHit(t *testing.T) {
	provider := &mockProvider{analysis: &Analysis{RiskLevel: 4, Model: "mock-v1"}}
	results := cache.NewMemory(time.Minute, time.Minute)
	e := newTestEnhancer(t, provider, results)

	first, err := e.Analyze(context.Background(), "Mi cuñado tiene una empresa", "")
	if err != nil {
		t.Fatal(err)
	}
	if first.Enhancement.CacheHit {
		t.Error("first call must not be a cache hit")
	}

	second, err := e.Analyze(context.Background(), "Mi cuñado tiene una empresa", "")
	if err != nil {
		t.Fatal(err)
	}

	if provider.calls != 1 {
		t.Errorf("provider calls = %d, want 1 (second call cached)", provider.calls)
	}
	if second.Enhancement == nil || !second.Enhancement.CacheHit {
		t.Error("second call should report cache hit")
	}
	if second.RiskLevel != first.RiskLevel {
		t.Errorf("cached risk %d != original %d", second.RiskLevel, first.RiskLevel)
	}
}

func TestParseAnalysis(t *testing.T) {
	raw := "```json\n{\"risk_level\": 4, \"category\": \"SOBORNO\", \"legal_articles\": [\"Art. 3 Ley 27.401\"]}\n```"

	a, err := parseAnalysis(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.RiskLevel != 4 || a.Category != "SOBORNO" {
		t.Errorf("unexpected analysis %+v", a)
	}
}

func TestParseAnalysis_Rejects(t *testing.T) {
	if _, err := parseAnalysis("sin json"); err == nil {
		t.Error("expected error for missing JSON")
	}
	if _, err := parseAnalysis(`{"risk_level": 9}`); err == nil {
		t.Error("expected error for out-of-range risk level")
	}
}
