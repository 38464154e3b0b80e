package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Embedded(t *testing.T) {
	d, err := Load("")
	if err != nil {
		t.Fatalf("load embedded dataset: %v", err)
	}

	if len(d.Phrases) != 20 {
		t.Errorf("expected 20 phrases, got %d", len(d.Phrases))
	}
	if len(d.CulturalMarkers) != 6 {
		t.Errorf("expected 6 cultural markers, got %d", len(d.CulturalMarkers))
	}
	if len(d.RiskCategories) != 8 {
		t.Errorf("expected 8 risk categories, got %d", len(d.RiskCategories))
	}
	if d.ValidationSummary.MultiModelConsensus != 0.97 {
		t.Errorf("consensus = %f, want 0.97", d.ValidationSummary.MultiModelConsensus)
	}
}

func TestLoad_PreservesPhraseOrder(t *testing.T) {
	d, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	// Tie-breaks depend on load order matching file order
	if d.Phrases[0].ID != "ar-001" {
		t.Errorf("first phrase id = %s, want ar-001", d.Phrases[0].ID)
	}
	if d.Phrases[len(d.Phrases)-1].ID != "ar-020" {
		t.Errorf("last phrase id = %s, want ar-020", d.Phrases[len(d.Phrases)-1].ID)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/frases.yaml"); err == nil {
		t.Error("expected fatal error for missing dataset file")
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("phrases: [not: valid: yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected fatal error for malformed dataset file")
	}
}

func TestLoad_RejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no phrases", "dataset_info:\n  version: x\n"},
		{"risk out of range", `
phrases:
  - id: p-1
    phrase: "algo"
    risk_level: 7
    category: SOBORNO
`},
		{"duplicate id", `
phrases:
  - id: p-1
    phrase: "algo"
    risk_level: 2
    category: SOBORNO
  - id: p-1
    phrase: "otra"
    risk_level: 3
    category: SOBORNO
`},
		{"missing category", `
phrases:
  - id: p-1
    phrase: "algo"
    risk_level: 2
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "ds.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestDataset_CategoryLabel(t *testing.T) {
	d, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	if got := d.CategoryLabel("SOBORNO"); got != "Soborno" {
		t.Errorf("label = %q, want Soborno", got)
	}
	if got := d.CategoryLabel("DESCONOCIDA"); got != "DESCONOCIDA" {
		t.Errorf("unknown category label = %q, want code itself", got)
	}
}
