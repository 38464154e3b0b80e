// Package dataset loads and holds the curated reference dataset of
// Argentine compliance phrases. The dataset is read once at startup and
// treated as immutable afterwards.
package dataset

import (
	"fmt"

	"github.com/integridai/culturacheck/internal/model"
)

// ReferencePhrase is one curated entry with a pre-assigned risk
// assessment and explanatory annotations.
type ReferencePhrase struct {
	ID              string         `yaml:"id" json:"id"`
	Phrase          string         `yaml:"phrase" json:"phrase"`
	RiskLevel       int            `yaml:"risk_level" json:"risk_level"`
	Category        model.Category `yaml:"category" json:"category"`
	CulturalMarkers []string       `yaml:"cultural_markers" json:"cultural_markers"`
	LegalReference  string         `yaml:"legal_reference" json:"legal_reference"`
	Explanation     string         `yaml:"explanation" json:"explanation"`
	CompetitiveNote string         `yaml:"competitive_note" json:"competitive_note"`
	Validation      string         `yaml:"ai_validation,omitempty" json:"ai_validation,omitempty"`
}

// Info describes the dataset release
type Info struct {
	Version          string `yaml:"version"`
	License          string `yaml:"license"`
	ValidationStatus string `yaml:"validation_status"`
}

// ValidationSummary is display-only metadata about how the dataset was
// reviewed. Scoring logic never consumes it.
type ValidationSummary struct {
	MultiModelConsensus float64  `yaml:"multi_model_consensus"`
	ReviewedBy          []string `yaml:"reviewed_by"`
}

// Dataset is the parsed reference dataset. Phrases keep file order:
// first-match-wins tie-breaks depend on it.
type Dataset struct {
	Info              Info                      `yaml:"dataset_info"`
	Phrases           []ReferencePhrase         `yaml:"phrases"`
	CulturalMarkers   map[string]string         `yaml:"cultural_markers"`
	RiskCategories    map[model.Category]string `yaml:"risk_categories"`
	ValidationSummary ValidationSummary         `yaml:"validation_summary"`
}

// Validate checks structural invariants after load
func (d *Dataset) Validate() error {
	if len(d.Phrases) == 0 {
		return fmt.Errorf("dataset contains no phrases")
	}

	seen := make(map[string]bool, len(d.Phrases))
	for i, p := range d.Phrases {
		if p.ID == "" {
			return fmt.Errorf("phrase %d: missing id", i)
		}
		if seen[p.ID] {
			return fmt.Errorf("phrase %d: duplicate id %q", i, p.ID)
		}
		seen[p.ID] = true

		if p.Phrase == "" {
			return fmt.Errorf("phrase %s: empty text", p.ID)
		}
		if p.RiskLevel < 1 || p.RiskLevel > 5 {
			return fmt.Errorf("phrase %s: risk_level %d out of range [1,5]", p.ID, p.RiskLevel)
		}
		if p.Category == "" {
			return fmt.Errorf("phrase %s: missing category", p.ID)
		}
	}

	return nil
}

// CategoryLabel returns the human label for a category code, falling
// back to the code itself when the taxonomy does not define one.
func (d *Dataset) CategoryLabel(c model.Category) string {
	if label, ok := d.RiskCategories[c]; ok {
		return label
	}
	return string(c)
}

// Stats summarizes the loaded dataset
func (d *Dataset) Stats() model.Stats {
	return model.Stats{
		DatasetVersion:  d.Info.Version,
		TotalPhrases:    len(d.Phrases),
		CulturalMarkers: len(d.CulturalMarkers),
		RiskCategories:  len(d.RiskCategories),
		Consensus:       d.ValidationSummary.MultiModelConsensus,
		License:         d.Info.License,
	}
}
