package model

// Category is one of the fixed compliance-risk classification codes
// mapped to Ley 27.401
type Category string

const (
	CategorySoborno            Category = "SOBORNO"             // Bribery of officials
	CategoryGastosExcesivos    Category = "GASTOS_EXCESIVOS"    // Excessive hospitality spending
	CategoryConflictoInteres   Category = "CONFLICTO_INTERES"   // Family/interest conflicts
	CategoryFraudeGastos       Category = "FRAUDE_GASTOS"       // Expense fraud
	CategoryTraficoInfluencias Category = "TRAFICO_INFLUENCIAS" // Influence trafficking
	CategoryFraudeFiscal       Category = "FRAUDE_FISCAL"       // Tax/invoice fraud
	CategoryAccionClandestina  Category = "ACCION_CLANDESTINA"  // Under-the-table arrangements
	CategoryCulturaRiesgo      Category = "CULTURA_RIESGO"      // Generic cultural risk (fallback)
)

// Marker names for the six Argentine cultural markers, in the fixed
// extraction order. The order has no scoring effect but keeps output
// reproducible.
const (
	MarkerDiminutivo    = "diminutivo_argentino"
	MarkerFamilia       = "familia_extendida"
	MarkerEufemismo     = "eufemismo_local"
	MarkerInformalidad  = "informalidad_linguistica"
	MarkerMinimizacion  = "minimizacion_cultural"
	MarkerTradicion     = "tradicion_argentina"
)

// ClassificationResult is the output of one classification call
type ClassificationResult struct {
	Phrase          string   `json:"phrase"`                     // Original input text, verbatim
	RiskLevel       int      `json:"risk_level"`                 // 1-5 scale
	Category        Category `json:"category"`                   // One of the 8 category codes
	CulturalMarkers []string `json:"cultural_markers"`           // Markers found, in extraction order
	LegalReference  string   `json:"legal_reference"`            // Ley 27.401 citation
	Explanation     string   `json:"explanation"`                // Human-readable reasoning
	CompetitiveNote string   `json:"competitive_note,omitempty"` // Why generic tooling misses this
	Confidence      float64  `json:"confidence"`                 // 0.0-1.0
	Validation      string   `json:"ai_validation,omitempty"`    // Provenance of the assessment

	// Enhancement fields, populated only when a remote provider ran
	Enhancement *Enhancement `json:"enhancement,omitempty"`
}

// Enhancement carries the optional remote-analysis refinement.
// It never replaces the local classification, only annotates it.
type Enhancement struct {
	Provider         string   `json:"provider"`            // openai, moonshot, ollama
	Model            string   `json:"model,omitempty"`     // Model name
	Routing          string   `json:"routing"`             // local_only, hybrid, remote_priority
	LegalArticles    []string `json:"legal_articles,omitempty"`
	RiskReasoning    []string `json:"risk_reasoning,omitempty"`
	Remediation      []string `json:"remediation,omitempty"`
	ProcessingTimeMS float64  `json:"processing_time_ms"`
	CacheHit         bool     `json:"cache_hit"`
}

// Stats summarizes the loaded dataset and taxonomy
type Stats struct {
	DatasetVersion  string  `json:"dataset_version"`
	TotalPhrases    int     `json:"total_phrases"`
	CulturalMarkers int     `json:"cultural_markers"`
	RiskCategories  int     `json:"risk_categories"`
	Consensus       float64 `json:"multi_model_consensus"`
	License         string  `json:"license"`
}
