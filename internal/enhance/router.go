package enhance

import (
	"strings"

	"github.com/integridai/culturacheck/internal/classify"
)

// Routing is the decision of where a query gets analyzed
type Routing string

const (
	// RoutingLocalOnly keeps the query on the local pattern engine
	RoutingLocalOnly Routing = "local_only"

	// RoutingHybrid combines the local result with a remote refinement
	RoutingHybrid Routing = "hybrid"

	// RoutingRemotePriority sends complex queries for full remote analysis
	RoutingRemotePriority Routing = "remote_priority"
)

// Complexity describes a query for the routing decision
type Complexity struct {
	TextLength      int
	MarkerCount     int
	LegalComplexity int
	EstimatedTokens int
	Decision        Routing
}

// legalKeywords raise the legal complexity of a query (folded forms)
var legalKeywords = []string{
	"inspector", "funcionario", "licitacion", "contrato",
	"factura", "registro", "permiso", "habilitacion",
}

// remoteTriggers force at least hybrid analysis regardless of other
// signals (folded forms)
var remoteTriggers = []string{
	"regalito", "por izquierda", "facturar", "hermano", "cunado",
}

// AnalyzeComplexity decides how a query should be routed based on its
// length, cultural density and legal context. Thresholds: three or
// more markers, two or more legal keywords, more than 200 characters,
// or any remote trigger escalate past local-only; four markers or
// three legal keywords escalate to remote priority.
func AnalyzeComplexity(text string, markers []string) Complexity {
	folded := classify.Fold(text)

	legal := 0
	for _, kw := range legalKeywords {
		if strings.Contains(folded, kw) {
			legal++
		}
	}

	triggered := false
	for _, trigger := range remoteTriggers {
		if strings.Contains(folded, trigger) {
			triggered = true
			break
		}
	}

	c := Complexity{
		TextLength:      len(text),
		MarkerCount:     len(markers),
		LegalComplexity: legal,
		EstimatedTokens: int(float64(len(strings.Fields(text))) * 1.3),
	}

	needsRemote := c.MarkerCount >= 3 || legal >= 2 || c.TextLength > 200 || triggered

	switch {
	case !needsRemote:
		c.Decision = RoutingLocalOnly
	case c.MarkerCount >= 4 || legal >= 3:
		c.Decision = RoutingRemotePriority
	default:
		c.Decision = RoutingHybrid
	}

	return c
}
