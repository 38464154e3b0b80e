package classify

import (
	"regexp"

	"github.com/integridai/culturacheck/internal/model"
)

// MarkerDefinition is a named lexical category with a matcher and the
// multiplicative weight it contributes to the risk score.
type MarkerDefinition struct {
	Name    string
	Weight  float64
	pattern *regexp.Regexp
}

// Matches reports whether the marker fires anywhere in folded text
func (m *MarkerDefinition) Matches(folded string) bool {
	return m.pattern.MatchString(folded)
}

// markerDefinitions is the fixed set of six Argentine cultural markers.
// Patterns are written in folded form (lowercase, no diacritics) and
// evaluated independently: no marker suppresses another. The slice
// order fixes the output ordering of matched markers.
var markerDefinitions = []MarkerDefinition{
	{
		Name:    model.MarkerDiminutivo,
		Weight:  1.2,
		pattern: regexp.MustCompile(`\b\w+(?:cito|cita|ito|ita|illo|illa)\b`),
	},
	{
		Name:    model.MarkerFamilia,
		Weight:  1.5,
		pattern: regexp.MustCompile(`\b(?:hermano|hermana|cunado|cunada|primo|prima|tio|tia|suegro|suegra|sobrino|sobrina)\b`),
	},
	{
		Name:    model.MarkerEufemismo,
		Weight:  1.8,
		pattern: regexp.MustCompile(`\b(?:regalito|asadito|consultoria|viaticos|gestionar|arreglar|acomodar|llegada|sena)\b`),
	},
	{
		Name:    model.MarkerInformalidad,
		Weight:  1.1,
		pattern: regexp.MustCompile(`\b(?:dale|che|tranquilo|pibe|piola|barbaro|copado)\b`),
	},
	{
		Name:    model.MarkerMinimizacion,
		Weight:  1.3,
		pattern: regexp.MustCompile(`\b(?:no pasa nada|siempre|es normal|solo|nomas|tranquilo)\b`),
	},
	{
		Name:    model.MarkerTradicion,
		Weight:  1.2,
		pattern: regexp.MustCompile(`\b(?:asado|mate|club|parrilla)\b`),
	},
}

// ExtractMarkers returns the names of all markers whose pattern fires
// in the folded text, in definition order. Pure function, no state.
func ExtractMarkers(folded string) []string {
	var markers []string
	for i := range markerDefinitions {
		if markerDefinitions[i].Matches(folded) {
			markers = append(markers, markerDefinitions[i].Name)
		}
	}
	return markers
}

// MarkerWeight returns the risk weight for a marker name, or 1.0 for
// unknown names so they never alter the score.
func MarkerWeight(name string) float64 {
	for i := range markerDefinitions {
		if markerDefinitions[i].Name == name {
			return markerDefinitions[i].Weight
		}
	}
	return 1.0
}

// MarkerNames lists the defined marker names in extraction order
func MarkerNames() []string {
	names := make([]string, len(markerDefinitions))
	for i := range markerDefinitions {
		names[i] = markerDefinitions[i].Name
	}
	return names
}
