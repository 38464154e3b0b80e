package enhance

import (
	"encoding/json"
	"fmt"
	"strings"
)

var sectorContexts = map[string]string{
	"construccion": "Sector construcción - alta exposición a conflictos familiares y gastos de hospitalidad",
	"energia":      "Sector energético - riesgo en gastos de representación y tráfico de influencias",
	"salud":        "Sector salud - riesgo crítico en relación con funcionarios regulatorios",
	"finanzas":     "Sector financiero - riesgo en registros contables y facturación",
}

// BuildPrompt constructs the analysis prompt. The provider must answer
// with a single JSON object matching the Analysis schema.
func BuildPrompt(req Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, `Sos un experto en compliance argentino especializado en la Ley 27.401 de Responsabilidad Penal Empresaria.

TEXTO A ANALIZAR: %q

CONTEXTO CULTURAL DETECTADO:
`, req.Text)

	if req.Local != nil {
		fmt.Fprintf(&b, "- Marcadores culturales: %s\n", strings.Join(req.Local.CulturalMarkers, ", "))
		fmt.Fprintf(&b, "- Nivel de riesgo inicial: %d/5\n", req.Local.RiskLevel)
		fmt.Fprintf(&b, "- Categoría: %s\n", req.Local.Category)
	}

	if ctx, ok := sectorContexts[req.Sector]; ok {
		fmt.Fprintf(&b, "\nCONTEXTO SECTORIAL: %s\n", ctx)
	}

	b.WriteString(`
INSTRUCCIONES:
1. Analizá el riesgo específico bajo la Ley 27.401
2. Identificá patrones culturales argentinos únicos
3. Mapeá a artículos específicos de la ley
4. Sugerí acciones correctivas concretas

FORMATO DE RESPUESTA (JSON, sin texto adicional):
{
  "risk_level": 1-5,
  "category": "CODIGO_CATEGORIA",
  "legal_articles": ["Art. X Ley 27.401"],
  "cultural_significance": "explicación cultural",
  "international_tools_gap": "por qué herramientas genéricas no lo detectan",
  "risk_reasoning": ["patrón detectado"],
  "remediation": ["acción inmediata"]
}
`)

	return b.String()
}

// parseAnalysis extracts the JSON object from a model response,
// tolerating markdown fences and surrounding prose.
func parseAnalysis(raw string) (*Analysis, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var a Analysis
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &a); err != nil {
		return nil, fmt.Errorf("decode analysis: %w", err)
	}

	if a.RiskLevel < 1 || a.RiskLevel > 5 {
		return nil, fmt.Errorf("analysis risk_level %d out of range [1,5]", a.RiskLevel)
	}

	return &a, nil
}
