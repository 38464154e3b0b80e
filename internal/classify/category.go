package classify

import (
	"strings"

	"github.com/integridai/culturacheck/internal/model"
)

// categoryRule maps substring terms to a category code. Rules are
// evaluated in priority order and the first hit wins, resolving
// ambiguous phrases toward the earlier, more severe category.
type categoryRule struct {
	category model.Category
	terms    []string
}

var categoryRules = []categoryRule{
	{model.CategorySoborno, []string{"regalito", "inspector", "funcionario", "sena", "agilizar"}},
	{model.CategoryGastosExcesivos, []string{"asadito", "mate", "club", "hospitalidad"}},
	{model.CategoryConflictoInteres, []string{"cunado", "hermano", "primo", "familia"}},
	{model.CategoryFraudeGastos, []string{"viaticos", "gastos", "cargalo"}},
	{model.CategoryTraficoInfluencias, []string{"contacto", "llegada", "influencia", "hablar con"}},
	{model.CategoryFraudeFiscal, []string{"facturar", "consultoria", "papeles"}},
	{model.CategoryAccionClandestina, []string{"por izquierda", "arreglar", "gestionar"}},
}

// PredictCategory maps folded text to exactly one category code.
// Independent of marker extraction and risk scoring: it may disagree
// with them, which is intentional.
func PredictCategory(folded string) model.Category {
	for _, rule := range categoryRules {
		for _, term := range rule.terms {
			if strings.Contains(folded, term) {
				return rule.category
			}
		}
	}
	return model.CategoryCulturaRiesgo
}
