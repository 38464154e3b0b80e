package consensus

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/integridai/culturacheck/internal/classify"
	"github.com/integridai/culturacheck/internal/model"
)

// TaskType identifies the kind of compliance micro-task
type TaskType string

const (
	TaskProviderScreening  TaskType = "provider_screening"
	TaskCulturalRisk       TaskType = "cultural_risk_detection"
	TaskFamilyNetwork      TaskType = "family_network_mapping"
	TaskContractEuphemism  TaskType = "contract_euphemism_detection"
	TaskHospitality        TaskType = "hospitality_validation"
	TaskInvoiceRecognition TaskType = "invoice_pattern_recognition"
)

// Fixed answer options every task presents
const (
	AnswerLowRisk    = "BAJO RIESGO - Actividad comercial normal"
	AnswerMediumRisk = "MEDIO RIESGO - Requiere documentación adicional"
	AnswerHighRisk   = "ALTO RIESGO - Posible violación Ley 27.401"
	AnswerCritical   = "CRÍTICO - Reportar inmediatamente a compliance"
)

// MicroTask is one phrase presented to a reviewer for risk labeling.
// Gold-standard tasks carry a known correct answer used to calibrate
// reviewer reliability.
type MicroTask struct {
	ID             string    `json:"task_id"`
	Type           TaskType  `json:"task_type"`
	Content        string    `json:"content"`
	Options        []string  `json:"options"`
	CorrectAnswer  string    `json:"correct_answer,omitempty"`
	IsGoldStandard bool      `json:"is_gold_standard"`
	Sector         string    `json:"sector"`
	Difficulty     int       `json:"difficulty"`
	CreatedAt      time.Time `json:"created_at"`
}

var generalPhrases = []string{
	"Es solo un asadito con el cliente",
	"Un consultorcito que nos ayude con el trámite",
	"Mi hermano maneja todo el tema de proveedores",
	"Facturamos como consultoría para evitar controles",
	"Un regalito de fin de año para el funcionario",
	"Lo resolvemos por la puerta de atrás",
	"Mi suegro tiene contactos en la municipalidad",
	"Un matecito mientras charlamos el contrato",
	"Siempre trabajamos así, no pasa nada",
	"Dale que lo arreglamos entre nosotros",
}

var sectorPhrases = map[string][]string{
	"construccion": {
		"Mi cuñado tiene una empresa constructora",
		"Un asadito con los del municipio para el permiso",
		"El primo del intendente nos puede ayudar",
	},
	"salud": {
		"Un regalito para el inspector de ANMAT",
		"Mi hermano es médico en el hospital público",
		"Conocemos al director del PAMI",
	},
	"energia": {
		"Tenemos llegada directa al secretario de energía",
		"Un consultorcito que maneja los pliegos",
		"Mi suegro trabajaba en YPF",
	},
}

// goldRate is the fraction of generated tasks that carry a known answer
const goldRate = 0.10

// Generator produces micro-tasks from the curated phrase banks. Safe
// for concurrent use; the mutex guards the shared rand source.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
	seq int64
}

// NewGenerator creates a generator. A zero seed uses the current time.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate builds a micro-task for the given sector. Unknown sectors
// fall back to the general phrase bank.
func (g *Generator) Generate(sector string) MicroTask {
	g.mu.Lock()
	var content string
	if phrases, ok := sectorPhrases[sector]; ok {
		bank := append(append([]string{}, phrases...), generalPhrases[:3]...)
		content = bank[g.rng.Intn(len(bank))]
	} else {
		content = generalPhrases[g.rng.Intn(len(generalPhrases))]
	}
	isGold := g.rng.Float64() < goldRate
	g.seq++
	seq := g.seq
	g.mu.Unlock()

	task := MicroTask{
		ID:         fmt.Sprintf("task-%d-%d", time.Now().Unix(), seq),
		Type:       TaskCulturalRisk,
		Content:    content,
		Options:    []string{AnswerLowRisk, AnswerMediumRisk, AnswerHighRisk, AnswerCritical},
		Sector:     sector,
		Difficulty: taskDifficulty(content),
		CreatedAt:  time.Now(),
	}

	if isGold {
		task.IsGoldStandard = true
		task.CorrectAnswer = goldAnswer(content)
	}

	return task
}

// taskDifficulty rates a phrase by its cultural-marker density
func taskDifficulty(content string) int {
	if len(classify.ExtractMarkers(classify.Fold(content))) >= 2 {
		return 3
	}
	return 1
}

// goldAnswer derives the reference answer for a gold-standard task from
// the same signals the pattern classifier uses.
func goldAnswer(content string) string {
	folded := classify.Fold(content)

	if strings.Contains(folded, "regalito") || strings.Contains(folded, "por izquierda") {
		return AnswerHighRisk
	}

	markers := classify.ExtractMarkers(folded)
	for _, m := range markers {
		if m == model.MarkerFamilia || m == model.MarkerEufemismo {
			return AnswerHighRisk
		}
	}

	return AnswerMediumRisk
}
