package consensus

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/integridai/culturacheck/internal/classify"
	"github.com/integridai/culturacheck/internal/model"
)

// Consensus thresholds. A label is emitted once at least minResponses
// reviewers answered and the top answer holds at least the threshold
// share of the votes.
const (
	minResponses       = 3
	consensusThreshold = 0.6
)

// Reliability moves as an exponential average so one bad answer does
// not sink an established reviewer.
const (
	reliabilityKeep = 0.9
	reliabilityGain = 0.1
)

// Response is one reviewer's answer to a micro-task
type Response struct {
	ID             string    `json:"response_id"`
	TaskID         string    `json:"task_id"`
	UserID         string    `json:"user_id"`
	Answer         string    `json:"answer"`
	ResponseTimeMS float64   `json:"response_time_ms"`
	Confidence     float64   `json:"confidence_score"`
	Timestamp      time.Time `json:"timestamp"`
}

// Label is a crowd-validated cultural risk annotation
type Label struct {
	ID               string         `json:"label_id"`
	Content          string         `json:"content"`
	CulturalMarkers  []string       `json:"cultural_markers"`
	RiskLevel        int            `json:"risk_level"`
	Category         model.Category `json:"category"`
	LegalReference   string         `json:"legal_reference"`
	ConsensusScore   float64        `json:"consensus_score"`
	ContributorCount int            `json:"contributor_count"`
	CreatedAt        time.Time      `json:"created_at"`
}

// SubmitResult reports what happened with a submitted response
type SubmitResult struct {
	GoldChecked bool
	GoldCorrect bool
	Reliability float64
	Label       *Label
}

// Engine collects responses, calibrates reviewer reliability against
// gold-standard tasks and emits labels when consensus is reached.
type Engine struct {
	store Store
	log   *logrus.Logger
}

// NewEngine creates a consensus engine over the given store
func NewEngine(store Store, log *logrus.Logger) *Engine {
	if log == nil {
		log = logrus.New()
	}
	return &Engine{store: store, log: log}
}

// Submit records a response. On gold-standard tasks it updates the
// reviewer's reliability; when the task reaches consensus it generates
// and stores a label.
func (e *Engine) Submit(resp Response) (*SubmitResult, error) {
	if resp.Timestamp.IsZero() {
		resp.Timestamp = time.Now()
	}

	task, err := e.store.Task(resp.TaskID)
	if err != nil {
		return nil, err
	}
	if err := e.store.SaveResponse(resp); err != nil {
		return nil, err
	}

	result := &SubmitResult{Reliability: e.store.Reliability(resp.UserID)}

	if task.IsGoldStandard {
		result.GoldChecked = true
		result.GoldCorrect = resp.Answer == task.CorrectAnswer
		result.Reliability = e.updateReliability(resp.UserID, result.GoldCorrect)
	}

	label, err := e.checkConsensus(task)
	if err != nil {
		return nil, err
	}
	if label != nil {
		if err := e.store.SaveLabel(*label); err != nil {
			return nil, err
		}
		e.log.WithFields(logrus.Fields{
			"task":      task.ID,
			"risk":      label.RiskLevel,
			"consensus": label.ConsensusScore,
		}).Info("consensus reached, label generated")
		result.Label = label
	}

	return result, nil
}

func (e *Engine) updateReliability(userID string, correct bool) float64 {
	current := e.store.Reliability(userID)
	hit := 0.0
	if correct {
		hit = 1.0
	}
	updated := current*reliabilityKeep + hit*reliabilityGain
	e.store.SetReliability(userID, updated)
	return updated
}

func (e *Engine) checkConsensus(task MicroTask) (*Label, error) {
	responses, err := e.store.Responses(task.ID)
	if err != nil {
		return nil, err
	}
	if len(responses) < minResponses {
		return nil, nil
	}

	counts := make(map[string]int)
	for _, r := range responses {
		counts[r.Answer]++
	}

	topAnswer, topCount := "", 0
	for answer, count := range counts {
		if count > topCount {
			topAnswer, topCount = answer, count
		}
	}

	share := float64(topCount) / float64(len(responses))
	if share < consensusThreshold {
		return nil, nil
	}

	folded := classify.Fold(task.Content)

	return &Label{
		ID:               fmt.Sprintf("label-%s", task.ID),
		Content:          task.Content,
		CulturalMarkers:  classify.ExtractMarkers(folded),
		RiskLevel:        answerRisk(topAnswer),
		Category:         classify.PredictCategory(folded),
		LegalReference:   "Art. 22 Ley 27.401",
		ConsensusScore:   share,
		ContributorCount: len(responses),
		CreatedAt:        time.Now(),
	}, nil
}

// answerRisk maps an answer option to a risk level
func answerRisk(answer string) int {
	switch {
	case strings.HasPrefix(answer, "BAJO"):
		return 1
	case strings.HasPrefix(answer, "MEDIO"):
		return 3
	case strings.HasPrefix(answer, "ALTO"), strings.HasPrefix(answer, "CRÍTICO"):
		return 5
	default:
		return 3
	}
}
