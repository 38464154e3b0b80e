package consensus

import (
	"fmt"
	"sync"
)

// Store persists tasks, reviewer responses, consensus labels and
// reviewer reliability scores.
type Store interface {
	SaveTask(task MicroTask) error
	Task(id string) (MicroTask, error)
	SaveResponse(resp Response) error
	Responses(taskID string) ([]Response, error)
	SaveLabel(label Label) error
	Labels() ([]Label, error)
	Reliability(userID string) float64
	SetReliability(userID string, score float64)
}

// MemoryStore is a mutex-guarded in-process Store
type MemoryStore struct {
	mu          sync.RWMutex
	tasks       map[string]MicroTask
	responses   map[string][]Response
	labels      []Label
	reliability map[string]float64
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tasks:       make(map[string]MicroTask),
		responses:   make(map[string][]Response),
		reliability: make(map[string]float64),
	}
}

func (s *MemoryStore) SaveTask(task MicroTask) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[task.ID] = task
	return nil
}

func (s *MemoryStore) Task(id string) (MicroTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	task, ok := s.tasks[id]
	if !ok {
		return MicroTask{}, fmt.Errorf("unknown task: %s", id)
	}
	return task, nil
}

func (s *MemoryStore) SaveResponse(resp Response) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[resp.TaskID]; !ok {
		return fmt.Errorf("unknown task: %s", resp.TaskID)
	}
	s.responses[resp.TaskID] = append(s.responses[resp.TaskID], resp)
	return nil
}

func (s *MemoryStore) Responses(taskID string) ([]Response, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Response, len(s.responses[taskID]))
	copy(out, s.responses[taskID])
	return out, nil
}

func (s *MemoryStore) SaveLabel(label Label) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.labels = append(s.labels, label)
	return nil
}

func (s *MemoryStore) Labels() ([]Label, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Label, len(s.labels))
	copy(out, s.labels)
	return out, nil
}

// Reliability returns the reviewer's score, 0.5 for unseen reviewers
func (s *MemoryStore) Reliability(userID string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if score, ok := s.reliability[userID]; ok {
		return score
	}
	return 0.5
}

func (s *MemoryStore) SetReliability(userID string, score float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reliability[userID] = score
}
