package worker

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/integridai/culturacheck/internal/model"
)

// BatchProcessor runs many phrases through a Runner concurrently while
// keeping the original input order in its output.
type BatchProcessor struct {
	workers int
	runner  Runner
	log     *logrus.Logger
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(workers int, runner Runner, log *logrus.Logger) *BatchProcessor {
	if log == nil {
		log = logrus.New()
	}
	return &BatchProcessor{
		workers: workers,
		runner:  runner,
		log:     log,
	}
}

// ProcessTexts analyzes every phrase and returns one outcome per input,
// ordered like the input. Individual failures are recorded in the
// outcome, never propagated.
func (b *BatchProcessor) ProcessTexts(texts []string, sector string) []Outcome {
	pool := NewPool(b.workers, b.runner)
	pool.Start()

	// Collect on a separate goroutine so submission never deadlocks on
	// full channel buffers; the queue is closed only after every task
	// has been submitted.
	collected := make(chan []Outcome, 1)
	go func() {
		collected <- pool.Collect()
	}()

	for i, text := range texts {
		pool.Submit(Task{Index: i, Text: text, Sector: sector})
	}
	pool.Finish()

	outcomes := <-collected
	sort.Slice(outcomes, func(i, j int) bool {
		return outcomes[i].Index < outcomes[j].Index
	})

	return outcomes
}

// ProcessFile reads phrases from a file (one per line, blank lines and
// # comments skipped, duplicates removed) and analyzes them.
func (b *BatchProcessor) ProcessFile(path, sector string) ([]Outcome, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	var texts []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key := strings.ToLower(line)
		if seen[key] {
			continue
		}
		seen[key] = true
		texts = append(texts, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	return b.ProcessTexts(texts, sector), nil
}

// Results filters outcomes down to successful classifications in input
// order. Failed items are logged and dropped.
func (b *BatchProcessor) Results(outcomes []Outcome) []*model.ClassificationResult {
	results := make([]*model.ClassificationResult, 0, len(outcomes))
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			b.log.WithError(outcome.Err).WithField("input", outcome.Text).
				Error("classification failed, item dropped")
			continue
		}
		results = append(results, outcome.Result)
	}
	return results
}
