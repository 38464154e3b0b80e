package worker

import (
	"context"
	"sync"

	"github.com/integridai/culturacheck/internal/model"
)

// Runner executes the analysis for a single phrase. Both the pattern
// classifier and the LLM-backed enhancer satisfy it through RunnerFunc.
type Runner interface {
	Run(ctx context.Context, text, sector string) (*model.ClassificationResult, error)
}

// RunnerFunc adapts a function to the Runner interface
type RunnerFunc func(ctx context.Context, text, sector string) (*model.ClassificationResult, error)

func (f RunnerFunc) Run(ctx context.Context, text, sector string) (*model.ClassificationResult, error) {
	return f(ctx, text, sector)
}

// Task is one phrase queued for analysis. Index records the position in
// the submitted batch so results can be reordered after the fan-out.
type Task struct {
	Index  int
	Text   string
	Sector string
}

// Outcome is the analysis of one task. Err is set when the phrase was
// rejected; Result is nil in that case.
type Outcome struct {
	Index  int
	Text   string
	Result *model.ClassificationResult
	Err    error
}

// Pool fans phrase analysis out over a fixed number of goroutines
type Pool struct {
	workers   int
	runner    Runner
	tasks     chan Task
	outcomes  chan Outcome
	wg        sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewPool creates a pool backed by the given runner
func NewPool(workers int, runner Runner) *Pool {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Pool{
		workers:  workers,
		runner:   runner,
		tasks:    make(chan Task, workers*2),
		outcomes: make(chan Outcome, workers*2),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start launches the worker goroutines
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case task, ok := <-p.tasks:
			if !ok {
				return
			}
			result, err := p.runner.Run(p.ctx, task.Text, task.Sector)
			outcome := Outcome{
				Index:  task.Index,
				Text:   task.Text,
				Result: result,
				Err:    err,
			}
			select {
			case p.outcomes <- outcome:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Submit queues a task. It is a no-op after Shutdown.
func (p *Pool) Submit(task Task) {
	select {
	case <-p.ctx.Done():
		return
	case p.tasks <- task:
	}
}

// Finish signals that no more tasks will be submitted. Once the
// workers drain the queue the outcome channel closes and Collect
// returns. Submit must not be called after Finish.
func (p *Pool) Finish() {
	close(p.tasks)

	go func() {
		p.wg.Wait()
		p.closeOutcomes()
	}()
}

// Collect drains outcomes until the pool finishes. Outcomes arrive in
// completion order, not submit order.
func (p *Pool) Collect() []Outcome {
	var outcomes []Outcome
	for outcome := range p.outcomes {
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

// Wait finishes the pool and collects the remaining outcomes. The
// channel buffers hold roughly 4x the worker count; callers submitting
// more tasks than that must run Collect on its own goroutine before
// submitting, as BatchProcessor does.
func (p *Pool) Wait() []Outcome {
	p.Finish()
	return p.Collect()
}

// Shutdown stops the pool immediately, abandoning queued tasks
func (p *Pool) Shutdown() {
	p.cancel()
	p.wg.Wait()
	p.closeOutcomes()
}

func (p *Pool) closeOutcomes() {
	p.closeOnce.Do(func() {
		close(p.outcomes)
	})
}
