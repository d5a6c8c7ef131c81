// Package worker provides a worker pool for parsing FEN records in parallel.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/fen-board-go/internal/chess"
	"github.com/lgbarn/fen-board-go/internal/crosscheck"
	"github.com/lgbarn/fen-board-go/internal/fen"
)

// WorkItem is one FEN record to parse.
type WorkItem struct {
	FEN    string
	Index  int    // 0-based position in the input stream
	Source string // Input file name, "-" for stdin
	Line   int    // 1-based line number in Source
}

// ProcessResult is the outcome of parsing one WorkItem.
type ProcessResult struct {
	Item       WorkItem
	Board      chess.Board
	Mismatches []string // Cross-check disagreements, when verification is on
	Error      error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// ParseFEN returns a ProcessFunc that parses each item with fen.Parse and,
// when verify is set, cross-checks successful boards with dragontoothmg.
func ParseFEN(verify bool) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		board, err := fen.Parse(item.FEN)
		result := ProcessResult{Item: item, Board: board, Error: err}
		if err == nil && verify {
			result.Mismatches = crosscheck.Compare(item.FEN, board)
		}
		return result
	}
}

// Pool manages a pool of workers for parallel parsing.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a worker pool. processFunc is required; by default the
// pool has 1 worker and a buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// InOrder reads results until the result channel is closed and calls fn for
// each in Item.Index order, starting at 0. Results that arrive early are held
// back until their predecessors are done. When fn returns false the pool is
// stopped and the remaining results are drained without calling fn.
// It returns the number of results passed to fn.
func (p *Pool) InOrder(fn func(ProcessResult) bool) int {
	pending := make(map[int]ProcessResult)
	next := 0
	stopped := false

	for result := range p.resultChan {
		if stopped {
			continue
		}
		pending[result.Item.Index] = result
		for {
			r, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if !fn(r) {
				stopped = true
				p.Stop()
				break
			}
		}
	}
	return next
}
