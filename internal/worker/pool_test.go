package worker

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// noopProcessFunc returns a basic process function that does nothing.
func noopProcessFunc() ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return ProcessResult{Move: item.Move, Index: item.Index}
	}
}

// countingProcessFunc returns a process function that increments a counter.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Move: item.Move, Index: item.Index, Nodes: 1}
	}
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

// items builds n work items on an empty board.
func items(n int) []WorkItem {
	board := chess.NewBoard()
	out := make([]WorkItem, n)
	for i := range out {
		out[i] = WorkItem{Board: board, Move: chess.Move{From: chess.SquareFromIndex(i)}, Depth: 1, Index: i}
	}
	return out
}

// TestPoolBasic tests basic worker pool functionality.
func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(4), WithBufferSize(10))
	pool.Start()

	const numItems = 10
	for _, item := range items(numItems) {
		pool.Submit(item)
	}

	go pool.Close()

	resultCount := collectResults(pool)
	if resultCount != numItems {
		t.Errorf("results = %d; want %d", resultCount, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

// TestPoolEarlyStop tests early termination with Stop().
func TestPoolEarlyStop(t *testing.T) {
	var processedCount int32

	slowProcessFunc := func(item WorkItem) ProcessResult {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&processedCount, 1)
		return ProcessResult{Index: item.Index}
	}

	pool := NewPool(slowProcessFunc, WithWorkers(2), WithBufferSize(100))
	pool.Start()

	const numItems = 50
	for _, item := range items(numItems) {
		pool.Submit(item)
	}

	time.Sleep(30 * time.Millisecond)
	pool.Stop()

	go pool.Close()
	collectResults(pool)

	if processed := atomic.LoadInt32(&processedCount); processed >= numItems {
		t.Logf("early stop may not have prevented all processing: %d processed", processed)
	}
}

// TestPoolIsStopped tests the IsStopped method.
func TestPoolIsStopped(t *testing.T) {
	pool := NewPool(noopProcessFunc(), WithWorkers(2))
	pool.Start()

	if pool.IsStopped() {
		t.Error("pool should not be stopped initially")
	}

	pool.Stop()

	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}

	pool.Close()
}

// TestNewPoolOptions tests the functional options.
func TestNewPoolOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 16},
		{"with workers", []PoolOption{WithWorkers(4)}, 4, 16},
		{"with buffer size", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"with multiple options", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"invalid workers ignored", []PoolOption{WithWorkers(0)}, 1, 16},
		{"invalid buffer size ignored", []PoolOption{WithBufferSize(-5)}, 1, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(noopProcessFunc(), tt.opts...)
			if got := pool.NumWorkers(); got != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", got, tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}
}

// TestPoolRunOrdersResults tests that Run returns results in Index order
// even when workers finish out of order.
func TestPoolRunOrdersResults(t *testing.T) {
	variableDelayFunc := func(item WorkItem) ProcessResult {
		if item.Index%2 == 0 {
			time.Sleep(5 * time.Millisecond)
		}
		return ProcessResult{Move: item.Move, Index: item.Index, Nodes: uint64(item.Index)}
	}

	pool := NewPool(variableDelayFunc, WithWorkers(4), WithBufferSize(4))

	const numItems = 12
	results, err := pool.Run(items(numItems))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(results) != numItems {
		t.Fatalf("len(results) = %d; want %d", len(results), numItems)
	}
	for i, result := range results {
		if result.Index != i {
			t.Errorf("results[%d].Index = %d; want %d", i, result.Index, i)
		}
		if result.Move.From != chess.SquareFromIndex(i) {
			t.Errorf("results[%d].Move.From = %v; want %v", i, result.Move.From, chess.SquareFromIndex(i))
		}
	}
}

// TestPoolRunStopsOnError tests that the first failure is reported and stops the pool.
func TestPoolRunStopsOnError(t *testing.T) {
	errBoom := errors.New("boom")
	failing := func(item WorkItem) ProcessResult {
		if item.Index == 0 {
			return ProcessResult{Index: item.Index, Error: errBoom}
		}
		time.Sleep(time.Millisecond)
		return ProcessResult{Index: item.Index}
	}

	pool := NewPool(failing, WithWorkers(1), WithBufferSize(1))
	results, err := pool.Run(items(20))
	if !errors.Is(err, errBoom) {
		t.Fatalf("Run() error = %v; want %v", err, errBoom)
	}
	if !pool.IsStopped() {
		t.Error("pool should be stopped after a failed item")
	}
	if len(results) >= 20 {
		t.Errorf("len(results) = %d; want fewer than 20 after stop", len(results))
	}
}

// TestPoolNoRace is designed to be run with -race flag.
func TestPoolNoRace(t *testing.T) {
	var counter int32
	pool := NewPool(countingProcessFunc(&counter), WithWorkers(8), WithBufferSize(50))

	const numItems = 100
	results, err := pool.Run(items(numItems))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var nodes uint64
	for _, r := range results {
		nodes += r.Nodes
	}
	if nodes != numItems {
		t.Errorf("total nodes = %d; want %d", nodes, numItems)
	}
	if got := atomic.LoadInt32(&counter); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}
