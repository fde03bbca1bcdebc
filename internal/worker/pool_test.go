package worker

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/varichess-go/internal/chess"
)

func echo(item WorkItem) Result {
	return Result{Piece: item.Piece, Index: item.Index}
}

func counting(counter *int32) ProcessFunc {
	return func(item WorkItem) Result {
		atomic.AddInt32(counter, 1)
		return Result{Piece: item.Piece, Index: item.Index, Moves: []chess.Coordinate{item.Piece.Current}}
	}
}

func drain(pool *Pool) []Result {
	var out []Result
	for r := range pool.Results() {
		out = append(out, r)
	}
	return out
}

func piece(i int) *chess.Piece {
	c := chess.CoordinateFromIndex(i % chess.NumSquares)
	return &chess.Piece{ID: "p", Current: c}
}

func TestPool_ProcessesEveryItem(t *testing.T) {
	var processed int32
	pool := NewPool(counting(&processed), WithWorkers(4), WithBufferSize(8))
	pool.Start()

	const numItems = 20
	go func() {
		for i := 0; i < numItems; i++ {
			pool.Submit(WorkItem{Piece: piece(i), Index: i})
		}
		pool.Close()
	}()

	seen := make(map[int]bool)
	for _, r := range drain(pool) {
		seen[r.Index] = true
		if len(r.Moves) != 1 || r.Moves[0] != r.Piece.Current {
			t.Errorf("result %d carries moves %v", r.Index, r.Moves)
		}
	}
	if len(seen) != numItems {
		t.Errorf("received %d distinct results; want %d", len(seen), numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

func TestPool_CarriesErrors(t *testing.T) {
	boom := errors.New("boom")
	pool := NewPool(func(item WorkItem) Result {
		return Result{Index: item.Index, Err: boom}
	})
	pool.Start()
	pool.Submit(WorkItem{Piece: piece(0)})
	go pool.Close()

	results := drain(pool)
	if len(results) != 1 || !errors.Is(results[0].Err, boom) {
		t.Fatalf("results = %+v; want one result carrying boom", results)
	}
}

func TestPool_Stop(t *testing.T) {
	var processed int32
	slow := func(item WorkItem) Result {
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&processed, 1)
		return echo(item)
	}
	pool := NewPool(slow, WithWorkers(2), WithBufferSize(64))
	pool.Start()
	if pool.IsStopped() {
		t.Fatal("new pool reports stopped")
	}

	const numItems = 40
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Piece: piece(i), Index: i})
	}
	pool.Stop()
	if !pool.IsStopped() {
		t.Fatal("pool not stopped after Stop")
	}
	go pool.Close()
	drain(pool)

	if got := atomic.LoadInt32(&processed); got >= numItems {
		t.Logf("stop skipped nothing: %d processed", got)
	}
}

func TestNewPool_Options(t *testing.T) {
	tests := []struct {
		name        string
		opts        []Option
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 16},
		{"workers", []Option{WithWorkers(4)}, 4, 16},
		{"buffer", []Option{WithBufferSize(50)}, 1, 50},
		{"both", []Option{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"invalid values ignored", []Option{WithWorkers(0), WithBufferSize(-5)}, 1, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(echo, tt.opts...)
			if pool.NumWorkers() != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", pool.NumWorkers(), tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}
}
