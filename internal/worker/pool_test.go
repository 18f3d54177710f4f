package worker

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// makeJobs builds n jobs whose depth equals their position in the batch.
func makeJobs(n int) []Job {
	jobs := make([]Job, n)
	for i := range jobs {
		jobs[i] = Job{
			Position: chess.NewPosition(),
			Move:     chess.Move{From: chess.Sq(i%8, 6), To: chess.Sq(i%8, 5)},
			Depth:    i,
		}
	}
	return jobs
}

// depthCount reports depth*10 nodes.
func depthCount(_ *chess.Position, depth int) uint64 {
	return uint64(depth * 10)
}

func TestPoolRun(t *testing.T) {
	var calls int32
	pool := New(func(pos *chess.Position, depth int) uint64 {
		atomic.AddInt32(&calls, 1)
		return depthCount(pos, depth)
	}, WithWorkers(4), WithQueue(3))

	const numJobs = 12
	jobs := makeJobs(numJobs)
	results := pool.Run(jobs)

	if len(results) != numJobs {
		t.Fatalf("results = %d; want %d", len(results), numJobs)
	}
	var total uint64
	for i, r := range results {
		if r.Index != i {
			t.Errorf("results[%d].Index = %d", i, r.Index)
		}
		if r.Move != jobs[i].Move {
			t.Errorf("results[%d].Move = %v; want %v", i, r.Move, jobs[i].Move)
		}
		if !r.Counted {
			t.Errorf("results[%d] not counted", i)
		}
		total += r.Nodes
	}
	// 10 * (0 + 1 + ... + 11)
	if total != 660 {
		t.Errorf("total nodes = %d; want 660", total)
	}
	if got := atomic.LoadInt32(&calls); got != numJobs {
		t.Errorf("count calls = %d; want %d", got, numJobs)
	}
	if pool.Completed() != numJobs {
		t.Errorf("Completed() = %d; want %d", pool.Completed(), numJobs)
	}
}

func TestPoolRunIgnoresJobIndex(t *testing.T) {
	jobs := makeJobs(3)
	for i := range jobs {
		jobs[i].Index = 99
	}
	results := New(depthCount, WithWorkers(2)).Run(jobs)
	for i, r := range results {
		if r.Index != i || r.Nodes != uint64(i*10) {
			t.Errorf("results[%d] = %+v", i, r)
		}
	}
}

func TestPoolRunEmpty(t *testing.T) {
	if results := New(depthCount).Run(nil); len(results) != 0 {
		t.Errorf("Run(nil) = %v; want empty", results)
	}
}

func TestPoolReuse(t *testing.T) {
	pool := New(depthCount, WithWorkers(2))
	pool.Run(makeJobs(5))
	pool.Run(makeJobs(4))
	if pool.Completed() != 9 {
		t.Errorf("Completed() = %d; want 9", pool.Completed())
	}
}

func TestPoolCancel(t *testing.T) {
	var pool *Pool
	pool = New(func(_ *chess.Position, depth int) uint64 {
		time.Sleep(time.Millisecond)
		pool.Cancel()
		return 1
	}, WithWorkers(1), WithQueue(1))

	results := pool.Run(makeJobs(20))

	if !pool.Cancelled() {
		t.Fatal("Cancelled() = false after Cancel")
	}
	if !results[0].Counted {
		t.Error("first job should have been counted")
	}
	for i, r := range results[1:] {
		if r.Counted || r.Nodes != 0 {
			t.Errorf("results[%d] = %+v; want skipped", i+1, r)
		}
	}
	if pool.Completed() != 1 {
		t.Errorf("Completed() = %d; want 1", pool.Completed())
	}
}

func TestPoolOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []Option
		wantWorkers int
		wantQueue   int
	}{
		{"defaults", nil, 1, 16},
		{"workers and queue", []Option{WithWorkers(8), WithQueue(100)}, 8, 100},
		{"invalid values ignored", []Option{WithWorkers(0), WithQueue(-5)}, 1, 16},
		{"negative workers", []Option{WithWorkers(-1)}, 1, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := New(depthCount, tt.opts...)
			if got := pool.Workers(); got != tt.wantWorkers {
				t.Errorf("Workers() = %d; want %d", got, tt.wantWorkers)
			}
			if pool.queue != tt.wantQueue {
				t.Errorf("queue = %d; want %d", pool.queue, tt.wantQueue)
			}
		})
	}
}
