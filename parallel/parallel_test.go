package parallel_test

import (
	"strings"
	"sync/atomic"
	"testing"

	"github.com/intel/forGoAsync/parallel"
)

func TestDo(t *testing.T) {
	var n atomic.Int64
	thunks := make([]func(), 20)
	for i := range thunks {
		thunks[i] = func() { n.Add(1) }
	}
	parallel.Do(thunks...)
	if got := n.Load(); got != 20 {
		t.Errorf("expected 20 invocations, got %d", got)
	}
}

func TestDoEmpty(t *testing.T) {
	parallel.Do()
}

func TestDoPanicsLeftMost(t *testing.T) {
	defer func() {
		p := recover()
		if p == nil {
			t.Fatal("expected a panic")
		}
		if s, ok := p.(string); !ok || !strings.HasPrefix(s, "left") {
			t.Errorf("expected the left-most panic, got %v", p)
		}
	}()
	parallel.Do(
		func() { panic("left") },
		func() { panic("right") },
	)
}

func TestRangeCoversInterval(t *testing.T) {
	seen := make([]atomic.Int32, 100)
	parallel.Range(0, 100, 0, func(low, high int) {
		for i := low; i < high; i++ {
			seen[i].Add(1)
		}
	})
	for i := range seen {
		if got := seen[i].Load(); got != 1 {
			t.Fatalf("index %d visited %d times", i, got)
		}
	}
}

func TestRangeEmptyInterval(t *testing.T) {
	calls := 0
	parallel.Range(5, 5, 0, func(low, high int) {
		calls++
		if low != high {
			t.Errorf("unexpected batch %d:%d", low, high)
		}
	})
	if calls != 1 {
		t.Errorf("expected a single empty batch, got %d", calls)
	}
}

func TestRangeInvalidIntervalPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an inverted interval")
		}
	}()
	parallel.Range(3, 1, 0, func(int, int) {})
}

func TestRangeReduce(t *testing.T) {
	got := parallel.RangeReduce(1, 1001, 0, func(low, high int) int {
		sum := 0
		for i := low; i < high; i++ {
			sum += i
		}
		return sum
	}, func(x, y int) int { return x + y })
	if got != 500500 {
		t.Errorf("expected 500500, got %d", got)
	}
}

func TestRangeReduceSingleBatch(t *testing.T) {
	got := parallel.RangeReduce(0, 10, 1, func(low, high int) int {
		return high - low
	}, func(x, y int) int { return x + y })
	if got != 10 {
		t.Errorf("expected 10, got %d", got)
	}
}
