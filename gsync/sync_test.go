package gsync_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/intel/forGoAsync/gsync"
)

func TestLatchSetAndWait(t *testing.T) {
	l := gsync.NewLatch[int]()
	if !l.Set(42) {
		t.Error("expected the first Set to win")
	}
	v, ok := l.Wait(context.Background())
	if !ok || v != 42 {
		t.Errorf("unexpected value %v, %v", v, ok)
	}
}

func TestLatchLaterSetsIgnored(t *testing.T) {
	l := gsync.NewLatch[string]()
	l.Set("first")
	if l.Set("second") {
		t.Error("expected a later Set to lose")
	}
	if v, _ := l.Wait(context.Background()); v != "first" {
		t.Errorf("expected the first value, got %q", v)
	}
}

func TestLatchReleasesAllWaiters(t *testing.T) {
	l := gsync.NewLatch[int]()
	var wg sync.WaitGroup
	results := make([]int, 10)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = l.Wait(context.Background())
		}(i)
	}
	l.Set(7)
	wg.Wait()
	for i, v := range results {
		if v != 7 {
			t.Errorf("waiter %d got %d", i, v)
		}
	}
}

func TestLatchWaitCancelled(t *testing.T) {
	l := gsync.NewLatch[int]()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, ok := l.Wait(ctx); ok {
		t.Error("expected Wait to give up on a cancelled context")
	}
}

func TestLatchTryGet(t *testing.T) {
	l := gsync.NewLatch[int]()
	if _, ok := l.TryGet(); ok {
		t.Error("expected no value before Set")
	}
	l.Set(5)
	if v, ok := l.TryGet(); !ok || v != 5 {
		t.Errorf("unexpected value %v, %v", v, ok)
	}
}
