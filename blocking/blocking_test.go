package blocking_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intel/forGoAsync/async"
	"github.com/intel/forGoAsync/blocking"
	"github.com/intel/forGoAsync/policy"
	"github.com/intel/forGoAsync/sched"
	"github.com/intel/forGoAsync/sender"
)

func TestForEachOnPool(t *testing.T) {
	t.Parallel()
	pool := sched.NewPool()
	var n atomic.Int64
	err := blocking.ForEach(context.Background(), pool, []int{1, 2, 3}, func(v int) {
		n.Add(int64(v))
	})
	require.NoError(t, err)
	require.Equal(t, int64(6), n.Load())
	pool.Wait()
}

func TestTransformOnSerial(t *testing.T) {
	t.Parallel()
	serial := sched.NewSerial()
	defer serial.Close()

	src := []int{1, 2, 3}
	got, err := blocking.Transform(context.Background(), serial, make([]int, 3), src, func(v int) int {
		return v + 10
	})
	require.NoError(t, err)
	require.Equal(t, []int{11, 12, 13}, got)
}

func TestSortOnPool(t *testing.T) {
	t.Parallel()
	pool := sched.NewPool()
	got, err := blocking.Sort(context.Background(), pool, []int{5, 1, 4, 2, 3})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5}, got)
	pool.Wait()
}

func TestReduceOnPool(t *testing.T) {
	t.Parallel()
	pool := sched.NewPool()
	got, err := blocking.Reduce(context.Background(), pool, []int{1, 2, 3, 4}, 0, func(x, y int) int {
		return x + y
	})
	require.NoError(t, err)
	require.Equal(t, 10, got)
	pool.Wait()
}

func TestMaxElementEmpty(t *testing.T) {
	t.Parallel()
	pool := sched.NewPool()
	_, err := blocking.MaxElement(context.Background(), pool, []int{})
	require.ErrorIs(t, err, async.ErrEmptyRange)
	pool.Wait()
}

func TestFindOnSerial(t *testing.T) {
	t.Parallel()
	serial := sched.NewSerial()
	defer serial.Close()
	got, err := blocking.Find(context.Background(), serial, []string{"a", "b", "c"}, func(s string) bool {
		return s == "b"
	})
	require.NoError(t, err)
	require.Equal(t, 1, got)
}

func TestAfterSequencesWork(t *testing.T) {
	t.Parallel()
	pool := sched.NewPool()
	data := []int{9, 1, 5}

	sorted := async.Sort(sender.ScheduleOn(pool, policy.Par), data)
	gap, err := blocking.ReduceAfter(context.Background(), sorted, data, 0, func(x, y int) int {
		return x + y
	})
	require.NoError(t, err)
	require.Equal(t, 15, gap)
	require.Equal(t, []int{1, 5, 9}, data)
	pool.Wait()
}

func TestAfterWithoutSchedulerPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		_ = blocking.ForEachAfter(context.Background(), sender.Just(1), []int{1}, func(int) {})
	})
}

func TestNilSchedulerPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		_ = blocking.ForEach(context.Background(), nil, []int{1}, func(int) {})
	})
}
