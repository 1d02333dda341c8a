package sender_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intel/forGoAsync/policy"
	"github.com/intel/forGoAsync/sched"
	"github.com/intel/forGoAsync/sender"
)

func TestScheduleCarriesScheduler(t *testing.T) {
	t.Parallel()
	pool := sched.NewPool()
	s := sender.Schedule(pool)
	require.NotNil(t, s.Env().Scheduler)
	require.Equal(t, policy.Unspecified, s.Env().Policy)
	require.Equal(t, policy.Par, s.Env().ResolvedPolicy())

	_, err := s.Await(context.Background())
	require.NoError(t, err)
	pool.Wait()
}

func TestScheduleOnAttachesPolicy(t *testing.T) {
	t.Parallel()
	pool := sched.NewPool()
	s := sender.ScheduleOn(pool, policy.Seq)
	require.Equal(t, policy.Seq, s.Env().Policy)
	_, err := s.Await(context.Background())
	require.NoError(t, err)
	pool.Wait()
}

func TestScheduleNilPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		sender.Schedule(nil)
	})
}

func TestAttachPolicyMismatchPanics(t *testing.T) {
	t.Parallel()
	serial := sched.NewSerial()
	defer serial.Close()
	s := sender.Schedule(serial)
	assert.Panics(t, func() {
		sender.AttachPolicy(s, policy.Par)
	})
}

func TestScheduleOnMismatchPanics(t *testing.T) {
	t.Parallel()
	serial := sched.NewSerial()
	defer serial.Close()
	assert.Panics(t, func() {
		sender.ScheduleOn(serial, policy.ParUnseq)
	})
}

func TestAttachPolicyWithoutScheduler(t *testing.T) {
	t.Parallel()
	s := sender.AttachPolicy(sender.Just(1), policy.Par)
	require.Equal(t, policy.Par, s.Env().Policy)
	v, err := s.Await(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

func TestTransferRebindsAndDropsPolicy(t *testing.T) {
	t.Parallel()
	serial := sched.NewSerial()
	defer serial.Close()
	pool := sched.NewPool()

	s := sender.AttachPolicy(sender.Schedule(serial), policy.Seq)
	moved := sender.Transfer(s, pool)
	require.Equal(t, policy.Unspecified, moved.Env().Policy)
	require.Equal(t, policy.Par, moved.Env().ResolvedPolicy())

	_, err := moved.Await(context.Background())
	require.NoError(t, err)
	pool.Wait()
}

func TestOnAttachesBoth(t *testing.T) {
	t.Parallel()
	pool := sched.NewPool()
	s := sender.On(pool, policy.ParUnseq, sender.Just(3))
	require.Equal(t, policy.ParUnseq, s.Env().Policy)
	v, err := s.Await(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, v)
	pool.Wait()
}

func TestOnMismatchPanics(t *testing.T) {
	t.Parallel()
	serial := sched.NewSerial()
	defer serial.Close()
	assert.Panics(t, func() {
		sender.On(serial, policy.Par, sender.Just(1))
	})
}

func TestResolvedPolicyWithoutAnything(t *testing.T) {
	t.Parallel()
	require.Equal(t, policy.Seq, sender.Just(1).Env().ResolvedPolicy())
}
