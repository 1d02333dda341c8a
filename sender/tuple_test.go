package sender_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intel/forGoAsync/sender"
)

func TestSelect(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		indices []int
		want    sender.Tuple
	}{
		{"reorder", []int{2, 0, 1}, sender.Tuple{"c", "a", "b"}},
		{"subset", []int{1}, sender.Tuple{"b"}},
		{"repeat", []int{0, 0, 2}, sender.Tuple{"a", "a", "c"}},
		{"identity", []int{0, 1, 2}, sender.Tuple{"a", "b", "c"}},
		{"empty", nil, sender.Tuple{}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s := sender.Select(sender.JustValues("a", "b", "c"), tc.indices...)
			got, err := s.Await(context.Background())
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestSelectNegativeIndexPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		sender.Select(sender.JustValues(1, 2), -1)
	})
}

func TestSelectIndexOutOfRangePanicsAtDelivery(t *testing.T) {
	t.Parallel()
	s := sender.Select(sender.JustValues(1, 2), 5)
	assert.Panics(t, func() {
		_, _ = s.Await(context.Background())
	})
}

func TestWith(t *testing.T) {
	t.Parallel()
	s := sender.With(sender.JustValues(3, 4), func(vs ...any) any {
		return vs[0].(int) * vs[1].(int)
	})
	got, err := s.Await(context.Background())
	require.NoError(t, err)
	require.Equal(t, sender.Tuple{3, 4, 12}, got)
}

func TestWithThenSelect(t *testing.T) {
	t.Parallel()
	s := sender.Select(
		sender.With(sender.JustValues("x", "y"), func(vs ...any) any {
			return vs[0].(string) + vs[1].(string)
		}),
		2, 0,
	)
	got, err := s.Await(context.Background())
	require.NoError(t, err)
	require.Equal(t, sender.Tuple{"xy", "x"}, got)
}
