package speculative_test

import (
	"testing"

	"github.com/intel/forGoAsync/speculative"
)

func TestRangeOr(t *testing.T) {
	hit := speculative.RangeOr(0, 10000, func(low, high int) bool {
		return low <= 7777 && 7777 < high
	})
	if !hit {
		t.Error("expected true")
	}
	miss := speculative.RangeOr(0, 10000, func(low, high int) bool {
		return false
	})
	if miss {
		t.Error("expected false")
	}
}

func TestRangeAnd(t *testing.T) {
	all := speculative.RangeAnd(0, 10000, func(low, high int) bool {
		return true
	})
	if !all {
		t.Error("expected true")
	}
	some := speculative.RangeAnd(0, 10000, func(low, high int) bool {
		return !(low <= 7777 && 7777 < high)
	})
	if some {
		t.Error("expected false")
	}
}

func TestRangeFindLeftMost(t *testing.T) {
	got := speculative.RangeFind(0, 10000, func(low, high int) int {
		for _, target := range []int{123, 9876} {
			if low <= target && target < high {
				return target
			}
		}
		return -1
	})
	if got != 123 {
		t.Errorf("expected the left-most match at 123, got %d", got)
	}
}

func TestRangeFindNoMatch(t *testing.T) {
	got := speculative.RangeFind(0, 100, func(low, high int) int {
		return -1
	})
	if got != -1 {
		t.Errorf("expected -1, got %d", got)
	}
}

func TestEmptyRange(t *testing.T) {
	if speculative.RangeOr(0, 0, func(int, int) bool { return false }) {
		t.Error("expected false for an empty range")
	}
	if !speculative.RangeAnd(0, 0, func(int, int) bool { return true }) {
		t.Error("expected true for an empty range")
	}
	if got := speculative.RangeFind(3, 3, func(int, int) int { return -1 }); got != -1 {
		t.Errorf("expected -1, got %d", got)
	}
}
