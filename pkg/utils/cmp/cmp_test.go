package cmp_test

import (
	"testing"

	"github.com/matkb/matkb/pkg/utils/cmp"
)

func TestSliceEq(t *testing.T) {
	t.Run("it detects equal slices", func(t *testing.T) {
		a := []string{"a", "b", "c"}
		b := []string{"a", "b", "c"}
		if !cmp.SliceEq(a, b) || !cmp.SliceEq(b, a) {
			t.Error("two slices are not equal, unexpectedly.")
		}
	})

	t.Run("it detects ordering differences", func(t *testing.T) {
		if cmp.SliceEq([]string{"a", "b"}, []string{"b", "a"}) {
			t.Error("slices in different order are equal, unexpectedly.")
		}
	})

	t.Run("it detects length differences", func(t *testing.T) {
		if cmp.SliceEq([]string{"a"}, []string{"a", "a"}) {
			t.Error("slices with different length are equal, unexpectedly.")
		}
	})
}

func TestSliceContentEq(t *testing.T) {
	t.Run("it ignores ordering", func(t *testing.T) {
		if !cmp.SliceContentEq([]int{1, 2, 3}, []int{3, 1, 2}) {
			t.Error("same content is not equal, unexpectedly.")
		}
	})

	t.Run("it cares multiplicity", func(t *testing.T) {
		if cmp.SliceContentEq([]int{1, 1, 2}, []int{1, 2, 2}) {
			t.Error("different multiplicity is equal, unexpectedly.")
		}
	})
}

func TestMapEq(t *testing.T) {
	t.Run("it detects equal maps", func(t *testing.T) {
		a := map[string]int{"x": 1, "y": 2}
		b := map[string]int{"y": 2, "x": 1}
		if !cmp.MapEq(a, b) {
			t.Error("two maps are not equal, unexpectedly.")
		}
	})

	t.Run("it detects value differences", func(t *testing.T) {
		a := map[string]int{"x": 1}
		b := map[string]int{"x": 2}
		if cmp.MapEq(a, b) {
			t.Error("maps with different values are equal, unexpectedly.")
		}
	})

	t.Run("it detects key differences", func(t *testing.T) {
		a := map[string]int{"x": 1}
		b := map[string]int{"y": 1}
		if cmp.MapEq(a, b) {
			t.Error("maps with different keys are equal, unexpectedly.")
		}
	})
}

func TestSliceEqWith(t *testing.T) {
	sameLen := func(a string, b int) bool { return len(a) == b }

	t.Run("it matches elements pairwise with pred", func(t *testing.T) {
		if !cmp.SliceEqWith([]string{"a", "bb"}, []int{1, 2}, sameLen) {
			t.Error("two slices are not equal, unexpectedly.")
		}
	})

	t.Run("it detects an unmatched pair", func(t *testing.T) {
		if cmp.SliceEqWith([]string{"a", "bb"}, []int{1, 3}, sameLen) {
			t.Error("slices with an unmatched pair are equal, unexpectedly.")
		}
	})

	t.Run("it detects length differences", func(t *testing.T) {
		if cmp.SliceEqWith([]string{"a"}, []int{1, 2}, sameLen) {
			t.Error("slices with different length are equal, unexpectedly.")
		}
	})
}

func TestMapEqWith(t *testing.T) {
	sameLen := func(a string, b int) bool { return len(a) == b }

	t.Run("it matches values under shared keys with pred", func(t *testing.T) {
		a := map[string]string{"x": "a", "y": "bb"}
		b := map[string]int{"x": 1, "y": 2}
		if !cmp.MapEqWith(a, b, sameLen) {
			t.Error("two maps are not equal, unexpectedly.")
		}
	})

	t.Run("it detects an unmatched value", func(t *testing.T) {
		a := map[string]string{"x": "a"}
		b := map[string]int{"x": 2}
		if cmp.MapEqWith(a, b, sameLen) {
			t.Error("maps with an unmatched value are equal, unexpectedly.")
		}
	})

	t.Run("it detects key differences", func(t *testing.T) {
		a := map[string]string{"x": "a"}
		b := map[string]int{"y": 1}
		if cmp.MapEqWith(a, b, sameLen) {
			t.Error("maps with different keys are equal, unexpectedly.")
		}
	})
}
