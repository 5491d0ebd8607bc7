package shuffle

import (
	"slices"
	"testing"
)

func TestNewSeeded_Reproducible(t *testing.T) {
	t.Parallel()

	a := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	b := slices.Clone(a)

	Slice(NewSeeded(7), a)
	Slice(NewSeeded(7), b)

	if !slices.Equal(a, b) {
		t.Errorf("same seed gave %v and %v", a, b)
	}
}

func TestNewSeeded_IsPermutation(t *testing.T) {
	t.Parallel()

	xs := []int{5, 3, 9, 1, 7}
	Slice(NewSeeded(99), xs)

	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	if !slices.Equal(sorted, []int{1, 3, 5, 7, 9}) {
		t.Errorf("shuffle lost elements: %v", xs)
	}
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	xs := []string{"a", "b", "c"}
	Slice(Identity{}, xs)
	if !slices.Equal(xs, []string{"a", "b", "c"}) {
		t.Errorf("Identity reordered: %v", xs)
	}
}

func TestSource_SeededSequence(t *testing.T) {
	t.Parallel()

	run := func() [][]int {
		src := NewSource(11)
		var out [][]int
		for range 3 {
			xs := []int{1, 2, 3, 4, 5, 6}
			Slice(src.Next(), xs)
			out = append(out, xs)
		}
		return out
	}

	first, second := run(), run()
	for i := range first {
		if !slices.Equal(first[i], second[i]) {
			t.Errorf("session %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}
