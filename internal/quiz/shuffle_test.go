package quiz

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermutation_IsPermutation(t *testing.T) {
	for _, n := range []int{1, 2, 4, 10} {
		order := Permutation(n)
		assert.Len(t, order, n)

		sorted := append([]int(nil), order...)
		sort.Ints(sorted)
		for i := range sorted {
			assert.Equal(t, i, sorted[i])
		}
	}
}

func TestPermutation_Empty(t *testing.T) {
	assert.Empty(t, Permutation(0))
	assert.Empty(t, Permutation(-3))
}

func TestPermutation_Randomizes(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		seen[fmt.Sprint(Permutation(4))] = struct{}{}
	}

	// 24 перестановки, за 200 попыток должно выпасть заметно больше одной
	assert.Greater(t, len(seen), 10)
}

func TestPermutation_EveryPositionReachable(t *testing.T) {
	first := make(map[int]int)
	for i := 0; i < 1000; i++ {
		first[Permutation(4)[0]]++
	}

	for k := 0; k < 4; k++ {
		assert.Greater(t, first[k], 100, "element %d rarely comes first", k)
	}
}
