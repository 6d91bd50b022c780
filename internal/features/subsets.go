package features

import "strings"

// Subset is a non-empty selection of sensor locations, ordered by the
// universe's natural order.
type Subset []Location

// String renders the subset as a stable, human-readable identifier,
// e.g. "belt+dumbbell".
func (s Subset) String() string {
	parts := make([]string, len(s))
	for i, loc := range s {
		parts[i] = string(loc)
	}
	return strings.Join(parts, "+")
}

// Enumerate produces every non-empty subset of the given universe, grouped by
// size 1..len(universe). Within each size, subsets appear in lexicographic
// combination order over universe indices. The output is fully deterministic:
// for a universe of size L it always contains exactly 2^L - 1 subsets.
func Enumerate(universe []Location) []Subset {
	n := len(universe)
	subsets := make([]Subset, 0, (1<<n)-1)
	for size := 1; size <= n; size++ {
		combinations(n, size, func(idx []int) {
			sub := make(Subset, size)
			for i, j := range idx {
				sub[i] = universe[j]
			}
			subsets = append(subsets, sub)
		})
	}
	return subsets
}

// combinations visits every k-combination of {0..n-1} in lexicographic order.
func combinations(n, k int, visit func(idx []int)) {
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		visit(idx)
		// Advance to the next combination.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
