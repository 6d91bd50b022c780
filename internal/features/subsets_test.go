package features

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumerate_TwoLocations(t *testing.T) {
	universe := []Location{"belt", "arm"}
	got := Enumerate(universe)

	want := []Subset{
		{"belt"},
		{"arm"},
		{"belt", "arm"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Enumerate mismatch (-want +got):\n%s", diff)
	}
}

func TestEnumerate_FullUniverse(t *testing.T) {
	universe := Universe()
	got := Enumerate(universe)

	// 2^4 - 1 subsets for 4 locations.
	require.Len(t, got, 15)

	seen := make(map[string]struct{})
	for _, sub := range got {
		assert.NotEmpty(t, sub, "subsets must be non-empty")
		_, dup := seen[sub.String()]
		assert.False(t, dup, "subset %s appears twice", sub)
		seen[sub.String()] = struct{}{}
	}

	// Grouped by size: all size-1 subsets first, then size-2, etc.
	prevSize := 0
	for _, sub := range got {
		assert.GreaterOrEqual(t, len(sub), prevSize)
		prevSize = len(sub)
	}

	// First group follows the universe's natural order.
	assert.Equal(t, Subset{Belt}, got[0])
	assert.Equal(t, Subset{Arm}, got[1])
	assert.Equal(t, Subset{Dumbbell}, got[2])
	assert.Equal(t, Subset{Forearm}, got[3])
	// Size-2 group starts in lexicographic combination order.
	assert.Equal(t, Subset{Belt, Arm}, got[4])
	assert.Equal(t, Subset{Belt, Dumbbell}, got[5])
	// The last subset is the whole universe.
	assert.Equal(t, Subset(universe), got[14])
}

func TestEnumerate_Deterministic(t *testing.T) {
	first := Enumerate(Universe())
	second := Enumerate(Universe())
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Enumerate is not deterministic (-first +second):\n%s", diff)
	}
}

func TestSubsetString(t *testing.T) {
	assert.Equal(t, "belt", Subset{Belt}.String())
	assert.Equal(t, "belt+dumbbell", Subset{Belt, Dumbbell}.String())
}
