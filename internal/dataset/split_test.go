package dataset

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stratifiedFixture builds a frame with 100 rows of class A, 60 of B and 40
// of C, with a row-identifying value in column "id".
func stratifiedFixture(t *testing.T) *Frame {
	t.Helper()
	var rows [][]float64
	var labels []string
	add := func(class string, n int) {
		for i := 0; i < n; i++ {
			rows = append(rows, []float64{float64(len(rows))})
			labels = append(labels, class)
		}
	}
	add("A", 100)
	add("B", 60)
	add("C", 40)
	f, err := NewFrame([]string{"id"}, rows, labels)
	require.NoError(t, err)
	return f
}

func TestStratifiedSplit_DisjointAndCovering(t *testing.T) {
	f := stratifiedFixture(t)

	train, valid, err := StratifiedSplit(f, 0.7, 42)
	require.NoError(t, err)

	assert.Equal(t, f.NumRows(), train.NumRows()+valid.NumRows())

	trainView, err := train.Select([]string{"id"})
	require.NoError(t, err)
	validView, err := valid.Select([]string{"id"})
	require.NoError(t, err)

	seen := make(map[float64]int)
	for _, v := range trainView.Rows {
		seen[v[0]]++
	}
	for _, v := range validView.Rows {
		seen[v[0]]++
	}
	for id, count := range seen {
		assert.Equal(t, 1, count, "row %v appears in both partitions", id)
	}
	assert.Len(t, seen, f.NumRows())
}

func TestStratifiedSplit_PreservesClassProportions(t *testing.T) {
	f := stratifiedFixture(t)

	train, valid, err := StratifiedSplit(f, 0.7, 42)
	require.NoError(t, err)

	fullCounts := f.ClassCounts()
	for _, part := range []*Frame{train, valid} {
		counts := part.ClassCounts()
		for class, full := range fullCounts {
			wantShare := float64(full) / float64(f.NumRows())
			gotShare := float64(counts[class]) / float64(part.NumRows())
			assert.InDeltaf(t, wantShare, gotShare, 0.05,
				"class %s proportion drifted: want ~%.2f, got %.2f", class, wantShare, gotShare)
		}
	}
}

func TestStratifiedSplit_DeterministicPerSeed(t *testing.T) {
	f := stratifiedFixture(t)

	train1, valid1, err := StratifiedSplit(f, 0.7, 7)
	require.NoError(t, err)
	train2, valid2, err := StratifiedSplit(f, 0.7, 7)
	require.NoError(t, err)

	if diff := cmp.Diff(train1.Labels(), train2.Labels()); diff != "" {
		t.Errorf("train labels differ across identical seeds:\n%s", diff)
	}
	if diff := cmp.Diff(valid1.Labels(), valid2.Labels()); diff != "" {
		t.Errorf("validation labels differ across identical seeds:\n%s", diff)
	}
}

func TestStratifiedSplit_Errors(t *testing.T) {
	f := stratifiedFixture(t)

	_, _, err := StratifiedSplit(f, 0, 1)
	assert.Error(t, err)
	_, _, err = StratifiedSplit(f, 1, 1)
	assert.Error(t, err)

	unlabeled, err := NewFrame([]string{"a"}, [][]float64{{1}, {2}}, nil)
	require.NoError(t, err)
	_, _, err = StratifiedSplit(unlabeled, 0.7, 1)
	assert.Error(t, err)
}

func TestStratifiedSplit_RoundsPerClass(t *testing.T) {
	f := stratifiedFixture(t)

	train, _, err := StratifiedSplit(f, 0.7, 99)
	require.NoError(t, err)

	counts := train.ClassCounts()
	assert.Equal(t, int(math.Round(0.7*100)), counts["A"])
	assert.Equal(t, int(math.Round(0.7*60)), counts["B"])
	assert.Equal(t, int(math.Round(0.7*40)), counts["C"])
}
