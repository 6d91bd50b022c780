package dataset

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// StratifiedSplit partitions a labeled frame into a training partition and a
// validation partition by sampling within each class, so that each partition
// approximates the full dataset's class proportions.
//
// The split is deterministic for a fixed seed. The two partitions are
// disjoint and together cover the frame; an empty partition is fatal.
func StratifiedSplit(f *Frame, trainFrac float64, seed int64) (train, valid *Frame, err error) {
	if !f.Labeled() {
		return nil, nil, fmt.Errorf("stratified split requires a labeled frame")
	}
	if trainFrac <= 0 || trainFrac >= 1 {
		return nil, nil, fmt.Errorf("train fraction must be in (0, 1), got %v", trainFrac)
	}

	byClass := make(map[string][]int)
	for i, l := range f.labels {
		byClass[l] = append(byClass[l], i)
	}

	rng := rand.New(rand.NewSource(seed))
	var trainIdx, validIdx []int
	// Iterate classes in sorted order so the shuffle sequence is reproducible.
	for _, class := range f.classes {
		idx := append([]int(nil), byClass[class]...)
		rng.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })
		n := int(math.Round(trainFrac * float64(len(idx))))
		if n < 1 {
			n = 1
		}
		if n > len(idx) {
			n = len(idx)
		}
		trainIdx = append(trainIdx, idx[:n]...)
		validIdx = append(validIdx, idx[n:]...)
	}

	if len(trainIdx) == 0 || len(validIdx) == 0 {
		return nil, nil, fmt.Errorf("split produced an empty partition (train=%d, validation=%d)",
			len(trainIdx), len(validIdx))
	}
	if len(trainIdx)+len(validIdx) != f.NumRows() {
		return nil, nil, fmt.Errorf("split sizes %d+%d do not cover %d observations",
			len(trainIdx), len(validIdx), f.NumRows())
	}

	// Restore original row order inside each partition.
	sort.Ints(trainIdx)
	sort.Ints(validIdx)
	return f.subframe(trainIdx), f.subframe(validIdx), nil
}
