// Package experiment runs the subset-search experiment: one classifier per
// sensor-location subset, scored on a held-out validation partition.
package experiment

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/your-org/lift-form-analyzer/internal/features"
)

// Accuracy is an out-of-sample accuracy estimate with a two-sided exact
// binomial confidence interval on the correct-classification count.
type Accuracy struct {
	Value   float64
	Lower   float64
	Upper   float64
	Correct int
	Total   int
}

// Record is the per-subset evaluation result. Records are append-only and
// ordered by subset enumeration index, not by accuracy.
type Record struct {
	Index          int
	Subset         features.Subset
	FoldAccuracies []float64
	InSampleMean   float64
	InSampleStdDev float64
	OutOfSample    Accuracy
	ModelID        string
}

// binomialInterval computes the Clopper-Pearson interval for correct
// successes out of total trials at the given confidence level, via Beta
// distribution quantiles. Bounds always satisfy lower <= p-hat <= upper.
func binomialInterval(correct, total int, confidence float64) (lower, upper float64) {
	alpha := 1 - confidence
	lower, upper = 0, 1
	if correct > 0 {
		lower = distuv.Beta{
			Alpha: float64(correct),
			Beta:  float64(total - correct + 1),
		}.Quantile(alpha / 2)
	}
	if correct < total {
		upper = distuv.Beta{
			Alpha: float64(correct + 1),
			Beta:  float64(total - correct),
		}.Quantile(1 - alpha/2)
	}
	return lower, upper
}
