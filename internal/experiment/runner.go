package experiment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/your-org/lift-form-analyzer/internal/features"
	"github.com/your-org/lift-form-analyzer/pkg/logger"
)

// Result is the outcome of a full subset-search run.
type Result struct {
	RunID     string
	Records   []Record
	Selection *Selection
}

// Runner evaluates every non-empty subset of the location universe in
// enumeration order and folds the records into a Selection. Subsets are
// evaluated sequentially to completion; a failure in any subset aborts the
// whole run, since partial results are not interpretable as the
// model-selection experiment.
type Runner struct {
	evaluator *Evaluator
	universe  []features.Location
}

// NewRunner builds a Runner over the given location universe.
func NewRunner(evaluator *Evaluator, universe []features.Location) (*Runner, error) {
	if len(universe) == 0 {
		return nil, fmt.Errorf("location universe must not be empty")
	}
	return &Runner{evaluator: evaluator, universe: universe}, nil
}

// Run executes the experiment.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	subsets := features.Enumerate(r.universe)
	logger.Infof("Evaluating %d feature subsets over %d locations", len(subsets), len(r.universe))

	selection := NewSelection()
	records := make([]Record, 0, len(subsets))
	for i, sub := range subsets {
		rec, model, err := r.evaluator.Evaluate(ctx, i, sub)
		if err != nil {
			return nil, fmt.Errorf("subset %s: %w", sub, err)
		}
		records = append(records, rec)
		if selection.Consider(rec, model) {
			logger.Infof("Subset %s is the new best: out-of-sample accuracy %.4f [%.4f, %.4f]",
				sub, rec.OutOfSample.Value, rec.OutOfSample.Lower, rec.OutOfSample.Upper)
		} else {
			logger.Debugf("Subset %s scored %.4f, keeping incumbent", sub, rec.OutOfSample.Value)
		}
	}

	return &Result{
		RunID:     uuid.New().String(),
		Records:   records,
		Selection: selection,
	}, nil
}
