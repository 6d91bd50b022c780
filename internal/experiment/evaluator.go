package experiment

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/your-org/lift-form-analyzer/internal/classifier"
	"github.com/your-org/lift-form-analyzer/internal/dataset"
	"github.com/your-org/lift-form-analyzer/internal/features"
)

// Evaluator trains and scores one classifier per feature subset. The
// validation partition is never touched during training or fold tuning; it is
// scored exactly once per subset.
type Evaluator struct {
	train      *dataset.Frame
	valid      *dataset.Frame
	spec       classifier.Spec
	folds      int
	confidence float64
}

// NewEvaluator validates the partitions and builds an Evaluator.
func NewEvaluator(train, valid *dataset.Frame, spec classifier.Spec, folds int, confidence float64) (*Evaluator, error) {
	if train == nil || train.NumRows() == 0 {
		return nil, fmt.Errorf("training partition is empty")
	}
	if valid == nil || valid.NumRows() == 0 {
		return nil, fmt.Errorf("validation partition is empty")
	}
	if !train.Labeled() || !valid.Labeled() {
		return nil, fmt.Errorf("both partitions must be labeled")
	}
	if folds < 2 {
		return nil, fmt.Errorf("cross-validation needs at least 2 folds, got %d", folds)
	}
	if confidence <= 0 || confidence >= 1 {
		return nil, fmt.Errorf("confidence must be in (0, 1), got %v", confidence)
	}
	return &Evaluator{
		train:      train,
		valid:      valid,
		spec:       spec,
		folds:      folds,
		confidence: confidence,
	}, nil
}

// Evaluate restricts both partitions to the subset's columns, cross-validates
// on the training partition, refits on the full training partition, and
// scores the result once against the validation partition. A column that is
// missing or non-numeric aborts the evaluation; each subset is attempted
// exactly once.
func (e *Evaluator) Evaluate(ctx context.Context, index int, sub features.Subset) (Record, classifier.Model, error) {
	if len(sub) == 0 {
		return Record{}, nil, fmt.Errorf("feature subset must not be empty")
	}
	cols := features.Columns(sub)

	trainView, err := e.train.Select(cols)
	if err != nil {
		return Record{}, nil, fmt.Errorf("training partition: %w", err)
	}
	validView, err := e.valid.Select(cols)
	if err != nil {
		return Record{}, nil, fmt.Errorf("validation partition: %w", err)
	}

	foldAcc, err := classifier.CrossValidate(ctx, e.spec, trainView, e.folds)
	if err != nil {
		return Record{}, nil, err
	}

	model, err := classifier.New(e.spec)
	if err != nil {
		return Record{}, nil, err
	}
	if err := model.Fit(ctx, trainView); err != nil {
		return Record{}, nil, err
	}

	predictions, err := model.Predict(ctx, validView)
	if err != nil {
		return Record{}, nil, err
	}
	correct := 0
	for i, p := range predictions {
		if p == validView.Labels[i] {
			correct++
		}
	}
	total := len(validView.Labels)
	lower, upper := binomialInterval(correct, total, e.confidence)

	rec := Record{
		Index:          index,
		Subset:         sub,
		FoldAccuracies: foldAcc,
		InSampleMean:   stat.Mean(foldAcc, nil),
		InSampleStdDev: stat.StdDev(foldAcc, nil),
		OutOfSample: Accuracy{
			Value:   float64(correct) / float64(total),
			Lower:   lower,
			Upper:   upper,
			Correct: correct,
			Total:   total,
		},
		ModelID: model.ID(),
	}
	return rec, model, nil
}

// ValidationPredictions reruns the selected model against the validation
// partition restricted to the subset, for confusion-matrix reporting.
func (e *Evaluator) ValidationPredictions(ctx context.Context, model classifier.Model, sub features.Subset) (actual, predicted []string, err error) {
	validView, err := e.valid.Select(features.Columns(sub))
	if err != nil {
		return nil, nil, err
	}
	predicted, err = model.Predict(ctx, validView)
	if err != nil {
		return nil, nil, err
	}
	return validView.Labels, predicted, nil
}
