// Package classifier wraps golearn classifiers behind a small Model
// interface so the experiment code never touches golearn types directly.
package classifier

import (
	"context"
	"fmt"

	"github.com/your-org/lift-form-analyzer/internal/dataset"
)

// Model is a trained classifier bound to one feature subset. A Model is
// produced once per subset and never mutated after training.
type Model interface {
	// Fit trains the model on a labeled view.
	Fit(ctx context.Context, data *dataset.View) error
	// Predict returns one class label per row of the view. The view may be
	// unlabeled; the label domain learned at fit time is used.
	Predict(ctx context.Context, data *dataset.View) ([]string, error)
	// ID returns the model's unique identifier.
	ID() string
	// Name returns a short human-readable description of the model kind.
	Name() string
}

// Spec selects a classifier kind and its hyperparameters.
type Spec struct {
	Kind           string // "knn" or "forest"
	Neighbours     int
	ForestSize     int
	ForestFeatures int
	Significance   float64
}

// New constructs an untrained Model for spec.
func New(spec Spec) (Model, error) {
	switch spec.Kind {
	case "knn":
		return newKNNModel(spec), nil
	case "forest":
		return newForestModel(spec), nil
	default:
		return nil, fmt.Errorf("unknown classifier kind %q", spec.Kind)
	}
}
