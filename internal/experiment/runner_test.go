package experiment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/lift-form-analyzer/internal/features"
)

func TestRunner_TwoLocationUniverse(t *testing.T) {
	universe := []features.Location{features.Belt, features.Arm}
	train, valid := syntheticFrames(t, universe, 30)

	ev, err := NewEvaluator(train, valid, knnSpec(), 5, 0.95)
	require.NoError(t, err)
	runner, err := NewRunner(ev, universe)
	require.NoError(t, err)

	result, err := runner.Run(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, result.RunID)

	// {belt}, {arm}, {belt,arm}, appended in enumeration order.
	require.Len(t, result.Records, 3)
	assert.Equal(t, features.Subset{features.Belt}, result.Records[0].Subset)
	assert.Equal(t, features.Subset{features.Arm}, result.Records[1].Subset)
	assert.Equal(t, features.Subset{features.Belt, features.Arm}, result.Records[2].Subset)
	for i, rec := range result.Records {
		assert.Equal(t, i, rec.Index)
	}

	// The selection holds the strict maximum; on a total tie it is the
	// first subset.
	best, ok := result.Selection.Best()
	require.True(t, ok)
	for _, rec := range result.Records {
		assert.GreaterOrEqual(t, best.OutOfSample.Value, rec.OutOfSample.Value)
		if rec.OutOfSample.Value == best.OutOfSample.Value {
			assert.LessOrEqual(t, best.Index, rec.Index)
		}
	}
	assert.NotNil(t, result.Selection.Model())
}

func TestRunner_FailingSubsetAbortsRun(t *testing.T) {
	// Evaluator only has belt columns but the runner enumerates belt and arm,
	// so the arm subset fails and takes the run down with it.
	train, valid := syntheticFrames(t, []features.Location{features.Belt}, 20)
	ev, err := NewEvaluator(train, valid, knnSpec(), 5, 0.95)
	require.NoError(t, err)

	runner, err := NewRunner(ev, []features.Location{features.Belt, features.Arm})
	require.NoError(t, err)

	_, err = runner.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "arm")
}

func TestNewRunner_EmptyUniverse(t *testing.T) {
	train, valid := syntheticFrames(t, []features.Location{features.Belt}, 20)
	ev, err := NewEvaluator(train, valid, knnSpec(), 5, 0.95)
	require.NoError(t, err)

	_, err = NewRunner(ev, nil)
	assert.Error(t, err)
}
