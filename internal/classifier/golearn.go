package classifier

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/ensemble"
	"github.com/sjwhitworth/golearn/evaluation"
	"github.com/sjwhitworth/golearn/filters"
	"github.com/sjwhitworth/golearn/knn"

	"github.com/your-org/lift-form-analyzer/internal/dataset"
)

const labelAttributeName = "classe"

// newInstances converts a dataset view into golearn DenseInstances. The class
// attribute's category order is seeded from classes so that instances built
// from different views stay compatible. Rows of an unlabeled view get a
// placeholder class value, which prediction ignores.
func newInstances(v *dataset.View, classes []string) (*base.DenseInstances, error) {
	if len(classes) == 0 {
		return nil, fmt.Errorf("no class labels available to build instances")
	}
	inst := base.NewDenseInstances()
	specs := make([]base.AttributeSpec, len(v.Names))
	for i, name := range v.Names {
		specs[i] = inst.AddAttribute(base.NewFloatAttribute(name))
	}
	classAttr := new(base.CategoricalAttribute)
	classAttr.SetName(labelAttributeName)
	for _, c := range classes {
		classAttr.GetSysValFromString(c)
	}
	classSpec := inst.AddAttribute(classAttr)
	if err := inst.AddClassAttribute(classAttr); err != nil {
		return nil, fmt.Errorf("failed to mark class attribute: %w", err)
	}
	if err := inst.Extend(len(v.Rows)); err != nil {
		return nil, fmt.Errorf("failed to allocate instances: %w", err)
	}
	for i, row := range v.Rows {
		for j := range specs {
			inst.Set(specs[j], i, base.PackFloatToBytes(row[j]))
		}
		label := classes[0]
		if v.Labels != nil {
			label = v.Labels[i]
		}
		inst.Set(classSpec, i, classAttr.GetSysValFromString(label))
	}
	return inst, nil
}

// readPredictions extracts the predicted class label per row.
func readPredictions(pred base.FixedDataGrid, n int) []string {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = base.GetClass(pred, i)
	}
	return out
}

type knnModel struct {
	id      string
	spec    Spec
	cls     *knn.KNNClassifier
	classes []string
}

func newKNNModel(spec Spec) *knnModel {
	return &knnModel{
		id:   fmt.Sprintf("model-%s", uuid.New().String()),
		spec: spec,
	}
}

func (m *knnModel) Fit(ctx context.Context, data *dataset.View) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if data.Labels == nil {
		return fmt.Errorf("cannot fit on unlabeled data")
	}
	inst, err := newInstances(data, data.Classes)
	if err != nil {
		return err
	}
	cls := knn.NewKnnClassifier("euclidean", "linear", m.spec.Neighbours)
	if err := cls.Fit(inst); err != nil {
		return fmt.Errorf("knn fit failed: %w", err)
	}
	m.cls = cls
	m.classes = data.Classes
	return nil
}

func (m *knnModel) Predict(ctx context.Context, data *dataset.View) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.cls == nil {
		return nil, fmt.Errorf("model %s has not been fitted", m.id)
	}
	classes := data.Classes
	if len(classes) == 0 {
		classes = m.classes
	}
	inst, err := newInstances(data, classes)
	if err != nil {
		return nil, err
	}
	pred, err := m.cls.Predict(inst)
	if err != nil {
		return nil, fmt.Errorf("knn predict failed: %w", err)
	}
	return readPredictions(pred, len(data.Rows)), nil
}

func (m *knnModel) ID() string { return m.id }

func (m *knnModel) Name() string {
	return fmt.Sprintf("knn(k=%d)", m.spec.Neighbours)
}

type forestModel struct {
	id      string
	spec    Spec
	filter  *filters.ChiMergeFilter
	rf      *ensemble.RandomForest
	classes []string
}

func newForestModel(spec Spec) *forestModel {
	return &forestModel{
		id:   fmt.Sprintf("model-%s", uuid.New().String()),
		spec: spec,
	}
}

// discretize trains a ChiMerge filter on the instances. Random forests in
// golearn split on categorical attributes, so float measurements are binned
// first.
func discretize(inst base.FixedDataGrid, significance float64) (*filters.ChiMergeFilter, base.FixedDataGrid, error) {
	filter := filters.NewChiMergeFilter(inst, significance)
	for _, a := range base.NonClassAttributes(inst) {
		filter.AddAttribute(a)
	}
	if err := filter.Train(); err != nil {
		return nil, nil, fmt.Errorf("chimerge training failed: %w", err)
	}
	return filter, base.NewLazilyFilteredInstances(inst, filter), nil
}

func (m *forestModel) Fit(ctx context.Context, data *dataset.View) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if data.Labels == nil {
		return fmt.Errorf("cannot fit on unlabeled data")
	}
	inst, err := newInstances(data, data.Classes)
	if err != nil {
		return err
	}
	nFeatures := m.spec.ForestFeatures
	if nFeatures > len(data.Names) {
		nFeatures = len(data.Names)
	}
	filter, filtered, err := discretize(inst, m.spec.Significance)
	if err != nil {
		return err
	}
	rf := ensemble.NewRandomForest(m.spec.ForestSize, nFeatures)
	if err := rf.Fit(filtered); err != nil {
		return fmt.Errorf("random forest fit failed: %w", err)
	}
	m.filter = filter
	m.rf = rf
	m.classes = data.Classes
	return nil
}

func (m *forestModel) Predict(ctx context.Context, data *dataset.View) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.rf == nil {
		return nil, fmt.Errorf("model %s has not been fitted", m.id)
	}
	classes := data.Classes
	if len(classes) == 0 {
		classes = m.classes
	}
	inst, err := newInstances(data, classes)
	if err != nil {
		return nil, err
	}
	filtered := base.NewLazilyFilteredInstances(inst, m.filter)
	pred, err := m.rf.Predict(filtered)
	if err != nil {
		return nil, fmt.Errorf("random forest predict failed: %w", err)
	}
	return readPredictions(pred, len(data.Rows)), nil
}

func (m *forestModel) ID() string { return m.id }

func (m *forestModel) Name() string {
	return fmt.Sprintf("forest(size=%d, features=%d)", m.spec.ForestSize, m.spec.ForestFeatures)
}

// CrossValidate runs k-fold cross-validation for spec over a labeled view
// and returns the per-fold accuracies, in fold order.
func CrossValidate(ctx context.Context, spec Spec, data *dataset.View, folds int) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if data.Labels == nil {
		return nil, fmt.Errorf("cross-validation requires labeled data")
	}
	inst, err := newInstances(data, data.Classes)
	if err != nil {
		return nil, err
	}
	var grid base.FixedDataGrid = inst
	var cls base.Classifier
	switch spec.Kind {
	case "knn":
		cls = knn.NewKnnClassifier("euclidean", "linear", spec.Neighbours)
	case "forest":
		nFeatures := spec.ForestFeatures
		if nFeatures > len(data.Names) {
			nFeatures = len(data.Names)
		}
		_, filtered, err := discretize(inst, spec.Significance)
		if err != nil {
			return nil, err
		}
		grid = filtered
		cls = ensemble.NewRandomForest(spec.ForestSize, nFeatures)
	default:
		return nil, fmt.Errorf("unknown classifier kind %q", spec.Kind)
	}

	cms, err := evaluation.GenerateCrossFoldValidationConfusionMatrices(grid, cls, folds)
	if err != nil {
		return nil, fmt.Errorf("cross-validation failed: %w", err)
	}
	accuracies := make([]float64, len(cms))
	for i, cm := range cms {
		accuracies[i] = evaluation.GetAccuracy(cm)
	}
	return accuracies, nil
}
