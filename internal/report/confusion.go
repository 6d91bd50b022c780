package report

import (
	"fmt"
	"sort"
)

// ConfusionMatrix は検証予測から作られる混同行列です。
// Counts は actual -> predicted -> count の形で保持します。
type ConfusionMatrix struct {
	Classes []string
	Counts  map[string]map[string]int
	total   int
}

// NewConfusionMatrix builds a confusion matrix from paired actual and
// predicted labels. Classes are the sorted union of both label sets.
func NewConfusionMatrix(actual, predicted []string) (*ConfusionMatrix, error) {
	if len(actual) != len(predicted) {
		return nil, fmt.Errorf("actual and predicted lengths differ: %d vs %d", len(actual), len(predicted))
	}
	if len(actual) == 0 {
		return nil, fmt.Errorf("no predictions to tabulate")
	}
	seen := make(map[string]struct{})
	counts := make(map[string]map[string]int)
	for i, a := range actual {
		p := predicted[i]
		seen[a] = struct{}{}
		seen[p] = struct{}{}
		if counts[a] == nil {
			counts[a] = make(map[string]int)
		}
		counts[a][p]++
	}
	classes := make([]string, 0, len(seen))
	for c := range seen {
		classes = append(classes, c)
	}
	sort.Strings(classes)
	return &ConfusionMatrix{Classes: classes, Counts: counts, total: len(actual)}, nil
}

// Accuracy returns the fraction of observations on the matrix diagonal.
func (m *ConfusionMatrix) Accuracy() float64 {
	correct := 0
	for _, c := range m.Classes {
		correct += m.Counts[c][c]
	}
	return float64(correct) / float64(m.total)
}

// Sensitivity はクラスごとの感度 TP/(TP+FN) を返します。
func (m *ConfusionMatrix) Sensitivity(class string) float64 {
	tp := m.Counts[class][class]
	fn := 0
	for _, p := range m.Classes {
		if p != class {
			fn += m.Counts[class][p]
		}
	}
	if tp+fn == 0 {
		return 0
	}
	return float64(tp) / float64(tp+fn)
}

// Specificity はクラスごとの特異度 TN/(TN+FP) を返します。
func (m *ConfusionMatrix) Specificity(class string) float64 {
	fp := 0
	for _, a := range m.Classes {
		if a != class {
			fp += m.Counts[a][class]
		}
	}
	tn := 0
	for _, a := range m.Classes {
		if a == class {
			continue
		}
		for _, p := range m.Classes {
			if p != class {
				tn += m.Counts[a][p]
			}
		}
	}
	if tn+fp == 0 {
		return 0
	}
	return float64(tn) / float64(tn+fp)
}
