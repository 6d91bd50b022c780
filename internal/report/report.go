// Package report renders experiment results into tables. It consumes the
// ordered evaluation records and the selection; it never feeds back into the
// experiment itself.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/your-org/lift-form-analyzer/internal/experiment"
)

// RenderResults は評価レコードの一覧をテキストテーブルとして整形します。
// 行は列挙順のまま。選択されたサブセットには * を付けます。
func RenderResults(records []experiment.Record, selected experiment.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-3s %-30s %-18s %-12s %-22s\n",
		"", "subset", "in-sample (cv)", "out-sample", "95% CI")
	for _, rec := range records {
		marker := ""
		if rec.Index == selected.Index {
			marker = "*"
		}
		fmt.Fprintf(&b, "%-3s %-30s %.4f +/- %.4f  %-12.4f [%.4f, %.4f]\n",
			marker, rec.Subset.String(),
			rec.InSampleMean, rec.InSampleStdDev,
			rec.OutOfSample.Value,
			rec.OutOfSample.Lower, rec.OutOfSample.Upper)
	}
	return b.String()
}

// RenderConfusion renders the confusion matrix with per-class sensitivity
// and specificity.
func RenderConfusion(m *ConfusionMatrix) string {
	var b strings.Builder
	b.WriteString("actual \\ predicted")
	for _, c := range m.Classes {
		fmt.Fprintf(&b, "%8s", c)
	}
	b.WriteString("\n")
	for _, a := range m.Classes {
		fmt.Fprintf(&b, "%-18s", a)
		for _, p := range m.Classes {
			fmt.Fprintf(&b, "%8d", m.Counts[a][p])
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "%-8s %-12s %-12s\n", "class", "sensitivity", "specificity")
	for _, c := range m.Classes {
		fmt.Fprintf(&b, "%-8s %-12.4f %-12.4f\n", c, m.Sensitivity(c), m.Specificity(c))
	}
	fmt.Fprintf(&b, "\noverall accuracy: %.4f\n", m.Accuracy())
	return b.String()
}

// ResultsHeader is the CSV header for evaluation records.
func ResultsHeader() []string {
	return []string{
		"subset_index", "subset", "in_sample_mean", "in_sample_stddev",
		"out_of_sample_accuracy", "ci_lower", "ci_upper", "correct", "total", "selected",
	}
}

// ResultsRow renders one evaluation record as a CSV row.
func ResultsRow(rec experiment.Record, selected bool) []string {
	return []string{
		strconv.Itoa(rec.Index),
		rec.Subset.String(),
		formatFloat(rec.InSampleMean),
		formatFloat(rec.InSampleStdDev),
		formatFloat(rec.OutOfSample.Value),
		formatFloat(rec.OutOfSample.Lower),
		formatFloat(rec.OutOfSample.Upper),
		strconv.Itoa(rec.OutOfSample.Correct),
		strconv.Itoa(rec.OutOfSample.Total),
		strconv.FormatBool(selected),
	}
}

// PredictionsHeader is the CSV header for the unlabeled-set predictions.
func PredictionsHeader() []string {
	return []string{"observation", "predicted_label"}
}

// PredictionRows renders the predicted labels as CSV rows, one per
// observation, indexed from 1.
func PredictionRows(predictions []string) [][]string {
	rows := make([][]string, len(predictions))
	for i, p := range predictions {
		rows[i] = []string{strconv.Itoa(i + 1), p}
	}
	return rows
}

// RenderPredictions renders the unlabeled-set predictions as text.
func RenderPredictions(predictions []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-12s %s\n", "observation", "predicted")
	for i, p := range predictions {
		fmt.Fprintf(&b, "%-12d %s\n", i+1, p)
	}
	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
