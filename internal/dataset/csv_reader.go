package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/your-org/lift-form-analyzer/pkg/logger"
)

// LoadOptions controls CSV loading.
type LoadOptions struct {
	// LabelColumn names the class column. Empty means the file is unlabeled.
	LabelColumn string
}

// naValues are cell contents treated as missing measurements.
var naValues = map[string]struct{}{
	"":        {},
	"NA":      {},
	"#DIV/0!": {},
}

// LoadCSV reads a sensor-measurement CSV with a header row into a Frame.
//
// Every non-label column is treated as a numeric candidate. Columns that
// contain any missing or non-numeric cell are excluded from the numeric set
// and reported through the returned NA summary; requesting such a column
// later via Frame.Select fails loudly rather than silently shrinking the
// feature set.
func LoadCSV(path string, opts LoadOptions) (*Frame, *NASummary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open csv file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil, fmt.Errorf("csv file %s is empty", path)
		}
		return nil, nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	labelIdx := -1
	if opts.LabelColumn != "" {
		for i, name := range header {
			if name == opts.LabelColumn {
				labelIdx = i
				break
			}
		}
		if labelIdx < 0 {
			return nil, nil, fmt.Errorf("label column %q not found in %s", opts.LabelColumn, path)
		}
	}

	// Candidate numeric columns: everything except the label.
	type column struct {
		name    string
		values  []float64
		naCount int
		numeric bool
	}
	columns := make([]*column, 0, len(header))
	colForField := make([]*column, len(header))
	for i, name := range header {
		if i == labelIdx {
			continue
		}
		c := &column{name: name, numeric: true}
		columns = append(columns, c)
		colForField[i] = c
	}

	var labels []string
	rowCount := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read csv record: %w", err)
		}
		if len(record) != len(header) {
			logger.Warnf("Skipping record %d: expected %d fields, got %d", rowCount+1, len(header), len(record))
			continue
		}
		for i, cell := range record {
			c := colForField[i]
			if c == nil {
				continue
			}
			if _, na := naValues[cell]; na {
				c.naCount++
				c.numeric = false
				c.values = append(c.values, 0)
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				c.numeric = false
				c.values = append(c.values, 0)
				continue
			}
			c.values = append(c.values, v)
		}
		if labelIdx >= 0 {
			labels = append(labels, record[labelIdx])
		}
		rowCount++
	}
	if rowCount == 0 {
		return nil, nil, fmt.Errorf("csv file %s contains no observations", path)
	}

	summary := &NASummary{TotalRows: rowCount, NACounts: make(map[string]int)}
	var kept []*column
	for _, c := range columns {
		if c.numeric {
			kept = append(kept, c)
			continue
		}
		summary.DroppedColumns = append(summary.DroppedColumns, c.name)
		if c.naCount > 0 {
			summary.NACounts[c.name] = c.naCount
		}
	}
	if len(kept) == 0 {
		return nil, nil, fmt.Errorf("csv file %s contains no fully numeric columns", path)
	}

	names := make([]string, len(kept))
	for i, c := range kept {
		names[i] = c.name
	}
	rows := make([][]float64, rowCount)
	for r := range rows {
		row := make([]float64, len(kept))
		for i, c := range kept {
			row[i] = c.values[r]
		}
		rows[r] = row
	}

	frame, err := NewFrame(names, rows, labels)
	if err != nil {
		return nil, nil, err
	}
	logger.Infof("Loaded %d observations and %d numeric columns from %s (%d columns dropped)",
		rowCount, len(names), path, len(summary.DroppedColumns))
	return frame, summary, nil
}

// NASummary records the sanity-check outcome of a CSV load: how many rows
// were read, which columns were excluded from the numeric set, and per-column
// missing-value counts.
type NASummary struct {
	TotalRows      int
	DroppedColumns []string
	NACounts       map[string]int
}
