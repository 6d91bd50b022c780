// Package dataset loads labeled sensor observations and partitions them.
package dataset

import (
	"fmt"
	"sort"
)

// Frame holds a set of observations: numeric measurement columns plus an
// optional class label per row. A Frame is immutable once loaded.
type Frame struct {
	names   []string       // numeric column names, in file order
	index   map[string]int // column name -> position in names
	rows    [][]float64    // row-major, one value per column
	labels  []string       // empty for unlabeled data
	classes []string       // sorted distinct labels
}

// View is a Frame restricted to a set of columns, in the order they were
// requested. Labels is nil for unlabeled data.
type View struct {
	Names   []string
	Rows    [][]float64
	Labels  []string
	Classes []string
}

// NewFrame builds a Frame from parsed columns. Intended for tests and for
// the CSV loader; rows must all have len(names) values.
func NewFrame(names []string, rows [][]float64, labels []string) (*Frame, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("frame must contain at least one observation")
	}
	if labels != nil && len(labels) != len(rows) {
		return nil, fmt.Errorf("label count %d does not match row count %d", len(labels), len(rows))
	}
	index := make(map[string]int, len(names))
	for i, name := range names {
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		index[name] = i
	}
	for i, row := range rows {
		if len(row) != len(names) {
			return nil, fmt.Errorf("row %d has %d values, want %d", i, len(row), len(names))
		}
	}
	return &Frame{
		names:   names,
		index:   index,
		rows:    rows,
		labels:  labels,
		classes: distinctSorted(labels),
	}, nil
}

func distinctSorted(labels []string) []string {
	if len(labels) == 0 {
		return nil
	}
	seen := make(map[string]struct{})
	var classes []string
	for _, l := range labels {
		if _, ok := seen[l]; !ok {
			seen[l] = struct{}{}
			classes = append(classes, l)
		}
	}
	sort.Strings(classes)
	return classes
}

// NumRows returns the number of observations.
func (f *Frame) NumRows() int { return len(f.rows) }

// Columns returns the numeric column names in file order.
func (f *Frame) Columns() []string {
	cols := make([]string, len(f.names))
	copy(cols, f.names)
	return cols
}

// HasColumn reports whether the frame carries the named numeric column.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.index[name]
	return ok
}

// Labeled reports whether the frame carries class labels.
func (f *Frame) Labeled() bool { return f.labels != nil }

// Labels returns the per-row class labels, or nil for unlabeled data.
func (f *Frame) Labels() []string {
	if f.labels == nil {
		return nil
	}
	labels := make([]string, len(f.labels))
	copy(labels, f.labels)
	return labels
}

// Classes returns the sorted distinct labels, or nil for unlabeled data.
func (f *Frame) Classes() []string {
	classes := make([]string, len(f.classes))
	copy(classes, f.classes)
	return classes
}

// ClassCounts returns the number of observations per class.
func (f *Frame) ClassCounts() map[string]int {
	counts := make(map[string]int, len(f.classes))
	for _, l := range f.labels {
		counts[l]++
	}
	return counts
}

// Select restricts the frame to the given columns, in the given order.
// A requested column that is absent is a fatal configuration error: silently
// dropping it would change the feature set under comparison.
func (f *Frame) Select(cols []string) (*View, error) {
	idx := make([]int, len(cols))
	for i, name := range cols {
		j, ok := f.index[name]
		if !ok {
			return nil, fmt.Errorf("column %q is missing or non-numeric", name)
		}
		idx[i] = j
	}
	rows := make([][]float64, len(f.rows))
	for r, src := range f.rows {
		row := make([]float64, len(idx))
		for i, j := range idx {
			row[i] = src[j]
		}
		rows[r] = row
	}
	v := &View{
		Names: append([]string(nil), cols...),
		Rows:  rows,
	}
	if f.labels != nil {
		v.Labels = f.Labels()
		v.Classes = f.Classes()
	}
	return v, nil
}

// subframe builds a Frame over the given row indices, sharing row storage
// with the parent. Used by the partitioner.
func (f *Frame) subframe(rowIdx []int) *Frame {
	rows := make([][]float64, len(rowIdx))
	var labels []string
	if f.labels != nil {
		labels = make([]string, len(rowIdx))
	}
	for i, j := range rowIdx {
		rows[i] = f.rows[j]
		if labels != nil {
			labels[i] = f.labels[j]
		}
	}
	return &Frame{
		names:   f.names,
		index:   f.index,
		rows:    rows,
		labels:  labels,
		classes: distinctSorted(labels),
	}
}
