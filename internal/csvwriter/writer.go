// Package csvwriter writes result tables to CSV files.
package csvwriter

import (
	"encoding/csv"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
)

// Writer is a simple CSV writer that tracks how many records it has written.
type Writer struct {
	file    *os.File
	writer  *csv.Writer
	logger  *zap.Logger
	mu      sync.Mutex
	records int
}

// NewWriter creates a CSV file at filePath and writes the header row.
func NewWriter(filePath string, header []string, logger *zap.Logger) (*Writer, error) {
	file, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV file: %w", err)
	}
	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	return &Writer{
		file:   file,
		writer: writer,
		logger: logger,
	}, nil
}

// Write appends a record.
func (w *Writer) Write(record []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.writer.Write(record); err != nil {
		return fmt.Errorf("failed to write record to CSV: %w", err)
	}
	w.records++
	return nil
}

// WriteAll appends all records.
func (w *Writer) WriteAll(records [][]string) error {
	for _, r := range records {
		if err := w.Write(r); err != nil {
			return err
		}
	}
	return nil
}

// Close flushes buffered data and closes the file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		w.file.Close()
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	w.logger.Info("CSV file written",
		zap.String("path", w.file.Name()),
		zap.Int("records", w.records))
	return w.file.Close()
}
