// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ResultWriter writes job output as CSV. The header is written on creation
// so an input with no surviving rows still yields a well-formed file.
type ResultWriter struct {
	csv  *csv.Writer
	rows int
}

// NewResultWriter writes header to w and returns a writer for the data rows.
func NewResultWriter(w io.Writer, header []string) (*ResultWriter, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	return &ResultWriter{csv: cw}, nil
}

// Write appends one record.
func (rw *ResultWriter) Write(cells []string) error {
	if err := rw.csv.Write(cells); err != nil {
		return err
	}
	rw.rows++
	return nil
}

// Rows returns the number of records written, excluding the header.
func (rw *ResultWriter) Rows() int { return rw.rows }

// Flush writes any buffered data to the underlying writer.
func (rw *ResultWriter) Flush() error {
	rw.csv.Flush()
	return rw.csv.Error()
}
