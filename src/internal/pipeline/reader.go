// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pipeline

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	// ErrEmptyInput is returned when the input has no header line.
	ErrEmptyInput = errors.New("input has no header")
	// ErrMissingColumn is returned when the header lacks a required column.
	ErrMissingColumn = errors.New("missing required column")
	// ErrInvalidEncoding marks a row holding bytes that are not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid UTF-8")
)

// RowError is a problem confined to a single record. The [Reader] stays
// usable after returning one.
type RowError struct {
	Line int // 1-based line where the record starts
	Err  error
}

func (e *RowError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }

func (e *RowError) Unwrap() error { return e.Err }

// ReaderOptions configures a [Reader].
type ReaderOptions struct {
	// Required lists the columns the header must contain.
	Required []string
	// LazyQuotes tolerates bare quotes inside unquoted cells and stray quotes
	// inside quoted ones, as exports with raw JSON cells often have.
	LazyQuotes bool
}

// Reader yields [Row] values from CSV text with a header line.
type Reader struct {
	csv    *csv.Reader
	header []string
}

// NewReader reads the header from r and checks it for the required columns.
// A leading byte order mark is stripped; a UTF-16 BOM switches decoding to
// UTF-16.
func NewReader(r io.Reader, opts ReaderOptions) (*Reader, error) {
	cr := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
	cr.LazyQuotes = opts.LazyQuotes

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i, name := range header {
		header[i] = strings.TrimSpace(name)
	}

	for _, col := range opts.Required {
		if !slices.Contains(header, col) {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
	}

	return &Reader{csv: cr, header: header}, nil
}

// Header returns the trimmed column names.
func (r *Reader) Header() []string { return r.header }

// Next returns the next row. It returns io.EOF after the last row, a
// [*RowError] for a record that cannot be used, and any other error when the
// underlying reader fails.
func (r *Reader) Next() (Row, error) {
	rec, err := r.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			return nil, &RowError{Line: pe.StartLine, Err: pe.Err}
		}
		return nil, err
	}

	line, _ := r.csv.FieldPos(0)
	row := make(Row, len(r.header))
	for i, cell := range rec {
		if !utf8.ValidString(cell) {
			return nil, &RowError{
				Line: line,
				Err:  fmt.Errorf("%w in column %q", ErrInvalidEncoding, r.header[i]),
			}
		}
		row[r.header[i]] = cell
	}
	return row, nil
}
