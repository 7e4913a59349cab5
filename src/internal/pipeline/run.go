// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pipeline

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/H0llyW00dzZ/txn-triple-extractor/src/internal/extract"
	"github.com/H0llyW00dzZ/txn-triple-extractor/src/logger"
	"github.com/google/uuid"
)

// ErrInputNotFound is returned by [RunFiles] when the input file does not exist.
var ErrInputNotFound = errors.New("input file not found")

// Options configures a run.
type Options struct {
	// Logger receives one warning per skipped row. Nil discards them.
	Logger logger.Logger
	// LazyQuotes is passed to the [Reader].
	LazyQuotes bool
}

// Run executes job over the CSV text in r and writes the result to w.
//
// Rows are processed one at a time in input order. A row that cannot be read
// or built is logged, counted in [Summary.Errors] and skipped. Run returns an
// error without a summary when the header is unusable, when writing to w
// fails, or when ctx is cancelled; ctx is checked between rows.
func Run(ctx context.Context, job Job, r io.Reader, w io.Writer, opts Options) (Summary, error) {
	if job.Build == nil {
		return Summary{}, ErrNoBuild
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	start := time.Now()
	var before extract.Metrics
	if job.Extractor != nil {
		before = job.Extractor.Metrics()
	}

	rd, err := NewReader(r, ReaderOptions{Required: job.Required, LazyQuotes: opts.LazyQuotes})
	if err != nil {
		return Summary{}, err
	}
	rw, err := NewResultWriter(w, job.Header)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{RunID: uuid.NewString(), Job: job.Name}
	dedup := NewDeduplicator()

	for {
		if err := ctx.Err(); err != nil {
			return Summary{}, err
		}

		row, err := rd.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		sum.Total++

		if err != nil {
			var re *RowError
			if !errors.As(err, &re) {
				return Summary{}, fmt.Errorf("read input: %w", err)
			}
			sum.Errors++
			logger.Warnf(log, "skipping row: %v", re)
			continue
		}

		out, accepted, err := evaluate(job, row)
		if accepted {
			sum.Filtered++
		}
		if err != nil {
			sum.Errors++
			logger.Warnf(log, "skipping row %d (payment_id %q): %v", sum.Total, row.Get(ColPaymentID), err)
			continue
		}
		if !accepted {
			continue
		}

		if job.Dedup && !dedup.Admit(out.Key) {
			continue
		}
		if err := rw.Write(out.Cells); err != nil {
			return Summary{}, fmt.Errorf("write output: %w", err)
		}
	}

	if err := rw.Flush(); err != nil {
		return Summary{}, fmt.Errorf("write output: %w", err)
	}

	sum.Duplicates = dedup.Duplicates()
	sum.Written = rw.Rows()
	if job.Extractor != nil {
		sum.Extraction = job.Extractor.Metrics().Sub(before)
	}
	sum.Elapsed = time.Since(start)
	return sum, nil
}

// evaluate applies the filter and build step of job to row. A panic in either
// is turned into an error so one bad row cannot stop the run.
func evaluate(job Job, row Row) (out Output, accepted bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	if job.Filter != nil && !job.Filter(row) {
		return Output{}, false, nil
	}
	accepted = true
	out, err = job.Build(row)
	return out, accepted, err
}

// RunFiles runs job from the file at inPath into the file at outPath.
//
// The input is opened first: when it is missing RunFiles returns an error
// wrapping [ErrInputNotFound] and the output file is not created. The output
// is truncated if it exists. Both files are closed before RunFiles returns.
func RunFiles(ctx context.Context, job Job, inPath, outPath string, opts Options) (sum Summary, err error) {
	in, err := os.Open(inPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Summary{}, fmt.Errorf("%w: %s", ErrInputNotFound, inPath)
		}
		return Summary{}, fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return Summary{}, fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			sum, err = Summary{}, fmt.Errorf("close output: %w", cerr)
		}
	}()

	return Run(ctx, job, bufio.NewReader(in), out, opts)
}
