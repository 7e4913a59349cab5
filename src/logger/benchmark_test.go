// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"io"
	"testing"

	"github.com/H0llyW00dzZ/txn-triple-extractor/src/logger"
)

// Row warnings are the only entries logged per row, so they dominate a run
// over a heavily corrupted export.

func BenchmarkMCPLogger_RowWarning(b *testing.B) {
	log := logger.NewMCPLogger(io.Discard, false).With("pipeline")

	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		logger.Warnf(log, "row %d: %s", i, "wrong number of fields")
	}
}

func BenchmarkMCPLogger_RowWarningConcurrent(b *testing.B) {
	log := logger.NewMCPLogger(io.Discard, false).With("mcp-server")

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			logger.Warnf(log, "row %d: %s", i, "invalid UTF-8")
			i++
		}
	})
}

func BenchmarkMCPLogger_CellEscaping(b *testing.B) {
	log := logger.NewMCPLogger(io.Discard, false)
	cell := `row 12: response {"id":"***1234***","note":"brand="x""}` + "\n\tflow=Authorize"

	b.ReportAllocs()

	for b.Loop() {
		log.Printf("%s", cell)
	}
}

func BenchmarkMCPLogger_Silent(b *testing.B) {
	log := logger.Nop()

	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		logger.Warnf(log, "row %d skipped", i)
	}
}

func BenchmarkCLILogger_RowWarning(b *testing.B) {
	log := logger.NewCLILogger()
	log.SetOutput(io.Discard)

	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		log.Warnf("row %d: %s", i, "wrong number of fields")
	}
}
