// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pipeline

import (
	"errors"

	"github.com/H0llyW00dzZ/txn-triple-extractor/src/internal/extract"
)

// ErrNoBuild is returned by [Run] for a [Job] without a Build function.
var ErrNoBuild = errors.New("job has no build function")

// Output is what a [Job] makes of one row: the de-duplication key and the
// cells to write.
type Output struct {
	Key   Triple
	Cells []string
}

// Job describes one extraction over the export.
type Job struct {
	// Name identifies the job in logs and summaries.
	Name string
	// Required columns must be present in the input header.
	Required []string
	// Header is the first line of the output.
	Header []string
	// Filter selects the rows to build. Nil accepts every row.
	Filter Predicate
	// Dedup drops rows whose key was already written during the run.
	Dedup bool
	// Extractor is used by Build; its metrics are reported in the [Summary].
	Extractor *extract.Extractor
	// Build turns an accepted row into output. An error skips the row and
	// counts it in [Summary.Errors].
	Build func(Row) (Output, error)
}

// TripleHeader is the output header of [TripleJob].
var TripleHeader = []string{"payment_id", "connector_transaction_id", "attempt_id", "merchant_id"}

// Record is one output line of [TripleJob]. MerchantID is never filled in
// by the extraction and stays empty.
type Record struct {
	PaymentID     string
	TransactionID extract.Value
	AttemptID     extract.Value
	MerchantID    string
}

// Key returns the de-duplication key of r.
func (r Record) Key() Triple {
	return Triple{PaymentID: r.PaymentID, TransactionID: r.TransactionID, AttemptID: r.AttemptID}
}

// Cells renders r in [TripleHeader] order. Absent values become empty cells.
func (r Record) Cells() []string {
	return []string{r.PaymentID, r.TransactionID.Cell(), r.AttemptID.Cell(), r.MerchantID}
}

// NewRecord extracts the record for row: the connector transaction id is
// the top-level "id" of the response and the attempt id is
// "clientReferenceInformation.code" of the request.
func NewRecord(ex *extract.Extractor, row Row) Record {
	return Record{
		PaymentID:     row.Get(ColPaymentID),
		TransactionID: ex.Extract(row.Get(ColResponse), extract.TransactionID),
		AttemptID:     ex.Extract(row.Get(ColRequest), extract.ReferenceCode),
	}
}

// TripleJob extracts one de-duplicated [Record] per row whose flow is in
// flows (or [DefaultFlows] when empty) and whose response is not blank.
// A nil ex uses an extractor with the default sanitizer.
func TripleJob(ex *extract.Extractor, flows []string) Job {
	if ex == nil {
		ex = extract.New(nil)
	}
	return Job{
		Name:      "extract",
		Required:  []string{ColPaymentID, ColFlow, ColResponse, ColRequest},
		Header:    TripleHeader,
		Filter:    FlowFilter(flows...),
		Dedup:     true,
		Extractor: ex,
		Build: func(row Row) (Output, error) {
			rec := NewRecord(ex, row)
			return Output{Key: rec.Key(), Cells: rec.Cells()}, nil
		},
	}
}

// FlowHeader is the output header of [FlowJob].
var FlowHeader = []string{"payment_id", "flow", "created_at", "connector_transaction_id", "attempt_id", "capture"}

// FlowJob lists every row with its flow, creation time, extracted ids and
// the "processingInformation.capture" flag of the request. It has no filter;
// with dedup set, rows repeating an already written triple are dropped.
// The created_at column is optional.
func FlowJob(ex *extract.Extractor, dedup bool) Job {
	if ex == nil {
		ex = extract.New(nil)
	}
	return Job{
		Name:      "parse",
		Required:  []string{ColPaymentID, ColFlow, ColResponse, ColRequest},
		Header:    FlowHeader,
		Filter:    AcceptAll,
		Dedup:     dedup,
		Extractor: ex,
		Build: func(row Row) (Output, error) {
			rec := NewRecord(ex, row)
			capture := ex.Extract(row.Get(ColRequest), extract.Capture)
			return Output{
				Key: rec.Key(),
				Cells: []string{
					rec.PaymentID,
					row.Get(ColFlow),
					row.Get(ColCreatedAt),
					rec.TransactionID.Cell(),
					rec.AttemptID.Cell(),
					capture.Cell(),
				},
			}, nil
		},
	}
}
