// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package pipeline runs the extraction over a CSV export of payment attempts:
//
//	read → clean → parse-or-recover → filter → dedup → write
//
// A [Job] describes what to pull out of each row. [TripleJob] produces the
// (payment_id, connector_transaction_id, attempt_id) triples for the
// Authorize and SetupMandate flows, de-duplicated within the run.
// [FlowJob] is the companion parser that lists every row with its flow,
// timestamp and capture flag.
//
// [Run] is single-threaded and makes one pass over the input. Rows that cannot
// be read or parsed are counted in [Summary.Errors] and skipped. A missing
// input file, a missing required column or a failed write aborts the run with
// an error and no summary.
//
// Example:
//
//	ex := extract.New(nil)
//	sum, err := pipeline.RunFiles(ctx, pipeline.TripleJob(ex, nil),
//		"payments.csv", "request_ids.csv", pipeline.Options{LazyQuotes: true})
//	if err != nil {
//		return err
//	}
//	fmt.Print(sum.RenderTable(false))
package pipeline
