// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// txn-triple-extractor recovers payment request IDs from a CSV export of
// payment attempts whose JSON cells are masked or malformed.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/txn-triple-extractor/cmd/txn-triple-extractor@latest
//
// # Usage
//
//	txn-triple-extractor extract [-i INPUT] [-o OUTPUT] [-c CONFIG] [--flows LIST] [--format table|json]
//	txn-triple-extractor parse   [-i INPUT] [-o OUTPUT] [--dedup]
//	txn-triple-extractor sanitize [JSON]
//	txn-triple-extractor field PATH [JSON] [--kind string|bool] [--trace]
//
// Without flags, extract reads payments.csv next to the executable and writes
// request_ids.csv beside it with the header
//
//	payment_id,connector_transaction_id,attempt_id,merchant_id
//
// # Examples
//
// Extract the triples and print the summary as JSON:
//
//	txn-triple-extractor extract -i export.csv -o request_ids.csv --format json
//
// Check how a single response cell is repaired:
//
//	echo '{"id":"***1234***","note":"brand="x""}' | txn-triple-extractor sanitize --report
//
// # Exit Codes
//
//	0    success
//	1    fatal error (missing input, missing column, write failure)
//	130  interrupted
package main
