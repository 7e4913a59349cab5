// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the transaction triple extractor.
// It implements a Cobra-based CLI with four commands: extract writes the
// de-duplicated (payment_id, connector_transaction_id, attempt_id) triples of a
// payment attempt export, parse lists every row with its flow and capture flag,
// and sanitize and field expose the JSON repair and dual-path extraction on a
// single JSON text for inspection.
//
// Configuration comes from the config package; flags given on the command line
// take precedence. Run summaries are printed on standard output as a table or
// JSON, and skipped rows are reported through the logger.
package cli
