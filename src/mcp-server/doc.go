// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver provides the [MCP] server for the transaction triple extractor.
// It exposes the extraction jobs and the JSON repair as tools so an assistant can
// run an extraction over an export, or inspect why a single response cell did or
// did not yield an id.
//
// Tools:
//   - extract_triples: run the request ID extraction over a CSV export
//   - parse_flows: run the companion flow listing over a CSV export
//   - sanitize_json: show the repaired form of a JSON text
//   - extract_field: resolve one dot-path field and report which path answered
//   - get_extraction_metrics: strict, fallback and absent counters of the server
//
// The server is built with [ServerBuilder] and served over stdio by [Run].
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver
