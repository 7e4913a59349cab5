// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// mcp-server exposes the transaction triple extractor to [MCP] clients over
// stdio.
//
// Configuration is read from the file named by TXN_EXTRACTOR_CONFIG_FILE
// (JSON or YAML), then overridden by TXN_EXTRACTOR_INPUT, TXN_EXTRACTOR_OUTPUT
// and TXN_EXTRACTOR_FLOWS. Logs are discarded unless the configuration sets
// log.silent to false.
//
// Tools:
//
//	extract_triples         write the de-duplicated triples of an export
//	parse_flows             list every row with its ids and capture flag
//	sanitize_json           repair a masked or malformed JSON cell
//	extract_field           resolve one field with the strict or fallback path
//	get_extraction_metrics  report strict, fallback and absent counters
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package main
