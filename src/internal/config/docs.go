// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads the extractor configuration from a JSON or YAML file
// and the environment.
//
// Priority, lowest first:
//  1. Defaults: input and outputs next to the executable, the Authorize and
//     SetupMandate flows, lazy quotes on, table summaries.
//  2. The file named by the caller, or by TXN_EXTRACTOR_CONFIG_FILE.
//  3. TXN_EXTRACTOR_INPUT, TXN_EXTRACTOR_OUTPUT and TXN_EXTRACTOR_FLOWS.
//
// Command-line flags are applied on top by the caller.
//
// Example YAML:
//
//	input: exports/payments.csv
//	output: request_ids.csv
//	flows: [Authorize, SetupMandate]
//	lazyQuotes: true
//	summaryFormat: json
//	log:
//	  silent: false
//	  path: /var/log/txn-extractor.log
package config
