// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package extract pulls single scalar fields out of JSON text that may be
// masked or malformed.
//
// Extraction runs the text through the [sanitize] package and tries a
// strict JSON parse first. When that fails it falls back to a regular
// expression anchored on the field's literal key, applied to the raw
// text. Both paths produce a [Value]; a field that cannot be found is an
// absent Value, never an error and never an empty string.
//
// [sanitize]: https://pkg.go.dev/github.com/H0llyW00dzZ/txn-triple-extractor/src/internal/sanitize
package extract
