// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package sanitize

import (
	"regexp"

	"github.com/H0llyW00dzZ/txn-triple-extractor/src/internal/helper/gc"
)

// Names of the default rules.
const (
	RuleMaskedString = "masked-string"
	RuleMaskedBare   = "masked-bare"
	RuleInnerQuote   = "inner-quote"
)

var (
	// A quoted value holding a run of three or more asterisks: "***MASKED***", "4111******1111".
	maskedStringPattern = regexp.MustCompile(`([:\[,]\s*)"[^"\\]*\*{3,}[^"\\]*"`)

	// The same marker without quotes, up to the next delimiter.
	maskedBarePattern = regexp.MustCompile(`([:\[,]\s*)\*{3,}[^,}\]\s"]*`)

	// A string value up to the first quote that is followed by a delimiter.
	innerQuotePattern = regexp.MustCompile(`(:\s*")(.*?)("\s*[,}\]])`)

	maskMarker = regexp.MustCompile(`\*{3,}`)
)

// DefaultRules returns the built-in rules in application order.
// Each call returns a fresh slice.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:    RuleMaskedString,
			Pattern: maskedStringPattern,
			Repair:  func(g []string) string { return g[1] + "null" },
		},
		{
			Name:    RuleMaskedBare,
			Pattern: maskedBarePattern,
			Repair:  func(g []string) string { return g[1] + "null" },
		},
		{
			Name:    RuleInnerQuote,
			Pattern: innerQuotePattern,
			Repair:  func(g []string) string { return g[1] + escapeInnerQuotes(g[2]) + g[3] },
		},
	}
}

// IsMasked reports whether a decoded string value is a masking marker.
func IsMasked(s string) bool { return maskMarker.MatchString(s) }

// escapeInnerQuotes escapes every double quote in body that is not already
// preceded by a backslash. Bodies without such quotes are returned as is.
func escapeInnerQuotes(body string) string {
	if !hasBareQuote(body) {
		return body
	}

	return gc.Build(func(b gc.Buffer) {
		for i := 0; i < len(body); i++ {
			c := body[i]
			if c == '"' && (i == 0 || body[i-1] != '\\') {
				b.WriteByte('\\')
			}
			b.WriteByte(c)
		}
	})
}

func hasBareQuote(body string) bool {
	for i := 0; i < len(body); i++ {
		if body[i] == '"' && (i == 0 || body[i-1] != '\\') {
			return true
		}
	}
	return false
}
