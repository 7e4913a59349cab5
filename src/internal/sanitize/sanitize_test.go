// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package sanitize_test

import (
	"encoding/json"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/H0llyW00dzZ/txn-triple-extractor/src/internal/sanitize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Empty input",
			input:    "",
			expected: "{}",
		},
		{
			name:     "Whitespace only",
			input:    " \t\n ",
			expected: "{}",
		},
		{
			name:     "Masked string value",
			input:    `{"id":"***MASKED***"}`,
			expected: `{"id":null}`,
		},
		{
			name:     "Masked card number",
			input:    `{"number":"411111******1111","type":"001"}`,
			expected: `{"number":null,"type":"001"}`,
		},
		{
			name:     "Masked value with spacing",
			input:    `{"id": "***1234***", "status": "AUTHORIZED"}`,
			expected: `{"id": null, "status": "AUTHORIZED"}`,
		},
		{
			name:     "Masked array element",
			input:    `{"cards":["***1","ok"]}`,
			expected: `{"cards":[null,"ok"]}`,
		},
		{
			name:     "Unquoted mask",
			input:    `{"cvv": ***, "id":"txn_1"}`,
			expected: `{"cvv": null, "id":"txn_1"}`,
		},
		{
			name:     "Unquoted mask with digits",
			input:    `{"pan":***4242***}`,
			expected: `{"pan":null}`,
		},
		{
			name:     "Unescaped inner quotes",
			input:    `{"value":"brand="x"","id":"txn_1"}`,
			expected: `{"value":"brand=\"x\"","id":"txn_1"}`,
		},
		{
			name:     "Unescaped inner quotes at object end",
			input:    `{"value":"brand="x""}`,
			expected: `{"value":"brand=\"x\""}`,
		},
		{
			name:     "Already escaped quotes untouched",
			input:    `{"value":"brand=\"x\""}`,
			expected: `{"value":"brand=\"x\""}`,
		},
		{
			name:     "Two asterisks are not a mask",
			input:    `{"note":"a**b"}`,
			expected: `{"note":"a**b"}`,
		},
	}

	s := sanitize.Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s.Sanitize(tt.input))
		})
	}
}

func TestSanitize_RepairedTextParses(t *testing.T) {
	s := sanitize.Default()

	inputs := []string{
		`{"id":"***MASKED***"}`,
		`{"value":"brand="x"","id":"txn_1"}`,
		`{"paymentInformation":{"card":{"number":"***4242***","expirationYear":"2030"}},"id":"txn_9"}`,
	}

	for _, in := range inputs {
		var v any
		assert.NoError(t, json.Unmarshal([]byte(s.Sanitize(in)), &v), "sanitized %q should parse", in)
	}
}

func TestSanitize_IdempotentOnCleanJSON(t *testing.T) {
	s := sanitize.Default()

	inputs := []string{
		`{}`,
		`{"id":"txn_123"}`,
		`{"clientReferenceInformation":{"code":"att_1"},"processingInformation":{"capture":true}}`,
		`{"a":"x, y","b":["c","d"],"e":{"f":null},"g":1.5,"h":"he said \"hi\""}`,
		`{"url":"https://example.com/a?b=c","empty":"","nested":[{"k":"v"}]}`,
		`{"quote":"x\"}","next":"y"}`,
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			once := s.Sanitize(in)
			twice := s.Sanitize(once)

			assert.Equal(t, in, once)
			assert.Equal(t, once, twice)

			var v any
			require.NoError(t, json.Unmarshal([]byte(twice), &v))
		})
	}
}

func TestSanitize_NeverPanics(t *testing.T) {
	s := sanitize.Default()

	inputs := []string{
		`"`, `{"`, `{"a":"`, `:"""""`, `***`, `[***`, `{"a":"b"c"d"e"}`,
		strings.Repeat(`{"a":`, 500), "\x00\xff", `:" "]`,
	}

	for _, in := range inputs {
		assert.NotPanics(t, func() { _ = s.Sanitize(in) })
	}
}

func TestSanitizeReport(t *testing.T) {
	s := sanitize.Default()

	out, applied := s.SanitizeReport(`{"id":"***x***","v":"a="b""}`)
	assert.Equal(t, `{"id":null,"v":"a=\"b\""}`, out)
	assert.Equal(t, []string{sanitize.RuleMaskedString, sanitize.RuleInnerQuote}, applied)

	out, applied = s.SanitizeReport(`{"id":"txn_1"}`)
	assert.Equal(t, `{"id":"txn_1"}`, out)
	assert.Empty(t, applied)
}

func TestRegister(t *testing.T) {
	s := sanitize.Default()
	assert.Equal(t, []string{sanitize.RuleMaskedString, sanitize.RuleMaskedBare, sanitize.RuleInnerQuote}, s.Rules())

	// Single-quoted NaN placeholders from an older exporter.
	s.Register(sanitize.Rule{
		Name:    "nan",
		Pattern: regexp.MustCompile(`:\s*NaN\b`),
		Repair:  func(g []string) string { return ":null" },
	})
	assert.Equal(t, "nan", s.Rules()[3])
	assert.Equal(t, `{"amount":null}`, s.Sanitize(`{"amount": NaN}`))

	// Same name replaces in place.
	s.Register(sanitize.Rule{
		Name:    sanitize.RuleMaskedString,
		Pattern: regexp.MustCompile(`"REDACTED"`),
		Repair:  func(g []string) string { return "null" },
	})
	assert.Len(t, s.Rules(), 4)
	assert.Equal(t, `{"id":null}`, s.Sanitize(`{"id":"REDACTED"}`))
}

func TestNew_NoRules(t *testing.T) {
	s := sanitize.New()
	assert.Equal(t, "{}", s.Sanitize("  "))
	assert.Equal(t, `{"id":"***"}`, s.Sanitize(`{"id":"***"}`))
}

func TestSanitize_Concurrent(t *testing.T) {
	s := sanitize.Default()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				assert.Equal(t, `{"id":null}`, s.Sanitize(`{"id":"***MASKED***"}`))
			}
		}()
	}
	wg.Wait()
}

func TestRegister_ConcurrentWithSanitize(t *testing.T) {
	s := sanitize.Default()

	var bare sanitize.Rule
	for _, r := range sanitize.DefaultRules() {
		if r.Name == sanitize.RuleMaskedBare {
			bare = r
		}
	}
	require.NotNil(t, bare.Pattern)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for range 2000 {
			assert.Equal(t, `{"cvv": null, "id":"txn_1"}`, s.Sanitize(`{"cvv": ***, "id":"txn_1"}`))
		}
	}()
	go func() {
		defer wg.Done()
		for i := range 2000 {
			s.Register(bare)
			if i%100 == 0 {
				s.Register(sanitize.Rule{
					Name:    "noop",
					Pattern: regexp.MustCompile(`\x00never\x00`),
					Repair:  func(g []string) string { return g[0] },
				})
			}
		}
	}()
	wg.Wait()

	assert.Equal(t, []string{sanitize.RuleMaskedString, sanitize.RuleMaskedBare, sanitize.RuleInnerQuote, "noop"}, s.Rules())
}

func TestIsMasked(t *testing.T) {
	assert.True(t, sanitize.IsMasked("***MASKED***"))
	assert.True(t, sanitize.IsMasked("4111******1111"))
	assert.False(t, sanitize.IsMasked("txn_123"))
	assert.False(t, sanitize.IsMasked("a**b"))
}
