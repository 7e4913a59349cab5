// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package sanitize

import (
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/H0llyW00dzZ/txn-triple-extractor/src/internal/helper/gc"
)

// EmptyObject is what blank input sanitizes to.
const EmptyObject = "{}"

// Rule is a named repair for one class of corruption.
//
// Every non-overlapping match of Pattern is replaced by the result of
// Repair, which receives the full match followed by its capture groups
// (the same layout as [regexp.Regexp.FindStringSubmatch]).
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Repair  func(groups []string) string
}

// apply runs the rule once over s.
func (r Rule) apply(s string) string {
	matches := r.Pattern.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	return gc.Build(func(b gc.Buffer) {
		last := 0
		for _, loc := range matches {
			b.WriteString(s[last:loc[0]])

			groups := make([]string, len(loc)/2)
			for i := range groups {
				if start, end := loc[2*i], loc[2*i+1]; start >= 0 {
					groups[i] = s[start:end]
				}
			}
			b.WriteString(r.Repair(groups))
			last = loc[1]
		}
		b.WriteString(s[last:])
	})
}

// Sanitizer applies an ordered list of rules.
//
// A Sanitizer is safe for concurrent use; Register may be called while
// other goroutines sanitize.
type Sanitizer struct {
	mu    sync.RWMutex
	rules []Rule
}

// New creates a Sanitizer with the given rules, applied in order.
// With no rules the result only maps blank input to [EmptyObject].
func New(rules ...Rule) *Sanitizer {
	return &Sanitizer{rules: append([]Rule(nil), rules...)}
}

// Default creates a Sanitizer with [DefaultRules].
func Default() *Sanitizer { return New(DefaultRules()...) }

// Register appends a rule. A rule with the same name as an existing one
// replaces it at the same position.
//
// The rule list is copied on write, so a sanitization already in progress
// keeps the list it started with.
func (s *Sanitizer) Register(rule Rule) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rules := slices.Clone(s.rules)
	if i := slices.IndexFunc(rules, func(r Rule) bool { return r.Name == rule.Name }); i >= 0 {
		rules[i] = rule
	} else {
		rules = append(rules, rule)
	}
	s.rules = rules
}

// Rules returns the rule names in application order.
func (s *Sanitizer) Rules() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.rules))
	for i, r := range s.rules {
		names[i] = r.Name
	}
	return names
}

// Sanitize returns raw with every rule applied.
func (s *Sanitizer) Sanitize(raw string) string {
	out, _ := s.SanitizeReport(raw)
	return out
}

// SanitizeReport is like Sanitize but also reports which rules changed the text.
func (s *Sanitizer) SanitizeReport(raw string) (string, []string) {
	if strings.TrimSpace(raw) == "" {
		return EmptyObject, nil
	}

	s.mu.RLock()
	rules := s.rules
	s.mu.RUnlock()

	var applied []string
	out := raw
	for _, r := range rules {
		if next := r.apply(out); next != out {
			applied = append(applied, r.Name)
			out = next
		}
	}
	return out, applied
}
