// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pipeline

import "github.com/H0llyW00dzZ/txn-triple-extractor/src/internal/extract"

// Triple is the de-duplication key of an output record. Absent values
// compare equal to each other and differ from a present empty string.
type Triple struct {
	PaymentID     string
	TransactionID extract.Value
	AttemptID     extract.Value
}

// Deduplicator remembers the triples admitted during one run.
//
// A Deduplicator belongs to a single run and is not safe for concurrent use.
type Deduplicator struct {
	seen       map[Triple]struct{}
	duplicates int
}

// NewDeduplicator returns an empty Deduplicator.
func NewDeduplicator() *Deduplicator {
	return &Deduplicator{seen: make(map[Triple]struct{})}
}

// Admit records t and reports true the first time t is seen. A repeat only
// increments the duplicate counter and reports false.
func (d *Deduplicator) Admit(t Triple) bool {
	if _, ok := d.seen[t]; ok {
		d.duplicates++
		return false
	}
	d.seen[t] = struct{}{}
	return true
}

// Duplicates returns how many triples Admit rejected.
func (d *Deduplicator) Duplicates() int { return d.duplicates }

// Len returns the number of distinct triples admitted.
func (d *Deduplicator) Len() int { return len(d.seen) }
