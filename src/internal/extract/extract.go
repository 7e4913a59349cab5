// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package extract

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/H0llyW00dzZ/txn-triple-extractor/src/internal/sanitize"
)

// Method names the path that produced a [Result].
type Method int

const (
	// Strict means the sanitized text parsed as JSON.
	Strict Method = iota
	// Fallback means parsing failed and the regex recovery ran on the raw text.
	Fallback
)

// String returns "strict" or "fallback".
func (m Method) String() string {
	if m == Fallback {
		return "fallback"
	}
	return "strict"
}

// Result is a Value together with the path that produced it.
type Result struct {
	Value  Value
	Method Method
}

// Metrics tracks how extractions were resolved.
type Metrics struct {
	Strict   int64 `json:"strict"`   // Extractions answered by the strict parser
	Fallback int64 `json:"fallback"` // Extractions answered by the regex fallback
	Absent   int64 `json:"absent"`   // Extractions that ended absent, on either path
}

// Sub returns m minus other, used to report one run out of a shared Extractor.
func (m Metrics) Sub(other Metrics) Metrics {
	return Metrics{
		Strict:   m.Strict - other.Strict,
		Fallback: m.Fallback - other.Fallback,
		Absent:   m.Absent - other.Absent,
	}
}

// Extractor reads fields from JSON text that may be masked or malformed.
//
// An Extractor is safe for concurrent use.
type Extractor struct {
	sanitizer *sanitize.Sanitizer

	mu       sync.Mutex
	patterns map[Field]*fallbackPattern

	strict   atomic.Int64
	fallback atomic.Int64
	absent   atomic.Int64
}

// New creates an Extractor using s; a nil s means [sanitize.Default].
func New(s *sanitize.Sanitizer) *Extractor {
	if s == nil {
		s = sanitize.Default()
	}
	return &Extractor{
		sanitizer: s,
		patterns:  make(map[Field]*fallbackPattern),
	}
}

// Sanitizer returns the sanitizer the Extractor runs before parsing.
func (e *Extractor) Sanitizer() *sanitize.Sanitizer { return e.sanitizer }

// Extract returns the value of f in raw, or an absent Value.
// It never panics on malformed input.
func (e *Extractor) Extract(raw string, f Field) Value {
	return e.Trace(raw, f).Value
}

// Trace is like Extract but also reports which path answered.
func (e *Extractor) Trace(raw string, f Field) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{Value: Absent(), Method: res.Method}
		}
		if res.Value.IsAbsent() {
			e.absent.Add(1)
		}
	}()

	doc, err := decodeStrict(e.sanitizer.Sanitize(raw))
	if err == nil {
		e.strict.Add(1)
		return Result{Value: lookup(doc, f), Method: Strict}
	}

	e.fallback.Add(1)
	res.Method = Fallback
	res.Value = e.pattern(f).find(raw)
	return res
}

// Metrics returns a snapshot of the counters.
func (e *Extractor) Metrics() Metrics {
	return Metrics{
		Strict:   e.strict.Load(),
		Fallback: e.fallback.Load(),
		Absent:   e.absent.Load(),
	}
}

// decodeStrict parses exactly one JSON document; trailing data is an error.
func decodeStrict(s string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("extract: trailing data after JSON document")
	}
	return doc, nil
}

// lookup walks the dot-path through nested objects.
func lookup(doc any, f Field) Value {
	cur := doc
	for _, seg := range f.Segments() {
		obj, ok := cur.(map[string]any)
		if !ok {
			return Absent()
		}
		if cur, ok = obj[seg]; !ok {
			return Absent()
		}
	}
	return scalar(cur, f.Kind)
}

// scalar converts a decoded JSON value to a Value of the requested kind.
func scalar(v any, kind Kind) Value {
	if kind == Bool {
		if b, ok := v.(bool); ok {
			return BoolValue(b)
		}
		return Absent()
	}

	switch t := v.(type) {
	case string:
		if sanitize.IsMasked(t) {
			return Absent()
		}
		return StringValue(t)
	case json.Number:
		return StringValue(t.String())
	case bool:
		return StringValue(strconv.FormatBool(t))
	default:
		// null, objects and arrays
		return Absent()
	}
}
