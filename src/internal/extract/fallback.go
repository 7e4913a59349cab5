// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package extract

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/H0llyW00dzZ/txn-triple-extractor/src/internal/sanitize"
)

// fallbackPattern is the compiled regex recovery for one field.
//
// parents narrow the search window key by key; leaf captures the value
// after the last key.
type fallbackPattern struct {
	kind    Kind
	parents []*regexp.Regexp
	leaf    *regexp.Regexp
}

// pattern returns the cached fallback pattern for f, compiling it on first use.
func (e *Extractor) pattern(f Field) *fallbackPattern {
	e.mu.Lock()
	defer e.mu.Unlock()

	if p, ok := e.patterns[f]; ok {
		return p
	}
	p := compileFallback(f)
	e.patterns[f] = p
	return p
}

func compileFallback(f Field) *fallbackPattern {
	segs := f.Segments()
	p := &fallbackPattern{kind: f.Kind}

	for _, seg := range segs[:len(segs)-1] {
		p.parents = append(p.parents, regexp.MustCompile(`"`+regexp.QuoteMeta(seg)+`"\s*:`))
	}

	key := `"` + regexp.QuoteMeta(segs[len(segs)-1]) + `"\s*:\s*`
	if f.Kind == Bool {
		p.leaf = regexp.MustCompile(key + `(true|false|null)\b`)
	} else {
		// group 1: quoted body, group 2: bare scalar token
		p.leaf = regexp.MustCompile(key + `(?:"((?:[^"\\]|\\.)*)"|(null|true|false|-?[0-9][0-9.eE+-]*))`)
	}
	return p
}

// find searches raw for the field. Each key only matches at the top level
// of the object it belongs to, so a nested key of the same name earlier in
// the text is skipped.
func (p *fallbackPattern) find(raw string) Value {
	window := raw
	for _, parent := range p.parents {
		loc := firstAtTop(window, parent.FindAllStringIndex(window, -1))
		if loc == nil {
			return Absent()
		}
		window = window[loc[1]:]
	}

	m := firstAtTop(window, p.leaf.FindAllStringSubmatchIndex(window, -1))
	if m == nil {
		return Absent()
	}

	if p.kind == Bool {
		switch window[m[2]:m[3]] {
		case "true":
			return BoolValue(true)
		case "false":
			return BoolValue(false)
		default:
			return Absent()
		}
	}

	if m[2] >= 0 {
		body := window[m[2]:m[3]]
		s := unescape(body)
		if sanitize.IsMasked(s) {
			return Absent()
		}
		return StringValue(s)
	}

	if token := window[m[4]:m[5]]; token != "null" {
		return StringValue(token)
	}
	return Absent()
}

// unescape decodes JSON escapes in a captured string body, returning the
// body unchanged if it is not a valid JSON string.
func unescape(body string) string {
	var s string
	if err := json.Unmarshal([]byte(`"`+body+`"`), &s); err != nil {
		return body
	}
	return s
}

// firstAtTop returns the first of matches that starts at the top level of
// window, or nil. When window opens an object the top level is the inside
// of that object, and the search ends where the object closes. Brackets
// inside string literals are not counted.
func firstAtTop(window string, matches [][]int) []int {
	target := 0
	if strings.HasPrefix(strings.TrimLeft(window, " \t\r\n"), "{") {
		target = 1
	}

	sc := nesting{s: window}
	for _, m := range matches {
		if !sc.advance(m[0], target) {
			return nil
		}
		if sc.depth == target && !sc.inString {
			return m
		}
	}
	return nil
}

// nesting tracks object and array depth while scanning JSON-like text.
type nesting struct {
	s        string
	pos      int
	depth    int
	inString bool
	escaped  bool
}

// advance scans up to offset to. It reports false once the depth drops
// below floor, meaning the enclosing object has closed.
func (n *nesting) advance(to, floor int) bool {
	for ; n.pos < to; n.pos++ {
		c := n.s[n.pos]
		if n.inString {
			switch {
			case n.escaped:
				n.escaped = false
			case c == '\\':
				n.escaped = true
			case c == '"':
				n.inString = false
			}
			continue
		}

		switch c {
		case '"':
			n.inString = true
		case '{', '[':
			n.depth++
		case '}', ']':
			n.depth--
			if n.depth < floor {
				return false
			}
		}
	}
	return true
}
