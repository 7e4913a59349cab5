// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package extract

import "strconv"

// Value is the outcome of one extraction: a present scalar or absent.
//
// The zero Value is absent. Values are comparable, and two absent Values
// are equal to each other but never equal to a present empty string.
type Value struct {
	kind    Kind
	str     string
	boolean bool
	present bool
}

// Absent returns the absent Value.
func Absent() Value { return Value{} }

// StringValue returns a present string Value.
func StringValue(s string) Value { return Value{kind: String, str: s, present: true} }

// BoolValue returns a present boolean Value.
func BoolValue(b bool) Value { return Value{kind: Bool, boolean: b, present: true} }

// IsAbsent reports whether the field was not found.
func (v Value) IsAbsent() bool { return !v.present }

// Kind returns the kind of a present Value.
func (v Value) Kind() Kind { return v.kind }

// Str returns the string content and whether the Value is a present string.
func (v Value) Str() (string, bool) { return v.str, v.present && v.kind == String }

// Bool returns the boolean content and whether the Value is a present boolean.
func (v Value) Bool() (bool, bool) { return v.boolean, v.present && v.kind == Bool }

// Cell renders the Value for a CSV cell. Absent renders as the empty cell.
func (v Value) Cell() string {
	switch {
	case !v.present:
		return ""
	case v.kind == Bool:
		return strconv.FormatBool(v.boolean)
	default:
		return v.str
	}
}

// String implements fmt.Stringer; absent prints as <absent>.
func (v Value) String() string {
	if !v.present {
		return "<absent>"
	}
	return v.Cell()
}

// Ptr returns a pointer to the string form, or nil when absent.
// It is meant for JSON output where absent must encode as null.
func (v Value) Ptr() *string {
	if !v.present {
		return nil
	}
	s := v.Cell()
	return &s
}
