// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package extract

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the scalar type a field is read as.
type Kind int

const (
	// String reads a string value.
	String Kind = iota
	// Bool reads a literal true/false token.
	Bool
)

// String returns the kind name used in flags and tool arguments.
func (k Kind) String() string {
	if k == Bool {
		return "bool"
	}
	return "string"
}

// ErrInvalidField is returned by ParseField and ParseKind for unusable input.
var ErrInvalidField = errors.New("invalid field")

// ParseKind parses "string" or "bool" (case-insensitive; "boolean" accepted).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "string", "str":
		return String, nil
	case "bool", "boolean":
		return Bool, nil
	default:
		return String, fmt.Errorf("%w: unknown kind %q", ErrInvalidField, s)
	}
}

// Field locates a scalar by dot-path, e.g. "clientReferenceInformation.code".
type Field struct {
	Path string
	Kind Kind
}

// Predefined fields read by the extraction jobs.
var (
	// TransactionID is the connector transaction id at the top level of a response.
	TransactionID = Field{Path: "id", Kind: String}
	// ReferenceCode is the attempt id the request carried as its client reference.
	ReferenceCode = Field{Path: "clientReferenceInformation.code", Kind: String}
	// Capture is the capture flag of a request.
	Capture = Field{Path: "processingInformation.capture", Kind: Bool}
)

// ParseField validates path and builds a Field.
// Empty segments ("a..b", ".a") are rejected.
func ParseField(path string, kind Kind) (Field, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Field{}, fmt.Errorf("%w: empty path", ErrInvalidField)
	}
	for _, seg := range strings.Split(path, ".") {
		if seg == "" {
			return Field{}, fmt.Errorf("%w: empty segment in %q", ErrInvalidField, path)
		}
	}
	return Field{Path: path, Kind: kind}, nil
}

// Segments splits the dot-path.
func (f Field) Segments() []string { return strings.Split(f.Path, ".") }

// String returns "path (kind)".
func (f Field) String() string { return f.Path + " (" + f.Kind.String() + ")" }
