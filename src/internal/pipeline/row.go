// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pipeline

import "strings"

// Column names of the payment attempt export.
const (
	ColPaymentID = "payment_id"
	ColFlow      = "flow"
	ColResponse  = "response"
	ColRequest   = "request"
	ColCreatedAt = "created_at"
)

// Row is one CSV record keyed by header name. Values are kept exactly as
// read; nothing is coerced.
type Row map[string]string

// Get returns the cell for column, or "" when the column does not exist.
func (r Row) Get(column string) string { return r[column] }

// Blank reports whether the cell for column is empty after trimming
// whitespace. A missing column is blank.
func (r Row) Blank(column string) bool { return strings.TrimSpace(r[column]) == "" }
