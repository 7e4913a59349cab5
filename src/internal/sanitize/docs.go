// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package sanitize repairs known corruption patterns in JSON text exported
// inside CSV cells before it is handed to a strict JSON parser.
//
// Repairs are expressed as an ordered list of named [Rule] values. The
// default list turns masking markers (runs of asterisks left by the
// upstream redaction, e.g. "***1234***") into JSON null and re-escapes
// unescaped double quotes inside string values. Sanitizing is a pure
// string transform: it never fails and never guarantees valid JSON.
package sanitize
