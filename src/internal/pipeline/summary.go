// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pipeline

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/H0llyW00dzZ/txn-triple-extractor/src/internal/extract"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// Summary reports what a [Run] did.
type Summary struct {
	RunID      string          `json:"runId"`
	Job        string          `json:"job"`
	Total      int             `json:"total"`      // Rows read, including rows that failed
	Filtered   int             `json:"filtered"`   // Rows accepted by the job filter
	Duplicates int             `json:"duplicates"` // Rows dropped by de-duplication
	Written    int             `json:"written"`    // Records written to the output
	Errors     int             `json:"errors"`     // Rows skipped because of an error
	Extraction extract.Metrics `json:"extraction"`
	Elapsed    time.Duration   `json:"-"`
}

// Lines returns the summary as label/value pairs in display order.
func (s Summary) Lines() [][]string {
	return [][]string{
		{"Run ID", s.RunID},
		{"Job", s.Job},
		{"Total rows", strconv.Itoa(s.Total)},
		{"Matched filter", strconv.Itoa(s.Filtered)},
		{"Duplicates skipped", strconv.Itoa(s.Duplicates)},
		{"Records written", strconv.Itoa(s.Written)},
		{"Row errors", strconv.Itoa(s.Errors)},
		{"Strict parses", strconv.FormatInt(s.Extraction.Strict, 10)},
		{"Fallback recoveries", strconv.FormatInt(s.Extraction.Fallback, 10)},
		{"Absent values", strconv.FormatInt(s.Extraction.Absent, 10)},
		{"Elapsed", s.Elapsed.Round(time.Millisecond).String()},
	}
}

// RenderTable renders the summary as a two-column table. With markdown set
// the table uses markdown syntax, which is what MCP clients display.
func (s Summary) RenderTable(markdown bool) string {
	var buf strings.Builder
	var table *tablewriter.Table
	if markdown {
		table = tablewriter.NewTable(&buf,
			tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
		)
	} else {
		table = tablewriter.NewTable(&buf)
	}

	table.Header([]string{"Metric", "Value"})
	table.Bulk(s.Lines())
	table.Render()
	return buf.String()
}

// ToJSON returns the summary as indented JSON. Elapsed is reported in
// milliseconds under "elapsedMs".
func (s Summary) ToJSON() ([]byte, error) {
	type alias Summary
	return json.MarshalIndent(struct {
		alias
		ElapsedMS int64 `json:"elapsedMs"`
	}{alias(s), s.Elapsed.Milliseconds()}, "", "  ")
}
