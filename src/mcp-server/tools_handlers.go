// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/H0llyW00dzZ/txn-triple-extractor/src/internal/config"
	"github.com/H0llyW00dzZ/txn-triple-extractor/src/internal/extract"
	"github.com/H0llyW00dzZ/txn-triple-extractor/src/internal/pipeline"
	"github.com/H0llyW00dzZ/txn-triple-extractor/src/logger"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// handleSanitizeJSON returns the handler of the sanitize_json tool.
//
// The result is the sanitized text; with report set, a second text item
// lists the rules that changed it.
func handleSanitizeJSON(ex *extract.Extractor) ToolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw, err := request.RequireString("json")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("json parameter required: %v", err)), nil
		}

		cleaned, applied := ex.Sanitizer().SanitizeReport(raw)
		if !request.GetBool("report", false) {
			return mcp.NewToolResultText(cleaned), nil
		}

		rules := "none"
		if len(applied) > 0 {
			rules = strings.Join(applied, ", ")
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(cleaned),
				mcp.NewTextContent("rules applied: " + rules),
			},
		}, nil
	}
}

// fieldResult is the JSON answer of the extract_field tool. Value is null
// when the field is absent.
type fieldResult struct {
	Path   string  `json:"path"`
	Kind   string  `json:"kind"`
	Value  *string `json:"value"`
	Method string  `json:"method"`
}

// handleExtractField returns the handler of the extract_field tool.
func handleExtractField(ex *extract.Extractor) ToolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw, err := request.RequireString("json")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("json parameter required: %v", err)), nil
		}
		path, err := request.RequireString("path")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("path parameter required: %v", err)), nil
		}

		kind, err := extract.ParseKind(request.GetString("kind", "string"))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to parse kind: %v", err)), nil
		}
		field, err := extract.ParseField(path, kind)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to parse path: %v", err)), nil
		}

		res := ex.Trace(raw, field)
		data, err := json.MarshalIndent(fieldResult{
			Path:   field.Path,
			Kind:   field.Kind.String(),
			Value:  res.Value.Ptr(),
			Method: res.Method.String(),
		}, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to format result: %v", err)), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	}
}

// handleExtractTriples returns the handler of the extract_triples tool.
func handleExtractTriples(ex *extract.Extractor, log logger.Logger) ToolHandlerWithConfig {
	return func(ctx context.Context, request mcp.CallToolRequest, cfg *config.Config) (*mcp.CallToolResult, error) {
		flows := cfg.Flows
		if v := request.GetString("flows", ""); v != "" {
			flows = config.SplitFlows(v)
		}

		job := pipeline.TripleJob(ex, flows)
		return runJob(ctx, request, cfg, log, job, request.GetString("output", cfg.Output))
	}
}

// handleParseFlows returns the handler of the parse_flows tool.
func handleParseFlows(ex *extract.Extractor, log logger.Logger) ToolHandlerWithConfig {
	return func(ctx context.Context, request mcp.CallToolRequest, cfg *config.Config) (*mcp.CallToolResult, error) {
		job := pipeline.FlowJob(ex, request.GetBool("dedup", false))
		return runJob(ctx, request, cfg, log, job, request.GetString("output", cfg.ParseOutput))
	}
}

// runJob runs job from the requested or configured input into output and
// formats the summary. Fatal run errors become tool errors.
func runJob(ctx context.Context, request mcp.CallToolRequest, cfg *config.Config, log logger.Logger, job pipeline.Job, output string) (*mcp.CallToolResult, error) {
	input := request.GetString("input", cfg.Input)
	if input == "" {
		input = cfg.Input
	}
	if output == "" {
		return mcp.NewToolResultError("output parameter required: no configured default"), nil
	}

	sum, err := pipeline.RunFiles(ctx, job, input, output, pipeline.Options{
		Logger:     log,
		LazyQuotes: cfg.LazyQuotes,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("%s failed: %v", job.Name, err)), nil
	}

	switch request.GetString("format", "markdown") {
	case "json":
		data, err := sum.ToJSON()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to format summary: %v", err)), nil
		}
		var structured map[string]any
		if err := json.Unmarshal(data, &structured); err != nil {
			return mcp.NewToolResultText(string(data)), nil
		}
		return &mcp.CallToolResult{
			Content:           []mcp.Content{mcp.NewTextContent(string(data))},
			StructuredContent: structured,
		}, nil
	default:
		text := fmt.Sprintf("Wrote %d records from %s to %s\n\n%s", sum.Written, input, output, sum.RenderTable(true))
		return mcp.NewToolResultText(text), nil
	}
}

// extractionMetrics is the JSON answer of the get_extraction_metrics tool.
type extractionMetrics struct {
	Timestamp  string          `json:"timestamp"`
	Extraction extract.Metrics `json:"extraction"`
	Runtime    map[string]any  `json:"runtime"`
}

// collectMetrics gathers the extractor counters and process memory statistics.
func collectMetrics(ex *extract.Extractor) extractionMetrics {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return extractionMetrics{
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Extraction: ex.Metrics(),
		Runtime: map[string]any{
			"go_version":    runtime.Version(),
			"num_goroutine": runtime.NumGoroutine(),
			"heap_alloc_mb": float64(memStats.HeapAlloc) / (1024 * 1024),
			"heap_objects":  memStats.HeapObjects,
			"num_gc":        memStats.NumGC,
		},
	}
}

// handleGetExtractionMetrics returns the handler of the get_extraction_metrics tool.
func handleGetExtractionMetrics(ex *extract.Extractor) ToolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		data := collectMetrics(ex)

		if request.GetString("format", "json") == "markdown" {
			return mcp.NewToolResultText(formatMetricsMarkdown(data)), nil
		}

		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to format metrics: %v", err)), nil
		}
		return mcp.NewToolResultText(string(out)), nil
	}
}

// formatMetricsMarkdown renders the metrics as a markdown table.
func formatMetricsMarkdown(data extractionMetrics) string {
	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"Metric", "Value"})
	table.Bulk([][]string{
		{"Strict parses", fmt.Sprintf("%d", data.Extraction.Strict)},
		{"Fallback recoveries", fmt.Sprintf("%d", data.Extraction.Fallback)},
		{"Absent values", fmt.Sprintf("%d", data.Extraction.Absent)},
		{"Heap alloc (MB)", fmt.Sprintf("%.2f", data.Runtime["heap_alloc_mb"])},
		{"Goroutines", fmt.Sprintf("%v", data.Runtime["num_goroutine"])},
		{"Go version", fmt.Sprintf("%v", data.Runtime["go_version"])},
	})
	table.Render()

	return "# Extraction Metrics\n\n" + buf.String()
}
