// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/H0llyW00dzZ/txn-triple-extractor/src/internal/extract"
	"github.com/H0llyW00dzZ/txn-triple-extractor/src/logger"
	"github.com/mark3labs/mcp-go/mcp"
)

// createTools creates and returns all MCP tool definitions with their handlers.
// It organizes tools into two categories: those that work on text passed in
// the request and those that read files and need the configured defaults.
//
// Parameters:
//   - ex: Extractor shared by every tool
//   - log: Logger receiving per-row warnings of extraction runs
//
// Returns:
//   - A slice of ToolDefinition for tools without config dependencies
//   - A slice of ToolDefinitionWithConfig for tools that require server configuration
func createTools(ex *extract.Extractor, log logger.Logger) ([]ToolDefinition, []ToolDefinitionWithConfig) {
	tools := []ToolDefinition{
		{
			Tool: mcp.NewTool("sanitize_json",
				mcp.WithDescription("Replace masked values with null and escape stray quotes in a JSON text taken from a response or request cell"),
				mcp.WithString("json",
					mcp.Required(),
					mcp.Description("Raw JSON text, possibly masked or malformed"),
				),
				mcp.WithBoolean("report",
					mcp.Description("Also list the repair rules that changed the text (default: false)"),
					mcp.DefaultBool(false),
				),
			),
			Handler: handleSanitizeJSON(ex),
		},
		{
			Tool: mcp.NewTool("extract_field",
				mcp.WithDescription("Resolve a dot-separated field in a JSON text by strict parsing, falling back to a pattern search on the raw text"),
				mcp.WithString("json",
					mcp.Required(),
					mcp.Description("Raw JSON text, possibly masked or malformed"),
				),
				mcp.WithString("path",
					mcp.Required(),
					mcp.Description("Dot-separated path, e.g. 'id' or 'clientReferenceInformation.code'"),
				),
				mcp.WithString("kind",
					mcp.Description("Value kind: 'string' or 'bool' (default: string)"),
					mcp.DefaultString("string"),
				),
			),
			Handler: handleExtractField(ex),
		},
		{
			Tool: mcp.NewTool("get_extraction_metrics",
				mcp.WithDescription("Report how extractions in this session were resolved, with process memory statistics"),
				mcp.WithString("format",
					mcp.Description("Output format: 'json' or 'markdown' (default: 'json')"),
					mcp.DefaultString("json"),
				),
			),
			Handler: handleGetExtractionMetrics(ex),
		},
	}

	toolsWithConfig := []ToolDefinitionWithConfig{
		{
			Tool: mcp.NewTool("extract_triples",
				mcp.WithDescription("Write the de-duplicated (payment_id, connector_transaction_id, attempt_id) triples of a payment attempt CSV export"),
				mcp.WithString("input",
					mcp.Description("CSV export to read (default: configured input)"),
				),
				mcp.WithString("output",
					mcp.Description("Destination CSV (default: configured output)"),
				),
				mcp.WithString("flows",
					mcp.Description("Comma separated flows to keep (default: configured flows, Authorize,SetupMandate)"),
				),
				mcp.WithString("format",
					mcp.Description("Summary format: 'markdown' or 'json' (default: markdown)"),
					mcp.DefaultString("markdown"),
				),
			),
			Handler: handleExtractTriples(ex, log),
		},
		{
			Tool: mcp.NewTool("parse_flows",
				mcp.WithDescription("List every row of a payment attempt CSV export with its flow, timestamp, ids and capture flag"),
				mcp.WithString("input",
					mcp.Description("CSV export to read (default: configured input)"),
				),
				mcp.WithString("output",
					mcp.Description("Destination CSV (default: configured parse output)"),
				),
				mcp.WithBoolean("dedup",
					mcp.Description("Drop rows repeating an already written triple (default: false)"),
					mcp.DefaultBool(false),
				),
				mcp.WithString("format",
					mcp.Description("Summary format: 'markdown' or 'json' (default: markdown)"),
					mcp.DefaultString("markdown"),
				),
			),
			Handler: handleParseFlows(ex, log),
		},
	}

	return tools, toolsWithConfig
}
