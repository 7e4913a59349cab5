// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/H0llyW00dzZ/txn-triple-extractor/src/internal/config"
	"github.com/H0llyW00dzZ/txn-triple-extractor/src/internal/extract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// createResources returns the static resources of the server:
//   - config://template: the default configuration as JSON
//   - info://version: server name, version and tool names
//   - docs://sanitizer-rules: the repair rules of ex in the order they apply
func createResources(ex *extract.Extractor, version string) []server.ServerResource {
	return []server.ServerResource{
		{
			Resource: mcp.NewResource("config://template", "Configuration Template",
				mcp.WithResourceDescription("Default configuration; save as .json or convert to YAML"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleConfigResource,
		},
		{
			Resource: mcp.NewResource("info://version", "Version Information",
				mcp.WithResourceDescription("Server name, version and available tools"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleVersionResource(version),
		},
		{
			Resource: mcp.NewResource("docs://sanitizer-rules", "Sanitizer Rules",
				mcp.WithResourceDescription("Repair rules applied to JSON cells before strict parsing"),
				mcp.WithMIMEType("text/markdown"),
			),
			Handler: handleRulesResource(ex),
		},
	}
}

// handleConfigResource serves the default configuration as JSON.
func handleConfigResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonData, err := json.MarshalIndent(config.Default(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config template: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "config://template",
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

// handleVersionResource serves server metadata for version.
func handleVersionResource(version string) server.ResourceHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		tools, toolsWithConfig := createTools(extract.New(nil), nil)
		names := make([]string, 0, len(tools)+len(toolsWithConfig))
		for _, t := range tools {
			names = append(names, t.Tool.Name)
		}
		for _, t := range toolsWithConfig {
			names = append(names, t.Tool.Name)
		}

		jsonData, err := json.MarshalIndent(map[string]any{
			"name":    serverName,
			"version": version,
			"tools":   names,
		}, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal version info: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "info://version",
				MIMEType: "application/json",
				Text:     string(jsonData),
			},
		}, nil
	}
}

// handleRulesResource serves the sanitizer rule names of ex as a markdown list.
func handleRulesResource(ex *extract.Extractor) server.ResourceHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		var b strings.Builder
		b.WriteString("# Sanitizer Rules\n\nApplied in order to every JSON cell before strict parsing:\n\n")
		for i, name := range ex.Sanitizer().Rules() {
			fmt.Fprintf(&b, "%d. `%s`\n", i+1, name)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "docs://sanitizer-rules",
				MIMEType: "text/markdown",
				Text:     b.String(),
			},
		}, nil
	}
}
