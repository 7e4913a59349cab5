// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"errors"

	"github.com/H0llyW00dzZ/txn-triple-extractor/src/internal/config"
	"github.com/H0llyW00dzZ/txn-triple-extractor/src/internal/extract"
	"github.com/H0llyW00dzZ/txn-triple-extractor/src/logger"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// serverName is the name the server reports during initialization.
const serverName = "Transaction Triple Extractor"

// ErrNoConfig is returned by [ServerBuilder.Build] when tools that need the
// configuration are registered without one.
var ErrNoConfig = errors.New("tools with config registered without a config")

// ToolHandler defines the function signature for [MCP] tool handlers.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ToolHandler = func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// ToolHandlerWithConfig defines the function signature for tool handlers
// that read the server configuration, such as default input and output paths.
type ToolHandlerWithConfig = func(ctx context.Context, request mcp.CallToolRequest, cfg *config.Config) (*mcp.CallToolResult, error)

// ToolDefinition holds a tool definition and its handler.
type ToolDefinition struct {
	Tool    mcp.Tool
	Handler ToolHandler
}

// ToolDefinitionWithConfig holds a tool definition whose handler receives
// the server configuration.
type ToolDefinitionWithConfig struct {
	Tool    mcp.Tool
	Handler ToolHandlerWithConfig
}

// ServerDependencies holds all dependencies needed to create the MCP server.
//
// Fields:
//   - Config: Default paths, flows and CSV options for the extraction tools
//   - Version: Server version string
//   - Logger: Destination of per-row warnings during extractions
//   - Extractor: Extractor shared by all tools, so its metrics cover the session
//   - Tools: Tool definitions without configuration requirements
//   - ToolsWithConfig: Tool definitions that need configuration access
//   - Resources: Static and dynamic resources provided by the server
type ServerDependencies struct {
	Config          *config.Config
	Version         string
	Logger          logger.Logger
	Extractor       *extract.Extractor
	Tools           []ToolDefinition
	ToolsWithConfig []ToolDefinitionWithConfig
	Resources       []server.ServerResource
}

// ServerBuilder helps construct the [MCP] server with proper dependencies using a fluent interface.
//
// Example:
//
//	s, err := NewServerBuilder().
//	    WithConfig(cfg).
//	    WithVersion("1.0.0").
//	    WithDefaultTools().
//	    Build()
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ServerBuilder struct{ deps ServerDependencies }

// NewServerBuilder creates a new server builder with a fresh extractor and a
// silent logger.
func NewServerBuilder() *ServerBuilder {
	return &ServerBuilder{deps: ServerDependencies{
		Logger:    logger.Nop(),
		Extractor: extract.New(nil),
	}}
}

// WithConfig sets the configuration handed to tools registered with
// [ServerBuilder.WithToolsWithConfig].
func (b *ServerBuilder) WithConfig(cfg *config.Config) *ServerBuilder {
	b.deps.Config = cfg
	return b
}

// WithVersion sets the server version string.
func (b *ServerBuilder) WithVersion(version string) *ServerBuilder {
	b.deps.Version = version
	return b
}

// WithLogger sets the logger used for per-row warnings. A nil logger keeps
// the current one.
func (b *ServerBuilder) WithLogger(log logger.Logger) *ServerBuilder {
	if log != nil {
		b.deps.Logger = log
	}
	return b
}

// WithExtractor replaces the shared extractor. It must be called before
// [ServerBuilder.WithDefaultTools], which binds the tools to the extractor.
func (b *ServerBuilder) WithExtractor(ex *extract.Extractor) *ServerBuilder {
	if ex != nil {
		b.deps.Extractor = ex
	}
	return b
}

// WithTools adds tool definitions that don't require configuration access.
func (b *ServerBuilder) WithTools(tools ...ToolDefinition) *ServerBuilder {
	b.deps.Tools = append(b.deps.Tools, tools...)
	return b
}

// WithToolsWithConfig adds tool definitions whose handlers receive the
// server configuration.
func (b *ServerBuilder) WithToolsWithConfig(tools ...ToolDefinitionWithConfig) *ServerBuilder {
	b.deps.ToolsWithConfig = append(b.deps.ToolsWithConfig, tools...)
	return b
}

// WithResources adds resources that clients read by URI.
func (b *ServerBuilder) WithResources(resources ...server.ServerResource) *ServerBuilder {
	b.deps.Resources = append(b.deps.Resources, resources...)
	return b
}

// WithDefaultTools adds the extraction tools bound to the builder's extractor
// and logger.
func (b *ServerBuilder) WithDefaultTools() *ServerBuilder {
	tools, toolsWithConfig := createTools(b.deps.Extractor, b.deps.Logger)
	b.deps.Tools = append(b.deps.Tools, tools...)
	b.deps.ToolsWithConfig = append(b.deps.ToolsWithConfig, toolsWithConfig...)
	return b
}

// WithDefaultResources adds the configuration, version and sanitizer rule
// resources.
func (b *ServerBuilder) WithDefaultResources() *ServerBuilder {
	b.deps.Resources = append(b.deps.Resources, createResources(b.deps.Extractor, b.deps.Version)...)
	return b
}

// Build creates the MCP server with every registered tool and resource.
//
// Returns [ErrNoConfig] if config-dependent tools were added without
// [ServerBuilder.WithConfig].
func (b *ServerBuilder) Build() (*server.MCPServer, error) {
	if len(b.deps.ToolsWithConfig) > 0 && b.deps.Config == nil {
		return nil, ErrNoConfig
	}

	s := server.NewMCPServer(
		serverName,
		b.deps.Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
	)

	for _, tool := range b.deps.Tools {
		s.AddTool(tool.Tool, tool.Handler)
	}

	// Wrap handlers that need the configuration
	for _, tool := range b.deps.ToolsWithConfig {
		handler := tool.Handler
		s.AddTool(tool.Tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handler(ctx, request, b.deps.Config)
		})
	}

	for _, resource := range b.deps.Resources {
		s.AddResource(resource.Resource, resource.Handler)
	}

	return s, nil
}
