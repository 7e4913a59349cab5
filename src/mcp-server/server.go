// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/H0llyW00dzZ/txn-triple-extractor/src/internal/config"
	"github.com/H0llyW00dzZ/txn-triple-extractor/src/logger"
	"github.com/H0llyW00dzZ/txn-triple-extractor/src/version"
	"github.com/mark3labs/mcp-go/server"
)

var appVersion = version.Version // default version

// GetVersion returns the current version of the MCP server.
//
// The version is initially set to the default from the version package,
// but can be overridden when calling Run() with a specific version string.
func GetVersion() string {
	return appVersion
}

// Run starts the MCP server over stdio.
//
// Parameters:
//   - version: Version string to set for the server (e.g., "0.1.0")
//
// Returns:
//   - error: Server startup or runtime error, or graceful shutdown signal
//
// Configuration:
//   - Loaded with the config package, so TXN_EXTRACTOR_CONFIG_FILE and the
//     other TXN_EXTRACTOR_* variables apply
//   - Diagnostics are JSON lines, silent unless log.silent is false; they go
//     to log.path when set and to standard error otherwise
//
// Graceful Shutdown:
//   - Responds to SIGINT (Ctrl+C) and SIGTERM signals
//   - Returns an error wrapping context.Canceled on signal-based shutdown
func Run(version string) error {
	appVersion = version

	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := NewServerBuilder().
		WithConfig(cfg).
		WithVersion(version).
		WithLogger(log).
		WithDefaultTools().
		WithDefaultResources().
		Build()
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	log.Printf("%s %s serving on stdio", serverName, version)

	stdioServer := server.NewStdioServer(s)

	errChan := make(chan error, 1)
	go func() {
		errChan <- stdioServer.Listen(ctx, os.Stdin, os.Stdout)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return fmt.Errorf("server shutdown: %w", ctx.Err())
	}
}

// newLogger builds the server logger from cfg. The returned function closes
// the log file, if one was opened.
func newLogger(cfg *config.Config) (*logger.MCPLogger, func(), error) {
	if cfg.Log.Silent || cfg.Log.Path == "" {
		return logger.NewMCPLogger(os.Stderr, cfg.Log.Silent).With("mcp-server"), func() {}, nil
	}

	f, err := os.OpenFile(cfg.Log.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return logger.NewMCPLogger(f, false).With("mcp-server"), func() { f.Close() }, nil
}
