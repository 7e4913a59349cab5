// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides abstraction and implementation for logging operations.
// It defines the Logger interface and provides two implementations: CLILogger for
// human-readable command-line output on standard error and MCPLogger for
// structured JSON lines in MCP server environments, where standard output is
// reserved for the protocol.
//
// The extraction pipeline reports skipped rows through [Warnf], which picks the
// warning level of loggers that have one.
package logger
