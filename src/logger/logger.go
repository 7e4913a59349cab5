// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/H0llyW00dzZ/txn-triple-extractor/src/internal/helper/gc"
)

// Logger defines the interface for logging operations.
// It provides methods for formatted output and output redirection.
//
// This interface supports both CLI and [MCP] server modes, allowing seamless
// switching between human-readable output and structured logging.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// Warner is implemented by loggers that distinguish warnings from
// informational messages.
type Warner interface {
	Warnf(format string, v ...any)
}

// Warnf logs a warning through l. Loggers that implement [Warner] emit it at
// their warning level; any other [Logger] receives it through Printf with a
// "warning: " prefix. A nil l discards the message.
func Warnf(l Logger, format string, v ...any) {
	if l == nil {
		return
	}
	if w, ok := l.(Warner); ok {
		w.Warnf(format, v...)
		return
	}
	l.Printf("warning: "+format, v...)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
//
// Diagnostics go to standard error so that anything a command prints on
// standard output (summaries, sanitized JSON) stays machine readable.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger with timestamps disabled writing to
// standard error.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stderr, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// Warnf prints a message prefixed with "warning: ".
func (c *CLILogger) Warnf(format string, v ...any) { c.logger.Printf("warning: "+format, v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// Nop returns a [Logger] that discards everything.
func Nop() Logger { return NewMCPLogger(nil, true) }

// Log levels written by [MCPLogger].
const (
	LevelInfo = "info"
	LevelWarn = "warn"
)

// MCPLogger implements Logger for [MCP] server mode.
// It suppresses output by default since MCP communication happens over stdio,
// but can be configured to write structured logs to a separate destination.
//
// Each entry is a single JSON object on its own line:
//
//	{"level":"info","logger":"pipeline","message":"..."}
//
// The "logger" key is present only when a component name was set via [MCPLogger.With].
//
// MCPLogger is safe for concurrent use by multiple goroutines.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type MCPLogger struct {
	out       *output
	silent    bool
	component string
}

// output is shared by an MCPLogger and every logger derived from it via With,
// so SetOutput on any of them redirects all.
type output struct {
	mu     sync.Mutex
	writer io.Writer
}

// NewMCPLogger creates a new [MCP] logger.
// By default, it's silent (output suppressed) to avoid interfering with [MCP] stdio protocol.
// Set silent=false and provide a writer to enable structured logging to a file or stderr.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func NewMCPLogger(writer io.Writer, silent bool) *MCPLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &MCPLogger{
		out:    &output{writer: writer},
		silent: silent,
	}
}

// With returns a logger that tags every entry with the given component
// name. It shares the destination of m.
func (m *MCPLogger) With(component string) *MCPLogger {
	return &MCPLogger{out: m.out, silent: m.silent, component: component}
}

// Printf formats and logs a structured message at info level.
// Output is suppressed if silent mode is enabled.
//
// Printf is safe for concurrent use by multiple goroutines.
func (m *MCPLogger) Printf(format string, v ...any) {
	if m.silent {
		return
	}
	m.emit(LevelInfo, fmt.Sprintf(format, v...))
}

// Println logs a structured message at info level.
// Output is suppressed if silent mode is enabled.
//
// Println is safe for concurrent use by multiple goroutines.
func (m *MCPLogger) Println(v ...any) {
	if m.silent {
		return
	}
	m.emit(LevelInfo, fmt.Sprint(v...))
}

// Warnf formats and logs a structured message at warn level.
func (m *MCPLogger) Warnf(format string, v ...any) {
	if m.silent {
		return
	}
	m.emit(LevelWarn, fmt.Sprintf(format, v...))
}

// SetOutput sets the output destination for the MCP logger.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (m *MCPLogger) SetOutput(w io.Writer) {
	m.out.mu.Lock()
	defer m.out.mu.Unlock()

	if w == nil {
		m.out.writer = io.Discard
	} else {
		m.out.writer = w
	}
}

// emit encodes one entry into a pooled buffer and writes it with a single
// Write call so concurrent entries never interleave.
func (m *MCPLogger) emit(level, msg string) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	buf.WriteString(`{"level":`)
	writeJSONString(buf, level)
	if m.component != "" {
		buf.WriteString(`,"logger":`)
		writeJSONString(buf, m.component)
	}
	buf.WriteString(`,"message":`)
	writeJSONString(buf, msg)
	buf.WriteString("}\n")

	m.out.mu.Lock()
	buf.WriteTo(m.out.writer)
	m.out.mu.Unlock()
}

func writeJSONString(buf gc.Buffer, s string) {
	// json.Marshal of a string cannot fail.
	data, _ := json.Marshal(s)
	buf.Write(data)
}
