// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/H0llyW00dzZ/toolchain-buildenv/src/internal/helper/gc"
)

// Supported output formats for [New].
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnknownFormat is returned by [New] for a format other than
// [FormatText] or [FormatJSON].
var ErrUnknownFormat = errors.New("logger: unknown log format")

// Logger defines the interface for logging operations.
// It provides methods for formatted output and for redirecting it.
//
// Diagnostics always go to the logger; command results go to the command's
// own output stream so they can be piped.
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// New returns a logger writing to w in the given format. An empty format
// selects [FormatText].
func New(format string, w io.Writer) (Logger, error) {
	switch format {
	case "", FormatText:
		l := NewCLILogger()
		l.SetOutput(w)
		return l, nil
	case FormatJSON:
		return NewJSONLogger(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// CLILogger implements Logger using the standard log package.
// It's designed for human-readable diagnostics on standard error.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger writing to stderr with timestamps disabled.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stderr, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	c.logger.SetOutput(w)
}

// JSONLogger implements Logger by writing one JSON object per line,
// for build bots that collect tool diagnostics.
//
// JSONLogger is safe for concurrent use by multiple goroutines.
type JSONLogger struct {
	mu     sync.Mutex
	writer io.Writer
}

// entry is the wire shape of a single JSON log line.
type entry struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// NewJSONLogger creates a JSON logger. A nil writer discards output.
func NewJSONLogger(writer io.Writer) *JSONLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &JSONLogger{writer: writer}
}

// Printf formats and logs a structured message.
func (j *JSONLogger) Printf(format string, v ...any) { j.write(fmt.Sprintf(format, v...)) }

// Println logs a structured message. Operands are joined as by fmt.Sprintln
// without the trailing newline.
func (j *JSONLogger) Println(v ...any) {
	msg := fmt.Sprintln(v...)
	j.write(msg[:len(msg)-1])
}

func (j *JSONLogger) write(msg string) {
	data, err := json.Marshal(entry{Level: "info", Message: msg})
	if err != nil {
		return
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	buf.Write(data)
	buf.WriteByte('\n')

	j.mu.Lock()
	buf.WriteTo(j.writer)
	j.mu.Unlock()
}

// SetOutput sets the output destination for the JSON logger.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (j *JSONLogger) SetOutput(w io.Writer) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if w == nil {
		j.writer = io.Discard
	} else {
		j.writer = w
	}
}
