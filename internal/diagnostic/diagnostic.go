package diagnostic

import (
	"fmt"
	"io"
	"log"
	"strings"
)

// Warning codes.
const (
	CodeUnsupportedType    = "unsupported-type"
	CodeFallbackIdentifier = "fallback-identifier"
)

// Sink receives non-fatal warnings.
type Sink interface {
	Warn(code, message, table, field string)
}

// Diagnostic represents a single warning.
type Diagnostic struct {
	// Code identifies the kind of warning.
	Code string
	// Message is the human-readable description.
	Message string
	// Table is the display name of the table being generated (if any).
	Table string
	// Field is the display name of the field concerned (if any).
	Field string
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Table != "" {
		prefix = append(prefix, "["+d.Table+"]")
	}

	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

// Diagnostics collects warnings in the order they were raised.
type Diagnostics struct {
	Warnings []Diagnostic
}

// Warn implements Sink.
func (d *Diagnostics) Warn(code, message, table, field string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Code:    code,
		Message: message,
		Table:   table,
		Field:   field,
	})
}

// Count returns the number of warnings with the given code.
func (d *Diagnostics) Count(code string) int {
	n := 0
	for _, w := range d.Warnings {
		if w.Code == code {
			n++
		}
	}

	return n
}

// LogSink writes every warning as a "WARNING:" log line.
type LogSink struct {
	Logger *log.Logger
}

// NewLogSink returns a LogSink writing to w without timestamps.
func NewLogSink(w io.Writer) *LogSink {
	return &LogSink{Logger: log.New(w, "", 0)}
}

// Warn implements Sink.
func (s *LogSink) Warn(code, message, table, field string) {
	d := Diagnostic{Code: code, Message: message, Table: table, Field: field}
	s.Logger.Printf("WARNING: %s", d)
}

// Tee forwards every warning to all sinks.
type Tee []Sink

// Warn implements Sink.
func (t Tee) Warn(code, message, table, field string) {
	for _, s := range t {
		s.Warn(code, message, table, field)
	}
}

// Discard drops every warning.
var Discard Sink = discard{}

type discard struct{}

func (discard) Warn(string, string, string, string) {}
