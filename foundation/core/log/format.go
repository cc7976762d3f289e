// File: format.go
// Title: Log Format Definitions
// Description: Output formats for log entries: JSON for services, plain
//              text for files and a coloured console format for the CLI.
//              Fields are written in sorted key order.
// Author: mathemascii authors
// Version: v0.1.0
// Created: 2026-10-03
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-03 v0.1.0: JSON and text formats
// - 2026-10-09 v0.1.0: Console format styled with lipgloss

package log

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatJSON outputs one JSON object per line
	FormatJSON Format = iota

	// FormatText outputs human-readable text
	FormatText

	// FormatConsole outputs coloured text for terminals
	FormatConsole
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	case FormatConsole:
		return "console"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a log format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return FormatJSON, nil
	case "text", "":
		return FormatText, nil
	case "console":
		return FormatConsole, nil
	default:
		return FormatText, &ParseError{Input: format, Type: "format"}
	}
}

// Formatter turns an entry into bytes
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// JSONFormatter formats log entries as JSON
type JSONFormatter struct {
	TimestampFormat string
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339}
}

// Format formats a log entry as JSON. Errors that marshal themselves
// are added under error_details.
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(map[string]interface{}, len(entry.Fields)+6)

	data["timestamp"] = entry.Timestamp.Format(f.TimestampFormat)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message

	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}
	if entry.RequestID != "" {
		data["request_id"] = entry.RequestID
	}

	for k, v := range entry.Fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		data[k] = v
	}

	if entry.Error != nil {
		data["error"] = entry.Error.Error()
		if m, ok := entry.Error.(json.Marshaler); ok {
			if raw, err := m.MarshalJSON(); err == nil {
				data["error_details"] = json.RawMessage(raw)
			}
		}
	}

	if entry.Duration > 0 {
		data["duration_ms"] = float64(entry.Duration.Nanoseconds()) / 1e6
	}

	out, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// TextFormatter formats log entries as human-readable text
type TextFormatter struct {
	TimestampFormat  string
	DisableTimestamp bool
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: "15:04:05"}
}

// Format formats a log entry as text
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	return []byte(strings.Join(f.parts(entry, plainStyles), " ") + "\n"), nil
}

type styles struct {
	level func(Level, string) string
	dim   func(string) string
	key   func(string) string
}

var plainStyles = styles{
	level: func(_ Level, s string) string { return s },
	dim:   func(s string) string { return s },
	key:   func(s string) string { return s },
}

func (f *TextFormatter) parts(entry *Entry, st styles) []string {
	var parts []string

	if !f.DisableTimestamp {
		parts = append(parts, st.dim(entry.Timestamp.Format(f.TimestampFormat)))
	}
	parts = append(parts, st.level(entry.Level, "["+entry.Level.ShortString()+"]"))

	if entry.Logger != "" {
		parts = append(parts, st.dim("{"+entry.Logger+"}"))
	}
	if entry.RequestID != "" {
		parts = append(parts, st.dim("(req="+entry.RequestID+")"))
	}

	parts = append(parts, entry.Message)

	for _, k := range entry.Fields.Keys() {
		parts = append(parts, st.key(k+"=")+fmt.Sprint(entry.Fields[k]))
	}
	if entry.Error != nil {
		parts = append(parts, st.key("error=")+fmt.Sprintf("%q", entry.Error.Error()))
	}
	if entry.Duration > 0 {
		parts = append(parts, st.key("duration=")+entry.Duration.String())
	}
	return parts
}

// ConsoleFormatter formats log entries with terminal colours
type ConsoleFormatter struct {
	*TextFormatter
	levelStyles map[Level]lipgloss.Style
	dim         lipgloss.Style
	key         lipgloss.Style
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{
		TextFormatter: NewTextFormatter(),
		levelStyles: map[Level]lipgloss.Style{
			LevelTrace: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
			LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
			LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
			LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
			LevelFatal: lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
		},
		dim: lipgloss.NewStyle().Faint(true),
		key: lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	}
}

// Format formats a log entry for console output
func (f *ConsoleFormatter) Format(entry *Entry) ([]byte, error) {
	st := styles{
		level: func(l Level, s string) string {
			if style, ok := f.levelStyles[l]; ok {
				return style.Render(s)
			}
			return s
		},
		dim: func(s string) string { return f.dim.Render(s) },
		key: func(s string) string { return f.key.Render(s) },
	}
	return []byte(strings.Join(f.parts(entry, st), " ") + "\n"), nil
}

// GetFormatter returns a formatter for the specified format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatText:
		return NewTextFormatter()
	case FormatConsole:
		return NewConsoleFormatter()
	default:
		return NewJSONFormatter()
	}
}
