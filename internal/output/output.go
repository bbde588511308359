// Package output renders command results for the terminal.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the output format for CLI commands.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Default is the default output format.
const Default = FormatYAML

// ParseFormat resolves a --output flag value. The empty string is Default.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return Default, nil
	case FormatYAML, FormatJSON, FormatText:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format: %s", s)
	}
}

// Texter is implemented by results with a human-readable rendering.
type Texter interface {
	Text() string
}

// Printer writes results in one format.
type Printer struct {
	w      io.Writer
	format Format
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer, format Format) *Printer {
	return &Printer{w: w, format: format}
}

// Format returns the printer's format.
func (p *Printer) Format() Format {
	return p.format
}

// Structured reports whether output is machine-readable. Commands print
// human-friendly messages only when it is not.
func (p *Printer) Structured() bool {
	return p.format == FormatJSON || p.format == FormatYAML
}

// Print writes data. In text format a Texter is rendered with Text; anything
// else falls back to YAML.
func (p *Printer) Print(data any) error {
	return To(p.w, p.format, data)
}

// To writes data to w in the given format.
func To(w io.Writer, format Format, data any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(data)
	case FormatText:
		t, ok := data.(Texter)
		if !ok {
			return To(w, FormatYAML, data)
		}
		s := t.Text()
		if !strings.HasSuffix(s, "\n") {
			s += "\n"
		}
		_, err := io.WriteString(w, s)
		return err
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
