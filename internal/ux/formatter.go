package ux

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Formatter defines the interface for output formatters.
// This enables consistent output formatting across all commands.
type Formatter interface {
	// Format writes the given data to the output writer
	Format(data interface{}) error
}

// TextRenderer lets a value control its own human-readable rendering;
// the text formatter falls back to %v for everything else.
type TextRenderer interface {
	RenderText(w io.Writer) error
}

// FormatterOptions contains configuration for formatters
type FormatterOptions struct {
	// Writer is where output is written (defaults to os.Stdout)
	Writer io.Writer
	// Compact enables compact output (no indentation for JSON)
	Compact bool
}

// NewFormatter creates a formatter based on the format string
func NewFormatter(format string, opts *FormatterOptions) (Formatter, error) {
	if opts == nil {
		opts = &FormatterOptions{Writer: os.Stdout}
	}
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	switch format {
	case "json":
		return &JSONFormatter{opts: opts}, nil
	case "yaml":
		return &YAMLFormatter{opts: opts}, nil
	case "text", "":
		return &TextFormatter{opts: opts}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s (supported: text, json, yaml)", format)
	}
}

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	opts *FormatterOptions
}

// Format writes data as JSON
func (f *JSONFormatter) Format(data interface{}) error {
	enc := json.NewEncoder(f.opts.Writer)
	if !f.opts.Compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(data)
}

// YAMLFormatter formats output as YAML
type YAMLFormatter struct {
	opts *FormatterOptions
}

// Format writes data as YAML
func (f *YAMLFormatter) Format(data interface{}) error {
	enc := yaml.NewEncoder(f.opts.Writer)
	defer enc.Close()
	return enc.Encode(data)
}

// TextFormatter formats output for humans
type TextFormatter struct {
	opts *FormatterOptions
}

// Format writes data as text, delegating to TextRenderer when implemented
func (f *TextFormatter) Format(data interface{}) error {
	if r, ok := data.(TextRenderer); ok {
		return r.RenderText(f.opts.Writer)
	}
	_, err := fmt.Fprintf(f.opts.Writer, "%v\n", data)
	return err
}
