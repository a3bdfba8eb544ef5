// Package output renders command results in the formats selectable with
// the CLI's --output flag.
package output

import (
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrMissingInterface  = errors.New("missing required interface")
)

// Format represents an output format.
type Format string

const (
	Plain Format = "plain"
	List  Format = "list"
	TSV   Format = "tsv"
	CSV   Format = "csv"
	JSON  Format = "json"
	JSONL Format = "jsonl"
	YAML  Format = "yaml"
)

var formats = []Format{Plain, List, TSV, CSV, JSON, JSONL, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Rower provides row data. Required for TSV and CSV.
type Rower interface {
	Row() []string
}

// Headed provides column headers for TSV and CSV.
type Headed interface {
	Header() []string
}

// Lister provides a flat list of strings. Required for List.
type Lister interface {
	List() []string
}

// Write formats items and writes them to w.
func Write[T any](w io.Writer, f Format, items ...T) error {
	switch f {
	case Plain:
		return writePlain(w, items)
	case List:
		return writeList(w, items)
	case TSV:
		return writeTSV(w, items)
	case CSV:
		return writeCSV(w, items)
	case JSON:
		return writeJSON(w, items)
	case JSONL:
		return writeJSONL(w, items)
	case YAML:
		return writeYAML(w, items)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}
