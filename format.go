package fixtab

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"

	"gopkg.in/yaml.v3"
)

// Format represents an output format for a sequence of records.
type Format string

const (
	Table Format = "table"
	CSV   Format = "csv"
	JSON  Format = "json"
	JSONL Format = "jsonl"
	YAML  Format = "yaml"
	Plain Format = "plain"
)

var formats = []Format{Table, CSV, JSON, JSONL, YAML, Plain}

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

// View describes how records are laid out in [Table] format. Other formats
// ignore it.
type View struct {
	Title   string
	Columns []Column
}

// Write renders items in format f and writes them to w.
func Write[T any](w io.Writer, f Format, v View, items iter.Seq[T]) error {
	switch f {
	case Table:
		return writeTable(w, v, items)
	case CSV:
		return writeCSV(w, items)
	case JSON:
		return writeJSON(w, items)
	case JSONL:
		return writeJSONL(w, items)
	case YAML:
		return writeYAML(w, items)
	case Plain:
		return writePlain(w, items)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

func writeTable[T any](w io.Writer, v View, items iter.Seq[T]) error {
	t := NewFixedTable(v.Columns...).WithTitle(v.Title)
	if err := InsertSeq(t, items); err != nil {
		return err
	}
	_, err := t.WriteTo(w)
	return err
}

func writeCSV[T any](w io.Writer, items iter.Seq[T]) error {
	var enc LineEncoder
	var writeErr error
	lines := func(yield func(string) bool) {
		for item := range items {
			enc.Reset()
			if err := EncodeAny(&enc, item); err != nil {
				writeErr = err
				return
			}
			if !yield(enc.String()) {
				return
			}
		}
	}
	if err := WriteLines(w, lines); err != nil {
		return err
	}
	return writeErr
}

func writeJSON[T any](w io.Writer, items iter.Seq[T]) error {
	all := collectSlice(items)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(all)
}

func writeJSONL[T any](w io.Writer, items iter.Seq[T]) error {
	enc := json.NewEncoder(w)
	for item := range items {
		if err := enc.Encode(item); err != nil {
			return err
		}
	}
	return nil
}

func writeYAML[T any](w io.Writer, items iter.Seq[T]) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(collectSlice(items)); err != nil {
		return err
	}
	return enc.Close()
}

func writePlain[T any](w io.Writer, items iter.Seq[T]) error {
	for item := range items {
		var s string
		if str, ok := any(item).(fmt.Stringer); ok {
			s = str.String()
		} else {
			s = fmt.Sprintf("%v", item)
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}

// collectSlice gathers items into a non-nil slice so empty input encodes as
// an empty array rather than null.
func collectSlice[T any](items iter.Seq[T]) []T {
	all := []T{}
	for item := range items {
		all = append(all, item)
	}
	return all
}
