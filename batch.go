package fixtab

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

// fragmentLen is how many runes of the unconsumed line a Diagnostic keeps.
const fragmentLen = 20

// Diagnostic describes one line that failed to decode.
type Diagnostic struct {
	// Line is the 1-based line number.
	Line int
	// Pos is the cursor position at the start of the read that failed.
	Pos int
	// Fragment is the first runes of the line from Pos on.
	Fragment string
	Err      error
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("line %d at %d - %q: %v", d.Line, d.Pos, d.Fragment, d.Err)
}

func (d Diagnostic) String() string { return d.Error() }

// Unwrap returns the decode error.
func (d Diagnostic) Unwrap() error { return d.Err }

// Option configures batch decoding.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger diagnostics are reported to.
// Default: [slog.Default].
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// DecodeLines decodes every line of r with decode. Lines that fail are
// reported as diagnostics and skipped; the rest are returned in order. Lines
// have no length limit. The error is non-nil only when reading r fails.
func DecodeLines[T any](r io.Reader, decode DecodeFunc[T], opts ...Option) (*List[T], []Diagnostic, error) {
	o := buildOptions(opts)
	out := &List[T]{}
	var diags []Diagnostic

	br := bufio.NewReader(r)
	n := 0
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return out, diags, fmt.Errorf("read line %d: %w", n+1, err)
		}
		if line == "" {
			break
		}
		n++
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		dec := &markedDecoder{LineDecoder: NewLineDecoder(line)}
		rec, err := decode(dec)
		if err != nil {
			diag := Diagnostic{
				Line:     n,
				Pos:      dec.mark,
				Fragment: truncateRunes(line[dec.mark:], fragmentLen),
				Err:      err,
			}
			o.logger.Warn("failed to parse line",
				"line", diag.Line,
				"pos", diag.Pos,
				"fragment", diag.Fragment,
				"err", err,
			)
			diags = append(diags, diag)
			continue
		}
		out.PushBack(rec)
	}
	return out, diags, nil
}

// DecodeFile decodes the file at path line by line. See [DecodeLines].
func DecodeFile[T any](path string, decode DecodeFunc[T], opts ...Option) (*List[T], []Diagnostic, error) {
	o := buildOptions(opts)
	o.logger.Info("parsing file", "path", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return DecodeLines(f, decode, WithLogger(o.logger))
}

// WriteLines writes each line to w followed by a newline.
func WriteLines(w io.Writer, lines iter.Seq[string]) error {
	bw := bufio.NewWriter(w)
	for line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveLines creates or truncates the file at path and writes lines to it.
func SaveLines(path string, lines iter.Seq[string]) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteLines(f, lines)
}

// markedDecoder remembers where the most recent read started, so a record
// rejected for the value of a field is reported at that field rather than
// after it.
type markedDecoder struct {
	*LineDecoder
	mark int
}

func (m *markedDecoder) DecodeString() (string, error) {
	m.mark = m.cursor
	return m.LineDecoder.DecodeString()
}

func (m *markedDecoder) DecodeDecimal() (decimal.Decimal, error) {
	m.mark = m.cursor
	return m.LineDecoder.DecodeDecimal()
}

func (m *markedDecoder) DecodeUint() (uint64, error) {
	m.mark = m.cursor
	return m.LineDecoder.DecodeUint()
}

func truncateRunes(s string, n int) string {
	i := 0
	for at := range s {
		if i == n {
			return s[:at]
		}
		i++
	}
	return s
}
