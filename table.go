package fixtab

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/shopspring/decimal"
)

const (
	cellSep = "|"
	ruleSym = "-"
)

// Column declares one fixed-width table column. Width counts display cells;
// negative widths are treated as zero.
type Column struct {
	Label string
	Width int
}

// FixedTable lays records out as fixed-width text rows. Every body row is
// produced by running a record through [EncodeAny] against a row encoder
// bound to the column widths. Rows are immutable once inserted.
type FixedTable struct {
	widths []int
	title  string
	header string
	rule   string
	rows   List[string]
}

// NewFixedTable returns a table with the given columns. The header row and
// horizontal rule are derived from them.
func NewFixedTable(cols ...Column) *FixedTable {
	t := &FixedTable{widths: make([]int, len(cols))}
	if len(cols) == 0 {
		return t
	}
	total := 0
	for i, c := range cols {
		t.widths[i] = max(c.Width, 0)
		total += t.widths[i]
	}
	t.rule = strings.Repeat(ruleSym, total+len(cols)+1)

	var header strings.Builder
	header.WriteString(cellSep)
	for i, c := range cols {
		header.WriteString(fitCell(c.Label, t.widths[i]))
		header.WriteString(cellSep)
	}
	t.header = header.String()
	return t
}

// WithTitle sets the caption line printed above the table. An empty title
// is omitted.
func (t *FixedTable) WithTitle(title string) *FixedTable {
	t.title = title
	return t
}

// Insert renders v as a body row. On error nothing is appended.
func (t *FixedTable) Insert(v any) error {
	row := newRowEncoder(t.widths)
	if err := EncodeAny(row, v); err != nil {
		return fmt.Errorf("insert row %d: %w", t.rows.Len()+1, err)
	}
	t.rows.PushBack(row.finish())
	return nil
}

// InsertMany inserts each value in order, stopping at the first error.
func (t *FixedTable) InsertMany(vs ...any) error {
	for _, v := range vs {
		if err := t.Insert(v); err != nil {
			return err
		}
	}
	return nil
}

// InsertSeq inserts every element of seq in order, stopping at the first
// error.
func InsertSeq[T any](t *FixedTable, seq iter.Seq[T]) error {
	for v := range seq {
		if err := t.Insert(v); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of body rows.
func (t *FixedTable) Len() int { return t.rows.Len() }

// Lines yields the rendered table: title, rule, header, rule, body rows and
// a closing rule. The title is skipped when empty and the closing rule when
// there are no rows. A table without columns has no header or rules.
func (t *FixedTable) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		if t.title != "" && !yield(t.title) {
			return
		}
		if t.header != "" {
			if !yield(t.rule) || !yield(t.header) || !yield(t.rule) {
				return
			}
		}
		for row := range t.rows.All() {
			if !yield(row) {
				return
			}
		}
		if t.rule != "" && !t.rows.IsEmpty() {
			yield(t.rule)
		}
	}
}

// WriteTo writes every line of the table to w, each followed by a newline.
func (t *FixedTable) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for line := range t.Lines() {
		n, err := fmt.Fprintln(w, line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// RenderTable builds a titled table from items and passes each rendered line
// to sink.
func RenderTable[T any](title string, cols []Column, items iter.Seq[T], sink func(string)) error {
	t := NewFixedTable(cols...).WithTitle(title)
	if err := InsertSeq(t, items); err != nil {
		return err
	}
	for line := range t.Lines() {
		sink(line)
	}
	return nil
}

// rowEncoder writes one table row, consuming one column per primitive.
type rowEncoder struct {
	widths []int
	next   int
	sb     strings.Builder
}

func newRowEncoder(widths []int) *rowEncoder {
	r := &rowEncoder{widths: widths}
	r.sb.WriteString(cellSep)
	return r
}

func (r *rowEncoder) EncodeString(s string) error {
	if r.next >= len(r.widths) {
		return fmt.Errorf("%w: %d columns declared", ErrRowOverflow, len(r.widths))
	}
	width := r.widths[r.next]
	r.next++
	r.sb.WriteString(fitCell(s, width))
	r.sb.WriteString(cellSep)
	return nil
}

func (r *rowEncoder) EncodeDecimal(d decimal.Decimal) error {
	return r.EncodeString(FormatDecimal(d))
}

func (r *rowEncoder) EncodeUint(n uint64) error {
	return r.EncodeString(strconv.FormatUint(n, 10))
}

// finish blank-fills the unused columns and returns the row text.
func (r *rowEncoder) finish() string {
	for ; r.next < len(r.widths); r.next++ {
		r.sb.WriteString(strings.Repeat(" ", r.widths[r.next]))
		r.sb.WriteString(cellSep)
	}
	return r.sb.String()
}

// fitCell truncates or right-pads s to exactly width display cells.
func fitCell(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "")
	}
	return runewidth.FillRight(s, width)
}
