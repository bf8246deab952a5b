package fixtab

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Delimiter separates fields in a record line.
const Delimiter = ','

// LineDecoder reads the fields of one comma-delimited line left to right.
// It keeps the cursor position so failures can be reported with the offset
// and the unconsumed fragment.
type LineDecoder struct {
	line   string
	cursor int
}

// NewLineDecoder returns a decoder positioned at the start of line.
func NewLineDecoder(line string) *LineDecoder {
	return &LineDecoder{line: line}
}

// Remaining returns the unconsumed tail of the line.
func (d *LineDecoder) Remaining() string { return d.line[d.cursor:] }

// CursorPosition returns the number of bytes consumed, delimiters included.
func (d *LineDecoder) CursorPosition() int { return d.cursor }

// DecodeString returns the text up to the next delimiter. The last field is
// the rest of the line. It returns [ErrEndOfInput] once nothing remains.
func (d *LineDecoder) DecodeString() (string, error) {
	rem := d.Remaining()
	at := strings.IndexByte(rem, Delimiter)
	if at == -1 {
		if rem == "" {
			return "", fmt.Errorf("%w: no field at position %d", ErrEndOfInput, d.cursor)
		}
		d.cursor = len(d.line)
		return rem, nil
	}
	d.cursor += at + 1
	return rem[:at], nil
}

// DecodeDecimal reads the next field as a decimal number. A field that does
// not parse leaves the cursor where it was.
func (d *LineDecoder) DecodeDecimal() (decimal.Decimal, error) {
	start := d.cursor
	s, err := d.DecodeString()
	if err != nil {
		return decimal.Zero, err
	}
	s = strings.TrimSpace(s)
	num, err := decimal.NewFromString(s)
	if err != nil {
		d.cursor = start
		return decimal.Zero, fmt.Errorf("%w: %q is not a decimal number", ErrDataInvalid, s)
	}
	return num, nil
}

// DecodeUint reads the next field as a non-negative integer. A field that
// does not parse leaves the cursor where it was.
func (d *LineDecoder) DecodeUint() (uint64, error) {
	start := d.cursor
	s, err := d.DecodeString()
	if err != nil {
		return 0, err
	}
	s = strings.TrimSpace(s)
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		d.cursor = start
		return 0, fmt.Errorf("%w: %q is not a non-negative integer", ErrDataInvalid, s)
	}
	return n, nil
}

// LineEncoder writes fields as one comma-delimited line that a
// [LineDecoder] reads back.
type LineEncoder struct {
	sb     strings.Builder
	fields int
}

// EncodeString appends s as the next field. Text holding the delimiter or a
// line break cannot be read back and is rejected.
func (e *LineEncoder) EncodeString(s string) error {
	if strings.ContainsAny(s, ",\r\n") {
		return fmt.Errorf("%w: field %q contains a delimiter or line break", ErrDataInvalid, s)
	}
	if e.fields > 0 {
		e.sb.WriteByte(Delimiter)
	}
	e.sb.WriteString(s)
	e.fields++
	return nil
}

// EncodeDecimal appends d with its own scale.
func (e *LineEncoder) EncodeDecimal(d decimal.Decimal) error {
	return e.EncodeString(FormatDecimal(d))
}

// EncodeUint appends n in base 10.
func (e *LineEncoder) EncodeUint(n uint64) error {
	return e.EncodeString(strconv.FormatUint(n, 10))
}

// String returns the encoded line.
func (e *LineEncoder) String() string { return e.sb.String() }

// Reset clears the encoder for reuse.
func (e *LineEncoder) Reset() {
	e.sb.Reset()
	e.fields = 0
}

// MarshalLine encodes v as one record line.
func MarshalLine(v any) (string, error) {
	var e LineEncoder
	if err := EncodeAny(&e, v); err != nil {
		return "", err
	}
	return e.String(), nil
}
