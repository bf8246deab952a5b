package fixtab

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/shopspring/decimal"
)

// Sentinel errors for programmatic error handling.
var (
	ErrEndOfInput        = errors.New("end of input")
	ErrDataInvalid       = errors.New("invalid data")
	ErrNullValue         = errors.New("null value cannot be encoded")
	ErrUnsupportedType   = errors.New("unsupported type")
	ErrRowOverflow       = errors.New("row has more cells than columns")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// --- Core Protocol Interfaces ---

// Encoder writes primitive values into some output representation.
type Encoder interface {
	EncodeString(s string) error
	EncodeDecimal(d decimal.Decimal) error
	EncodeUint(n uint64) error
}

// Decoder reads primitive values, one field per call, in declared order.
type Decoder interface {
	DecodeString() (string, error)
	DecodeDecimal() (decimal.Decimal, error)
	DecodeUint() (uint64, error)
}

// Encodable is implemented by records that write their own fields.
// Fields must be written in the order the record's DecodeFunc reads them.
type Encodable interface {
	Encode(e Encoder) error
}

// DecodeFunc builds a T from a Decoder. It must read exactly the fields T
// owns and fail with an error wrapping [ErrDataInvalid] when a field is wrong.
type DecodeFunc[T any] func(d Decoder) (T, error)

// Tuple is a fixed-size heterogeneous group of values. [EncodeAny] encodes
// each element in order.
type Tuple []any

// Tup builds a Tuple from vals.
func Tup(vals ...any) Tuple { return Tuple(vals) }

// EncodeAny routes v to the matching Encoder call based on its dynamic type.
//
// Precedence: [Encodable], string, decimal (decimal.Decimal, float32,
// float64), unsigned integers, [Tuple]. A nil value returns [ErrNullValue];
// anything else returns [ErrUnsupportedType].
func EncodeAny(e Encoder, v any) error {
	if isNil(v) {
		return ErrNullValue
	}
	switch val := v.(type) {
	case Encodable:
		return val.Encode(e)
	case string:
		return e.EncodeString(val)
	case decimal.Decimal:
		return e.EncodeDecimal(val)
	case float64:
		return e.EncodeDecimal(decimal.NewFromFloat(val))
	case float32:
		return e.EncodeDecimal(decimal.NewFromFloat32(val))
	case uint:
		return e.EncodeUint(uint64(val))
	case uint8:
		return e.EncodeUint(uint64(val))
	case uint16:
		return e.EncodeUint(uint64(val))
	case uint32:
		return e.EncodeUint(uint64(val))
	case uint64:
		return e.EncodeUint(val)
	case Tuple:
		for _, elem := range val {
			if err := EncodeAny(e, elem); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// FormatDecimal prints d keeping the scale it was parsed with, so "199.50"
// stays "199.50" and "80" stays "80". Encoders use it for decimal fields.
func FormatDecimal(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}
