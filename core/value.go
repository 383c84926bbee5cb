package core

import (
	"fmt"
	"math/big"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

type Kind int

const (
	NullKind Kind = iota
	NumericKind
	TextKind
	BooleanKind
	TimestampKind
	OtherKind
)

func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case NumericKind:
		return "numeric"
	case TextKind:
		return "text"
	case BooleanKind:
		return "boolean"
	case TimestampKind:
		return "timestamp"
	case OtherKind:
		return "other"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Layouts of temporal values. Six fractional digits are appended to layouts
// ending in seconds when the value has a sub-second part.
const (
	TimestampLayout = "2006-01-02 15:04:05"
	DateLayout      = "2006-01-02"
	TimeLayout      = "15:04:05"

	fractionLayout = ".000000"
)

// Value is a single scalar cell. The zero Value is Null.
type Value struct {
	kind Kind
	text string
	raw  any
}

// Null is the SQL NULL value.
var Null = Value{}

// ValueOf classifies a driver value.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null
	case Value:
		return x
	case int:
		return Value{kind: NumericKind, text: strconv.FormatInt(int64(x), 10), raw: x}
	case int8:
		return Value{kind: NumericKind, text: strconv.FormatInt(int64(x), 10), raw: x}
	case int16:
		return Value{kind: NumericKind, text: strconv.FormatInt(int64(x), 10), raw: x}
	case int32:
		return Value{kind: NumericKind, text: strconv.FormatInt(int64(x), 10), raw: x}
	case int64:
		return Value{kind: NumericKind, text: strconv.FormatInt(x, 10), raw: x}
	case uint:
		return Value{kind: NumericKind, text: strconv.FormatUint(uint64(x), 10), raw: x}
	case uint8:
		return Value{kind: NumericKind, text: strconv.FormatUint(uint64(x), 10), raw: x}
	case uint16:
		return Value{kind: NumericKind, text: strconv.FormatUint(uint64(x), 10), raw: x}
	case uint32:
		return Value{kind: NumericKind, text: strconv.FormatUint(uint64(x), 10), raw: x}
	case uint64:
		return Value{kind: NumericKind, text: strconv.FormatUint(x, 10), raw: x}
	case float32:
		return Value{kind: NumericKind, text: strconv.FormatFloat(float64(x), 'g', -1, 32), raw: x}
	case float64:
		return Value{kind: NumericKind, text: strconv.FormatFloat(x, 'g', -1, 64), raw: x}
	case *big.Int:
		if x == nil {
			return Null
		}
		return Value{kind: NumericKind, text: x.String(), raw: x}
	case string:
		return Value{kind: TextKind, text: x, raw: x}
	case []byte:
		// BLOB
		if x == nil {
			return Null
		}
		return Value{kind: OtherKind, text: strconv.Quote(string(x)), raw: x}
	case bool:
		return Value{kind: BooleanKind, text: strconv.FormatBool(x), raw: x}
	case time.Time:
		return TimeOf(x, TimestampLayout)
	case decimal:
		// DuckDB DECIMAL
		text := strconv.FormatFloat(x.Float64(), 'f', -1, 64)
		if s, ok := v.(fmt.Stringer); ok {
			text = s.String()
		}
		return Value{kind: NumericKind, text: text, raw: x}
	default:
		return Value{kind: OtherKind, text: debugString(v), raw: v}
	}
}

// TimeOf builds a temporal value rendered with layout.
func TimeOf(t time.Time, layout string) Value {
	if t.Nanosecond() != 0 && strings.HasSuffix(layout, "05") {
		layout += fractionLayout
	}
	return Value{kind: TimestampKind, text: t.Format(layout), raw: t}
}

// decimal matches fixed-point driver types such as duckdb.Decimal.
type decimal interface {
	Float64() float64
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNull() bool {
	return v.kind == NullKind
}

// Raw returns the driver value the Value was built from.
func (v Value) Raw() any {
	return v.raw
}

// String returns the natural text form; Null renders as the empty string.
func (v Value) String() string {
	return v.text
}

// Display returns the text form, substituting nullToken for Null.
func (v Value) Display(nullToken string) string {
	if v.kind == NullKind {
		return nullToken
	}
	return v.text
}

// debugString renders structured values (lists, structs, maps) in a compact
// literal form. Nested scalars use their natural text, strings are quoted.
func debugString(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return "nil"
		}
		return debugString(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = debugElem(rv.Index(i).Interface())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case reflect.Map:
		keys := rv.MapKeys()
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, debugElem(k.Interface())+": "+debugElem(rv.MapIndex(k).Interface()))
		}
		sort.Strings(parts)
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprintf("%#v", v)
	}
}

func debugElem(v any) string {
	val := ValueOf(v)
	switch val.kind {
	case NullKind:
		return "NULL"
	case TextKind:
		return strconv.Quote(val.text)
	default:
		return val.text
	}
}
