package envi

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ValueKind identifies the shape of a header value.
type ValueKind uint8

const (
	KindString ValueKind = iota
	KindInt
	KindFloat
	KindTimestamp
	KindTriple
	KindList
)

func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindTimestamp:
		return "timestamp"
	case KindTriple:
		return "decimal triple"
	case KindList:
		return "list"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Triple is a three-component high-precision decimal vector. The Senop
// HSC-2 writes its acceleration and gyroscope readings this way.
type Triple [3]decimal.Decimal

func (t Triple) String() string {
	return formatDecimal(t[0]) + ", " + formatDecimal(t[1]) + ", " + formatDecimal(t[2])
}

// formatDecimal renders a component with its source precision. The
// shopspring String trims trailing zeros, so "0.010" would come back as
// "0.01"; fixing to the stored exponent keeps the written digits.
func formatDecimal(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

// Value is a single header entry: one scalar, or a list of scalars in
// insertion order. The Kind tag selects which field carries the payload.
type Value struct {
	Kind   ValueKind
	Str    string
	Int    int64
	Float  float64
	Time   time.Time
	Triple Triple
	List   []Value
}

func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

func IntValue(n int64) Value { return Value{Kind: KindInt, Int: n} }

func FloatValue(f float64) Value { return Value{Kind: KindFloat, Float: f} }

func TimeValue(t time.Time) Value { return Value{Kind: KindTimestamp, Time: t} }

func TripleValue(t Triple) Value { return Value{Kind: KindTriple, Triple: t} }

func ListValue(elems ...Value) Value { return Value{Kind: KindList, List: elems} }

// String renders the value for display. Serialization to header text goes
// through SerializeHeader, which adds quoting and brace rules on top.
func (v Value) String() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindTimestamp:
		return v.Time.Format(time.RFC3339)
	case KindTriple:
		return v.Triple.String()
	case KindList:
		parts := make([]string, len(v.List))
		for i, e := range v.List {
			parts[i] = e.String()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return ""
	}
}
