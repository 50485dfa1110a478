package dtype

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownFormat is returned for unrecognized data-type codes. The envi
// package reuses it for unrecognized byte-order and interleave values, so
// one sentinel covers every "the header names a format we do not know"
// failure.
var ErrUnknownFormat = errors.New("unknown format")

// Kind identifies one of the element types an ENVI cube can hold.
type Kind uint8

const (
	Uint8 Kind = iota
	Int16
	Int32
	Float32
	Float64
	Complex64
	Uint16
	Uint32
	Int64
	Uint64
)

func (k Kind) String() string {
	switch k {
	case Uint8:
		return "u8"
	case Int16:
		return "i16"
	case Int32:
		return "i32"
	case Float32:
		return "f32"
	case Float64:
		return "f64"
	case Complex64:
		return "c64"
	case Uint16:
		return "u16"
	case Uint32:
		return "u32"
	case Int64:
		return "i64"
	case Uint64:
		return "u64"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Element constrains the Go types a cube can hold, one per registry entry.
type Element interface {
	uint8 | int16 | int32 | float32 | float64 | complex64 | uint16 | uint32 | int64 | uint64
}

// Descriptor ties an ENVI data-type code to its element kind and width.
type Descriptor struct {
	Code int
	Kind Kind
	Size int // bytes per element
}

// registry is the fixed ENVI data-type table. Codes 6 (complex32) and
// 10/11 are defined by some vendors but have no Go counterpart and are
// not part of the supported set.
var registry = []Descriptor{
	{Code: 1, Kind: Uint8, Size: 1},
	{Code: 2, Kind: Int16, Size: 2},
	{Code: 3, Kind: Int32, Size: 4},
	{Code: 4, Kind: Float32, Size: 4},
	{Code: 5, Kind: Float64, Size: 8},
	{Code: 9, Kind: Complex64, Size: 8},
	{Code: 12, Kind: Uint16, Size: 2},
	{Code: 13, Kind: Uint32, Size: 4},
	{Code: 14, Kind: Int64, Size: 8},
	{Code: 15, Kind: Uint64, Size: 8},
}

var (
	byCode = make(map[int]Descriptor, len(registry))
	byKind = make(map[Kind]Descriptor, len(registry))
)

func init() {
	for _, d := range registry {
		byCode[d.Code] = d
		byKind[d.Kind] = d
	}
}

// FromCode resolves an ENVI data-type code.
func FromCode(code int) (Descriptor, error) {
	d, ok := byCode[code]
	if !ok {
		return Descriptor{}, fmt.Errorf("data type %d: %w", code, ErrUnknownFormat)
	}
	return d, nil
}

// FromKind resolves the descriptor for an element kind. It is total over
// the ten kinds the registry defines.
func FromKind(k Kind) Descriptor {
	return byKind[k]
}

// KindOf maps a concrete element type to its registry kind.
func KindOf[T Element]() Kind {
	var z T
	switch any(z).(type) {
	case uint8:
		return Uint8
	case int16:
		return Int16
	case int32:
		return Int32
	case float32:
		return Float32
	case float64:
		return Float64
	case complex64:
		return Complex64
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case int64:
		return Int64
	default:
		return Uint64
	}
}

// ScaleFactor returns the reflectance scale factor recorded when a cube of
// this kind is encoded: 1.0 for floating and complex kinds, the maximum
// representable value for integer kinds. The factor is header metadata
// only; it never changes the byte layout. For 64-bit integer kinds the
// float64 value rounds the exact maximum.
func (d Descriptor) ScaleFactor() float64 {
	switch d.Kind {
	case Uint8:
		return math.MaxUint8
	case Int16:
		return math.MaxInt16
	case Int32:
		return math.MaxInt32
	case Uint16:
		return math.MaxUint16
	case Uint32:
		return math.MaxUint32
	case Int64:
		return math.MaxInt64
	case Uint64:
		return math.MaxUint64
	default: // Float32, Float64, Complex64
		return 1.0
	}
}

// IsInteger reports whether the kind stores integer samples, the cases
// where the scale factor is a divisor rather than 1.0.
func (d Descriptor) IsInteger() bool {
	switch d.Kind {
	case Float32, Float64, Complex64:
		return false
	default:
		return true
	}
}
