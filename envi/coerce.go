package envi

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// coercion is the target type for a known header field.
type coercion uint8

const (
	coerceInt coercion = iota
	coerceFloat
	coerceTime
	coerceTriple
)

// fieldTypes is the static coercion table, applied after raw parsing.
// Fields not listed here stay raw strings or string lists: unknown vendor
// metadata must round-trip unmodified.
var fieldTypes = map[string]coercion{
	"acquisition time": coerceTime,
	"bands":            coerceInt,
	"byte order":       coerceInt,
	"data gain values": coerceFloat,
	"data type":        coerceInt,
	"fwhm":             coerceFloat,
	"lines":            coerceInt,
	"samples":          coerceInt,
	"wavelength":       coerceFloat,

	// Senop HSC-2 vendor extensions
	"senop acquisition mode": coerceInt,
	"senop frame counter":    coerceInt,
	"senop integration time": coerceFloat,
	"senop order":            coerceInt,
	"senop sequence order":   coerceInt,
	"senop timestamp":        coerceInt,
	"senop acceleration":     coerceTriple,
	"senop gyroscope":        coerceTriple,
}

// coerce applies the field type table in place, element-wise over lists.
func coerce(h *Header) error {
	for _, key := range h.Keys() {
		target, ok := fieldTypes[key]
		if !ok {
			continue
		}
		v, _ := h.Get(key)
		cv, err := coerceValue(key, v, target)
		if err != nil {
			return err
		}
		h.Set(key, cv)
	}
	return nil
}

func coerceValue(key string, v Value, target coercion) (Value, error) {
	if v.Kind != KindList {
		return coerceScalar(key, v, target)
	}
	out := make([]Value, len(v.List))
	for i, e := range v.List {
		ce, err := coerceScalar(key, e, target)
		if err != nil {
			return Value{}, err
		}
		out[i] = ce
	}
	return ListValue(out...), nil
}

func coerceScalar(key string, v Value, target coercion) (Value, error) {
	if v.Kind != KindString {
		// Already typed: caller-assembled headers pass through.
		return v, nil
	}
	raw := strings.TrimSpace(v.Str)

	switch target {
	case coerceInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("field %q: %q is not an integer: %w", key, raw, ErrParse)
		}
		return IntValue(n), nil

	case coerceFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, fmt.Errorf("field %q: %q is not a float: %w", key, raw, ErrParse)
		}
		return FloatValue(f), nil

	case coerceTime:
		t, err := parseTimestamp(raw)
		if err != nil {
			return Value{}, fmt.Errorf("field %q: %w", key, err)
		}
		return TimeValue(t), nil

	case coerceTriple:
		parts := strings.Split(raw, ",")
		if len(parts) != 3 {
			return Value{}, fmt.Errorf("field %q: expected three components, got %d: %w", key, len(parts), ErrParse)
		}
		var tr Triple
		for i, p := range parts {
			d, err := decimal.NewFromString(strings.TrimSpace(p))
			if err != nil {
				return Value{}, fmt.Errorf("field %q: %q is not a decimal: %w", key, p, ErrParse)
			}
			tr[i] = d
		}
		return TripleValue(tr), nil
	}
	return v, nil
}

// timestampLayouts covers the ISO 8601 shapes ENVI producers emit for
// "acquisition time".
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimestamp(raw string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q: %w", raw, ErrParse)
}
