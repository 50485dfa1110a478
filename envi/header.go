package envi

import (
	"fmt"
	"strings"
)

// Header is an ordered mapping from lowercase field names to values.
// Insertion order is preserved and meaningful: the serializer emits
// entries in this order, and list fields such as wavelength are parallel
// to the band axis.
//
// A Header is either produced by ParseHeader or assembled by the caller
// before encoding. It is not safe for concurrent mutation.
type Header struct {
	keys []string
	vals map[string]Value
}

// NewHeader returns an empty header.
func NewHeader() *Header {
	return &Header{vals: make(map[string]Value)}
}

// Set stores a value under the given field name. Names are folded to
// lowercase. Setting an existing field overwrites its value but keeps the
// field's original position.
func (h *Header) Set(name string, v Value) {
	name = strings.ToLower(name)
	if _, ok := h.vals[name]; !ok {
		h.keys = append(h.keys, name)
	}
	h.vals[name] = v
}

// Get looks up a field by name, case-insensitively.
func (h *Header) Get(name string) (Value, bool) {
	v, ok := h.vals[strings.ToLower(name)]
	return v, ok
}

// Has reports whether the field is present.
func (h *Header) Has(name string) bool {
	_, ok := h.vals[strings.ToLower(name)]
	return ok
}

// Len returns the number of fields.
func (h *Header) Len() int {
	return len(h.keys)
}

// Keys returns the field names in insertion order.
func (h *Header) Keys() []string {
	return append([]string(nil), h.keys...)
}

// Clone returns an independent copy of the header.
func (h *Header) Clone() *Header {
	out := &Header{
		keys: append([]string(nil), h.keys...),
		vals: make(map[string]Value, len(h.vals)),
	}
	for k, v := range h.vals {
		if v.Kind == KindList {
			v.List = append([]Value(nil), v.List...)
		}
		out.vals[k] = v
	}
	return out
}

// Int returns an integer-typed field.
func (h *Header) Int(name string) (int, error) {
	v, ok := h.Get(name)
	if !ok {
		return 0, fmt.Errorf("header field %q not present", name)
	}
	if v.Kind != KindInt {
		return 0, fmt.Errorf("header field %q is %s, not int", name, v.Kind)
	}
	return int(v.Int), nil
}

// Float returns a numeric field widened to float64.
func (h *Header) Float(name string) (float64, error) {
	v, ok := h.Get(name)
	if !ok {
		return 0, fmt.Errorf("header field %q not present", name)
	}
	switch v.Kind {
	case KindFloat:
		return v.Float, nil
	case KindInt:
		return float64(v.Int), nil
	default:
		return 0, fmt.Errorf("header field %q is %s, not numeric", name, v.Kind)
	}
}

// Str returns a string-typed field.
func (h *Header) Str(name string) (string, error) {
	v, ok := h.Get(name)
	if !ok {
		return "", fmt.Errorf("header field %q not present", name)
	}
	if v.Kind != KindString {
		return "", fmt.Errorf("header field %q is %s, not string", name, v.Kind)
	}
	return v.Str, nil
}

// Floats returns a numeric field as a slice, accepting both a single
// scalar and a list. Integer elements widen to float64.
func (h *Header) Floats(name string) ([]float64, error) {
	v, ok := h.Get(name)
	if !ok {
		return nil, fmt.Errorf("header field %q not present", name)
	}
	elems := v.List
	if v.Kind != KindList {
		elems = []Value{v}
	}
	out := make([]float64, len(elems))
	for i, e := range elems {
		switch e.Kind {
		case KindFloat:
			out[i] = e.Float
		case KindInt:
			out[i] = float64(e.Int)
		default:
			return nil, fmt.Errorf("header field %q element %d is %s, not numeric", name, i, e.Kind)
		}
	}
	return out, nil
}
