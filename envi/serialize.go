package envi

import (
	"fmt"
	"strings"
)

// SerializeHeader renders a header back into ENVI header text: the magic
// line followed by one "name = value" line per field in insertion order.
//
// Integers and floats use their default numeric formatting, strings
// containing blanks are double-quoted, timestamps render as RFC 3339, and
// decimal triples as comma-joined components. Lists render as
// "{v1, v2, ...}" and must be homogeneous, all string or all numeric; a
// mixed or unrenderable value fails with ErrUnsupportedValue instead of
// being stringified.
func SerializeHeader(h *Header) ([]byte, error) {
	var b strings.Builder
	b.WriteString(magic)
	for _, key := range h.Keys() {
		v, _ := h.Get(key)
		text, err := renderValue(key, v)
		if err != nil {
			return nil, err
		}
		b.WriteString(key)
		b.WriteString(" = ")
		b.WriteString(text)
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}

func renderValue(key string, v Value) (string, error) {
	switch v.Kind {
	case KindString:
		if strings.ContainsAny(v.Str, " \t") {
			return `"` + v.Str + `"`, nil
		}
		return v.Str, nil
	case KindInt, KindFloat, KindTimestamp, KindTriple:
		return v.String(), nil
	case KindList:
		return renderList(key, v.List)
	default:
		return "", fmt.Errorf("field %q: cannot render %s: %w", key, v.Kind, ErrUnsupportedValue)
	}
}

func renderList(key string, elems []Value) (string, error) {
	allString, allNumeric := true, true
	for _, e := range elems {
		switch e.Kind {
		case KindString:
			allNumeric = false
		case KindInt, KindFloat:
			allString = false
		default:
			return "", fmt.Errorf("field %q: %s not allowed in a list: %w", key, e.Kind, ErrUnsupportedValue)
		}
	}
	if !allString && !allNumeric {
		return "", fmt.Errorf("field %q: mixed element kinds in list: %w", key, ErrUnsupportedValue)
	}

	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = e.String()
	}
	return "{" + strings.Join(parts, ", ") + "}", nil
}
