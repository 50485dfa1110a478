package envi

import (
	"bytes"
	"fmt"
	"strings"
)

// magic is the mandatory first line of an ENVI header.
const magic = "ENVI\n"

// ParseHeader parses ENVI header text into a typed, ordered header.
//
// CRLF line ends are normalized to LF first, and a final newline is
// appended when absent (the Specim IQ writes headers without one). The
// text must begin with the literal line "ENVI"; the rest is a sequence of
// "name = value" entries where a value is either the remainder of the
// line or a brace-delimited, comma-separated list. Field names are folded
// to lowercase, duplicates resolve to the last occurrence, and the static
// coercion table turns known fields into typed values; fields outside the
// table keep their raw string form so unknown vendor metadata round-trips
// unmodified.
func ParseHeader(text []byte) (*Header, error) {
	src := bytes.ReplaceAll(text, []byte("\r\n"), []byte("\n"))
	if len(src) == 0 || src[len(src)-1] != '\n' {
		src = append(src, '\n')
	}
	if !bytes.HasPrefix(src, []byte(magic)) {
		return nil, fmt.Errorf("missing ENVI magic line: %w", ErrParse)
	}

	c := &cursor{src: src, pos: len(magic)}
	h := NewHeader()
	for !c.done() {
		name, err := parseIdentifier(c)
		if err != nil {
			return nil, err
		}
		if err := parseAssignment(c); err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		v, err := parseValue(c)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		h.Set(name, v)
	}

	if err := coerce(h); err != nil {
		return nil, err
	}
	return h, nil
}

// identifier: every character before the next "=", surrounding blanks
// trimmed.
func parseIdentifier(c *cursor) (string, error) {
	raw, ok := c.takeUntil('=')
	if !ok {
		return "", fmt.Errorf("expected \"=\": %w", ErrParse)
	}
	return strings.TrimSpace(string(raw)), nil
}

// assignment: optional blanks, "=", optional blanks.
func parseAssignment(c *cursor) error {
	c.skipBlanks()
	if !c.expect('=') {
		return fmt.Errorf("expected \"=\": %w", ErrParse)
	}
	c.skipBlanks()
	return nil
}

// value: either the remainder of the line, or a brace-delimited list.
func parseValue(c *cursor) (Value, error) {
	if b, ok := c.peek(); ok && b == '{' {
		return parseList(c)
	}
	raw, ok := c.takeUntil('\n')
	if !ok {
		return Value{}, fmt.Errorf("unterminated value: %w", ErrParse)
	}
	c.pos++ // newline
	return StringValue(string(raw)), nil
}

// parseList consumes "{ v1, v2, ... }". Elements may span lines; the
// closing brace must be followed immediately by a newline.
func parseList(c *cursor) (Value, error) {
	c.pos++ // opening brace
	elems := []Value{}
	for {
		b, ok := c.peek()
		if !ok {
			return Value{}, fmt.Errorf("unterminated list: %w", ErrParse)
		}
		if b == '}' {
			break
		}
		elem, err := parseListElement(c)
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, StringValue(elem))
		if b, ok := c.peek(); ok && b == ',' {
			c.pos++
		}
	}
	c.pos++ // closing brace
	if !c.expect('\n') {
		return Value{}, fmt.Errorf("expected \"}\" at end of line: %w", ErrParse)
	}
	return ListValue(elems...), nil
}

// parseListElement consumes one list element up to the next comma or
// closing brace. A double-quoted run suppresses comma and brace handling
// until the matching quote; a wholly quoted element loses its quotes.
func parseListElement(c *cursor) (string, error) {
	start := c.pos
	for {
		b, ok := c.peek()
		if !ok {
			return "", fmt.Errorf("unterminated list: %w", ErrParse)
		}
		if b == ',' || b == '}' {
			break
		}
		if b == '"' {
			c.pos++
			if _, ok := c.takeUntil('"'); !ok {
				return "", fmt.Errorf("unterminated quote in list: %w", ErrParse)
			}
			c.pos++ // closing quote
			continue
		}
		c.pos++
	}
	elem := strings.TrimSpace(string(c.src[start:c.pos]))
	if len(elem) >= 2 && elem[0] == '"' && elem[len(elem)-1] == '"' {
		elem = elem[1 : len(elem)-1]
	}
	return elem, nil
}
