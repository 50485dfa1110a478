package envi

// cursor is a bounds-checked scanner over header text. The grammar is
// byte-oriented ASCII; multi-byte UTF-8 only occurs inside values, where
// it passes through untouched.
type cursor struct {
	src []byte
	pos int
}

func (c *cursor) done() bool {
	return c.pos >= len(c.src)
}

// peek returns the current byte without advancing. ok is false at the end
// of input.
func (c *cursor) peek() (byte, bool) {
	if c.done() {
		return 0, false
	}
	return c.src[c.pos], true
}

// expect consumes the current byte if it equals b.
func (c *cursor) expect(b byte) bool {
	if v, ok := c.peek(); ok && v == b {
		c.pos++
		return true
	}
	return false
}

// skipBlanks advances past spaces and tabs.
func (c *cursor) skipBlanks() {
	for c.pos < len(c.src) && (c.src[c.pos] == ' ' || c.src[c.pos] == '\t') {
		c.pos++
	}
}

// takeUntil returns the bytes before the next occurrence of b, leaving
// the cursor on b itself. ok is false when b never occurs.
func (c *cursor) takeUntil(b byte) ([]byte, bool) {
	for i := c.pos; i < len(c.src); i++ {
		if c.src[i] == b {
			out := c.src[c.pos:i]
			c.pos = i
			return out, true
		}
	}
	return nil, false
}
