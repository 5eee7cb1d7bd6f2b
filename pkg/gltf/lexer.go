package gltf

import "github.com/chewxy/math32"

// cursor is a position inside the whole document. All lexical primitives
// advance it as a side effect; only copyQuotedValue and parseIntArray
// allocate, and they take their memory from the arena passed in.
type cursor struct {
	src []byte
	pos int
}

func (c *cursor) eof() bool { return c.pos >= len(c.src) }

// peek returns the current byte, or 0 at end of input.
func (c *cursor) peek() byte {
	if c.pos >= len(c.src) {
		return 0
	}
	return c.src[c.pos]
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isLower(b byte) bool { return b >= 'a' && b <= 'z' }

func isSpace(b byte) bool { return b <= ' ' }

// skipUntil advances until the cursor sits on ch or at end of input.
func (c *cursor) skipUntil(ch byte) {
	for c.pos < len(c.src) && c.src[c.pos] != ch {
		c.pos++
	}
}

// skipAfter advances one past the next ch, or to end of input.
func (c *cursor) skipAfter(ch byte) {
	c.skipUntil(ch)
	if c.pos < len(c.src) {
		c.pos++
	}
}

// skipBalanced advances past the next open bracket, then past its
// matching close bracket, tracking nesting. Used to ignore whole
// subtrees such as asset metadata and extensions.
func (c *cursor) skipBalanced(open, close byte) {
	c.skipAfter(open)
	balance := 1
	for c.pos < len(c.src) && balance > 0 {
		switch c.src[c.pos] {
		case open:
			balance++
		case close:
			balance--
		}
		c.pos++
	}
}

// parseInt reads the next signed decimal integer, skipping anything
// before the first digit or minus sign. An empty digit run yields 0.
func (c *cursor) parseInt() int32 {
	for c.pos < len(c.src) && c.src[c.pos] != '-' && !isDigit(c.src[c.pos]) {
		c.pos++
	}
	negative := false
	if c.pos < len(c.src) && c.src[c.pos] == '-' {
		negative = true
		c.pos++
	}
	var val int32
	for c.pos < len(c.src) && isDigit(c.src[c.pos]) {
		val = val*10 + int32(c.src[c.pos]-'0')
		c.pos++
	}
	if negative {
		return -val
	}
	return val
}

// parsePositiveInt reads the next unsigned decimal integer.
func (c *cursor) parsePositiveInt() int32 {
	for c.pos < len(c.src) && !isDigit(c.src[c.pos]) {
		c.pos++
	}
	var val int32
	for c.pos < len(c.src) && isDigit(c.src[c.pos]) {
		val = val*10 + int32(c.src[c.pos]-'0')
		c.pos++
	}
	return val
}

const maxPower = 20

var pow10Pos = [maxPower]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
}

var pow10Neg = [maxPower]float64{
	1e0, 1e-1, 1e-2, 1e-3, 1e-4, 1e-5, 1e-6, 1e-7, 1e-8, 1e-9,
	1e-10, 1e-11, 1e-12, 1e-13, 1e-14, 1e-15, 1e-16, 1e-17, 1e-18, 1e-19,
}

// parseFloat reads the next decimal float: sign, integer part, up to nine
// fractional digits (the divisor stops at 1e9), and an optional decimal exponent resolved against a
// fixed power-of-ten table. Exponents of 20 or more collapse to zero.
func (c *cursor) parseFloat() float32 {
	for c.pos < len(c.src) && c.src[c.pos] != '-' && !isDigit(c.src[c.pos]) {
		c.pos++
	}
	sign := 1.0
	if c.pos < len(c.src) && c.src[c.pos] == '-' {
		sign = -1.0
		c.pos++
	}

	var num float64
	for c.pos < len(c.src) && isDigit(c.src[c.pos]) {
		num = num*10.0 + float64(c.src[c.pos]-'0')
		c.pos++
	}

	if c.pos < len(c.src) && c.src[c.pos] == '.' {
		c.pos++
	}

	fra, div := 0.0, 1.0
	for c.pos < len(c.src) && isDigit(c.src[c.pos]) && div < 1e9 {
		fra = fra*10.0 + float64(c.src[c.pos]-'0')
		div *= 10.0
		c.pos++
	}
	num += fra / div

	// digits beyond the fractional cap carry no weight
	for c.pos < len(c.src) && isDigit(c.src[c.pos]) {
		c.pos++
	}

	if c.pos < len(c.src) && (c.src[c.pos] == 'e' || c.src[c.pos] == 'E') {
		c.pos++
		powers := &pow10Pos
		if c.pos < len(c.src) {
			switch c.src[c.pos] {
			case '+':
				c.pos++
			case '-':
				powers = &pow10Neg
				c.pos++
			}
		}
		exp := 0
		for c.pos < len(c.src) && isDigit(c.src[c.pos]) {
			exp = exp*10 + int(c.src[c.pos]-'0')
			c.pos++
		}
		if exp >= maxPower {
			num = 0
		} else {
			num *= powers[exp]
		}
	}

	return float32(sign * num)
}

// parseFixed16 reads a float and stores it as a fixed-point short equal
// to round(value * 400).
func (c *cursor) parseFixed16() int16 {
	return int16(math32.Round(c.parseFloat() * 400.0))
}

// keyIs reports whether the document at the cursor begins with key. The
// comparison window is capped at 15 bytes, matching the dispatch scheme;
// literals longer than that are passed pre-truncated by callers.
func (c *cursor) keyIs(key string) bool {
	if len(key) > 15 {
		key = key[:15]
	}
	if c.pos+len(key) > len(c.src) {
		return false
	}
	return string(c.src[c.pos:c.pos+len(key)]) == key
}

// startsWith skips whitespace and tests for the literal, consuming it on
// a match and restoring the cursor on a mismatch.
func (c *cursor) startsWith(lit string) bool {
	start := c.pos
	for c.pos < len(c.src) && isSpace(c.src[c.pos]) {
		c.pos++
	}
	for i := 0; i < len(lit); i++ {
		if c.pos >= len(c.src) || c.src[c.pos] != lit[i] {
			c.pos = start
			return false
		}
		c.pos++
	}
	return true
}

// nextQuoted skips to the next double quote and returns a view of the
// string it opens, leaving the cursor one past the closing quote.
func (c *cursor) nextQuoted() []byte {
	c.skipAfter('"')
	start := c.pos
	c.skipUntil('"')
	b := c.src[start:c.pos]
	if c.pos < len(c.src) {
		c.pos++
	}
	return b
}

// copyQuotedValue is used with the cursor inside a key name: it skips the
// key's closing quote, then interns the next quoted string.
func (c *cursor) copyQuotedValue(a *StringArena) string {
	c.skipAfter('"')
	return a.Intern(c.nextQuoted())
}

// skipQuotedValue skips the key's closing quote and the quoted value
// that follows.
func (c *cursor) skipQuotedValue() {
	c.skipAfter('"')
	c.skipAfter('"')
	c.skipAfter('"')
}

// hashQuoted packs up to eight bytes of the quoted string at the cursor
// into a little-endian word for dispatch against hash8 of known keys.
// The cursor must sit on the opening quote; it is left one past the
// closing quote, or one past the eighth byte for longer strings.
func (c *cursor) hashQuoted() uint64 {
	c.pos++ // opening quote
	var h uint64
	var shift uint
	for c.pos < len(c.src) && c.src[c.pos] != '"' && shift < 64 {
		h |= uint64(c.src[c.pos]) << shift
		shift += 8
		c.pos++
	}
	if c.pos < len(c.src) && c.src[c.pos] == '"' {
		c.pos++
	}
	return h
}

// hash8 packs a short literal the same way hashQuoted does.
func hash8(s string) uint64 {
	var h uint64
	var shift uint
	for i := 0; i < len(s) && shift < 64; i++ {
		h |= uint64(s[i]) << shift
		shift += 8
	}
	return h
}
