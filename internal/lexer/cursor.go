package lexer

import "unicode/utf8"

// eofRune is what Peek returns when no input remains. NUL satisfies none of
// the classification predicates, so scan loops can treat it as an ordinary
// non-matching character instead of branching on emptiness everywhere.
const eofRune = '\x00'

// Cursor walks an input string one codepoint at a time, forward only. It
// borrows the input: the string is never copied, and the caller must not
// mutate the backing data while the cursor is alive.
type Cursor struct {
	input string
	off   int  // byte offset of the next codepoint
	prev  rune // last consumed codepoint
	read  int  // codepoints consumed since construction
	mark  int  // value of read at the last length reset
}

func NewCursor(input string) *Cursor {
	return &Cursor{
		input: input,
		prev:  eofRune,
	}
}

// IsEmpty reports whether any codepoints remain. Prefer this over calling
// Advance and checking its second return: that would consume input as a side
// effect of what should be a query.
func (c *Cursor) IsEmpty() bool {
	return c.off >= len(c.input)
}

// Prev returns the last consumed codepoint, or eofRune before the first
// Advance. Useful for diagnostics.
func (c *Cursor) Prev() rune {
	return c.prev
}

// Peek returns the next codepoint without consuming it. At end of input it
// returns eofRune rather than signaling absence, so classification
// predicates can take it as a plain non-matching value. Peek never moves
// the cursor.
func (c *Cursor) Peek() rune {
	if c.IsEmpty() {
		return eofRune
	}

	r, _ := utf8.DecodeRuneInString(c.input[c.off:])
	return r
}

// Advance consumes and returns the next codepoint, recording it as the last
// consumed one. Unlike Peek it signals absence explicitly: the second return
// is false once the input is exhausted, which callers need for unambiguous
// loop termination.
func (c *Cursor) Advance() (rune, bool) {
	if c.IsEmpty() {
		return eofRune, false
	}

	r, size := utf8.DecodeRuneInString(c.input[c.off:])
	c.off += size
	c.prev = r
	c.read++

	return r, true
}

// AdvanceWhile consumes codepoints while condition holds on the peeked
// codepoint and the cursor is not empty. The emptiness check is the
// authoritative terminator: a condition that happens to accept eofRune must
// not spin forever on it. The condition is an arbitrary closure and may
// carry mutable state.
func (c *Cursor) AdvanceWhile(condition func(rune) bool) {
	for condition(c.Peek()) && !c.IsEmpty() {
		c.Advance()
	}
}

// LenConsumed returns the number of codepoints consumed since the last
// resetLenConsumed. Codepoints, not bytes.
func (c *Cursor) LenConsumed() int {
	return c.read - c.mark
}

// resetLenConsumed makes the current position the baseline for LenConsumed.
// Only the token-producing driver calls this, once before each scan; keeping
// it package-internal means no consumer can forget it.
func (c *Cursor) resetLenConsumed() {
	c.mark = c.read
}
