package ctjson

// Slice is a borrowed half-open byte range [First, Last) into the input
// buffer a ParseState was constructed over. Slices never outlive the input;
// callers must not retain a Slice past the lifetime of the buffer it
// indexes into.
type Slice struct {
	First, Last int
}

// Missing reports whether the slice was never populated (the locations
// table entry for a member that was not found in the JSON text).
func (s Slice) Missing() bool {
	return s.First == 0 && s.Last == 0
}

// Empty reports whether the slice covers zero bytes.
func (s Slice) Empty() bool {
	return s.First >= s.Last
}

// Bytes returns the slice's content out of buf.
func (s Slice) Bytes(buf []byte) []byte {
	if s.Missing() {
		return nil
	}
	return buf[s.First:s.Last]
}

const asciiSpace = 0x20

// ParseState is a byte-range cursor over an input document. It tracks the
// current scan position, the bounds of the enclosing JSON object or array
// (used for error context and for re-entrant sibling scans), and a small
// counter slot arrays use to cache element counts. A from_json call
// creates one top-level ParseState, plus a child state (see childState)
// for each nested value it re-parses; each is threaded by pointer through
// the class parser, value parsers and skipper and is never shared across
// goroutines.
type ParseState struct {
	buf  []byte
	pos  int
	last int // exclusive upper bound of the whole document

	classFirst, classLast int
	counter               int

	opts Options
}

// NewParseState constructs a cursor over buf positioned at offset 0.
func NewParseState(buf []byte, opts Options) *ParseState {
	return &ParseState{
		buf:        buf,
		pos:        0,
		last:       len(buf),
		classFirst: 0,
		classLast:  len(buf),
		opts:       opts,
	}
}

// Pos returns the current cursor offset, for error reporting.
func (ps *ParseState) Pos() int { return ps.pos }

// Empty reports whether the cursor has reached the end of the document.
func (ps *ParseState) Empty() bool { return ps.pos >= ps.last }

// HasMore is the negation of Empty.
func (ps *ParseState) HasMore() bool { return ps.pos < ps.last }

// Front returns the byte at the cursor, or 0 if the cursor is at or past
// the end of the document. In checked mode this is the only way to read
// past-the-end safely; unchecked mode callers are expected to rely on the
// same zero-byte behavior rather than a true out-of-bounds read, since Go
// slices cannot carry an unchecked sentinel the way the source's raw
// pointers can.
func (ps *ParseState) Front() byte {
	if ps.pos >= ps.last {
		return 0
	}
	return ps.buf[ps.pos]
}

// RemovePrefix advances the cursor by n bytes.
func (ps *ParseState) RemovePrefix(n int) {
	ps.pos += n
}

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return b <= asciiSpace && b != 0
	}
}

// TrimLeft skips ASCII whitespace (any byte <= 0x20 except NUL) at the
// cursor.
func (ps *ParseState) TrimLeft() {
	for ps.pos < ps.last && isWhitespace(ps.buf[ps.pos]) {
		ps.pos++
	}
}

// MoveToNextOf advances the cursor to the next occurrence of c (which is
// left under the cursor, not consumed).
func (ps *ParseState) MoveToNextOf(c byte) {
	for ps.pos < ps.last && ps.buf[ps.pos] != c {
		ps.pos++
	}
}

// MoveToNextOfSet advances the cursor to the next byte that is a member of
// set.
func (ps *ParseState) MoveToNextOfSet(set string) {
	for ps.pos < ps.last && indexByte(set, ps.buf[ps.pos]) < 0 {
		ps.pos++
	}
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

// AtLiteralEnd reports whether the cursor is at a byte that terminates a
// bare (unquoted) literal: end of input, ',', ']' or '}'.
func (ps *ParseState) AtLiteralEnd() bool {
	if ps.Empty() {
		return true
	}
	switch ps.buf[ps.pos] {
	case ',', ']', '}':
		return true
	default:
		return false
	}
}

// IsNumber reports whether the cursor is positioned at an ASCII digit.
func (ps *ParseState) IsNumber() bool {
	b := ps.Front()
	return b >= '0' && b <= '9'
}

// CleanTail trims whitespace, consumes one optional ',', then trims again.
// Trailing commas inside {} or [] are rejected in checked mode (a comma
// immediately followed by ']' is InvalidArray, by '}' InvalidClass) and
// silently tolerated in unchecked mode.
func (ps *ParseState) CleanTail() error {
	ps.TrimLeft()
	if ps.Front() == ',' {
		comma := ps.pos
		ps.RemovePrefix(1)
		ps.TrimLeft()
		if ps.opts.Checked {
			switch ps.Front() {
			case ']':
				return newError(InvalidArray, comma, "trailing comma before ']'")
			case '}':
				return newError(InvalidClass, comma, "trailing comma before '}'")
			}
		}
	}
	return nil
}

// enterClass records new class bounds and returns the previous ones, so
// the caller can restore them when the nested class parse returns.
func (ps *ParseState) enterClass(first, last int) (prevFirst, prevLast int) {
	prevFirst, prevLast = ps.classFirst, ps.classLast
	ps.classFirst, ps.classLast = first, last
	return
}

func (ps *ParseState) restoreClass(first, last int) {
	ps.classFirst, ps.classLast = first, last
}
