// Package scanner is a single-pass character-cursor lexer. Each puzzle
// hand-rolls its own line grammar out of these primitives instead of going
// through a general parser.
package scanner

import "unicode"

// Scanner addresses its source by rune, not by byte, so multi-byte input
// cannot desync the cursor.
type Scanner struct {
	pos   int
	chars []rune
}

func New(source string) *Scanner {
	return &Scanner{chars: []rune(source)}
}

func (s *Scanner) Finished() bool {
	return s.pos >= len(s.chars)
}

// Pos returns the current cursor position, counted in runes.
func (s *Scanner) Pos() int {
	return s.pos
}

func (s *Scanner) Peek() (rune, bool) {
	return s.PeekForward(0)
}

// PeekForward returns the rune n positions past the cursor without
// consuming anything.
func (s *Scanner) PeekForward(n int) (rune, bool) {
	if s.pos+n >= len(s.chars) {
		return 0, false
	}
	return s.chars[s.pos+n], true
}

// PeekLiteral reports whether literal matches the source at the cursor.
// A short remainder is a mismatch, not an error.
func (s *Scanner) PeekLiteral(literal string) bool {
	for i, want := range []rune(literal) {
		c, ok := s.PeekForward(i)
		if !ok || c != want {
			return false
		}
	}
	return true
}

func (s *Scanner) Advance() {
	if !s.Finished() {
		s.pos++
	}
}

// AdvanceBy moves the cursor forward n runes, clamped to the end of the
// source.
func (s *Scanner) AdvanceBy(n int) {
	s.pos = min(s.pos+n, len(s.chars))
}

// MatchChar consumes c if it is at the cursor. A failed match does not
// move the cursor.
func (s *Scanner) MatchChar(c rune) bool {
	if got, ok := s.Peek(); ok && got == c {
		s.pos++
		return true
	}
	return false
}

// MatchLiteral consumes literal if it matches at the cursor. A failed
// match does not move the cursor.
func (s *Scanner) MatchLiteral(literal string) bool {
	if !s.PeekLiteral(literal) {
		return false
	}
	s.AdvanceBy(len([]rune(literal)))
	return true
}

// ReadWhile consumes the maximal prefix satisfying pred and returns it,
// possibly empty.
func (s *Scanner) ReadWhile(pred func(rune) bool) string {
	start := s.pos
	for {
		c, ok := s.Peek()
		if !ok || !pred(c) {
			break
		}
		s.pos++
	}
	return string(s.chars[start:s.pos])
}

func (s *Scanner) ReadWhitespace() string {
	return s.ReadWhile(unicode.IsSpace)
}

func (s *Scanner) ExpectChar(c rune) error {
	if !s.MatchChar(c) {
		return UnexpectedCharError{Expected: c, Pos: s.pos}
	}
	return nil
}

func (s *Scanner) ExpectLiteral(literal string) error {
	if !s.MatchLiteral(literal) {
		return UnexpectedLiteralError{Expected: literal, Pos: s.pos}
	}
	return nil
}

func IsDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// ExpectUint consumes a run of ASCII digits and parses it as T. An empty
// run or a value that does not fit T is a parse failure; the digits stay
// consumed either way, like every other read operation.
func ExpectUint[T Unsigned](s *Scanner) (T, error) {
	start := s.pos
	digits := s.ReadWhile(IsDigit)
	if digits == "" {
		return 0, NotAUintError{Pos: start}
	}
	var (
		value T
		maxT  = ^T(0)
	)
	for _, c := range digits {
		d := T(c - '0')
		if value > (maxT-d)/10 {
			return 0, NotAUintError{Pos: start}
		}
		value = value*10 + d
	}
	return value, nil
}
