package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/advent-of-code/internal/scanner"
)

func TestPeekForward(t *testing.T) {
	s := scanner.New("bar")

	for i, want := range "bar" {
		c, ok := s.PeekForward(i)
		assert.True(t, ok)
		assert.Equal(t, want, c)
	}
	_, ok := s.PeekForward(3)
	assert.False(t, ok)
}

func TestPeekLiteral(t *testing.T) {
	s := scanner.New("Something in the way")

	assert.False(t, s.PeekLiteral("Nothing"))
	assert.True(t, s.PeekLiteral("Something"))

	s.AdvanceBy(len("Something"))

	assert.False(t, s.PeekLiteral("in the way"))
	assert.True(t, s.PeekLiteral(" in the way"))
}

func TestPeekLiteralPrefixes(t *testing.T) {
	source := "seeds: 79 14"
	for end := 0; end <= len(source); end++ {
		prefix := source[:end]
		s := scanner.New(source)
		assert.True(t, s.PeekLiteral(prefix))
		assert.True(t, s.MatchLiteral(prefix))
		assert.Equal(t, len(prefix), s.Pos())
	}
}

func TestAdvanceClampsAtEnd(t *testing.T) {
	s := scanner.New("ab")
	s.AdvanceBy(10)
	assert.True(t, s.Finished())
	assert.Equal(t, 2, s.Pos())

	s.Advance() // no-op at end
	assert.Equal(t, 2, s.Pos())
}

func TestMatchChar(t *testing.T) {
	s := scanner.New("a1")

	assert.False(t, s.MatchChar('b'))
	assert.Equal(t, 0, s.Pos())
	assert.True(t, s.MatchChar('a'))
	assert.Equal(t, 1, s.Pos())
}

func TestMatchLiteralDoesNotConsumeOnFailure(t *testing.T) {
	s := scanner.New("Game 1")

	assert.False(t, s.MatchLiteral("Card"))
	assert.Equal(t, 0, s.Pos())
	assert.True(t, s.MatchLiteral("Game "))
	assert.Equal(t, 5, s.Pos())
}

func TestReadWhile(t *testing.T) {
	s := scanner.New("123abc")

	assert.Equal(t, "123", s.ReadWhile(scanner.IsDigit))
	assert.Equal(t, "", s.ReadWhile(scanner.IsDigit))
	assert.Equal(t, 3, s.Pos())
}

func TestReadWhitespace(t *testing.T) {
	s := scanner.New("  \t41")

	assert.Equal(t, "  \t", s.ReadWhitespace())
	assert.Equal(t, 3, s.Pos())
}

func TestExpectChar(t *testing.T) {
	s := scanner.New(":x")

	require.NoError(t, s.ExpectChar(':'))

	err := s.ExpectChar(':')
	var charErr scanner.UnexpectedCharError
	require.ErrorAs(t, err, &charErr)
	assert.Equal(t, ':', charErr.Expected)
	assert.Equal(t, 1, charErr.Pos)
}

func TestExpectLiteral(t *testing.T) {
	s := scanner.New("Card 1")

	err := s.ExpectLiteral("Game")
	var litErr scanner.UnexpectedLiteralError
	require.ErrorAs(t, err, &litErr)
	assert.Equal(t, "Game", litErr.Expected)
	assert.Equal(t, 0, s.Pos())

	require.NoError(t, s.ExpectLiteral("Card"))
	assert.Equal(t, 4, s.Pos())
}

func TestExpectUint(t *testing.T) {
	s := scanner.New("20 January")

	n, err := scanner.ExpectUint[uint](s)
	require.NoError(t, err)
	assert.Equal(t, uint(20), n)
	assert.Equal(t, 2, s.Pos())
}

func TestExpectUintFailures(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"empty", ""},
		{"not a digit", "abc"},
		{"overflows uint8", "256"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := scanner.New(test.source)
			_, err := scanner.ExpectUint[uint8](s)
			var uintErr scanner.NotAUintError
			require.ErrorAs(t, err, &uintErr)
			assert.Equal(t, 0, uintErr.Pos)
		})
	}
}

func TestExpectUintMaxValueFits(t *testing.T) {
	s := scanner.New("255")
	n, err := scanner.ExpectUint[uint8](s)
	require.NoError(t, err)
	assert.Equal(t, uint8(255), n)
}

func TestMultiByteSource(t *testing.T) {
	s := scanner.New("héllo")

	assert.True(t, s.PeekLiteral("héllo"))
	s.Advance()
	c, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, 'é', c)
	assert.True(t, s.MatchChar('é'))
	assert.Equal(t, 2, s.Pos())
}
