package scanner

import "fmt"

type UnexpectedCharError struct {
	Expected rune
	Pos      int
}

func (e UnexpectedCharError) Error() string {
	return fmt.Sprintf("expected %q at position %d", e.Expected, e.Pos)
}

type UnexpectedLiteralError struct {
	Expected string
	Pos      int
}

func (e UnexpectedLiteralError) Error() string {
	return fmt.Sprintf("expected %q at position %d", e.Expected, e.Pos)
}

type NotAUintError struct {
	Pos int
}

func (e NotAUintError) Error() string {
	return fmt.Sprintf("not an unsigned integer at position %d", e.Pos)
}
