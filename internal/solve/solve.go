// Package solve defines the contract every puzzle solver satisfies and
// the validated year/day/part selectors used to pick one.
package solve

import (
	"fmt"
	"strconv"
)

// Solver is a stateful accumulator. HandleLine is called once per input
// line in file order; the first error aborts the whole run. Both the
// core algorithms and parsing live behind this interface.
type Solver interface {
	HandleLine(line string) error
	ExtractSolution() (string, error)
}

type OutOfRangeError struct {
	Value    uint16
	Min, Max uint16
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("value %d is not within the range [%d, %d]",
		e.Value, e.Min, e.Max)
}

type Year uint16

func ParseYear(s string) (Year, error) {
	v, err := parseInRange(s, 2023, 2023)
	return Year(v), err
}

func (y Year) String() string {
	return fmt.Sprintf("%04d", uint16(y))
}

type Day uint16

func ParseDay(s string) (Day, error) {
	v, err := parseInRange(s, 1, 25)
	return Day(v), err
}

func (d Day) String() string {
	return fmt.Sprintf("%02d", uint16(d))
}

type Part uint16

func ParsePart(s string) (Part, error) {
	v, err := parseInRange(s, 1, 2)
	return Part(v), err
}

func (p Part) String() string {
	return fmt.Sprintf("%02d", uint16(p))
}

func parseInRange(s string, min, max uint16) (uint16, error) {
	v64, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("bad numeric argument: %w", err)
	}
	v := uint16(v64)
	if v < min || v > max {
		return 0, OutOfRangeError{Value: v, Min: min, Max: max}
	}
	return v, nil
}
