package y2023

import (
	"strconv"

	"github.com/vancomm/advent-of-code/internal/scanner"
	"github.com/vancomm/advent-of-code/internal/solve"
)

// Tried in this exact order; first match wins. A match advances the
// cursor by a single character, not the token length, so overlapping
// words ("twone", "oneight") yield every digit they contain.
var digitTokens = []struct {
	literal string
	value   int
}{
	{"zero", 0},
	{"one", 1},
	{"two", 2},
	{"three", 3},
	{"four", 4},
	{"five", 5},
	{"six", 6},
	{"seven", 7},
	{"eight", 8},
	{"nine", 9},
	{"0", 0},
	{"1", 1},
	{"2", 2},
	{"3", 3},
	{"4", 4},
	{"5", 5},
	{"6", 6},
	{"7", 7},
	{"8", 8},
	{"9", 9},
}

type calibrationSum struct {
	words bool
	total int
}

func newCalibrationSum() solve.Solver {
	return &calibrationSum{}
}

func newCalibrationSumWithWords() solve.Solver {
	return &calibrationSum{words: true}
}

func (s *calibrationSum) HandleLine(line string) error {
	s.total += extractNumber(line, s.words)
	return nil
}

func (s *calibrationSum) ExtractSolution() (string, error) {
	return strconv.Itoa(s.total), nil
}

func extractDigits(line string, words bool) []int {
	var digits []int
	if !words {
		for _, c := range line {
			if scanner.IsDigit(c) {
				digits = append(digits, int(c-'0'))
			}
		}
		return digits
	}
	sc := scanner.New(line)
	for !sc.Finished() {
		for _, token := range digitTokens {
			if sc.PeekLiteral(token.literal) {
				digits = append(digits, token.value)
				break
			}
		}
		sc.Advance()
	}
	return digits
}

// A line with no digits contributes 0.
func extractNumber(line string, words bool) int {
	digits := extractDigits(line, words)
	if len(digits) == 0 {
		return 0
	}
	return digits[0]*10 + digits[len(digits)-1]
}
