package y2023

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gammazero/deque"
	"github.com/vancomm/advent-of-code/internal/solve"
)

type extrapolationEnd int

const (
	backOfSequence extrapolationEnd = iota
	frontOfSequence
)

type extrapolationSum struct {
	end   extrapolationEnd
	total int
}

func newForwardExtrapolation() solve.Solver {
	return &extrapolationSum{end: backOfSequence}
}

func newBackwardExtrapolation() solve.Solver {
	return &extrapolationSum{end: frontOfSequence}
}

func (s *extrapolationSum) HandleLine(line string) error {
	var nums []int
	for _, field := range strings.Fields(line) {
		n, err := strconv.Atoi(field)
		if err != nil {
			return err
		}
		nums = append(nums, n)
	}
	if len(nums) == 0 {
		return errors.New("empty history line")
	}

	expanded, err := expandOnce(nums)
	if err != nil {
		return err
	}
	if s.end == frontOfSequence {
		s.total += expanded[0]
	} else {
		s.total += expanded[len(expanded)-1]
	}
	return nil
}

func (s *extrapolationSum) ExtractSolution() (string, error) {
	return strconv.Itoa(s.total), nil
}

// expandOnce builds the difference pyramid down to an all-zero row, then
// unwinds it bottom-up, reconstructing one value at each end of the
// original sequence.
func expandOnce(nums []int) ([]int, error) {
	var pyramid deque.Deque[[]int]
	pyramid.PushBack(nums)

	for !allZero(pyramid.Front()) {
		pyramid.PushFront(deltas(pyramid.Front()))
	}

	for pyramid.Len() > 1 {
		var (
			top    = pyramid.PopFront()
			bottom = pyramid.PopFront()
		)
		if len(top) == 0 || len(bottom) == 0 {
			return nil, errors.New("attempted to expand an empty sequence")
		}
		var (
			newFirst = bottom[0] - top[0]
			newLast  = bottom[len(bottom)-1] + top[len(top)-1]
			grown    = make([]int, 0, len(bottom)+2)
		)
		grown = append(grown, newFirst)
		grown = append(grown, bottom...)
		grown = append(grown, newLast)
		pyramid.PushFront(grown)
	}

	return pyramid.PopFront(), nil
}

func deltas(nums []int) []int {
	if len(nums) == 0 {
		return nil
	}
	var res []int
	for i, n := range nums[1:] {
		res = append(res, n-nums[i])
	}
	return res
}

func allZero(nums []int) bool {
	for _, n := range nums {
		if n != 0 {
			return false
		}
	}
	return true
}
