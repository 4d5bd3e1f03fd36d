package y2023

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeltas(t *testing.T) {
	assert.Equal(t, []int{3, 3, 5, 9, 15}, deltas([]int{10, 13, 16, 21, 30, 45}))
	assert.Equal(t, []int{0, 2, 4, 6}, deltas([]int{3, 3, 5, 9, 15}))
	assert.Equal(t, []int{2, 2, 2}, deltas([]int{0, 2, 4, 6}))
	assert.Equal(t, []int{0, 0}, deltas([]int{2, 2, 2}))
}

func TestExpandOnce(t *testing.T) {
	expanded, err := expandOnce([]int{10, 13, 16, 21, 30, 45})
	require.NoError(t, err)
	assert.Equal(t, []int{5, 10, 13, 16, 21, 30, 45, 68}, expanded)
}

func TestExpandHandlesNegativeDeltas(t *testing.T) {
	expanded, err := expandOnce([]int{10, 7, 4, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{13, 10, 7, 4, 1, -2}, expanded)
}

var sampleHistoryLines = []string{
	"0 3 6 9 12 15",
	"1 3 6 10 15 21",
	"10 13 16 21 30 45",
}

func TestForwardExtrapolation(t *testing.T) {
	s := newForwardExtrapolation()
	for _, line := range sampleHistoryLines {
		require.NoError(t, s.HandleLine(line))
	}

	answer, err := s.ExtractSolution()
	require.NoError(t, err)
	assert.Equal(t, "114", answer)
}

func TestBackwardExtrapolation(t *testing.T) {
	s := newBackwardExtrapolation()
	for _, line := range sampleHistoryLines {
		require.NoError(t, s.HandleLine(line))
	}

	answer, err := s.ExtractSolution()
	require.NoError(t, err)
	assert.Equal(t, "2", answer)
}

func TestExtrapolationRejectsBadNumbers(t *testing.T) {
	s := newForwardExtrapolation()
	assert.Error(t, s.HandleLine("1 two 3"))
	assert.Error(t, s.HandleLine(""))
}
