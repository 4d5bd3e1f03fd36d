package y2023

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaceDistance(t *testing.T) {
	wants := []uint64{0, 6, 10, 12, 12, 10, 6, 0}
	for holdTime, want := range wants {
		assert.Equal(t, want, raceDistance(7, uint64(holdTime)))
	}
}

func TestNumWaysToWin(t *testing.T) {
	assert.Equal(t, uint64(4), numWaysToWin(7, 9))
	assert.Equal(t, uint64(8), numWaysToWin(15, 40))
	assert.Equal(t, uint64(9), numWaysToWin(30, 200))
}

func TestUnbeatableRace(t *testing.T) {
	assert.Equal(t, uint64(0), numWaysToWin(7, 100))
}

func TestMarginOfError(t *testing.T) {
	rs := races{
		{totalTime: 7, distanceToBeat: 9},
		{totalTime: 15, distanceToBeat: 40},
		{totalTime: 30, distanceToBeat: 200},
	}
	assert.Equal(t, uint64(288), rs.marginOfError())
}

var sampleRaceLines = []string{
	"Time:      7  15   30",
	"Distance:  9  40  200",
}

func TestMarginOfErrorSolver(t *testing.T) {
	s := newMarginOfError()
	for _, line := range sampleRaceLines {
		require.NoError(t, s.HandleLine(line))
	}

	answer, err := s.ExtractSolution()
	require.NoError(t, err)
	assert.Equal(t, "288", answer)
}

func TestSingleRaceMarginSolver(t *testing.T) {
	s := newSingleRaceMargin()
	for _, line := range sampleRaceLines {
		require.NoError(t, s.HandleLine(line))
	}

	answer, err := s.ExtractSolution()
	require.NoError(t, err)
	assert.Equal(t, "71503", answer)
}

func TestColumnBuilderNeedsBothLines(t *testing.T) {
	b := &columnRacesBuilder{}
	require.NoError(t, b.addLine("Time:  7 15 30"))

	_, err := b.build()
	assert.Error(t, err)
}
