// Package y2023 implements the 2023 puzzle solvers. Each day is a small
// self-contained state machine behind the solve.Solver contract.
package y2023

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/advent-of-code/internal/solve"
)

var Log = logrus.New()

type dayPart struct {
	day  solve.Day
	part solve.Part
}

// Maps known selectors to solver factories; an unknown selector is a
// hard failure, never a silent default.
var solvers = map[dayPart]func() solve.Solver{
	{1, 1}:  newCalibrationSum,
	{1, 2}:  newCalibrationSumWithWords,
	{2, 1}:  newPossibleGameSum,
	{2, 2}:  newMinimalPowerSum,
	{3, 1}:  newPartNumberSum,
	{3, 2}:  newGearRatioSum,
	{4, 1}:  newCardPointsTotal,
	{4, 2}:  newCardExpansionCount,
	{5, 1}:  newLowestLocation,
	{5, 2}:  newLowestLocationOfRanges,
	{6, 1}:  newMarginOfError,
	{6, 2}:  newSingleRaceMargin,
	{7, 1}:  newBasicHandRanking,
	{7, 2}:  newJokerHandRanking,
	{8, 1}:  newSingleWalk,
	{8, 2}:  newGhostWalk,
	{9, 1}:  newForwardExtrapolation,
	{9, 2}:  newBackwardExtrapolation,
	{10, 1}: newLoopDistance,
	{10, 2}: newLoopInterior,
	{11, 1}: newGalaxyDistances,
	{11, 2}: newOldGalaxyDistances,
}

func New(day solve.Day, part solve.Part) (solve.Solver, error) {
	factory, ok := solvers[dayPart{day, part}]
	if !ok {
		return nil, fmt.Errorf("no solver for day %s part %s", day, part)
	}
	return factory(), nil
}
