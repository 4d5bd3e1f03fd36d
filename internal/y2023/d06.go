package y2023

import (
	"errors"
	"strconv"
	"strings"

	"github.com/vancomm/advent-of-code/internal/scanner"
	"github.com/vancomm/advent-of-code/internal/solve"
)

type marginOfError struct {
	builder racesBuilder
}

func newMarginOfError() solve.Solver {
	return &marginOfError{builder: &columnRacesBuilder{}}
}

func newSingleRaceMargin() solve.Solver {
	return &marginOfError{builder: &concatRacesBuilder{}}
}

func (s *marginOfError) HandleLine(line string) error {
	return s.builder.addLine(line)
}

func (s *marginOfError) ExtractSolution() (string, error) {
	races, err := s.builder.build()
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(races.marginOfError(), 10), nil
}

type racesBuilder interface {
	addLine(line string) error
	build() (races, error)
}

// columnRacesBuilder pairs the numbers of the Time: line with those of
// the Distance: line, one race per column.
type columnRacesBuilder struct {
	rows [][]uint64
}

func (b *columnRacesBuilder) addLine(line string) error {
	sc := scanner.New(line)
	if !sc.MatchLiteral("Time:") {
		sc.MatchLiteral("Distance:")
	}
	var numbers []uint64
	for !sc.Finished() {
		sc.ReadWhitespace()
		n, err := scanner.ExpectUint[uint64](sc)
		if err != nil {
			return err
		}
		numbers = append(numbers, n)
	}
	b.rows = append(b.rows, numbers)
	return nil
}

func (b *columnRacesBuilder) build() (races, error) {
	if len(b.rows) != 2 {
		return nil, errors.New("need two lists of numbers")
	}
	times, distances := b.rows[0], b.rows[1]
	if len(times) != len(distances) {
		return nil, errors.New("times and distances need to be of the same length")
	}
	var rs races
	for i, time := range times {
		rs = append(rs, race{totalTime: time, distanceToBeat: distances[i]})
	}
	return rs, nil
}

// concatRacesBuilder ignores the spaces between the digit columns and
// reads each line as one big number, yielding a single race.
type concatRacesBuilder struct {
	rows []string
}

func (b *concatRacesBuilder) addLine(line string) error {
	_, rest, found := strings.Cut(line, ":")
	if !found {
		return errors.New("no ':' found in input string")
	}
	b.rows = append(b.rows, rest)
	return nil
}

func (b *concatRacesBuilder) build() (races, error) {
	if len(b.rows) != 2 {
		return nil, errors.New("need two lines of numbers")
	}
	var numbers []uint64
	for _, row := range b.rows {
		n, err := strconv.ParseUint(strings.ReplaceAll(row, " ", ""), 10, 64)
		if err != nil {
			return nil, err
		}
		numbers = append(numbers, n)
	}
	return races{{totalTime: numbers[0], distanceToBeat: numbers[1]}}, nil
}

type race struct {
	totalTime      uint64
	distanceToBeat uint64
}

type races []race

func (rs races) marginOfError() uint64 {
	product := uint64(1)
	for _, r := range rs {
		product *= numWaysToWin(r.totalTime, r.distanceToBeat)
	}
	return product
}

// Holding the button for h of totalTime covers h*(totalTime-h); the
// winning holds form a contiguous window around the vertex, so the
// first winning h from the left pins down the whole count.
func numWaysToWin(totalTime, distanceToBeat uint64) uint64 {
	for holdTime := uint64(0); holdTime < totalTime; holdTime++ {
		if raceDistance(totalTime, holdTime) > distanceToBeat {
			return totalTime - 2*holdTime + 1
		}
	}
	return 0
}

func raceDistance(totalTime, holdTime uint64) uint64 {
	if holdTime > totalTime {
		return 0
	}
	speed := holdTime
	return speed * (totalTime - holdTime)
}
