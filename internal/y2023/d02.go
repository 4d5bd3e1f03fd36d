package y2023

import (
	"strconv"

	"github.com/vancomm/advent-of-code/internal/scanner"
	"github.com/vancomm/advent-of-code/internal/solve"
)

type possibleGameSum struct {
	bag cubeSet
	sum int
}

func newPossibleGameSum() solve.Solver {
	return &possibleGameSum{bag: cubeSet{red: 12, green: 13, blue: 14}}
}

func (s *possibleGameSum) HandleLine(line string) error {
	game, err := parseCubeGame(line)
	if err != nil {
		return err
	}
	if game.possibleWith(s.bag) {
		s.sum += game.id
	}
	return nil
}

func (s *possibleGameSum) ExtractSolution() (string, error) {
	return strconv.Itoa(s.sum), nil
}

type minimalPowerSum struct {
	sum int
}

func newMinimalPowerSum() solve.Solver {
	return &minimalPowerSum{}
}

func (s *minimalPowerSum) HandleLine(line string) error {
	game, err := parseCubeGame(line)
	if err != nil {
		return err
	}
	s.sum += game.minimalBag().power()
	return nil
}

func (s *minimalPowerSum) ExtractSolution() (string, error) {
	return strconv.Itoa(s.sum), nil
}

type cubeGame struct {
	id    int
	draws []cubeSet
}

// Lines look like
// "Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red".
func parseCubeGame(line string) (cubeGame, error) {
	var game cubeGame

	sc := scanner.New(line)
	if err := sc.ExpectLiteral("Game "); err != nil {
		return game, err
	}
	id, err := scanner.ExpectUint[uint](sc)
	if err != nil {
		return game, err
	}
	game.id = int(id)
	if err := sc.ExpectLiteral(": "); err != nil {
		return game, err
	}

	for !sc.Finished() {
		draw, err := parseCubeSet(sc)
		if err != nil {
			return game, err
		}
		game.draws = append(game.draws, draw)

		if sc.MatchChar(';') {
			if err := sc.ExpectChar(' '); err != nil {
				return game, err
			}
		} else {
			break
		}
	}

	return game, nil
}

func parseCubeSet(sc *scanner.Scanner) (cubeSet, error) {
	var draw cubeSet
	for !sc.Finished() {
		if c, ok := sc.Peek(); ok && c == ';' {
			break
		}

		num, err := scanner.ExpectUint[uint](sc)
		if err != nil {
			return draw, err
		}
		if err := sc.ExpectChar(' '); err != nil {
			return draw, err
		}

		switch {
		case sc.MatchLiteral("red"):
			draw.red = int(num)
		case sc.MatchLiteral("green"):
			draw.green = int(num)
		case sc.MatchLiteral("blue"):
			draw.blue = int(num)
		}

		if sc.MatchChar(',') {
			if err := sc.ExpectChar(' '); err != nil {
				return draw, err
			}
		} else {
			break
		}
	}
	return draw, nil
}

func (g cubeGame) possibleWith(bag cubeSet) bool {
	for _, draw := range g.draws {
		if !bag.allows(draw) {
			return false
		}
	}
	return true
}

func (g cubeGame) minimalBag() (bag cubeSet) {
	for _, draw := range g.draws {
		bag.red = max(bag.red, draw.red)
		bag.green = max(bag.green, draw.green)
		bag.blue = max(bag.blue, draw.blue)
	}
	return bag
}

type cubeSet struct {
	red, green, blue int
}

func (c cubeSet) allows(other cubeSet) bool {
	return other.red <= c.red && other.green <= c.green && other.blue <= c.blue
}

func (c cubeSet) power() int {
	return c.red * c.green * c.blue
}
