package y2023

import (
	"strconv"
	"strings"

	"github.com/vancomm/advent-of-code/internal/grid"
	"github.com/vancomm/advent-of-code/internal/solve"
)

type galaxyDistances struct {
	builder universeBuilder
	factor  int
}

func newGalaxyDistances() solve.Solver {
	return &galaxyDistances{factor: 2}
}

func newOldGalaxyDistances() solve.Solver {
	return &galaxyDistances{factor: 1_000_000}
}

func (s *galaxyDistances) HandleLine(line string) error {
	return s.builder.addLine(line)
}

func (s *galaxyDistances) ExtractSolution() (string, error) {
	universe := s.builder.build()
	universe.expand(s.factor)
	return strconv.Itoa(universe.sumOfShortestPaths()), nil
}

type universe struct {
	g        grid.Grid
	galaxies []grid.Point
}

// expand replaces every empty row and column with factor copies of
// itself, shifting galaxy coordinates by factor-1 per empty line
// strictly before them on that axis.
func (u *universe) expand(factor int) {
	if factor == 0 {
		return
	}

	var emptyColumns, emptyRows []int
	for x := range u.g.Width() {
		if !u.anyGalaxy(func(p grid.Point) bool { return p.X == x }) {
			emptyColumns = append(emptyColumns, x)
		}
	}
	for y := range u.g.Height() {
		if !u.anyGalaxy(func(p grid.Point) bool { return p.Y == y }) {
			emptyRows = append(emptyRows, y)
		}
	}

	delta := factor - 1

	// Walk right to left and bottom to top so earlier shifts don't move
	// galaxies across lines not yet processed.
	for i := len(emptyColumns) - 1; i >= 0; i-- {
		for j, p := range u.galaxies {
			if p.X >= emptyColumns[i] {
				u.galaxies[j].X += delta
			}
		}
	}
	for i := len(emptyRows) - 1; i >= 0; i-- {
		for j, p := range u.galaxies {
			if p.Y >= emptyRows[i] {
				u.galaxies[j].Y += delta
			}
		}
	}

	u.g = grid.New(
		u.g.Width()+len(emptyColumns)*delta,
		u.g.Height()+len(emptyRows)*delta,
	)
}

func (u universe) anyGalaxy(pred func(grid.Point) bool) bool {
	for _, p := range u.galaxies {
		if pred(p) {
			return true
		}
	}
	return false
}

func (u universe) sumOfShortestPaths() int {
	total := 0
	for i, a := range u.galaxies {
		for _, b := range u.galaxies[i+1:] {
			total += manhattanDistance(a, b)
		}
	}
	return total
}

func manhattanDistance(a, b grid.Point) int {
	return absDiff(a.X, b.X) + absDiff(a.Y, b.Y)
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

func (u universe) String() string {
	marked := map[int]bool{}
	for _, p := range u.galaxies {
		marked[u.g.ToIndex(p)] = true
	}

	var b strings.Builder
	for pos := range u.g.Positions() {
		if marked[pos.Index] {
			b.WriteRune('#')
		} else {
			b.WriteRune('.')
		}
		if pos.X == u.g.Width()-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}

type universeBuilder struct {
	width    int
	height   int
	galaxies []grid.Point
}

func (b *universeBuilder) addLine(line string) error {
	b.width = len([]rune(line))
	for x, c := range []rune(line) {
		if c == '#' {
			b.galaxies = append(b.galaxies, grid.Point{X: x, Y: b.height})
		}
	}
	b.height++
	return nil
}

func (b universeBuilder) build() universe {
	return universe{
		g:        grid.New(b.width, b.height),
		galaxies: append([]grid.Point(nil), b.galaxies...),
	}
}
