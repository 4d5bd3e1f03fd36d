package y2023

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/advent-of-code/internal/grid"
	"github.com/vancomm/advent-of-code/internal/solve"
)

type loopDistance struct {
	builder mazeBuilder
}

func newLoopDistance() solve.Solver {
	return &loopDistance{}
}

func (s *loopDistance) HandleLine(line string) error {
	return s.builder.addLine(line)
}

func (s *loopDistance) ExtractSolution() (string, error) {
	maze, err := s.builder.build()
	if err != nil {
		return "", err
	}
	solved, err := maze.solve()
	if err != nil {
		return "", err
	}
	return strconv.Itoa(solved.maxDistanceFromStart()), nil
}

type loopInterior struct {
	builder mazeBuilder
}

func newLoopInterior() solve.Solver {
	return &loopInterior{}
}

func (s *loopInterior) HandleLine(line string) error {
	return s.builder.addLine(line)
}

func (s *loopInterior) ExtractSolution() (string, error) {
	maze, err := s.builder.build()
	if err != nil {
		return "", err
	}
	solved, err := maze.solve()
	if err != nil {
		return "", err
	}
	return strconv.Itoa(solved.numContainedPoints()), nil
}

type tile int8

const (
	ground tile = iota
	vertical
	horizontal
	northWest
	northEast
	southWest
	southEast
	startTile
)

func tileFromRune(c rune) (tile, error) {
	switch c {
	case '|':
		return vertical, nil
	case '-':
		return horizontal, nil
	case 'L':
		return northEast, nil
	case 'J':
		return northWest, nil
	case '7':
		return southWest, nil
	case 'F':
		return southEast, nil
	case '.':
		return ground, nil
	case 'S':
		return startTile, nil
	default:
		return 0, fmt.Errorf("%q is not a valid tile char", c)
	}
}

func (t tile) displayRune() rune {
	switch t {
	case vertical:
		return '┃'
	case horizontal:
		return '━'
	case northWest:
		return '┛'
	case northEast:
		return '┗'
	case southWest:
		return '┓'
	case southEast:
		return '┏'
	case startTile:
		return 'S'
	default:
		return '.'
	}
}

// connections lists the two directions a pipe tile opens towards.
func (t tile) connections() []grid.Direction {
	switch t {
	case vertical:
		return []grid.Direction{grid.North, grid.South}
	case horizontal:
		return []grid.Direction{grid.East, grid.West}
	case northEast:
		return []grid.Direction{grid.North, grid.East}
	case northWest:
		return []grid.Direction{grid.North, grid.West}
	case southWest:
		return []grid.Direction{grid.South, grid.West}
	case southEast:
		return []grid.Direction{grid.South, grid.East}
	default:
		return nil
	}
}

type maze struct {
	startIndex int
	tiles      []tile
	g          grid.Grid
}

func (m maze) neighbours(idx int) []int {
	var res []int
	for _, direction := range m.tiles[idx].connections() {
		if n, ok := m.g.Neighbour(idx, direction); ok {
			res = append(res, n)
		}
	}
	return res
}

// solve walks the loop and keeps only its tiles; everything off the
// loop becomes ground.
func (m maze) solve() (solvedMaze, error) {
	path, err := m.findPath()
	if err != nil {
		return solvedMaze{}, err
	}
	tiles := make([]tile, m.g.Len())
	for _, idx := range path {
		tiles[idx] = m.tiles[idx]
	}
	return solvedMaze{tiles: tiles, g: m.g, path: path}, nil
}

// findPath extends both loop arms from the start until they meet and
// splices them into one index sequence around the loop.
func (m maze) findPath() (mazePath, error) {
	first, second, err := m.startingPaths()
	if err != nil {
		return nil, err
	}

	for {
		a, err := first.extend(m)
		if err != nil {
			return nil, err
		}
		b, err := second.extend(m)
		if err != nil {
			return nil, err
		}
		if a == b {
			break
		}
	}

	path := append(mazePath{}, first...)
	for i := len(second) - 2; i >= 1; i-- {
		path = append(path, second[i])
	}
	return path, nil
}

// startingPaths finds the exactly two neighbours whose pipes connect
// back to the start tile.
func (m maze) startingPaths() (mazePath, mazePath, error) {
	var paths []mazePath
	for _, neighbourIdx := range m.g.Neighbours(m.startIndex) {
		for _, back := range m.neighbours(neighbourIdx) {
			if back == m.startIndex {
				paths = append(paths, mazePath{m.startIndex, neighbourIdx})
				break
			}
		}
	}
	if len(paths) != 2 {
		return nil, nil, fmt.Errorf(
			"expected to find exactly two paths but got %d", len(paths))
	}
	return paths[0], paths[1], nil
}

type mazePath []int

func (p *mazePath) extend(m maze) (int, error) {
	var (
		last       = (*p)[len(*p)-1]
		secondLast = (*p)[len(*p)-2]
	)
	for _, next := range m.neighbours(last) {
		if next != secondLast {
			*p = append(*p, next)
			return next, nil
		}
	}
	return 0, errors.New("couldn't find next loop element")
}

type solvedMaze struct {
	tiles []tile
	g     grid.Grid
	path  mazePath
}

func (m solvedMaze) maxDistanceFromStart() int {
	return len(m.path) / 2
}

// numContainedPoints counts ground cells inside the loop with a
// row-major parity scan: vertical pipes and north-facing corners flip
// the inside flag.
func (m solvedMaze) numContainedPoints() int {
	var (
		inside = false
		num    = 0
	)
	for _, t := range m.tiles {
		switch t {
		case ground:
			if inside {
				num++
			}
		case vertical, northEast, northWest:
			inside = !inside
		}
	}
	return num
}

func (m solvedMaze) String() string {
	return tilesToString(m.tiles, m.g.Width())
}

type mazeBuilder []string

func (b *mazeBuilder) addLine(line string) error {
	*b = append(*b, line)
	return nil
}

func (b mazeBuilder) build() (maze, error) {
	if len(b) == 0 {
		return maze{}, errors.New("empty maze")
	}
	var (
		g          = grid.New(len([]rune(b[0])), len(b))
		startIndex = -1
		tiles      []tile
	)

	for _, line := range b {
		for _, c := range line {
			t, err := tileFromRune(c)
			if err != nil {
				return maze{}, err
			}
			if t == startTile {
				startIndex = len(tiles)
			}
			tiles = append(tiles, t)
		}
	}

	if startIndex < 0 {
		return maze{}, errors.New("no start tile found")
	}

	start, err := inferStartTile(tiles, startIndex, g)
	if err != nil {
		return maze{}, err
	}
	tiles[startIndex] = start

	return maze{startIndex: startIndex, tiles: tiles, g: g}, nil
}

// inferStartTile replaces the start marker with the pipe shape implied
// by which of its four compass neighbours connect towards it.
func inferStartTile(tiles []tile, startIndex int, g grid.Grid) (tile, error) {
	connectsTo := func(direction grid.Direction, shapes ...tile) bool {
		idx, ok := g.Neighbour(startIndex, direction)
		if !ok {
			return false
		}
		for _, shape := range shapes {
			if tiles[idx] == shape {
				return true
			}
		}
		return false
	}

	var (
		north = connectsTo(grid.North, vertical, southWest, southEast)
		east  = connectsTo(grid.East, horizontal, northWest, southWest)
		south = connectsTo(grid.South, vertical, northWest, northEast)
		west  = connectsTo(grid.West, horizontal, northEast, southEast)
	)

	switch {
	case north && east && !south && !west:
		return northEast, nil
	case north && !east && south && !west:
		return vertical, nil
	case north && !east && !south && west:
		return northWest, nil
	case !north && east && south && !west:
		return southEast, nil
	case !north && east && !south && west:
		return horizontal, nil
	case !north && !east && south && west:
		return southWest, nil
	default:
		return 0, errors.New("couldn't work out start tile")
	}
}

func tilesToString(tiles []tile, width int) string {
	var b strings.Builder
	for i, t := range tiles {
		b.WriteRune(t.displayRune())
		if (i+1)%width == 0 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}
