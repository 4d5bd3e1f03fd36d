package y2023

import (
	"strconv"

	"github.com/vancomm/advent-of-code/internal/scanner"
	"github.com/vancomm/advent-of-code/internal/solve"
)

type partNumberSum struct {
	lines []string
}

func newPartNumberSum() solve.Solver {
	return &partNumberSum{}
}

func (s *partNumberSum) HandleLine(line string) error {
	s.lines = append(s.lines, line)
	return nil
}

func (s *partNumberSum) ExtractSolution() (string, error) {
	schematic, err := parseSchematic(s.lines)
	if err != nil {
		return "", err
	}
	sum := 0
	for _, n := range schematic.partNumbers() {
		sum += n
	}
	return strconv.Itoa(sum), nil
}

type gearRatioSum struct {
	lines []string
}

func newGearRatioSum() solve.Solver {
	return &gearRatioSum{}
}

func (s *gearRatioSum) HandleLine(line string) error {
	s.lines = append(s.lines, line)
	return nil
}

func (s *gearRatioSum) ExtractSolution() (string, error) {
	schematic, err := parseSchematic(s.lines)
	if err != nil {
		return "", err
	}
	sum := 0
	for _, g := range schematic.gears() {
		sum += g.ratio()
	}
	return strconv.Itoa(sum), nil
}

type cell struct {
	x, y int
}

type schematicNumber struct {
	value    int
	width    int // number of digits
	position cell
}

type gear struct {
	value1, value2 int
}

func (g gear) ratio() int {
	return g.value1 * g.value2
}

type schematic struct {
	squares [][]rune
	numbers []schematicNumber
}

func parseSchematic(lines []string) (schematic, error) {
	var s schematic
	for y, line := range lines {
		s.squares = append(s.squares, []rune(line))

		sc := scanner.New(line)
		for !sc.Finished() {
			c, _ := sc.Peek()
			if !scanner.IsDigit(c) {
				sc.Advance()
				continue
			}
			x := sc.Pos()
			value, err := scanner.ExpectUint[uint](sc)
			if err != nil {
				return s, err
			}
			s.numbers = append(s.numbers, schematicNumber{
				value:    int(value),
				width:    sc.Pos() - x,
				position: cell{x, y},
			})
		}
	}
	return s, nil
}

func (s schematic) width() int {
	return len(s.squares[0])
}

func (s schematic) height() int {
	return len(s.squares)
}

func (s schematic) isSymbolAt(p cell) bool {
	c := s.squares[p.y][p.x]
	return c != '.' && !scanner.IsDigit(c)
}

func (s schematic) isStarAt(p cell) bool {
	return s.squares[p.y][p.x] == '*'
}

// neighboursFor returns the bounding box one cell around the number,
// clipped to the schematic bounds: row above, left, right, row below.
func (s schematic) neighboursFor(n schematicNumber) []cell {
	var (
		x, y = n.position.x, n.position.y
		minX = max(x-1, 0)
		maxX = min(x+n.width+1, s.width())
	)

	var neighbours []cell
	if y > 0 {
		for nx := minX; nx < maxX; nx++ {
			neighbours = append(neighbours, cell{nx, y - 1})
		}
	}
	if x > 0 {
		neighbours = append(neighbours, cell{x - 1, y})
	}
	if x+n.width < s.width() {
		neighbours = append(neighbours, cell{x + n.width, y})
	}
	if y < s.height()-1 {
		for nx := minX; nx < maxX; nx++ {
			neighbours = append(neighbours, cell{nx, y + 1})
		}
	}
	return neighbours
}

func (s schematic) isPartNumber(n schematicNumber) bool {
	for _, p := range s.neighboursFor(n) {
		if s.isSymbolAt(p) {
			return true
		}
	}
	return false
}

func (s schematic) partNumbers() []int {
	var values []int
	for _, n := range s.numbers {
		if s.isPartNumber(n) {
			values = append(values, n.value)
		}
	}
	return values
}

// A gear is a '*' adjacent to exactly two numbers.
func (s schematic) gears() []gear {
	stars := map[cell][]int{}
	for _, n := range s.numbers {
		for _, p := range s.neighboursFor(n) {
			if s.isStarAt(p) {
				stars[p] = append(stars[p], n.value)
			}
		}
	}

	var gears []gear
	for _, values := range stars {
		if len(values) == 2 {
			gears = append(gears, gear{values[0], values[1]})
		}
	}
	return gears
}
