package y2023

import (
	"strconv"

	"github.com/gammazero/deque"
	"github.com/vancomm/advent-of-code/internal/scanner"
	"github.com/vancomm/advent-of-code/internal/solve"
)

type cardPointsTotal struct {
	cards cardCollection
}

func newCardPointsTotal() solve.Solver {
	return &cardPointsTotal{}
}

func (s *cardPointsTotal) HandleLine(line string) error {
	return s.cards.addFromLine(line)
}

func (s *cardPointsTotal) ExtractSolution() (string, error) {
	return strconv.Itoa(s.cards.totalPoints()), nil
}

type cardExpansionCount struct {
	cards cardCollection
}

func newCardExpansionCount() solve.Solver {
	return &cardExpansionCount{}
}

func (s *cardExpansionCount) HandleLine(line string) error {
	return s.cards.addFromLine(line)
}

func (s *cardExpansionCount) ExtractSolution() (string, error) {
	return strconv.Itoa(s.cards.expandedCount()), nil
}

type card struct {
	id      int
	winning []int
	drawn   []int
}

// Lines look like "Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53".
func parseCard(line string) (card, error) {
	var c card

	sc := scanner.New(line)
	if err := sc.ExpectLiteral("Card"); err != nil {
		return c, err
	}
	sc.ReadWhitespace()
	id, err := scanner.ExpectUint[uint](sc)
	if err != nil {
		return c, err
	}
	c.id = int(id)
	if err := sc.ExpectChar(':'); err != nil {
		return c, err
	}

	pastSeparator := false
	for !sc.Finished() {
		sc.ReadWhitespace()
		if sc.MatchChar('|') {
			pastSeparator = true
			continue
		}
		num, err := scanner.ExpectUint[uint](sc)
		if err != nil {
			return c, err
		}
		if pastSeparator {
			c.drawn = append(c.drawn, int(num))
		} else {
			c.winning = append(c.winning, int(num))
		}
	}

	return c, nil
}

func (c card) matching() int {
	count := 0
	for _, n := range c.drawn {
		for _, w := range c.winning {
			if n == w {
				count++
				break
			}
		}
	}
	return count
}

func (c card) points() int {
	m := c.matching()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

type cardCollection []card

func (cc *cardCollection) addFromLine(line string) error {
	c, err := parseCard(line)
	if err != nil {
		return err
	}
	*cc = append(*cc, c)
	return nil
}

func (cc cardCollection) totalPoints() int {
	total := 0
	for _, c := range cc {
		total += c.points()
	}
	return total
}

// expandedCount runs the copy-winning simulation: every card with m
// matches queues up copies of the m cards after it, and the result is
// the total number of cards processed.
func (cc cardCollection) expandedCount() int {
	var queue deque.Deque[int]
	for id := 1; id <= len(cc); id++ {
		queue.PushBack(id)
	}

	count := 0
	for queue.Len() > 0 {
		id := queue.PopFront()
		for i := range cc[id-1].matching() {
			queue.PushBack(id + i + 1)
		}
		count++
	}
	return count
}
