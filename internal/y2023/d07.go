package y2023

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/vancomm/advent-of-code/internal/scanner"
	"github.com/vancomm/advent-of-code/internal/solve"
)

type handRanking struct {
	hands []handWithBid
	mode  compareMode
}

func newBasicHandRanking() solve.Solver {
	return &handRanking{mode: basicCompare}
}

func newJokerHandRanking() solve.Solver {
	return &handRanking{mode: jokerCompare}
}

func (s *handRanking) HandleLine(line string) error {
	hwb, err := parseHandWithBid(line)
	if err != nil {
		return err
	}
	s.hands = append(s.hands, hwb)
	return nil
}

func (s *handRanking) ExtractSolution() (string, error) {
	return strconv.FormatUint(s.totalScore(), 10), nil
}

// totalScore sorts the hands weakest first and sums rank*bid.
func (s *handRanking) totalScore() uint64 {
	ranked := slices.Clone(s.hands)
	slices.SortStableFunc(ranked, func(a, b handWithBid) int {
		return s.mode.compareHands(a.hand, b.hand)
	})

	total := uint64(0)
	for i, hwb := range ranked {
		rank := uint64(i + 1)
		total += rank * hwb.bid
	}
	return total
}

type compareMode int

const (
	basicCompare compareMode = iota
	// jokerCompare classifies hands by the best type any joker
	// substitution can reach, and sorts the joker below every other
	// label on ties.
	jokerCompare
)

func (m compareMode) compareHands(a, b hand) int {
	var byType int
	if m == jokerCompare {
		byType = cmp.Compare(a.bestHandType(), b.bestHandType())
	} else {
		byType = cmp.Compare(a.handType(), b.handType())
	}
	if byType != 0 {
		return byType
	}

	for i := range a {
		var byLabel int
		if m == jokerCompare {
			byLabel = jokerCmp(a[i], b[i])
		} else {
			byLabel = cmp.Compare(a[i], b[i])
		}
		if byLabel != 0 {
			return byLabel
		}
	}
	return 0
}

type handWithBid struct {
	hand hand
	bid  uint64
}

func parseHandWithBid(line string) (handWithBid, error) {
	sc := scanner.New(line)
	h, err := parseHand(sc)
	if err != nil {
		return handWithBid{}, err
	}
	sc.ReadWhitespace()
	bid, err := scanner.ExpectUint[uint64](sc)
	if err != nil {
		return handWithBid{}, err
	}
	return handWithBid{hand: h, bid: bid}, nil
}

type hand [5]label

func parseHand(sc *scanner.Scanner) (hand, error) {
	var h hand
	for i := range h {
		c, ok := sc.Peek()
		if !ok {
			return h, fmt.Errorf("couldn't read 5 labels")
		}
		l, err := labelFromRune(c)
		if err != nil {
			return h, err
		}
		h[i] = l
		sc.Advance()
	}
	return h, nil
}

type handType int

const (
	highCard handType = iota
	onePair
	twoPair
	threeOfAKind
	fullHouse
	fourOfAKind
	fiveOfAKind
)

// handType classifies by the multiset of label counts.
func (h hand) handType() handType {
	labelCounts := map[label]int{}
	for _, l := range h {
		labelCounts[l]++
	}

	counts := slices.Sorted(maps.Values(labelCounts))

	switch counts[len(counts)-1] {
	case 5:
		return fiveOfAKind
	case 4:
		return fourOfAKind
	case 3:
		if counts[0] == 2 {
			return fullHouse
		}
		return threeOfAKind
	case 2:
		if len(counts) == 3 {
			// must be 1, 2, 2
			return twoPair
		}
		return onePair
	default:
		return highCard
	}
}

// possibleHands enumerates every concrete hand obtainable by replacing
// each joker with each non-joker label.
func (h hand) possibleHands() []hand {
	var (
		concrete []hand
		pending  = []hand{h}
	)
	for len(pending) > 0 {
		next := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		i := slices.Index(next[:], jack)
		if i < 0 {
			concrete = append(concrete, next)
			continue
		}
		for _, l := range nonJokers {
			replaced := next
			replaced[i] = l
			pending = append(pending, replaced)
		}
	}
	return concrete
}

func (h hand) bestHandType() handType {
	best := highCard
	for _, candidate := range h.possibleHands() {
		best = max(best, candidate.handType())
	}
	return best
}

type label int8

const (
	two label = iota
	three
	four
	five
	six
	seven
	eight
	nine
	ten
	jack
	queen
	king
	ace
)

var labelRunes = map[rune]label{
	'2': two, '3': three, '4': four, '5': five, '6': six,
	'7': seven, '8': eight, '9': nine, 'T': ten, 'J': jack,
	'Q': queen, 'K': king, 'A': ace,
}

func labelFromRune(c rune) (label, error) {
	l, ok := labelRunes[c]
	if !ok {
		return 0, fmt.Errorf("invalid label char: %q", c)
	}
	return l, nil
}

var nonJokers = []label{
	two, three, four, five, six, seven, eight, nine, ten, queen, king, ace,
}

func jokerCmp(a, b label) int {
	switch {
	case a == b:
		return 0
	case a == jack:
		return -1
	case b == jack:
		return 1
	default:
		return cmp.Compare(a, b)
	}
}
