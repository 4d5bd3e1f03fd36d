package y2023

import (
	"errors"
	"strconv"
	"strings"

	"github.com/vancomm/advent-of-code/internal/scanner"
	"github.com/vancomm/advent-of-code/internal/solve"
)

type lowestLocation struct {
	almanac almanac
}

func newLowestLocation() solve.Solver {
	return &lowestLocation{almanac: almanac{behaviour: simpleSeeds}}
}

func newLowestLocationOfRanges() solve.Solver {
	return &lowestLocation{almanac: almanac{behaviour: rangeSeeds}}
}

func (s *lowestLocation) HandleLine(line string) error {
	return s.almanac.handleLine(line)
}

func (s *lowestLocation) ExtractSolution() (string, error) {
	lowest, ok := s.almanac.lowestLocation()
	if !ok {
		return "No value", nil
	}
	return strconv.FormatUint(lowest, 10), nil
}

type seedBehaviour int

const (
	simpleSeeds seedBehaviour = iota
	// rangeSeeds reads the seed numbers as (start, length) pairs and
	// materializes every value in each range.
	rangeSeeds
)

func (b seedBehaviour) expand(seeds []uint64) []uint64 {
	if b == simpleSeeds {
		return seeds
	}
	var expanded []uint64
	for i := 0; i+1 < len(seeds); i += 2 {
		start, length := seeds[i], seeds[i+1]
		for n := start; n < start+length; n++ {
			expanded = append(expanded, n)
		}
	}
	Log.Debugf("expanded %d seed pairs into %d seeds", len(seeds)/2, len(expanded))
	return expanded
}

type valueMapRange struct {
	destStart, srcStart, srcLen uint64
}

func (r valueMapRange) mapValue(v uint64) (uint64, bool) {
	if v >= r.srcStart && v < r.srcStart+r.srcLen {
		return r.destStart + (v - r.srcStart), true
	}
	return 0, false
}

// valueMap applies the first matching range; source order breaks ties
// between overlapping ranges, and an unmatched value passes through
// unchanged. Inputs are assumed not to overlap; this is not validated.
type valueMap []valueMapRange

func (m valueMap) mapValue(v uint64) uint64 {
	for _, r := range m {
		if mapped, ok := r.mapValue(v); ok {
			return mapped
		}
	}
	return v
}

type almanac struct {
	behaviour seedBehaviour
	seeds     []uint64
	maps      []valueMap
}

func (a *almanac) handleLine(line string) error {
	switch {
	case strings.TrimSpace(line) == "":
		return nil

	case strings.HasPrefix(line, "seeds: "):
		sc := scanner.New(line)
		if err := sc.ExpectLiteral("seeds:"); err != nil {
			return err
		}
		var seeds []uint64
		for !sc.Finished() {
			sc.ReadWhitespace()
			n, err := scanner.ExpectUint[uint64](sc)
			if err != nil {
				return err
			}
			seeds = append(seeds, n)
		}
		a.seeds = a.behaviour.expand(seeds)
		return nil

	case strings.HasSuffix(line, "map:"):
		a.maps = append(a.maps, valueMap{})
		return nil

	default:
		if len(a.maps) == 0 {
			return errors.New("remap range before any map header")
		}
		sc := scanner.New(line)
		destStart, err := scanner.ExpectUint[uint64](sc)
		if err != nil {
			return err
		}
		sc.ReadWhitespace()
		srcStart, err := scanner.ExpectUint[uint64](sc)
		if err != nil {
			return err
		}
		sc.ReadWhitespace()
		srcLen, err := scanner.ExpectUint[uint64](sc)
		if err != nil {
			return err
		}
		last := len(a.maps) - 1
		a.maps[last] = append(a.maps[last], valueMapRange{destStart, srcStart, srcLen})
		return nil
	}
}

// location folds a seed left to right through every map in input order.
func (a almanac) location(v uint64) uint64 {
	for _, m := range a.maps {
		v = m.mapValue(v)
	}
	return v
}

func (a almanac) lowestLocation() (uint64, bool) {
	if len(a.seeds) == 0 {
		return 0, false
	}
	lowest := a.location(a.seeds[0])
	for _, seed := range a.seeds[1:] {
		lowest = min(lowest, a.location(seed))
	}
	return lowest, true
}
