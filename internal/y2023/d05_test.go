package y2023

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueMapRange(t *testing.T) {
	r := valueMapRange{destStart: 50, srcStart: 98, srcLen: 2}

	_, ok := r.mapValue(97)
	assert.False(t, ok)

	mapped, ok := r.mapValue(98)
	assert.True(t, ok)
	assert.Equal(t, uint64(50), mapped)

	mapped, ok = r.mapValue(99)
	assert.True(t, ok)
	assert.Equal(t, uint64(51), mapped)

	_, ok = r.mapValue(100)
	assert.False(t, ok)
}

func TestValueMap(t *testing.T) {
	m := valueMap{
		{destStart: 50, srcStart: 98, srcLen: 2},
		{destStart: 52, srcStart: 50, srcLen: 48},
	}

	tests := []struct {
		value, want uint64
	}{
		{49, 49},
		{50, 52},
		{51, 53},
		{97, 99},
		{98, 50},
		{99, 51},
		{100, 100},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, m.mapValue(test.value))
	}
}

var sampleAlmanacLines = []string{
	"seeds: 79 14 55 13",
	"",
	"seed-to-soil map:",
	"50 98 2",
	"52 50 48",
	"",
	"soil-to-fertilizer map:",
	"0 15 37",
	"37 52 2",
	"39 0 15",
	"",
	"fertilizer-to-water map:",
	"49 53 8",
	"0 11 42",
	"42 0 7",
	"57 7 4",
	"",
	"water-to-light map:",
	"88 18 7",
	"18 25 70",
	"",
	"light-to-temperature map:",
	"45 77 23",
	"81 45 19",
	"68 64 13",
	"",
	"temperature-to-humidity map:",
	"0 69 1",
	"1 0 69",
	"",
	"humidity-to-location map:",
	"60 56 37",
	"56 93 4",
}

func sampleAlmanac(t *testing.T, behaviour seedBehaviour) almanac {
	t.Helper()
	a := almanac{behaviour: behaviour}
	for _, line := range sampleAlmanacLines {
		require.NoError(t, a.handleLine(line))
	}
	return a
}

func TestAlmanacLocation(t *testing.T) {
	a := sampleAlmanac(t, simpleSeeds)

	assert.Equal(t, uint64(82), a.location(79))

	var locations []uint64
	for _, seed := range a.seeds {
		locations = append(locations, a.location(seed))
	}
	assert.Equal(t, []uint64{82, 43, 86, 35}, locations)
}

func TestLowestLocation(t *testing.T) {
	a := sampleAlmanac(t, simpleSeeds)

	lowest, ok := a.lowestLocation()
	assert.True(t, ok)
	assert.Equal(t, uint64(35), lowest)
}

func TestSeedExpansion(t *testing.T) {
	seeds := rangeSeeds.expand([]uint64{79, 14, 55, 13})

	assert.Equal(t, []uint64{
		79, 80, 81, 82, 83, 84, 85, 86, 87, 88, 89, 90, 91, 92,
		55, 56, 57, 58, 59, 60, 61, 62, 63, 64, 65, 66, 67,
	}, seeds)
}

func TestLowestLocationOfRanges(t *testing.T) {
	a := sampleAlmanac(t, rangeSeeds)

	lowest, ok := a.lowestLocation()
	assert.True(t, ok)
	assert.Equal(t, uint64(46), lowest)
}

func TestRangeLineBeforeHeaderIsAnError(t *testing.T) {
	var a almanac
	assert.Error(t, a.handleLine("50 98 2"))
}

func TestNoSeedsYieldsNoValue(t *testing.T) {
	s := newLowestLocation()
	answer, err := s.ExtractSolution()
	require.NoError(t, err)
	assert.Equal(t, "No value", answer)
}
