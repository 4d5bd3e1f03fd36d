package y2023

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isZZZ(id string) bool {
	return id == "ZZZ"
}

func TestFollowTurns(t *testing.T) {
	n := network{
		turns: []turn{right, left},
		nodes: map[string]networkNode{
			"AAA": {left: "BBB", right: "CCC"},
			"CCC": {left: "ZZZ", right: "GGG"},
		},
	}

	steps, err := n.distance("AAA", isZZZ)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), steps)
}

func TestTurnsAreCycled(t *testing.T) {
	n := network{
		turns: []turn{left, left, right},
		nodes: map[string]networkNode{
			"AAA": {left: "BBB", right: "BBB"},
			"BBB": {left: "AAA", right: "ZZZ"},
			"ZZZ": {left: "ZZZ", right: "ZZZ"},
		},
	}

	steps, err := n.distance("AAA", isZZZ)
	require.NoError(t, err)
	assert.Equal(t, uint64(6), steps)
}

func TestWalkIntoUnknownNode(t *testing.T) {
	n := network{
		turns: []turn{left},
		nodes: map[string]networkNode{
			"AAA": {left: "BBB", right: "BBB"},
		},
	}

	_, err := n.distance("AAA", isZZZ)
	assert.Error(t, err)
}

var sampleNetworkLines = []string{
	"RL",
	"",
	"AAA = (BBB, CCC)",
	"BBB = (DDD, EEE)",
	"CCC = (ZZZ, GGG)",
	"DDD = (DDD, DDD)",
	"EEE = (EEE, EEE)",
	"GGG = (GGG, GGG)",
	"ZZZ = (ZZZ, ZZZ)",
}

func TestParseAndWalk(t *testing.T) {
	var b networkBuilder
	for _, line := range sampleNetworkLines {
		require.NoError(t, b.addLine(line))
	}

	n, err := b.build()
	require.NoError(t, err)

	steps, err := n.distance("AAA", isZZZ)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), steps)
}

func TestBuildWithoutInstructionLine(t *testing.T) {
	var b networkBuilder
	_, err := b.build()
	assert.Error(t, err)
}

func TestGhostWalk(t *testing.T) {
	s := newGhostWalk()
	for _, line := range []string{
		"LR",
		"",
		"11A = (11B, XXX)",
		"11B = (XXX, 11Z)",
		"11Z = (11B, XXX)",
		"22A = (22B, XXX)",
		"22B = (22C, 22C)",
		"22C = (22Z, 22Z)",
		"22Z = (22B, 22B)",
		"XXX = (XXX, XXX)",
	} {
		require.NoError(t, s.HandleLine(line))
	}

	answer, err := s.ExtractSolution()
	require.NoError(t, err)
	assert.Equal(t, "6", answer)
}
