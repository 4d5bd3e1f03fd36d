// Package grid provides an immutable 2-D index space with row-major
// flattening and 8-directional adjacency.
package grid

import "iter"

type Direction int

const (
	NorthWest Direction = iota
	North
	NorthEast
	West
	East
	SouthWest
	South
	SouthEast
)

// Enumeration order is fixed; Neighbours reports results in this order.
var all = [...]Direction{
	NorthWest, North, NorthEast,
	West, East,
	SouthWest, South, SouthEast,
}

func Directions() []Direction {
	return all[:]
}

type Point struct {
	X, Y int
}

type Grid struct {
	width, height int
}

func New(width, height int) Grid {
	return Grid{width, height}
}

func (g Grid) Width() int {
	return g.width
}

func (g Grid) Height() int {
	return g.height
}

func (g Grid) Len() int {
	return g.width * g.height
}

// ToPoint and ToIndex form a bijection between in-range points and flat
// indices. Callers only pass indices derived from the grid itself.
func (g Grid) ToPoint(idx int) Point {
	return Point{X: idx % g.width, Y: idx / g.width}
}

func (g Grid) ToIndex(p Point) int {
	return p.Y*g.width + p.X
}

// Neighbour reports the index one step from idx in the given direction,
// or false when the step would leave the grid.
func (g Grid) Neighbour(idx int, direction Direction) (int, bool) {
	var (
		p    = g.ToPoint(idx)
		maxX = g.width - 1
		maxY = g.height - 1
	)
	switch direction {
	case North:
		if p.Y > 0 {
			return g.ToIndex(Point{p.X, p.Y - 1}), true
		}
	case South:
		if p.Y < maxY {
			return g.ToIndex(Point{p.X, p.Y + 1}), true
		}
	case West:
		if p.X > 0 {
			return g.ToIndex(Point{p.X - 1, p.Y}), true
		}
	case East:
		if p.X < maxX {
			return g.ToIndex(Point{p.X + 1, p.Y}), true
		}
	case NorthWest:
		if p.X > 0 && p.Y > 0 {
			return g.ToIndex(Point{p.X - 1, p.Y - 1}), true
		}
	case NorthEast:
		if p.X < maxX && p.Y > 0 {
			return g.ToIndex(Point{p.X + 1, p.Y - 1}), true
		}
	case SouthWest:
		if p.X > 0 && p.Y < maxY {
			return g.ToIndex(Point{p.X - 1, p.Y + 1}), true
		}
	case SouthEast:
		if p.X < maxX && p.Y < maxY {
			return g.ToIndex(Point{p.X + 1, p.Y + 1}), true
		}
	}
	return 0, false
}

// Neighbours returns the in-bounds neighbour indices of idx, in direction
// enumeration order.
func (g Grid) Neighbours(idx int) []int {
	var res []int
	for _, direction := range all {
		if n, ok := g.Neighbour(idx, direction); ok {
			res = append(res, n)
		}
	}
	return res
}

type Position struct {
	Index, X, Y int
}

// Positions enumerates every cell in row-major order. The grid is
// immutable, so the sequence can be re-created at no cost.
func (g Grid) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for idx := range g.Len() {
			p := g.ToPoint(idx)
			if !yield(Position{Index: idx, X: p.X, Y: p.Y}) {
				return
			}
		}
	}
}

func (g Grid) Indices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for idx := range g.Len() {
			if !yield(idx) {
				return
			}
		}
	}
}
