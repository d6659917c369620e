// Package physics implements collision detection, wall handling and the
// energy-transfer resolver. Functions here mutate bubble velocities and
// flags but never the collection itself; structural changes (spawn,
// destroy) are queued and applied by the world.
package physics

import (
	"sort"

	"github.com/lixenwraith/bubble-fighter/core"
	"github.com/lixenwraith/bubble-fighter/vmath"
)

// Pair is an unordered colliding pair reported as indices into the live
// collection with A < B. Pairs are transient; they are recomputed every
// tick and never stored.
type Pair struct {
	A, B int
}

// DetectPairs runs the exact O(n^2) pairwise overlap test: two bubbles
// collide when the distance between centers is less than the sum of
// radii. Dead bubbles are skipped. The result is in ascending (A, B)
// order by construction.
func DetectPairs(bubbles []*core.Bubble) []Pair {
	var pairs []Pair
	for i := 0; i < len(bubbles); i++ {
		a := bubbles[i]
		if !a.Alive {
			continue
		}
		for j := i + 1; j < len(bubbles); j++ {
			b := bubbles[j]
			if !b.Alive {
				continue
			}
			sum := a.Radius + b.Radius
			if vmath.DistanceSq(a.X, a.Y, b.X, b.Y) < sum*sum {
				pairs = append(pairs, Pair{A: i, B: j})
			}
		}
	}
	return pairs
}

// Grid is a uniform broad phase over the world rectangle. Cell size must
// be at least twice the largest radius so any overlapping pair lands in
// the same or an adjacent cell. It reports exactly the pair set of
// DetectPairs, in the same ascending order.
type Grid struct {
	cellSize float64
	cols     int
	rows     int
	cells    [][]int
}

// NewGrid builds a broad phase for a width x height world. cellSize is
// typically 2*maxRadius.
func NewGrid(width, height, cellSize float64) *Grid {
	if cellSize < vmath.Epsilon {
		cellSize = vmath.Epsilon
	}
	cols := int(width / cellSize)
	rows := int(height / cellSize)
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Grid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    make([][]int, cols*rows),
	}
}

func (g *Grid) cellIndex(x, y float64) int {
	col := int(x / g.cellSize)
	row := int(y / g.cellSize)
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}
	return row*g.cols + col
}

// DetectPairs inserts live bubbles by center cell, then tests candidates
// within each cell and its forward neighbours so every unordered pair is
// examined exactly once. Results are sorted into ascending (A, B) order
// to keep resolution deterministic regardless of bucketing.
func (g *Grid) DetectPairs(bubbles []*core.Bubble) []Pair {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
	for i, b := range bubbles {
		if !b.Alive {
			continue
		}
		idx := g.cellIndex(b.X, b.Y)
		g.cells[idx] = append(g.cells[idx], i)
	}

	// Forward neighbours: E, SW, S, SE. Together with the cell itself
	// this covers each adjacent cell pair once.
	offsets := [4][2]int{{1, 0}, {-1, 1}, {0, 1}, {1, 1}}

	var pairs []Pair
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			cell := g.cells[row*g.cols+col]
			if len(cell) == 0 {
				continue
			}
			for k := 0; k < len(cell); k++ {
				for l := k + 1; l < len(cell); l++ {
					pairs = appendOverlap(pairs, bubbles, cell[k], cell[l])
				}
			}
			for _, off := range offsets {
				nc, nr := col+off[0], row+off[1]
				if nc < 0 || nc >= g.cols || nr < 0 || nr >= g.rows {
					continue
				}
				other := g.cells[nr*g.cols+nc]
				for _, i := range cell {
					for _, j := range other {
						pairs = appendOverlap(pairs, bubbles, i, j)
					}
				}
			}
		}
	}

	sort.Slice(pairs, func(x, y int) bool {
		if pairs[x].A != pairs[y].A {
			return pairs[x].A < pairs[y].A
		}
		return pairs[x].B < pairs[y].B
	})
	return pairs
}

func appendOverlap(pairs []Pair, bubbles []*core.Bubble, i, j int) []Pair {
	if j < i {
		i, j = j, i
	}
	a, b := bubbles[i], bubbles[j]
	sum := a.Radius + b.Radius
	if vmath.DistanceSq(a.X, a.Y, b.X, b.Y) < sum*sum {
		return append(pairs, Pair{A: i, B: j})
	}
	return pairs
}
