package main // import "github.com/lighthouses-aicup/go-bot"

import (
	"github.com/nickdavies/go-astar/astar"
)

// Board is the static playable grid delivered with the initial state.
// grid[y][x] == 0 means the cell cannot be entered.
type Board struct {
	Width  int
	Height int

	grid [][]int
}

func NewBoard(rows []MapRow) *Board {
	b := &Board{Height: len(rows)}
	for _, r := range rows {
		if len(r.Row) > b.Width {
			b.Width = len(r.Row)
		}
	}
	b.grid = make([][]int, b.Height)
	for y, r := range rows {
		b.grid[y] = make([]int, b.Width)
		copy(b.grid[y], r.Row)
	}
	return b
}

func (b *Board) Inside(p Position) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

func (b *Board) Playable(p Position) bool {
	return b.Inside(p) && b.grid[p.Y][p.X] != 0
}

func (b *Board) Corners() []Position {
	return []Position{
		{0, 0},
		{b.Width - 1, 0},
		{0, b.Height - 1},
		{b.Width - 1, b.Height - 1},
	}
}

func (b *Board) Edge(p Position) bool {
	return p.X == 0 || p.X == b.Width-1 || p.Y == 0 || p.Y == b.Height-1
}

// Center is the middle patch of the board, scaled from the stock 15x15 map
// where columns 6..8 count as central.
func (b *Board) Center(p Position) bool {
	return absInt(p.X-b.Width/2) <= b.Width/10 && absInt(p.Y-b.Height/2) <= b.Height/10
}

// NextStepToward resolves a path to the target across playable cells and
// returns the first step. Reports false when from/to are outside the grid or
// no path exists.
func (b *Board) NextStepToward(from, to Position) (Position, bool) {
	if b.Width == 0 || b.Height == 0 || !b.Playable(to) || !b.Inside(from) || from == to {
		return from, false
	}
	a := astar.NewAStar(b.Height, b.Width)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.grid[y][x] == 0 {
				a.FillTile(astar.Point{Row: y, Col: x}, -1)
			}
		}
	}
	source := []astar.Point{{Row: from.Y, Col: from.X}}
	target := []astar.Point{{Row: to.Y, Col: to.X}}
	path := a.FindPath(astar.NewPointToPoint(), source, target)

	cells := []Position{}
	for p := path; p != nil; p = p.Parent {
		cells = append(cells, Position{X: p.Col, Y: p.Row})
	}
	if len(cells) == 0 {
		return from, false
	}
	// The path may be linked from either end and may omit the source cell.
	head, tail := cells[0], cells[len(cells)-1]
	switch {
	case head == from && len(cells) > 1:
		return cells[1], true
	case tail == from && len(cells) > 1:
		return cells[len(cells)-2], true
	case chebyshev(tail, from) == 1:
		return tail, true
	case chebyshev(head, from) == 1:
		return head, true
	}
	return from, false
}

func chebyshev(a, b Position) int {
	return maxInt(absInt(a.X-b.X), absInt(a.Y-b.Y))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
