package main // import "github.com/lighthouses-aicup/go-bot"

import (
	"sort"

	"github.com/joonazan/vec2"
)

var Moves = []vec2.Vector{
	{X: -1, Y: -1}, {X: -1, Y: 0}, {X: -1, Y: 1},
	{X: 0, Y: -1}, {X: 0, Y: 1},
	{X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1},
}

type Movement struct {
	Target    Position
	Magnitude float64
}

type Movements []*Movement

func (p Movements) Len() int           { return len(p) }
func (p Movements) Less(i, j int) bool { return p[i].Magnitude < p[j].Magnitude }
func (p Movements) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }

func (p Position) vec() vec2.Vector {
	return vec2.Vector{X: float64(p.X), Y: float64(p.Y)}
}

// CandidateMoves lists the playable cells one step away from the current
// position. Empty without a seeded board.
func (s *Snapshot) CandidateMoves() Movements {
	if s.Board == nil {
		return nil
	}
	moves := Movements{}
	for _, dir := range Moves {
		next := Position{X: s.Turn.Position.X + int(dir.X), Y: s.Turn.Position.Y + int(dir.Y)}
		if !s.Board.Playable(next) {
			continue
		}
		moves = append(moves, &Movement{Target: next})
	}
	return moves
}

// RankedMoves sorts the candidate moves by straight-line distance to goal,
// closest first.
func (s *Snapshot) RankedMoves(goal Position) Movements {
	moves := s.CandidateMoves()
	g := goal.vec()
	for _, m := range moves {
		m.Magnitude = m.Target.vec().Minus(g).Length()
	}
	sort.Sort(moves)
	return moves
}
