package main // import "github.com/lighthouses-aicup/go-bot"

import (
	"math"
	"math/rand"
	"sort"
)

type Target struct {
	Lighthouse Lighthouse
	Distance   int
	Score      int
}

type Targets []*Target

func (p Targets) Len() int { return len(p) }
func (p Targets) Less(i, j int) bool {
	if p[i].Score != p[j].Score {
		return p[i].Score > p[j].Score
	}
	// Deterministic tie break, the lighthouse map iterates in random order.
	a, b := p[i].Lighthouse.Position, p[j].Lighthouse.Position
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}
func (p Targets) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

// PickLighthouse ranks every known lighthouse and returns the most promising
// one: close, well placed on the board, and winnable with current energy.
func (s *Snapshot) PickLighthouse() (*Target, bool) {
	if s.Board == nil || len(s.Lighthouses) == 0 {
		return nil, false
	}
	cur := s.Turn.Position
	targets := Targets{}
	for _, lh := range s.Lighthouses {
		t := &Target{
			Lighthouse: lh,
			Distance:   absInt(cur.X-lh.Position.X) + absInt(cur.Y-lh.Position.Y),
		}
		t.Score -= t.Distance * DistanceScorePenalty
		switch {
		case isCorner(s.Board, lh.Position):
			t.Score += CornerScoreBump
		case s.Board.Edge(lh.Position):
			t.Score += EdgeScoreBump
		case s.Board.Center(lh.Position):
			t.Score += CenterScoreBump
		}
		switch {
		case lh.Owner == 0:
			t.Score += UnownedScoreBump
		case lh.Owner != s.PlayerID:
			t.Score += EnemyOwnedScoreBump
		default:
			t.Score += OwnedScoreBump
		}
		if lh.Owner != s.PlayerID {
			if s.Turn.Energy > lh.Energy {
				t.Score += (s.Turn.Energy - lh.Energy) / WinnableEnergyDivisor
			} else {
				t.Score -= (lh.Energy - s.Turn.Energy) / UnwinnableEnergyDivisor
			}
		}
		targets = append(targets, t)
	}
	sort.Sort(targets)
	return targets[0], true
}

// ConnectTarget picks a lighthouse to link with from the one the bot stands
// on: we must hold its key, own both ends and the link must not exist yet.
// Among the valid ones it prefers the link closing the largest triangle.
func (s *Snapshot) ConnectTarget(rng *rand.Rand) (Position, bool) {
	cur := s.Turn.Position
	owned := []Lighthouse{}
	possible := []Position{}
	for _, lh := range s.Lighthouses {
		if lh.Owner == s.PlayerID {
			owned = append(owned, lh)
		}
		if lh.Position != cur && lh.HaveKey && lh.Owner == s.PlayerID && !lh.ConnectedTo(cur) {
			possible = append(possible, lh.Position)
		}
	}
	if len(possible) == 0 {
		return Position{}, false
	}
	corners := []Position{}
	if s.Board != nil {
		corners = s.Board.Corners()
	}
	if best, ok := bestConnection(cur, owned, corners); ok && containsPosition(possible, best) {
		return best, true
	}
	sort.Slice(possible, func(i, j int) bool {
		if possible[i].Y != possible[j].Y {
			return possible[i].Y < possible[j].Y
		}
		return possible[i].X < possible[j].X
	})
	return possible[rng.Intn(len(possible))], true
}

func bestConnection(cur Position, owned []Lighthouse, corners []Position) (Position, bool) {
	if len(owned) < 2 {
		return Position{}, false
	}
	var best Position
	found := false
	maxArea := 0.0
	for _, target := range owned {
		if target.Position == cur {
			continue
		}
		for _, third := range owned {
			if third.Position == cur || third.Position == target.Position {
				continue
			}
			area := triangleArea(cur, target.Position, third.Position)
			switch {
			case containsPosition(corners, target.Position) && containsPosition(corners, third.Position):
				area += ConnectCornerPairBump
			case containsPosition(corners, target.Position) || containsPosition(corners, third.Position):
				area += ConnectSingleCornerBump
			}
			if area > maxArea {
				maxArea = area
				best = target.Position
				found = true
			}
		}
	}
	return best, found
}

// Shoelace formula.
func triangleArea(p1, p2, p3 Position) float64 {
	return math.Abs(float64(p1.X*(p2.Y-p3.Y)+p2.X*(p3.Y-p1.Y)+p3.X*(p1.Y-p2.Y))) / 2.0
}

func isCorner(b *Board, p Position) bool {
	return containsPosition(b.Corners(), p)
}

func containsPosition(list []Position, p Position) bool {
	for _, c := range list {
		if c == p {
			return true
		}
	}
	return false
}
