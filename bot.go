package main // import "github.com/lighthouses-aicup/go-bot"

import (
	"math/rand"
)

var (
	DistanceScorePenalty    = 2
	CornerScoreBump         = 100
	EdgeScoreBump           = 30
	CenterScoreBump         = 20
	UnownedScoreBump        = 50
	EnemyOwnedScoreBump     = 30
	OwnedScoreBump          = 10
	WinnableEnergyDivisor   = 10
	UnwinnableEnergyDivisor = 5
	ConnectCornerPairBump   = 100.0
	ConnectSingleCornerBump = 25.0
	EnergyReserve           = 50
)

// Decide maps one turn snapshot to an action. It never fails: whenever no
// better option is computable the answer degrades to PASS on the spot.
func Decide(s *Snapshot, rng *rand.Rand) NewAction {
	cur := s.Turn.Position

	if lh, standing := s.Lighthouses[cur]; standing {
		if s.PlayerID != 0 && lh.Owner == s.PlayerID {
			if dest, ok := s.ConnectTarget(rng); ok {
				return NewAction{Action: CONNECT, Destination: dest}
			}
		}
		// Attacking our own lighthouse recharges it.
		if s.Turn.Energy > lh.Energy {
			return NewAction{
				Action:      ATTACK,
				Energy:      attackEnergy(s.Turn.Energy, lh.Energy),
				Destination: cur,
			}
		}
		return passAction(cur)
	}

	if t, ok := s.PickLighthouse(); ok {
		if next, ok := s.Board.NextStepToward(cur, t.Lighthouse.Position); ok && next != s.LastPosition {
			return NewAction{Action: MOVE, Destination: next}
		}
		// Path blocked or would backtrack, fall back to the greedy step.
		for _, m := range s.RankedMoves(t.Lighthouse.Position) {
			if m.Target != s.LastPosition {
				return NewAction{Action: MOVE, Destination: m.Target}
			}
		}
	}

	if moves := s.CandidateMoves(); len(moves) > 0 {
		return NewAction{Action: MOVE, Destination: moves[rng.Intn(len(moves))].Target}
	}
	return passAction(cur)
}

// attackEnergy picks how much energy to sink into the lighthouse under the
// bot: always enough to flip it, more when we can spare it.
func attackEnergy(available, lighthouse int) int {
	need := lighthouse + 1
	energy := need
	switch ratio := float64(available) / float64(maxInt(need, 1)); {
	case ratio >= 3.0:
		energy = minInt(need+lighthouse/2, available/2)
	case ratio >= 2.0:
		energy = minInt(need+lighthouse/4, maxInt(available-EnergyReserve, need))
	}
	if energy > available {
		energy = available
	}
	if energy < 0 {
		energy = 0
	}
	return energy
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
