package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedInitialState(t *testing.T) {
	tracker := NewTracker()
	tracker.Seed(NewPlayerInitialState{
		PlayerID:    1,
		PlayerCount: 2,
		Position:    Position{X: 1, Y: 1},
		Map:         openRows(3, 3),
		Lighthouses: []Lighthouse{{Position: Position{X: 2, Y: 2}}},
	})
	require.True(t, tracker.Initialized())
	assert.Equal(t, 1, tracker.PlayerID())

	snap := tracker.Observe(NewTurn{Position: Position{X: 1, Y: 1}, Energy: 5})
	require.NotNil(t, snap.Board)
	assert.Equal(t, 3, snap.Board.Width)
	assert.Equal(t, 1, snap.PlayerID)
	assert.Equal(t, 1, snap.TurnCount)
	assert.Contains(t, snap.Lighthouses, Position{X: 2, Y: 2})
	assert.Equal(t, Position{X: 1, Y: 1}, snap.LastPosition)
}

func TestLighthouseMemoryLastSeenWins(t *testing.T) {
	tracker := NewTracker()
	tracker.Seed(NewPlayerInitialState{PlayerID: 1, Map: openRows(3, 3)})

	a := Position{X: 0, Y: 0}
	b := Position{X: 2, Y: 2}
	tracker.Observe(NewTurn{Lighthouses: []Lighthouse{
		{Position: a, Owner: 0, Energy: 10},
		{Position: b, Owner: 1, Energy: 20},
	}})

	// Lighthouse b drops out of view, a changes hands.
	snap := tracker.Observe(NewTurn{Lighthouses: []Lighthouse{
		{Position: a, Owner: 2, Energy: 42},
	}})

	require.Len(t, snap.Lighthouses, 2)
	assert.Equal(t, 2, snap.Lighthouses[a].Owner)
	assert.Equal(t, 42, snap.Lighthouses[a].Energy)
	assert.Equal(t, 1, snap.Lighthouses[b].Owner)
	assert.Equal(t, 20, snap.Lighthouses[b].Energy)
}

func TestSnapshotSharesNoRequestMemory(t *testing.T) {
	tracker := NewTracker()
	tracker.Seed(NewPlayerInitialState{PlayerID: 1, Map: openRows(3, 3)})

	turn := NewTurn{
		View: []MapRow{{Row: []int{1, 1, 1}}},
		Lighthouses: []Lighthouse{{
			Position:    Position{X: 1, Y: 1},
			Connections: []Position{{X: 0, Y: 0}},
		}},
	}
	snap := tracker.Observe(turn)

	// Mutating the request after the call must not bleed into the snapshot.
	turn.View[0].Row[0] = 9
	turn.Lighthouses[0].Owner = 9
	turn.Lighthouses[0].Connections[0] = Position{X: 2, Y: 2}

	assert.Equal(t, 1, snap.Turn.View[0].Row[0])
	lh := snap.Lighthouses[Position{X: 1, Y: 1}]
	assert.Equal(t, 0, lh.Owner)
	assert.Equal(t, Position{X: 0, Y: 0}, lh.Connections[0])
}

func TestLastPositionTracksPreviousTurn(t *testing.T) {
	tracker := NewTracker()
	tracker.Seed(NewPlayerInitialState{PlayerID: 1, Position: Position{X: 0, Y: 0}, Map: openRows(3, 3)})

	first := tracker.Observe(NewTurn{Position: Position{X: 1, Y: 0}})
	assert.Equal(t, Position{X: 0, Y: 0}, first.LastPosition)

	second := tracker.Observe(NewTurn{Position: Position{X: 2, Y: 0}})
	assert.Equal(t, Position{X: 1, Y: 0}, second.LastPosition)
}

func TestHistoryRecordsAnsweredTurns(t *testing.T) {
	tracker := NewTracker()
	tracker.Record(NewTurn{Energy: 3}, NewAction{Action: MOVE, Destination: Position{X: 1}})
	tracker.Record(NewTurn{Energy: 4}, passAction(Position{}))

	history := tracker.History()
	require.Len(t, history, 2)
	assert.Equal(t, MOVE, history[0].Action.Action)
	assert.Equal(t, PASS, history[1].Action.Action)
}
