package main // import "github.com/lighthouses-aicup/go-bot"

import (
	"sync"
)

// TurnRecord keeps one answered turn for post-game inspection.
type TurnRecord struct {
	Turn   NewTurn
	Action NewAction
}

// Tracker is the bot's view of the world. Every Turn call overwrites the
// current snapshot wholesale; lighthouses seen on earlier turns are kept
// last-seen-wins so the world model outlives the fog of war.
type Tracker struct {
	mu sync.Mutex

	playerID    int
	playerCount int
	board       *Board
	initialized bool

	lastPosition Position
	turnCount    int
	lighthouses  map[Position]Lighthouse
	history      []TurnRecord
}

// Snapshot is the immutable input of one decision. It shares no memory with
// the request that produced it.
type Snapshot struct {
	PlayerID     int
	Turn         NewTurn
	Board        *Board
	Lighthouses  map[Position]Lighthouse
	LastPosition Position
	TurnCount    int
}

func NewTracker() *Tracker {
	return &Tracker{lighthouses: map[Position]Lighthouse{}}
}

func (t *Tracker) SetPlayerID(id int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.playerID = id
}

func (t *Tracker) PlayerID() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.playerID
}

func (t *Tracker) Initialized() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.initialized
}

// Seed installs the engine's initial state: board, starting position and the
// first lighthouse snapshot.
func (t *Tracker) Seed(init NewPlayerInitialState) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.playerID = init.PlayerID
	t.playerCount = init.PlayerCount
	t.board = NewBoard(init.Map)
	t.lastPosition = init.Position
	for _, lh := range init.Lighthouses {
		t.lighthouses[lh.Position] = lh.clone()
	}
	t.initialized = true
}

// Observe merges one turn into the tracker and returns the decision input.
// Lighthouses outside the current view keep their last known state.
func (t *Tracker) Observe(turn NewTurn) *Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	turn = turn.clone()
	t.turnCount++
	for _, lh := range turn.Lighthouses {
		t.lighthouses[lh.Position] = lh
	}

	known := make(map[Position]Lighthouse, len(t.lighthouses))
	for pos, lh := range t.lighthouses {
		known[pos] = lh.clone()
	}
	snap := &Snapshot{
		PlayerID:     t.playerID,
		Turn:         turn,
		Board:        t.board,
		Lighthouses:  known,
		LastPosition: t.lastPosition,
		TurnCount:    t.turnCount,
	}
	t.lastPosition = turn.Position
	return snap
}

// Record appends the answered turn to the history.
func (t *Tracker) Record(turn NewTurn, action NewAction) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.history = append(t.history, TurnRecord{Turn: turn.clone(), Action: action})
}

func (t *Tracker) History() []TurnRecord {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]TurnRecord(nil), t.history...)
}
