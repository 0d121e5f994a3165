package main // import "github.com/lighthouses-aicup/go-bot"

// Wire schema shared with the game engine. Field names follow the engine's
// message definitions and must not be renamed; unknown fields sent by newer
// engines are ignored on decode.

// Action ordinals are part of the wire contract.
type Action int

const (
	PASS Action = iota
	MOVE
	ATTACK
	CONNECT
)

func (a Action) String() string {
	switch a {
	case PASS:
		return "PASS"
	case MOVE:
		return "MOVE"
	case ATTACK:
		return "ATTACK"
	case CONNECT:
		return "CONNECT"
	}
	return "UNKNOWN"
}

func (a Action) Valid() bool {
	return a >= PASS && a <= CONNECT
}

type Position struct {
	X int `json:"X"`
	Y int `json:"Y"`
}

// One row of the playable grid, 0 = not playable.
type MapRow struct {
	Row []int `json:"Row"`
}

type Lighthouse struct {
	Position    Position   `json:"Position"`
	Owner       int        `json:"Owner"`
	Energy      int        `json:"Energy"`
	Connections []Position `json:"Connections"`
	HaveKey     bool       `json:"HaveKey"`
}

func (l Lighthouse) ConnectedTo(p Position) bool {
	for _, c := range l.Connections {
		if c == p {
			return true
		}
	}
	return false
}

func (l Lighthouse) clone() Lighthouse {
	out := l
	out.Connections = append([]Position(nil), l.Connections...)
	return out
}

type NewPlayer struct {
	Name          string `json:"name"`
	ServerAddress string `json:"serverAddress"`
}

type PlayerID struct {
	PlayerID int `json:"PlayerID"`
}

type NewPlayerInitialState struct {
	PlayerID    int          `json:"PlayerID"`
	PlayerCount int          `json:"PlayerCount"`
	Position    Position     `json:"Position"`
	Map         []MapRow     `json:"Map"`
	Lighthouses []Lighthouse `json:"Lighthouses"`
}

type PlayerReady struct {
	Ready bool `json:"Ready"`
}

type NewTurn struct {
	Position    Position     `json:"Position"`
	Score       int          `json:"Score"`
	Energy      int          `json:"Energy"`
	View        []MapRow     `json:"View"`
	Lighthouses []Lighthouse `json:"Lighthouses"`
}

func (t NewTurn) clone() NewTurn {
	out := t
	out.View = make([]MapRow, len(t.View))
	for i, r := range t.View {
		out.View[i] = MapRow{Row: append([]int(nil), r.Row...)}
	}
	out.Lighthouses = make([]Lighthouse, len(t.Lighthouses))
	for i, lh := range t.Lighthouses {
		out.Lighthouses[i] = lh.clone()
	}
	return out
}

type NewAction struct {
	Action      Action   `json:"Action"`
	Energy      int      `json:"Energy"`
	Destination Position `json:"Destination"`
}

func passAction(at Position) NewAction {
	return NewAction{Action: PASS, Destination: at}
}
