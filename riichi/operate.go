package riichi

// ActionType is the closed set of player moves the engine dispatches on.
type ActionType int

const (
	ActionDiscard ActionType = iota
	ActionChi
	ActionPon
	ActionOpenKan
	ActionAnkan
	ActionAddedKan
	ActionRiichi
	ActionTsumo
	ActionRon
	ActionPass
	ActionKyuushu
)

var actionNames = map[ActionType]string{
	ActionDiscard:  "discard",
	ActionChi:      "chi",
	ActionPon:      "pon",
	ActionOpenKan:  "kan",
	ActionAnkan:    "ankan",
	ActionAddedKan: "added_kan",
	ActionRiichi:   "riichi",
	ActionTsumo:    "tsumo",
	ActionRon:      "ron",
	ActionPass:     "pass",
	ActionKyuushu:  "kyuushu",
}

func (a ActionType) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Operates is the bitmask of actions currently open to one seat.
type Operates struct {
	value int32
}

func (o *Operates) Add(a ActionType) {
	o.value |= 1 << uint(a)
}

func (o Operates) Has(a ActionType) bool {
	return o.value&(1<<uint(a)) != 0
}

func (o Operates) Empty() bool {
	return o.value == 0
}

func (o *Operates) Clear() {
	o.value = 0
}

// Action is one submitted move. Tile and Option are read only where the type
// calls for them: the discard tile, the chi sequence start, or the kan kind.
type Action struct {
	Seat   int32
	Type   ActionType
	Tile   Tile
	Option Tile
}
