package riichi

type Wind int

const (
	WindEast Wind = iota
	WindSouth
	WindWest
	WindNorth
)

var windNames = [...]string{"east", "south", "west", "north"}

func (w Wind) String() string {
	if w < WindEast || w > WindNorth {
		return "unknown"
	}
	return windNames[w]
}

// Tile returns the wind's tile kind, used for yakuhai pair fu and the
// four-winds abort check.
func (w Wind) Tile() Tile {
	return MakeTile(ColorWind, int(w))
}

const SeatCount = 4

// GameState tracks the match-level ledger across hands: points, dealer seat,
// round wind, honba and riichi sticks carried on the table.
type GameState struct {
	rule *RuleConfig

	Scores      [SeatCount]int64
	Dealer      int32
	RoundWind   Wind
	HandNumber  int32 // 1-based within the round
	Honba       int32
	RiichiStick int32
}

func NewGameState(rule *RuleConfig) *GameState {
	g := &GameState{rule: rule, RoundWind: WindEast, HandNumber: 1}
	for i := range g.Scores {
		g.Scores[i] = rule.StartPoints
	}
	return g
}

// SeatWind is the seat's own wind for the current hand, rotating with the
// dealer.
func (g *GameState) SeatWind(seat int32) Wind {
	return Wind((seat - g.Dealer + SeatCount) % SeatCount)
}

func (g *GameState) Apply(deltas [SeatCount]int64) {
	for i, d := range deltas {
		g.Scores[i] += d
	}
}

// CollectRiichiBet moves one riichi bet from the seat onto the table.
func (g *GameState) CollectRiichiBet(seat int32) {
	g.Scores[seat] -= g.rule.RiichiBet
	g.RiichiStick++
}

// TakeRiichiSticks pays all carried riichi bets to the winner and clears the
// table.
func (g *GameState) TakeRiichiSticks(seat int32) {
	g.Scores[seat] += int64(g.RiichiStick) * g.rule.RiichiBet
	g.RiichiStick = 0
}

func (g *GameState) IsBusted() bool {
	if !g.rule.Tobi {
		return false
	}
	for _, s := range g.Scores {
		if s < 0 {
			return true
		}
	}
	return false
}

func (g *GameState) leader() int32 {
	best := int32(0)
	for i := int32(1); i < SeatCount; i++ {
		if g.Scores[i] > g.Scores[best] {
			best = i
		}
	}
	return best
}

// NextHand advances the match after a hand ends. dealerWon keeps the dealer
// and adds a honba; a drawn hand adds a honba regardless and keeps the dealer
// only when dealerTenpai. Returns false when the game is over.
func (g *GameState) NextHand(dealerWon, dealerTenpai, wasDraw bool) bool {
	if g.IsBusted() {
		return false
	}

	dealerKeeps := dealerWon || (wasDraw && dealerTenpai)
	if dealerKeeps {
		g.Honba++
	} else {
		if wasDraw {
			g.Honba++
		} else {
			g.Honba = 0
		}
	}

	lastHand := g.isFinalHand()
	if lastHand && dealerKeeps {
		if g.rule.AgariYame && dealerWon && g.leader() == g.Dealer {
			return false
		}
		return true
	}
	if !dealerKeeps {
		if lastHand {
			return false
		}
		g.Dealer = GetNextSeat(g.Dealer)
		g.HandNumber++
		if g.HandNumber > SeatCount {
			g.HandNumber = 1
			g.RoundWind++
		}
	}
	return true
}

// isFinalHand reports whether the current hand is the scheduled last one:
// south 4 normally, extended through west 4 when nobody has reached the
// target.
func (g *GameState) isFinalHand() bool {
	if g.RoundWind == WindWest {
		if g.HandNumber == SeatCount {
			return true
		}
		return g.anyReached()
	}
	if g.RoundWind != WindSouth || g.HandNumber != SeatCount {
		return false
	}
	if g.rule.WestExtension && !g.anyReached() {
		return false
	}
	return true
}

func (g *GameState) anyReached() bool {
	for _, s := range g.Scores {
		if s >= g.rule.TargetPoints {
			return true
		}
	}
	return false
}
