package riichi

// MultiRonPolicy decides what happens when more than one seat can ron the
// same discard.
type MultiRonPolicy int

const (
	// HeadBumpOnly awards only the seat closest in turn order after the
	// discarder.
	HeadBumpOnly MultiRonPolicy = iota
	// DoubleRonAllowed pays up to two winners; three callers abort the hand.
	DoubleRonAllowed
	// TripleRonAllowed pays every caller.
	TripleRonAllowed
)

// RuleConfig is the fixed table rule set for one game. The zero value is not
// usable; start from DefaultRuleConfig.
type RuleConfig struct {
	StartPoints   int64
	RiichiBet     int64
	NotenPenalty  int64
	MultiRon      MultiRonPolicy
	KiriageMangan bool
	// Tobi ends the game as soon as any seat drops below zero.
	Tobi bool
	// AgariYame lets the dealer end the game by winning the last hand while
	// in first place.
	AgariYame bool
	// WestExtension plays into the west round when nobody has reached
	// TargetPoints by the end of south.
	WestExtension bool
	TargetPoints  int64
	// NagashiMangan pays mangan at exhaustion to a seat whose discards are
	// all untouched terminals and honors.
	NagashiMangan bool
	// SuuchaRiichi aborts the hand when all four seats declare riichi.
	SuuchaRiichi bool
	KyuushuDraw  bool
}

func DefaultRuleConfig() *RuleConfig {
	return &RuleConfig{
		StartPoints:   25000,
		RiichiBet:     1000,
		NotenPenalty:  3000,
		MultiRon:      DoubleRonAllowed,
		KiriageMangan: false,
		Tobi:          true,
		AgariYame:     true,
		WestExtension: true,
		TargetPoints:  30000,
		NagashiMangan: true,
		SuuchaRiichi:  true,
		KyuushuDraw:   true,
	}
}
