package riichi

// WinContext carries everything an external yaku evaluator needs to judge a
// completed hand, with no reference back into the engine.
type WinContext struct {
	WinningTile Tile
	IsTsumo     bool
	IsRon       bool

	SeatWind  Wind
	RoundWind Wind

	IsRiichi       bool
	IsDoubleRiichi bool
	IsIppatsu      bool
	IsRinshan      bool
	IsChankan      bool
	IsHaitei       bool
	IsHoutei       bool

	DoraCount    int
	UraDoraCount int
	RedFiveCount int
}

// YakuResult is one scored pattern name with its han value. Yakuman patterns
// report Yakuman > 0 and Han 0.
type YakuResult struct {
	Name    string
	Han     int
	Yakuman int
}

// Evaluator is the pluggable yaku catalog. The engine hands it each
// decomposition of a winning hand with the win context and takes the best
// scoring result; it never inspects pattern names except for the few that
// change fu or liability.
type Evaluator interface {
	Evaluate(combs []Combination, hand *Hand, ctx *WinContext) []YakuResult
}

// Pattern names the scorer and the liability rules key on. An evaluator must
// use these exact strings for the patterns they denote.
const (
	YakuChiitoitsu = "chiitoitsu"
	YakuPinfu      = "pinfu"
	YakuDaisangen  = "daisangen"
	YakuDaisuushi  = "daisuushi"
)

func totalHan(results []YakuResult) (han int, yakuman int) {
	for _, r := range results {
		han += r.Han
		yakuman += r.Yakuman
	}
	return
}

func hasYaku(results []YakuResult, name string) bool {
	for _, r := range results {
		if r.Name == name {
			return true
		}
	}
	return false
}
