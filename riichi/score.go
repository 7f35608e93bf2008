package riichi

// Score is the full valuation of one winning hand reading.
type Score struct {
	Fu      int
	Han     int
	Yakuman int
	Tier    string
	Base    int64
	Yaku    []YakuResult
}

const (
	TierNone        = ""
	TierMangan      = "mangan"
	TierHaneman     = "haneman"
	TierBaiman      = "baiman"
	TierSanbaiman   = "sanbaiman"
	TierYakuman     = "yakuman"
	baseFu          = 20
	chiitoitsuFu    = 25
	manganBase      = 2000
	yakumanBase     = 8000
	kazoeYakumanHan = 13
)

// CalcScore values one decomposition under the given win context and yaku
// list. Dora han are added on top of the evaluator's result.
func CalcScore(combs []Combination, ctx *WinContext, yaku []YakuResult, kiriage bool) Score {
	han, yakuman := totalHan(yaku)
	han += ctx.DoraCount + ctx.UraDoraCount + ctx.RedFiveCount

	s := Score{
		Fu:      calcFu(combs, ctx, yaku),
		Han:     han,
		Yakuman: yakuman,
		Yaku:    yaku,
	}
	s.Base, s.Tier = basePoints(s.Fu, s.Han, s.Yakuman, kiriage)
	return s
}

// BestScore picks the highest valuation over every decomposition, breaking
// ties by han then fu.
func BestScore(hand *Hand, ctx *WinContext, ev Evaluator, kiriage bool) (Score, bool) {
	var best Score
	found := false
	for _, combs := range hand.Decompose() {
		yaku := ev.Evaluate(combs, hand, ctx)
		if len(yaku) == 0 {
			continue
		}
		s := CalcScore(combs, ctx, yaku, kiriage)
		if !found || betterScore(s, best) {
			best = s
			found = true
		}
	}
	return best, found
}

func betterScore(a, b Score) bool {
	if a.Base != b.Base {
		return a.Base > b.Base
	}
	if a.Yakuman != b.Yakuman {
		return a.Yakuman > b.Yakuman
	}
	if a.Han != b.Han {
		return a.Han > b.Han
	}
	return a.Fu > b.Fu
}

// calcFu follows the standard table: 20 base, closed-ron 10, tsumo 2, set fu
// doubled for concealed and again for terminals or honors, yakuhai pair 2,
// closed-wait 2, rounded up to ten. Seven pairs is a flat 25; pinfu is a flat
// 30 on tsumo and 20 on ron.
func calcFu(combs []Combination, ctx *WinContext, yaku []YakuResult) int {
	if hasYaku(yaku, YakuChiitoitsu) {
		return chiitoitsuFu
	}
	if hasYaku(yaku, YakuPinfu) {
		if ctx.IsTsumo {
			return 30
		}
		return 20
	}

	fu := baseFu
	closedHand := true
	for _, c := range combs {
		if c.Open {
			closedHand = false
		}
	}
	if ctx.IsRon && closedHand {
		fu += 10
	}
	if ctx.IsTsumo {
		fu += 2
	}

	for _, c := range combs {
		fu += setFu(c)
	}
	fu += pairFu(combs, ctx)
	fu += waitFu(combs, ctx.WinningTile)

	return (fu + 9) / 10 * 10
}

func setFu(c Combination) int {
	var base int
	switch c.Type {
	case CombinationTriplet:
		base = 2
	case CombinationKan:
		base = 8
	default:
		return 0
	}
	if !c.Open {
		base *= 2
	}
	if c.First().IsOrphan() {
		base *= 2
	}
	return base
}

func pairFu(combs []Combination, ctx *WinContext) int {
	for _, c := range combs {
		if c.Type != CombinationPair {
			continue
		}
		kind := c.First()
		fu := 0
		if kind.IsDragon() {
			fu = 2
		}
		if kind == ctx.SeatWind.Tile() {
			fu += 2
		}
		if kind == ctx.RoundWind.Tile() {
			fu += 2
		}
		return fu
	}
	return 0
}

// waitFu awards 2 for a pair, middle or edge wait. When the winning tile
// completes several groups the scoring reading takes the bonus if any
// placement earns it.
func waitFu(combs []Combination, winning Tile) int {
	kind := winning.Kind()
	for _, c := range combs {
		if c.Open || !c.Contains(kind) {
			continue
		}
		switch c.Type {
		case CombinationPair:
			return 2
		case CombinationSequence:
			low := c.First().Point()
			switch kind.Point() {
			case low + 1:
				return 2
			case low + 2:
				if low == 0 {
					return 2
				}
			case low:
				if low == 6 {
					return 2
				}
			}
		}
	}
	return 0
}

func basePoints(fu, han, yakuman int, kiriage bool) (int64, string) {
	if yakuman > 0 {
		return int64(yakuman) * yakumanBase, TierYakuman
	}
	switch {
	case han >= kazoeYakumanHan:
		return yakumanBase, TierYakuman
	case han >= 11:
		return 6000, TierSanbaiman
	case han >= 8:
		return 4000, TierBaiman
	case han >= 6:
		return 3000, TierHaneman
	case han >= 5:
		return manganBase, TierMangan
	}
	if kiriage && ((han == 4 && fu >= 30) || (han == 3 && fu >= 60)) {
		return manganBase, TierMangan
	}
	base := int64(fu) << (2 + uint(han))
	if base >= manganBase {
		return manganBase, TierMangan
	}
	return base, TierNone
}

func ceil100(v int64) int64 {
	return (v + 99) / 100 * 100
}

// RonPayments bills the discarder the full value, with honba on top. A pao
// seat covers half, rounded up to a stick.
func RonPayments(s Score, winner, discarder, pao int32, isDealer bool, honba int32) [SeatCount]int64 {
	mult := int64(4)
	if isDealer {
		mult = 6
	}
	total := ceil100(s.Base*mult) + int64(honba)*300

	var deltas [SeatCount]int64
	deltas[winner] = total
	if pao != SeatNull && pao != discarder {
		half := ceil100(total / 2)
		deltas[pao] = -half
		deltas[discarder] = -(total - half)
	} else {
		deltas[discarder] = -total
	}
	return deltas
}

// TsumoPayments splits a self-drawn win across the other three seats. A pao
// seat covers the whole amount alone.
func TsumoPayments(s Score, winner, dealer, pao int32, honba int32) [SeatCount]int64 {
	var deltas [SeatCount]int64
	honbaEach := int64(honba) * 100
	for seat := int32(0); seat < SeatCount; seat++ {
		if seat == winner {
			continue
		}
		mult := int64(1)
		if winner == dealer || seat == dealer {
			mult = 2
		}
		pay := ceil100(s.Base*mult) + honbaEach
		deltas[seat] = -pay
		deltas[winner] += pay
	}
	if pao != SeatNull {
		total := deltas[winner]
		for seat := int32(0); seat < SeatCount; seat++ {
			if seat != winner {
				deltas[seat] = 0
			}
		}
		deltas[pao] = -total
	}
	return deltas
}

// NotenPayments transfers the exhaustion penalty from noten seats to tenpai
// seats, summing to zero. Nothing moves when all or none are tenpai.
func NotenPayments(tenpai [SeatCount]bool, penalty int64) [SeatCount]int64 {
	count := 0
	for _, t := range tenpai {
		if t {
			count++
		}
	}
	var deltas [SeatCount]int64
	if count == 0 || count == SeatCount {
		return deltas
	}
	gain := penalty / int64(count)
	loss := penalty / int64(SeatCount-count)
	for seat, t := range tenpai {
		if t {
			deltas[seat] = gain
		} else {
			deltas[seat] = -loss
		}
	}
	return deltas
}
