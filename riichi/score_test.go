package riichi_test

import (
	"testing"

	"github.com/kevin-chtw/tw_riichi/riichi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCombination(t *testing.T, ct riichi.CombinationType, names string) riichi.Combination {
	t.Helper()
	c, err := riichi.NewCombination(ct, riichi.NamesToTiles(names))
	require.NoError(t, err)
	return c
}

// Closed tsumo with three sequences, a chun triplet and a plain pair:
// 20 base + 2 tsumo + 8 closed honor triplet = 30 fu.
func TestCalcScoreWorkedExample(t *testing.T) {
	combs := []riichi.Combination{
		mustCombination(t, riichi.CombinationPair, "9m,9m"),
		mustCombination(t, riichi.CombinationSequence, "2m,3m,4m"),
		mustCombination(t, riichi.CombinationSequence, "5s,6s,7s"),
		mustCombination(t, riichi.CombinationSequence, "2p,3p,4p"),
		mustCombination(t, riichi.CombinationTriplet, "7z,7z,7z"),
	}
	ctx := &riichi.WinContext{
		WinningTile: riichi.NameToTile("4p"),
		IsTsumo:     true,
		SeatWind:    riichi.WindSouth,
		RoundWind:   riichi.WindEast,
	}
	yaku := []riichi.YakuResult{{Name: "chun", Han: 1}, {Name: "menzen_tsumo", Han: 1}}

	s := riichi.CalcScore(combs, ctx, yaku, false)
	assert.Equal(t, 30, s.Fu)
	assert.Equal(t, 2, s.Han)
	assert.Equal(t, int64(480), s.Base) // 30 * 2^(2+2)
	assert.Equal(t, riichi.TierNone, s.Tier)

	deltas := riichi.TsumoPayments(s, 1, 0, riichi.SeatNull, 0)
	assert.Equal(t, int64(-1000), deltas[0]) // dealer pays double, rounded up
	assert.Equal(t, int64(-500), deltas[2])
	assert.Equal(t, int64(-500), deltas[3])
	assert.Equal(t, int64(2000), deltas[1])
}

func TestFuSpecialShapes(t *testing.T) {
	ctx := &riichi.WinContext{IsRon: true}

	chiitoi := riichi.CalcScore(nil, ctx, []riichi.YakuResult{{Name: riichi.YakuChiitoitsu, Han: 2}}, false)
	assert.Equal(t, 25, chiitoi.Fu)

	pinfuTsumo := riichi.CalcScore(nil, &riichi.WinContext{IsTsumo: true},
		[]riichi.YakuResult{{Name: riichi.YakuPinfu, Han: 1}, {Name: "menzen_tsumo", Han: 1}}, false)
	assert.Equal(t, 30, pinfuTsumo.Fu)

	pinfuRon := riichi.CalcScore(nil, ctx, []riichi.YakuResult{{Name: riichi.YakuPinfu, Han: 1}}, false)
	assert.Equal(t, 20, pinfuRon.Fu)
}

func TestFuYakuhaiPairAndWait(t *testing.T) {
	// seat and round wind doubled on the pair, pair wait for 2 more
	combs := []riichi.Combination{
		mustCombination(t, riichi.CombinationPair, "1z,1z"),
		mustCombination(t, riichi.CombinationSequence, "2m,3m,4m"),
		mustCombination(t, riichi.CombinationSequence, "5s,6s,7s"),
		mustCombination(t, riichi.CombinationSequence, "2p,3p,4p"),
		mustCombination(t, riichi.CombinationSequence, "6p,7p,8p"),
	}
	ctx := &riichi.WinContext{
		WinningTile: riichi.NameToTile("1z"),
		IsRon:       true,
		SeatWind:    riichi.WindEast,
		RoundWind:   riichi.WindEast,
	}
	s := riichi.CalcScore(combs, ctx, []riichi.YakuResult{{Name: "riichi", Han: 1}}, false)
	// 20 base + 10 closed ron + 4 double wind pair + 2 tanki = 36 -> 40
	assert.Equal(t, 40, s.Fu)
}

func TestScoreTiers(t *testing.T) {
	cases := []struct {
		fu, han  int
		kiriage  bool
		wantBase int64
		wantTier string
	}{
		{30, 4, false, 1920, riichi.TierNone},
		{30, 4, true, 2000, riichi.TierMangan},
		{60, 3, true, 2000, riichi.TierMangan},
		{40, 4, false, 2000, riichi.TierMangan},
		{30, 5, false, 2000, riichi.TierMangan},
		{30, 6, false, 3000, riichi.TierHaneman},
		{30, 8, false, 4000, riichi.TierBaiman},
		{30, 11, false, 6000, riichi.TierSanbaiman},
		{30, 13, false, 8000, riichi.TierYakuman},
	}
	for _, tc := range cases {
		s := scoreFor(t, tc.fu, tc.han, tc.kiriage)
		assert.Equal(t, tc.wantBase, s.Base, "fu=%d han=%d", tc.fu, tc.han)
		assert.Equal(t, tc.wantTier, s.Tier, "fu=%d han=%d", tc.fu, tc.han)
	}
}

// scoreFor builds a score with the requested fu and han using a dummy yaku
// and a hand shape known to produce the fu.
func scoreFor(t *testing.T, fu, han int, kiriage bool) riichi.Score {
	t.Helper()
	var combs []riichi.Combination
	ctx := &riichi.WinContext{WinningTile: riichi.NameToTile("9m"), IsRon: true}
	switch fu {
	case 30:
		// 20 + 10 closed ron, no set fu
		combs = []riichi.Combination{
			mustCombination(t, riichi.CombinationPair, "9m,9m"),
			mustCombination(t, riichi.CombinationSequence, "1m,2m,3m"),
			mustCombination(t, riichi.CombinationSequence, "4m,5m,6m"),
			mustCombination(t, riichi.CombinationSequence, "2p,3p,4p"),
			mustCombination(t, riichi.CombinationSequence, "5s,6s,7s"),
		}
		ctx.WinningTile = riichi.NameToTile("1m")
	case 40:
		// 30 plus a closed simple triplet (4) rounds 34 up to 40
		combs = []riichi.Combination{
			mustCombination(t, riichi.CombinationPair, "9m,9m"),
			mustCombination(t, riichi.CombinationTriplet, "5p,5p,5p"),
			mustCombination(t, riichi.CombinationSequence, "1m,2m,3m"),
			mustCombination(t, riichi.CombinationSequence, "4m,5m,6m"),
			mustCombination(t, riichi.CombinationSequence, "5s,6s,7s"),
		}
		ctx.WinningTile = riichi.NameToTile("1m")
	case 60:
		// 20 + 10 + closed simple kan (16) + closed honor triplet (8)
		// = 54 -> 60
		combs = []riichi.Combination{
			mustCombination(t, riichi.CombinationPair, "2p,2p"),
			mustCombination(t, riichi.CombinationKan, "5p,5p,5p,5p"),
			mustCombination(t, riichi.CombinationTriplet, "6z,6z,6z"),
			mustCombination(t, riichi.CombinationSequence, "4m,5m,6m"),
			mustCombination(t, riichi.CombinationSequence, "5s,6s,7s"),
		}
		ctx.WinningTile = riichi.NameToTile("6m")
	default:
		t.Fatalf("no shape for %d fu", fu)
	}
	return riichi.CalcScore(combs, ctx, []riichi.YakuResult{{Name: "x", Han: han}}, kiriage)
}

func TestRonPayments(t *testing.T) {
	s := riichi.Score{Base: 2000}

	deltas := riichi.RonPayments(s, 1, 3, riichi.SeatNull, false, 0)
	assert.Equal(t, int64(8000), deltas[1])
	assert.Equal(t, int64(-8000), deltas[3])

	dealer := riichi.RonPayments(s, 0, 2, riichi.SeatNull, true, 2)
	assert.Equal(t, int64(12600), dealer[0])
	assert.Equal(t, int64(-12600), dealer[2])

	// liability seat covers half
	pao := riichi.RonPayments(s, 1, 3, 2, false, 0)
	assert.Equal(t, int64(8000), pao[1])
	assert.Equal(t, int64(-4000), pao[2])
	assert.Equal(t, int64(-4000), pao[3])
}

func TestTsumoPaymentsPao(t *testing.T) {
	s := riichi.Score{Base: 8000}
	deltas := riichi.TsumoPayments(s, 2, 0, 3, 0)
	assert.Equal(t, int64(32000), deltas[2])
	assert.Equal(t, int64(-32000), deltas[3])
	assert.Equal(t, int64(0), deltas[0])
	assert.Equal(t, int64(0), deltas[1])
}

func TestNotenPayments(t *testing.T) {
	one := riichi.NotenPayments([4]bool{true, false, false, false}, 3000)
	assert.Equal(t, [4]int64{3000, -1000, -1000, -1000}, one)

	two := riichi.NotenPayments([4]bool{true, false, true, false}, 3000)
	assert.Equal(t, [4]int64{1500, -1500, 1500, -1500}, two)

	three := riichi.NotenPayments([4]bool{true, true, true, false}, 3000)
	assert.Equal(t, [4]int64{1000, 1000, 1000, -3000}, three)

	all := riichi.NotenPayments([4]bool{true, true, true, true}, 3000)
	assert.Equal(t, [4]int64{0, 0, 0, 0}, all)
}
