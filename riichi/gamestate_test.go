package riichi_test

import (
	"testing"

	"github.com/kevin-chtw/tw_riichi/riichi"
	"github.com/stretchr/testify/assert"
)

func TestSeatWindRotation(t *testing.T) {
	g := riichi.NewGameState(riichi.DefaultRuleConfig())
	assert.Equal(t, riichi.WindEast, g.SeatWind(0))
	assert.Equal(t, riichi.WindSouth, g.SeatWind(1))

	g.Dealer = 2
	assert.Equal(t, riichi.WindEast, g.SeatWind(2))
	assert.Equal(t, riichi.WindNorth, g.SeatWind(1))
}

func TestNextHandRotation(t *testing.T) {
	g := riichi.NewGameState(riichi.DefaultRuleConfig())

	// non-dealer win passes the deal and clears honba
	g.Honba = 2
	assert.True(t, g.NextHand(false, false, false))
	assert.Equal(t, int32(1), g.Dealer)
	assert.Equal(t, int32(0), g.Honba)
	assert.Equal(t, int32(2), g.HandNumber)

	// dealer win keeps the deal and adds a honba
	assert.True(t, g.NextHand(true, true, false))
	assert.Equal(t, int32(1), g.Dealer)
	assert.Equal(t, int32(1), g.Honba)

	// noten dealer draw rotates but still adds a honba
	assert.True(t, g.NextHand(false, false, true))
	assert.Equal(t, int32(2), g.Dealer)
	assert.Equal(t, int32(2), g.Honba)
}

func TestRoundAdvance(t *testing.T) {
	g := riichi.NewGameState(riichi.DefaultRuleConfig())
	for i := 0; i < 4; i++ {
		assert.True(t, g.NextHand(false, false, false))
	}
	assert.Equal(t, riichi.WindSouth, g.RoundWind)
	assert.Equal(t, int32(1), g.HandNumber)
	assert.Equal(t, int32(0), g.Dealer)
}

func TestGameEndsAtSouthFourWhenTargetReached(t *testing.T) {
	g := riichi.NewGameState(riichi.DefaultRuleConfig())
	g.RoundWind = riichi.WindSouth
	g.HandNumber = 4
	g.Scores[1] = 35000
	g.Scores[2] = 15000

	assert.False(t, g.NextHand(false, false, false))
}

func TestWestExtensionWhenNobodyReached(t *testing.T) {
	g := riichi.NewGameState(riichi.DefaultRuleConfig())
	g.RoundWind = riichi.WindSouth
	g.HandNumber = 4
	g.Scores = [4]int64{26000, 25000, 25000, 24000}

	assert.True(t, g.NextHand(false, false, false))
	assert.Equal(t, riichi.WindWest, g.RoundWind)
	assert.Equal(t, int32(1), g.HandNumber)
}

func TestTobiEndsGame(t *testing.T) {
	g := riichi.NewGameState(riichi.DefaultRuleConfig())
	g.Scores[3] = -1000
	assert.False(t, g.NextHand(true, true, false))
}

func TestRiichiSticks(t *testing.T) {
	g := riichi.NewGameState(riichi.DefaultRuleConfig())
	g.CollectRiichiBet(1)
	g.CollectRiichiBet(2)
	assert.Equal(t, int32(2), g.RiichiStick)
	assert.Equal(t, int64(24000), g.Scores[1])

	g.TakeRiichiSticks(3)
	assert.Equal(t, int32(0), g.RiichiStick)
	assert.Equal(t, int64(27000), g.Scores[3])
}
