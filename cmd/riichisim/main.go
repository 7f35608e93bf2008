package main

import (
	"flag"

	"github.com/kevin-chtw/tw_riichi/riichi"
	"github.com/kevin-chtw/tw_riichi/utils"
	"github.com/sirupsen/logrus"
)

// flatEvaluator awards a single han to any complete hand. The simulator only
// drives the engine; a real yaku catalog plugs in through the same interface.
type flatEvaluator struct{}

func (flatEvaluator) Evaluate(combs []riichi.Combination, hand *riichi.Hand, ctx *riichi.WinContext) []riichi.YakuResult {
	return []riichi.YakuResult{{Name: "win", Han: 1}}
}

func main() {
	preset := flag.String("preset", "", "preset deal name under ./initcard")
	debug := flag.Bool("debug", false, "log every action")
	flag.Parse()

	level := logrus.InfoLevel
	if *debug {
		level = logrus.DebugLevel
	}
	log := utils.Logger(level).WithField("app", "riichisim")

	rule := riichi.DefaultRuleConfig()
	game := riichi.NewGameState(rule)
	engine := riichi.NewEngine(rule, game, flatEvaluator{}, log)

	for {
		if err := engine.StartHand(buildWall(log, *preset)); err != nil {
			log.WithError(err).Fatal("start hand")
		}
		playHand(log, engine)
		if !engine.AdvanceHand() {
			break
		}
	}
	log.WithField("scores", game.Scores).Info("game over")
}

// buildWall returns the preset deal when one is named and enabled, a shuffled
// wall otherwise.
func buildWall(log *logrus.Entry, preset string) *riichi.Wall {
	if preset == "" {
		return nil
	}
	m := riichi.NewManual(preset)
	if !m.Enabled() {
		log.WithField("preset", preset).Warn("preset missing or disabled")
		return nil
	}
	wall, err := m.Wall()
	if err != nil {
		log.WithError(err).Warn("preset deal unusable")
		return nil
	}
	return wall
}

// playHand runs the hand to completion with a trivial policy: win when
// offered, pass every claim, otherwise throw the highest held tile.
func playHand(log *logrus.Entry, e *riichi.Engine) {
	for steps := 0; e.Phase() == riichi.PhasePlaying; steps++ {
		if steps > 4096 {
			log.Error("hand did not terminate")
			return
		}
		seat, ops := nextActor(e)
		if seat == riichi.SeatNull {
			log.Error("no seat may act")
			return
		}
		if err := e.Execute(chooseAction(e, seat, ops)); err != nil {
			log.WithError(err).Fatal("action rejected")
		}
	}
	if res := e.Result(); res != nil {
		log.WithFields(logrus.Fields{
			"type":   res.Type,
			"deltas": res.Deltas,
		}).Info("hand over")
	}
}

func nextActor(e *riichi.Engine) (int32, riichi.Operates) {
	for seat := int32(0); seat < riichi.SeatCount; seat++ {
		if ops := e.Waiting(seat); !ops.Empty() {
			return seat, ops
		}
	}
	return riichi.SeatNull, riichi.Operates{}
}

func chooseAction(e *riichi.Engine, seat int32, ops riichi.Operates) riichi.Action {
	switch {
	case ops.Has(riichi.ActionTsumo):
		return riichi.Action{Seat: seat, Type: riichi.ActionTsumo}
	case ops.Has(riichi.ActionRon):
		return riichi.Action{Seat: seat, Type: riichi.ActionRon}
	case ops.Has(riichi.ActionDiscard):
		held := e.Hand(seat).Concealed()
		return riichi.Action{Seat: seat, Type: riichi.ActionDiscard, Tile: held[len(held)-1]}
	default:
		return riichi.Action{Seat: seat, Type: riichi.ActionPass}
	}
}
