package riichi

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

type Phase int

const (
	PhaseInit Phase = iota
	PhasePlaying
	PhaseHandOver
	PhaseGameOver
)

type ResultType int

const (
	ResultWin ResultType = iota
	ResultExhaustiveDraw
	ResultAbortiveDraw
)

type AbortReason int

const (
	AbortNone AbortReason = iota
	AbortFourWinds
	AbortThreeRon
	AbortFourKans
	AbortFourRiichi
	AbortNineOrphans
)

// WinResult is one winner's scored hand inside a Result.
type WinResult struct {
	Seat  int32
	Score Score
	Ctx   WinContext
}

// Result describes how a hand ended and the point movement it caused,
// riichi sticks and honba included.
type Result struct {
	Type    ResultType
	Abort   AbortReason
	Winners []WinResult
	Deltas  [SeatCount]int64
	Tenpai  [SeatCount]bool
}

// Engine runs one hand at a time over a shared GameState. Every player move
// goes through Execute; the engine tells each seat what it may do via
// Waiting.
type Engine struct {
	rule *RuleConfig
	game *GameState
	ev   Evaluator
	log  *logrus.Entry

	wall  *Wall
	seats [SeatCount]*seatState
	phase Phase

	current       int32
	drawnTile     Tile
	lastDiscard   Tile
	lastDiscarder int32
	mustDiscard   bool
	afterKan      bool

	waiting   map[int32]*Operates
	responses map[int32]*Action

	riichiPending   int32
	pendingAddedKan Tile

	kanCount     int
	kanSeats     map[int32]bool
	anyCall      bool
	totalDiscard int

	paoDaisangen [SeatCount]int32
	paoDaisuushi [SeatCount]int32

	result *Result
}

func NewEngine(rule *RuleConfig, game *GameState, ev Evaluator, log *logrus.Entry) *Engine {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Engine{
		rule: rule,
		game: game,
		ev:   ev,
		log:  log.WithField("module", "riichi"),
	}
}

func (e *Engine) Phase() Phase       { return e.phase }
func (e *Engine) Result() *Result    { return e.result }
func (e *Engine) Game() *GameState   { return e.game }
func (e *Engine) CurrentSeat() int32 { return e.current }
func (e *Engine) Hand(s int32) *Hand { return e.seats[s].hand }
func (e *Engine) Discards(s int32) []Tile {
	return e.seats[s].discards
}

// Waiting returns the action mask open to the seat, empty when it is not
// this seat's move.
func (e *Engine) Waiting(seat int32) Operates {
	if ops, ok := e.waiting[seat]; ok {
		return *ops
	}
	return Operates{}
}

// StartHand deals a fresh wall and opens the dealer's first turn. Pass a
// preset wall for reproducible deals, nil for a shuffled one.
func (e *Engine) StartHand(wall *Wall) error {
	if e.phase == PhasePlaying {
		return xerrors.Errorf("hand already running: %w", ErrIllegalAction)
	}
	if wall == nil {
		wall = NewWall()
	}
	e.wall = wall
	for seat := int32(0); seat < SeatCount; seat++ {
		e.seats[seat] = newSeatState(wall.Deal(13))
	}
	e.phase = PhasePlaying
	e.result = nil
	e.current = e.game.Dealer
	e.drawnTile = TileNull
	e.lastDiscard = TileNull
	e.lastDiscarder = SeatNull
	e.mustDiscard = false
	e.afterKan = false
	e.waiting = make(map[int32]*Operates)
	e.responses = make(map[int32]*Action)
	e.riichiPending = SeatNull
	e.pendingAddedKan = TileNull
	e.kanCount = 0
	e.kanSeats = make(map[int32]bool)
	e.anyCall = false
	e.totalDiscard = 0
	for i := range e.paoDaisangen {
		e.paoDaisangen[i] = SeatNull
		e.paoDaisuushi[i] = SeatNull
	}

	e.log.WithFields(logrus.Fields{
		"dealer": e.game.Dealer,
		"round":  e.game.RoundWind.String(),
		"hand":   e.game.HandNumber,
		"honba":  e.game.Honba,
	}).Info("hand started")

	e.beginTurn(e.current, false)
	return nil
}

// Execute is the single entry point for every player move. The action must
// be one the engine currently offers the seat.
func (e *Engine) Execute(act Action) error {
	if e.phase != PhasePlaying {
		return xerrors.Errorf("hand not running: %w", ErrIllegalAction)
	}
	ops, ok := e.waiting[act.Seat]
	if !ok || !ops.Has(act.Type) {
		return xerrors.Errorf("seat %d may not %s now: %w", act.Seat, act.Type, ErrIllegalAction)
	}

	switch act.Type {
	case ActionDiscard:
		return e.execDiscard(act)
	case ActionRiichi:
		return e.execRiichi(act)
	case ActionTsumo:
		return e.execTsumo(act.Seat)
	case ActionAnkan:
		return e.execAnkan(act)
	case ActionAddedKan:
		return e.execAddedKan(act)
	case ActionKyuushu:
		return e.execKyuushu(act.Seat)
	case ActionChi, ActionPon, ActionOpenKan, ActionRon, ActionPass:
		return e.bufferResponse(act)
	default:
		return xerrors.Errorf("action %d: %w", act.Type, ErrBadInput)
	}
}

// beginTurn draws for the seat and offers its self actions. A nil draw ends
// the hand by exhaustion.
func (e *Engine) beginTurn(seat int32, replacement bool) {
	e.current = seat
	state := e.seats[seat]
	state.furitenTemp = false

	var tile Tile
	if replacement {
		tile = e.wall.DrawReplacement()
	} else {
		tile = e.wall.Draw()
	}
	if tile == TileNull {
		e.finishExhausted()
		return
	}
	state.hand.Add(tile)
	e.drawnTile = tile
	e.afterKan = replacement
	e.mustDiscard = false
	e.offerSelfActions(seat)
}

func (e *Engine) offerSelfActions(seat int32) {
	state := e.seats[seat]
	ops := &Operates{}
	ops.Add(ActionDiscard)

	if e.canWinNow(seat, e.drawnTile, false, false) {
		ops.Add(ActionTsumo)
	}

	if !state.riichi {
		if e.canRiichi(seat) {
			ops.Add(ActionRiichi)
		}
		if e.kanCount < 4 && e.wall.RestCount() > 0 {
			if len(state.hand.AnkanKinds()) > 0 {
				ops.Add(ActionAnkan)
			}
			if len(state.hand.AddedKanKinds()) > 0 {
				ops.Add(ActionAddedKan)
			}
		}
	} else if e.kanCount < 4 && e.wall.RestCount() > 0 {
		for _, kind := range state.hand.AnkanKinds() {
			if kind.Kind() == e.drawnTile.Kind() && state.hand.AnkanPreservesWaits(kind) {
				ops.Add(ActionAnkan)
				break
			}
		}
	}

	if e.rule.KyuushuDraw && e.isFirstUninterrupted(seat) && state.hand.OrphanKindCount() >= 9 {
		ops.Add(ActionKyuushu)
	}

	e.waiting = map[int32]*Operates{seat: ops}
	e.responses = make(map[int32]*Action)
}

// offerCallOnly is the forced discard after a chi or pon.
func (e *Engine) offerCallOnly(seat int32) {
	e.current = seat
	e.drawnTile = TileNull
	e.mustDiscard = true
	ops := &Operates{}
	ops.Add(ActionDiscard)
	e.waiting = map[int32]*Operates{seat: ops}
	e.responses = make(map[int32]*Action)
}

func (e *Engine) isFirstUninterrupted(seat int32) bool {
	return !e.anyCall && len(e.seats[seat].discards) == 0
}

func (e *Engine) canRiichi(seat int32) bool {
	state := e.seats[seat]
	if state.riichi || !state.hand.IsConcealed() {
		return false
	}
	if e.game.Scores[seat] < e.rule.RiichiBet || e.wall.RestCount() < 4 {
		return false
	}
	return len(state.hand.TenpaiDiscards()) > 0
}

// canWinNow evaluates a candidate win without mutating the hand for ron:
// the tile is added, scored and removed again.
func (e *Engine) canWinNow(seat int32, tile Tile, ron bool, chankan bool) bool {
	state := e.seats[seat]
	if ron {
		if e.seats[seat].isFuriten() {
			return false
		}
		state.hand.Add(tile)
		defer func() {
			state.hand.Remove(tile)
		}()
	}
	ctx := e.buildWinContext(seat, tile, ron, chankan)
	_, found := BestScore(state.hand, &ctx, e.ev, e.rule.KiriageMangan)
	return found
}

func (e *Engine) buildWinContext(seat int32, tile Tile, ron bool, chankan bool) WinContext {
	state := e.seats[seat]
	ctx := WinContext{
		WinningTile:    tile,
		IsTsumo:        !ron,
		IsRon:          ron,
		SeatWind:       e.game.SeatWind(seat),
		RoundWind:      e.game.RoundWind,
		IsRiichi:       state.riichi,
		IsDoubleRiichi: state.doubleRiichi,
		IsIppatsu:      state.ippatsu,
		IsRinshan:      !ron && e.afterKan,
		IsChankan:      chankan,
		IsHaitei:       !ron && e.wall.IsExhausted(),
		IsHoutei:       ron && !chankan && e.wall.IsExhausted(),
	}
	ctx.DoraCount, ctx.UraDoraCount, ctx.RedFiveCount = e.countDora(seat)
	return ctx
}

// countDora matches indicators against every tile the seat holds, melds
// included. Reverse indicators count only under riichi.
func (e *Engine) countDora(seat int32) (dora, ura, red int) {
	state := e.seats[seat]
	all := append([]Tile(nil), state.hand.Concealed()...)
	for _, m := range state.hand.Melds() {
		all = append(all, m.Tiles...)
	}

	for _, ind := range e.wall.Indicators(e.kanCount) {
		target := e.wall.DoraOf(ind)
		for _, t := range all {
			if t.Kind() == target.Kind() {
				dora++
			}
		}
	}
	if state.riichi {
		for _, ind := range e.wall.UraIndicators(e.kanCount) {
			target := e.wall.DoraOf(ind)
			for _, t := range all {
				if t.Kind() == target.Kind() {
					ura++
				}
			}
		}
	}
	for _, t := range all {
		if t.IsRed() {
			red++
		}
	}
	return
}

func (e *Engine) execDiscard(act Action) error {
	state := e.seats[act.Seat]
	if state.riichi && !e.mustDiscard && act.Tile.Kind() != e.drawnTile.Kind() {
		return xerrors.Errorf("riichi seat %d must discard the drawn tile: %w", act.Seat, ErrIllegalAction)
	}
	removed := state.hand.Remove(act.Tile)
	if removed == TileNull {
		return xerrors.Errorf("seat %d does not hold %s: %w", act.Seat, act.Tile.Name(), ErrIllegalAction)
	}
	state.discard(removed)
	state.ippatsu = false
	e.lastDiscard = removed
	e.lastDiscarder = act.Seat
	e.totalDiscard++
	e.drawnTile = TileNull
	e.afterKan = false
	e.mustDiscard = false

	e.log.WithFields(logrus.Fields{
		"seat": act.Seat,
		"tile": removed.Name(),
	}).Debug("discard")

	if e.offerReactions(removed, act.Seat) {
		return nil
	}
	e.settleDiscard(nil)
	return nil
}

func (e *Engine) execRiichi(act Action) error {
	state := e.seats[e.current]
	keeps := state.hand.TenpaiDiscards()
	if _, ok := keeps[act.Tile.Kind()]; !ok {
		return xerrors.Errorf("discarding %s breaks tenpai: %w", act.Tile.Name(), ErrIllegalAction)
	}
	e.riichiPending = act.Seat
	return e.execDiscard(Action{Seat: act.Seat, Type: ActionDiscard, Tile: act.Tile})
}

func (e *Engine) execTsumo(seat int32) error {
	ctx := e.buildWinContext(seat, e.drawnTile, false, false)
	score, found := BestScore(e.seats[seat].hand, &ctx, e.ev, e.rule.KiriageMangan)
	if !found {
		return xerrors.Errorf("seat %d has no yaku: %w", seat, ErrIllegalAction)
	}

	pao := e.paoFor(seat, score.Yaku)
	deltas := TsumoPayments(score, seat, e.game.Dealer, pao, e.game.Honba)
	result := &Result{
		Type:    ResultWin,
		Winners: []WinResult{{Seat: seat, Score: score, Ctx: ctx}},
		Deltas:  deltas,
	}
	e.finishWin(result, seat)
	return nil
}

func (e *Engine) execAnkan(act Action) error {
	state := e.seats[act.Seat]
	if state.riichi {
		if act.Tile.Kind() != e.drawnTile.Kind() {
			return xerrors.Errorf("riichi ankan must use the drawn tile, not %s: %w", act.Tile.Name(), ErrIllegalAction)
		}
		if !state.hand.AnkanPreservesWaits(act.Tile) {
			return xerrors.Errorf("ankan %s changes the riichi wait: %w", act.Tile.Name(), ErrIllegalAction)
		}
	}
	if err := state.hand.Ankan(act.Tile); err != nil {
		return err
	}
	e.noteKan(act.Seat)
	e.clearIppatsu()
	e.log.WithFields(logrus.Fields{"seat": act.Seat, "tile": act.Tile.Name()}).Debug("ankan")
	e.beginTurn(act.Seat, true)
	return nil
}

// execAddedKan opens the robbing window before the kan completes; the
// upgrade happens in settleAddedKan once nobody rons.
func (e *Engine) execAddedKan(act Action) error {
	state := e.seats[act.Seat]
	found := false
	for _, kind := range state.hand.AddedKanKinds() {
		if kind.Kind() == act.Tile.Kind() {
			found = true
			break
		}
	}
	if !found {
		return xerrors.Errorf("no pon to extend with %s: %w", act.Tile.Name(), ErrIllegalAction)
	}

	e.pendingAddedKan = act.Tile
	waiting := make(map[int32]*Operates)
	for seat := int32(0); seat < SeatCount; seat++ {
		if seat == act.Seat {
			continue
		}
		if e.canWinNow(seat, act.Tile, true, true) {
			ops := &Operates{}
			ops.Add(ActionRon)
			ops.Add(ActionPass)
			waiting[seat] = ops
		}
	}
	if len(waiting) == 0 {
		return e.settleAddedKan(nil)
	}
	e.waiting = waiting
	e.responses = make(map[int32]*Action)
	return nil
}

func (e *Engine) settleAddedKan(rons []int32) error {
	seat := e.current
	if len(rons) > 0 {
		tile := e.pendingAddedKan
		e.pendingAddedKan = TileNull
		e.seats[seat].hand.Remove(tile)
		e.finishRon(rons, tile, seat, true)
		return nil
	}
	tile := e.pendingAddedKan
	e.pendingAddedKan = TileNull
	if err := e.seats[seat].hand.AddedKan(tile); err != nil {
		return err
	}
	e.noteKan(seat)
	e.clearIppatsu()
	e.log.WithFields(logrus.Fields{"seat": seat, "tile": tile.Name()}).Debug("added kan")
	e.beginTurn(seat, true)
	return nil
}

func (e *Engine) execKyuushu(seat int32) error {
	e.log.WithField("seat", seat).Info("nine orphans declared")
	e.finishAbort(AbortNineOrphans)
	return nil
}

func (e *Engine) noteKan(seat int32) {
	e.kanCount++
	e.kanSeats[seat] = true
	e.anyCall = true
}

func (e *Engine) clearIppatsu() {
	for _, s := range e.seats {
		s.ippatsu = false
	}
}

// offerReactions builds the claim windows for a discard. Returns false when
// nobody can react.
func (e *Engine) offerReactions(tile Tile, from int32) bool {
	waiting := make(map[int32]*Operates)
	left := GetNextSeat(from)
	for seat := int32(0); seat < SeatCount; seat++ {
		if seat == from {
			continue
		}
		state := e.seats[seat]
		ops := &Operates{}
		if e.canWinNow(seat, tile, true, false) {
			ops.Add(ActionRon)
		}
		if !state.riichi && e.wall.RestCount() > 0 {
			if state.hand.CanPon(tile) {
				ops.Add(ActionPon)
			}
			if state.hand.CanOpenKan(tile) && e.kanCount < 4 {
				ops.Add(ActionOpenKan)
			}
			if seat == left && len(state.hand.CanChi(tile)) > 0 {
				ops.Add(ActionChi)
			}
		}
		if !ops.Empty() {
			ops.Add(ActionPass)
			waiting[seat] = ops
		}
	}
	if len(waiting) == 0 {
		return false
	}
	e.waiting = waiting
	e.responses = make(map[int32]*Action)
	return true
}

func (e *Engine) bufferResponse(act Action) error {
	if act.Type == ActionChi {
		starts := e.seats[act.Seat].hand.CanChi(e.lastDiscard)
		ok := false
		for _, s := range starts {
			if s == act.Option.Kind() {
				ok = true
				break
			}
		}
		if !ok {
			return xerrors.Errorf("chi start %s: %w", act.Option.Name(), ErrIllegalAction)
		}
	}
	e.responses[act.Seat] = &act
	if len(e.responses) < len(e.waiting) {
		return nil
	}
	if e.pendingAddedKan != TileNull {
		var rons []int32
		for seat := range e.waiting {
			if r := e.responses[seat]; r != nil && r.Type == ActionRon {
				rons = append(rons, seat)
			} else if e.waiting[seat].Has(ActionRon) {
				e.seats[seat].markPassedRon()
			}
		}
		return e.settleAddedKan(e.orderFromDiscarder(rons, e.current))
	}
	e.settleDiscard(e.responses)
	return nil
}

// settleDiscard resolves a discard once every claimant has answered (or
// nobody could claim). Ron outranks pon and kan, which outrank chi.
func (e *Engine) settleDiscard(responses map[int32]*Action) {
	var rons []int32
	var call *Action
	for seat, r := range responses {
		switch r.Type {
		case ActionRon:
			rons = append(rons, seat)
		case ActionPon, ActionOpenKan:
			call = r
		case ActionChi:
			if call == nil {
				call = r
			}
		case ActionPass:
			if e.waiting[seat].Has(ActionRon) {
				e.seats[seat].markPassedRon()
			}
		}
	}
	e.waiting = make(map[int32]*Operates)
	e.responses = make(map[int32]*Action)

	if len(rons) > 0 {
		rons = e.orderFromDiscarder(rons, e.lastDiscarder)
		if e.rule.MultiRon == DoubleRonAllowed && len(rons) >= 3 {
			e.finishAbort(AbortThreeRon)
			return
		}
		e.acceptRiichi()
		e.finishRon(rons, e.lastDiscard, e.lastDiscarder, false)
		return
	}

	e.acceptRiichi()

	if call != nil {
		e.applyCall(call)
		return
	}

	// Nobody claimed: run the abortive checks, then the next turn.
	if e.checkFourWinds() {
		e.finishAbort(AbortFourWinds)
		return
	}
	if e.kanCount == 4 && len(e.kanSeats) >= 2 {
		e.finishAbort(AbortFourKans)
		return
	}
	if e.rule.SuuchaRiichi && e.riichiSeatCount() == SeatCount {
		e.finishAbort(AbortFourRiichi)
		return
	}
	e.beginTurn(GetNextSeat(e.lastDiscarder), false)
}

// acceptRiichi locks in a pending riichi declaration after its discard
// survives the ron window.
func (e *Engine) acceptRiichi() {
	if e.riichiPending == SeatNull {
		return
	}
	seat := e.riichiPending
	e.riichiPending = SeatNull
	state := e.seats[seat]
	state.riichi = true
	state.ippatsu = true
	if e.isFirstRiichiTurn(seat) {
		state.doubleRiichi = true
	}
	e.game.CollectRiichiBet(seat)
	e.log.WithField("seat", seat).Info("riichi declared")
}

func (e *Engine) isFirstRiichiTurn(seat int32) bool {
	return !e.anyCall && len(e.seats[seat].discards) == 1
}

func (e *Engine) riichiSeatCount() int {
	count := 0
	for _, s := range e.seats {
		if s.riichi {
			count++
		}
	}
	return count
}

func (e *Engine) checkFourWinds() bool {
	if e.anyCall || e.totalDiscard != SeatCount {
		return false
	}
	var first Tile
	for i, s := range e.seats {
		if len(s.discards) != 1 {
			return false
		}
		kind := s.discards[0].Kind()
		if !kind.IsWind() {
			return false
		}
		if i == 0 {
			first = kind
		} else if kind != first {
			return false
		}
	}
	return true
}

// applyCall moves the claimed tile into the caller's meld, breaking every
// ippatsu, and hands the turn over.
func (e *Engine) applyCall(act *Action) {
	discarder := e.lastDiscarder
	tile := e.seats[discarder].removeLastDiscard()
	state := e.seats[act.Seat]
	e.anyCall = true
	e.clearIppatsu()

	var err error
	switch act.Type {
	case ActionChi:
		err = state.hand.Chi(tile, act.Option, discarder)
	case ActionPon:
		err = state.hand.Pon(tile, discarder)
	case ActionOpenKan:
		err = state.hand.OpenKan(tile, discarder)
	}
	if err != nil {
		// Claims were validated when offered; a failure here is a state bug.
		e.log.WithError(xerrors.Errorf("%v: %w", err, ErrInvariant)).Error("call application failed")
		e.seats[discarder].discard(tile)
		e.beginTurn(GetNextSeat(discarder), false)
		return
	}

	e.log.WithFields(logrus.Fields{
		"seat": act.Seat,
		"type": act.Type.String(),
		"tile": tile.Name(),
	}).Debug("call")

	e.notePao(act.Seat, tile, discarder)

	if act.Type == ActionOpenKan {
		e.noteKan(act.Seat)
		e.beginTurn(act.Seat, true)
		return
	}
	e.offerCallOnly(act.Seat)
}

// notePao records the feeder of a completing dragon or wind meld: the seat
// that supplies the third dragon set or fourth wind set becomes liable for
// the matching yakuman.
func (e *Engine) notePao(seat int32, tile Tile, from int32) {
	hand := e.seats[seat].hand
	if tile.IsDragon() {
		count := 0
		for _, m := range hand.Melds() {
			if m.Tiles[0].IsDragon() {
				count++
			}
		}
		if count == 3 {
			e.paoDaisangen[seat] = from
		}
	}
	if tile.IsWind() {
		count := 0
		for _, m := range hand.Melds() {
			if m.Tiles[0].IsWind() {
				count++
			}
		}
		if count == 4 {
			e.paoDaisuushi[seat] = from
		}
	}
}

func (e *Engine) paoFor(seat int32, yaku []YakuResult) int32 {
	if hasYaku(yaku, YakuDaisangen) && e.paoDaisangen[seat] != SeatNull {
		return e.paoDaisangen[seat]
	}
	if hasYaku(yaku, YakuDaisuushi) && e.paoDaisuushi[seat] != SeatNull {
		return e.paoDaisuushi[seat]
	}
	return SeatNull
}

func (e *Engine) orderFromDiscarder(seats []int32, from int32) []int32 {
	ordered := make([]int32, 0, len(seats))
	for s := GetNextSeat(from); s != from; s = GetNextSeat(s) {
		for _, c := range seats {
			if c == s {
				ordered = append(ordered, s)
			}
		}
	}
	return ordered
}

// finishRon scores the callers in seat order from the discarder, applying
// the multi-ron policy. Sticks and honba go to the closest winner only.
func (e *Engine) finishRon(rons []int32, tile Tile, discarder int32, chankan bool) {
	if e.rule.MultiRon == HeadBumpOnly && len(rons) > 1 {
		rons = rons[:1]
	}

	result := &Result{Type: ResultWin}
	for i, seat := range rons {
		state := e.seats[seat]
		state.hand.Add(tile)
		ctx := e.buildWinContext(seat, tile, true, chankan)
		score, found := BestScore(state.hand, &ctx, e.ev, e.rule.KiriageMangan)
		if !found {
			// Ron was only offered on a valid win.
			e.log.WithError(ErrInvariant).WithField("seat", seat).Error("ron scored no yaku")
			state.hand.Remove(tile)
			continue
		}
		honba := int32(0)
		if i == 0 {
			honba = e.game.Honba
		}
		pao := e.paoFor(seat, score.Yaku)
		deltas := RonPayments(score, seat, discarder, pao, seat == e.game.Dealer, honba)
		for j, d := range deltas {
			result.Deltas[j] += d
		}
		result.Winners = append(result.Winners, WinResult{Seat: seat, Score: score, Ctx: ctx})
	}
	if len(result.Winners) == 0 {
		e.beginTurn(GetNextSeat(discarder), false)
		return
	}
	e.finishWin(result, result.Winners[0].Seat)
}

func (e *Engine) finishWin(result *Result, stickWinner int32) {
	e.game.Apply(result.Deltas)
	before := e.game.Scores[stickWinner]
	e.game.TakeRiichiSticks(stickWinner)
	result.Deltas[stickWinner] += e.game.Scores[stickWinner] - before

	for seat := int32(0); seat < SeatCount; seat++ {
		result.Tenpai[seat] = e.seats[seat].hand.IsTenpai()
	}
	e.result = result
	e.phase = PhaseHandOver
	e.waiting = make(map[int32]*Operates)

	e.log.WithFields(logrus.Fields{
		"winners": len(result.Winners),
		"deltas":  result.Deltas,
	}).Info("hand won")
}

// finishExhausted settles a worn-out wall: nagashi mangan first, otherwise
// the noten penalty between tenpai and noten seats.
func (e *Engine) finishExhausted() {
	result := &Result{Type: ResultExhaustiveDraw}
	for seat := int32(0); seat < SeatCount; seat++ {
		result.Tenpai[seat] = e.seats[seat].hand.IsTenpai()
	}

	nagashi := false
	if e.rule.NagashiMangan {
		for seat := int32(0); seat < SeatCount; seat++ {
			if !e.seats[seat].allDiscardsNagashi() {
				continue
			}
			nagashi = true
			score := Score{Base: manganBase, Tier: TierMangan}
			deltas := TsumoPayments(score, seat, e.game.Dealer, SeatNull, 0)
			for j, d := range deltas {
				result.Deltas[j] += d
			}
			e.log.WithField("seat", seat).Info("nagashi mangan")
		}
	}
	if !nagashi {
		deltas := NotenPayments(result.Tenpai, e.rule.NotenPenalty)
		for j, d := range deltas {
			result.Deltas[j] += d
		}
	}

	e.game.Apply(result.Deltas)
	e.result = result
	e.phase = PhaseHandOver
	e.waiting = make(map[int32]*Operates)
	e.log.WithField("deltas", result.Deltas).Info("exhaustive draw")
}

// finishAbort ends the hand with no transfer; riichi sticks stay on the
// table for the next winner.
func (e *Engine) finishAbort(reason AbortReason) {
	result := &Result{Type: ResultAbortiveDraw, Abort: reason}
	for seat := int32(0); seat < SeatCount; seat++ {
		result.Tenpai[seat] = e.seats[seat].hand.IsTenpai()
	}
	e.result = result
	e.phase = PhaseHandOver
	e.waiting = make(map[int32]*Operates)
	e.log.WithField("reason", reason).Info("abortive draw")
}

// AdvanceHand moves the match to the next hand after one ends, returning
// false when the game is over.
func (e *Engine) AdvanceHand() bool {
	if e.phase != PhaseHandOver || e.result == nil {
		return false
	}
	res := e.result
	dealer := e.game.Dealer
	dealerWon := false
	for _, w := range res.Winners {
		if w.Seat == dealer {
			dealerWon = true
		}
	}
	wasDraw := res.Type != ResultWin
	if !e.game.NextHand(dealerWon, res.Tenpai[dealer], wasDraw) {
		e.phase = PhaseGameOver
		return false
	}
	e.phase = PhaseInit
	return true
}
