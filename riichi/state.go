package riichi

// seatState is everything per-seat the rule engine tracks beyond the hand
// itself. One struct per seat replaces scattered flag maps so a hand reset
// is a single assignment.
type seatState struct {
	hand     *Hand
	discards []Tile

	riichi       bool
	doubleRiichi bool
	// ippatsu stays live from the riichi discard until the seat's next
	// discard, broken early by any call.
	ippatsu bool

	// furitenPermanent locks out ron for the rest of the hand (riichi seat
	// passed a winnable tile, or a wait matches an own discard).
	furitenPermanent bool
	// furitenTemp lasts until the seat's own next draw.
	furitenTemp bool

	// discardsClaimed marks that another seat called one of this seat's
	// discards, which voids nagashi mangan.
	discardsClaimed bool
}

func newSeatState(tiles []Tile) *seatState {
	return &seatState{hand: NewHand(tiles)}
}

func (s *seatState) discard(tile Tile) {
	s.discards = append(s.discards, tile)
}

// removeLastDiscard retracts the newest discard after another seat claims it.
func (s *seatState) removeLastDiscard() Tile {
	if len(s.discards) == 0 {
		return TileNull
	}
	tile := s.discards[len(s.discards)-1]
	s.discards = s.discards[:len(s.discards)-1]
	s.discardsClaimed = true
	return tile
}

// discardFuriten reports whether any current wait matches an own discard.
func (s *seatState) discardFuriten() bool {
	waits := s.hand.Waits()
	if len(waits) == 0 {
		return false
	}
	waitSet := make(map[Tile]bool, len(waits))
	for _, t := range waits {
		waitSet[t] = true
	}
	for _, d := range s.discards {
		if waitSet[d.Kind()] {
			return true
		}
	}
	return false
}

func (s *seatState) isFuriten() bool {
	return s.furitenPermanent || s.furitenTemp || s.discardFuriten()
}

// markPassedRon records that the seat skipped a winnable discard: permanent
// under riichi, temporary otherwise.
func (s *seatState) markPassedRon() {
	if s.riichi {
		s.furitenPermanent = true
	} else {
		s.furitenTemp = true
	}
}

// allDiscardsNagashi holds when every discard is a terminal or honor and
// none was claimed.
func (s *seatState) allDiscardsNagashi() bool {
	if s.discardsClaimed || len(s.discards) == 0 {
		return false
	}
	for _, t := range s.discards {
		if !t.IsOrphan() {
			return false
		}
	}
	return true
}
