package riichi

import (
	"slices"

	"golang.org/x/xerrors"
)

type CombinationType int

const (
	CombinationPair CombinationType = iota
	CombinationTriplet
	CombinationSequence
	CombinationKan
	CombinationOrphans // the thirteen-orphans shape, kept as one group
)

var combinationSize = map[CombinationType]int{
	CombinationPair:     2,
	CombinationTriplet:  3,
	CombinationSequence: 3,
	CombinationKan:      4,
	CombinationOrphans:  14,
}

// Combination is one typed group inside a decomposition. The open flag only
// affects scoring, never validity.
type Combination struct {
	Type  CombinationType
	Tiles []Tile
	Open  bool
}

func NewCombination(ct CombinationType, tiles []Tile) (Combination, error) {
	want, ok := combinationSize[ct]
	if !ok {
		return Combination{}, xerrors.Errorf("combination type %d: %w", ct, ErrBadInput)
	}
	if len(tiles) != want {
		return Combination{}, xerrors.Errorf("combination type %d needs %d tiles, got %d: %w", ct, want, len(tiles), ErrBadInput)
	}
	sorted := slices.Clone(tiles)
	slices.Sort(sorted)
	switch ct {
	case CombinationSequence:
		color := sorted[0].Color()
		if !sorted[0].IsSuit() {
			return Combination{}, xerrors.Errorf("sequence of honor tiles: %w", ErrBadInput)
		}
		for i := 1; i < 3; i++ {
			if sorted[i].Color() != color || sorted[i].Point() != sorted[0].Point()+i {
				return Combination{}, xerrors.Errorf("tiles %s are not consecutive: %w", TilesName(sorted), ErrBadInput)
			}
		}
	default:
		for _, t := range sorted[1:] {
			if t.Kind() != sorted[0].Kind() {
				return Combination{}, xerrors.Errorf("tiles %s are not identical: %w", TilesName(sorted), ErrBadInput)
			}
		}
	}
	return Combination{Type: ct, Tiles: sorted}, nil
}

// makeSequence builds an unchecked sequence from its lowest rank; callers
// guarantee validity via the count table.
func makeSequence(color EColor, point int) Combination {
	return Combination{
		Type:  CombinationSequence,
		Tiles: []Tile{MakeTile(color, point), MakeTile(color, point+1), MakeTile(color, point+2)},
	}
}

func makeSame(ct CombinationType, tile Tile) Combination {
	return Combination{Type: ct, Tiles: makeTiles(tile.Kind(), combinationSize[ct])}
}

func (c Combination) First() Tile {
	return c.Tiles[0]
}

func (c Combination) Contains(tile Tile) bool {
	kind := tile.Kind()
	for _, t := range c.Tiles {
		if t.Kind() == kind {
			return true
		}
	}
	return false
}

type MeldType int

const (
	MeldChi MeldType = iota
	MeldPon
	MeldOpenKan // claimed from a discard or upgraded from a pon
	MeldAnkan   // self-declared from four concealed tiles
)

// Meld is a declared combination taken from a call (or a self-declared
// concealed kan). ClaimedTile is TileNull for a concealed kan.
type Meld struct {
	Type        MeldType
	Tiles       []Tile
	ClaimedTile Tile
	From        int32
}

func NewMeld(mt MeldType, tiles []Tile, claimed Tile, from int32) (*Meld, error) {
	want := 3
	if mt == MeldOpenKan || mt == MeldAnkan {
		want = 4
	}
	if len(tiles) != want {
		return nil, xerrors.Errorf("meld type %d needs %d tiles, got %d: %w", mt, want, len(tiles), ErrBadInput)
	}
	sorted := slices.Clone(tiles)
	slices.Sort(sorted)
	return &Meld{Type: mt, Tiles: sorted, ClaimedTile: claimed, From: from}, nil
}

func (m Meld) IsConcealed() bool {
	return m.Type == MeldAnkan
}

func (m Meld) IsKan() bool {
	return m.Type == MeldOpenKan || m.Type == MeldAnkan
}

// Combination converts a declared meld into its scoring combination.
func (m Meld) Combination() Combination {
	var ct CombinationType
	switch m.Type {
	case MeldChi:
		ct = CombinationSequence
	case MeldPon:
		ct = CombinationTriplet
	default:
		ct = CombinationKan
	}
	return Combination{Type: ct, Tiles: slices.Clone(m.Tiles), Open: !m.IsConcealed()}
}
