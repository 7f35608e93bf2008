package riichi

import (
	"math/rand"
)

const (
	deadWallSize     = 14
	replacementSlots = 4
	indicatorSlots   = 4
)

// Wall is the shuffled tile sequence plus the fixed dead wall: four
// replacement-draw slots for kans and four forward/reverse indicator slots
// for dora derivation. Only the engine mutates it.
type Wall struct {
	live          []Tile
	replacements  []Tile
	indicators    []Tile
	uraIndicators []Tile
}

// standardTiles is the 136-tile riichi set: every numeral five appears three
// times plus one red variant.
func standardTiles() map[Tile]int {
	tiles := make(map[Tile]int)
	for color := ColorCharacter; color <= ColorDot; color++ {
		for point := 0; point < 9; point++ {
			if point == 4 {
				tiles[MakeTile(color, point)] = 3
				tiles[MakeRedTile(color, point)] = 1
			} else {
				tiles[MakeTile(color, point)] = 4
			}
		}
	}
	for point := 0; point < 4; point++ {
		tiles[MakeTile(ColorWind, point)] = 4
	}
	for point := 0; point < 3; point++ {
		tiles[MakeTile(ColorDragon, point)] = 4
	}
	return tiles
}

func NewWall() *Wall {
	w := &Wall{}
	w.build(standardTiles())
	return w
}

// NewWallFromTiles builds an unshuffled wall in the given order, used by
// preset deals and tests.
func NewWallFromTiles(tiles []Tile) *Wall {
	w := &Wall{}
	w.split(append([]Tile(nil), tiles...))
	return w
}

func (w *Wall) build(tiles map[Tile]int) {
	total := 0
	for _, count := range tiles {
		total += count
	}
	all := make([]Tile, total)

	// Fill and shuffle in one pass.
	i := 0
	for tile, count := range tiles {
		for range count {
			pos := rand.Intn(i + 1)
			if pos != i {
				all[i] = all[pos]
			}
			all[pos] = tile
			i++
		}
	}
	w.split(all)
}

func (w *Wall) split(all []Tile) {
	dead := all[len(all)-deadWallSize:]
	w.live = all[:len(all)-deadWallSize]
	w.replacements = dead[:replacementSlots]
	w.indicators = dead[replacementSlots : replacementSlots+indicatorSlots]
	w.uraIndicators = dead[replacementSlots+indicatorSlots : replacementSlots+2*indicatorSlots]
}

// Draw takes the next live tile, TileNull when exhausted.
func (w *Wall) Draw() Tile {
	if len(w.live) == 0 {
		return TileNull
	}
	tile := w.live[0]
	w.live = w.live[1:]
	return tile
}

// DrawReplacement consumes one of the four kan replacement slots.
func (w *Wall) DrawReplacement() Tile {
	if len(w.replacements) == 0 {
		return TileNull
	}
	tile := w.replacements[0]
	w.replacements = w.replacements[1:]
	return tile
}

func (w *Wall) Deal(count int) []Tile {
	tiles := make([]Tile, count)
	copy(tiles, w.live[:count])
	w.live = w.live[count:]
	return tiles
}

func (w *Wall) RestCount() int32 {
	return int32(len(w.live))
}

func (w *Wall) IsExhausted() bool {
	return len(w.live) == 0
}

// Indicators returns the revealed forward indicator tiles: one plus one per
// completed kan, capped at the slot count.
func (w *Wall) Indicators(kanCount int) []Tile {
	return w.indicators[:min(1+kanCount, len(w.indicators))]
}

// UraIndicators are revealed only for a riichi winner, same count as the
// forward indicators.
func (w *Wall) UraIndicators(kanCount int) []Tile {
	return w.uraIndicators[:min(1+kanCount, len(w.uraIndicators))]
}

// DoraOf maps an indicator to its bonus tile.
func (w *Wall) DoraOf(indicator Tile) Tile {
	return indicator.Next()
}

func (w *Wall) HasTile(tile Tile) bool {
	kind := tile.Kind()
	for _, t := range w.live {
		if t.Kind() == kind {
			return true
		}
	}
	return false
}
