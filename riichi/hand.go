package riichi

import (
	"sort"

	"golang.org/x/xerrors"
)

// Hand holds one seat's concealed tiles and declared melds. Concealed tiles
// stay sorted; counts is a lazily built kind->count index reused by the
// decomposition and wait searches.
type Hand struct {
	concealed []Tile
	melds     []*Meld

	counts      map[Tile]int
	countsValid bool
}

func NewHand(tiles []Tile) *Hand {
	h := &Hand{concealed: append([]Tile(nil), tiles...)}
	h.sortConcealed()
	return h
}

func (h *Hand) Concealed() []Tile {
	return h.concealed
}

func (h *Hand) Melds() []*Meld {
	return h.melds
}

func (h *Hand) IsConcealed() bool {
	for _, m := range h.melds {
		if !m.IsConcealed() {
			return false
		}
	}
	return true
}

func (h *Hand) sortConcealed() {
	sort.Slice(h.concealed, func(i, j int) bool { return h.concealed[i] < h.concealed[j] })
}

func (h *Hand) Add(tile Tile) {
	h.concealed = append(h.concealed, tile)
	h.sortConcealed()
	h.countsValid = false
}

// Remove takes one copy matching the tile's kind and returns the tile
// actually held, TileNull when absent. An exact match wins over a kind match
// so a plain five is spent before a red one.
func (h *Hand) Remove(tile Tile) Tile {
	idx := -1
	for i, t := range h.concealed {
		if t == tile {
			idx = i
			break
		}
		if idx < 0 && t.Kind() == tile.Kind() {
			idx = i
		}
	}
	if idx < 0 {
		return TileNull
	}
	removed := h.concealed[idx]
	h.concealed = append(h.concealed[:idx], h.concealed[idx+1:]...)
	h.countsValid = false
	return removed
}

func (h *Hand) Count(tile Tile) int {
	return h.kindCounts()[tile.Kind()]
}

func (h *Hand) kindCounts() map[Tile]int {
	if !h.countsValid {
		h.counts = make(map[Tile]int, len(h.concealed))
		for _, t := range h.concealed {
			h.counts[t.Kind()]++
		}
		h.countsValid = true
	}
	return h.counts
}

// take removes n copies of a kind from the counts index, returning false
// untouched when fewer are held.
func take(counts map[Tile]int, kind Tile, n int) bool {
	if counts[kind] < n {
		return false
	}
	counts[kind] -= n
	return true
}

func put(counts map[Tile]int, kind Tile, n int) {
	counts[kind] += n
}

// IsWinning reports whether concealed+melds form a complete hand: the
// standard four-set-one-pair shape, seven pairs, or thirteen orphans.
func (h *Hand) IsWinning() bool {
	return len(h.Decompose()) > 0
}

// Decompose enumerates every distinct way to read the hand as a winning
// shape. Each result contains the meld-derived combinations followed by the
// concealed ones. Empty when the hand is not complete.
func (h *Hand) Decompose() [][]Combination {
	total := len(h.concealed) + len(h.melds)*3
	if total != 14 {
		return nil
	}

	var results [][]Combination
	base := make([]Combination, 0, 5)
	for _, m := range h.melds {
		base = append(base, m.Combination())
	}

	counts := make(map[Tile]int, len(h.concealed))
	for _, t := range h.concealed {
		counts[t.Kind()]++
	}

	need := 4 - len(h.melds)
	for _, sets := range decomposeStandard(counts, need) {
		results = append(results, append(append([]Combination(nil), base...), sets...))
	}

	if len(h.melds) == 0 {
		if pairs := decomposeSevenPairs(counts); pairs != nil {
			results = append(results, pairs)
		}
		if orphans := decomposeOrphans(counts); orphans != nil {
			results = append(results, orphans)
		}
	}
	return results
}

// decomposeStandard finds every partition of counts into `need` sets
// (triplets or sequences) plus one pair.
func decomposeStandard(counts map[Tile]int, need int) [][]Combination {
	var results [][]Combination
	for _, kind := range sortedKinds(counts) {
		if counts[kind] < 2 {
			continue
		}
		take(counts, kind, 2)
		pair := makeSame(CombinationPair, kind)
		for _, sets := range decomposeSets(counts, need) {
			results = append(results, append([]Combination{pair}, sets...))
		}
		put(counts, kind, 2)
	}
	return results
}

// decomposeSets greedily peels triplets then sequences off the lowest
// remaining kind; trying only the lowest keeps the enumeration free of
// duplicate orderings.
func decomposeSets(counts map[Tile]int, need int) [][]Combination {
	if need == 0 {
		for _, c := range counts {
			if c != 0 {
				return nil
			}
		}
		return [][]Combination{{}}
	}

	kind := lowestKind(counts)
	if kind == TileNull {
		return nil
	}

	var results [][]Combination
	if counts[kind] >= 3 {
		take(counts, kind, 3)
		set := makeSame(CombinationTriplet, kind)
		for _, rest := range decomposeSets(counts, need-1) {
			results = append(results, append([]Combination{set}, rest...))
		}
		put(counts, kind, 3)
	}
	if kind.IsSuit() && kind.Point() <= 6 {
		second := MakeTile(kind.Color(), kind.Point()+1)
		third := MakeTile(kind.Color(), kind.Point()+2)
		if counts[second] > 0 && counts[third] > 0 {
			take(counts, kind, 1)
			take(counts, second, 1)
			take(counts, third, 1)
			set := makeSequence(kind.Color(), kind.Point())
			for _, rest := range decomposeSets(counts, need-1) {
				results = append(results, append([]Combination{set}, rest...))
			}
			put(counts, kind, 1)
			put(counts, second, 1)
			put(counts, third, 1)
		}
	}
	return results
}

func decomposeSevenPairs(counts map[Tile]int) []Combination {
	pairs := make([]Combination, 0, 7)
	for _, kind := range sortedKinds(counts) {
		if counts[kind] != 2 {
			return nil
		}
		pairs = append(pairs, makeSame(CombinationPair, kind))
	}
	if len(pairs) != 7 {
		return nil
	}
	return pairs
}

// decomposeOrphans recognizes thirteen orphans: all 13 terminal/honor kinds
// present, one of them doubled. Reported as a single pseudo combination.
func decomposeOrphans(counts map[Tile]int) []Combination {
	var tiles []Tile
	pairSeen := false
	for kind, c := range counts {
		if c == 0 {
			continue
		}
		if !kind.IsOrphan() {
			return nil
		}
		switch c {
		case 1:
		case 2:
			if pairSeen {
				return nil
			}
			pairSeen = true
		default:
			return nil
		}
		for range c {
			tiles = append(tiles, kind)
		}
	}
	if len(tiles) != 14 || !pairSeen {
		return nil
	}
	sort.Slice(tiles, func(i, j int) bool { return tiles[i] < tiles[j] })
	return []Combination{{Type: CombinationOrphans, Tiles: tiles}}
}

func sortedKinds(counts map[Tile]int) []Tile {
	kinds := make([]Tile, 0, len(counts))
	for kind, c := range counts {
		if c > 0 {
			kinds = append(kinds, kind)
		}
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

func lowestKind(counts map[Tile]int) Tile {
	best := TileNull
	for kind, c := range counts {
		if c > 0 && (best == TileNull || kind < best) {
			best = kind
		}
	}
	return best
}

// Waits returns the sorted kinds that complete a 13-tile hand. The candidate
// domain is narrowed to kinds within two points of a held suit tile, plus
// every terminal and honor; a sparse hand (under ten distinct candidates)
// falls back to the full domain.
func (h *Hand) Waits() []Tile {
	if len(h.concealed)+len(h.melds)*3 != 13 {
		return nil
	}

	candidates := h.waitCandidates()
	var waits []Tile
	for _, kind := range candidates {
		h.concealed = append(h.concealed, kind)
		h.countsValid = false
		if h.IsWinning() {
			waits = append(waits, kind)
		}
		h.concealed = h.concealed[:len(h.concealed)-1]
		h.countsValid = false
	}
	sort.Slice(waits, func(i, j int) bool { return waits[i] < waits[j] })
	return waits
}

func (h *Hand) waitCandidates() []Tile {
	seen := make(map[Tile]bool)
	for _, t := range h.concealed {
		kind := t.Kind()
		seen[kind] = true
		if kind.IsSuit() {
			point := kind.Point()
			for d := -2; d <= 2; d++ {
				p := point + d
				if p >= 0 && p < 9 {
					seen[MakeTile(kind.Color(), p)] = true
				}
			}
		}
	}
	if len(seen) < 10 {
		return allKinds()
	}
	// Terminals and honors are always tested: the orphan shape waits on kinds
	// far from any held suit tile.
	for _, kind := range allKinds() {
		if kind.IsOrphan() {
			seen[kind] = true
		}
	}
	kinds := make([]Tile, 0, len(seen))
	for kind := range seen {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

func allKinds() []Tile {
	kinds := make([]Tile, 0, 34)
	for color := ColorCharacter; color < ColorEnd; color++ {
		for point := 0; point < PointCountByColor[color]; point++ {
			kinds = append(kinds, MakeTile(color, point))
		}
	}
	return kinds
}

// IsTenpai reports whether a 13-tile hand waits on at least one kind.
func (h *Hand) IsTenpai() bool {
	return len(h.Waits()) > 0
}

// TenpaiDiscards maps each discardable kind of a 14-tile hand to the waits
// the remaining 13 tiles keep. Kinds whose removal breaks tenpai are absent.
// The hand is restored exactly between candidate removals.
func (h *Hand) TenpaiDiscards() map[Tile][]Tile {
	if len(h.concealed)+len(h.melds)*3 != 14 {
		return nil
	}
	out := make(map[Tile][]Tile)
	tried := make(map[Tile]bool)
	for i := 0; i < len(h.concealed); i++ {
		tile := h.concealed[i]
		kind := tile.Kind()
		if tried[kind] {
			continue
		}
		tried[kind] = true
		h.concealed = append(h.concealed[:i], h.concealed[i+1:]...)
		h.countsValid = false
		if waits := h.Waits(); len(waits) > 0 {
			out[kind] = waits
		}
		h.concealed = append(h.concealed, TileNull)
		copy(h.concealed[i+1:], h.concealed[i:])
		h.concealed[i] = tile
		h.countsValid = false
	}
	return out
}

// CanChi lists the distinct sequence starts usable to claim the tile; chi is
// only legal from the left seat, which the caller enforces.
func (h *Hand) CanChi(tile Tile) []Tile {
	if !tile.IsSuit() {
		return nil
	}
	counts := h.kindCounts()
	kind := tile.Kind()
	color, point := kind.Color(), kind.Point()
	var starts []Tile
	for _, start := range []int{point - 2, point - 1, point} {
		if start < 0 || start > 6 {
			continue
		}
		ok := true
		for p := start; p < start+3; p++ {
			if p == point {
				continue
			}
			if counts[MakeTile(color, p)] == 0 {
				ok = false
				break
			}
		}
		if ok {
			starts = append(starts, MakeTile(color, start))
		}
	}
	return starts
}

func (h *Hand) CanPon(tile Tile) bool {
	return h.Count(tile) >= 2
}

func (h *Hand) CanOpenKan(tile Tile) bool {
	return h.Count(tile) >= 3
}

// AnkanKinds lists kinds held four times, declarable as a concealed kan.
func (h *Hand) AnkanKinds() []Tile {
	var kinds []Tile
	for kind, c := range h.kindCounts() {
		if c == 4 {
			kinds = append(kinds, kind)
		}
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// AddedKanKinds lists kinds held concealed that extend one of this hand's
// pon melds.
func (h *Hand) AddedKanKinds() []Tile {
	var kinds []Tile
	counts := h.kindCounts()
	for _, m := range h.melds {
		if m.Type != MeldPon {
			continue
		}
		kind := m.Tiles[0].Kind()
		if counts[kind] > 0 {
			kinds = append(kinds, kind)
		}
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Chi claims the tile into a sequence beginning at start, moving the other
// two copies out of the concealed tiles.
func (h *Hand) Chi(tile Tile, start Tile, from int32) error {
	kind := tile.Kind()
	tiles := []Tile{tile}
	for p := start.Point(); p < start.Point()+3; p++ {
		t := MakeTile(start.Color(), p)
		if t == kind {
			continue
		}
		got := h.Remove(t)
		if got == TileNull {
			return xerrors.Errorf("chi %s with start %s: %w", tile.Name(), start.Name(), ErrIllegalAction)
		}
		tiles = append(tiles, got)
	}
	meld, err := NewMeld(MeldChi, tiles, tile, from)
	if err != nil {
		return err
	}
	h.melds = append(h.melds, meld)
	return nil
}

func (h *Hand) Pon(tile Tile, from int32) error {
	if !h.CanPon(tile) {
		return xerrors.Errorf("pon %s: %w", tile.Name(), ErrIllegalAction)
	}
	tiles := []Tile{tile}
	for range 2 {
		tiles = append(tiles, h.Remove(tile))
	}
	meld, err := NewMeld(MeldPon, tiles, tile, from)
	if err != nil {
		return err
	}
	h.melds = append(h.melds, meld)
	return nil
}

func (h *Hand) OpenKan(tile Tile, from int32) error {
	if !h.CanOpenKan(tile) {
		return xerrors.Errorf("open kan %s: %w", tile.Name(), ErrIllegalAction)
	}
	tiles := []Tile{tile}
	for range 3 {
		tiles = append(tiles, h.Remove(tile))
	}
	meld, err := NewMeld(MeldOpenKan, tiles, tile, from)
	if err != nil {
		return err
	}
	h.melds = append(h.melds, meld)
	return nil
}

func (h *Hand) Ankan(kind Tile) error {
	if h.Count(kind) < 4 {
		return xerrors.Errorf("ankan %s: %w", kind.Name(), ErrIllegalAction)
	}
	tiles := make([]Tile, 0, 4)
	for range 4 {
		tiles = append(tiles, h.Remove(kind))
	}
	meld, err := NewMeld(MeldAnkan, tiles, TileNull, SeatNull)
	if err != nil {
		return err
	}
	h.melds = append(h.melds, meld)
	return nil
}

// AddedKan promotes a pon of the kind into a kan with the concealed copy.
func (h *Hand) AddedKan(kind Tile) error {
	for _, m := range h.melds {
		if m.Type == MeldPon && m.Tiles[0].Kind() == kind.Kind() && h.Count(kind) > 0 {
			got := h.Remove(kind)
			m.Type = MeldOpenKan
			m.Tiles = append(m.Tiles, got)
			sort.Slice(m.Tiles, func(i, j int) bool { return m.Tiles[i] < m.Tiles[j] })
			return nil
		}
	}
	return xerrors.Errorf("added kan %s: %w", kind.Name(), ErrIllegalAction)
}

// AnkanPreservesWaits reports whether declaring the concealed kan leaves a
// riichi hand's waits unchanged, the only kan a riichi seat may make. The
// hand holds 14 tiles here, the freshly drawn fourth copy included: the
// reference waits are those of the 13 tiles without it.
func (h *Hand) AnkanPreservesWaits(kind Tile) bool {
	if h.Count(kind) < 4 || len(h.concealed)+len(h.melds)*3 != 14 {
		return false
	}

	removed := make([]Tile, 0, 4)
	removed = append(removed, h.Remove(kind))
	before := h.Waits()

	for range 3 {
		removed = append(removed, h.Remove(kind))
	}
	meld, _ := NewMeld(MeldAnkan, removed, TileNull, SeatNull)
	h.melds = append(h.melds, meld)
	after := h.Waits()

	h.melds = h.melds[:len(h.melds)-1]
	h.concealed = append(h.concealed, removed...)
	h.sortConcealed()
	h.countsValid = false

	if len(before) == 0 || len(before) != len(after) {
		return false
	}
	for i := range before {
		if before[i] != after[i] {
			return false
		}
	}
	return true
}

// OrphanKindCount counts the distinct terminal and honor kinds held, used by
// the nine-orphans abortive draw check.
func (h *Hand) OrphanKindCount() int {
	count := 0
	for kind, c := range h.kindCounts() {
		if c > 0 && kind.IsOrphan() {
			count++
		}
	}
	return count
}
