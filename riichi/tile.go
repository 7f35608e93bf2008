package riichi

import (
	"strconv"
	"strings"

	"golang.org/x/xerrors"
)

type EColor int

const (
	ColorUndefined EColor = -1
	ColorCharacter EColor = iota - 1 // 万 (manzu)
	ColorBamboo                      // 索 (souzu)
	ColorDot                         // 筒 (pinzu)
	ColorWind                        // 东南西北
	ColorDragon                      // 白发中
	ColorEnd
	ColorBegin = ColorCharacter
)

var PointCountByColor = [ColorEnd]int{9, 9, 9, 4, 3}

const (
	FlagNormal = 1
	FlagRed    = 2
)

type Tile int32

var (
	TileNull  Tile = -1
	TileInf   Tile = MakeTile(ColorEnd, 0)
	TileEast  Tile = MakeTile(ColorWind, 0)
	TileSouth Tile = MakeTile(ColorWind, 1)
	TileWest  Tile = MakeTile(ColorWind, 2)
	TileNorth Tile = MakeTile(ColorWind, 3)
	TileHaku  Tile = MakeTile(ColorDragon, 0) // 白
	TileHatsu Tile = MakeTile(ColorDragon, 1) // 发
	TileChun  Tile = MakeTile(ColorDragon, 2) // 中
)

const SeatNull int32 = -1

func MakeTile(color EColor, point int) Tile {
	return Tile(int(color)<<8 | point<<4 | FlagNormal)
}

func MakeRedTile(color EColor, point int) Tile {
	return Tile(int(color)<<8 | point<<4 | FlagRed)
}

// NewTile validates ranges before encoding; out-of-range input is rejected,
// never coerced.
func NewTile(color EColor, point int) (Tile, error) {
	if color < ColorBegin || color >= ColorEnd {
		return TileNull, xerrors.Errorf("color %d: %w", color, ErrBadInput)
	}
	if point < 0 || point >= PointCountByColor[color] {
		return TileNull, xerrors.Errorf("point %d for color %d: %w", point, color, ErrBadInput)
	}
	return MakeTile(color, point), nil
}

func (t Tile) Color() EColor {
	return EColor((t >> 8) & 0x0F)
}

func (t Tile) Point() int {
	return int((t >> 4) & 0x0F)
}

func (t Tile) Info() (EColor, int) {
	return t.Color(), t.Point()
}

func (t Tile) Flag() int {
	return int(t & 0x0F)
}

func (t Tile) IsRed() bool {
	return t.Flag() == FlagRed
}

// Kind strips the red flag: two tiles of one kind are interchangeable for
// hand composition and only differ for dora counting.
func (t Tile) Kind() Tile {
	if !t.IsValid() {
		return t
	}
	return t&^0x0F | FlagNormal
}

func (t Tile) IsValid() bool {
	return t > 0 && t < TileInf
}

func (t Tile) IsSuit() bool {
	return t.IsValid() && t.Color() >= ColorCharacter && t.Color() <= ColorDot
}

func (t Tile) IsHonor() bool {
	return t.IsValid() && (t.Color() == ColorWind || t.Color() == ColorDragon)
}

func (t Tile) IsDragon() bool {
	return t.IsValid() && t.Color() == ColorDragon
}

func (t Tile) IsWind() bool {
	return t.IsValid() && t.Color() == ColorWind
}

func (t Tile) IsTerminal() bool {
	return t.IsSuit() && (t.Point() == 0 || t.Point() == 8)
}

// IsOrphan reports a terminal or honor tile (幺九).
func (t Tile) IsOrphan() bool {
	return t.IsHonor() || t.IsTerminal()
}

func (t Tile) IsSimple() bool {
	return t.IsSuit() && t.Point() >= 1 && t.Point() <= 7
}

// Next returns the dora successor: numerals wrap 9->1 within suit, winds
// cycle E->S->W->N->E, dragons cycle Haku->Hatsu->Chun->Haku.
func (t Tile) Next() Tile {
	if !t.IsValid() {
		return t
	}
	color := t.Color()
	count := PointCountByColor[color]
	return MakeTile(color, (t.Point()+1)%count)
}

func (t Tile) Name() string {
	c, p := t.Info()
	prefix := ""
	if t.IsRed() {
		prefix = "r"
	}
	switch c {
	case ColorCharacter:
		return prefix + strconv.Itoa(p+1) + "m"
	case ColorBamboo:
		return prefix + strconv.Itoa(p+1) + "s"
	case ColorDot:
		return prefix + strconv.Itoa(p+1) + "p"
	case ColorWind:
		return strconv.Itoa(p+1) + "z"
	case ColorDragon:
		return strconv.Itoa(p+5) + "z"
	default:
		return ""
	}
}

func TilesName(tiles []Tile) string {
	var names []string
	for _, tile := range tiles {
		names = append(names, tile.Name())
	}
	return strings.Join(names, ", ")
}

var suitByRune = map[byte]EColor{
	'm': ColorCharacter,
	's': ColorBamboo,
	'p': ColorDot,
}

// NameToTile parses the short notation used by preset walls: "5m", "r5p",
// "1z".."4z" winds, "5z".."7z" dragons.
func NameToTile(name string) Tile {
	name = strings.TrimSpace(name)
	red := false
	if strings.HasPrefix(name, "r") {
		red = true
		name = name[1:]
	}
	if len(name) != 2 {
		return TileNull
	}
	num := int(name[0] - '0')
	if name[1] == 'z' {
		if red || num < 1 || num > 7 {
			return TileNull
		}
		if num <= 4 {
			return MakeTile(ColorWind, num-1)
		}
		return MakeTile(ColorDragon, num-5)
	}
	color, ok := suitByRune[name[1]]
	if !ok || num < 1 || num > 9 {
		return TileNull
	}
	if red {
		return MakeRedTile(color, num-1)
	}
	return MakeTile(color, num-1)
}

func NamesToTiles(names string) []Tile {
	parts := strings.Split(names, ",")
	res := make([]Tile, len(parts))
	for i, name := range parts {
		res[i] = NameToTile(name)
	}
	return res
}

func makeTiles(t Tile, count int) []Tile {
	res := make([]Tile, count)
	for i := range res {
		res[i] = t
	}
	return res
}

func GetNextSeat(seat int32) int32 {
	return (seat + 1) % SeatCount
}

func TilesInt32(tiles []Tile) []int32 {
	res := make([]int32, len(tiles))
	for i, t := range tiles {
		res[i] = int32(t)
	}
	return res
}
