package riichi

import (
	"fmt"
	"maps"
	"math/rand"
	"path/filepath"

	"github.com/spf13/viper"
)

// Manual loads a preset deal from a yaml file. Each entry in "hands" is a
// comma-separated tile list for one seat; the remaining wall is shuffled
// around the presets. Used for debugging and reproducible tests.
type Manual struct {
	vp *viper.Viper
}

func NewManual(name string) *Manual {
	m := &Manual{
		vp: viper.New(),
	}
	m.vp.SetConfigType("yaml")
	m.vp.SetConfigFile(filepath.Join(".", "initcard", fmt.Sprintf("%s.yaml", name)))
	if err := m.vp.ReadInConfig(); err != nil {
		return nil
	}
	return m
}

func (m *Manual) Enabled() bool {
	if m == nil {
		return false
	}
	return m.vp.GetBool("enable")
}

// Wall builds the full deal order: each preset hand first, padded to 13
// tiles, the shuffled rest after.
func (m *Manual) Wall() (*Wall, error) {
	tiles, err := m.load(standardTiles(), SeatCount, 13)
	if err != nil {
		return nil, err
	}
	return NewWallFromTiles(tiles), nil
}

func (m *Manual) load(tiles map[Tile]int, playerCount, handCount int) ([]Tile, error) {
	hands := m.vp.GetStringSlice("hands")
	groups := make([][]Tile, len(hands))
	for i := range hands {
		groups[i] = NamesToTiles(hands[i])
	}

	tmp := make(map[Tile]int)
	maps.Copy(tmp, tiles)
	for _, g := range groups {
		for _, t := range g {
			tmp[t]--
			if tmp[t] < 0 {
				return nil, fmt.Errorf("tile %s overflow", t.Name())
			}
		}
	}

	var rests []Tile
	for t, count := range tmp {
		if count > 0 {
			rests = append(rests, makeTiles(t, count)...)
		}
	}

	m.shuffle(rests)
	var out []Tile
	for i := range len(groups) {
		out = append(out, groups[i]...)
		more := handCount - len(groups[i])
		if i < playerCount {
			out = append(out, rests[:more]...)
			rests = rests[more:]
		}
	}
	out = append(out, rests...)
	return out, nil
}

func (m *Manual) shuffle(s []Tile) {
	for i := len(s) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
