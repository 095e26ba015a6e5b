// Package leveldata provides TMX level parsing. It has no dependencies on
// ebitengine, donburi, or resolv: pure data only.
package leveldata

import (
	"github.com/automoto/tidewalker/shared/tileprops"
	"github.com/automoto/tidewalker/shared/tilequery"
)

// Level holds everything the movement core needs from a TMX file: the raw
// tile-definition table, the tile layers as grids, and spawn markers.
type Level struct {
	Name        string
	Tiles       tileprops.RawTable
	Layers      map[string]*tilequery.Layer
	LayerNames  []string // in file order
	SpawnPoints []SpawnPoint
	SafePoint   *SpawnPoint // optional designer-placed relocation fallback
	TileWidth   int
	TileHeight  int
	MapWidth    int // pixels
	MapHeight   int // pixels
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// Layer returns the named layer, or nil.
func (l *Level) Layer(name string) *tilequery.Layer {
	if l == nil {
		return nil
	}
	return l.Layers[name]
}
