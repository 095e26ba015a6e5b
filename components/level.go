package components

import (
	"github.com/automoto/tidewalker/shared/leveldata"
	"github.com/automoto/tidewalker/shared/tileprops"
	"github.com/automoto/tidewalker/shared/tilequery"
	"github.com/yohamta/donburi"
)

// LevelData is the loaded level and the indexes built from it. Index is
// replaced wholesale on reload, never mutated.
type LevelData struct {
	CurrentLevel *leveldata.Level
	Index        *tileprops.Index
	Query        tilequery.Query
	Surface      *tilequery.Layer
}

var Level = donburi.NewComponentType[LevelData]()
