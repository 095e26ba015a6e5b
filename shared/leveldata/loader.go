package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/tidewalker/shared/tileprops"
	"github.com/automoto/tidewalker/shared/tilequery"
	"github.com/lafriks/go-tiled"
)

// Object group names recognised in TMX files.
const (
	GroupPlayerSpawn = "PlayerSpawn"
	GroupSafePoint   = "SafePoint"
)

// Load parses a TMX file. It takes an fs.FS so callers can pass embed.FS
// or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:       strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Tiles:      rawTileTable(levelMap),
		Layers:     make(map[string]*tilequery.Layer, len(levelMap.Layers)),
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
		MapWidth:   levelMap.Width * levelMap.TileWidth,
		MapHeight:  levelMap.Height * levelMap.TileHeight,
	}

	for _, layer := range levelMap.Layers {
		grid := tilequery.NewLayer(layer.Name, levelMap.Width, levelMap.Height,
			float64(levelMap.TileWidth), float64(levelMap.TileHeight))
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				i := y*levelMap.Width + x
				if i >= len(layer.Tiles) {
					continue
				}
				tile := layer.Tiles[i]
				if tile == nil || tile.IsNil() || tile.Tileset == nil {
					continue
				}
				grid.SetTile(x, y, tile.Tileset.FirstGID+tile.ID)
			}
		}
		level.Layers[layer.Name] = grid
		level.LayerNames = append(level.LayerNames, layer.Name)
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupPlayerSpawn:
			for _, o := range og.Objects {
				level.SpawnPoints = append(level.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case GroupSafePoint:
			if len(og.Objects) > 0 && level.SafePoint == nil {
				o := og.Objects[0]
				level.SafePoint = &SpawnPoint{X: o.X, Y: o.Y}
			}
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.Slice(level.SpawnPoints, func(i, j int) bool {
		return level.SpawnPoints[i].X < level.SpawnPoints[j].X
	})

	return level, nil
}

// rawTileTable flattens every tileset's per-tile properties into a table
// keyed by global tile id.
func rawTileTable(m *tiled.Map) tileprops.RawTable {
	raw := make(tileprops.RawTable)
	for _, ts := range m.Tilesets {
		if ts == nil {
			continue
		}
		for _, tt := range ts.Tiles {
			if tt == nil {
				continue
			}
			props := make([]tileprops.RawProperty, 0, len(tt.Properties))
			for _, p := range tt.Properties {
				if p == nil {
					continue
				}
				props = append(props, tileprops.RawProperty{
					Name:  p.Name,
					Type:  p.Type,
					Value: p.Value,
				})
			}
			raw[ts.FirstGID+tt.ID] = props
		}
	}
	return raw
}

// LoadAll discovers all .tmx files in levelsDir within fsys, loads each,
// and returns a map keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := Load(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
