package scenes

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/automoto/tidewalker/shared/leveldata"
)

// levelSet is the catalogue of loadable levels. Levels are re-read from
// the file system on reload so edits on disk are picked up.
type levelSet struct {
	fsys   fs.FS
	dir    string
	levels map[string]*leveldata.Level
	names  []string
}

func loadLevelSet(fsys fs.FS, dir string) (*levelSet, error) {
	levels, names, err := leveldata.LoadAll(fsys, dir)
	if err != nil {
		return nil, err
	}
	return &levelSet{fsys: fsys, dir: dir, levels: levels, names: names}, nil
}

// pick returns the first of the candidates that names a known level, or
// the first level alphabetically.
func (s *levelSet) pick(candidates ...string) *leveldata.Level {
	for _, name := range candidates {
		if level, ok := s.levels[name]; ok {
			return level
		}
	}
	return s.levels[s.names[0]]
}

func (s *levelSet) get(name string) (*leveldata.Level, error) {
	level, ok := s.levels[name]
	if !ok {
		return nil, fmt.Errorf("unknown level %q", name)
	}
	return level, nil
}

// reload re-reads one level from the file system and replaces the cached
// copy. A level that fails to parse leaves the cached copy in place.
func (s *levelSet) reload(name string) (*leveldata.Level, error) {
	level, err := leveldata.Load(s.fsys, path.Join(s.dir, name+".tmx"))
	if err != nil {
		return nil, err
	}
	if _, known := s.levels[name]; !known {
		s.names = append(s.names, name)
	}
	s.levels[name] = level
	return level, nil
}

// levelName maps a changed file on disk to the level it belongs to. A
// tileset edit maps to current, since any level may reference it.
func levelName(changed, current string) string {
	base := filepath.Base(changed)
	if strings.EqualFold(filepath.Ext(base), ".tmx") {
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
	return current
}
