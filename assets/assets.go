package assets

import (
	"embed"
	"io/fs"
)

// LevelsDir is the directory of .tmx files inside Levels.
const LevelsDir = "levels"

var (
	//go:embed all:levels
	assetFS embed.FS
)

// Levels returns the levels bundled into the binary.
func Levels() fs.FS {
	return assetFS
}
