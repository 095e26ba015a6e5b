// Package tilequery maps continuous world positions onto level grid cells
// and answers property questions about the cells around an entity.
package tilequery

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Layer is one tile layer of a level grid. Cells hold tile identifiers in
// row-major order; 0 marks an empty cell.
type Layer struct {
	Name   string
	Width  int // cells
	Height int // cells
	CellW  float64
	CellH  float64
	Cells  []uint32
}

// NewLayer allocates an empty layer of the given size.
func NewLayer(name string, width, height int, cellW, cellH float64) *Layer {
	return &Layer{
		Name:   name,
		Width:  width,
		Height: height,
		CellW:  cellW,
		CellH:  cellH,
		Cells:  make([]uint32, width*height),
	}
}

// InBounds reports whether the cell coordinate lies inside the layer.
func (l *Layer) InBounds(cx, cy int) bool {
	return l != nil && cx >= 0 && cy >= 0 && cx < l.Width && cy < l.Height
}

// TileAt returns the tile identifier at a cell, or 0 when out of bounds.
func (l *Layer) TileAt(cx, cy int) uint32 {
	if !l.InBounds(cx, cy) {
		return 0
	}
	i := cy*l.Width + cx
	if i >= len(l.Cells) {
		return 0
	}
	return l.Cells[i]
}

// SetTile writes a tile identifier; out-of-bounds writes are ignored.
func (l *Layer) SetTile(cx, cy int, id uint32) {
	if !l.InBounds(cx, cy) {
		return
	}
	l.Cells[cy*l.Width+cx] = id
}

// CellAt converts a world position into a cell coordinate by floor
// division against the cell size.
func (l *Layer) CellAt(pos dmath.Vec2) (cx, cy int) {
	if l == nil || l.CellW <= 0 || l.CellH <= 0 {
		return 0, 0
	}
	return int(math.Floor(pos.X / l.CellW)), int(math.Floor(pos.Y / l.CellH))
}

// CellOrigin returns the world position of a cell's top-left corner.
func (l *Layer) CellOrigin(cx, cy int) dmath.Vec2 {
	return dmath.Vec2{X: float64(cx) * l.CellW, Y: float64(cy) * l.CellH}
}

// PixelSize returns the layer extent in world units.
func (l *Layer) PixelSize() (w, h float64) {
	if l == nil {
		return 0, 0
	}
	return float64(l.Width) * l.CellW, float64(l.Height) * l.CellH
}
