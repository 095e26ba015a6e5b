package tilequery

import (
	"github.com/automoto/tidewalker/shared/tileprops"
	dmath "github.com/yohamta/donburi/features/math"
)

// Query resolves tile properties near world positions. It holds no
// per-frame cache; every call reflects the position it is given.
type Query struct {
	Index *tileprops.Index
}

// New returns a Query over idx.
func New(idx *tileprops.Index) Query {
	return Query{Index: idx}
}

// HasPropertyNear samples the cell containing pos and the cells directly
// above and below it, returning true if any of them carries the property.
func (q Query) HasPropertyNear(pos dmath.Vec2, layer *Layer, name string) bool {
	if layer == nil || q.Index == nil {
		return false
	}
	cx, cy := layer.CellAt(pos)
	for dy := -1; dy <= 1; dy++ {
		if q.CellHas(layer, cx, cy+dy, name) {
			return true
		}
	}
	return false
}

// CellHas reports whether the tile in a single cell carries the property.
// Out-of-bounds and empty cells carry nothing.
func (q Query) CellHas(layer *Layer, cx, cy int, name string) bool {
	if !layer.InBounds(cx, cy) {
		return false
	}
	id := layer.TileAt(cx, cy)
	if id == 0 {
		return false
	}
	return q.Index.HasProperty(id, name)
}
