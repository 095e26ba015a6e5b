package tilequery

import (
	"errors"
	"sort"

	"github.com/automoto/tidewalker/shared/tileprops"
)

// ErrNoSafeCell is returned when no qualifying cell lies within the
// search radius.
var ErrNoSafeCell = errors.New("tilequery: no safe cell in range")

// SafeCellSearch describes a relocation search around an origin cell.
type SafeCellSearch struct {
	Layer  *Layer
	CX, CY int
	// SpanRows is how many rows the entity occupies, counted upward from
	// the candidate cell (the candidate is the row its feet rest in).
	SpanRows int
	Radius   int
}

// FindSafeCell returns the nearest cell the entity can occupy without
// touching solid or submersible tiles. Candidates are visited in three
// passes: the origin row outward (left before right), then rows below the
// origin expanding outward, then a full radial sweep ordered by distance.
func (q Query) FindSafeCell(s SafeCellSearch) (cx, cy int, err error) {
	if s.Layer == nil || s.Radius <= 0 {
		return 0, 0, ErrNoSafeCell
	}
	if s.SpanRows < 1 {
		s.SpanRows = 1
	}

	for d := 1; d <= s.Radius; d++ {
		for _, x := range []int{s.CX - d, s.CX + d} {
			if q.cellIsSafe(s, x, s.CY) {
				return x, s.CY, nil
			}
		}
	}

	for dy := 1; dy <= s.Radius; dy++ {
		y := s.CY + dy
		if q.cellIsSafe(s, s.CX, y) {
			return s.CX, y, nil
		}
		for d := 1; d <= s.Radius; d++ {
			for _, x := range []int{s.CX - d, s.CX + d} {
				if q.cellIsSafe(s, x, y) {
					return x, y, nil
				}
			}
		}
	}

	for _, off := range radialOffsets(s.Radius) {
		x, y := s.CX+off.dx, s.CY+off.dy
		if q.cellIsSafe(s, x, y) {
			return x, y, nil
		}
	}
	return 0, 0, ErrNoSafeCell
}

// cellIsSafe checks the rows the entity would occupy plus the rows just
// above and below it, so that a relocated entity does not immediately
// sample a submersible cell again.
func (q Query) cellIsSafe(s SafeCellSearch, cx, cy int) bool {
	top := cy - s.SpanRows + 1
	for y := top; y <= cy; y++ {
		if !s.Layer.InBounds(cx, y) {
			return false
		}
		if q.CellHas(s.Layer, cx, y, tileprops.Solid) || q.CellHas(s.Layer, cx, y, tileprops.Submersible) {
			return false
		}
	}
	if !s.Layer.InBounds(cx, cy+1) {
		return false
	}
	if q.CellHas(s.Layer, cx, cy+1, tileprops.Submersible) || q.CellHas(s.Layer, cx, top-1, tileprops.Submersible) {
		return false
	}
	return true
}

type offset struct{ dx, dy int }

func radialOffsets(radius int) []offset {
	offs := make([]offset, 0, (2*radius+1)*(2*radius+1))
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			offs = append(offs, offset{dx, dy})
		}
	}
	sort.SliceStable(offs, func(i, j int) bool {
		di := offs[i].dx*offs[i].dx + offs[i].dy*offs[i].dy
		dj := offs[j].dx*offs[j].dx + offs[j].dy*offs[j].dy
		if di != dj {
			return di < dj
		}
		if offs[i].dy != offs[j].dy {
			return offs[i].dy < offs[j].dy
		}
		return offs[i].dx < offs[j].dx
	})
	return offs
}
