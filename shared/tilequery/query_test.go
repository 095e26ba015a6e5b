package tilequery

import (
	"testing"

	"github.com/automoto/tidewalker/shared/tileprops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

const (
	tileWall   uint32 = 1
	tileWater  uint32 = 2
	tileLadder uint32 = 3
)

func testIndex() *tileprops.Index {
	return tileprops.Build(tileprops.RawTable{
		tileWall:   {{Name: tileprops.Solid, Type: "bool", Value: "true"}},
		tileWater:  {{Name: tileprops.Submersible, Type: "bool", Value: "true"}},
		tileLadder: {{Name: tileprops.Climbable, Type: "bool", Value: "true"}},
	})
}

// layerFromRows builds a 16px grid from an ASCII picture:
// '.' empty, '#' wall, '~' water, 'H' ladder.
func layerFromRows(rows ...string) *Layer {
	l := NewLayer("world", len(rows[0]), len(rows), 16, 16)
	for y, row := range rows {
		for x, c := range row {
			switch c {
			case '#':
				l.SetTile(x, y, tileWall)
			case '~':
				l.SetTile(x, y, tileWater)
			case 'H':
				l.SetTile(x, y, tileLadder)
			}
		}
	}
	return l
}

func center(cx, cy int) dmath.Vec2 {
	return dmath.Vec2{X: float64(cx)*16 + 8, Y: float64(cy)*16 + 8}
}

func TestCellAtFloors(t *testing.T) {
	l := NewLayer("world", 4, 4, 16, 16)
	cases := []struct {
		pos    dmath.Vec2
		cx, cy int
	}{
		{dmath.Vec2{X: 0, Y: 0}, 0, 0},
		{dmath.Vec2{X: 15.99, Y: 16}, 0, 1},
		{dmath.Vec2{X: 32.5, Y: 47.9}, 2, 2},
		{dmath.Vec2{X: -0.5, Y: -16.1}, -1, -2},
	}
	for _, c := range cases {
		cx, cy := l.CellAt(c.pos)
		assert.Equal(t, c.cx, cx)
		assert.Equal(t, c.cy, cy)
	}
}

func TestHasPropertyNearSamplesThreeCells(t *testing.T) {
	l := layerFromRows(
		"....",
		"....",
		"....",
		"~~~~",
		"####",
	)
	q := New(testIndex())

	assert.True(t, q.HasPropertyNear(center(1, 3), l, tileprops.Submersible), "inside the cell")
	assert.True(t, q.HasPropertyNear(center(1, 2), l, tileprops.Submersible), "cell below")
	assert.False(t, q.HasPropertyNear(center(1, 1), l, tileprops.Submersible), "two cells above")
	assert.True(t, q.HasPropertyNear(center(1, 4), l, tileprops.Submersible), "cell above")
	assert.False(t, q.HasPropertyNear(center(1, 3), l, tileprops.Climbable))
	assert.False(t, q.HasPropertyNear(dmath.Vec2{X: -40, Y: 60}, l, tileprops.Submersible))
}

func TestHasPropertyNearWithoutIndexOrLayer(t *testing.T) {
	l := layerFromRows("~")
	assert.False(t, Query{}.HasPropertyNear(center(0, 0), l, tileprops.Submersible))
	assert.False(t, New(testIndex()).HasPropertyNear(center(0, 0), nil, tileprops.Submersible))
}

func TestFindSafeCellPrefersSameRowLeftFirst(t *testing.T) {
	l := layerFromRows(
		"..........",
		"..........",
		"...~~~....",
		"##########",
	)
	q := New(testIndex())

	cx, cy, err := q.FindSafeCell(SafeCellSearch{Layer: l, CX: 4, CY: 2, SpanRows: 1, Radius: 4})
	require.NoError(t, err)
	assert.Equal(t, 2, cx)
	assert.Equal(t, 2, cy)
}

func TestFindSafeCellFallsBackToRight(t *testing.T) {
	l := layerFromRows(
		"..........",
		"..........",
		"###~~~....",
		"##########",
	)
	q := New(testIndex())

	cx, cy, err := q.FindSafeCell(SafeCellSearch{Layer: l, CX: 4, CY: 2, SpanRows: 1, Radius: 4})
	require.NoError(t, err)
	assert.Equal(t, 6, cx)
	assert.Equal(t, 2, cy)
}

func TestFindSafeCellRowsBelowBeforeRadial(t *testing.T) {
	l := layerFromRows(
		".....",
		".....",
		"#~~~#",
		".....",
		".....",
		"#####",
	)
	q := New(testIndex())

	// The radial sweep alone would choose (2,0); the row-below pass wins.
	cx, cy, err := q.FindSafeCell(SafeCellSearch{Layer: l, CX: 2, CY: 2, SpanRows: 1, Radius: 2})
	require.NoError(t, err)
	assert.Equal(t, 0, cx)
	assert.Equal(t, 3, cy)
}

func TestFindSafeCellRadialSweep(t *testing.T) {
	l := layerFromRows(
		".....",
		".....",
		"~~~~~",
		"#####",
	)
	q := New(testIndex())

	cx, cy, err := q.FindSafeCell(SafeCellSearch{Layer: l, CX: 2, CY: 2, SpanRows: 1, Radius: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, cx)
	assert.Equal(t, 0, cy)
}

func TestFindSafeCellRespectsHeadroom(t *testing.T) {
	l := layerFromRows(
		"......",
		"##....",
		"..~~..",
		"######",
	)
	q := New(testIndex())

	cx, cy, err := q.FindSafeCell(SafeCellSearch{Layer: l, CX: 2, CY: 2, SpanRows: 1, Radius: 3})
	require.NoError(t, err)
	assert.Equal(t, 1, cx)
	assert.Equal(t, 2, cy)

	// A two-row body does not fit under the overhang on the left.
	cx, cy, err = q.FindSafeCell(SafeCellSearch{Layer: l, CX: 2, CY: 2, SpanRows: 2, Radius: 3})
	require.NoError(t, err)
	assert.Equal(t, 4, cx)
	assert.Equal(t, 2, cy)
}

func TestFindSafeCellNoneInRange(t *testing.T) {
	l := layerFromRows(
		"~~~",
		"~~~",
		"~~~",
	)
	q := New(testIndex())

	_, _, err := q.FindSafeCell(SafeCellSearch{Layer: l, CX: 1, CY: 1, SpanRows: 1, Radius: 3})
	assert.ErrorIs(t, err, ErrNoSafeCell)

	_, _, err = q.FindSafeCell(SafeCellSearch{Layer: nil, Radius: 3})
	assert.ErrorIs(t, err, ErrNoSafeCell)
}
