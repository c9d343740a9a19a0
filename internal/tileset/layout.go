package tileset

import (
	"fmt"
	"image"
	"math"

	"github.com/ironsheep/tilepack/internal/imaging"
)

// Layout describes the grid a tileset is packed into. It is computed once
// by Plan and never changes afterwards.
//
// The canvas is addressed as (first axis, second axis), where the first
// axis runs down the rows of the written image and the second runs across.
// CanvasWidth is the extent of the first axis and CanvasHeight the extent of
// the second, so the written image is CanvasHeight pixels wide and
// CanvasWidth pixels tall. Tiles fill groups of Columns cells along the
// second axis; each group starts a new step along the first axis.
type Layout struct {
	Columns      int `json:"columns"`
	Rows         int `json:"rows"`
	CellWidth    int `json:"cell_width"`
	CellHeight   int `json:"cell_height"`
	Padding      int `json:"padding"`
	CanvasWidth  int `json:"canvas_width"`
	CanvasHeight int `json:"canvas_height"`
}

// Plan computes the grid for tileCount tiles of tileSize pixels, scaled by
// scale, with padding pixels after every cell.
//
// Columns is ceil(n/sqrt(n)), which gives a near-square grid that favours
// columns over rows; Rows is however many groups of Columns tiles are needed.
// The last group may be short.
//
// # Errors
//
//   - ErrEmptyTileSet if tileCount is zero
//   - ErrInvalidTileSize if tileSize is not positive
//   - ErrInvalidPadding if padding is negative
//   - imaging.ErrInvalidScale if scale is not positive
func Plan(tileCount, tileSize, padding int, scale float64) (Layout, error) {
	if tileCount <= 0 {
		return Layout{}, ErrEmptyTileSet
	}
	if tileSize <= 0 {
		return Layout{}, fmt.Errorf("%w: %d", ErrInvalidTileSize, tileSize)
	}
	if padding < 0 {
		return Layout{}, fmt.Errorf("%w: %d", ErrInvalidPadding, padding)
	}
	if !(scale > 0) || math.IsInf(scale, 0) {
		return Layout{}, fmt.Errorf("%w: %v", imaging.ErrInvalidScale, scale)
	}

	cell := effectiveSize(tileSize, scale)
	n := float64(tileCount)
	columns := int(math.Ceil(n / math.Sqrt(n)))
	rows := (tileCount + columns - 1) / columns

	return Layout{
		Columns:      columns,
		Rows:         rows,
		CellWidth:    cell,
		CellHeight:   cell,
		Padding:      padding,
		CanvasWidth:  rows * (cell + padding),
		CanvasHeight: columns * (cell + padding),
	}, nil
}

// effectiveSize is ceil(size*scale), ignoring float error below 1e-9 so
// that e.g. 10*0.3 is 3 rather than 4.
func effectiveSize(size int, scale float64) int {
	return int(math.Ceil(float64(size)*scale - 1e-9))
}

// Capacity is the number of cells in the grid.
func (l Layout) Capacity() int {
	return l.Columns * l.Rows
}

// Bounds is the rectangle of the written image; see Layout for the axes.
func (l Layout) Bounds() image.Rectangle {
	return image.Rect(0, 0, l.CanvasHeight, l.CanvasWidth)
}

// Cell returns the pixel rectangle of the i'th tile in the written image.
// Tile i sits in group i/Columns at index i%Columns.
func (l Layout) Cell(i int) image.Rectangle {
	group, index := i/l.Columns, i%l.Columns
	first := group * (l.CellWidth + l.Padding)
	second := index * (l.CellHeight + l.Padding)
	return image.Rect(second, first, second+l.CellHeight, first+l.CellWidth)
}
