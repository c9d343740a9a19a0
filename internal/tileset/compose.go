package tileset

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/ironsheep/tilepack/internal/imaging"
)

// Composite draws tiles into the cells of layout and applies the default
// transparency key to the finished canvas.
func Composite(tiles []image.Image, layout Layout) (*image.NRGBA, error) {
	return CompositeKey(tiles, layout, imaging.DefaultKey)
}

// CompositeKey is Composite with a caller supplied transparency key.
//
// The canvas starts out opaque black, so padding and unused cells end up
// transparent once the default key is applied. Tiles overwrite their cell
// with no blending, keeping any alpha they carry. Every tile is checked
// before anything is drawn; on error no image is returned.
//
// # Errors
//
//   - ErrEmptyTileSet if tiles is empty
//   - ErrTooManyTiles if tiles exceed layout.Capacity()
//   - ErrTileSizeMismatch if a tile is not exactly one cell in size
func CompositeKey(tiles []image.Image, layout Layout, key color.Color) (*image.NRGBA, error) {
	if len(tiles) == 0 {
		return nil, ErrEmptyTileSet
	}
	if len(tiles) > layout.Capacity() {
		return nil, fmt.Errorf("%w: %d tiles, %d cells", ErrTooManyTiles, len(tiles), layout.Capacity())
	}
	for i, tile := range tiles {
		b := tile.Bounds()
		if b.Dx() != layout.CellHeight || b.Dy() != layout.CellWidth {
			return nil, fmt.Errorf("%w: tile %d is %dx%d, cell is %dx%d",
				ErrTileSizeMismatch, i, b.Dx(), b.Dy(), layout.CellHeight, layout.CellWidth)
		}
	}

	canvas := image.NewNRGBA(layout.Bounds())
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.NRGBA{0, 0, 0, 255}), image.Point{}, draw.Src)

	for i, tile := range tiles {
		draw.Draw(canvas, layout.Cell(i), tile, tile.Bounds().Min, draw.Src)
	}

	return imaging.ApplyTransparencyKey(canvas, key)
}
