package tileset

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ironsheep/tilepack/internal/imaging"
)

// Config holds the parameters of one tileset build.
type Config struct {
	// TileSize is the edge length of each source tile in pixels.
	TileSize int

	// Padding is the gap in pixels left after every cell.
	Padding int

	// Scale is applied to every tile before packing. It must be positive.
	Scale float64

	// Key is the transparency key. Nil means imaging.DefaultKey.
	Key color.Color
}

// Create packs tiles into a single tileset image: each tile is scaled by
// scale, the grid is planned for len(tiles) cells and the tiles are
// composited in order with pure black made transparent.
func Create(tiles []image.Image, tileSize, padding int, scale float64) (*image.NRGBA, error) {
	img, _, err := Build(tiles, Config{TileSize: tileSize, Padding: padding, Scale: scale})
	return img, err
}

// Build is Create driven by a Config. It also returns the planned layout so
// callers can report where each tile was placed.
func Build(tiles []image.Image, cfg Config) (*image.NRGBA, Layout, error) {
	key := cfg.Key
	if key == nil {
		key = imaging.DefaultKey
	}

	layout, err := Plan(len(tiles), cfg.TileSize, cfg.Padding, cfg.Scale)
	if err != nil {
		return nil, Layout{}, err
	}

	scaled := make([]image.Image, len(tiles))
	for i, tile := range tiles {
		s, err := imaging.Scale(tile, cfg.Scale)
		if err != nil {
			return nil, Layout{}, fmt.Errorf("tile %d: %w", i, err)
		}
		scaled[i] = s
	}

	img, err := CompositeKey(scaled, layout, key)
	if err != nil {
		return nil, Layout{}, err
	}
	return img, layout, nil
}

// Resize scales a single image by scale with nearest-neighbor sampling.
func Resize(img image.Image, scale float64) (*image.NRGBA, error) {
	return imaging.Scale(img, scale)
}
