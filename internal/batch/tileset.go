package batch

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"

	"github.com/ironsheep/tilepack/internal/imaging"
	"github.com/ironsheep/tilepack/internal/tileset"
)

// TilesetOptions configures CreateTileset.
type TilesetOptions struct {
	// Dir holds the tile images. Every supported image directly inside it
	// is packed, in file name order.
	Dir string

	// Output is the tileset file to write. It is always PNG encoded.
	Output string

	TileSize int
	Padding  int
	Scale    float64

	// Key is the transparency key; nil means opaque black.
	Key color.Color

	// Colors, when non-zero, writes a paletted PNG with at most this many
	// colours instead of a full colour one.
	Colors int

	// Index, when set, is where a JSON list of tile placements is written.
	Index string

	// TSX, when set, is where a Tiled tileset description is written.
	TSX string
}

// TilesetResult describes a written tileset.
type TilesetResult struct {
	Output     string              `json:"output"`
	Index      string              `json:"index,omitempty"`
	TSX        string              `json:"tsx,omitempty"`
	Tiles      int                 `json:"tiles"`
	Width      int                 `json:"width"`
	Height     int                 `json:"height"`
	Layout     tileset.Layout      `json:"layout"`
	Placements []tileset.Placement `json:"placements"`
}

// CreateTileset packs the images in opts.Dir into opts.Output.
func CreateTileset(cache *imaging.ImageCache, opts TilesetOptions, logger *log.Logger) (*TilesetResult, error) {
	if opts.Output == "" {
		return nil, fmt.Errorf("no output path given")
	}

	paths, err := imaging.ListImages(opts.Dir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%s: %w", opts.Dir, tileset.ErrEmptyTileSet)
	}
	logger.Printf("Found %d tiles in %s", len(paths), opts.Dir)

	tiles, err := cache.LoadAll(paths)
	if err != nil {
		return nil, err
	}

	img, layout, err := tileset.Build(tiles, tileset.Config{
		TileSize: opts.TileSize,
		Padding:  opts.Padding,
		Scale:    opts.Scale,
		Key:      opts.Key,
	})
	if err != nil {
		return nil, err
	}

	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	placements := tileset.Placements(names, layout)
	for _, p := range placements {
		logger.Printf("%s => %d,%d %dx%d", p.Name, p.X, p.Y, p.Width, p.Height)
	}

	var index []byte
	if opts.Index != "" {
		if index, err = json.MarshalIndent(placements, "", "  "); err != nil {
			return nil, fmt.Errorf("failed to encode index: %w", err)
		}
	}

	var tsx []byte
	if opts.TSX != "" {
		if tsx, err = tileset.EncodeTSX(tileset.TiledTileset(layout, len(tiles), opts.Output, opts.TSX)); err != nil {
			return nil, err
		}
	}

	var out image.Image = img
	if opts.Colors != 0 {
		if out, err = imaging.Quantize(img, opts.Colors); err != nil {
			return nil, err
		}
	}

	files := []pendingFile{{opts.Output, func(path string) error { return imaging.SavePNG(path, out) }}}
	if index != nil {
		files = append(files, pendingFile{opts.Index, func(path string) error {
			return imaging.WriteFile(path, append(index, '\n'))
		}})
	}
	if tsx != nil {
		files = append(files, pendingFile{opts.TSX, func(path string) error { return imaging.WriteFile(path, tsx) }})
	}
	if err := commit(files, logger); err != nil {
		return nil, err
	}

	return &TilesetResult{
		Output:     opts.Output,
		Index:      opts.Index,
		TSX:        opts.TSX,
		Tiles:      len(tiles),
		Width:      img.Bounds().Dx(),
		Height:     img.Bounds().Dy(),
		Layout:     layout,
		Placements: placements,
	}, nil
}

// pendingFile is one output of a job and the function that writes it.
type pendingFile struct {
	path  string
	write func(path string) error
}

// commit writes files in order. If any write fails, the files already
// written are removed again so a failed job leaves nothing behind.
func commit(files []pendingFile, logger *log.Logger) error {
	written := make([]string, 0, len(files))
	for _, f := range files {
		if err := f.write(f.path); err != nil {
			for _, path := range written {
				if rmErr := os.Remove(path); rmErr != nil {
					logger.Printf("failed to remove %s: %v", path, rmErr)
				}
			}
			return err
		}
		logger.Printf("Wrote %s", f.path)
		written = append(written, f.path)
	}
	return nil
}
