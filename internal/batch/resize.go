package batch

import (
	"fmt"
	"image"
	"log"
	"path/filepath"

	"github.com/ironsheep/tilepack/internal/imaging"
	"github.com/ironsheep/tilepack/internal/tileset"
)

// ResizeOptions configures ResizeDirectory.
type ResizeOptions struct {
	// Dir holds the images to rescale.
	Dir string

	// Output is the directory the rescaled images are written to, under
	// their original file names. It must differ from Dir.
	Output string

	Scale float64
}

// ResizedImage describes one rescaled image.
type ResizedImage struct {
	Input  string `json:"input"`
	Output string `json:"output"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// ResizeResult lists every image written by a resize job.
type ResizeResult struct {
	Images []ResizedImage `json:"images"`
}

// ResizeDirectory rescales every image in opts.Dir with nearest-neighbor
// sampling and writes the results to opts.Output.
func ResizeDirectory(cache *imaging.ImageCache, opts ResizeOptions, logger *log.Logger) (*ResizeResult, error) {
	in, err := filepath.Abs(opts.Dir)
	if err != nil {
		return nil, err
	}
	out, err := filepath.Abs(opts.Output)
	if err != nil {
		return nil, err
	}
	if in == out {
		return nil, fmt.Errorf("output directory must differ from input directory %s", opts.Dir)
	}

	paths, err := imaging.ListImages(opts.Dir)
	if err != nil {
		return nil, err
	}
	logger.Printf("Found %d images in %s", len(paths), opts.Dir)

	scaled := make([]image.Image, len(paths))
	for i, path := range paths {
		img, err := cache.Load(path)
		if err != nil {
			return nil, err
		}
		if scaled[i], err = tileset.Resize(img, opts.Scale); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	result := &ResizeResult{Images: make([]ResizedImage, 0, len(paths))}
	for i, path := range paths {
		dst := filepath.Join(opts.Output, imaging.EncodableName(filepath.Base(path)))
		if err := imaging.Save(dst, scaled[i]); err != nil {
			return nil, err
		}

		b := scaled[i].Bounds()
		logger.Printf("%s => %s (%dx%d)", path, dst, b.Dx(), b.Dy())
		result.Images = append(result.Images, ResizedImage{
			Input:  path,
			Output: dst,
			Width:  b.Dx(),
			Height: b.Dy(),
		})
	}

	return result, nil
}

// ResizeFile rescales a single image file into output.
func ResizeFile(cache *imaging.ImageCache, input, output string, scale float64) (*ResizedImage, error) {
	img, err := cache.Load(input)
	if err != nil {
		return nil, err
	}
	scaled, err := tileset.Resize(img, scale)
	if err != nil {
		return nil, err
	}
	if err := imaging.Save(output, scaled); err != nil {
		return nil, err
	}

	b := scaled.Bounds()
	return &ResizedImage{Input: input, Output: output, Width: b.Dx(), Height: b.Dy()}, nil
}
