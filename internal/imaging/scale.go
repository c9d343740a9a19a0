package imaging

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// Scale resizes img by factor using nearest-neighbor sampling.
//
// The result is round(width*factor) by round(height*factor) pixels. Every
// destination pixel is a copy of exactly one source pixel, so no new colours
// are introduced. A factor of 1 returns a pixel-identical copy. The returned
// image never shares memory with img and its bounds always start at (0,0).
//
// # Errors
//
//   - ErrInvalidScale if factor is zero, negative, NaN or infinite
func Scale(img image.Image, factor float64) (*image.NRGBA, error) {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScale, factor)
	}

	bounds := img.Bounds()
	width := int(math.Round(float64(bounds.Dx()) * factor))
	height := int(math.Round(float64(bounds.Dy()) * factor))

	// imaging.Resize treats a zero dimension as "keep aspect ratio"
	if width == 0 || height == 0 {
		return image.NewNRGBA(image.Rect(0, 0, width, height)), nil
	}

	return imaging.Resize(img, width, height, imaging.NearestNeighbor), nil
}
