package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/ericpauley/go-quantize/quantize"
)

// Quantize reduces img to a palette of at most colors entries.
//
// Index 0 of the palette is always fully transparent so masked pixels stay
// transparent; the remaining colors-1 entries come from a median cut of the
// image. Pixels are mapped to their nearest palette entry without dithering.
func Quantize(img image.Image, colors int) (*image.Paletted, error) {
	if colors < 2 || colors > 256 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidColorCount, colors)
	}

	q := quantize.MedianCutQuantizer{}
	palette := append(color.Palette{color.NRGBA{}}, q.Quantize(make(color.Palette, 0, colors-1), img)...)

	b := img.Bounds()
	pm := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), palette)
	draw.Draw(pm, pm.Bounds(), img, b.Min, draw.Src)

	return pm, nil
}
