package imaging

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultKey is the transparency key used by ApplyTransparency: pure black
// at full opacity.
//
// Tile art that uses pure black as a background sentinel gets that
// background removed when packed. The rule cannot tell a background pixel
// from an intentionally black one, so genuine black content always becomes
// transparent. Use a near-black such as #010101 for pixels that must survive.
var DefaultKey = color.NRGBA{R: 0, G: 0, B: 0, A: 255}

// Channels reports how many 8-bit channels an image carries:
//   - 1 for grayscale and alpha-only images
//   - 3 for opaque colour images (YCbCr, CMYK, opaque palettes)
//   - 4 for colour images with an alpha channel
func Channels(img image.Image) int {
	switch m := img.(type) {
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	case *image.Paletted:
		for _, c := range m.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return 4
			}
		}
		return 3
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64, *image.NYCbCrA:
		return 4
	}

	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model, color.AlphaModel, color.Alpha16Model:
		return 1
	case color.YCbCrModel, color.CMYKModel:
		return 3
	}
	return 4
}

// ApplyTransparency converts img to a 4-channel image and replaces every
// pixel equal to DefaultKey with fully transparent black.
func ApplyTransparency(img image.Image) (*image.NRGBA, error) {
	return ApplyTransparencyKey(img, DefaultKey)
}

// ApplyTransparencyKey is ApplyTransparency with a caller supplied key.
//
// A 3-channel image gains an opaque alpha channel before matching, so an
// opaque key matches it. Matching pixels become (0,0,0,0). The operation is
// idempotent: masked pixels never equal an opaque key.
//
// # Errors
//
//   - ErrUnsupportedChannelCount if img is neither 3 nor 4 channels
func ApplyTransparencyKey(img image.Image, key color.Color) (*image.NRGBA, error) {
	if ch := Channels(img); ch != 3 && ch != 4 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedChannelCount, ch)
	}

	k := color.NRGBAModel.Convert(key).(color.NRGBA)
	dst := imaging.Clone(img)

	for i := 0; i+3 < len(dst.Pix); i += 4 {
		p := dst.Pix[i : i+4 : i+4]
		if p[0] == k.R && p[1] == k.G && p[2] == k.B && p[3] == k.A {
			p[0], p[1], p[2], p[3] = 0, 0, 0, 0
		}
	}

	return dst, nil
}

// ParseKey parses a transparency key given as "#RRGGBB", "RRGGBB" or "#RGB".
// The key is always fully opaque.
func ParseKey(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}

	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}

	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
