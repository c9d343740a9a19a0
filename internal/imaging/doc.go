// Package imaging provides the per-image operations behind tilepack.
//
// It covers loading images from disk (ImageCache, ListImages), nearest-neighbor
// rescaling (Scale), colour-keyed transparency (ApplyTransparency) and writing
// results back out (Save, SavePNG, Quantize). Every operation takes a standard
// image.Image and returns a new *image.NRGBA or *image.Paletted whose bounds
// start at (0,0); inputs are never modified.
//
// # Channels
//
// Images are described by their channel count as reported by Channels:
// opaque colour images have 3 channels, images with alpha have 4. Grayscale
// images report 1 and are rejected by ApplyTransparency with
// ErrUnsupportedChannelCount.
//
// # Transparency Key
//
// ApplyTransparency treats opaque pure black as a background sentinel and
// clears it to (0,0,0,0). This cannot distinguish background from black
// artwork; pixels that must stay black need to be painted with a near-black.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. All other functions are stateless.
package imaging
