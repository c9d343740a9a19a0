package imaging

import "errors"

var (
	// ErrInvalidScale is returned when a scale factor is not a positive,
	// finite number.
	ErrInvalidScale = errors.New("imaging: invalid scale factor")

	// ErrUnsupportedChannelCount is returned when an image has a channel
	// count other than 3 (colour) or 4 (colour plus alpha).
	ErrUnsupportedChannelCount = errors.New("imaging: unsupported channel count")

	// ErrInvalidKey is returned when a transparency key cannot be parsed.
	ErrInvalidKey = errors.New("imaging: invalid transparency key")

	// ErrInvalidColorCount is returned when a palette size is outside 2..256.
	ErrInvalidColorCount = errors.New("imaging: invalid palette size")
)
