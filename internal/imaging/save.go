package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
)

// SavePNG writes img to path as PNG regardless of the path's extension.
// Tilesets are always written this way so the alpha channel survives.
func SavePNG(path string, img image.Image) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Save writes img to path in the format implied by the path's extension
// (png, jpg, gif, tif or bmp).
func Save(path string, img image.Image) error {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("cannot save %s: %w", path, err)
	}
	if err := ensureDir(path); err != nil {
		return err
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriteFile writes data to path, creating parent directories as needed.
func WriteFile(path string, data []byte) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return nil
}

// EncodableName returns name unchanged if Save can encode its format and
// otherwise swaps the extension for ".png" (e.g. WebP inputs).
func EncodableName(name string) string {
	if _, err := imaging.FormatFromFilename(name); err == nil {
		return name
	}
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".png"
}
