package batch

import (
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/tilepack/internal/imaging"
	"github.com/ironsheep/tilepack/internal/tileset"
)

var discard = log.New(io.Discard, "", 0)

// writeTile writes a size x size PNG filled with c into dir.
func writeTile(t *testing.T, dir, name string, size int, c color.Color) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, c)
		}
	}

	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("failed to create tile: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode tile: %v", err)
	}
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("failed to decode %s: %v", path, err)
	}
	return img
}

func TestCreateTileset(t *testing.T) {
	in := t.TempDir()
	writeTile(t, in, "02_green.png", 8, color.NRGBA{0, 255, 0, 255})
	writeTile(t, in, "01_red.png", 8, color.NRGBA{255, 0, 0, 255})
	writeTile(t, in, "03_blue.png", 8, color.NRGBA{0, 0, 255, 255})

	out := t.TempDir()
	opts := TilesetOptions{
		Dir:      in,
		Output:   filepath.Join(out, "tileset.png"),
		Index:    filepath.Join(out, "tileset.json"),
		TSX:      filepath.Join(out, "tileset.tsx"),
		TileSize: 8,
		Padding:  1,
		Scale:    1,
	}

	result, err := CreateTileset(imaging.NewImageCache(), opts, discard)
	if err != nil {
		t.Fatalf("CreateTileset failed: %v", err)
	}

	if result.Tiles != 3 {
		t.Errorf("Tiles: got %d, want 3", result.Tiles)
	}
	// 2 columns x 2 rows with a pitch of 9
	if result.Width != 18 || result.Height != 18 {
		t.Errorf("size: got %dx%d, want 18x18", result.Width, result.Height)
	}

	img := decodePNG(t, opts.Output)
	if c := color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA); c != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("first cell: got %v, want red", c)
	}
	if c := color.NRGBAModel.Convert(img.At(9, 0)).(color.NRGBA); c != (color.NRGBA{0, 255, 0, 255}) {
		t.Errorf("second cell: got %v, want green", c)
	}
	if _, _, _, a := img.At(8, 0).RGBA(); a != 0 {
		t.Errorf("padding alpha: got %d, want 0", a)
	}

	data, err := os.ReadFile(opts.Index)
	if err != nil {
		t.Fatalf("index not written: %v", err)
	}
	var placements []tileset.Placement
	if err := json.Unmarshal(data, &placements); err != nil {
		t.Fatalf("index is not JSON: %v", err)
	}
	if len(placements) != 3 || placements[0].Name != "01_red.png" || placements[2].Y != 9 {
		t.Errorf("unexpected index: %+v", placements)
	}

	tsx, err := os.ReadFile(opts.TSX)
	if err != nil {
		t.Fatalf("tsx not written: %v", err)
	}
	if !strings.Contains(string(tsx), `source="tileset.png"`) {
		t.Errorf("tsx should reference the tileset image:\n%s", tsx)
	}
}

func TestCreateTileset_Paletted(t *testing.T) {
	in := t.TempDir()
	writeTile(t, in, "a.png", 4, color.NRGBA{255, 0, 0, 255})
	writeTile(t, in, "b.png", 4, color.NRGBA{0, 0, 0, 255})

	output := filepath.Join(t.TempDir(), "tileset.png")
	_, err := CreateTileset(imaging.NewImageCache(), TilesetOptions{
		Dir: in, Output: output, TileSize: 4, Scale: 1, Colors: 4,
	}, discard)
	if err != nil {
		t.Fatalf("CreateTileset failed: %v", err)
	}

	img := decodePNG(t, output)
	if _, ok := img.(*image.Paletted); !ok {
		t.Errorf("output type: got %T, want *image.Paletted", img)
	}
	if _, _, _, a := img.At(5, 0).RGBA(); a != 0 {
		t.Errorf("black tile alpha: got %d, want 0", a)
	}
}

func TestCreateTileset_EmptyDirectory(t *testing.T) {
	output := filepath.Join(t.TempDir(), "tileset.png")
	_, err := CreateTileset(imaging.NewImageCache(), TilesetOptions{
		Dir: t.TempDir(), Output: output, TileSize: 8, Scale: 1,
	}, discard)

	if !errors.Is(err, tileset.ErrEmptyTileSet) {
		t.Errorf("got %v, want ErrEmptyTileSet", err)
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("output written for a failed job")
	}
}

func TestCreateTileset_MismatchedTilesWriteNothing(t *testing.T) {
	in := t.TempDir()
	writeTile(t, in, "a.png", 8, color.White)
	writeTile(t, in, "b.png", 6, color.White)

	out := t.TempDir()
	opts := TilesetOptions{
		Dir:      in,
		Output:   filepath.Join(out, "tileset.png"),
		Index:    filepath.Join(out, "tileset.json"),
		TileSize: 8,
		Scale:    1,
	}
	_, err := CreateTileset(imaging.NewImageCache(), opts, discard)

	if !errors.Is(err, tileset.ErrTileSizeMismatch) {
		t.Errorf("got %v, want ErrTileSizeMismatch", err)
	}
	entries, _ := os.ReadDir(out)
	if len(entries) != 0 {
		t.Errorf("failed job left %d files behind", len(entries))
	}
}

func TestCreateTileset_NoOutput(t *testing.T) {
	if _, err := CreateTileset(imaging.NewImageCache(), TilesetOptions{Dir: t.TempDir(), TileSize: 8}, discard); err == nil {
		t.Error("CreateTileset should fail without an output path")
	}
}

func TestResizeDirectory(t *testing.T) {
	in := t.TempDir()
	writeTile(t, in, "a.png", 4, color.NRGBA{255, 0, 0, 255})
	writeTile(t, in, "b.png", 6, color.NRGBA{0, 255, 0, 255})
	out := filepath.Join(t.TempDir(), "scaled")

	result, err := ResizeDirectory(imaging.NewImageCache(), ResizeOptions{Dir: in, Output: out, Scale: 2}, discard)
	if err != nil {
		t.Fatalf("ResizeDirectory failed: %v", err)
	}

	if len(result.Images) != 2 {
		t.Fatalf("got %d images, want 2", len(result.Images))
	}
	if r := result.Images[1]; r.Width != 12 || r.Height != 12 || filepath.Base(r.Output) != "b.png" {
		t.Errorf("unexpected result: %+v", r)
	}

	img := decodePNG(t, filepath.Join(out, "a.png"))
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Errorf("a.png: got %dx%d, want 8x8", b.Dx(), b.Dy())
	}
}

func TestResizeDirectory_InvalidScaleWritesNothing(t *testing.T) {
	in := t.TempDir()
	writeTile(t, in, "a.png", 4, color.White)
	out := filepath.Join(t.TempDir(), "scaled")

	_, err := ResizeDirectory(imaging.NewImageCache(), ResizeOptions{Dir: in, Output: out, Scale: 0}, discard)
	if !errors.Is(err, imaging.ErrInvalidScale) {
		t.Errorf("got %v, want ErrInvalidScale", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("output directory created for a failed job")
	}
}

func TestResizeDirectory_SameDirectory(t *testing.T) {
	dir := t.TempDir()
	if _, err := ResizeDirectory(imaging.NewImageCache(), ResizeOptions{Dir: dir, Output: dir, Scale: 2}, discard); err == nil {
		t.Error("ResizeDirectory should refuse to overwrite its input")
	}
}

func TestResizeFile(t *testing.T) {
	in := t.TempDir()
	writeTile(t, in, "a.png", 10, color.White)
	output := filepath.Join(t.TempDir(), "small.png")

	got, err := ResizeFile(imaging.NewImageCache(), filepath.Join(in, "a.png"), output, 0.5)
	if err != nil {
		t.Fatalf("ResizeFile failed: %v", err)
	}
	if got.Width != 5 || got.Height != 5 {
		t.Errorf("got %dx%d, want 5x5", got.Width, got.Height)
	}
	if _, err := os.Stat(output); err != nil {
		t.Errorf("output not written: %v", err)
	}
}

func TestCreateTileset_ZeroScale(t *testing.T) {
	in := t.TempDir()
	writeTile(t, in, "a.png", 8, color.NRGBA{255, 0, 0, 255})
	output := filepath.Join(t.TempDir(), "tileset.png")

	_, err := CreateTileset(imaging.NewImageCache(), TilesetOptions{
		Dir: in, Output: output, TileSize: 8, Scale: 0,
	}, discard)

	if !errors.Is(err, imaging.ErrInvalidScale) {
		t.Errorf("got %v, want ErrInvalidScale", err)
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("output written for a failed job")
	}
}

func TestCreateTileset_SidecarsInNewDirectories(t *testing.T) {
	in := t.TempDir()
	writeTile(t, in, "a.png", 8, color.NRGBA{255, 0, 0, 255})

	out := t.TempDir()
	opts := TilesetOptions{
		Dir:      in,
		Output:   filepath.Join(out, "tileset.png"),
		Index:    filepath.Join(out, "meta", "tiles.json"),
		TSX:      filepath.Join(out, "maps", "tiles.tsx"),
		TileSize: 8,
		Scale:    1,
	}
	if _, err := CreateTileset(imaging.NewImageCache(), opts, discard); err != nil {
		t.Fatalf("CreateTileset failed: %v", err)
	}

	for _, path := range []string{opts.Output, opts.Index, opts.TSX} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("%s not written: %v", path, err)
		}
	}
}

func TestCreateTileset_FailedIndexRemovesTileset(t *testing.T) {
	in := t.TempDir()
	writeTile(t, in, "a.png", 8, color.NRGBA{255, 0, 0, 255})

	out := t.TempDir()
	// A directory in the index's place makes the index write fail
	index := filepath.Join(out, "tiles.json")
	if err := os.Mkdir(index, 0o755); err != nil {
		t.Fatal(err)
	}

	opts := TilesetOptions{
		Dir:      in,
		Output:   filepath.Join(out, "tileset.png"),
		Index:    index,
		TileSize: 8,
		Scale:    1,
	}
	if _, err := CreateTileset(imaging.NewImageCache(), opts, discard); err == nil {
		t.Fatal("CreateTileset should fail when the index cannot be written")
	}
	if _, err := os.Stat(opts.Output); !os.IsNotExist(err) {
		t.Error("tileset left behind after a failed job")
	}
}
