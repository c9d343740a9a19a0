package tileset

import (
	"encoding/xml"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lafriks/go-tiled"
)

// TSXVersion is the Tiled file format version written to .tsx files.
const TSXVersion = "1.10"

// tsxDocument is the subset of tiled.Tileset that belongs in a standalone
// .tsx file. Map-only attributes such as firstgid and source are left out.
type tsxDocument struct {
	XMLName    xml.Name `xml:"tileset"`
	Version    string   `xml:"version,attr"`
	Name       string   `xml:"name,attr"`
	TileWidth  int      `xml:"tilewidth,attr"`
	TileHeight int      `xml:"tileheight,attr"`
	Spacing    int      `xml:"spacing,attr,omitempty"`
	TileCount  int      `xml:"tilecount,attr"`
	Columns    int      `xml:"columns,attr"`
	Image      *tsxImage
}

type tsxImage struct {
	XMLName xml.Name `xml:"image"`
	Source  string   `xml:"source,attr"`
	Width   int      `xml:"width,attr"`
	Height  int      `xml:"height,attr"`
}

// TiledTileset describes a packed tileset for the Tiled map editor.
//
// imagePath is stored relative to the directory the .tsx file will live in
// when tsxPath is given. Padding maps onto Tiled's tile spacing with no
// margin.
func TiledTileset(layout Layout, tiles int, imagePath, tsxPath string) *tiled.Tileset {
	source := imagePath
	if tsxPath != "" {
		if rel, err := filepath.Rel(filepath.Dir(tsxPath), imagePath); err == nil {
			source = rel
		}
	}
	bounds := layout.Bounds()

	return &tiled.Tileset{
		Name:       strings.TrimSuffix(filepath.Base(imagePath), filepath.Ext(imagePath)),
		TileWidth:  layout.CellHeight,
		TileHeight: layout.CellWidth,
		Spacing:    layout.Padding,
		TileCount:  tiles,
		Columns:    layout.Columns,
		Image: &tiled.Image{
			Source: filepath.ToSlash(source),
			Width:  bounds.Dx(),
			Height: bounds.Dy(),
		},
	}
}

// EncodeTSX renders ts as a Tiled .tsx document.
func EncodeTSX(ts *tiled.Tileset) ([]byte, error) {
	doc := tsxDocument{
		Version:    TSXVersion,
		Name:       ts.Name,
		TileWidth:  ts.TileWidth,
		TileHeight: ts.TileHeight,
		Spacing:    ts.Spacing,
		TileCount:  ts.TileCount,
		Columns:    ts.Columns,
	}
	if ts.Image != nil {
		doc.Image = &tsxImage{Source: ts.Image.Source, Width: ts.Image.Width, Height: ts.Image.Height}
	}

	b, err := xml.MarshalIndent(doc, "", " ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode tsx: %w", err)
	}
	return append([]byte(xml.Header), append(b, '\n')...), nil
}
