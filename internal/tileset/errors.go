package tileset

import "errors"

var (
	// ErrEmptyTileSet is returned when a tileset is requested for zero tiles.
	ErrEmptyTileSet = errors.New("tileset: no tiles")

	// ErrTileSizeMismatch is returned when a tile, after scaling, does not
	// exactly fill its cell.
	ErrTileSizeMismatch = errors.New("tileset: tile size does not match cell size")

	// ErrInvalidTileSize is returned for a tile size that is not positive.
	ErrInvalidTileSize = errors.New("tileset: invalid tile size")

	// ErrInvalidPadding is returned for negative padding.
	ErrInvalidPadding = errors.New("tileset: invalid padding")

	// ErrTooManyTiles is returned when more tiles are given than a layout has cells.
	ErrTooManyTiles = errors.New("tileset: more tiles than cells")
)
