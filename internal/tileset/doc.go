// Package tileset packs equally sized tiles into one grid-aligned image.
//
// Plan works out a near-square grid for a tile count, Composite draws the
// tiles into that grid and clears the transparency key, and Create runs the
// whole pipeline including per-tile scaling. The package does no I/O; see
// package batch for loading directories and writing results.
//
// Tiles must all be the same square size after scaling. A tile that does not
// fill its cell exactly is rejected with ErrTileSizeMismatch instead of being
// clipped or misaligned.
package tileset
