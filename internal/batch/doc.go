// Package batch runs tilepack's directory level jobs: packing a directory of
// tiles into one tileset file and rescaling every image in a directory.
//
// Jobs read through an imaging.ImageCache, report progress to a *log.Logger
// and write nothing until every input has been loaded and processed, so a
// failing job leaves no partial output behind.
package batch
