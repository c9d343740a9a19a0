// Package server implements an MCP (Model Context Protocol) server exposing
// tilepack's operations as tools.
//
// The server speaks JSON-RPC 2.0 over stdio, one request per line on stdin
// and one response per line on stdout. Supported methods are initialize,
// tools/list, tools/call and ping.
//
// # Available Tools
//
//   - image_load: Load an image and report size, format and channels
//   - image_dimensions: Get width and height
//   - tileset_plan: Compute a tileset grid without touching disk
//   - tileset_create: Pack a directory of tiles into one PNG
//   - image_resize: Nearest-neighbor rescale of a file or directory
//
// image_load and image_dimensions share an image cache for the lifetime of
// the server. The tileset and resize tools read through a fresh cache on
// every call.
//
// # Error Handling
//
// Tool failures are returned as JSON-RPC errors with code -32000 and the Go
// error string as data. Malformed tools/call params yield -32602 and unknown
// methods -32601.
//
// # Usage
//
//	srv := server.New(version)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
