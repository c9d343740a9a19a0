package server

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"

	"github.com/ironsheep/tilepack/internal/batch"
	"github.com/ironsheep/tilepack/internal/imaging"
	"github.com/ironsheep/tilepack/internal/tileset"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "tileset_create").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "tileset_plan":
		return s.handleTilesetPlan(args)
	case "tileset_create":
		return s.handleTilesetCreate(args)
	case "image_resize":
		return s.handleImageResize(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	resp := &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
		},
	}
	if data != "" {
		resp.Error.Data = data
	}
	return resp
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Tileset Handlers ===

// scaleOrDefault returns 1 when the scale argument was omitted. An explicit
// value, zero included, is passed through for validation.
func scaleOrDefault(scale *float64) float64 {
	if scale == nil {
		return 1.0
	}
	return *scale
}

type tilesetPlanArgs struct {
	TileCount   int      `json:"tile_count"`
	TileSize    int      `json:"tile_size"`
	TilePadding int      `json:"tile_padding"`
	Scale       *float64 `json:"scale"`
}

func (s *Server) handleTilesetPlan(args json.RawMessage) (interface{}, error) {
	var a tilesetPlanArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return tileset.Plan(a.TileCount, a.TileSize, a.TilePadding, scaleOrDefault(a.Scale))
}

type tilesetCreateArgs struct {
	Path        string   `json:"path"`
	Output      string   `json:"output"`
	TileSize    int      `json:"tile_size"`
	TilePadding int      `json:"tile_padding"`
	Scale       *float64 `json:"scale"`
	Key         string   `json:"key"`
	Colors      int      `json:"colors"`
	Index       string   `json:"index"`
	TSX         string   `json:"tsx"`
}

// handleTilesetCreate reads the tile directory through a fresh cache so
// edits made between calls are picked up.
func (s *Server) handleTilesetCreate(args json.RawMessage) (interface{}, error) {
	var a tilesetCreateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	var key color.Color
	if a.Key != "" {
		k, err := imaging.ParseKey(a.Key)
		if err != nil {
			return nil, err
		}
		key = k
	}

	return batch.CreateTileset(imaging.NewImageCache(), batch.TilesetOptions{
		Dir:      a.Path,
		Output:   a.Output,
		TileSize: a.TileSize,
		Padding:  a.TilePadding,
		Scale:    scaleOrDefault(a.Scale),
		Key:      key,
		Colors:   a.Colors,
		Index:    a.Index,
		TSX:      a.TSX,
	}, s.logger)
}

type imageResizeArgs struct {
	Path   string  `json:"path"`
	Output string  `json:"output"`
	Scale  float64 `json:"scale"`
}

func (s *Server) handleImageResize(args json.RawMessage) (interface{}, error) {
	var a imageResizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	info, err := os.Stat(a.Path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return batch.ResizeDirectory(imaging.NewImageCache(), batch.ResizeOptions{
			Dir:    a.Path,
			Output: a.Output,
			Scale:  a.Scale,
		}, s.logger)
	}
	return batch.ResizeFile(imaging.NewImageCache(), a.Path, a.Output, a.Scale)
}
