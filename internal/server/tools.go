package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func stringProp(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

// tilesetProps are the grid parameters shared by tileset_plan and tileset_create.
func tilesetProps() map[string]interface{} {
	return map[string]interface{}{
		"tile_size": map[string]interface{}{
			"type":        "integer",
			"description": "Edge length of each source tile in pixels",
		},
		"tile_padding": map[string]interface{}{
			"type":        "integer",
			"description": "Space in pixels after each tile. Default 0",
			"default":     0,
		},
		"scale": map[string]interface{}{
			"type":        "number",
			"description": "Scale factor applied to every tile (nearest-neighbor). Default 1.0",
			"default":     1.0,
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	planProps := tilesetProps()
	planProps["tile_count"] = map[string]interface{}{
		"type":        "integer",
		"description": "Number of tiles to lay out",
	}

	createProps := tilesetProps()
	createProps["path"] = stringProp("Absolute path to the directory of tile images. Tiles are packed in file name order")
	createProps["output"] = stringProp("Absolute path of the tileset PNG to write")
	createProps["key"] = stringProp("Transparency key colour as #RRGGBB. Default #000000 (pure black)")
	createProps["colors"] = map[string]interface{}{
		"type":        "integer",
		"description": "Optional palette size (2-256) for a paletted PNG. Default 0 (full colour)",
	}
	createProps["index"] = stringProp("Optional absolute path of a JSON file listing where each tile was placed")
	createProps["tsx"] = stringProp("Optional absolute path of a Tiled .tsx tileset describing the output")

	return []Tool{
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and channel count.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": stringProp("Absolute path to the image file"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": stringProp("Absolute path to the image file"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "tileset_plan",
			Description: "Compute the grid a tileset would use: columns, rows, cell size and canvas size. Nothing is read or written.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": planProps,
				"required":   []string{"tile_count", "tile_size"},
			},
		},
		{
			Name:        "tileset_create",
			Description: "Pack every image in a directory into one grid-aligned tileset PNG. Pure black pixels (or the given key colour) become transparent.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": createProps,
				"required":   []string{"path", "output", "tile_size"},
			},
		},
		{
			Name:        "image_resize",
			Description: "Rescale an image, or every image in a directory, with nearest-neighbor sampling.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   stringProp("Absolute path to an image file or a directory of images"),
					"output": stringProp("Output file (for a file input) or directory (for a directory input)"),
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Scale factor, e.g. 2.0 to double the size",
					},
				},
				"required": []string{"path", "output", "scale"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
