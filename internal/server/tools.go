package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, bit depth and whether it is grayscale.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "edge_detect",
			Description: "Run the Roberts, Prewitt, Sobel and Frei-Chen edge operators on one image, write {base}_{method}.png for each, and return the file paths and the MSE of each edge image against the grayscale source.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"output_dir": map[string]interface{}{
						"type":        "string",
						"description": "Directory for the edge images. Defaults to the server's configured output directory.",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "edge_batch",
			Description: "Run edge_detect over a list of images in order and return the MSE report: one row per image and method, plus any per-image failures.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"paths": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Absolute paths to the image files, processed in order",
					},
					"output_dir": map[string]interface{}{
						"type":        "string",
						"description": "Directory for the edge images. Defaults to the server's configured output directory.",
					},
				},
				"required": []string{"paths"},
			},
		},
	}
}
