package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the schema fragment shared by every tool that reads an
// image from disk.
func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file (png, jpg/jpeg, gif, or bmp)",
	}
}

// detectionProperties returns the schema for the algorithm selector and its
// parameter fields. Omitted parameters fall back to the engine defaults:
// Canny {sigma=1.0, min_val=50, max_val=150, aperture_size=3},
// Sobel {direction=combined, ksize=3}, Laplacian {ksize=3}.
func detectionProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": pathProperty(),
		"algorithm": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"canny", "sobel", "laplacian"},
			"description": "Edge detection algorithm to run",
		},
		"sigma": map[string]interface{}{
			"type":        "number",
			"description": "Canny only: Gaussian pre-blur sigma, 0 (no blur) to 5.0. Default 1.0",
		},
		"min_val": map[string]interface{}{
			"type":        "integer",
			"description": "Canny only: lower hysteresis threshold, 0-255. Default 50",
		},
		"max_val": map[string]interface{}{
			"type":        "integer",
			"description": "Canny only: upper hysteresis threshold, 0-255, >= min_val. Default 150",
		},
		"aperture_size": map[string]interface{}{
			"type":        "integer",
			"enum":        []int{3, 5, 7},
			"description": "Canny only: Sobel aperture for the gradient. Default 3",
		},
		"direction": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"x", "y", "combined"},
			"description": "Sobel only: gradient component to output. Default combined",
		},
		"ksize": map[string]interface{}{
			"type":        "integer",
			"description": "Kernel size: 3, 5, or 7 for Sobel; 1, 3, 5, or 7 for Laplacian. Default 3",
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, and color depth. The decoded image is cached for subsequent detections.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
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
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Edge Detection
		{
			Name:        "edge_detect",
			Description: "Run Canny, Sobel, or Laplacian edge detection on an image and return the edge map as base64 PNG. Canny produces a binary map (0/255); Sobel and Laplacian produce rescaled gradient magnitude.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": detectionProperties(),
				"required":   []string{"path", "algorithm"},
			},
		},
		{
			Name:        "edge_compare",
			Description: "Run edge detection and return the source image and its edge map side by side in one PNG, original on the left.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": detectionProperties(),
				"required":   []string{"path", "algorithm"},
			},
		},
		{
			Name:        "edge_overlay",
			Description: "Run edge detection and return the source image with the detected edges tinted in a chosen color, screen-blended over the original.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": mergeProperties(detectionProperties(), map[string]interface{}{
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Hex color for edge pixels, e.g. \"#00ff00\". Default \"#ff0000\"",
					},
				}),
				"required": []string{"path", "algorithm"},
			},
		},

		// Cache Management
		{
			Name:        "cache_clear",
			Description: "Evict all cached decoded images, freeing memory. Subsequent tools reload from disk.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}

// mergeProperties combines two schema property maps; keys in extra win.
func mergeProperties(base, extra map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
