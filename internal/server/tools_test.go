package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	expectedTools := []string{
		"image_load",
		"image_dimensions",
		"edge_detect",
		"edge_compare",
		"edge_overlay",
		"cache_clear",
	}

	if len(tools) != len(expectedTools) {
		t.Errorf("tool count: got %d, want %d", len(tools), len(expectedTools))
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	tools := GetToolDefinitions()

	for _, tool := range tools {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Name == "" {
				t.Error("Tool name is empty")
			}
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema == nil {
				t.Fatal("InputSchema is nil")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want object", tool.InputSchema["type"])
			}
			if _, ok := tool.InputSchema["properties"].(map[string]interface{}); !ok {
				t.Error("InputSchema properties should be a map")
			}
		})
	}
}

func TestToolDefinitions_DetectionSchemas(t *testing.T) {
	tools := GetToolDefinitions()
	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	for _, name := range []string{"edge_detect", "edge_compare", "edge_overlay"} {
		t.Run(name, func(t *testing.T) {
			tool, ok := toolMap[name]
			if !ok {
				t.Fatalf("tool %s not found", name)
			}

			props := tool.InputSchema["properties"].(map[string]interface{})
			for _, field := range []string{"path", "algorithm", "sigma", "min_val", "max_val", "aperture_size", "direction", "ksize"} {
				if _, ok := props[field]; !ok {
					t.Errorf("missing property %s", field)
				}
			}

			required, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatal("required should be a []string")
			}
			want := map[string]bool{"path": true, "algorithm": true}
			for _, r := range required {
				if !want[r] {
					t.Errorf("unexpected required field %s", r)
				}
				delete(want, r)
			}
			for r := range want {
				t.Errorf("missing required field %s", r)
			}
		})
	}

	// Only the overlay tool takes a color.
	overlayProps := toolMap["edge_overlay"].InputSchema["properties"].(map[string]interface{})
	if _, ok := overlayProps["color"]; !ok {
		t.Error("edge_overlay missing color property")
	}
	detectProps := toolMap["edge_detect"].InputSchema["properties"].(map[string]interface{})
	if _, ok := detectProps["color"]; ok {
		t.Error("edge_detect should not have a color property")
	}
}

func TestToolDefinitions_AlgorithmEnum(t *testing.T) {
	tools := GetToolDefinitions()
	for _, tool := range tools {
		if tool.Name != "edge_detect" {
			continue
		}
		props := tool.InputSchema["properties"].(map[string]interface{})
		alg := props["algorithm"].(map[string]interface{})
		enum, ok := alg["enum"].([]string)
		if !ok {
			t.Fatal("algorithm enum should be a []string")
		}
		want := []string{"canny", "sobel", "laplacian"}
		if len(enum) != len(want) {
			t.Fatalf("enum: got %v, want %v", enum, want)
		}
		for i, v := range want {
			if enum[i] != v {
				t.Errorf("enum[%d]: got %s, want %s", i, enum[i], v)
			}
		}
	}
}
