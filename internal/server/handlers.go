package server

import (
	"encoding/json"
	"fmt"

	"github.com/edgetools/edge-detect-mcp/internal/edge"
	"github.com/edgetools/edge-detect-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "edge_detect").
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
		s.log.WithField("tool", params.Name).WithError(err).Debug("tool execution failed")
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
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Edge Detection
	case "edge_detect":
		return s.handleEdgeDetect(args)
	case "edge_compare":
		return s.handleEdgeCompare(args)
	case "edge_overlay":
		return s.handleEdgeOverlay(args)

	// Cache Management
	case "cache_clear":
		return s.handleCacheClear(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

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

// === Edge Detection Handlers ===

// edgeDetectArgs carries the shared arguments of the three detection tools.
// Parameter fields are pointers so an omitted field can fall back to the
// engine default while an explicit zero is still validated as given.
type edgeDetectArgs struct {
	Path      string `json:"path"`
	Algorithm string `json:"algorithm"`

	// Canny
	Sigma        *float64 `json:"sigma"`
	MinVal       *int     `json:"min_val"`
	MaxVal       *int     `json:"max_val"`
	ApertureSize *int     `json:"aperture_size"`

	// Sobel / Laplacian
	Direction *string `json:"direction"`
	KSize     *int    `json:"ksize"`

	// edge_overlay only
	Color string `json:"color"`
}

// buildParams maps tool arguments to the engine's typed parameter set,
// applying the published defaults for omitted fields. Range validation stays
// in the engine; this only shapes the input.
func buildParams(a edgeDetectArgs) (edge.Params, error) {
	algorithm, err := edge.ParseAlgorithm(a.Algorithm)
	if err != nil {
		return nil, err
	}

	switch algorithm {
	case edge.AlgorithmCanny:
		p := edge.DefaultCannyParams()
		if a.Sigma != nil {
			p.Sigma = *a.Sigma
		}
		if a.MinVal != nil {
			p.MinVal = *a.MinVal
		}
		if a.MaxVal != nil {
			p.MaxVal = *a.MaxVal
		}
		if a.ApertureSize != nil {
			p.ApertureSize = *a.ApertureSize
		}
		return p, nil

	case edge.AlgorithmSobel:
		p := edge.DefaultSobelParams()
		if a.Direction != nil {
			d, err := edge.ParseDirection(*a.Direction)
			if err != nil {
				return nil, err
			}
			p.Direction = d
		}
		if a.KSize != nil {
			p.KSize = *a.KSize
		}
		return p, nil

	default:
		p := edge.DefaultLaplacianParams()
		if a.KSize != nil {
			p.KSize = *a.KSize
		}
		return p, nil
	}
}

// describeParams echoes the effective parameter values back to the caller so
// a result is self-describing even when defaults were applied.
func describeParams(p edge.Params) map[string]interface{} {
	switch p := p.(type) {
	case edge.CannyParams:
		return map[string]interface{}{
			"sigma":         p.Sigma,
			"min_val":       p.MinVal,
			"max_val":       p.MaxVal,
			"aperture_size": p.ApertureSize,
		}
	case edge.SobelParams:
		return map[string]interface{}{
			"direction": p.Direction.String(),
			"ksize":     p.KSize,
		}
	case edge.LaplacianParams:
		return map[string]interface{}{
			"ksize": p.KSize,
		}
	default:
		return nil
	}
}

// runDetection loads the image, runs the engine, and returns the edge map
// with the parameter set that produced it.
func (s *Server) runDetection(a edgeDetectArgs) (*edge.Raster, edge.Params, error) {
	params, err := buildParams(a)
	if err != nil {
		return nil, nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, nil, err
	}
	out, err := edge.Detect(imaging.ToRaster(img), params)
	if err != nil {
		return nil, nil, err
	}
	return out, params, nil
}

type edgeDetectResult struct {
	Width       int                    `json:"width"`
	Height      int                    `json:"height"`
	Algorithm   string                 `json:"algorithm"`
	Parameters  map[string]interface{} `json:"parameters"`
	ImageBase64 string                 `json:"image_base64"`
	MimeType    string                 `json:"mime_type"`
}

func (s *Server) handleEdgeDetect(args json.RawMessage) (interface{}, error) {
	var a edgeDetectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	out, params, err := s.runDetection(a)
	if err != nil {
		return nil, err
	}
	rendered, err := imaging.RenderEdgeMap(out, params.Algorithm().String())
	if err != nil {
		return nil, err
	}
	return &edgeDetectResult{
		Width:       rendered.Width,
		Height:      rendered.Height,
		Algorithm:   rendered.Algorithm,
		Parameters:  describeParams(params),
		ImageBase64: rendered.ImageBase64,
		MimeType:    rendered.MimeType,
	}, nil
}

func (s *Server) handleEdgeCompare(args json.RawMessage) (interface{}, error) {
	var a edgeDetectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	out, _, err := s.runDetection(a)
	if err != nil {
		return nil, err
	}
	gray, err := imaging.GrayImage(out)
	if err != nil {
		return nil, err
	}
	src, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SideBySide(src, gray)
}

func (s *Server) handleEdgeOverlay(args json.RawMessage) (interface{}, error) {
	var a edgeDetectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Color == "" {
		a.Color = imaging.DefaultOverlayColor
	}

	out, _, err := s.runDetection(a)
	if err != nil {
		return nil, err
	}
	gray, err := imaging.GrayImage(out)
	if err != nil {
		return nil, err
	}
	src, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Overlay(src, gray, a.Color)
}

// === Cache Management Handlers ===

type cacheClearResult struct {
	Evicted int `json:"evicted"`
}

func (s *Server) handleCacheClear(json.RawMessage) (interface{}, error) {
	n := s.cache.Len()
	s.cache.Clear()
	return &cacheClearResult{Evicted: n}, nil
}
