package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/edgetools/edge-detect-mcp/internal/edge"
)

// ToRaster flattens a decoded image into the engine's 3-channel 8-bit
// raster. 16-bit source samples are reduced to 8 bits; alpha is dropped.
func ToRaster(img image.Image) *edge.Raster {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	out := edge.NewRaster(w, h, 3)
	i := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			out.Pix[i] = uint8(r >> 8)
			out.Pix[i+1] = uint8(g >> 8)
			out.Pix[i+2] = uint8(b >> 8)
			i += 3
		}
	}
	return out
}

// GrayImage expands a single-channel engine raster into an image.Gray for
// encoding and composition.
func GrayImage(r *edge.Raster) (*image.Gray, error) {
	if r == nil || r.Channels != 1 {
		return nil, fmt.Errorf("expected a single-channel raster")
	}
	if len(r.Pix) != r.Width*r.Height {
		return nil, fmt.Errorf("raster buffer length %d does not match %dx%d", len(r.Pix), r.Width, r.Height)
	}

	out := image.NewGray(image.Rect(0, 0, r.Width, r.Height))
	copy(out.Pix, r.Pix)
	return out, nil
}

// EdgeResult contains a rendered edge map encoded as base64 PNG.
type EdgeResult struct {
	// Width of the edge map in pixels (same as the source image).
	Width int `json:"width"`

	// Height of the edge map in pixels (same as the source image).
	Height int `json:"height"`

	// Algorithm that produced the edge map: "canny", "sobel", or "laplacian".
	Algorithm string `json:"algorithm"`

	// ImageBase64 is the grayscale edge map encoded as base64 PNG.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png".
	MimeType string `json:"mime_type"`
}

// RenderEdgeMap encodes an engine edge map as a base64 PNG result.
func RenderEdgeMap(edgeMap *edge.Raster, algorithm string) (*EdgeResult, error) {
	gray, err := GrayImage(edgeMap)
	if err != nil {
		return nil, err
	}
	encoded, err := EncodePNGBase64(gray)
	if err != nil {
		return nil, err
	}
	return &EdgeResult{
		Width:       edgeMap.Width,
		Height:      edgeMap.Height,
		Algorithm:   algorithm,
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}

// EncodePNGBase64 encodes an image as PNG and returns it base64-encoded.
func EncodePNGBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode png: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
