package imaging

import (
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/edgetools/edge-detect-mcp/internal/edge"
)

func TestToRaster(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.RGBA{10, 20, 30, 255})
	img.Set(2, 1, color.RGBA{200, 100, 50, 255})

	r := ToRaster(img)
	if r.Width != 3 || r.Height != 2 || r.Channels != 3 {
		t.Fatalf("shape: got %dx%dx%d, want 3x2x3", r.Width, r.Height, r.Channels)
	}
	if r.Pix[0] != 10 || r.Pix[1] != 20 || r.Pix[2] != 30 {
		t.Errorf("pixel (0,0): got %v", r.Pix[0:3])
	}
	i := (1*3 + 2) * 3
	if r.Pix[i] != 200 || r.Pix[i+1] != 100 || r.Pix[i+2] != 50 {
		t.Errorf("pixel (2,1): got %v", r.Pix[i:i+3])
	}
}

func TestToRaster_NonZeroOriginBounds(t *testing.T) {
	// Sub-images carry offset bounds; conversion must normalize to (0,0).
	base := image.NewRGBA(image.Rect(0, 0, 10, 10))
	base.Set(5, 5, color.RGBA{255, 0, 0, 255})
	sub := base.SubImage(image.Rect(4, 4, 8, 8))

	r := ToRaster(sub)
	if r.Width != 4 || r.Height != 4 {
		t.Fatalf("shape: got %dx%d, want 4x4", r.Width, r.Height)
	}
	i := (1*4 + 1) * 3 // (5,5) in base coordinates
	if r.Pix[i] != 255 {
		t.Errorf("offset pixel: got %d, want 255", r.Pix[i])
	}
}

func TestGrayImage_RoundTrip(t *testing.T) {
	r := edge.NewRaster(4, 3, 1)
	for i := range r.Pix {
		r.Pix[i] = uint8(i * 20)
	}

	img, err := GrayImage(r)
	if err != nil {
		t.Fatalf("GrayImage failed: %v", err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got := img.GrayAt(x, y).Y; got != r.Pix[y*4+x] {
				t.Errorf("pixel (%d,%d): got %d, want %d", x, y, got, r.Pix[y*4+x])
			}
		}
	}
}

func TestGrayImage_RejectsColorRaster(t *testing.T) {
	if _, err := GrayImage(edge.NewRaster(4, 4, 3)); err == nil {
		t.Error("GrayImage should reject a 3-channel raster")
	}
	if _, err := GrayImage(nil); err == nil {
		t.Error("GrayImage should reject nil")
	}
}

func TestRenderEdgeMap(t *testing.T) {
	edgeMap := edge.NewRaster(6, 5, 1)
	edgeMap.Pix[2*6+3] = 255

	result, err := RenderEdgeMap(edgeMap, "canny")
	if err != nil {
		t.Fatalf("RenderEdgeMap failed: %v", err)
	}
	if result.Width != 6 || result.Height != 5 {
		t.Errorf("dimensions: got %dx%d, want 6x5", result.Width, result.Height)
	}
	if result.Algorithm != "canny" {
		t.Errorf("Algorithm: got %s, want canny", result.Algorithm)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}

	// The payload must decode back to the same PNG pixels.
	decoded, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	img, err := png.Decode(strings.NewReader(string(decoded)))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}
	r, _, _, _ := img.At(3, 2).RGBA()
	if r>>8 != 255 {
		t.Errorf("edge pixel: got %d, want 255", r>>8)
	}
}

func TestDetectOnDecodedImage(t *testing.T) {
	// End-to-end through the glue: decoded image -> raster -> engine -> gray.
	img := image.NewRGBA(image.Rect(0, 0, 12, 12))
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			c := color.RGBA{0, 0, 0, 255}
			if x >= 6 {
				c = color.RGBA{255, 255, 255, 255}
			}
			img.Set(x, y, c)
		}
	}

	out, err := edge.Detect(ToRaster(img), edge.DefaultSobelParams())
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	gray, err := GrayImage(out)
	if err != nil {
		t.Fatalf("GrayImage failed: %v", err)
	}
	if gray.GrayAt(6, 6).Y == 0 {
		t.Error("expected gradient response at the step column")
	}
}
