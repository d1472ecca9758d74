package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blend"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// compareGutter is the width in pixels of the divider between the two panes
// of a side-by-side composition.
const compareGutter = 8

// DefaultOverlayColor tints edge pixels when the caller does not pick a color.
const DefaultOverlayColor = "#ff0000"

// CompareResult contains a source|edge-map composition as base64 PNG.
type CompareResult struct {
	// Width of the composed image: twice the source width plus the gutter.
	Width int `json:"width"`

	// Height of the composed image (same as the source).
	Height int `json:"height"`

	// ImageBase64 is the composition encoded as base64 PNG.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png".
	MimeType string `json:"mime_type"`
}

// SideBySide places the source image and its edge map next to each other on
// a dark canvas, the original on the left, for direct visual comparison.
func SideBySide(src image.Image, edgeMap *image.Gray) (*CompareResult, error) {
	sb, eb := src.Bounds(), edgeMap.Bounds()
	if sb.Dx() != eb.Dx() || sb.Dy() != eb.Dy() {
		return nil, fmt.Errorf("edge map %dx%d does not match source %dx%d",
			eb.Dx(), eb.Dy(), sb.Dx(), sb.Dy())
	}

	w, h := sb.Dx(), sb.Dy()
	canvas := imaging.New(2*w+compareGutter, h, color.NRGBA{40, 40, 40, 255})
	canvas = imaging.Paste(canvas, src, image.Pt(0, 0))
	canvas = imaging.Paste(canvas, edgeMap, image.Pt(w+compareGutter, 0))

	encoded, err := EncodePNGBase64(canvas)
	if err != nil {
		return nil, err
	}
	return &CompareResult{
		Width:       2*w + compareGutter,
		Height:      h,
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}

// OverlayResult contains a source image with tinted edges as base64 PNG.
type OverlayResult struct {
	// Width of the composed image (same as the source).
	Width int `json:"width"`

	// Height of the composed image (same as the source).
	Height int `json:"height"`

	// Color is the normalized hex color applied to edge pixels.
	Color string `json:"color"`

	// ImageBase64 is the overlay encoded as base64 PNG.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png".
	MimeType string `json:"mime_type"`
}

// Overlay renders edge pixels in the given hex color ("#rrggbb") on top of
// the source image using a screen blend, so the underlying image stays
// visible between edges. An unparsable color falls back to
// DefaultOverlayColor.
func Overlay(src image.Image, edgeMap *image.Gray, hexColor string) (*OverlayResult, error) {
	sb, eb := src.Bounds(), edgeMap.Bounds()
	if sb.Dx() != eb.Dx() || sb.Dy() != eb.Dy() {
		return nil, fmt.Errorf("edge map %dx%d does not match source %dx%d",
			eb.Dx(), eb.Dy(), sb.Dx(), sb.Dy())
	}

	tint, err := colorful.Hex(hexColor)
	if err != nil {
		tint, _ = colorful.Hex(DefaultOverlayColor)
	}
	tr, tg, tb := tint.RGB255()

	// Edge pixels get the tint scaled by their magnitude (full tint for a
	// binary Canny map), everything else stays black; screen-blending black
	// with the source leaves the source unchanged.
	mask := image.NewRGBA(sb)
	for y := 0; y < sb.Dy(); y++ {
		for x := 0; x < sb.Dx(); x++ {
			v := int(edgeMap.GrayAt(x+eb.Min.X, y+eb.Min.Y).Y)
			c := color.RGBA{
				R: uint8(int(tr) * v / 255),
				G: uint8(int(tg) * v / 255),
				B: uint8(int(tb) * v / 255),
				A: 255,
			}
			mask.Set(x+sb.Min.X, y+sb.Min.Y, c)
		}
	}

	blended := blend.Screen(src, mask)
	encoded, err := EncodePNGBase64(blended)
	if err != nil {
		return nil, err
	}
	return &OverlayResult{
		Width:       sb.Dx(),
		Height:      sb.Dy(),
		Color:       tint.Hex(),
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}
