package edge

import (
	"fmt"
	"math"
)

// Grayscale reduces a 3-channel raster to single-channel luma using the
// ITU-R BT.601 weights:
//
//	luma = round(0.299*R + 0.587*G + 0.114*B)
//
// The input must have exactly 3 channels; anything else returns
// ErrInvalidChannelCount.
func Grayscale(src *Raster) (*Raster, error) {
	if !src.valid() {
		return nil, fmt.Errorf("%w: malformed raster", ErrInvalidParameter)
	}
	if src.Channels != 3 {
		return nil, fmt.Errorf("%w: got %d channels, want 3", ErrInvalidChannelCount, src.Channels)
	}

	out := NewRaster(src.Width, src.Height, 1)
	for i := 0; i < src.Width*src.Height; i++ {
		r := float64(src.Pix[i*3])
		g := float64(src.Pix[i*3+1])
		b := float64(src.Pix[i*3+2])
		v := math.Round(0.299*r + 0.587*g + 0.114*b)
		if v > 255 {
			v = 255
		}
		out.Pix[i] = uint8(v)
	}
	return out, nil
}
