package edge

import "math"

// Raster is a row-major 8-bit raster image with 1 (grayscale) or 3 (color)
// channels. Samples for a pixel are stored adjacently, so the sample for
// channel c of pixel (x, y) lives at Pix[(y*Width+x)*Channels+c].
//
// Invariant: len(Pix) == Width * Height * Channels.
type Raster struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

// NewRaster allocates a zeroed raster of the given dimensions.
func NewRaster(width, height, channels int) *Raster {
	return &Raster{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]uint8, width*height*channels),
	}
}

// Clone returns a deep copy of the raster.
func (r *Raster) Clone() *Raster {
	out := NewRaster(r.Width, r.Height, r.Channels)
	copy(out.Pix, r.Pix)
	return out
}

// valid reports whether the buffer length matches the declared dimensions.
func (r *Raster) valid() bool {
	return r != nil && r.Width > 0 && r.Height > 0 &&
		(r.Channels == 1 || r.Channels == 3) &&
		len(r.Pix) == r.Width*r.Height*r.Channels
}

// SignedRaster is a single-channel raster of 16-bit signed samples. It is the
// convolution intermediate: derivative responses are kept signed and unclipped
// here so that rescaling to 8 bits happens exactly once, at the end of a
// pipeline.
type SignedRaster struct {
	Width  int
	Height int
	Pix    []int16
}

// NewSignedRaster allocates a zeroed signed raster of the given dimensions.
func NewSignedRaster(width, height int) *SignedRaster {
	return &SignedRaster{
		Width:  width,
		Height: height,
		Pix:    make([]int16, width*height),
	}
}

// absRescale converts a signed intermediate to an 8-bit raster by taking the
// absolute value of each sample and clamping to 255 (the convertScaleAbs
// step of the Sobel and Laplacian pipelines).
func absRescale(s *SignedRaster) *Raster {
	out := NewRaster(s.Width, s.Height, 1)
	for i, v := range s.Pix {
		a := int(v)
		if a < 0 {
			a = -a
		}
		if a > 255 {
			a = 255
		}
		out.Pix[i] = uint8(a)
	}
	return out
}

// clampInt constrains v to [lo, hi]. Used for edge-replicate border sampling.
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampU8 rounds v and clamps it into the 8-bit sample range.
func clampU8(v float64) uint8 {
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}

// saturateInt16 clamps an exact convolution sum into the int16 sample range.
// Sums can exceed int16 only at aperture 7 on extreme contrast, where the
// saturated value still rescales to 255.
func saturateInt16(v int) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}
