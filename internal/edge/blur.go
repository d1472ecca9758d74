package edge

import (
	"fmt"
	"math"
)

// GaussianBlur smooths a grayscale raster with a separable Gaussian filter.
//
// A sigma of exactly 0 is the identity: the input is returned unchanged (as a
// copy). Otherwise the kernel radius is floor(4*sigma) and the kernel size
// 2*radius+1, floored at 3, so the window always covers the meaningful extent
// of the Gaussian. The same normalized 1-D weight vector is applied first
// along rows and then along columns of the row-pass result; borders replicate
// the nearest valid pixel.
func GaussianBlur(src *Raster, sigma float64) (*Raster, error) {
	if !src.valid() {
		return nil, fmt.Errorf("%w: malformed raster", ErrInvalidParameter)
	}
	if src.Channels != 1 {
		return nil, fmt.Errorf("%w: got %d channels, want 1", ErrInvalidChannelCount, src.Channels)
	}
	if sigma < 0 || math.IsNaN(sigma) {
		return nil, fmt.Errorf("%w: sigma %v must be non-negative", ErrInvalidParameter, sigma)
	}
	if sigma == 0 {
		return src.Clone(), nil
	}

	weights := gaussianWeights(sigma)
	radius := len(weights) / 2
	w, h := src.Width, src.Height

	// Row pass. Kept in float64 so the column pass does not accumulate a
	// second rounding step.
	horiz := make([]float64, w*h)
	for y := 0; y < h; y++ {
		row := src.Pix[y*w : (y+1)*w]
		for x := 0; x < w; x++ {
			var sum float64
			for k := -radius; k <= radius; k++ {
				sum += float64(row[clampInt(x+k, 0, w-1)]) * weights[k+radius]
			}
			horiz[y*w+x] = sum
		}
	}

	// Column pass over the row-pass intermediate.
	out := NewRaster(w, h, 1)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float64
			for k := -radius; k <= radius; k++ {
				sum += horiz[clampInt(y+k, 0, h-1)*w+x] * weights[k+radius]
			}
			out.Pix[y*w+x] = clampU8(sum)
		}
	}
	return out, nil
}

// gaussianWeights builds the normalized 1-D Gaussian weight vector for the
// given sigma. The vector length is 2*floor(4*sigma)+1, floored at 3.
func gaussianWeights(sigma float64) []float64 {
	radius := int(sigma * 4)
	size := 2*radius + 1
	if size < 3 {
		size = 3
		radius = 1
	}

	weights := make([]float64, size)
	var sum float64
	for i := range weights {
		d := float64(i - radius)
		weights[i] = math.Exp(-(d * d) / (2 * sigma * sigma))
		sum += weights[i]
	}
	for i := range weights {
		weights[i] /= sum
	}
	return weights
}
