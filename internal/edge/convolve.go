package edge

import (
	"fmt"
	"math"
)

// Convolve applies a kernel to a grayscale raster and returns the signed
// 16-bit intermediate. For every output pixel the weighted sum of the
// neighborhood under the kernel is computed with edge-replicate border
// sampling; the sum is not clamped to 8 bits, so derivative responses keep
// their sign and full magnitude until a pipeline rescales them.
func Convolve(src *Raster, k *Kernel) (*SignedRaster, error) {
	if !src.valid() {
		return nil, fmt.Errorf("%w: malformed raster", ErrInvalidParameter)
	}
	if src.Channels != 1 {
		return nil, fmt.Errorf("%w: got %d channels, want 1", ErrInvalidChannelCount, src.Channels)
	}
	if k == nil || k.Size < 1 || k.Size%2 == 0 || len(k.Coeff) != k.Size {
		return nil, fmt.Errorf("%w: kernel must be square with odd dimension", ErrUnsupportedKernelSize)
	}

	w, h := src.Width, src.Height
	radius := k.Size / 2
	out := NewSignedRaster(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float64
			for ky := -radius; ky <= radius; ky++ {
				row := src.Pix[clampInt(y+ky, 0, h-1)*w:]
				coeff := k.Coeff[ky+radius]
				for kx := -radius; kx <= radius; kx++ {
					sum += float64(row[clampInt(x+kx, 0, w-1)]) * coeff[kx+radius]
				}
			}
			out.Pix[y*w+x] = saturateInt16(int(math.Round(sum)))
		}
	}
	return out, nil
}
