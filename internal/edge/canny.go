package edge

import (
	"fmt"
	"math"
)

// detectCanny runs the Canny pipeline:
//
//  1. Separable Gaussian blur at the given sigma (sigma 0 skips smoothing).
//  2. Gradient magnitude and orientation at the given aperture size.
//  3. Non-maximum suppression along the quantized gradient direction.
//  4. Double threshold plus hysteresis linking, seeded from strong pixels.
//
// The result is strictly binary: every sample is 0 or 255. A threshold pair
// with minVal > maxVal is rejected with ErrInvalidThresholdOrder before any
// pixel is processed, even when the dispatcher has been bypassed.
func detectCanny(src *Raster, p CannyParams) (*Raster, error) {
	if p.MinVal > p.MaxVal {
		return nil, fmt.Errorf("%w: minVal %d > maxVal %d", ErrInvalidThresholdOrder, p.MinVal, p.MaxVal)
	}
	gray, err := Grayscale(src)
	if err != nil {
		return nil, err
	}
	blurred, err := GaussianBlur(gray, p.Sigma)
	if err != nil {
		return nil, err
	}
	grad, err := ComputeGradient(blurred, p.ApertureSize)
	if err != nil {
		return nil, err
	}

	suppressed := suppressNonMaxima(grad.Magnitude(), grad.Orientation(), src.Width, src.Height)
	return linkEdges(suppressed, src.Width, src.Height, p.MinVal, p.MaxVal), nil
}

// suppressNonMaxima thins the gradient magnitude raster to local maxima.
//
// Each pixel's orientation is quantized to one of the four principal
// directions (0, 45, 90, 135 degrees); the pixel keeps its magnitude only if
// it is at least as large as both neighbors along that direction. The
// one-pixel border ring has no complete neighborhood and is suppressed to 0.
func suppressNonMaxima(mag, dir []float64, w, h int) []float64 {
	out := make([]float64, w*h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			i := y*w + x
			angle := dir[i]
			m := mag[i]

			var n1, n2 float64
			switch {
			case (angle >= -math.Pi/8 && angle < math.Pi/8) || angle >= 7*math.Pi/8 || angle < -7*math.Pi/8:
				// 0 degrees: gradient points horizontally, compare left/right.
				n1, n2 = mag[i-1], mag[i+1]
			case (angle >= math.Pi/8 && angle < 3*math.Pi/8) || (angle >= -7*math.Pi/8 && angle < -5*math.Pi/8):
				// 45 degrees: gradient points down-right (y grows downward),
				// compare along the main diagonal.
				n1, n2 = mag[i-w-1], mag[i+w+1]
			case (angle >= 3*math.Pi/8 && angle < 5*math.Pi/8) || (angle >= -5*math.Pi/8 && angle < -3*math.Pi/8):
				// 90 degrees: compare up/down.
				n1, n2 = mag[i-w], mag[i+w]
			default:
				// 135 degrees: gradient points down-left, compare along the
				// anti-diagonal.
				n1, n2 = mag[i-w+1], mag[i+w-1]
			}

			if m >= n1 && m >= n2 {
				out[i] = m
			}
		}
	}
	return out
}

// Pixel classes used during hysteresis linking.
const (
	classNone uint8 = iota
	classWeak
	classStrong
)

// linkEdges applies the double threshold and resolves weak-pixel
// connectivity by a BFS flood fill seeded from every strong pixel.
//
// Pixels with suppressed magnitude >= maxVal are strong and always edges;
// pixels in [minVal, maxVal) are weak candidates, promoted to edges only if
// reachable from a strong pixel through a chain of 8-connected weak pixels.
// Everything else is 0.
func linkEdges(mag []float64, w, h, minVal, maxVal int) *Raster {
	out := NewRaster(w, h, 1)
	lo, hi := float64(minVal), float64(maxVal)

	class := make([]uint8, w*h)
	queue := make([]int, 0, w+h)
	for i, m := range mag {
		switch {
		case m >= hi:
			class[i] = classStrong
			out.Pix[i] = 255
			queue = append(queue, i)
		case m >= lo:
			class[i] = classWeak
		}
	}

	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		x, y := i%w, i/w

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nx, ny := x+dx, y+dy
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				j := ny*w + nx
				if class[j] == classWeak && out.Pix[j] == 0 {
					out.Pix[j] = 255
					queue = append(queue, j)
				}
			}
		}
	}
	return out
}
