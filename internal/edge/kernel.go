package edge

import "fmt"

// Kernel is a small square convolution kernel with its anchor at the center.
// Coeff is indexed [row][column].
type Kernel struct {
	Size  int
	Coeff [][]float64
}

// SobelKernels generates the classical Sobel first-derivative kernel pair for
// the given aperture size (3, 5, or 7): gx for horizontal order (1,0) and gy
// for vertical order (0,1).
//
// Each kernel is the outer product of a binomial smoothing vector (the Pascal
// triangle row of order size-1) applied across the derivative, and a
// central-difference vector ([-1 0 1] convolved with the Pascal row of order
// size-3) along it. For size 3 this reproduces the textbook matrices:
//
//	gx = [-1 0 1; -2 0 2; -1 0 1]    gy = [-1 -2 -1; 0 0 0; 1 2 1]
func SobelKernels(size int) (gx, gy *Kernel, err error) {
	if err := checkKernelSize(size, 3, 5, 7); err != nil {
		return nil, nil, err
	}
	smooth := pascalRow(size - 1)
	deriv := convolveVec([]float64{-1, 0, 1}, pascalRow(size-3))
	return outerProduct(smooth, deriv), outerProduct(deriv, smooth), nil
}

// LaplacianKernel generates the second-derivative kernel for the given size.
//
// Size 1 is the degenerate case and yields the fixed 3x3 approximation
// [0 1 0; 1 -4 1; 0 1 0]. Sizes 3, 5, and 7 build the kernel as the sum of
// the two separable second derivatives, Dxx smoothed vertically plus Dyy
// smoothed horizontally, with the same binomial smoothing family as the
// Sobel kernels. For size 3 that sum is [2 0 2; 0 -8 0; 2 0 2].
func LaplacianKernel(size int) (*Kernel, error) {
	if size == 1 {
		return &Kernel{
			Size: 3,
			Coeff: [][]float64{
				{0, 1, 0},
				{1, -4, 1},
				{0, 1, 0},
			},
		}, nil
	}
	if err := checkKernelSize(size, 3, 5, 7); err != nil {
		return nil, err
	}

	smooth := pascalRow(size - 1)
	deriv2 := convolveVec([]float64{1, -2, 1}, pascalRow(size-3))

	dxx := outerProduct(smooth, deriv2)
	dyy := outerProduct(deriv2, smooth)
	out := &Kernel{Size: size, Coeff: make([][]float64, size)}
	for y := 0; y < size; y++ {
		out.Coeff[y] = make([]float64, size)
		for x := 0; x < size; x++ {
			out.Coeff[y][x] = dxx.Coeff[y][x] + dyy.Coeff[y][x]
		}
	}
	return out, nil
}

// checkKernelSize validates size against the allowed set for a generator.
func checkKernelSize(size int, allowed ...int) error {
	for _, a := range allowed {
		if size == a {
			return nil
		}
	}
	return fmt.Errorf("%w: %d (supported: %v)", ErrUnsupportedKernelSize, size, allowed)
}

// pascalRow returns row n of Pascal's triangle (the binomial coefficients of
// order n), the discrete approximation of Gaussian smoothing used by the
// classical derivative kernels. Row 0 is [1].
func pascalRow(n int) []float64 {
	row := []float64{1}
	for i := 0; i < n; i++ {
		next := make([]float64, len(row)+1)
		next[0] = 1
		next[len(row)] = 1
		for j := 1; j < len(row); j++ {
			next[j] = row[j-1] + row[j]
		}
		row = next
	}
	return row
}

// convolveVec returns the full discrete convolution of two coefficient
// vectors; the result has len(a)+len(b)-1 entries.
func convolveVec(a, b []float64) []float64 {
	out := make([]float64, len(a)+len(b)-1)
	for i, av := range a {
		for j, bv := range b {
			out[i+j] += av * bv
		}
	}
	return out
}

// outerProduct builds a kernel with Coeff[y][x] = col[y] * row[x].
func outerProduct(col, row []float64) *Kernel {
	size := len(col)
	out := &Kernel{Size: size, Coeff: make([][]float64, size)}
	for y := 0; y < size; y++ {
		out.Coeff[y] = make([]float64, size)
		for x := 0; x < size; x++ {
			out.Coeff[y][x] = col[y] * row[x]
		}
	}
	return out
}
