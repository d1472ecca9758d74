package edge

import "math"

// Gradient holds the horizontal and vertical derivative rasters of a
// grayscale image at a given Sobel aperture size.
type Gradient struct {
	Width  int
	Height int
	X      *SignedRaster // response of the horizontal (1,0) kernel
	Y      *SignedRaster // response of the vertical (0,1) kernel
}

// ComputeGradient convolves a grayscale raster with the Sobel kernel pair at
// the requested aperture size (3, 5, or 7).
func ComputeGradient(gray *Raster, size int) (*Gradient, error) {
	kx, ky, err := SobelKernels(size)
	if err != nil {
		return nil, err
	}
	gx, err := Convolve(gray, kx)
	if err != nil {
		return nil, err
	}
	gy, err := Convolve(gray, ky)
	if err != nil {
		return nil, err
	}
	return &Gradient{Width: gray.Width, Height: gray.Height, X: gx, Y: gy}, nil
}

// Magnitude returns the per-pixel gradient magnitude sqrt(Gx^2 + Gy^2) as a
// row-major float raster.
func (g *Gradient) Magnitude() []float64 {
	out := make([]float64, len(g.X.Pix))
	for i := range out {
		gx := float64(g.X.Pix[i])
		gy := float64(g.Y.Pix[i])
		out[i] = math.Sqrt(gx*gx + gy*gy)
	}
	return out
}

// Orientation returns the per-pixel gradient direction atan2(Gy, Gx) in
// radians, in [-pi, pi].
func (g *Gradient) Orientation() []float64 {
	out := make([]float64, len(g.X.Pix))
	for i := range out {
		out[i] = math.Atan2(float64(g.Y.Pix[i]), float64(g.X.Pix[i]))
	}
	return out
}

// AbsX returns |Gx| clamped to [0,255] for display.
func (g *Gradient) AbsX() *Raster { return absRescale(g.X) }

// AbsY returns |Gy| clamped to [0,255] for display.
func (g *Gradient) AbsY() *Raster { return absRescale(g.Y) }
