package edge

// detectLaplacian runs the Laplacian pipeline: grayscale, a single
// second-derivative convolution at the requested kernel size, then absolute
// rescale of the signed intermediate to 8 bits.
func detectLaplacian(src *Raster, p LaplacianParams) (*Raster, error) {
	gray, err := Grayscale(src)
	if err != nil {
		return nil, err
	}
	k, err := LaplacianKernel(p.KSize)
	if err != nil {
		return nil, err
	}
	resp, err := Convolve(gray, k)
	if err != nil {
		return nil, err
	}
	return absRescale(resp), nil
}
