package edge

// detectSobel runs the Sobel pipeline: grayscale, gradient at the requested
// kernel size, then direction selection over the absolute-rescaled
// components. Combined output is the pixelwise rounded 50/50 average of the
// rescaled |Gx| and |Gy| rasters.
func detectSobel(src *Raster, p SobelParams) (*Raster, error) {
	gray, err := Grayscale(src)
	if err != nil {
		return nil, err
	}
	grad, err := ComputeGradient(gray, p.KSize)
	if err != nil {
		return nil, err
	}

	switch p.Direction {
	case DirectionX:
		return grad.AbsX(), nil
	case DirectionY:
		return grad.AbsY(), nil
	default: // DirectionCombined, guarded by validation
		ax, ay := grad.AbsX(), grad.AbsY()
		out := NewRaster(src.Width, src.Height, 1)
		for i := range out.Pix {
			out.Pix[i] = clampU8(0.5*float64(ax.Pix[i]) + 0.5*float64(ay.Pix[i]))
		}
		return out, nil
	}
}
