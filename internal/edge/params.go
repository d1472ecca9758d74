package edge

import (
	"fmt"
	"math"
)

// MaxSigma is the largest Gaussian blur sigma the engine accepts.
const MaxSigma = 5.0

// Algorithm identifies one of the supported edge detectors.
type Algorithm int

const (
	AlgorithmCanny Algorithm = iota
	AlgorithmSobel
	AlgorithmLaplacian
)

// String returns the lowercase algorithm name.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmCanny:
		return "canny"
	case AlgorithmSobel:
		return "sobel"
	case AlgorithmLaplacian:
		return "laplacian"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps an algorithm name to its Algorithm value.
// Recognized names are "canny", "sobel", and "laplacian".
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "canny":
		return AlgorithmCanny, nil
	case "sobel":
		return AlgorithmSobel, nil
	case "laplacian":
		return AlgorithmLaplacian, nil
	default:
		return 0, fmt.Errorf("%w: unknown algorithm %q", ErrInvalidParameter, s)
	}
}

// Direction selects which gradient component the Sobel pipeline outputs.
type Direction int

const (
	DirectionCombined Direction = iota
	DirectionX
	DirectionY
)

// String returns the direction name used on the wire: "combined", "x", "y".
func (d Direction) String() string {
	switch d {
	case DirectionCombined:
		return "combined"
	case DirectionX:
		return "x"
	case DirectionY:
		return "y"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection maps a direction name to its Direction value.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "combined", "":
		return DirectionCombined, nil
	case "x":
		return DirectionX, nil
	case "y":
		return DirectionY, nil
	default:
		return 0, fmt.Errorf("%w: unknown direction %q", ErrInvalidParameter, s)
	}
}

// Params is the tagged parameter variant for one engine invocation. Exactly
// one concrete type exists per algorithm; the interface is sealed so the
// dispatcher's type switch is exhaustive and a new algorithm requires an
// explicit new variant here.
type Params interface {
	// Algorithm reports which pipeline the parameter set belongs to.
	Algorithm() Algorithm

	// validate checks every field against its allowed range, returning
	// ErrInvalidParameter (or ErrInvalidThresholdOrder) naming the first
	// offending field.
	validate() error
}

// CannyParams configures the Canny pipeline.
type CannyParams struct {
	Sigma        float64 // Gaussian pre-blur sigma, 0 (no blur) to MaxSigma
	MinVal       int     // lower hysteresis threshold, 0-255
	MaxVal       int     // upper hysteresis threshold, 0-255
	ApertureSize int     // Sobel aperture for the gradient: 3, 5, or 7
}

// Algorithm implements Params.
func (CannyParams) Algorithm() Algorithm { return AlgorithmCanny }

func (p CannyParams) validate() error {
	if p.Sigma < 0 || p.Sigma > MaxSigma || math.IsNaN(p.Sigma) {
		return fmt.Errorf("%w: sigma %v outside [0, %v]", ErrInvalidParameter, p.Sigma, MaxSigma)
	}
	if p.MinVal < 0 || p.MinVal > 255 {
		return fmt.Errorf("%w: minVal %d outside [0, 255]", ErrInvalidParameter, p.MinVal)
	}
	if p.MaxVal < 0 || p.MaxVal > 255 {
		return fmt.Errorf("%w: maxVal %d outside [0, 255]", ErrInvalidParameter, p.MaxVal)
	}
	if p.MinVal > p.MaxVal {
		return fmt.Errorf("%w: minVal %d > maxVal %d", ErrInvalidThresholdOrder, p.MinVal, p.MaxVal)
	}
	if err := checkKernelSize(p.ApertureSize, 3, 5, 7); err != nil {
		return fmt.Errorf("%w: apertureSize: %v", ErrInvalidParameter, err)
	}
	return nil
}

// SobelParams configures the Sobel pipeline.
type SobelParams struct {
	Direction Direction // gradient component to output
	KSize     int       // kernel size: 3, 5, or 7
}

// Algorithm implements Params.
func (SobelParams) Algorithm() Algorithm { return AlgorithmSobel }

func (p SobelParams) validate() error {
	switch p.Direction {
	case DirectionX, DirectionY, DirectionCombined:
	default:
		return fmt.Errorf("%w: direction %d", ErrInvalidParameter, int(p.Direction))
	}
	if err := checkKernelSize(p.KSize, 3, 5, 7); err != nil {
		return fmt.Errorf("%w: ksize: %v", ErrInvalidParameter, err)
	}
	return nil
}

// LaplacianParams configures the Laplacian pipeline.
type LaplacianParams struct {
	KSize int // kernel size: 1, 3, 5, or 7
}

// Algorithm implements Params.
func (LaplacianParams) Algorithm() Algorithm { return AlgorithmLaplacian }

func (p LaplacianParams) validate() error {
	if err := checkKernelSize(p.KSize, 1, 3, 5, 7); err != nil {
		return fmt.Errorf("%w: ksize: %v", ErrInvalidParameter, err)
	}
	return nil
}

// Default parameter sets, matching the reset values the interactive caller
// restores. The engine does not apply them implicitly.

// DefaultCannyParams returns {sigma: 1.0, minVal: 50, maxVal: 150, aperture: 3}.
func DefaultCannyParams() CannyParams {
	return CannyParams{Sigma: 1.0, MinVal: 50, MaxVal: 150, ApertureSize: 3}
}

// DefaultSobelParams returns {direction: combined, ksize: 3}.
func DefaultSobelParams() SobelParams {
	return SobelParams{Direction: DirectionCombined, KSize: 3}
}

// DefaultLaplacianParams returns {ksize: 3}.
func DefaultLaplacianParams() LaplacianParams {
	return LaplacianParams{KSize: 3}
}

// Detect validates the parameter set and runs the matching pipeline on a
// 3-channel 8-bit raster, returning the single-channel edge map.
//
// Validation is fail-fast: no pixel is processed unless every field is in
// range. The call is pure; identical inputs always produce bit-identical
// output.
func Detect(src *Raster, p Params) (*Raster, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil parameter set", ErrInvalidParameter)
	}
	if !src.valid() {
		return nil, fmt.Errorf("%w: malformed raster", ErrInvalidParameter)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	switch p := p.(type) {
	case CannyParams:
		return detectCanny(src, p)
	case SobelParams:
		return detectSobel(src, p)
	case LaplacianParams:
		return detectLaplacian(src, p)
	default:
		return nil, fmt.Errorf("%w: unhandled parameter type %T", ErrInvalidParameter, p)
	}
}
