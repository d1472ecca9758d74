package edge

import "errors"

// Sentinel errors returned by the engine. Callers classify failures with
// errors.Is; the wrapped message names the offending field or value.
var (
	// ErrInvalidChannelCount is returned when an operation receives a raster
	// with the wrong number of channels (e.g. grayscale conversion of
	// anything but a 3-channel raster).
	ErrInvalidChannelCount = errors.New("invalid channel count")

	// ErrUnsupportedKernelSize is returned by the kernel generator when a
	// kernel is requested outside the supported enumerated sizes.
	ErrUnsupportedKernelSize = errors.New("unsupported kernel size")

	// ErrInvalidParameter is returned when a parameter set contains an
	// out-of-range or malformed field. The wrapped message names the field.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidThresholdOrder is returned by the Canny pipeline when
	// minVal > maxVal. The engine rejects the pair rather than silently
	// swapping it.
	ErrInvalidThresholdOrder = errors.New("invalid threshold order")
)
