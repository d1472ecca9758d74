// Package edge implements the edge-detection processing engine: the Canny,
// Sobel, and Laplacian pipelines over 8-bit raster images.
//
// The engine is a pure function of (image, parameters). It holds no state
// between invocations, performs no I/O, and never logs; running it twice with
// identical inputs produces bit-identical output. Image decoding, parameter
// widgets, and result display belong to the caller (see internal/imaging and
// internal/server).
//
// # Pipelines
//
// All three detectors start by reducing the 3-channel input to luma using
// ITU-R BT.601 weights (0.299*R + 0.587*G + 0.114*B). From there:
//
//   - Sobel: horizontal/vertical derivative rasters at the requested kernel
//     size, rescaled to 8-bit absolute magnitude, selectable as X, Y, or a
//     50/50 combination.
//   - Laplacian: a single second-derivative convolution, rescaled to 8-bit
//     absolute magnitude.
//   - Canny: separable Gaussian blur, gradient magnitude and orientation,
//     non-maximum suppression along the quantized gradient direction, then
//     double thresholding with hysteresis linking. Output is strictly binary
//     (0 or 255).
//
// # Data Model
//
// Rasters are row-major byte buffers (Raster for 8-bit samples, SignedRaster
// for the 16-bit signed convolution intermediate). Convolutions use
// edge-replicate border sampling throughout, so borders are never darkened by
// artificial zero padding.
//
// # Error Handling
//
// All validation failures are detected before any pixel is processed and
// reported through the sentinel errors in errors.go, wrapped with field
// context. Use errors.Is to classify them. The engine never produces partial
// output: a call either returns a complete edge map or an error.
package edge
