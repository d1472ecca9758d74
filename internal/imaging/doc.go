// Package imaging provides the caller-side image plumbing around the edge
// engine: decoding and caching source images, converting between standard Go
// image.Image values and the engine's raster types, and rendering edge maps
// for display.
//
// The engine itself (internal/edge) is a pure function over raw rasters and
// knows nothing about files, encodings, or display. Everything in this
// package is the "external caller" side of that contract:
//
//   - ImageCache decodes png/jpeg/gif/bmp files and caches the results.
//   - ToRaster flattens a decoded image.Image into a 3-channel 8-bit raster.
//   - GrayImage expands a single-channel edge map back into an image.Gray.
//   - SideBySide and Overlay compose displayable result images.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The conversion and composition
// functions are stateless and can be called concurrently.
//
// # Error Handling
//
// Functions return errors for unreadable or undecodable files and for
// dimension mismatches between a source image and its edge map. Encoding
// errors from the PNG encoder are wrapped and propagated.
package imaging
