// Package server implements the MCP (Model Context Protocol) server for the
// edge-detection tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the edge-detection
// engine through the MCP protocol. It's designed to work with Claude and other
// MCP-compatible clients, enabling AI systems to run classical edge detectors
// over local image files.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// Diagnostics go to stderr through a structured logger; stdout carries
// nothing but the protocol stream.
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Edge Detection:
//   - edge_detect: Run Canny, Sobel, or Laplacian and return the edge map
//   - edge_compare: Source and edge map side by side in one image
//   - edge_overlay: Edges tinted in a chosen color over the source
//
// Cache Management:
//   - cache_clear: Evict all cached decoded images
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across multiple tool calls, avoiding redundant disk I/O.
// The cache persists until the process exits or a cache_clear call evicts it.
package server
