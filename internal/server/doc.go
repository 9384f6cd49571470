// Package server implements an MCP (Model Context Protocol) server exposing
// edge detection and MSE scoring as tools.
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
// # Available Tools
//
//   - image_load: Load image and get metadata
//   - edge_detect: Run the four edge operators on one image and score them
//   - edge_batch: Run edge_detect over a list of images and return the report
//
// # Image Caching
//
// Decoded images are cached by path. Edge tools evict an image once it has
// been processed; image_load keeps it cached for follow-up calls.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// edge_batch never fails because of a single image; per-image failures are
// listed in the report's failures array.
package server
