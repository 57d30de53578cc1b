// Package files provides file-related functionality organized into
// sub-packages:
//   - filesystem: filesystem abstraction with OS and in-memory
//     implementations, for testability
//   - scanner: SVG sheet discovery and loading
//   - writer: persisting rewritten documents back to disk
package files
