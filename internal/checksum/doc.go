// Package checksum provides file content hashing with normalization
// support.
//
// The package implements a dual checksum strategy:
//
//   - Raw checksum: hash of the exact file content. The writer uses it
//     to skip files whose bytes did not change during unification.
//   - Normalized checksum: hash after removing XML comments and
//     collapsing whitespace, giving a formatting-independent content
//     identity for SVG sheets that get re-exported by graphics tools.
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
