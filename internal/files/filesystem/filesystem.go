// Package filesystem abstracts file access so the scanner and writer
// can be exercised against an in-memory tree in tests.
package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while keeping a
// stable local type for the abstraction layer.
type FileInfo = fs.FileInfo

// File represents an individual file with its metadata and content accessor.
type File interface {
	// Path returns the absolute path to the file.
	Path() string

	// RelativePath returns the path relative to the walked root.
	RelativePath() string

	// Info returns file metadata.
	Info() FileInfo

	// ReadContent returns the file's content.
	ReadContent() ([]byte, error)
}

// Directory represents a directory that can be traversed to discover files.
type Directory interface {
	// Path returns the absolute path to the directory.
	Path() string

	// Walk traverses the directory tree in deterministic (lexical)
	// order, calling fn for each file and directory. If fn returns an
	// error, walking stops and that error is returned.
	Walk(fn func(File, error) error) error
}

// Provider is a factory for Directory instances plus flat file access.
// Unlike a read-only scan source, tkkunify rewrites documents in
// place, so the provider also carries WriteFile.
type Provider interface {
	// Open opens a directory at the specified path.
	Open(path string) (Directory, error)

	// ReadFile reads a specific file at the given path.
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces the content of the file at the given path.
	WriteFile(path string, data []byte) error

	// Stat returns file information for the given path.
	Stat(path string) (FileInfo, error)
}
