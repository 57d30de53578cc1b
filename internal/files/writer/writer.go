// Package writer persists rewritten documents back to their files.
package writer

import (
	"fmt"

	"github.com/lili041/tkkunify/internal/checksum"
	"github.com/lili041/tkkunify/internal/files/filesystem"
	"github.com/lili041/tkkunify/pkg/tkkunify"
)

// Writer writes unification results back to disk. Only SVG documents
// whose content actually changed are touched, so untouched sheets keep
// their modification times and a re-run on a unified folder writes
// nothing.
type Writer struct {
	calculator checksum.Calculator
	fsProvider filesystem.Provider
	logger     tkkunify.Logger
}

// NewWriter creates a writer backed by the OS filesystem.
// Panics if calculator or logger is nil.
func NewWriter(calculator checksum.Calculator, logger tkkunify.Logger) *Writer {
	return NewWriterWithFS(calculator, filesystem.NewOSFileSystem(), logger)
}

// NewWriterWithFS creates a writer with a custom filesystem provider.
// Panics if any dependency is nil.
func NewWriterWithFS(calculator checksum.Calculator, fsProvider filesystem.Provider, logger tkkunify.Logger) *Writer {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Writer{calculator: calculator, fsProvider: fsProvider, logger: logger}
}

// PersistSvgs writes every changed document back to its path, in pool
// order. Returns the number of files written. The change check
// compares the document's current content hash against the checksum
// recorded at load time.
func (w *Writer) PersistSvgs(documents map[string]*tkkunify.SvgDocument, names []string) (int, error) {
	written := 0
	for _, name := range names {
		doc, ok := documents[name]
		if !ok {
			continue
		}
		if w.calculator.CalculateRaw([]byte(doc.Content)) == doc.Checksum {
			continue
		}
		if err := w.fsProvider.WriteFile(doc.Path, []byte(doc.Content)); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", doc.Name, err)
		}
		w.logger.Verbose("  [WRITE] %s", doc.Name)
		written++
	}
	return written, nil
}

// PersistMetadata writes the re-serialized textcritics document and
// reports whether it wrote. Re-serialization reformats, so the change
// check hashes normalized content: a document that differs from the
// loaded bytes only in whitespace is left alone and keeps its
// modification time, same as an untouched SVG sheet.
func (w *Writer) PersistMetadata(path string, original, updated []byte) (bool, error) {
	if w.calculator.CalculateNormalized(original) == w.calculator.CalculateNormalized(updated) {
		w.logger.Verbose("  [SKIP] %s (unchanged)", path)
		return false, nil
	}
	if err := w.fsProvider.WriteFile(path, updated); err != nil {
		return false, fmt.Errorf("failed to write textcritics document: %w", err)
	}
	w.logger.Verbose("  [WRITE] %s", path)
	return true, nil
}
