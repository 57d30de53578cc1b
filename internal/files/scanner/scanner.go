// Package scanner discovers and loads the SVG sheets of an edition
// folder.
package scanner

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lili041/tkkunify/internal/checksum"
	"github.com/lili041/tkkunify/internal/files/filesystem"
	"github.com/lili041/tkkunify/pkg/tkkunify"
)

// Scanner discovers SVG files in a folder tree and loads them fully
// into memory. Scanner is safe for concurrent use by multiple
// goroutines as long as the provided calculator and fsProvider are
// also thread-safe.
type Scanner struct {
	calculator checksum.Calculator
	fsProvider filesystem.Provider
}

// NewScanner creates a new SVG scanner with the given checksum
// calculator. Uses the OS filesystem by default.
// Panics if calculator is nil.
func NewScanner(calculator checksum.Calculator) *Scanner {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	return &Scanner{
		calculator: calculator,
		fsProvider: filesystem.NewOSFileSystem(),
	}
}

// NewScannerWithFS creates a new SVG scanner with a custom filesystem
// provider. This is primarily useful for testing with in-memory
// filesystems. Panics if calculator or fsProvider is nil.
func NewScannerWithFS(calculator checksum.Calculator, fsProvider filesystem.Provider) *Scanner {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{
		calculator: calculator,
		fsProvider: fsProvider,
	}
}

// ScanDirectory recursively scans a folder and returns every SVG
// document, keyed by filename and listed in walk order. The extension
// check is case-insensitive. A folder without a single SVG yields
// ErrNoSvgFiles: there is nothing a unification run could do.
func (s *Scanner) ScanDirectory(svgDir string) (tkkunify.SvgScanResult, error) {
	dir, err := s.fsProvider.Open(svgDir)
	if err != nil {
		return tkkunify.SvgScanResult{}, fmt.Errorf("%w: %v", tkkunify.ErrNoSvgFiles, err)
	}

	result := tkkunify.SvgScanResult{
		Documents: make(map[string]*tkkunify.SvgDocument),
	}

	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path: %w", err)
		}
		if file.Info().IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(file.Path()), ".svg") {
			return nil
		}

		content, err := file.ReadContent()
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file.RelativePath(), err)
		}

		name := file.Info().Name()
		if _, exists := result.Documents[name]; exists {
			return fmt.Errorf("duplicate SVG filename %q (subfolders must not repeat names)", name)
		}

		result.Documents[name] = &tkkunify.SvgDocument{
			Name:     name,
			Path:     file.Path(),
			Content:  string(content),
			Checksum: s.calculator.CalculateRaw(content),
		}
		result.Names = append(result.Names, name)
		return nil
	})
	if err != nil {
		return tkkunify.SvgScanResult{}, err
	}

	if len(result.Names) == 0 {
		return tkkunify.SvgScanResult{}, fmt.Errorf("%w in folder: %s", tkkunify.ErrNoSvgFiles, svgDir)
	}

	return result, nil
}

// Verify Scanner implements the interface at compile time
var _ tkkunify.SvgScanner = (*Scanner)(nil)
