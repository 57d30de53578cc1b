package tkkunify

// SvgScanner defines the interface for discovering SVG sheets.
// Implementations must be safe for concurrent use by multiple goroutines.
type SvgScanner interface {
	// ScanDirectory recursively scans a folder and returns every SVG
	// document (case-insensitive .svg extension), fully loaded.
	ScanDirectory(svgDir string) (SvgScanResult, error)
}

// SvgScanResult contains the results of scanning an SVG folder.
type SvgScanResult struct {
	// Documents maps filename to document, the shape the matcher and
	// orchestrator consume.
	Documents map[string]*SvgDocument

	// Names lists the filenames in walk order, for deterministic
	// candidate iteration.
	Names []string
}
