package tkkunify

import "errors"

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := service.Unify(ctx, config)
//	if errors.Is(err, tkkunify.ErrApprovalDenied) {
//	    // Handle user denying the in-place rewrite
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMetadataNotFound indicates the textcritics JSON document was not found.
	ErrMetadataNotFound = errors.New("textcritics document not found")

	// ErrNoSvgFiles indicates the SVG folder is missing or contains no SVG files.
	ErrNoSvgFiles = errors.New("no SVG files found")

	// ErrApprovalDenied indicates the user denied approval for the in-place rewrite.
	ErrApprovalDenied = errors.New("approval denied")

	// ErrUnresolved indicates discrepancies remain after unification or audit.
	ErrUnresolved = errors.New("unresolved discrepancies")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrMetadataNotFound):
		return ExitMetadataMissing
	case errors.Is(err, ErrNoSvgFiles):
		return ExitNoSvgFiles
	case errors.Is(err, ErrApprovalDenied):
		return ExitApprovalDenied
	case errors.Is(err, ErrUnresolved):
		return ExitUnresolved
	}

	return ExitGeneralError
}
