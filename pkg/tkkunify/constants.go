package tkkunify

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Unification/audit completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration or parameters
	ExitApprovalDenied  = 12 // User denied the in-place rewrite approval
	ExitUnresolved      = 13 // Discrepancies remain after unification/audit
	ExitMetadataMissing = 14 // textcritics JSON document not found
	ExitNoSvgFiles      = 15 // SVG folder empty or missing
)

const (
	// DefaultIDPrefix is the canonical prefix for unified TKK group IDs.
	DefaultIDPrefix = "g-tkk-"

	// TkkClass is the class attribute value identifying annotated group
	// elements inside the SVG markup. Only elements with exactly this
	// class are ever rewritten.
	TkkClass = "tkk"

	// DeferredMarker is the literal svgGroupId value editors use to mark
	// a block comment as a known open item. Deferred records are skipped
	// by unification and excluded from strict audit failure.
	DeferredMarker = "TODO"

	// ReihentabelleMarker identifies row-table overview sheets by
	// filename. A single Reihentabelle sheet aggregates many groups, so
	// it is matched by a looser rule than per-group sheets.
	ReihentabelleMarker = "Reihentabelle"

	// SkRTMarker identifies row-table metadata entries by entry ID.
	SkRTMarker = "SkRT"

	// DefaultForceApprovalCountdown is the countdown duration before a
	// forced approval proceeds with the in-place rewrite.
	DefaultForceApprovalCountdown = 5 * time.Second

	// DefaultMetadataFile is the textcritics document filename looked up
	// in the project directory when no explicit path is configured.
	DefaultMetadataFile = "textcritics.json"

	// DefaultSvgDir is the SVG folder looked up in the project directory
	// when no explicit path is configured.
	DefaultSvgDir = "img"
)
