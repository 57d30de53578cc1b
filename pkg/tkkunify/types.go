package tkkunify

import (
	"errors"
	"fmt"
)

// RecordKind selects the SVG candidate matching policy for a record.
type RecordKind int

const (
	// KindStandard matches per-group sheets by shared numeric tokens.
	KindStandard RecordKind = iota
	// KindReihentabelle matches row-table overview sheets, which
	// aggregate many groups and need a looser rule.
	KindReihentabelle
)

// String returns a human-readable string representation of the RecordKind.
func (k RecordKind) String() string {
	switch k {
	case KindStandard:
		return "standard"
	case KindReihentabelle:
		return "reihentabelle"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// GroupRecord is one flattened metadata entry: a single svgGroupId
// occurrence inside the textcritics document, together with the label
// context needed to locate its SVG sheets.
type GroupRecord struct {
	// EntryID is the ID of the enclosing textcritics entry,
	// e.g. "M_143_TF1" or "Mx_136_SkRT". Used as the matching label.
	EntryID string

	// Label is the free text the matcher derives numeric tokens from.
	// For records flattened from a textcritics document this equals
	// EntryID; callers embedding the core may supply any label.
	Label string

	// CurrentID is the svgGroupId as currently stored in the document.
	// Overwritten with CanonicalID when unification succeeds.
	CurrentID string

	// CanonicalID is the authoritative identifier the record and all
	// matched SVG elements must end up with. Supplied by the caller;
	// the core never derives it.
	CanonicalID string

	// Kind selects the matching policy.
	Kind RecordKind

	// Deferred marks a known open item ("TODO"). Deferred records are
	// skipped by unification and excluded from strict audit failure.
	Deferred bool
}

// SvgDocument is one SVG file held fully in memory. The core only ever
// edits the Content string; persistence is the writer's concern.
type SvgDocument struct {
	// Name is the filename, e.g. "M143_Textfassung1_Seite1.svg".
	// It is the identifier records are matched against.
	Name string

	// Path is the absolute path the document was loaded from.
	Path string

	// Content is the full file text.
	Content string

	// Checksum is the SHA-256 of the content as loaded. The writer
	// compares it against the final content to skip unchanged files.
	Checksum string
}

// OutcomeStatus classifies the result of unifying one record.
type OutcomeStatus int

const (
	// OutcomeUnified means the record and all matched SVGs were updated.
	OutcomeUnified OutcomeStatus = iota
	// OutcomeNoMatch means no SVG candidate was found for the record.
	OutcomeNoMatch
	// OutcomeIOOrFormatError means a matched document was missing from
	// the supplied map, or no class="tkk" element carried the record's
	// current ID.
	OutcomeIOOrFormatError
	// OutcomeSkipped means the record is deferred and was not processed.
	OutcomeSkipped
)

// String returns a human-readable string representation of the OutcomeStatus.
func (s OutcomeStatus) String() string {
	switch s {
	case OutcomeUnified:
		return "unified"
	case OutcomeNoMatch:
		return "no match"
	case OutcomeIOOrFormatError:
		return "io/format error"
	case OutcomeSkipped:
		return "skipped"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// Outcome is the per-record result of a unification run. Every input
// record yields exactly one Outcome; a failing record never aborts the
// run.
type Outcome struct {
	Record      *GroupRecord
	Status      OutcomeStatus
	SvgNames    []string // matched documents, in pool order
	Occurrences int      // total rewritten id occurrences across SvgNames
	Err         error    // set for OutcomeIOOrFormatError
}

// DiscrepancyReport is the result of the post-unification audit.
type DiscrepancyReport struct {
	// JSONStale lists non-deferred records whose CurrentID is not found
	// on any class="tkk" element across the provided SVGs.
	JSONStale []*GroupRecord

	// SvgOrphans lists id values found on class="tkk" elements that no
	// non-deferred record accounts for, keyed per document.
	SvgOrphans []SvgOrphan
}

// SvgOrphan is one orphaned id value inside one SVG document.
type SvgOrphan struct {
	SvgName string
	ID      string
}

// Clean reports whether the audit found no discrepancies.
func (r DiscrepancyReport) Clean() bool {
	return len(r.JSONStale) == 0 && len(r.SvgOrphans) == 0
}

// UnifyConfig contains all parameters needed for a unification run.
type UnifyConfig struct {
	// MetadataPath is the textcritics JSON document to unify.
	MetadataPath string

	// SvgDir is the folder containing the SVG sheets.
	SvgDir string

	// IDPrefix is the canonical prefix for unified IDs (default "g-tkk-").
	IDPrefix string

	// DryRun reports what would change without writing any file.
	DryRun bool

	// Force bypasses interactive approval for the in-place rewrite.
	Force bool

	// Verbose enables detailed logging.
	Verbose bool
}

// Validate checks if the UnifyConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *UnifyConfig) Validate() error {
	var errs []error

	if c.MetadataPath == "" {
		errs = append(errs, fmt.Errorf("MetadataPath is required: %w", ErrInvalidConfig))
	}

	if c.SvgDir == "" {
		errs = append(errs, fmt.Errorf("SvgDir is required: %w", ErrInvalidConfig))
	}

	if c.IDPrefix == "" {
		errs = append(errs, fmt.Errorf("IDPrefix is required: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// AuditConfig contains all parameters needed for a report-only audit.
type AuditConfig struct {
	// MetadataPath is the textcritics JSON document to audit.
	MetadataPath string

	// SvgDir is the folder containing the SVG sheets.
	SvgDir string

	// IDPrefix is the canonical prefix audited entries must carry.
	IDPrefix string

	// Verbose enables detailed logging.
	Verbose bool
}

// Validate checks if the AuditConfig has all required fields.
// It returns a multi-error if multiple validation failures occur.
func (c *AuditConfig) Validate() error {
	var errs []error

	if c.MetadataPath == "" {
		errs = append(errs, fmt.Errorf("MetadataPath is required: %w", ErrInvalidConfig))
	}

	if c.SvgDir == "" {
		errs = append(errs, fmt.Errorf("SvgDir is required: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}
