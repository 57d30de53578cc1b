// Package services wires the collaborators into the two top-level
// workflows: the in-place unification run and the report-only audit.
package services

import (
	"context"
	"fmt"

	"github.com/lili041/tkkunify/internal/audit"
	"github.com/lili041/tkkunify/internal/files/filesystem"
	"github.com/lili041/tkkunify/internal/files/writer"
	"github.com/lili041/tkkunify/internal/textcritics"
	"github.com/lili041/tkkunify/internal/unify"
	"github.com/lili041/tkkunify/pkg/tkkunify"
)

// Summary is the result of one unification or audit workflow,
// consumed by the reporting layer.
type Summary struct {
	Result       unify.Result
	Report       tkkunify.DiscrepancyReport
	RecordCount  int
	SvgCount     int
	FilesWritten int
	DryRun       bool
}

// UnificationService orchestrates a full unification workflow.
// Thread-Safety: NOT safe for concurrent Unify() calls on the same
// instance. Create separate instances for concurrent runs.
//
// Panics on nil dependencies at construction: those are programmer
// errors that should fail loudly at startup. Runtime conditions
// (missing files, malformed documents) are returned as errors.
type UnificationService struct {
	fsProvider filesystem.Provider
	svgScanner tkkunify.SvgScanner
	svgWriter  *writer.Writer
	unifier    *unify.Service
	auditor    *audit.Auditor
	approver   tkkunify.Approver
	logger     tkkunify.Logger
}

// NewUnificationService creates a UnificationService with all
// dependencies injected. Panics if any dependency is nil.
func NewUnificationService(
	fsProvider filesystem.Provider,
	svgScanner tkkunify.SvgScanner,
	svgWriter *writer.Writer,
	unifier *unify.Service,
	auditor *audit.Auditor,
	approver tkkunify.Approver,
	logger tkkunify.Logger,
) *UnificationService {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if svgScanner == nil {
		panic("svgScanner cannot be nil")
	}
	if svgWriter == nil {
		panic("svgWriter cannot be nil")
	}
	if unifier == nil {
		panic("unifier cannot be nil")
	}
	if auditor == nil {
		panic("auditor cannot be nil")
	}
	if approver == nil {
		panic("approver cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &UnificationService{
		fsProvider: fsProvider,
		svgScanner: svgScanner,
		svgWriter:  svgWriter,
		unifier:    unifier,
		auditor:    auditor,
		approver:   approver,
		logger:     logger,
	}
}

// Unify executes the full workflow: load the textcritics document,
// scan the SVG folder, assign canonical IDs, run the per-record
// unification, audit the final state and, unless dry-running, persist
// everything back in place.
func (s *UnificationService) Unify(ctx context.Context, config tkkunify.UnifyConfig) (Summary, error) {
	if err := config.Validate(); err != nil {
		return Summary{}, fmt.Errorf("invalid configuration: %w", err)
	}

	original, doc, records, scan, err := s.loadInputs(config.MetadataPath, config.SvgDir)
	if err != nil {
		return Summary{}, err
	}

	textcritics.AssignCanonicalIDs(records, config.IDPrefix)

	s.logger.Info("Loaded textcritics document with %d entries (%d group records)", doc.EntryCount(), len(records))
	s.logger.Info("Found %d SVG files in folder", len(scan.Names))

	if !config.DryRun {
		approved, err := s.approver.RequestApproval(ctx, config.MetadataPath)
		if err != nil {
			return Summary{}, fmt.Errorf("approval failed: %w", err)
		}
		if !approved {
			return Summary{}, tkkunify.ErrApprovalDenied
		}
	}

	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	result := s.unifier.Run(records, scan.Documents, scan.Names)
	report := s.auditor.Audit(records, scan.Documents, scan.Names)

	summary := Summary{
		Result:      result,
		Report:      report,
		RecordCount: len(records),
		SvgCount:    len(scan.Names),
		DryRun:      config.DryRun,
	}

	if config.DryRun {
		s.logger.Info("Dry run: no files written")
		return summary, unresolved(report)
	}

	doc.Apply()
	data, err := doc.Marshal()
	if err != nil {
		return summary, err
	}

	written, err := s.svgWriter.PersistSvgs(scan.Documents, scan.Names)
	summary.FilesWritten = written
	if err != nil {
		return summary, err
	}
	wroteDoc, err := s.svgWriter.PersistMetadata(config.MetadataPath, original, data)
	if err != nil {
		return summary, err
	}
	if wroteDoc {
		summary.FilesWritten++
	}

	s.logger.Info("✓ Unification completed: %d file(s) written", summary.FilesWritten)
	return summary, unresolved(report)
}

// Audit executes the report-only workflow against the current state of
// the files. Nothing is written and no canonical IDs are assigned.
func (s *UnificationService) Audit(ctx context.Context, config tkkunify.AuditConfig) (Summary, error) {
	if err := config.Validate(); err != nil {
		return Summary{}, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	_, _, records, scan, err := s.loadInputs(config.MetadataPath, config.SvgDir)
	if err != nil {
		return Summary{}, err
	}

	report := s.auditor.Audit(records, scan.Documents, scan.Names)
	return Summary{
		Report:      report,
		RecordCount: len(records),
		SvgCount:    len(scan.Names),
		DryRun:      true,
	}, unresolved(report)
}

// unresolved turns a dirty report into ErrUnresolved so callers can map
// it to the corresponding exit code. The summary is still returned:
// unresolved discrepancies are a finding, not a failure to run.
func unresolved(report tkkunify.DiscrepancyReport) error {
	if report.Clean() {
		return nil
	}
	return tkkunify.ErrUnresolved
}

// loadInputs reads and parses the textcritics document and scans the
// SVG folder. The raw document bytes are returned alongside the parse
// so the writer can later compare the re-serialized document against
// what was actually on disk.
func (s *UnificationService) loadInputs(metadataPath, svgDir string) ([]byte, *textcritics.Document, []*tkkunify.GroupRecord, tkkunify.SvgScanResult, error) {
	data, err := s.fsProvider.ReadFile(metadataPath)
	if err != nil {
		return nil, nil, nil, tkkunify.SvgScanResult{}, fmt.Errorf("%w: %s (%v)", tkkunify.ErrMetadataNotFound, metadataPath, err)
	}

	doc, err := textcritics.Parse(data)
	if err != nil {
		return nil, nil, nil, tkkunify.SvgScanResult{}, err
	}
	records := doc.Flatten()

	scan, err := s.svgScanner.ScanDirectory(svgDir)
	if err != nil {
		return nil, nil, nil, tkkunify.SvgScanResult{}, err
	}

	return data, doc, records, scan, nil
}
