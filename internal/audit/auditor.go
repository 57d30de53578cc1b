// Package audit reconciles the final ID state between the textcritics
// document and the SVG sheets after unification.
//
// Two order-independent passes over the post-unification state:
//  1. every non-deferred record's current ID must exist on at least
//     one class="tkk" element somewhere in the pool (else JSON-stale),
//  2. every id found on a class="tkk" element must belong to at least
//     one non-deferred record (else SVG orphan).
//
// Deferred records are known open items, not resolutions: they are
// excluded from pass 1, and their IDs never satisfy pass 2.
package audit

import (
	"github.com/lili041/tkkunify/internal/svgedit"
	"github.com/lili041/tkkunify/pkg/tkkunify"
)

// Auditor classifies unresolved mismatches after a unification run.
type Auditor struct {
	logger tkkunify.Logger
}

// New creates an Auditor.
// Panics if logger is nil.
func New(logger tkkunify.Logger) *Auditor {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Auditor{logger: logger}
}

// Audit compares the final ID sets of records and documents. names
// fixes the document iteration order so orphan reporting is
// deterministic.
func (a *Auditor) Audit(records []*tkkunify.GroupRecord, documents map[string]*tkkunify.SvgDocument, names []string) tkkunify.DiscrepancyReport {
	var report tkkunify.DiscrepancyReport

	// IDs carried by active (non-deferred) records.
	active := make(map[string]struct{})
	for _, record := range records {
		if !record.Deferred {
			active[record.CurrentID] = struct{}{}
		}
	}

	// Pass 2 input: every tkk id per document, in pool order. An id
	// repeated inside one document is reported once.
	svgIDs := make(map[string]struct{})
	seen := make(map[tkkunify.SvgOrphan]struct{})
	for _, name := range names {
		doc, ok := documents[name]
		if !ok {
			continue
		}
		for _, id := range svgedit.IDs(doc.Content) {
			svgIDs[id] = struct{}{}
			if _, ok := active[id]; ok {
				continue
			}
			orphan := tkkunify.SvgOrphan{SvgName: name, ID: id}
			if _, dup := seen[orphan]; dup {
				continue
			}
			seen[orphan] = struct{}{}
			a.logger.Verbose("  [!] SVG orphan: id '%s' with class '%s' in %s", id, tkkunify.TkkClass, name)
			report.SvgOrphans = append(report.SvgOrphans, orphan)
		}
	}

	// Pass 1: stale records.
	for _, record := range records {
		if record.Deferred {
			continue
		}
		if _, ok := svgIDs[record.CurrentID]; !ok {
			a.logger.Verbose("  [!] JSON stale: id '%s' in entry %s not present in any SVG", record.CurrentID, record.EntryID)
			report.JSONStale = append(report.JSONStale, record)
		}
	}

	return report
}
