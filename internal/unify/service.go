// Package unify contains the per-record orchestration loop that drives
// matching and rewriting.
package unify

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lili041/tkkunify/internal/match"
	"github.com/lili041/tkkunify/internal/svgedit"
	"github.com/lili041/tkkunify/pkg/tkkunify"
)

// Result aggregates a unification run: one outcome per input record,
// in input order, plus a run identifier surfaced in logs and reports.
type Result struct {
	RunID    uuid.UUID
	Outcomes []tkkunify.Outcome
}

// Count returns the number of outcomes with the given status.
func (r Result) Count(status tkkunify.OutcomeStatus) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// Service unifies metadata records with their SVG sheets. Records are
// processed independently and in input order; a failing record yields
// a failing outcome and never aborts the run.
type Service struct {
	matcher *match.Matcher
	logger  tkkunify.Logger
}

// NewService creates a unification service.
// Panics if matcher or logger is nil.
func NewService(matcher *match.Matcher, logger tkkunify.Logger) *Service {
	if matcher == nil {
		panic("matcher cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Service{matcher: matcher, logger: logger}
}

// Run processes every record against the document pool. names is the
// candidate pool in deterministic order; documents holds the loaded
// SVG texts by filename. Documents are mutated in place (Content);
// records are mutated in place (CurrentID) when unification succeeds.
func (s *Service) Run(records []*tkkunify.GroupRecord, documents map[string]*tkkunify.SvgDocument, names []string) Result {
	result := Result{
		RunID:    uuid.New(),
		Outcomes: make([]tkkunify.Outcome, 0, len(records)),
	}
	s.logger.Verbose("unification run %s: %d records, %d SVG documents",
		result.RunID, len(records), len(names))

	for _, record := range records {
		result.Outcomes = append(result.Outcomes, s.unifyRecord(record, documents, names))
	}
	return result
}

func (s *Service) unifyRecord(record *tkkunify.GroupRecord, documents map[string]*tkkunify.SvgDocument, names []string) tkkunify.Outcome {
	if record.Deferred {
		s.logger.Verbose("  [SKIP] deferred entry in %s", record.EntryID)
		return tkkunify.Outcome{Record: record, Status: tkkunify.OutcomeSkipped}
	}

	matched := s.matcher.Match(record, names)
	if len(matched) == 0 {
		s.logger.Verbose("  [MISS] no SVG candidate for '%s' in %s", record.CurrentID, record.EntryID)
		return tkkunify.Outcome{Record: record, Status: tkkunify.OutcomeNoMatch}
	}

	outcome := tkkunify.Outcome{Record: record, SvgNames: matched}

	if record.CanonicalID == "" {
		outcome.Status = tkkunify.OutcomeIOOrFormatError
		outcome.Err = fmt.Errorf("record %s has no canonical ID", record.EntryID)
		return outcome
	}

	// Verify the whole candidate set is loaded before touching any
	// document, so a missing file cannot leave a half-rewritten group.
	for _, name := range matched {
		if _, ok := documents[name]; !ok {
			outcome.Status = tkkunify.OutcomeIOOrFormatError
			outcome.Err = fmt.Errorf("matched SVG document %q not loaded", name)
			s.logger.Error("  [ERROR] %v (entry %s)", outcome.Err, record.EntryID)
			return outcome
		}
	}

	for _, name := range matched {
		doc := documents[name]
		updated, n := svgedit.Rewrite(doc.Content, record.CurrentID, record.CanonicalID)
		if n > 0 {
			doc.Content = updated
			outcome.Occurrences += n
			s.logger.Verbose("  [SVG]  changing '%s' -> '%s' in %s (%d occurrence(s))",
				record.CurrentID, record.CanonicalID, name, n)
		}
	}

	if outcome.Occurrences == 0 {
		outcome.Status = tkkunify.OutcomeIOOrFormatError
		outcome.Err = fmt.Errorf("id %q with class %q not found in matched SVGs for %s",
			record.CurrentID, tkkunify.TkkClass, record.EntryID)
		s.logger.Error("  [ERROR] %v", outcome.Err)
		return outcome
	}

	s.logger.Verbose("  [JSON] changing '%s' -> '%s' in %s", record.CurrentID, record.CanonicalID, record.EntryID)
	record.CurrentID = record.CanonicalID
	outcome.Status = tkkunify.OutcomeUnified
	return outcome
}
