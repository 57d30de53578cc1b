package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lili041/tkkunify/internal/services"
	"github.com/lili041/tkkunify/internal/unify"
	"github.com/lili041/tkkunify/pkg/tkkunify"
)

func sampleSummary() services.Summary {
	unified := &tkkunify.GroupRecord{EntryID: "M_143_TF1", CurrentID: "g-tkk-1"}
	missed := &tkkunify.GroupRecord{EntryID: "M_144_TF1", CurrentID: "g_x"}
	deferred := &tkkunify.GroupRecord{EntryID: "M_145_TF1", CurrentID: "TODO", Deferred: true}
	failed := &tkkunify.GroupRecord{EntryID: "M_146_TF1", CurrentID: "g_y"}

	return services.Summary{
		Result: unify.Result{
			Outcomes: []tkkunify.Outcome{
				{Record: unified, Status: tkkunify.OutcomeUnified, SvgNames: []string{"M143_Textfassung1.svg"}, Occurrences: 2},
				{Record: missed, Status: tkkunify.OutcomeNoMatch},
				{Record: deferred, Status: tkkunify.OutcomeSkipped},
				{Record: failed, Status: tkkunify.OutcomeIOOrFormatError, SvgNames: []string{"M146.svg"}, Err: errors.New("id \"g_y\" not found")},
			},
		},
		Report:       tkkunify.DiscrepancyReport{JSONStale: []*tkkunify.GroupRecord{missed}},
		RecordCount:  4,
		SvgCount:     3,
		FilesWritten: 2,
	}
}

func TestRenderRun(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, false, false)

	r.RenderRun(sampleSummary())

	out := buf.String()
	assert.Contains(t, out, "M_143_TF1")
	assert.Contains(t, out, "M143_Textfassung1.svg")
	assert.Contains(t, out, "no match")
	assert.Contains(t, out, "✗ error")
	assert.Contains(t, out, "4 record(s): 1 unified, 1 without match, 1 failed, 1 deferred")
	assert.Contains(t, out, "2 file(s) written")
	assert.Contains(t, out, "Stale document IDs")
	assert.Contains(t, out, "g_x")
	// Deferred rows are hidden unless verbose.
	assert.NotContains(t, out, "M_145_TF1")
}

func TestRenderRun_VerboseShowsDeferred(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, false, true)

	r.RenderRun(sampleSummary())

	assert.Contains(t, buf.String(), "M_145_TF1")
	assert.Contains(t, buf.String(), "deferred")
}

func TestRenderRun_DryRun(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, false, false)

	summary := sampleSummary()
	summary.DryRun = true
	summary.FilesWritten = 0
	r.RenderRun(summary)

	assert.Contains(t, buf.String(), "Dry run: no files were written")
	assert.NotContains(t, buf.String(), "file(s) written")
}

func TestRenderDiscrepancies_Clean(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, false, false)

	r.RenderDiscrepancies(tkkunify.DiscrepancyReport{})

	assert.Contains(t, buf.String(), "No discrepancies")
}

func TestRenderDiscrepancies_Orphans(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, false, false)

	r.RenderDiscrepancies(tkkunify.DiscrepancyReport{
		SvgOrphans: []tkkunify.SvgOrphan{{SvgName: "M143.svg", ID: "g_stray"}},
	})

	out := buf.String()
	assert.Contains(t, out, "Orphaned SVG IDs")
	assert.Contains(t, out, "M143.svg")
	assert.Contains(t, out, "g_stray")
}

func TestRenderAudit(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, false, false)

	r.RenderAudit(services.Summary{RecordCount: 7, SvgCount: 4})

	out := buf.String()
	assert.Contains(t, out, "Audited 7 record(s) against 4 SVG file(s)")
	assert.Contains(t, out, "No discrepancies")
}

func TestNewRenderer_NilOut(t *testing.T) {
	assert.Panics(t, func() { NewRenderer(nil, false, false) })
}
