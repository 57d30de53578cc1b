// Package report renders unification and audit results for the
// console.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lili041/tkkunify/internal/services"
	"github.com/lili041/tkkunify/internal/ui"
	"github.com/lili041/tkkunify/pkg/tkkunify"
)

// Renderer writes human-readable result tables to a single output
// stream. Styling is disabled for non-interactive output.
type Renderer struct {
	out     io.Writer
	styled  bool
	verbose bool
}

// NewRenderer creates a renderer writing to out.
// Panics if out is nil.
func NewRenderer(out io.Writer, styled, verbose bool) *Renderer {
	if out == nil {
		panic("out cannot be nil")
	}
	return &Renderer{out: out, styled: styled, verbose: verbose}
}

// RenderRun renders the full result of a unification run: the
// per-record outcome table, the totals line and any remaining
// discrepancies.
func (r *Renderer) RenderRun(summary services.Summary) {
	r.heading("Unification outcomes")
	r.renderOutcomes(summary.Result.Outcomes)
	r.renderTotals(summary)
	r.RenderDiscrepancies(summary.Report)
}

// RenderDiscrepancies renders the audit findings, or a confirmation
// line when there are none.
func (r *Renderer) RenderDiscrepancies(report tkkunify.DiscrepancyReport) {
	if report.Clean() {
		fmt.Fprintf(r.out, "%s No discrepancies between document and SVG sheets\n",
			r.style(ui.SuccessStyle, ui.SymbolCheck))
		return
	}

	if len(report.JSONStale) > 0 {
		r.heading("Stale document IDs (not found on any tkk element)")
		rows := make([][]string, 0, len(report.JSONStale))
		for _, rec := range report.JSONStale {
			rows = append(rows, []string{rec.EntryID, rec.CurrentID})
		}
		fmt.Fprintln(r.out, renderTable(
			[]string{"Entry", "svgGroupId"},
			rows,
			[]columnAlignment{alignLeft, alignLeft},
		))
	}

	if len(report.SvgOrphans) > 0 {
		r.heading("Orphaned SVG IDs (no document record)")
		rows := make([][]string, 0, len(report.SvgOrphans))
		for _, orphan := range report.SvgOrphans {
			rows = append(rows, []string{orphan.SvgName, orphan.ID})
		}
		fmt.Fprintln(r.out, renderTable(
			[]string{"SVG file", "id"},
			rows,
			[]columnAlignment{alignLeft, alignLeft},
		))
	}
}

// RenderAudit renders the result of a report-only audit.
func (r *Renderer) RenderAudit(summary services.Summary) {
	fmt.Fprintf(r.out, "Audited %d record(s) against %d SVG file(s)\n",
		summary.RecordCount, summary.SvgCount)
	r.RenderDiscrepancies(summary.Report)
}

func (r *Renderer) renderOutcomes(outcomes []tkkunify.Outcome) {
	rows := make([][]string, 0, len(outcomes))
	for _, o := range outcomes {
		if !r.verbose && o.Status == tkkunify.OutcomeSkipped {
			continue
		}
		detail := ""
		if o.Err != nil {
			detail = o.Err.Error()
		}
		rows = append(rows, []string{
			o.Record.EntryID,
			r.statusCell(o.Status),
			strings.Join(o.SvgNames, ", "),
			strconv.Itoa(o.Occurrences),
			detail,
		})
	}
	fmt.Fprintln(r.out, renderTable(
		[]string{"Entry", "Status", "SVG sheets", "IDs", "Detail"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
	))
}

func (r *Renderer) renderTotals(summary services.Summary) {
	result := summary.Result
	fmt.Fprintf(r.out, "%d record(s): %d unified, %d without match, %d failed, %d deferred\n",
		summary.RecordCount,
		result.Count(tkkunify.OutcomeUnified),
		result.Count(tkkunify.OutcomeNoMatch),
		result.Count(tkkunify.OutcomeIOOrFormatError),
		result.Count(tkkunify.OutcomeSkipped))

	if summary.DryRun {
		fmt.Fprintf(r.out, "%s\n", r.style(ui.MutedStyle, "Dry run: no files were written"))
	} else {
		fmt.Fprintf(r.out, "%d file(s) written\n", summary.FilesWritten)
	}
}

func (r *Renderer) statusCell(status tkkunify.OutcomeStatus) string {
	switch status {
	case tkkunify.OutcomeUnified:
		return r.style(ui.SuccessStyle, ui.SymbolCheck+" unified")
	case tkkunify.OutcomeNoMatch:
		return r.style(ui.WarningStyle, "no match")
	case tkkunify.OutcomeIOOrFormatError:
		return r.style(ui.ErrorStyle, ui.SymbolCross+" error")
	case tkkunify.OutcomeSkipped:
		return r.style(ui.MutedStyle, "deferred")
	default:
		return status.String()
	}
}

func (r *Renderer) heading(text string) {
	fmt.Fprintf(r.out, "\n%s\n", r.style(ui.TitleStyle, text))
}

func (r *Renderer) style(style lipgloss.Style, text string) string {
	if !r.styled {
		return text
	}
	return style.Render(text)
}
