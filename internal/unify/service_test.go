package unify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lili041/tkkunify/internal/logging"
	"github.com/lili041/tkkunify/internal/match"
	"github.com/lili041/tkkunify/pkg/tkkunify"
)

func newTestService() *Service {
	return NewService(match.New(), logging.NewNullLogger())
}

func docPool(docs ...*tkkunify.SvgDocument) (map[string]*tkkunify.SvgDocument, []string) {
	byName := make(map[string]*tkkunify.SvgDocument, len(docs))
	names := make([]string, 0, len(docs))
	for _, d := range docs {
		byName[d.Name] = d
		names = append(names, d.Name)
	}
	return byName, names
}

func TestNewService_NilArgs(t *testing.T) {
	assert.Panics(t, func() { NewService(nil, logging.NewNullLogger()) })
	assert.Panics(t, func() { NewService(match.New(), nil) })
}

func TestRun_EndToEnd(t *testing.T) {
	record := &tkkunify.GroupRecord{
		EntryID:     "Gruppe 7",
		Label:       "Gruppe 7",
		CurrentID:   "g_old",
		CanonicalID: "g_7",
		Kind:        tkkunify.KindStandard,
	}
	doc := &tkkunify.SvgDocument{
		Name:    "gruppe_7.svg",
		Content: `<text class="tkk" id="g_old">7</text>`,
	}
	docs, names := docPool(doc)

	result := newTestService().Run([]*tkkunify.GroupRecord{record}, docs, names)

	require.Len(t, result.Outcomes, 1)
	outcome := result.Outcomes[0]
	assert.Equal(t, tkkunify.OutcomeUnified, outcome.Status)
	assert.Equal(t, 1, outcome.Occurrences)
	assert.Equal(t, []string{"gruppe_7.svg"}, outcome.SvgNames)
	assert.Equal(t, "g_7", record.CurrentID)
	assert.Equal(t, `<text class="tkk" id="g_7">7</text>`, doc.Content)
	assert.NotEqual(t, "", result.RunID.String())
}

func TestRun_DeferredRecordSkipped(t *testing.T) {
	record := &tkkunify.GroupRecord{
		EntryID:   "M_143_TF1",
		Label:     "M_143_TF1",
		CurrentID: "TODO",
		Deferred:  true,
	}
	doc := &tkkunify.SvgDocument{Name: "M143_Textfassung1.svg", Content: `<g class="tkk" id="TODO"/>`}
	docs, names := docPool(doc)

	result := newTestService().Run([]*tkkunify.GroupRecord{record}, docs, names)

	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, tkkunify.OutcomeSkipped, result.Outcomes[0].Status)
	// Nothing touched.
	assert.Equal(t, "TODO", record.CurrentID)
	assert.Equal(t, `<g class="tkk" id="TODO"/>`, doc.Content)
}

func TestRun_NoMatch(t *testing.T) {
	record := &tkkunify.GroupRecord{
		EntryID:     "M_999",
		Label:       "M_999",
		CurrentID:   "g_old",
		CanonicalID: "g-tkk-1",
	}
	doc := &tkkunify.SvgDocument{Name: "M143_Textfassung1.svg", Content: `<g class="tkk" id="g_old"/>`}
	docs, names := docPool(doc)

	result := newTestService().Run([]*tkkunify.GroupRecord{record}, docs, names)

	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, tkkunify.OutcomeNoMatch, result.Outcomes[0].Status)
	assert.Equal(t, "g_old", record.CurrentID)
}

func TestRun_MissingDocumentDoesNotAbortRun(t *testing.T) {
	broken := &tkkunify.GroupRecord{
		EntryID:     "M_143_TF1",
		Label:       "M_143_TF1",
		CurrentID:   "a",
		CanonicalID: "g-tkk-1",
	}
	fine := &tkkunify.GroupRecord{
		EntryID:     "M_144_TF1",
		Label:       "M_144_TF1",
		CurrentID:   "b",
		CanonicalID: "g-tkk-1",
	}
	doc := &tkkunify.SvgDocument{Name: "M144_Textfassung1.svg", Content: `<g class="tkk" id="b"/>`}
	docs, _ := docPool(doc)
	// The pool advertises a document that was never loaded.
	names := []string{"M143_Textfassung1.svg", "M144_Textfassung1.svg"}

	result := newTestService().Run([]*tkkunify.GroupRecord{broken, fine}, docs, names)

	require.Len(t, result.Outcomes, 2)
	assert.Equal(t, tkkunify.OutcomeIOOrFormatError, result.Outcomes[0].Status)
	assert.Error(t, result.Outcomes[0].Err)
	assert.Equal(t, tkkunify.OutcomeUnified, result.Outcomes[1].Status)
	assert.Equal(t, "g-tkk-1", fine.CurrentID)
}

func TestRun_ElementAbsentIsFormatError(t *testing.T) {
	record := &tkkunify.GroupRecord{
		EntryID:     "M_143_TF1",
		Label:       "M_143_TF1",
		CurrentID:   "not_in_svg",
		CanonicalID: "g-tkk-1",
	}
	doc := &tkkunify.SvgDocument{Name: "M143_Textfassung1.svg", Content: `<g class="tkk" id="other"/>`}
	docs, names := docPool(doc)

	result := newTestService().Run([]*tkkunify.GroupRecord{record}, docs, names)

	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, tkkunify.OutcomeIOOrFormatError, result.Outcomes[0].Status)
	assert.Equal(t, "not_in_svg", record.CurrentID)
	assert.Equal(t, `<g class="tkk" id="other"/>`, doc.Content)
}

func TestRun_GroupSpanningSeveralPages(t *testing.T) {
	record := &tkkunify.GroupRecord{
		EntryID:     "M_143_TF1",
		Label:       "M_143_TF1",
		CurrentID:   "g_old",
		CanonicalID: "g-tkk-1",
	}
	page1 := &tkkunify.SvgDocument{Name: "M143_Textfassung1_Seite1.svg", Content: `<g class="tkk" id="g_old"/>`}
	page2 := &tkkunify.SvgDocument{Name: "M143_Textfassung1_Seite2.svg", Content: `<g class="tkk" id="g_old"/>`}
	docs, names := docPool(page1, page2)

	result := newTestService().Run([]*tkkunify.GroupRecord{record}, docs, names)

	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, tkkunify.OutcomeUnified, result.Outcomes[0].Status)
	assert.Equal(t, 2, result.Outcomes[0].Occurrences)
	assert.Equal(t, `<g class="tkk" id="g-tkk-1"/>`, page1.Content)
	assert.Equal(t, `<g class="tkk" id="g-tkk-1"/>`, page2.Content)
}

func TestRun_MissingCanonicalID(t *testing.T) {
	record := &tkkunify.GroupRecord{
		EntryID:   "M_143_TF1",
		Label:     "M_143_TF1",
		CurrentID: "g_old",
	}
	doc := &tkkunify.SvgDocument{Name: "M143_Textfassung1.svg", Content: `<g class="tkk" id="g_old"/>`}
	docs, names := docPool(doc)

	result := newTestService().Run([]*tkkunify.GroupRecord{record}, docs, names)

	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, tkkunify.OutcomeIOOrFormatError, result.Outcomes[0].Status)
}

func TestResult_Count(t *testing.T) {
	r := Result{Outcomes: []tkkunify.Outcome{
		{Status: tkkunify.OutcomeUnified},
		{Status: tkkunify.OutcomeUnified},
		{Status: tkkunify.OutcomeNoMatch},
	}}
	assert.Equal(t, 2, r.Count(tkkunify.OutcomeUnified))
	assert.Equal(t, 1, r.Count(tkkunify.OutcomeNoMatch))
	assert.Equal(t, 0, r.Count(tkkunify.OutcomeSkipped))
}
