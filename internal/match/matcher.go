// Package match selects the SVG sheets that render a metadata record's
// group.
//
// Two policies exist, selected by the record kind. Standard records
// describe one group on one or more per-group sheets and are matched
// by shared numeric tokens. Reihentabelle (row table) records describe
// overview sheets that aggregate many groups, so per-group token
// intersection is not sufficient; they are matched against row-table
// filenames whose token set covers the record instead.
package match

import (
	"regexp"
	"strings"

	"github.com/lili041/tkkunify/internal/tokens"
	"github.com/lili041/tkkunify/pkg/tkkunify"
)

// textfassungRegex pulls the Textfassung qualifier out of entry IDs
// like "M_143_TF1".
var textfassungRegex = regexp.MustCompile(`TF(\d+)`)

// sketchRegex pulls the sketch qualifier out of entry IDs like
// "Mx_136_Sk1" or "M_212_Sk4_1".
var sketchRegex = regexp.MustCompile(`Sk\d+(?:_\d+)*`)

// Matcher selects candidate SVG documents for a record.
// The zero value is not usable; use New.
type Matcher struct {
	rowTableMarker string
}

// New creates a Matcher using the default Reihentabelle filename marker.
func New() *Matcher {
	return &Matcher{rowTableMarker: tkkunify.ReihentabelleMarker}
}

// NewWithMarker creates a Matcher with a custom row-table filename
// marker. Panics if marker is empty.
func NewWithMarker(marker string) *Matcher {
	if marker == "" {
		panic("marker cannot be empty")
	}
	return &Matcher{rowTableMarker: marker}
}

// Match returns the subset of available SVG filenames that render the
// record's group, preserving the order of the input pool. An empty
// pool or a record with no numeric tokens yields an empty result, not
// an error; the orchestrator turns that into a no-match outcome.
func (m *Matcher) Match(record *tkkunify.GroupRecord, available []string) []string {
	if len(available) == 0 {
		return nil
	}

	labelTokens := tokens.Extract(record.Label)
	if len(labelTokens) == 0 {
		return nil
	}

	catalog := tokens.CatalogNumber(record.Label)
	if record.Kind == tkkunify.KindReihentabelle {
		return m.matchRowTable(catalog, labelTokens, available)
	}
	return m.matchStandard(record.Label, catalog, labelTokens, available)
}

// sameCatalog reports whether a filename belongs to the label's
// Moldenhauer catalog number. Labels without a catalog number (plain
// group labels like "Gruppe 12") accept any filename; token matching
// alone decides those.
func sameCatalog(catalog, name string) bool {
	return catalog == "" || tokens.CatalogNumber(name) == catalog
}

// matchRowTable implements the looser Reihentabelle policy: the
// filename must carry the row-table marker and its token set must be a
// superset-or-equal of the record's tokens, since one row table
// legitimately aggregates many groups.
func (m *Matcher) matchRowTable(catalog string, labelTokens []string, available []string) []string {
	var matched []string
	for _, name := range available {
		if !strings.Contains(name, m.rowTableMarker) || !sameCatalog(catalog, name) {
			continue
		}
		if tokens.Superset(tokens.Extract(name), labelTokens) {
			matched = append(matched, name)
		}
	}
	return matched
}

// matchStandard implements the per-group policy: row-table sheets are
// excluded, the filename must belong to the label's catalog number,
// and it must share at least one identical digit-string token with the
// label. The catalog check runs first: qualifier tokens like the "1"
// in "TF1" recur across every catalog, so "M_143_TF1" would otherwise
// also claim "M144_Textfassung1_..." sheets. Textfassung and sketch
// qualifiers then narrow the candidate set within the catalog.
func (m *Matcher) matchStandard(label, catalog string, labelTokens []string, available []string) []string {
	var candidates []string
	for _, name := range available {
		if strings.Contains(name, m.rowTableMarker) || !sameCatalog(catalog, name) {
			continue
		}
		if tokens.Intersects(tokens.Extract(name), labelTokens) {
			candidates = append(candidates, name)
		}
	}

	if tf := textfassungRegex.FindStringSubmatch(label); tf != nil {
		want := "Textfassung" + tf[1]
		return filter(candidates, func(name string) bool {
			return strings.Contains(name, want)
		})
	}

	if sk := sketchRegex.FindString(label); sk != "" {
		return filter(candidates, func(name string) bool {
			return containsSketch(name, sk)
		})
	}

	return candidates
}

// containsSketch reports whether name contains the sketch identifier
// as a closed token, i.e. not continued by a further "_<n>" segment.
// "Sk1" must not claim "..._Sk1_2_..." sheets.
func containsSketch(name, sk string) bool {
	for i := 0; ; {
		j := strings.Index(name[i:], sk)
		if j < 0 {
			return false
		}
		end := i + j + len(sk)
		if end >= len(name) || name[end] != '_' {
			return true
		}
		i = i + j + 1
	}
}

func filter(names []string, keep func(string) bool) []string {
	var out []string
	for _, name := range names {
		if keep(name) {
			out = append(out, name)
		}
	}
	return out
}
