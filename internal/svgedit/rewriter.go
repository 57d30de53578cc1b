// Package svgedit performs format-preserving id surgery on SVG markup.
//
// The edition's SVG sheets are semi-structured text: attribute order
// and quote style vary between exports, and the files must round-trip
// byte-identically except for the one attribute value being unified.
// The package therefore never builds a DOM. It scans tags with a small
// attribute tokenizer (see attrs.go), locates elements whose class is
// exactly "tkk", and splices the new id value into the original bytes.
package svgedit

import (
	"strings"

	"github.com/lili041/tkkunify/pkg/tkkunify"
)

// Rewrite replaces the id value with newID on every element whose
// class attribute equals "tkk" and whose id currently equals oldID.
// Everything outside the replaced value bytes is preserved exactly:
// quote character, attribute order, whitespace. Elements with other
// class values are never touched, even when their id equals oldID.
//
// Returns the updated text and the number of rewritten elements.
// Zero occurrences returns the input unchanged; that is not an error
// by itself, the orchestrator and auditor decide what it implies.
// Rewriting with oldID == newID leaves the text byte-identical.
func Rewrite(svgText, oldID, newID string) (string, int) {
	type span struct{ start, end int }
	var spans []span

	for i := 0; ; {
		el, ok := nextElement(svgText, i)
		if !ok {
			break
		}
		i = el.end

		class, ok := el.lookup("class")
		if !ok || class.value != tkkunify.TkkClass {
			continue
		}
		id, ok := el.lookup("id")
		if !ok || id.quote == 0 {
			// class="tkk" without a usable id attribute: skip the
			// element, keep scanning the rest of the document.
			continue
		}
		if id.value != oldID {
			continue
		}
		spans = append(spans, span{id.valStart, id.valEnd})
	}

	if len(spans) == 0 {
		return svgText, 0
	}

	var b strings.Builder
	b.Grow(len(svgText) + len(spans)*(len(newID)-len(oldID)))
	prev := 0
	for _, s := range spans {
		b.WriteString(svgText[prev:s.start])
		b.WriteString(newID)
		prev = s.end
	}
	b.WriteString(svgText[prev:])
	return b.String(), len(spans)
}

// IDs returns the id value of every class="tkk" element in document
// order. Elements without a usable id attribute are skipped.
func IDs(svgText string) []string {
	var ids []string
	for i := 0; ; {
		el, ok := nextElement(svgText, i)
		if !ok {
			break
		}
		i = el.end

		class, ok := el.lookup("class")
		if !ok || class.value != tkkunify.TkkClass {
			continue
		}
		id, ok := el.lookup("id")
		if !ok || id.quote == 0 {
			continue
		}
		ids = append(ids, id.value)
	}
	return ids
}

// ContainsID reports whether any class="tkk" element carries the given
// id value.
func ContainsID(svgText, id string) bool {
	for _, found := range IDs(svgText) {
		if found == id {
			return true
		}
	}
	return false
}
