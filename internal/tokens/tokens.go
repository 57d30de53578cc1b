// Package tokens extracts numeric tokens from labels and filenames.
//
// Matching between metadata records and SVG sheets is driven by the
// digit runs embedded in free-form text ("M_143_TF1", "fig.12 and
// 034"). Tokens stay strings throughout: "034" and "34" are distinct
// identifiers, so no numeric normalization happens at this layer.
package tokens

import "regexp"

// catalogNumberRegex matches the Moldenhauer catalog number in entry
// IDs and filenames, with or without an underscore after the M/Mx
// prefix: "M_143_TF1", "M143_Textfassung1", "Mx_136_Sk1", "Mx789_file".
var catalogNumberRegex = regexp.MustCompile(`Mx?_?(\d+)`)

// Extract collects each maximal run of decimal digits in text as one
// token, left to right. Non-digit characters are separators and are
// otherwise ignored. Empty input yields an empty slice; leading zeros
// are preserved verbatim.
func Extract(text string) []string {
	var toks []string
	start := -1
	for i := 0; i < len(text); i++ {
		if text[i] >= '0' && text[i] <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			toks = append(toks, text[start:i])
			start = -1
		}
	}
	if start >= 0 {
		toks = append(toks, text[start:])
	}
	return toks
}

// CatalogNumber extracts the Moldenhauer catalog number from an entry
// ID or filename. Returns the empty string if no M/Mx pattern is found.
func CatalogNumber(text string) string {
	m := catalogNumberRegex.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

// Set converts a token slice into a membership set.
func Set(toks []string) map[string]struct{} {
	set := make(map[string]struct{}, len(toks))
	for _, t := range toks {
		set[t] = struct{}{}
	}
	return set
}

// Intersects reports whether a and b share at least one identical
// digit-string token.
func Intersects(a, b []string) bool {
	set := Set(a)
	for _, t := range b {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}

// Superset reports whether the token set of a contains every token of
// b. An empty b is contained in anything.
func Superset(a, b []string) bool {
	set := Set(a)
	for _, t := range b {
		if _, ok := set[t]; !ok {
			return false
		}
	}
	return true
}
