package svgedit

import "strings"

// attr is one parsed attribute inside an element tag. The value span
// holds absolute byte offsets into the scanned document so a rewrite
// is "replace the bytes at the span" rather than reconstructing the
// tag, which keeps everything else byte-identical.
type attr struct {
	name     string
	quote    byte // '\'' or '"', 0 for unquoted values
	value    string
	valStart int // offset of the first value byte
	valEnd   int // offset one past the last value byte
}

// element is one scanned start tag with its attribute list.
type element struct {
	start int // offset of '<'
	end   int // offset one past '>'
	attrs []attr
}

// nextElement scans for the next start tag at or after from. Closing
// tags, comments, CDATA sections, processing instructions and doctype
// declarations are skipped; SVG files routinely carry all of them.
// Returns ok=false when no further start tag exists.
func nextElement(text string, from int) (element, bool) {
	for i := from; i < len(text); {
		j := strings.IndexByte(text[i:], '<')
		if j < 0 {
			break
		}
		i += j

		switch {
		case strings.HasPrefix(text[i:], "<!--"):
			end := strings.Index(text[i+4:], "-->")
			if end < 0 {
				return element{}, false
			}
			i += 4 + end + 3
		case strings.HasPrefix(text[i:], "<![CDATA["):
			end := strings.Index(text[i+9:], "]]>")
			if end < 0 {
				return element{}, false
			}
			i += 9 + end + 3
		case strings.HasPrefix(text[i:], "</"), strings.HasPrefix(text[i:], "<?"), strings.HasPrefix(text[i:], "<!"):
			end := strings.IndexByte(text[i:], '>')
			if end < 0 {
				return element{}, false
			}
			i += end + 1
		default:
			if el, ok := parseStartTag(text, i); ok {
				return el, true
			}
			// Stray '<' that does not open a tag; move past it.
			i++
		}
	}
	return element{}, false
}

// parseStartTag parses the tag opening at offset start ('<'). It
// tolerates any attribute order, both quote characters and arbitrary
// whitespace, and stops at the closing '>' (quotes shield embedded
// '>' characters).
func parseStartTag(text string, start int) (element, bool) {
	i := start + 1

	// Element name.
	if i >= len(text) || !isNameStart(text[i]) {
		return element{}, false
	}
	for i < len(text) && isNameByte(text[i]) {
		i++
	}

	el := element{start: start}
	for i < len(text) {
		for i < len(text) && isSpace(text[i]) {
			i++
		}
		if i >= len(text) {
			return element{}, false
		}
		if text[i] == '>' {
			el.end = i + 1
			return el, true
		}
		if text[i] == '/' {
			i++
			continue
		}
		if !isNameStart(text[i]) {
			// Malformed byte inside the tag; give up on this tag and
			// let the caller continue after it.
			i++
			continue
		}

		nameStart := i
		for i < len(text) && isNameByte(text[i]) {
			i++
		}
		a := attr{name: text[nameStart:i]}

		for i < len(text) && isSpace(text[i]) {
			i++
		}
		if i >= len(text) || text[i] != '=' {
			// Boolean attribute, no value.
			el.attrs = append(el.attrs, a)
			continue
		}
		i++
		for i < len(text) && isSpace(text[i]) {
			i++
		}
		if i >= len(text) {
			return element{}, false
		}

		if text[i] == '\'' || text[i] == '"' {
			a.quote = text[i]
			i++
			a.valStart = i
			end := strings.IndexByte(text[i:], a.quote)
			if end < 0 {
				return element{}, false
			}
			i += end
			a.valEnd = i
			a.value = text[a.valStart:a.valEnd]
			i++
		} else {
			a.valStart = i
			for i < len(text) && !isSpace(text[i]) && text[i] != '>' {
				i++
			}
			a.valEnd = i
			a.value = text[a.valStart:a.valEnd]
		}
		el.attrs = append(el.attrs, a)
	}
	return element{}, false
}

// lookup returns the first attribute with the given name, or false.
func (e element) lookup(name string) (attr, bool) {
	for _, a := range e.attrs {
		if a.name == name {
			return a, true
		}
	}
	return attr{}, false
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isNameStart(b byte) bool {
	return b == '_' || b == ':' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isNameByte(b byte) bool {
	return isNameStart(b) || b == '-' || b == '.' || (b >= '0' && b <= '9')
}
