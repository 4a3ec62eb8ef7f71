package header

import (
	"strings"

	"github.com/cwinters/go-mailheader/defmap"
	"github.com/cwinters/go-mailheader/param"
)

// Parse parses a raw header block into a Header. It never fails: malformed
// lines degrade rather than abort the parse.
//
// Encoded words anywhere in the block are decoded first, then the block is
// split on line breaks. A line starting with a space or tab continues the
// header begun on an earlier line and is joined to it with a single space.
// Any other line starts a new header at its first colon; a line with no colon
// is dropped. A repeated header name replaces the earlier value, so only the
// last occurrence of a name survives.
func Parse(headers string) *Header {
	raw := defmap.NewFolded[string]()

	currentKey := ""
	for _, line := range strings.FieldsFunc(decodeWords(headers), isLineBreak) {
		if line[0] == ' ' || line[0] == '\t' {
			// folded continuation of the previous header
			cont := strings.TrimSpace(line)
			if currentKey == "" || cont == "" {
				continue
			}
			if prev := raw.Get(currentKey); prev != "" {
				cont = prev + " " + cont
			}
			raw.Set(currentKey, cont)
			continue
		}

		colon := strings.IndexByte(line, ':')
		if colon < 0 {
			continue
		}

		currentKey = strings.TrimSpace(line[:colon])
		raw.Set(currentKey, strings.TrimSpace(line[colon+1:]))
	}

	fields := defmap.NewFolded[*param.Value]()
	for _, name := range raw.Keys() {
		fields.Set(name, param.Parse(raw.Get(name)))
	}

	return &Header{fields: fields}
}

func isLineBreak(r rune) bool {
	return r == '\r' || r == '\n'
}
