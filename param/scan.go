package param

import (
	"strings"

	"github.com/cwinters/go-mailheader/defmap"
)

// scanParams splits a parameter list of the form
//
//	name1=value1; name2="value 2"; name3='value 3'
//
// into the given map. This is a naive scan, not an RFC 2045 grammar: quoted
// values run to the next matching quote with no escape handling, unquoted
// values run to the next space, comma, or semicolon, and a duplicate name
// overwrites the earlier value. Stray separators around a name are trimmed,
// so a list with doubled semicolons still yields entries.
//
// The scan consumes at least one character per iteration even when a quoted
// value is unterminated, so it always terminates.
func scanParams(s string, into *defmap.Map[string, string]) {
	for len(s) > 0 {
		eq := strings.IndexByte(s, '=')
		if eq < 0 {
			eq = len(s)
		}

		name := strings.TrimSpace(s[:eq])
		name = strings.Trim(name, ";,")
		name = strings.TrimSpace(name)

		if eq >= len(s) {
			// a bare name with no value ends the scan
			into.Set(name, "")
			return
		}

		rest := strings.TrimSpace(s[eq+1:])

		var value string
		var used int
		switch {
		case strings.HasPrefix(rest, `"`):
			value, used = scanQuoted(rest, '"')
		case strings.HasPrefix(rest, `'`):
			value, used = scanQuoted(rest, '\'')
		default:
			if end := strings.IndexAny(rest, " ,;"); end >= 0 {
				value, used = rest[:end], end+1
			} else {
				value, used = rest, len(rest)
			}
		}

		into.Set(name, value)
		s = strings.TrimSpace(rest[used:])
	}
}

// scanQuoted reads a value delimited by q from the start of rest, returning
// the value and the number of bytes consumed including both quotes. A missing
// closing quote consumes the remainder of rest.
func scanQuoted(rest string, q byte) (string, int) {
	if end := strings.IndexByte(rest[1:], q); end >= 0 {
		return rest[1 : 1+end], end + 2
	}
	return rest[1:], len(rest)
}
