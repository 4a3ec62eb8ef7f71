// Package param parses parameterized header field bodies, such as are used in
// the Content-type and Content-disposition headers. A body is split into a
// primary value (the text before the first semicolon) and named parameters
// (the name=value pairs after it).
//
// Parsing is deliberately permissive: any input, including the empty string,
// produces a usable Value. Parameter names are case-insensitive.
package param

import (
	"strings"

	"github.com/cwinters/go-mailheader/defmap"
)

// Names of parameters commonly found on the Content-type and
// Content-disposition headers.
const (
	Charset  = "charset"
	Boundary = "boundary"
	Filename = "filename"
)

// Value represents a parsed parameterized header field body. A Value object
// is immutable: it is constructed once by Parse and never modified afterward.
//
// The empty parameter name is reserved as an alias for the primary value, so
// v.Parameter("") and v.Value() always agree. This gives callers a uniform
// parameter-style lookup for every part of the field.
type Value struct {
	raw string
	ps  *defmap.Map[string, string]
}

// Parse takes a header field body and parses it as a Value. It never fails:
// malformed input degrades to a Value whose primary value is the trimmed
// input and whose parameter set may be incomplete.
//
// The primary value is the trimmed text before the first semicolon. Text from
// that semicolon onward is scanned for name=value parameters. When there is
// no semicolon, or the body starts with one, the whole trimmed body is the
// primary value and no parameters are scanned.
func Parse(raw string) *Value {
	ps := defmap.NewFolded[string]()
	ps.Set("", strings.TrimSpace(raw))

	if semi := strings.IndexByte(raw, ';'); semi > 0 {
		ps.Set("", strings.TrimSpace(raw[:semi]))
		scanParams(strings.TrimSpace(raw[semi:]), ps)
		// scanning may have clobbered the alias with a bare ";=..." pair
		ps.Set("", strings.TrimSpace(raw[:semi]))
	}

	return &Value{raw: raw, ps: ps}
}

// Value returns the primary value, the trimmed text before the first
// semicolon. It is empty when the field body was empty or whitespace.
func (v *Value) Value() string {
	return v.ps.Get("")
}

// Raw returns the field body as it was given to Parse, or the empty string
// if the body was nothing but whitespace.
func (v *Value) Raw() string {
	if strings.TrimSpace(v.raw) == "" {
		return ""
	}
	return v.raw
}

// RawWithoutMarkers returns Raw with a single pair of enclosing angle
// brackets removed, normalizing values like a Message-id. If the raw body is
// not entirely enclosed in brackets, it is returned unchanged.
func (v *Value) RawWithoutMarkers() string {
	raw := v.Raw()
	if len(raw) >= 2 && raw[0] == '<' && raw[len(raw)-1] == '>' {
		return raw[1 : len(raw)-1]
	}
	return raw
}

// Parameter returns the value of the named parameter, or the empty string if
// the parameter is not set. Names are case-insensitive. The empty name
// returns the primary value.
func (v *Value) Parameter(name string) string {
	return v.ps.Get(name)
}

// Parameters returns the parameter map, including the empty-name alias for
// the primary value. Do not modify the returned map.
func (v *Value) Parameters() *defmap.Map[string, string] {
	return v.ps
}

// String returns the primary value followed by the parameters in the order
// they appeared, or just the primary value when there are none.
func (v *Value) String() string {
	parts := make([]string, 0, v.ps.Len())
	for _, k := range v.ps.Keys() {
		if k == "" {
			continue
		}
		parts = append(parts, k+"="+v.ps.Get(k))
	}

	if len(parts) == 0 {
		return v.Value()
	}
	return v.Value() + "; " + strings.Join(parts, ", ")
}
