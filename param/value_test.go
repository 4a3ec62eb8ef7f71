package param_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cwinters/go-mailheader/param"
)

func TestParse_ContentType(t *testing.T) {
	t.Parallel()

	v := param.Parse(`text/plain; charset="UTF-8"; boundary=XYZ`)

	assert.Equal(t, "text/plain", v.Value())
	assert.Equal(t, "UTF-8", v.Parameter("charset"))
	assert.Equal(t, "XYZ", v.Parameter("boundary"))
}

func TestParse_PrimaryOnly(t *testing.T) {
	t.Parallel()

	v := param.Parse("  multipart/mixed  ")

	assert.Equal(t, "multipart/mixed", v.Value())
	assert.Equal(t, "  multipart/mixed  ", v.Raw())
	assert.Equal(t, 1, v.Parameters().Len())
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "   ", "\t"} {
		v := param.Parse(raw)
		assert.Equal(t, "", v.Value())
		assert.Equal(t, "", v.Raw())
	}
}

func TestParse_LeadingSemicolon(t *testing.T) {
	t.Parallel()

	// a body starting with a semicolon has no real primary value, so the
	// whole body stands as-is and no parameters are scanned
	v := param.Parse(";foo=bar")

	assert.Equal(t, ";foo=bar", v.Value())
	assert.Equal(t, "", v.Parameter("foo"))
}

func TestParse_PrimaryAlias(t *testing.T) {
	t.Parallel()

	bodies := []string{
		"text/html; charset=utf-8",
		"inline",
		"",
		"; stray=param",
		"attachment; ;; filename=a.txt",
	}
	for _, raw := range bodies {
		v := param.Parse(raw)
		assert.Equal(t, v.Value(), v.Parameter(""), "raw=%q", raw)
	}
}

func TestValue_ParameterCaseInsensitive(t *testing.T) {
	t.Parallel()

	v := param.Parse("text/plain; CharSet=utf-8")

	assert.Equal(t, "utf-8", v.Parameter("charset"))
	assert.Equal(t, "utf-8", v.Parameter("CHARSET"))
	assert.Equal(t, "", v.Parameter("boundary"))
}

func TestValue_RawWithoutMarkers(t *testing.T) {
	t.Parallel()

	v := param.Parse("<abc123@example.com>")
	assert.Equal(t, "abc123@example.com", v.RawWithoutMarkers())

	v = param.Parse("abc123@example.com")
	assert.Equal(t, "abc123@example.com", v.RawWithoutMarkers())

	v = param.Parse("<unterminated")
	assert.Equal(t, "<unterminated", v.RawWithoutMarkers())
}

func TestValue_String(t *testing.T) {
	t.Parallel()

	v := param.Parse(`text/plain; charset="UTF-8"; boundary=XYZ`)
	assert.Equal(t, "text/plain; charset=UTF-8, boundary=XYZ", v.String())

	v = param.Parse("text/plain")
	assert.Equal(t, "text/plain", v.String())
}
