package defmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cwinters/go-mailheader/defmap"
)

func TestMap_GetDefaults(t *testing.T) {
	t.Parallel()

	m := defmap.NewFolded[string]()

	assert.Equal(t, "", m.Get("missing"))
	assert.Equal(t, "fallback", m.GetOr("missing", "fallback"))
	assert.False(t, m.Has("missing"))

	m.Set("Content-Type", "text/plain")
	assert.Equal(t, "text/plain", m.Get("Content-Type"))
	assert.Equal(t, "text/plain", m.GetOr("Content-Type", "fallback"))
	assert.True(t, m.Has("Content-Type"))
}

func TestMap_CaseInsensitiveKeys(t *testing.T) {
	t.Parallel()

	m := defmap.NewFolded[string]()
	m.Set("CHARSET", "utf-8")

	assert.Equal(t, "utf-8", m.Get("charset"))
	assert.Equal(t, "utf-8", m.Get("Charset"))

	m.Set("charset", "latin1")
	assert.Equal(t, "latin1", m.Get("CharSet"))
	assert.Equal(t, 1, m.Len())
}

func TestMap_InsertionOrder(t *testing.T) {
	t.Parallel()

	m := defmap.NewFolded[int]()
	m.Set("One", 1)
	m.Set("Two", 2)
	m.Set("Three", 3)
	m.Set("one", 100)

	assert.Equal(t, []string{"one", "two", "three"}, m.Keys())
	assert.Equal(t, 100, m.Get("One"))
}

func TestMap_NoNormalizer(t *testing.T) {
	t.Parallel()

	m := defmap.New[int, string](nil)
	m.Set(42, "answer")

	assert.Equal(t, "answer", m.Get(42))
	assert.Equal(t, "", m.Get(13))
	assert.Equal(t, []int{42}, m.Keys())
}
