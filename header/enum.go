package header

import (
	"strings"

	"github.com/cwinters/go-mailheader/defmap"
)

// NewEnum builds a registration table for GetEnum from each member's
// canonical name. Lookups against the table are case-insensitive. Build the
// table once per enum type and reuse it across headers.
func NewEnum[T any](members map[string]T) *defmap.Map[string, T] {
	table := defmap.NewFolded[T]()
	for name, v := range members {
		table.Set(name, v)
	}
	return table
}

// GetEnum resolves the raw text of the named header against a table of enum
// members. An absent header, or text matching no member, yields the zero
// value of T rather than an error, so an unrecognized value on the wire
// degrades to the type's default.
func GetEnum[T any](h *Header, name string, members *defmap.Map[string, T]) T {
	raw := strings.TrimSpace(h.Raw(name))
	if raw == "" {
		var zero T
		return zero
	}
	return members.Get(raw)
}
