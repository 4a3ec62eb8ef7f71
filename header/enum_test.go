package header_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cwinters/go-mailheader/header"
)

type priority int

const (
	normalPriority priority = iota
	highPriority
	lowPriority
)

var priorities = header.NewEnum(map[string]priority{
	"Normal": normalPriority,
	"High":   highPriority,
	"Low":    lowPriority,
})

func TestGetEnum_Matches(t *testing.T) {
	t.Parallel()

	h := header.Parse("X-Priority: High")
	assert.Equal(t, highPriority, header.GetEnum(h, "X-Priority", priorities))

	h = header.Parse("X-Priority: low")
	assert.Equal(t, lowPriority, header.GetEnum(h, "X-Priority", priorities))

	h = header.Parse("X-Priority: NORMAL")
	assert.Equal(t, normalPriority, header.GetEnum(h, "X-Priority", priorities))
}

func TestGetEnum_UnrecognizedYieldsZero(t *testing.T) {
	t.Parallel()

	h := header.Parse("X-Priority: bogus")

	assert.Equal(t, normalPriority, header.GetEnum(h, "X-Priority", priorities))
}

func TestGetEnum_AbsentYieldsZero(t *testing.T) {
	t.Parallel()

	h := header.Parse("Subject: hi")

	assert.Equal(t, normalPriority, header.GetEnum(h, "X-Priority", priorities))
}

func TestGetEnum_StringValued(t *testing.T) {
	t.Parallel()

	dispositions := header.NewEnum(map[string]string{
		"inline":     "inline",
		"attachment": "attachment",
	})

	h := header.Parse("Content-Disposition: Attachment; filename=a.txt")

	// the whole raw body is matched, so parameters defeat the lookup
	assert.Equal(t, "", header.GetEnum(h, "Content-Disposition", dispositions))

	h = header.Parse("Content-Disposition: Attachment")
	assert.Equal(t, "attachment", header.GetEnum(h, "Content-Disposition", dispositions))
}
