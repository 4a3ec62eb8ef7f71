package header

import (
	"fmt"
	"net/mail"
	"regexp"
	"time"

	"github.com/araddon/dateparse"
)

// UnixDateWithEarlyYear is a weird one seen in the wild that the usual
// parsers have trouble with.
const UnixDateWithEarlyYear = "Mon Jan 02 15:04:05 2006 MST"

// Timestamp patterns scanned out of Received headers when the Date header
// fails to parse. The RFC 822 style family is tried fully before the ISO
// style family. Compiled once at process start.
var (
	rfc822Stamp = regexp.MustCompile(
		`\d{1,2} (?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec) \d{4} \d{1,2}:\d{2}:\d{2}(?: ?[+-]\d{4}| [A-Z]{1,5})?`)
	isoStamp = regexp.MustCompile(
		`\d{4}-\d{2}-\d{2}[ T]\d{1,2}:\d{2}(?::\d{2})?(?: ?[+-]\d{4}| [A-Z]{1,5})?`)

	receivedStamps = []*regexp.Regexp{rfc822Stamp, isoStamp}
)

// ParseTime provides the time parsing used by GetDate and can be used on any
// field body. It attempts to parse the date using the format specified by
// RFC 5322 first and falls back to parsing it in many other formats.
//
// It either returns a parsed time or the parse error.
func ParseTime(body string) (time.Time, error) {
	t, err := mail.ParseDate(body)
	if err == nil {
		return t, nil
	}

	t, err = dateparse.ParseAny(body)
	if err == nil {
		return t, nil
	}

	t, err = time.Parse(UnixDateWithEarlyYear, body)
	if err == nil {
		return t, nil
	}

	return t, fmt.Errorf("time string %q cannot be parsed", body)
}

// GetDate resolves the message timestamp. It parses the Date header if it
// can. Otherwise it scans the Received header for timestamps, preferring the
// last RFC 822 style stamp in the text, then the last ISO style stamp; the
// last stamp belongs to the most recently prepended hop, conventionally the
// one closest to delivery. When nothing parses, it returns the zero
// time.Time as a sentinel rather than an error.
func (h *Header) GetDate() time.Time {
	if t, err := ParseTime(h.Raw(Date)); err == nil {
		return t
	}

	received := h.Raw(Received)
	for _, re := range receivedStamps {
		ms := re.FindAllString(received, -1)
		if len(ms) == 0 {
			continue
		}
		if t, err := ParseTime(ms[len(ms)-1]); err == nil {
			return t
		}
	}

	return time.Time{}
}
