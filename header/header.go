// Package header parses raw Internet message header blocks into a queryable
// collection. It unfolds multi-line headers, builds one param.Value per
// header name, and layers domain accessors on top: MIME boundary, message
// date resolution, address lists, and enumerated header values.
//
// Every accessor degrades rather than fails: an absent header reads as an
// empty value, an unparsable date resolves to the zero time, an unparsable
// address is dropped. Mail in the wild violates the nominal grammar
// constantly, and a best-effort structured value beats strict validation.
package header

import (
	"github.com/zostay/go-addr/pkg/addr"

	"github.com/cwinters/go-mailheader/defmap"
	"github.com/cwinters/go-mailheader/param"
)

// These are standard headers defined in RFC 5322 and MIME.
const (
	Bcc         = "Bcc"
	Cc          = "Cc"
	ContentType = "Content-Type"
	Date        = "Date"
	From        = "From"
	MessageID   = "Message-Id"
	Received    = "Received"
	ReplyTo     = "Reply-To"
	Subject     = "Subject"
	To          = "To"
)

// emptyValue is handed out for headers that are not present, so lookups on a
// missing name behave exactly like lookups on an empty field.
var emptyValue = param.Parse("")

// Header is a collection of parsed header fields keyed by case-insensitive
// header name. It is built once by Parse and read-only afterward, so a
// Header may be shared between goroutines without locking.
type Header struct {
	fields *defmap.Map[string, *param.Value]
}

// Get returns the parsed value of the named header. A name that is not
// present in the header returns a value parsed from the empty string, never
// nil and never an error.
func (h *Header) Get(name string) *param.Value {
	return h.fields.GetOr(name, emptyValue)
}

// Raw returns the raw body of the named header, or the empty string.
func (h *Header) Raw(name string) string {
	return h.Get(name).Raw()
}

// Value returns the primary value of the named header, the trimmed text
// before the first semicolon, or the empty string.
func (h *Header) Value(name string) string {
	return h.Get(name).Value()
}

// Has reports whether the named header was present in the parsed input.
func (h *Header) Has(name string) bool {
	return h.fields.Has(name)
}

// Names returns the header names in the order they first appeared.
func (h *Header) Names() []string {
	return h.fields.Keys()
}

// Len returns the number of distinct header names.
func (h *Header) Len() int {
	return h.fields.Len()
}

// GetBoundary returns the boundary parameter of the Content-type header, the
// marker separating the parts of a multipart message. It is empty when the
// header or the parameter is absent.
func (h *Header) GetBoundary() string {
	return h.Get(ContentType).Parameter(param.Boundary)
}

// GetContentType returns the media type from the Content-type header, e.g.
// "text/plain" or "multipart/mixed".
func (h *Header) GetContentType() string {
	return h.Value(ContentType)
}

// GetCharset returns the charset parameter of the Content-type header.
func (h *Header) GetCharset() string {
	return h.Get(ContentType).Parameter(param.Charset)
}

// GetSubject returns the body of the Subject header.
func (h *Header) GetSubject() string {
	return h.Raw(Subject)
}

// GetMessageID returns the Message-id header body with its enclosing angle
// brackets stripped.
func (h *Header) GetMessageID() string {
	return h.Get(MessageID).RawWithoutMarkers()
}

// GetTo returns the addresses listed in the To header.
func (h *Header) GetTo() addr.AddressList {
	return h.GetAddresses(To)
}

// GetFrom returns the addresses listed in the From header.
func (h *Header) GetFrom() addr.AddressList {
	return h.GetAddresses(From)
}

// GetCc returns the addresses listed in the Cc header.
func (h *Header) GetCc() addr.AddressList {
	return h.GetAddresses(Cc)
}

// GetBcc returns the addresses listed in the Bcc header.
func (h *Header) GetBcc() addr.AddressList {
	return h.GetAddresses(Bcc)
}

// GetReplyTo returns the addresses listed in the Reply-to header.
func (h *Header) GetReplyTo() addr.AddressList {
	return h.GetAddresses(ReplyTo)
}
