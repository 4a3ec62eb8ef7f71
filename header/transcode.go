package header

import (
	"fmt"
	"io"
	"mime"
	"strings"

	_ "golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// wordDecoder decodes RFC 2047 encoded words using the IANA index of
// character encodings, which covers pretty much any charset encountered in
// the wild wild world of email.
var wordDecoder = &mime.WordDecoder{
	CharsetReader: charsetReader,
}

// decodeWords transforms the given header text by decoding any MIME word
// encoded values found in it into native unicode. Text without encoded words
// passes through unchanged, as does text whose encoded words fail to decode.
func decodeWords(text string) string {
	if !strings.Contains(text, "=?") {
		return text
	}

	dec, err := wordDecoder.DecodeHeader(text)
	if err != nil {
		return text
	}
	return dec
}

// charsetReader adapts the IANA encoding index to the reader interface used
// by mime.WordDecoder.
func charsetReader(charset string, r io.Reader) (io.Reader, error) {
	e, err := ianaindex.MIME.Encoding(charset)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("no encoding found for charset %q", charset)
	}

	return e.NewDecoder().Reader(r), nil
}
