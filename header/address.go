package header

import (
	"strings"

	"github.com/zostay/go-addr/pkg/addr"
)

// GetAddresses tokenizes the named header into individual address tokens and
// parses each one. Tokens that cannot be parsed into a mailbox are dropped
// silently, so a partly mangled address list still yields its good entries.
//
// Each token is first given to the strict parser in github.com/zostay/go-addr,
// which is accurate but rejects much of what appears in real address fields.
// Tokens it rejects go through a lenient fallback that pulls apart the
// display name and the angle-bracketed address by hand.
func (h *Header) GetAddresses(name string) addr.AddressList {
	tokens := splitAddressTokens(h.Raw(name))

	as := make(addr.AddressList, 0, len(tokens))
	for _, tok := range tokens {
		if a, err := addr.ParseEmailAddress(tok); err == nil {
			as = append(as, a)
			continue
		}
		if mb := parseMailboxLenient(tok); mb != nil {
			as = append(as, mb)
		}
	}

	return as
}

// splitAddressTokens splits an address field body on top-level commas and
// semicolons. A separator that appears before the opening angle bracket of an
// address is taken to be part of a display name, so a token like
// "Doe, John <john@x.com>" survives the comma and runs through the closing
// bracket.
func splitAddressTokens(s string) []string {
	tokens := make([]string, 0, 4)

	rest := strings.TrimSpace(s)
	for len(rest) > 0 {
		semi := strings.IndexByte(rest, ';')
		comma := strings.IndexByte(rest, ',')

		sep := semi
		if (comma >= 0 && (semi < 0 || comma < semi)) || semi < 0 {
			sep = comma
		}

		bracket := strings.IndexByte(rest, '>')

		var token string
		switch {
		case sep < 0 && bracket < 0:
			token, rest = rest, ""
		case bracket >= 0 && (sep < 0 || bracket < sep || !strings.Contains(rest[:sep], "@")):
			token, rest = rest[:bracket+1], rest[bracket+1:]
		default:
			token, rest = rest[:sep], rest[sep+1:]
		}

		if token = strings.TrimSpace(token); token != "" {
			tokens = append(tokens, token)
		}
		rest = strings.TrimSpace(rest)
	}

	return tokens
}

// parseMailboxLenient stuffs whatever it can salvage from the token into an
// addr.Mailbox. The display name is whatever precedes the angle brackets,
// with surrounding quotes removed. A token with no recognizable address part
// returns nil.
func parseMailboxLenient(token string) *addr.Mailbox {
	var dn, email string

	open := strings.IndexByte(token, '<')
	end := strings.IndexByte(token, '>')
	if open >= 0 && end > open {
		dn = strings.Trim(strings.TrimSpace(token[:open]), `"`)
		email = strings.TrimSpace(token[open+1 : end])
	} else {
		email = token
	}

	at := strings.IndexByte(email, '@')
	if at < 0 {
		return nil
	}

	spec := addr.NewAddrSpecParsed(email[:at], email[at+1:], email)

	mailbox, err := addr.NewMailboxParsed(dn, spec, "", token)
	if err != nil {
		mailbox, err = addr.NewMailboxParsed("", spec, "", token)
	}
	if err != nil {
		return nil
	}

	return mailbox
}
