// Package mailheader parses raw Internet message headers into structured,
// queryable collections. It is the header-handling core of a mail client:
// the surrounding protocol and message-assembly layers hand it the raw
// header block already split from a message body, and it gives back lookups
// for primary values, parameters, addresses, dates, and enumerated values.
//
// The parser is pragmatic rather than grammatical. Mail producers in the
// wild violate RFC 5322 and RFC 2045 routinely, so the implementation favors
// a best-effort structured value over strict validation and never fails a
// parse: missing headers read as empty, bad dates degrade through a fallback
// chain to a zero-time sentinel, and unparsable addresses are dropped from
// their lists.
//
// The header package is the main entry point. The param package parses
// individual parameterized field bodies, and the defmap package provides the
// default-valued map both are built on.
package mailheader
