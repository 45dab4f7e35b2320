// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"strconv"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Special reports whether b is one of the bytes that delimit unquoted text.
func Special(b byte) bool {
	switch b {
	case ',', ':', '\n', '[', ']', '{', '}', '#':
		return true
	}
	return false
}

// IsSpace reports whether b is inline whitespace.
func IsSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\r' }

// IsDelimiter reports whether b may follow a keyword literal.
func IsDelimiter(b byte) bool { return IsSpace(b) || Special(b) }

// IsNumStart reports whether b begins a number token.
func IsNumStart(b byte) bool { return b == '-' || isDigit(b) }

// IsNumByte reports whether b may occur in a number token.
func IsNumByte(b byte) bool { return isDigit(b) || b == '.' || b == '-' || b == 'e' || b == 'E' }

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

var keywords = []string{"null", "true", "false"}

// Keyword returns the keyword literal at the front of src, or "" if there is
// none. A keyword must be followed by the end of src or a delimiter.
func Keyword(src mem.RO) string {
	for _, kw := range keywords {
		if !mem.HasPrefix(src, mem.S(kw)) {
			continue
		}
		if src.Len() == len(kw) || IsDelimiter(src.At(len(kw))) {
			return kw
		}
	}
	return ""
}

// NeedsQuote reports whether s must be quoted to be read back as the same
// string. This is the case when s is empty, spells a keyword, looks like a
// number, contains a special byte, or has leading or trailing whitespace.
func NeedsQuote(s mem.RO) bool {
	n := s.Len()
	if n == 0 {
		return true
	}
	if Keyword(s) != "" {
		return true // includes exact matches of null, true, false
	}
	first, last := s.At(0), s.At(n-1)
	if IsNumStart(first) || first == '"' || IsSpace(first) || IsSpace(last) {
		return true
	}
	numeric := true
	for i := 0; i < n; i++ {
		b := s.At(i)
		if Special(b) {
			return true
		}
		numeric = numeric && (IsNumByte(b) || b == '+')
	}
	if numeric {
		// Text such as ".5" parses as a number even though the decoder does
		// not start a number token there.
		if _, err := strconv.ParseFloat(s.StringCopy(), 64); err == nil {
			return true
		}
	}
	return false
}

// Quote appends the quoted form of src to buf, including the enclosing
// double quotation marks. Backslash, double quote, and bytes below 0x20 are
// escaped; all other bytes are copied unchanged.
func Quote(buf []byte, src mem.RO) []byte {
	buf = append(buf, '"')
	start := 0
	for i := 0; i < src.Len(); i++ {
		b := src.At(i)
		if b >= ' ' && b != '\\' && b != '"' {
			continue
		}
		buf = mem.Append(buf, src.Slice(start, i))
		start = i + 1
		if b == '\\' || b == '"' {
			buf = append(buf, '\\', b)
		} else if e := controlEsc[b]; e != 0 {
			buf = append(buf, '\\', e)
		} else {
			buf = append(buf, '\\', 'u', '0', '0', hexDigit[b>>4], hexDigit[b&15])
		}
	}
	buf = mem.Append(buf, src.SliceFrom(start))
	return append(buf, '"')
}
