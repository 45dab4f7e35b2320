// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of TOON strings.
package escape

import (
	"errors"
	"unicode/utf8"

	"go4.org/mem"
)

// Errors reported by Unquote.
var (
	ErrUnfinishedString = errors.New("unfinished string")
	ErrUnfinishedEscape = errors.New("unfinished unicode escape")
	ErrInvalidUnicode   = errors.New("invalid unicode escape")
	ErrInvalidEscape    = errors.New("invalid escape sequence")
)

// Unquote decodes a quoted string from the front of src. The input must have
// the opening double quotation mark already removed. It returns the decoded
// bytes and the number of bytes of src consumed, including the closing
// quotation mark.
//
// In case of error, the returned offset is the position in src where the
// problem was found.
func Unquote(src mem.RO) ([]byte, int, error) {
	var dec []byte
	start := 0
	for i := 0; i < src.Len(); {
		b := src.At(i)
		if b == '"' {
			dec = mem.Append(dec, src.Slice(start, i))
			if dec == nil {
				dec = []byte{}
			}
			return dec, i + 1, nil
		} else if b != '\\' {
			i++
			continue
		}

		dec = mem.Append(dec, src.Slice(start, i))
		i++
		if i == src.Len() {
			return nil, i, ErrUnfinishedString
		}
		switch e := src.At(i); e {
		case '"', '\\', '/':
			dec = append(dec, e)
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			if src.Len()-(i+1) < 4 {
				return nil, src.Len(), ErrUnfinishedEscape
			}
			v, ok := parseHex(src.Slice(i+1, i+5))
			if !ok {
				return nil, i + 1, ErrInvalidUnicode
			}
			dec = utf8.AppendRune(dec, checkRune(v))
			i += 4
		default:
			return nil, i, ErrInvalidEscape
		}
		i++
		start = i
	}
	return nil, src.Len(), ErrUnfinishedString
}

// checkRune replaces code points that must not appear in text with the
// Unicode replacement rune: values outside the Unicode range, surrogates, and
// noncharacters.
func checkRune(cp rune) rune {
	switch {
	case cp > utf8.MaxRune,
		cp >= 0xd800 && cp <= 0xdfff,
		cp >= 0xfdd0 && cp <= 0xfdef,
		cp&0xfffe == 0xfffe:
		return utf8.RuneError
	}
	return cp
}

func parseHex(data mem.RO) (rune, bool) {
	var v rune
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += rune(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += rune(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += rune(b - 'A' + 10)
		} else {
			return 0, false
		}
	}
	return v, true
}
