// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package toon

import (
	"errors"
	"strings"

	"github.com/creachadair/toon/internal/escape"
	"go4.org/mem"
)

// Quote encodes src as a quoted TOON string. The contents are escaped and
// double quotation marks are added, whether or not quoting is required.
func Quote(src string) string { return string(escape.Quote(nil, mem.S(src))) }

// QuoteIfNeeded returns src unchanged if it can be written without quotes and
// read back as the same string, and otherwise returns Quote(src).
func QuoteIfNeeded(src string) string { return string(appendString(nil, src)) }

// Unquote decodes a quoted TOON string. Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents.
// Unquote reports an error if src is not a single complete quoted string.
func Unquote(src string) (string, error) {
	if !strings.HasPrefix(src, `"`) {
		return "", errors.New("missing quotations")
	}
	dec, n, err := escape.Unquote(mem.S(src[1:]))
	if err != nil {
		return "", err
	} else if n != len(src)-1 {
		return "", errors.New("extra text after closing quotation")
	}
	return string(dec), nil
}
