// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package toon

import (
	"fmt"

	"go4.org/mem"
)

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// lineColAt computes the line and column of the byte at offset pos in src.
// Offsets past the end of src are clamped to the end.
func lineColAt(src mem.RO, pos int) LineCol {
	if pos > src.Len() {
		pos = src.Len()
	}
	lc := LineCol{Line: 1}
	for i := 0; i < pos; i++ {
		if src.At(i) == '\n' {
			lc.Line++
			lc.Column = 0
		} else {
			lc.Column++
		}
	}
	return lc
}
