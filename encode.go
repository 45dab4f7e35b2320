// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package toon

import (
	"bytes"
	"math"
	"strconv"

	"github.com/creachadair/mds/mapset"
	"github.com/creachadair/toon/internal/escape"
	"go4.org/mem"
)

// Encode renders v in canonical TOON notation at indentation level zero.
func Encode(v Value) string { return string(AppendEncode(nil, v, 0)) }

// AppendEncode appends the TOON rendering of v to buf and returns the
// extended buffer. The level is the number of indentation steps (two spaces
// each) of the line on which v begins; it governs the indentation of nested
// object members and tabular rows.
func AppendEncode(buf []byte, v Value, level int) []byte {
	n := v.node()
	switch n.kind {
	case NullKind:
		return append(buf, "null"...)
	case NumberKind:
		return appendNumber(buf, n)
	case BoolKind:
		if n.ival != 0 {
			return append(buf, "true"...)
		}
		return append(buf, "false"...)
	case StringKind:
		return appendString(buf, n.str)
	case ArrayKind:
		return appendArray(buf, n.arr, level)
	case ObjectKind:
		return appendObject(buf, n.obj, level)
	}
	panic("unknown value kind " + n.kind.String())
}

func appendNumber(buf []byte, n *node) []byte {
	if n.isInt {
		return strconv.AppendInt(buf, n.ival, 10)
	}
	if math.IsNaN(n.fval) || math.IsInf(n.fval, 0) {
		return append(buf, "null"...)
	}

	// The shortest representation that parses back to the same float64.
	// The decoder does not accept "+" in an exponent, so drop it.
	pos := len(buf)
	buf = strconv.AppendFloat(buf, n.fval, 'g', -1, 64)
	if i := bytes.IndexByte(buf[pos:], '+'); i >= 0 {
		buf = append(buf[:pos+i], buf[pos+i+1:]...)
	}
	return buf
}

func appendString(buf []byte, s string) []byte {
	if escape.NeedsQuote(mem.S(s)) {
		return escape.Quote(buf, mem.S(s))
	}
	return append(buf, s...)
}

func appendIndent(buf []byte, level int) []byte {
	for range level {
		buf = append(buf, ' ', ' ')
	}
	return buf
}

func appendArray(buf []byte, arr []Value, level int) []byte {
	if len(arr) == 0 {
		return append(buf, "[0]:"...)
	}

	if keys := tabularKeys(arr); keys != nil {
		buf = append(buf, "[{"...)
		for i, key := range keys {
			if i > 0 {
				buf = append(buf, ", "...)
			}
			buf = append(buf, key...)
		}
		buf = append(buf, "}]:"...)
		for _, row := range arr {
			buf = append(buf, '\n')
			buf = appendIndent(buf, level+1)
			for i, key := range keys {
				if i > 0 {
					buf = append(buf, ", "...)
				}
				buf = AppendEncode(buf, row.Get(key), level+1)
			}
		}
		return buf
	}

	buf = append(buf, '[')
	buf = strconv.AppendInt(buf, int64(len(arr)), 10)
	buf = append(buf, "]: "...)
	for i, elt := range arr {
		if i > 0 {
			buf = append(buf, ", "...)
		}
		buf = AppendEncode(buf, elt, level)
	}
	return buf
}

// tabularKeys returns the column keys for rendering arr as a table, or nil if
// arr is not eligible. An array is eligible if all its elements are objects
// having the same non-empty set of keys.
func tabularKeys(arr []Value) []string {
	keys := arr[0].Keys()
	if !arr[0].IsObject() || len(keys) == 0 {
		return nil
	}
	want := mapset.New(keys...)
	for _, elt := range arr[1:] {
		if !elt.IsObject() || elt.Len() != len(keys) {
			return nil
		}
		for _, m := range elt.node().obj {
			if !want.Has(m.Key) {
				return nil
			}
		}
	}
	return keys
}

func appendObject(buf []byte, obj []Member, level int) []byte {
	for i, m := range obj {
		if i > 0 {
			buf = append(buf, '\n')
			buf = appendIndent(buf, level)
		}
		buf = append(buf, m.Key...)
		buf = append(buf, ": "...)
		switch m.Value.Kind() {
		case ObjectKind:
			buf = append(buf, '\n')
			buf = appendIndent(buf, level+1)
			buf = AppendEncode(buf, m.Value, level+1)
		case ArrayKind:
			buf = AppendEncode(buf, m.Value, level+1)
		default:
			buf = AppendEncode(buf, m.Value, level)
		}
	}
	return buf
}
