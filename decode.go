// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package toon

import (
	"math"
	"strconv"
	"strings"

	"github.com/creachadair/toon/internal/escape"
	"go4.org/mem"
)

// A Decoder carries the settings for decoding TOON text.
// A zero value is ready for use with default settings.
type Decoder struct {
	// PadMissingColumns controls the handling of a tabular row that ends
	// before all columns of the header are filled. By default the partial row
	// is discarded and the array ends there. If true, the missing cells are
	// filled with null and the row is kept.
	PadMissingColumns bool

	// StrictNumbers controls the handling of number tokens that do not parse
	// completely, such as "1-2" or "3e". By default the longest prefix that
	// parses gives the value (0 if none does). If true, the decoder reports
	// ErrInvalidNumber.
	StrictNumbers bool
}

// Decode decodes a single value from text with default settings.
func Decode(text string) (Value, error) { return Decoder{}.Decode(text) }

// DecodeBytes decodes a single value from data with default settings.
func DecodeBytes(data []byte) (Value, error) { return Decoder{}.DecodeBytes(data) }

// Decode decodes a single value from text using the settings from d.
// In case of error, the value is null and the error has concrete type
// [*SyntaxError].
func (d Decoder) Decode(text string) (Value, error) { return d.decode(mem.S(text)) }

// DecodeBytes decodes a single value from data using the settings from d.
// The decoder does not retain data.
func (d Decoder) DecodeBytes(data []byte) (Value, error) { return d.decode(mem.B(data)) }

func (d Decoder) decode(src mem.RO) (Value, error) {
	p := &parser{src: src, opts: d}
	v := p.parseDocument()
	if p.err != nil {
		return Null(), p.err
	}
	return v, nil
}

// rootIndent is the indentation threshold of the outermost structure, which
// accepts lines at any indentation.
const rootIndent = -1

// parser is the state of a single decoding. Nesting is tracked by passing
// down the indentation of the line that owns each object or array, rather
// than by an explicit stack.
type parser struct {
	src  mem.RO
	pos  int
	opts Decoder
	err  error // the first failure, if any
}

// fail records err as the failure of the parse, unless one was already
// recorded, and returns null.
func (p *parser) fail(err error) Value {
	if p.err == nil {
		p.err = &SyntaxError{Offset: p.pos, Location: lineColAt(p.src, p.pos), Err: err}
	}
	return Null()
}

func (p *parser) failed() bool { return p.err != nil }

func (p *parser) atEOF() bool { return p.pos >= p.src.Len() }

// peek returns the current byte, or 0 at the end of input.
func (p *parser) peek() byte {
	if p.atEOF() {
		return 0
	}
	return p.src.At(p.pos)
}

// skipSpace skips inline whitespace.
func (p *parser) skipSpace() {
	for !p.atEOF() && escape.IsSpace(p.src.At(p.pos)) {
		p.pos++
	}
}

// skipNoise skips whitespace, newlines, and comments.
func (p *parser) skipNoise() {
	for {
		p.skipSpace()
		switch p.peek() {
		case '#':
			if i := mem.IndexByte(p.src.SliceFrom(p.pos), '\n'); i >= 0 {
				p.pos += i
			} else {
				p.pos = p.src.Len()
			}
		case '\n':
			p.pos++
		default:
			return
		}
	}
}

// lineIndent reports the indentation of the line containing the current
// position. A tab counts as 8 columns.
func (p *parser) lineIndent() int {
	i := p.pos
	for i > 0 && p.src.At(i-1) != '\n' {
		i--
	}
	var n int
	for ; i < p.src.Len(); i++ {
		switch p.src.At(i) {
		case ' ':
			n++
		case '\t':
			n += 8
		default:
			return n
		}
	}
	return n
}

// hasColon reports whether a colon occurs outside quoted strings and
// comments between the current position and the end of the input, or the
// end of the current line if lineOnly is true.
func (p *parser) hasColon(lineOnly bool) bool {
	var inQuote bool
	for i := p.pos; i < p.src.Len(); i++ {
		b := p.src.At(i)
		switch {
		case inQuote && b == '\\':
			i++
		case b == '"':
			inQuote = !inQuote
		case inQuote:
			// skip
		case b == ':':
			return true
		case b == '#', b == '\n':
			if lineOnly {
				return false
			} else if b == '#' {
				for i < p.src.Len() && p.src.At(i) != '\n' {
					i++
				}
			}
		}
	}
	return false
}

func (p *parser) parseDocument() Value {
	p.skipNoise()
	if p.atEOF() {
		return Null()
	}
	if p.peek() == '[' {
		return p.parseArray(rootIndent)
	} else if p.hasColon(false) {
		return p.parseObject(rootIndent)
	}
	return p.parseValue()
}

// parseValue parses a single value at the current position.
func (p *parser) parseValue() Value {
	p.skipSpace()
	if p.atEOF() {
		return p.fail(ErrUnexpectedEOF)
	}
	switch ch := p.peek(); {
	case ch == '"':
		return p.parseQuoted()
	case ch == '[':
		return p.parseArray(p.lineIndent())
	}
	switch escape.Keyword(p.src.SliceFrom(p.pos)) {
	case "null":
		p.pos += 4
		return Null()
	case "true":
		p.pos += 4
		return True()
	case "false":
		p.pos += 5
		return False()
	}
	if escape.IsNumStart(p.peek()) {
		return p.parseNumber()
	}
	return p.parseUnquoted()
}

func (p *parser) parseQuoted() Value {
	p.pos++ // skip "
	dec, n, err := escape.Unquote(p.src.SliceFrom(p.pos))
	p.pos += n
	if err != nil {
		return p.fail(err)
	}
	return String(string(dec))
}

func (p *parser) parseUnquoted() Value {
	start := p.pos
	for !p.atEOF() && !escape.Special(p.src.At(p.pos)) {
		p.pos++
	}
	end := p.pos
	for end > start && escape.IsSpace(p.src.At(end-1)) {
		end--
	}
	return String(p.src.Slice(start, end).StringCopy())
}

func (p *parser) parseNumber() Value {
	start := p.pos
	for !p.atEOF() && escape.IsNumByte(p.src.At(p.pos)) {
		p.pos++
	}
	text := p.src.Slice(start, p.pos).StringCopy()
	if isIntText(text) {
		if z, err := strconv.ParseInt(text, 10, 64); err == nil {
			return Int(z)
		}
	}
	f, err := strconv.ParseFloat(text, 64)
	if err == nil || isRangeError(err) {
		return Float(f) // out-of-range values are ±Inf or 0, as with strtod
	} else if p.opts.StrictNumbers {
		p.pos = start
		return p.fail(ErrInvalidNumber)
	}
	return Float(prefixFloat(text))
}

func isIntText(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isRangeError(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}

// prefixFloat returns the value of the longest prefix of s that parses as a
// floating-point number, or 0 if there is none.
func prefixFloat(s string) float64 {
	for n := len(s) - 1; n > 0; n-- {
		f, err := strconv.ParseFloat(s[:n], 64)
		if err == nil || isRangeError(err) {
			return f
		}
	}
	return 0
}

// parseObject parses the members of an object. The object ends at the first
// line, after at least one member, whose indentation is not greater than
// parent. That line is not consumed.
func (p *parser) parseObject(parent int) Value {
	var ms []Member
	for !p.atEOF() {
		p.skipNoise()
		if p.atEOF() {
			break
		}
		save := p.pos
		cur := p.lineIndent()
		if len(ms) != 0 && cur <= parent {
			p.pos = save
			break
		}

		i := mem.IndexByte(p.src.SliceFrom(p.pos), ':')
		if i < 0 {
			p.pos = p.src.Len()
			break
		}
		key := p.src.Slice(p.pos, p.pos+i).StringCopy()
		p.pos += i + 1
		p.skipSpace()

		var v Value
		if p.peek() == '\n' {
			p.pos++
			p.skipNoise()
			v = p.parseBlock(cur)
		} else {
			v = p.parseValue()
		}
		if p.failed() {
			return Null()
		}
		ms = append(ms, Member{Key: key, Value: v})
	}
	return Object(ms...)
}

// parseBlock parses a value written on the lines following its key, where
// the key is on a line with the given indentation.
func (p *parser) parseBlock(keyIndent int) Value {
	if p.atEOF() || p.lineIndent() <= keyIndent {
		return Object() // nothing is nested under the key
	}
	if p.peek() == '[' {
		return p.parseArray(keyIndent)
	} else if !p.hasColon(true) {
		return p.parseValue()
	}
	return p.parseObject(keyIndent)
}

// parseArray parses an array beginning at "[". Rows of a tabular array
// continue while they are indented more than parent, or without limit if
// parent is rootIndent.
func (p *parser) parseArray(parent int) Value {
	p.pos++ // skip [

	var keys []string
	tabular := p.peek() == '{'
	count := -1
	if tabular {
		p.pos++ // skip {
		keys = p.parseHeaderKeys()
	} else {
		start := p.pos
		for !p.atEOF() && p.src.At(p.pos) >= '0' && p.src.At(p.pos) <= '9' {
			p.pos++
		}
		if p.pos > start {
			n, err := strconv.Atoi(p.src.Slice(start, p.pos).StringCopy())
			if err != nil {
				n = math.MaxInt
			}
			count = n
		}
	}

	if i := mem.IndexByte(p.src.SliceFrom(p.pos), ']'); i >= 0 {
		p.pos += i + 1
	} else {
		p.pos = p.src.Len()
	}
	if p.peek() == ':' {
		p.pos++
	}

	if tabular {
		return p.parseRows(keys, parent)
	}
	return p.parseElements(count)
}

// parseHeaderKeys parses the comma-separated column keys of a tabular header
// up to and including the closing "}".
func (p *parser) parseHeaderKeys() []string {
	var keys []string
	for !p.atEOF() && p.peek() != '}' {
		p.skipSpace()
		start := p.pos
		for !p.atEOF() && p.peek() != ',' && p.peek() != '}' {
			p.pos++
		}
		if key := strings.Trim(p.src.Slice(start, p.pos).StringCopy(), " \t"); key != "" {
			keys = append(keys, key)
		}
		if p.peek() == ',' {
			p.pos++
		}
	}
	if !p.atEOF() {
		p.pos++ // skip }
	}
	return keys
}

// parseRows parses the rows of a tabular array with the given column keys.
func (p *parser) parseRows(keys []string, parent int) Value {
	var rows []Value
	if len(keys) == 0 {
		return Array()
	}
	for !p.atEOF() {
		p.skipNoise()
		if p.atEOF() {
			break
		}
		save := p.pos
		if parent != rootIndent && p.lineIndent() <= parent {
			p.pos = save
			break
		}

		row := make([]Member, 0, len(keys))
		for j, key := range keys {
			p.skipSpace()
			if p.atEOF() || p.peek() == '\n' {
				break // missing columns
			}
			v := p.parseValue()
			if p.failed() {
				return Null()
			}
			row = append(row, Member{Key: key, Value: v})
			p.skipSpace()
			if j < len(keys)-1 && p.peek() == ',' {
				p.pos++
			}
		}
		if p.pos == save {
			break // the row consumed no input
		}
		if len(row) < len(keys) {
			if !p.opts.PadMissingColumns {
				break
			}
			for _, key := range keys[len(row):] {
				row = append(row, Member{Key: key, Value: Null()})
			}
		}
		rows = append(rows, Object(row...))

		// Text after the last cell of a row belongs to an enclosing array.
		p.skipSpace()
		if !p.atEOF() && p.peek() != '\n' && p.peek() != '#' {
			break
		}
	}
	return Value{n: &node{kind: ArrayKind, arr: rows}}
}

// parseElements parses the comma-separated elements of an array. If count is
// negative, the array ends at the first element not followed by a comma.
func (p *parser) parseElements(count int) Value {
	var elts []Value
	for k := 0; count < 0 || k < count; k++ {
		p.skipNoise()
		if p.atEOF() {
			break
		}
		save := p.pos
		v := p.parseValue()
		if p.failed() {
			return Null()
		} else if p.pos == save {
			break // the element consumed no input
		}
		elts = append(elts, v)

		p.skipSpace()
		if p.peek() == ',' {
			p.pos++
		} else if count < 0 {
			break
		}
	}
	return Value{n: &node{kind: ArrayKind, arr: elts}}
}
