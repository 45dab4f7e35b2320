// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package escape_test

import (
	"errors"
	"testing"

	"github.com/creachadair/toon/internal/escape"
	"github.com/google/go-cmp/cmp"
	"go4.org/mem"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", `""`},
		{"abc", `"abc"`},
		{`a"b`, `"a\"b"`},
		{`a\b`, `"a\\b"`},
		{"\b\f\n\r\t", `"\b\f\n\r\t"`},
		{"\x00\x07\x1b\x1f", `"\u0000\u0007\u001b\u001f"`},
		{"/", `"/"`},
		{"\x7f", "\"\x7f\""},
		{"héllo", `"héllo"`},
	}
	for _, tc := range tests {
		got := string(escape.Quote(nil, mem.S(tc.input)))
		if got != tc.want {
			t.Errorf("Quote(%q): got %#q, want %#q", tc.input, got, tc.want)
		}
	}

	// Quote appends to its buffer.
	if got := string(escape.Quote([]byte("x="), mem.S("y"))); got != `x="y"` {
		t.Errorf("Quote with prefix: got %#q", got)
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string // without the opening quote
		want  string
		n     int
	}{
		{`"`, "", 1},
		{`abc"`, "abc", 4},
		{`abc" tail`, "abc", 4},
		{`a\"b"`, `a"b`, 5},
		{`\\\/\b\f\n\r\t"`, "\\/\b\f\n\r\t", 15},
		{`\u0041\u00e9"`, "A\u00e9", 13},
		{`\u0000"`, "\x00", 7},
		{`\ud800"`, "\ufffd", 7},
		{`\ufdd0\ufdef\ufffe"`, "\ufffd\ufffd\ufffd", 19},
		{`\ufdcf"`, "\ufdcf", 7},
		{"raw\tbytes\"", "raw\tbytes", 10},
	}
	for _, tc := range tests {
		got, n, err := escape.Unquote(mem.S(tc.input))
		if err != nil {
			t.Errorf("Unquote(%#q): unexpected error: %v", tc.input, err)
			continue
		}
		if diff := cmp.Diff(tc.want, string(got)); diff != "" {
			t.Errorf("Unquote(%#q) (-want, +got):\n%s", tc.input, diff)
		}
		if n != tc.n {
			t.Errorf("Unquote(%#q): consumed %d bytes, want %d", tc.input, n, tc.n)
		}
	}
}

func TestUnquoteErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
		pos   int
	}{
		{``, escape.ErrUnfinishedString, 0},
		{`abc`, escape.ErrUnfinishedString, 3},
		{`abc\`, escape.ErrUnfinishedString, 4},
		{`\x"`, escape.ErrInvalidEscape, 1},
		{`ok\'"`, escape.ErrInvalidEscape, 3},
		{`\u12`, escape.ErrUnfinishedEscape, 4},
		{`\u12"`, escape.ErrUnfinishedEscape, 5},
		{`\u12g4"`, escape.ErrInvalidUnicode, 2},
	}
	for _, tc := range tests {
		_, pos, err := escape.Unquote(mem.S(tc.input))
		if !errors.Is(err, tc.want) {
			t.Errorf("Unquote(%#q): got error %v, want %v", tc.input, err, tc.want)
		}
		if pos != tc.pos {
			t.Errorf("Unquote(%#q): error at %d, want %d", tc.input, pos, tc.pos)
		}
	}
}

func TestNeedsQuote(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"null", true},
		{"true", true},
		{"false", true},
		{"null value", true},
		{"false,", true},
		{"nullable", false},
		{"truest", false},
		{"0", true},
		{"-1", true},
		{"3 apples", true},
		{".5", true},
		{"+5", true},
		{"5.", true},
		{"e10", false},
		{"inf", false},
		{"NaN", false},
		{"a:b", true},
		{"a,b", true},
		{"a#b", true},
		{"a\nb", true},
		{"[", true},
		{"}", true},
		{`"a`, true},
		{`a"`, false},
		{" a", true},
		{"a\t", true},
		{"a\r", true},
		{"a b", false},
		{"a\\b", false},
		{"hello", false},
		{"ünïcode", false},
	}
	for _, tc := range tests {
		if got := escape.NeedsQuote(mem.S(tc.input)); got != tc.want {
			t.Errorf("NeedsQuote(%q): got %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestKeyword(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"null", "null"},
		{"true, 1", "true"},
		{"false\n", "false"},
		{"null#c", "null"},
		{"true]", "true"},
		{"nullx", ""},
		{"True", ""},
		{"nul", ""},
		{"", ""},
	}
	for _, tc := range tests {
		if got := escape.Keyword(mem.S(tc.input)); got != tc.want {
			t.Errorf("Keyword(%q): got %q, want %q", tc.input, got, tc.want)
		}
	}
}
