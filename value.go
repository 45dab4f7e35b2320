// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package toon

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"
)

// Kind identifies the type of a [Value].
type Kind byte

// Constants defining the valid Kind values.
const (
	NullKind   Kind = iota // null
	NumberKind             // integer or floating-point number
	BoolKind               // true or false
	StringKind             // string
	ArrayKind              // ordered sequence of values
	ObjectKind             // string-keyed mapping of values

	// Do not modify the order of these constants: Compare orders values of
	// different kinds by their Kind.
)

var kindStr = [...]string{
	NullKind:   "null",
	NumberKind: "number",
	BoolKind:   "bool",
	StringKind: "string",
	ArrayKind:  "array",
	ObjectKind: "object",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return kindStr[k]
}

// A Value is an immutable TOON value. Copying a Value copies a single pointer
// to a node that may be shared among any number of owners, so values are safe
// for concurrent use without synchronization.
//
// The zero Value is null and is ready for use.
type Value struct{ n *node }

type node struct {
	kind  Kind
	isInt bool    // for numbers: ival is authoritative
	ival  int64   // integer value of an integer number
	fval  float64 // floating-point value of a number
	str   string
	arr   []Value
	obj   []Member // sorted by key, keys unique
}

var (
	nullNode  = &node{kind: NullKind}
	trueNode  = &node{kind: BoolKind, ival: 1}
	falseNode = &node{kind: BoolKind}
)

// Null returns the null value.
func Null() Value { return Value{n: nullNode} }

// True returns the Boolean value true.
func True() Value { return Value{n: trueNode} }

// False returns the Boolean value false.
func False() Value { return Value{n: falseNode} }

// Bool returns the Boolean value b.
func Bool(b bool) Value {
	if b {
		return True()
	}
	return False()
}

// Int returns a number with integer subtype.
func Int(z int64) Value {
	return Value{n: &node{kind: NumberKind, isInt: true, ival: z, fval: float64(z)}}
}

// Float returns a number with floating-point subtype.
func Float(f float64) Value {
	return Value{n: &node{kind: NumberKind, fval: f}}
}

// String returns a string value.
func String(s string) Value { return Value{n: &node{kind: StringKind, str: s}} }

// Array returns an array of the given values. The slice is copied.
func Array(vs ...Value) Value {
	return Value{n: &node{kind: ArrayKind, arr: slices.Clone(vs)}}
}

// A Member is a single key-value pair of an object.
type Member struct {
	Key   string
	Value Value
}

// Field constructs an object member with the given key and value.
func Field(key string, value Value) Member { return Member{Key: key, Value: value} }

// Object returns an object with the given members. Members are ordered by
// key; if a key occurs more than once, the last occurrence wins.
func Object(ms ...Member) Value {
	obj := slices.Clone(ms)
	slices.SortStableFunc(obj, func(a, b Member) int { return strings.Compare(a.Key, b.Key) })

	// After a stable sort, the last member of each run of equal keys is the
	// one that appeared last in the input.
	out := obj[:0]
	for i, m := range obj {
		if i+1 < len(obj) && obj[i+1].Key == m.Key {
			continue
		}
		out = append(out, m)
	}
	return Value{n: &node{kind: ObjectKind, obj: out}}
}

// ObjectOf returns an object with the members of m.
func ObjectOf(m map[string]Value) Value {
	ms := make([]Member, 0, len(m))
	for k, v := range m {
		ms = append(ms, Member{Key: k, Value: v})
	}
	return Object(ms...)
}

func (v Value) node() *node {
	if v.n == nil {
		return nullNode
	}
	return v.n
}

// Kind reports the kind of v.
func (v Value) Kind() Kind { return v.node().kind }

func (v Value) IsNull() bool   { return v.Kind() == NullKind }
func (v Value) IsNumber() bool { return v.Kind() == NumberKind }
func (v Value) IsBool() bool   { return v.Kind() == BoolKind }
func (v Value) IsString() bool { return v.Kind() == StringKind }
func (v Value) IsArray() bool  { return v.Kind() == ArrayKind }
func (v Value) IsObject() bool { return v.Kind() == ObjectKind }

// IsInt reports whether v is a number with integer subtype.
func (v Value) IsInt() bool { n := v.node(); return n.kind == NumberKind && n.isInt }

// Float64 returns the numeric value of v, or 0 if v is not a number.
func (v Value) Float64() float64 { return v.node().fval }

// Int64 returns the numeric value of v truncated to an integer, or 0 if v is
// not a number.
func (v Value) Int64() int64 {
	n := v.node()
	if n.kind != NumberKind {
		return 0
	} else if n.isInt {
		return n.ival
	}
	return int64(n.fval)
}

// BoolValue returns the truth value of v, or false if v is not a Boolean.
func (v Value) BoolValue() bool { n := v.node(); return n.kind == BoolKind && n.ival != 0 }

// Str returns the string value of v, or "" if v is not a string.
func (v Value) Str() string { return v.node().str }

// Len returns the number of elements of an array, the number of members of
// an object, or the length in bytes of a string. It returns 0 for other
// kinds.
func (v Value) Len() int {
	n := v.node()
	switch n.kind {
	case ArrayKind:
		return len(n.arr)
	case ObjectKind:
		return len(n.obj)
	case StringKind:
		return len(n.str)
	}
	return 0
}

// Index returns the element of an array at offset i, or null if v is not an
// array or i is out of range.
func (v Value) Index(i int) Value {
	arr := v.node().arr
	if i < 0 || i >= len(arr) {
		return Null()
	}
	return arr[i]
}

// Elements returns a copy of the elements of an array, or nil.
func (v Value) Elements() []Value { return slices.Clone(v.node().arr) }

// Lookup returns the value of the member of an object with the given key, and
// reports whether it was found.
func (v Value) Lookup(key string) (Value, bool) {
	obj := v.node().obj
	i, ok := slices.BinarySearchFunc(obj, key, func(m Member, key string) int {
		return strings.Compare(m.Key, key)
	})
	if !ok {
		return Null(), false
	}
	return obj[i].Value, true
}

// Get returns the value of the member of an object with the given key, or
// null if v is not an object or has no such member.
func (v Value) Get(key string) Value { out, _ := v.Lookup(key); return out }

// Keys returns the keys of an object in order, or nil.
func (v Value) Keys() []string {
	obj := v.node().obj
	if len(obj) == 0 {
		return nil
	}
	keys := make([]string, len(obj))
	for i, m := range obj {
		keys[i] = m.Key
	}
	return keys
}

// Members returns a copy of the members of an object in key order, or nil.
func (v Value) Members() []Member { return slices.Clone(v.node().obj) }

// MemberAt returns the member of an object at offset i in key order. It
// returns a zero Member if v is not an object or i is out of range.
func (v Value) MemberAt(i int) Member {
	obj := v.node().obj
	if i < 0 || i >= len(obj) {
		return Member{}
	}
	return obj[i]
}

// String renders v in TOON notation. It satisfies the fmt.Stringer interface.
func (v Value) String() string { return Encode(v) }

// Equal reports whether a and b are structurally equal. Numbers are equal if
// their numeric values are equal regardless of subtype.
func Equal(a, b Value) bool { return Compare(a, b) == 0 }

// Compare defines a total order on values. Values of different kinds are
// ordered by kind. Numbers are ordered numerically, strings by bytes, and
// arrays and objects lexicographically by their elements or members.
func Compare(a, b Value) int {
	an, bn := a.node(), b.node()
	if an == bn {
		return 0
	} else if an.kind != bn.kind {
		return cmp.Compare(an.kind, bn.kind)
	}
	switch an.kind {
	case NumberKind:
		switch {
		case an.isInt && bn.isInt:
			return cmp.Compare(an.ival, bn.ival)
		case an.isInt:
			return compareIntFloat(an.ival, bn.fval)
		case bn.isInt:
			return -compareIntFloat(bn.ival, an.fval)
		}
		return cmp.Compare(an.fval, bn.fval)
	case BoolKind:
		return cmp.Compare(an.ival, bn.ival)
	case StringKind:
		return strings.Compare(an.str, bn.str)
	case ArrayKind:
		return slices.CompareFunc(an.arr, bn.arr, Compare)
	case ObjectKind:
		return slices.CompareFunc(an.obj, bn.obj, func(x, y Member) int {
			if c := strings.Compare(x.Key, y.Key); c != 0 {
				return c
			}
			return Compare(x.Value, y.Value)
		})
	}
	return 0 // null
}

// compareIntFloat compares z and f exactly, without rounding z to a float.
// NaN is less than every integer, as with cmp.Compare.
func compareIntFloat(z int64, f float64) int {
	switch {
	case math.IsNaN(f):
		return 1
	case f < math.MinInt64:
		return 1
	case f >= math.MaxInt64: // float64(MaxInt64) is 2^63
		return -1
	}
	t := math.Trunc(f)
	if c := cmp.Compare(z, int64(t)); c != 0 {
		return c
	}
	return cmp.Compare(t, f) // z == t, so only the fraction of f remains
}
