// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package toon

import (
	"fmt"
	"math"
)

// FromAny converts a Go value into a Value. It accepts nil, bool, string,
// []byte, any integer or floating-point type, a Value, and slices or
// string-keyed maps whose elements are themselves convertible. It panics if v
// does not have one of these types.
func FromAny(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case []byte:
		return String(string(t))
	case int:
		return Int(int64(t))
	case int8:
		return Int(int64(t))
	case int16:
		return Int(int64(t))
	case int32:
		return Int(int64(t))
	case int64:
		return Int(t)
	case uint:
		return fromUint(uint64(t))
	case uint8:
		return Int(int64(t))
	case uint16:
		return Int(int64(t))
	case uint32:
		return Int(int64(t))
	case uint64:
		return fromUint(t)
	case float32:
		return Float(float64(t))
	case float64:
		return Float(t)
	case []Value:
		return Array(t...)
	case []any:
		vs := make([]Value, len(t))
		for i, elt := range t {
			vs[i] = FromAny(elt)
		}
		return Value{n: &node{kind: ArrayKind, arr: vs}}
	case []string:
		vs := make([]Value, len(t))
		for i, s := range t {
			vs[i] = String(s)
		}
		return Value{n: &node{kind: ArrayKind, arr: vs}}
	case map[string]Value:
		return ObjectOf(t)
	case map[string]any:
		ms := make([]Member, 0, len(t))
		for k, elt := range t {
			ms = append(ms, Member{Key: k, Value: FromAny(elt)})
		}
		return Object(ms...)
	default:
		panic(fmt.Sprintf("toon: cannot convert value of type %T", v))
	}
}

func fromUint(u uint64) Value {
	if u > math.MaxInt64 {
		return Float(float64(u))
	}
	return Int(int64(u))
}

// ToAny converts v into plain Go values: nil, bool, int64 (for integer
// numbers), float64, string, []any, and map[string]any.
func ToAny(v Value) any {
	n := v.node()
	switch n.kind {
	case NumberKind:
		if n.isInt {
			return n.ival
		}
		return n.fval
	case BoolKind:
		return n.ival != 0
	case StringKind:
		return n.str
	case ArrayKind:
		out := make([]any, len(n.arr))
		for i, elt := range n.arr {
			out[i] = ToAny(elt)
		}
		return out
	case ObjectKind:
		out := make(map[string]any, len(n.obj))
		for _, m := range n.obj {
			out[m.Key] = ToAny(m.Value)
		}
		return out
	}
	return nil
}
