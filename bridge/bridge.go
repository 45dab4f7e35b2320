// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package bridge converts TOON values to and from other data notations.
//
// FromJSON accepts standard JSON as well as JSON With Commas and Comments
// (JWCC), and ToJSON renders a value as compact JSON. FromYAML accepts a
// single YAML document.
package bridge

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/creachadair/toon"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

// FromJSON decodes a single JSON value from data. Comments and trailing
// commas are permitted. Integral numbers that fit in 64 bits are decoded with
// integer subtype.
func FromJSON(data []byte) (toon.Value, error) {
	std, err := hujson.Standardize(bytes.Clone(data))
	if err != nil {
		return toon.Null(), fmt.Errorf("standardize JSON: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(std))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return toon.Null(), fmt.Errorf("decode JSON: %w", err)
	}
	return fromJSONValue(v), nil
}

func fromJSONValue(v any) toon.Value {
	switch t := v.(type) {
	case json.Number:
		if z, err := t.Int64(); err == nil {
			return toon.Int(z)
		}
		f, _ := t.Float64()
		return toon.Float(f)
	case []any:
		vs := make([]toon.Value, len(t))
		for i, elt := range t {
			vs[i] = fromJSONValue(elt)
		}
		return toon.Array(vs...)
	case map[string]any:
		ms := make([]toon.Member, 0, len(t))
		for k, elt := range t {
			ms = append(ms, toon.Field(k, fromJSONValue(elt)))
		}
		return toon.Object(ms...)
	default:
		return toon.FromAny(v) // nil, bool, string
	}
}

// ToJSON renders v as compact JSON. Object keys are written in order, and
// numbers that are not finite are written as null.
func ToJSON(v toon.Value) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(toJSONValue(v)); err != nil {
		return nil, fmt.Errorf("encode JSON: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func toJSONValue(v toon.Value) any {
	switch v.Kind() {
	case toon.NumberKind:
		if v.IsInt() {
			return v.Int64()
		} else if f := v.Float64(); !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f
		}
		return nil
	case toon.ArrayKind:
		out := make([]any, v.Len())
		for i, elt := range v.Elements() {
			out[i] = toJSONValue(elt)
		}
		return out
	case toon.ObjectKind:
		out := make(map[string]any, v.Len())
		for _, m := range v.Members() {
			out[m.Key] = toJSONValue(m.Value)
		}
		return out
	default:
		return toon.ToAny(v)
	}
}

// FromYAML decodes a single YAML document from data. Mapping keys that are
// not strings are converted to their text representation, and timestamps are
// formatted as RFC 3339 strings.
func FromYAML(data []byte) (toon.Value, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return toon.Null(), fmt.Errorf("decode YAML: %w", err)
	}
	return fromYAMLValue(v), nil
}

func fromYAMLValue(v any) toon.Value {
	switch t := v.(type) {
	case nil, bool, string, int, int64, uint64, float64:
		return toon.FromAny(t)
	case time.Time:
		return toon.String(t.Format(time.RFC3339Nano))
	case []any:
		vs := make([]toon.Value, len(t))
		for i, elt := range t {
			vs[i] = fromYAMLValue(elt)
		}
		return toon.Array(vs...)
	case map[string]any:
		ms := make([]toon.Member, 0, len(t))
		for k, elt := range t {
			ms = append(ms, toon.Field(k, fromYAMLValue(elt)))
		}
		return toon.Object(ms...)
	case map[any]any:
		ms := make([]toon.Member, 0, len(t))
		for k, elt := range t {
			ms = append(ms, toon.Field(fmt.Sprint(k), fromYAMLValue(elt)))
		}
		return toon.Object(ms...)
	default:
		return toon.String(fmt.Sprint(v))
	}
}
