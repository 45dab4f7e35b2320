// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package toon implements an encoder and decoder for TOON, a compact,
// indentation-based notation for JSON-like data.
//
// # Values
//
// The Value type is an immutable tree of null, number, Boolean, string,
// array, and object values. A Value is a single pointer, so copies are cheap
// and a tree may be shared freely among goroutines. The zero Value is null.
//
//	v := toon.Object(
//	   toon.Field("name", toon.String("Alice")),
//	   toon.Field("age", toon.Int(30)),
//	)
//
// The members of an object are always kept in ascending order of their keys.
// Use FromAny and ToAny to convert between values and plain Go data.
//
// # Notation
//
// Objects are written as "key: value" lines, with nested objects indented
// two spaces below their key:
//
//	address:
//	  city: Paris
//	age: 30
//	name: Alice
//
// Arrays give their length and list their elements inline:
//
//	[3]: 1, 2, 3
//
// An array of objects that all have the same keys is written as a table,
// with the keys listed once in a header:
//
//	[{x, y}]:
//	  1, 2
//	  3, 4
//
// Strings are quoted only when they would otherwise be read as something
// else. Comments begin with "#" and run to the end of the line.
//
// # Encoding and Decoding
//
// Encode renders a value as text, and AppendEncode appends the rendering to a
// buffer. Encoding never fails:
//
//	fmt.Println(toon.Encode(v))
//
// Decode parses text and returns a value. In case of error, the value is null
// and the error has concrete type *toon.SyntaxError:
//
//	v, err := toon.Decode(text)
//	if err != nil {
//	   log.Fatalf("Decode failed: %v", err)
//	}
//
// The Decoder type provides settings for handling malformed tabular rows and
// number tokens.
package toon
