// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package toon_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/creachadair/toon"
)

func ExampleEncode() {
	v := toon.Object(
		toon.Field("name", toon.String("Alice")),
		toon.Field("age", toon.Int(30)),
		toon.Field("tags", toon.Array(toon.String("admin"), toon.String("ops"))),
	)
	fmt.Println(toon.Encode(v))
	// Output:
	// age: 30
	// name: Alice
	// tags: [2]: admin, ops
}

func ExampleEncode_table() {
	v := toon.FromAny([]any{
		map[string]any{"id": 1, "name": "Alice"},
		map[string]any{"id": 2, "name": "Bob"},
	})
	fmt.Println(toon.Encode(v))
	// Output:
	// [{id, name}]:
	//   1, Alice
	//   2, Bob
}

func ExampleDecode() {
	v, err := toon.Decode(`
# A user record.
name: Alice
age: 30
roles: [2]: admin, ops
`)
	if err != nil {
		log.Fatalf("Decode: %v", err)
	}
	fmt.Println(v.Get("name").Str(), v.Get("age").Int64())
	for _, role := range v.Get("roles").Elements() {
		fmt.Println(role.Str())
	}
	// Output:
	// Alice 30
	// admin
	// ops
}

func ExampleDecode_error() {
	_, err := toon.Decode(`key: "\q"`)
	fmt.Println(err)
	fmt.Println(errors.Is(err, toon.ErrInvalidEscape))
	// Output:
	// at 1:7: invalid escape sequence
	// true
}

func ExampleDecoder() {
	const text = `[{a, b}]:
  1, 2
  3
  5, 6`

	v, _ := toon.Decode(text)
	fmt.Println(v.Len())

	v, _ = toon.Decoder{PadMissingColumns: true}.Decode(text)
	fmt.Println(v.Len(), v.Index(1).Get("b"))
	// Output:
	// 1
	// 3 null
}
