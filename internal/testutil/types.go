// Package testutil defines support code for unit tests.
package testutil

import (
	"fmt"

	"github.com/creachadair/toon"
	"github.com/google/go-cmp/cmp"
)

// ValueComparer is a cmp option that compares toon.Value trees structurally.
var ValueComparer = cmp.Comparer(toon.Equal)

// Diff reports the differences between want and got as rendered TOON text,
// or "" if they are structurally equal.
func Diff(want, got toon.Value) string {
	if toon.Equal(want, got) {
		return ""
	}
	if diff := cmp.Diff(want.String(), got.String()); diff != "" {
		return diff
	}
	return fmt.Sprintf("values differ but render identically:\n%s", want)
}
