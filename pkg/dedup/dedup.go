// Package dedup removes repeated elements from short slices.
//
// Two strategies are offered because callers need different orderings:
//
//	dedup.Stable([]string{"de", "en", "de"}) // [de en], priority order kept
//	dedup.Sorted([]string{"de", "en", "de"}) // [de en], sorted
//
// Page search walks languages in priority order and must use Stable.
// Cache updates only need each language once and may use Sorted.
package dedup

import (
	"cmp"
	"slices"
)

// Stable returns the distinct elements of s in order of first occurrence.
// It does not require T to be ordered. The scan is quadratic, which suits
// the short inputs it is used for.
func Stable[T comparable](s []T) []T {
	out := make([]T, 0, len(s))
	for _, v := range s {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

// Sorted returns the distinct elements of s in ascending order.
// The input slice is left untouched.
func Sorted[T cmp.Ordered](s []T) []T {
	out := slices.Clone(s)
	slices.Sort(out)
	return slices.Compact(out)
}
