// SPDX-License-Identifier: MPL-2.0

package setalg

import "slices"

// Normalize returns a sorted copy of items with duplicates and empty strings
// removed. The input slice is not modified.
func Normalize(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// IsNormalized reports whether items is strictly ascending and contains no
// empty strings.
func IsNormalized(items []string) bool {
	for i, item := range items {
		if item == "" {
			return false
		}
		if i > 0 && items[i-1] >= item {
			return false
		}
	}
	return true
}

// Intersection returns the elements present in both a and b.
// The result is empty (never nil) when the sets are disjoint.
func Intersection(a, b []string) []string {
	out := make([]string, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

// Difference returns the elements of a that are not in b (a \ b).
func Difference(a, b []string) []string {
	out := make([]string, 0, len(a))
	i, j := 0, 0
	for i < len(a) {
		if j >= len(b) || a[i] < b[j] {
			out = append(out, a[i])
			i++
			continue
		}
		if a[i] > b[j] {
			j++
			continue
		}
		i++
		j++
	}
	return out
}

// OverlapPercentage computes Jaccard's coefficient of similarity as a
// percentage:
//
//	100 * |A ∩ B| / (|A| + |B| - |A ∩ B|)
//
// A negative intersection size is clamped to zero. When the union is empty
// the result is 0.
func OverlapPercentage(sizeA, sizeB, intersection int) float64 {
	intersection = max(0, intersection)
	union := sizeA + sizeB - intersection
	if union <= 0 {
		return 0
	}
	return 100 * float64(intersection) / float64(union)
}
