// Package sequtil provides small, pure helpers for rearranging integer
// slices, shared by the combinatorics package (permutation suffixes,
// defensive copies handed to callbacks).
package sequtil

// Reverse returns a new slice containing the elements of s in reverse order.
// Time Complexity: O(n) where n = len(s).
func Reverse(s []int) []int {
	out := make([]int, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}

// Clone returns a copy of s, safe to retain after s is mutated in place.
// Time Complexity: O(n).
func Clone(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)

	return out
}
