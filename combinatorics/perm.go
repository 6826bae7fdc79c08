package combinatorics

import "github.com/katalvlaran/lvmonoid/internal/sequtil"

// NextPerm advances p, a permutation of 0..n-1 (or of any set of distinct
// comparable ints), to the lexicographically next permutation. It returns
// the advanced slice and true, or (nil, false) once p is already the
// highest permutation (strictly descending).
//
// p is mutated in place and also returned.
//
// Time Complexity: O(n).
func NextPerm(p []int) ([]int, bool) {
	n := len(p)
	if n < 2 {
		return nil, false
	}

	// Find the largest pivot i with p[i] < p[i+1].
	i := n - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return nil, false
	}

	// Find the largest j > i with p[j] > p[i]; the suffix is descending so
	// the first such j scanning from the end is the smallest value still
	// greater than p[i].
	j := n - 1
	for p[j] <= p[i] {
		j--
	}

	p[i], p[j] = p[j], p[i]
	copy(p[i+1:], sequtil.Reverse(p[i+1:]))

	return p, true
}
