package combinatorics

import "github.com/katalvlaran/lvmonoid/internal/sequtil"

// NextSubset advances idx, a strictly increasing slice of indices into a
// size-n universe, to the lexicographically next subset of the same
// cardinality. It returns the advanced slice and true, or (nil, false) once
// idx is already the last subset of its size (e.g. the final k indices
// n-k..n-1).
//
// idx is mutated in place and also returned; callers that need to retain
// the previous value should copy it first (sequtil.Clone).
//
// Time Complexity: O(k) where k = len(idx).
func NextSubset(idx []int, n int) ([]int, bool) {
	k := len(idx)
	if k == 0 || k > n {
		return nil, false
	}

	i := k - 1
	for i >= 0 && idx[i] == n-k+i {
		i--
	}
	if i < 0 {
		return nil, false
	}

	idx[i]++
	for j := i + 1; j < k; j++ {
		idx[j] = idx[j-1] + 1
	}

	return idx, true
}

// Combinations calls cb with every k-element subset (as an index slice into
// a size-n universe) in lexicographic order, starting from {0,...,k-1}. It
// stops and returns cb's error the first time cb returns non-nil.
func Combinations(n, k int, cb func([]int) error) error {
	if k < 0 || k > n {
		return ErrCardinalityOutOfRange
	}
	if k == 0 {
		return cb(nil)
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		if err := cb(sequtil.Clone(idx)); err != nil {
			return err
		}
		next, ok := NextSubset(idx, n)
		if !ok {
			return nil
		}
		idx = next
	}
}
