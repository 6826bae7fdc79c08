// Package combinatorics provides small, allocation-light primitives for
// walking the subset and permutation lattices: successor functions over an
// index array (NextSubset, NextPerm) and generic generators built on top of
// them (Powerset, Permutations).
//
// Every generator offers a lazy callback form and an eager slice-returning
// form, mirroring the original C extension's dual block-given/array-
// returning modes. Callback forms stop early the moment the callback
// returns a non-nil error.
package combinatorics
