package combinatorics

// PowersetWithCallback calls cb with every subset of items, grouped by
// cardinality 0..len(items) ascending and, within each cardinality, in lex
// order of element indices (k = 0..n, each k walked with NextSubset via
// Combinations). It stops and returns cb's error the first time cb returns
// non-nil.
//
// A WithCardinalityRange option restricts the cardinalities visited,
// without changing the order.
func PowersetWithCallback[T any](items []T, cb func([]T) error, opts ...Option) error {
	o := applyOptions(opts)
	n := len(items)
	for k := 0; k <= n; k++ {
		if !o.accepts(k) {
			continue
		}
		err := Combinations(n, k, func(idx []int) error {
			subset := make([]T, len(idx))
			for i, v := range idx {
				subset[i] = items[v]
			}

			return cb(subset)
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// Powerset returns every subset of items as a single eager slice, in the
// same order as PowersetWithCallback (cardinality ascending, lex within a
// cardinality), optionally restricted
// by WithCardinalityRange.
func Powerset[T any](items []T, opts ...Option) [][]T {
	var out [][]T
	_ = PowersetWithCallback(items, func(subset []T) error {
		out = append(out, subset)
		return nil
	}, opts...)

	return out
}

// PermutationsWithCallback calls cb with every permutation of items, walking
// an index array 0..n-1 with NextPerm and mapping each step back through
// items. It stops and returns cb's error the first time cb returns non-nil.
func PermutationsWithCallback[T any](items []T, cb func([]T) error) error {
	n := len(items)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	for {
		perm := make([]T, n)
		for i, v := range idx {
			perm[i] = items[v]
		}
		if err := cb(perm); err != nil {
			return err
		}
		next, ok := NextPerm(idx)
		if !ok {
			return nil
		}
		idx = next
	}
}

// Permutations returns every permutation of items as a single eager slice,
// in the same lexicographic order as PermutationsWithCallback.
func Permutations[T any](items []T) [][]T {
	var out [][]T
	_ = PermutationsWithCallback(items, func(perm []T) error {
		out = append(out, perm)
		return nil
	})

	return out
}
