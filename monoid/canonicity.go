package monoid

// isoAntiIso tests whether the partial table t is, simultaneously for every
// permutation in perms, lexicographically no greater than its image under
// the "permuted" action (isomorphism) and the "permuted-transposed" action
// (anti-isomorphism), scanning in row-major order from cell Order+1 onward
// (design notes §4.4).
//
// The scan for a given permutation stops the moment any of the three
// compared cells is still Unset (not yet decidable); both "already smaller
// than both images" and "definitely not canonical" are early exits. This
// makes the test usable as an incremental pruning predicate on a partial
// table, not only as a post-hoc check on a complete one.
func isoAntiIso(t Table, perms []invertiblePermutation) bool {
	n := t.Order
	maxIndex := n * n

	for _, ip := range perms {
		smallerIso, smallerAiso := false, false

		for i := n + 1; i < maxIndex; i++ {
			r, c := rowOf(i, n), colOf(i, n)
			ix1 := ip.inverse[r]
			ix2 := ip.inverse[c]

			ti := t.Cells[i]
			tii := t.At(ix1, ix2)
			taii := t.At(ix2, ix1)

			if ti == Unset || tii == Unset || taii == Unset {
				break // not yet decidable for this permutation
			}

			ptii := ip.perm[tii]
			ptaii := ip.perm[taii]

			if ti < ptii {
				smallerIso = true
			}
			if ti < ptaii {
				smallerAiso = true
			}
			if smallerIso && smallerAiso {
				break // already strictly smaller than both images
			}
			if (!smallerIso && ti > ptii) || (!smallerAiso && ti > ptaii) {
				return false // non-canonical: some image is strictly smaller
			}
		}
	}

	return true
}
