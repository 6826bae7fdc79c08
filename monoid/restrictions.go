package monoid

// isIdempotent reports whether element i is idempotent in diagonal d:
// d[i] == i.
func isIdempotent(d Diagonal, i int) bool {
	return d[i] == i
}

// isInvertibleInDiagonal reports whether element i is invertible in the
// diagonal d: the sequence i, d[i], d[d[i]], ... reaches 0 within at most
// len(d) steps.
func isInvertibleInDiagonal(d Diagonal, i int) bool {
	n := len(d)
	pot := d[i]
	for step := 0; step < n; step++ {
		if pot == 0 {
			return true
		}
		pot = d[pot]
	}

	return false
}

// computeRcRestrictions derives the per-element restriction tags implied by
// a diagonal: tagIdempotent if the element is idempotent, tagInvertible if
// it is invertible-in-the-diagonal. RcRestrictions[0] is always 1 (no tag),
// since element 0 is the identity and carries no restriction of its own.
func computeRcRestrictions(d Diagonal) RcRestrictions {
	n := len(d)
	r := make(RcRestrictions, n)
	r[0] = 1
	for i := 1; i < n; i++ {
		r[i] = 1
		if isIdempotent(d, i) {
			r[i] *= tagIdempotent
		}
		if isInvertibleInDiagonal(d, i) {
			r[i] *= tagInvertible
		}
	}

	return r
}

// rcRestSatisfied enforces the row/column structural test (design notes
// §4.2): idempotent elements never act as a zero-absorber in their row or
// column, and invertible elements keep their row/column Latin (pairwise
// distinct among cells already set).
//
// Presence is tracked with a []bool bitmask per row/column scan instead of
// the naive O(n^2) pairwise comparison, a strict improvement flagged as
// acceptable by the design notes; semantics are unchanged, since both
// approaches detect the first repeated value among set cells.
func rcRestSatisfied(t Table, r RcRestrictions) bool {
	n := t.Order
	var rowSeen, colSeen []bool
	for i := 1; i < n; i++ {
		if r[i] == 1 {
			continue
		}

		if hasTag(r[i], tagIdempotent) {
			for j := 1; j < n; j++ {
				if t.At(i, j) == 0 || t.At(j, i) == 0 {
					return false
				}
			}
		}

		if hasTag(r[i], tagInvertible) {
			if rowSeen == nil {
				rowSeen = make([]bool, n)
				colSeen = make([]bool, n)
			} else {
				for k := range rowSeen {
					rowSeen[k] = false
					colSeen[k] = false
				}
			}

			for j := 0; j < n; j++ {
				if v := t.At(i, j); v != Unset {
					if rowSeen[v] {
						return false
					}
					rowSeen[v] = true
				}
				if v := t.At(j, i); v != Unset {
					if colSeen[v] {
						return false
					}
					colSeen[v] = true
				}
			}
		}
	}

	return true
}
