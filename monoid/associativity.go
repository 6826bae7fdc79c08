package monoid

// isAssociative tests (x1*x2)*x3 == x1*(x2*x3) for every triple in
// 1..Order-1, short-circuiting on Unset operands as not-yet-decidable
// (design notes §4.5).
//
// Quirk preserved intentionally (see design notes §9's open question): when
// t[x2*n+x3] is Unset, the scan abandons the *entire* remaining x3 range for
// the current x2, not just that one x3 value. The source implementation
// does this by breaking the innermost loop rather than continuing it; later
// x3 values at the same x2 are therefore skipped even though they might
// have been decidable. This is preserved verbatim rather than "fixed",
// because doing so changes which partial tables are rejected as
// non-associative during the search, and the design notes explicitly warn
// against altering it without re-validating enumeration counts.
func isAssociative(t Table) bool {
	n := t.Order
	for x1 := 1; x1 < n; x1++ {
		for x2 := 1; x2 < n; x2++ {
			a := t.At(x1, x2)
			if a == Unset {
				continue // a does not depend on x3: advance to the next x2
			}

			for x3 := 1; x3 < n; x3++ {
				b := t.At(x2, x3)
				if b == Unset {
					break // abandon the rest of this x3 range (see above)
				}

				u := t.At(a, x3)
				v := t.At(x1, b)
				if u == Unset || v == Unset {
					break
				}

				if u != v {
					return false
				}
			}
		}
	}

	return true
}
