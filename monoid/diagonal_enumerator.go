package monoid

import "context"

// diagonalValid tests whether diagonal d (possibly partial, with trailing
// Unset entries) is still a candidate for the lex-minimal diagonal in its
// orbit under every permutation in perms (design notes §4.7).
//
// For each permutation, positions j are compared in order against
// p[d[p^-1[j]]]: the scan of that permutation stops (moves to the next
// permutation) the moment d[j] is strictly smaller than its image, and
// rejects (returns false) the moment d[j] is strictly larger; an Unset
// operand makes the constraint undecidable and also stops the scan for that
// permutation.
func diagonalValid(d Diagonal, perms []invertiblePermutation) bool {
	n := len(d)
	for _, ip := range perms {
		for j := 0; j < n; j++ {
			ii := ip.inverse[j]
			if d[ii] == Unset {
				break
			}

			q := ip.perm[d[ii]]
			if d[j] < q {
				break
			}
			if d[j] > q {
				return false
			}
		}
	}

	return true
}

// diagonalEngine holds the scratch state for one Diagonals backtracking
// search. It mirrors tsp.bbEngine's style: explicit fields instead of
// closures, so hot-path state stays predictable and unit-testable.
type diagonalEngine struct {
	order int
	perms []invertiblePermutation

	diagonal Diagonal

	emit func(Diagonal) error

	// ctx, if non-nil, is checked every 4096 node events (a sparse check
	// keeps overhead negligible, mirroring tsp.bbEngine.deadlineCheck).
	ctx   context.Context
	steps int
}

// canceled performs the sparse context check described above.
func (e *diagonalEngine) canceled() error {
	e.steps++
	if e.ctx == nil || e.steps&4095 != 0 {
		return nil
	}

	return e.ctx.Err()
}

// run performs the backtracking search described in design notes §4.7 and
// invokes emit for every valid diagonal found, in lex order. It returns the
// first error returned by emit (wrapped as ErrCallbackCanceled by the
// caller), or nil once the search space is exhausted.
func (e *diagonalEngine) run() error {
	n := e.order
	e.diagonal = make(Diagonal, n)
	// d[i] = 0 for all i, including the fixed d[0]; emit the all-zero diagonal.
	if err := e.emit(e.diagonal); err != nil {
		return err
	}

	if n <= 1 {
		// No free diagonal positions (index 0 is fixed); nothing more to search.
		return nil
	}

	index := n - 1
	for {
		if err := e.canceled(); err != nil {
			return err
		}

		e.diagonal[index]++
		if e.diagonal[index] >= n {
			if index == 1 {
				return nil // search space exhausted
			}
			e.diagonal[index] = Unset
			index--
			continue
		}

		if diagonalValid(e.diagonal, e.perms) {
			if index == n-1 {
				if err := e.emit(e.diagonal); err != nil {
					return err
				}
			} else {
				index++
				// The new position starts from its current Unset sentinel,
				// which the next ++ at the top of the loop lifts to 0.
			}
		}
	}
}
