package monoid

import "context"

// tableEngine holds the scratch state for one Tables backtracking search
// over the completions of a single diagonal (design notes §4.8). As with
// diagonalEngine, explicit fields replace closures so the hot path stays
// predictable.
type tableEngine struct {
	order int
	rc    RcRestrictions
	perms []invertiblePermutation // diagonal-stable subset

	table Table

	emit func(Table) error

	// ctx, if non-nil, is checked every 4096 node events, mirroring
	// diagonalEngine.canceled and tsp.bbEngine.deadlineCheck.
	ctx   context.Context
	steps int
}

// canceled performs the sparse context check described above.
func (e *tableEngine) canceled() error {
	e.steps++
	if e.ctx == nil || e.steps&4095 != 0 {
		return nil
	}

	return e.ctx.Err()
}

// run performs the backtracking search described in design notes §4.8:
// free positions (row>=1, col>=1, row!=col) are stepped through by
// incrementing/decrementing a raw flat index, skipping fixed cells (row 0,
// column 0, the diagonal), and every candidate is checked with tableValid.
// Free cells start at 0, so the search begins from a fully populated table
// and every emitted table is complete; cells to the right of the current
// index are reset to Unset on backtrack and re-entered from there.
func (e *tableEngine) run() error {
	n := e.order

	for k := range e.table.Cells {
		if !isFixedCell(k, n) {
			e.table.Cells[k] = 0
		}
	}

	if tableValid(e.table, e.rc, e.perms) {
		if err := e.emit(e.table); err != nil {
			return err
		}
	}

	if n <= 1 {
		// No free cells exist at all (n==1 has a single, fixed cell); n==2
		// also has no free cells, but is left to the loop below, which
		// terminates itself gracefully on the first overflow check.
		return nil
	}

	index := n*n - 2
	for {
		if err := e.canceled(); err != nil {
			return err
		}

		e.table.Cells[index]++
		if e.table.Cells[index] >= n {
			if index <= n+2 {
				return nil // search space exhausted
			}
			e.table.Cells[index] = Unset
			index--
			for isFixedCell(index, n) {
				index--
			}
			continue
		}

		if tableValid(e.table, e.rc, e.perms) {
			if index == n*n-2 {
				if err := e.emit(e.table); err != nil {
					return err
				}
			} else {
				index++
				for isFixedCell(index, n) {
					index++
				}
			}
		}
	}
}
