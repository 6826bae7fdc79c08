package monoid_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmonoid/monoid"
)

// enumerateAll walks every diagonal for order under perms and every table
// completing each diagonal, returning the full flattened table list. It
// mirrors the driver's own composition of Diagonals + Tables (see
// cmd/monoidgen).
func enumerateAll(t *testing.T, order int, perms monoid.PermutationSet) []monoid.Table {
	t.Helper()

	var tables []monoid.Table
	err := monoid.Diagonals(context.Background(), order, perms, func(d monoid.Diagonal) error {
		return monoid.Tables(context.Background(), d, perms, func(tbl monoid.Table) error {
			tables = append(tables, tbl)
			return nil
		})
	})
	require.NoError(t, err)

	return tables
}

func TestScenario_OrderOne(t *testing.T) {
	tables := enumerateAll(t, 1, monoid.PermutationSet{{0}})
	require.Len(t, tables, 1)
	assert.Equal(t, []int{0}, tables[0].Cells)
}

func TestScenario_OrderTwo_TrivialGroup(t *testing.T) {
	// Both diagonals of order 2 under the trivial (identity-only)
	// permutation set complete to exactly one table each: the Z/2Z group
	// from [0,0], and the absorbing-element monoid from [0,1]. See
	// DESIGN.md's Open Question note on why this is 2, not 1.
	tables := enumerateAll(t, 2, monoid.PermutationSet{{0, 1}})
	require.Len(t, tables, 2)

	var cells [][]int
	for _, tbl := range tables {
		cells = append(cells, tbl.Cells)
	}
	assert.Contains(t, cells, []int{0, 1, 1, 0})
	assert.Contains(t, cells, []int{0, 1, 1, 1})
}

func TestScenario_OrderThree_FullSymmetryGroup(t *testing.T) {
	// The known count of monoids of order 3 up to isomorphism and
	// anti-isomorphism, under the full symmetry group on {1,2}: 6. (Up to
	// isomorphism alone there are 7; the left-zero and right-zero monoids
	// are anti-isomorphic and count once here.)
	perms := monoid.PermutationSet{{0, 1, 2}, {0, 2, 1}}
	tables := enumerateAll(t, 3, perms)
	assert.Len(t, tables, 6)

	for _, tbl := range tables {
		assert.NoError(t, monoid.CheckIdentity(tbl))
	}
}
