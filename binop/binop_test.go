package binop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvmonoid/binop"
)

// z2 is the order-2 Z/2Z group table [0,1,1,0], flattened row-major.
func z2Op(a, b int) int {
	cells := []int{0, 1, 1, 0}
	return cells[a*2+b]
}

func TestIsCommutative_Z2IsTrue(t *testing.T) {
	tbl := binop.NewTable([]int{0, 1}, z2Op)
	assert.True(t, binop.IsCommutative(tbl))
}

func TestIsCommutative_AsymmetricTableIsFalse(t *testing.T) {
	// order 3, row-major, t[1][2]=2 but t[2][1]=0: asymmetric.
	cells := []int{
		0, 1, 2,
		1, 1, 2,
		2, 0, 2,
	}
	op := func(a, b int) int { return cells[a*3+b] }
	tbl := binop.NewTable([]int{0, 1, 2}, op)
	assert.False(t, binop.IsCommutative(tbl))
}

func TestNonAssociativeTriple_FindsFirstViolation(t *testing.T) {
	// n=3 table where (1*2)*2 != 1*(2*2): identity row/col fixed, diagonal
	// 1*1=1 (idempotent), 2*2=0 (invertible), 1*2=2, 2*1=2.
	cells := []int{
		0, 1, 2,
		1, 1, 2,
		2, 2, 0,
	}
	op := func(a, b int) int { return cells[a*3+b] }
	tbl := binop.NewTable([]int{1, 2}, op) // base = non-identity elements

	a, b, c, ok := binop.NonAssociativeTriple(tbl)
	assert := assert.New(t)
	assert.True(ok)
	assert.Equal(1, a)
	assert.Equal(2, b)
	assert.Equal(2, c)

	// sanity: (1*2)*2 != 1*(2*2)
	assert.NotEqual(op(op(1, 2), 2), op(1, op(2, 2)))
}

func TestNonAssociativeTriple_AssociativeTableReturnsFalse(t *testing.T) {
	// Z/3Z addition table: fully associative.
	cells := []int{
		0, 1, 2,
		1, 2, 0,
		2, 0, 1,
	}
	op := func(a, b int) int { return cells[a*3+b] }
	tbl := binop.NewTable([]int{0, 1, 2}, op)

	_, _, _, ok := binop.NonAssociativeTriple(tbl)
	assert.False(t, ok)
}
