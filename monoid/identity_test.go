package monoid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvmonoid/monoid"
)

func TestCheckIdentity_Valid(t *testing.T) {
	tbl := monoid.NewTableFromDiagonal(monoid.Diagonal{0, 1, 2})
	assert.NoError(t, monoid.CheckIdentity(tbl))
}

func TestCheckIdentity_InvalidRow(t *testing.T) {
	tbl := monoid.Table{Order: 2, Cells: []int{1, 1, 0, 1}} // t[0] != 0
	err := monoid.CheckIdentity(tbl)
	assert.True(t, errors.Is(err, monoid.ErrInvalidIdentity))
}

func TestCheckIdentity_InvalidColumn(t *testing.T) {
	tbl := monoid.Table{Order: 2, Cells: []int{0, 1, 0, 1}} // t[2] (col 0, row 1) != 1
	err := monoid.CheckIdentity(tbl)
	assert.True(t, errors.Is(err, monoid.ErrInvalidIdentity))
}
