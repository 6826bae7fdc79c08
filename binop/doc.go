// Package binop holds auxiliary predicates over a fully populated binary
// operation table: NonAssociativeTriple finds a witness to non-
// associativity and IsCommutative tests symmetry. Both operate over a
// caller-supplied base element list rather than assuming a 0..n-1 integer
// universe, so the same Table works for Cayley tables keyed by any
// comparable label.
package binop
