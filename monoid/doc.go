// Package monoid enumerates, up to isomorphism and anti-isomorphism, all
// finite monoids of a given order by backtracking over Cayley tables.
//
// What:
//
//   - Diagonals: generates every order-n diagonal that is canonical under a
//     supplied permutation set (the diagonal canonicity predicate of §4.7 in
//     the design notes — see DESIGN.md).
//   - Tables: for a single valid diagonal, generates every completion of the
//     Cayley table that is associative, canonical under iso+anti-iso, and
//     satisfies the row/column Latin/absorption restrictions implied by the
//     diagonal's idempotent and invertible elements.
//   - CheckIdentity: validates that element 0 acts as a two-sided identity
//     in row 0 / column 0 of a fully populated table.
//
// Why:
//
//   - Enumerating monoids up to equality is combinatorially redundant
//     (every isomorphism class appears |Aut| times); canonicalizing against
//     a symmetry group during the search — rather than after — prunes the
//     search tree instead of merely deduplicating its output.
//
// Search shape:
//
//   - Two nested backtracking loops, mirroring a branch-and-bound search
//     with an admissible pruning test evaluated at every node instead of a
//     numeric bound: Diagonals prunes with diagonal-only canonicity,
//     Tables prunes with the full composite validity predicate
//     (restrictions, then associativity, then canonicity — cheapest first).
//   - Position stepping in Tables must skip cells fixed by convention (row
//     0, column 0, the diagonal itself); see table_enumerator.go.
//
// Complexity:
//
//   - Diagonals: O(n) candidates per level, n-1 free levels, each candidate
//     tested against every permutation in the caller-supplied set: roughly
//     O(n^n * |perms| * n) worst case, heavily pruned in practice.
//   - Tables: O(n) candidates per free cell, (n-1)^2 - (n-1) free cells,
//     each candidate re-validated against restrictions (O(n) per tagged
//     element), associativity (O(n^3) worst case, short-circuited on the
//     first Unset operand), and canonicity (O(n^2 * |perms'|)).
//
// Errors:
//
//   - ErrInvalidIdentity: CheckIdentity found table[j] != j or
//     table[order*j] != j for some j.
//   - ErrCallbackCanceled: the consumer callback (or its context) asked the
//     search to stop; search state is unwound and released on every exit
//     path.
//   - ErrInvalidOrder / ErrInvalidPermutation: malformed input to the public
//     entry points.
package monoid
