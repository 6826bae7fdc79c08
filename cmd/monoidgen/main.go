// Command monoidgen enumerates, up to isomorphism and anti-isomorphism, all
// finite monoids of a given order and prints each canonical Cayley table.
//
// It plays the role of the "driver" collaborator described by the monoid
// package: it builds the symmetric group S(order-1) on the non-identity
// elements (via combinatorics.Permutations) and hands it to
// monoid.Diagonals / monoid.Tables, which assume nothing about where a
// correct symmetry group comes from.
//
// Usage:
//
//	monoidgen -order 3
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/katalvlaran/lvmonoid/combinatorics"
	"github.com/katalvlaran/lvmonoid/monoid"
)

func main() {
	order := flag.Int("order", 3, "monoid order (number of elements, including the identity)")
	flag.Parse()

	if *order < 1 {
		log.Fatalf("order must be >= 1, got %d", *order)
	}

	perms, err := symmetryGroup(*order)
	if err != nil {
		log.Fatalf("building symmetry group: %v", err)
	}

	count := 0
	err = monoid.Diagonals(context.Background(), *order, perms, func(d monoid.Diagonal) error {
		return monoid.Tables(context.Background(), d, perms, func(tbl monoid.Table) error {
			if err := monoid.CheckIdentity(tbl); err != nil {
				return err
			}
			count++
			fmt.Printf("monoid %d: %v\n", count, tbl.Cells)

			return nil
		})
	})
	if err != nil {
		log.Fatalf("enumeration failed: %v", err)
	}

	fmt.Printf("total: %d monoid(s) of order %d\n", count, *order)
}

// symmetryGroup builds S(order-1): every permutation of 1..order-1, fixing
// 0, as a monoid.PermutationSet. This is the "correct symmetry group" the
// monoid package's design notes call out as the driver's responsibility.
func symmetryGroup(order int) (monoid.PermutationSet, error) {
	if order == 1 {
		return monoid.PermutationSet{{0}}, nil
	}

	nonIdentity := make([]int, order-1)
	for i := range nonIdentity {
		nonIdentity[i] = i + 1
	}

	var perms monoid.PermutationSet
	err := combinatorics.PermutationsWithCallback(nonIdentity, func(tail []int) error {
		p := make(monoid.Permutation, order)
		p[0] = 0
		copy(p[1:], tail)
		perms = append(perms, p)

		return nil
	})

	return perms, err
}
