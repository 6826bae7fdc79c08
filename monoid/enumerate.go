package monoid

import (
	"context"
	"errors"
	"fmt"
)

// Diagonals enumerates every canonical order-length diagonal under perms,
// invoking cb with a defensive copy of each one in lex order (design notes
// §4.7, external interface §6.1). The all-zero diagonal is always the
// first value seen.
//
// cb may retain its argument: the enumerator's internal buffer is reused
// between invocations, but the copy handed to cb is fresh and owned by the
// caller.
//
// A non-nil error returned by cb stops the search; Diagonals returns that
// error wrapped in ErrCallbackCanceled unless it already wraps a sentinel
// from this package. A canceled ctx has the same effect. Diagonals returns
// ErrInvalidOrder or ErrInvalidPermutation for malformed input, and nil
// once the search space is exhausted normally.
func Diagonals(ctx context.Context, order int, perms PermutationSet, cb func(Diagonal) error, opts ...Option) error {
	if order < 1 {
		return ErrInvalidOrder
	}
	if err := validatePermutationSet(perms, order); err != nil {
		return err
	}

	runCtx, cancel := contextWithOptions(ctx, applyOptions(opts))
	defer cancel()

	engine := &diagonalEngine{
		order: order,
		perms: precomputeInvertible(perms),
		ctx:   runCtx,
		emit: func(d Diagonal) error {
			return cb(d.Clone())
		},
	}

	return wrapCancellation(engine.run())
}

// Tables enumerates every completion of diagonal that is associative and
// canonical under perms (iso+anti-iso), invoking cb with a defensive copy
// of each one in the row-major stepping order described in design notes
// §4.8 (external interface §6.2). len(diagonal) is taken as the table
// order; diagonal is not itself re-validated for canonicity — callers are
// expected to pass a diagonal obtained from Diagonals, or one known to
// satisfy the same constraint.
func Tables(ctx context.Context, diagonal Diagonal, perms PermutationSet, cb func(Table) error, opts ...Option) error {
	n := len(diagonal)
	if n < 1 {
		return ErrInvalidOrder
	}
	if err := validatePermutationSet(perms, n); err != nil {
		return err
	}

	runCtx, cancel := contextWithOptions(ctx, applyOptions(opts))
	defer cancel()

	all := precomputeInvertible(perms)
	stable := stablePermutations(diagonal, all)
	rc := computeRcRestrictions(diagonal)

	engine := &tableEngine{
		order: n,
		rc:    rc,
		perms: stable,
		table: NewTableFromDiagonal(diagonal),
		ctx:   runCtx,
		emit: func(t Table) error {
			return cb(t.Clone())
		},
	}

	return wrapCancellation(engine.run())
}

// contextWithOptions derives a runnable context from ctx and opts: a nil
// ctx defaults to context.Background(), and a WithDeadline option attaches
// a deadline on top of whatever ctx already carries.
func contextWithOptions(ctx context.Context, o Options) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if o.hasDeadline {
		return context.WithDeadline(ctx, o.deadline)
	}

	return ctx, func() {}
}

// wrapCancellation normalizes a non-nil, non-sentinel search error into
// ErrCallbackCanceled, preserving the original error as the %w-wrapped
// cause so errors.Is/errors.Unwrap still reach it.
func wrapCancellation(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrCallbackCanceled) || errors.Is(err, ErrInvalidIdentity) ||
		errors.Is(err, ErrInvalidOrder) || errors.Is(err, ErrInvalidPermutation) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrCallbackCanceled, err)
}
