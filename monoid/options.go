package monoid

import "time"

// Options configures optional behavior of Diagonals and Tables. The zero
// value is the default: no deadline, cancellation governed solely by the
// caller's context.Context.
type Options struct {
	deadline    time.Time
	hasDeadline bool
}

// Option configures an Options value (functional-options idiom).
type Option func(*Options)

// WithDeadline returns an Option that bounds the search to a soft time
// budget: the deadline is checked sparsely (every 4096 backtracking
// steps), mirroring the Branch-and-Bound soft deadline used elsewhere for
// exact combinatorial search. On expiry, Diagonals/Tables return the
// context's deadline-exceeded error, wrapped as ErrCallbackCanceled.
func WithDeadline(d time.Duration) Option {
	return func(o *Options) {
		o.hasDeadline = true
		o.deadline = time.Now().Add(d)
	}
}

func applyOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
