package workers

import (
	"context"
	"fmt"

	"github.com/MKhiriev/trade-journal/internal/logger"
)

type result[T any] struct {
	value T
	err   error
}

// Do runs fn on o and waits for its result or for ctx to end, whichever
// comes first.
//
// Scheduling failures, a panic inside fn and an expired ctx are reported as
// errors wrapping [ErrOffloadFailed]. The error returned by fn itself is
// passed through unchanged. When ctx ends first the job still completes and
// its result is discarded.
func Do[T any](ctx context.Context, o Offloader, fn func() (T, error)) (T, error) {
	var zero T

	if err := ctx.Err(); err != nil {
		return zero, fmt.Errorf("%w: %w", ErrOffloadFailed, err)
	}

	// buffered so the job never blocks on a caller that stopped waiting
	done := make(chan result[T], 1)

	err := o.Submit(ctx, func() {
		var res result[T]
		defer func() {
			if r := recover(); r != nil {
				logger.FromContext(context.WithoutCancel(ctx)).Error().
					Any("panic", r).
					Msg("offloaded job panicked")
				res = result[T]{err: fmt.Errorf("%w: job panicked: %v", ErrOffloadFailed, r)}
			}
			done <- res
		}()

		res.value, res.err = fn()
	})
	if err != nil {
		return zero, err
	}

	select {
	case res := <-done:
		return res.value, res.err
	case <-ctx.Done():
		return zero, fmt.Errorf("%w: %w", ErrOffloadFailed, ctx.Err())
	}
}
