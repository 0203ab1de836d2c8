package workers

import (
	"errors"
	"fmt"
)

var (
	// ErrOffloadFailed is the root of every scheduling failure: the job was
	// not accepted, panicked, or its result did not arrive before the
	// caller's context ended.
	ErrOffloadFailed = errors.New("failed to offload job")

	ErrPoolExhausted = fmt.Errorf("%w: pool queue is full", ErrOffloadFailed)
	ErrPoolClosed    = fmt.Errorf("%w: pool is shut down", ErrOffloadFailed)
)
