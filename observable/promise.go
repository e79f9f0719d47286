package observable

import (
	"context"

	"github.com/asmsh/promise"
)

// Promised adapts a promise.Promise into an Awaitable. Error and Panic
// states come back from Await as errors; a panic matches
// promise.ErrPromisePanicked.
type Promised[T any] struct {
	p *promise.Promise[T]
}

func FromPromise[T any](p *promise.Promise[T]) *Promised[T] {
	return &Promised[T]{p: p}
}

// Go runs fn on its own goroutine.
func Go[T any](fn func() (T, error)) *Promised[T] {
	return FromPromise(promise.GoFunc[T, any](fn))
}

// Resolved returns an awaitable already holding v.
func Resolved[T any](v T) *Promised[T] {
	return FromPromise(promise.Wrap(promise.ValRes(v)))
}

// Rejected returns an awaitable already failed with err.
func Rejected[T any](err error) *Promised[T] {
	return FromPromise(promise.Wrap(promise.ErrRes[T](err)))
}

// Promise returns the wrapped promise, for chaining with Follow or Callback.
func (a *Promised[T]) Promise() *promise.Promise[T] {
	return a.p
}

func (a *Promised[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-a.p.WaitChan():
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}

	res := a.p.WaitRes()
	if err := res.Err(); err != nil {
		var zero T
		return zero, err
	}
	return res.Val(), nil
}
