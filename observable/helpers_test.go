package observable_test

import (
	"testing"

	"github.com/delaneyj/cellparty/observable"
	"github.com/inconshreveable/log15"
	"github.com/stretchr/testify/assert"
)

func quietLogger() log15.Logger {
	l := log15.New()
	l.SetHandler(log15.DiscardHandler())
	return l
}

// newSystem fails the test on any async error unless opts install their own
// error handler.
func newSystem(t *testing.T, opts ...observable.Option) *observable.System {
	t.Helper()
	base := []observable.Option{
		observable.WithLogger(quietLogger()),
		observable.WithErrorHandler(func(from any, err error) {
			assert.FailNow(t, err.Error())
		}),
	}
	return observable.NewSystem(append(base, opts...)...)
}

type pair[T comparable] struct {
	current, previous T
}

// recorder collects every (current, previous) pair a handler receives.
type recorder[T comparable] struct {
	calls []pair[T]
}

func (r *recorder[T]) handle(current, previous T) {
	r.calls = append(r.calls, pair[T]{current, previous})
}
