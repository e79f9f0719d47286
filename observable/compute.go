package observable

import (
	"context"
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

var (
	// ErrNoValue is returned by a Func that has nothing to store this pass.
	// The cell keeps its value and nothing is published.
	ErrNoValue = errors.New("observable: no value")

	// ErrNilFunc is returned by a computed write given a nil func.
	ErrNilFunc = errors.New("observable: nil computation func")
)

// Func derives a cell's value from the args captured at write time and from
// whatever cells it reads with Get.
type Func[T comparable] func(args ...any) (T, error)

// AsyncFunc is a Func whose result arrives later. Only reads made before it
// returns are tracked. A nil Awaitable means there is nothing to store.
type AsyncFunc[T comparable] func(args ...any) (Awaitable[T], error)

type outcome[T comparable] struct {
	value   T
	ok      bool
	pending Awaitable[T]
}

type computation[T comparable] struct {
	eval func() (outcome[T], error)
}

func syncComputation[T comparable](fn Func[T], args []any) *computation[T] {
	return &computation[T]{eval: func() (outcome[T], error) {
		v, err := fn(args...)
		if errors.Is(err, ErrNoValue) {
			return outcome[T]{}, nil
		}
		if err != nil {
			return outcome[T]{}, err
		}
		return outcome[T]{value: v, ok: true}, nil
	}}
}

func asyncComputation[T comparable](fn AsyncFunc[T], args []any) *computation[T] {
	return &computation[T]{eval: func() (outcome[T], error) {
		a, err := fn(args...)
		if err != nil {
			return outcome[T]{}, err
		}
		return outcome[T]{pending: a}, nil
	}}
}

// NewComputed returns a cell whose value is derived from fn.
func NewComputed[T comparable](sys *System, fn Func[T], args ...any) (*Cell[T], error) {
	c := &Cell[T]{sys: orDefault(sys)}
	if err := c.SetFunc(fn, args...); err != nil {
		return nil, err
	}
	return c, nil
}

// NewAsync returns a cell whose value is the eventual result of fn. It holds
// the zero value until the first result lands.
func NewAsync[T comparable](sys *System, fn AsyncFunc[T], args ...any) (*Cell[T], error) {
	c := &Cell[T]{sys: orDefault(sys)}
	if err := c.SetAsyncFunc(fn, args...); err != nil {
		return nil, err
	}
	return c, nil
}

// SetFunc switches the cell to computed mode and evaluates fn(args...) once.
// Every cell read with Get during the evaluation gets a subscription that
// re-runs the computation when it changes.
//
// Each pass subscribes again to what it read, and earlier subscriptions are
// never removed, so a dependency accumulates one subscription per pass unless
// the system was built WithSubscriptionReuse.
func (c *Cell[T]) SetFunc(fn Func[T], args ...any) error {
	if fn == nil {
		return ErrNilFunc
	}
	return c.install(syncComputation(fn, args))
}

// SetAsyncFunc is SetFunc for functions returning an Awaitable. The result is
// awaited on the system's scheduler after SetAsyncFunc returns and written
// when it resolves. A rejection goes to the system's error handler.
func (c *Cell[T]) SetAsyncFunc(fn AsyncFunc[T], args ...any) error {
	if fn == nil {
		return ErrNilFunc
	}
	return c.install(asyncComputation(fn, args))
}

func (c *Cell[T]) install(comp *computation[T]) error {
	c.mu.Lock()
	c.computation = comp
	c.mu.Unlock()
	return c.compute(comp)
}

// recompute re-runs the current computation, if the cell still has one.
func (c *Cell[T]) recompute() {
	c.mu.Lock()
	comp := c.computation
	c.mu.Unlock()
	if comp == nil {
		return
	}
	if err := c.compute(comp); err != nil {
		c.sys.fail(c, err)
	}
}

func (c *Cell[T]) compute(comp *computation[T]) error {
	deps, out, err := c.evaluate(comp)
	if err != nil {
		return fmt.Errorf("computation failed: %w", err)
	}

	if out.ok {
		c.write(out.value, false)
	}
	for _, dep := range c.unsubscribed(deps) {
		dep.onChange(c.recompute)
	}
	if out.pending != nil {
		c.await(out.pending)
	}
	return nil
}

func (c *Cell[T]) unsubscribed(deps []dependency) []dependency {
	if !c.sys.reuseSubscriptions || len(deps) == 0 {
		return deps
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.subscribed == nil {
		c.subscribed = mapset.NewThreadUnsafeSet[dependency]()
	}
	fresh := deps[:0]
	for _, dep := range deps {
		if c.subscribed.Add(dep) {
			fresh = append(fresh, dep)
		}
	}
	return fresh
}

// evaluate runs one tracked pass. The frame is popped on every way out of
// comp.eval, panics included.
func (c *Cell[T]) evaluate(comp *computation[T]) ([]dependency, outcome[T], error) {
	f, release := track()
	defer release()

	c.sys.metrics.computations.Inc()
	out, err := comp.eval()
	return f.pending, out, err
}

func (c *Cell[T]) await(a Awaitable[T]) {
	c.sys.scheduler.Schedule(func() {
		v, err := a.Await(context.Background())
		if err != nil {
			c.sys.metrics.asyncResults.WithLabelValues("rejected").Inc()
			c.sys.fail(c, fmt.Errorf("async computation rejected: %w", err))
			return
		}
		c.sys.metrics.asyncResults.WithLabelValues("resolved").Inc()
		c.write(v, false)
	})
}
