package observable_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/delaneyj/cellparty/observable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func TestDependencyCapture(t *testing.T) {
	/*
	   a   b
	    \ /
	     c (+ captured 10)
	*/
	sys := newSystem(t)
	a := observable.New(sys, 1)
	b := observable.New(sys, 2)
	c, err := observable.NewComputed(sys, func(args ...any) (int, error) {
		return a.Get() + b.Get() + args[0].(int), nil
	}, 10)
	require.NoError(t, err)
	assert.Equal(t, 13, c.Get())
	assert.True(t, c.IsComputed())

	rec := &recorder[int]{}
	c.Subscribe(rec.handle, false)

	a.Set(4)
	assert.Equal(t, 16, c.Get())
	assert.Equal(t, []pair[int]{{16, 13}}, rec.calls)

	b.Set(3)
	assert.Equal(t, 17, c.Get())
	assert.Equal(t, pair[int]{17, 16}, rec.calls[1])
}

// should not depend on a cell that is only referenced, never read with Get
func TestUnreadDependencyIgnored(t *testing.T) {
	sys := newSystem(t)
	a := observable.New(sys, 1)

	runs := 0
	c, err := observable.NewComputed(sys, func(args ...any) (int, error) {
		runs++
		held := args[0].(*observable.Cell[int])
		return held.Peek() * 10, nil
	}, a)
	require.NoError(t, err)
	assert.Equal(t, 10, c.Get())

	a.Set(2)
	assert.Equal(t, 1, runs)
	assert.Equal(t, 10, c.Get())
	assert.Equal(t, 0, a.SubscriberCount())
}

func TestDependentComputed(t *testing.T) {
	/*
	   a
	   |
	   c
	   |
	   d
	*/
	sys := newSystem(t)
	a := observable.New(sys, 7)
	c, err := observable.NewComputed(sys, func(args ...any) (int, error) {
		return a.Get() * 2, nil
	})
	require.NoError(t, err)
	d, err := observable.NewComputed(sys, func(args ...any) (int, error) {
		return c.Get() + 1, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 15, d.Get())

	a.Set(3)
	assert.Equal(t, 6, c.Get())
	assert.Equal(t, 7, d.Get())
	assert.Equal(t, 15, d.Previous())

	a.Set(4)
	assert.Equal(t, 8, c.Get())
	assert.Equal(t, 6, c.Previous())
	assert.Equal(t, 9, d.Get())
	assert.Equal(t, 7, d.Previous())
}

// should not publish when a recomputation yields the same value
func TestEqualResultSkipsPublish(t *testing.T) {
	sys := newSystem(t)
	a := observable.New(sys, 2)
	runs := 0
	parity, err := observable.NewComputed(sys, func(args ...any) (int, error) {
		runs++
		return a.Get() % 2, nil
	})
	require.NoError(t, err)

	calls := 0
	parity.Subscribe(func(int, int) { calls++ }, false)

	a.Set(4)
	assert.Equal(t, 2, runs)
	assert.Equal(t, 0, calls)

	a.Set(5)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, parity.Get())
}

func TestNoValueSkipsWrite(t *testing.T) {
	sys := newSystem(t)
	a := observable.New(sys, 1)
	c := observable.New(sys, 3)
	calls := 0
	c.Subscribe(func(int, int) { calls++ }, false)

	err := c.SetFunc(func(args ...any) (int, error) {
		if a.Get() < 10 {
			return 0, observable.ErrNoValue
		}
		return a.Get(), nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, c.Get())
	assert.Equal(t, 0, calls)
	assert.True(t, c.IsComputed())
	assert.Equal(t, 1, a.SubscriberCount())

	a.Set(12)
	assert.Equal(t, 12, c.Get())
	assert.Equal(t, 3, c.Previous())
	assert.Equal(t, 1, calls)
}

func TestComputeError(t *testing.T) {
	sys := newSystem(t)
	a := observable.New(sys, 1)
	c := observable.New(sys, 5)
	c.Set(6)
	calls := 0
	c.Subscribe(func(int, int) { calls++ }, false)

	err := c.SetFunc(func(args ...any) (int, error) {
		return a.Get(), errBoom
	})
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, 6, c.Get())
	assert.Equal(t, 5, c.Previous())
	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, a.SubscriberCount())

	_, err = observable.NewComputed(sys, func(args ...any) (int, error) {
		return 0, errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	assert.ErrorIs(t, c.SetFunc(nil), observable.ErrNilFunc)
	assert.ErrorIs(t, c.SetAsyncFunc(nil), observable.ErrNilFunc)
}

// should route errors from dependency-triggered recomputation to the system
func TestRecomputeErrorGoesToHandler(t *testing.T) {
	var failures []error
	sys := newSystem(t, observable.WithErrorHandler(func(from any, err error) {
		failures = append(failures, err)
	}))
	a := observable.New(sys, 1)
	c, err := observable.NewComputed(sys, func(args ...any) (int, error) {
		if a.Get() > 1 {
			return 0, errBoom
		}
		return a.Get(), nil
	})
	require.NoError(t, err)

	a.Set(2)
	require.Len(t, failures, 1)
	assert.ErrorIs(t, failures[0], errBoom)
	assert.Equal(t, 1, c.Get())
}

func TestComputePanicPropagates(t *testing.T) {
	sys := newSystem(t)
	a := observable.New(sys, 1)
	c := observable.New(sys, 0)

	assert.PanicsWithValue(t, "bad", func() {
		c.SetFunc(func(args ...any) (int, error) {
			a.Get()
			panic("bad")
		})
	})
	assert.Equal(t, 0, a.SubscriberCount())

	// tracking still works afterwards
	b := observable.New(sys, 2)
	d, err := observable.NewComputed(sys, func(args ...any) (int, error) {
		return b.Get(), nil
	})
	require.NoError(t, err)
	b.Set(3)
	assert.Equal(t, 3, d.Get())
	assert.Equal(t, 0, a.SubscriberCount())
}

func TestModeSwitch(t *testing.T) {
	sys := newSystem(t)
	a := observable.New(sys, 1)
	c, err := observable.NewComputed(sys, func(args ...any) (int, error) {
		return a.Get() + 1, nil
	})
	require.NoError(t, err)
	assert.True(t, c.IsComputed())

	c.Set(100)
	assert.False(t, c.IsComputed())

	// the old dependency handler is still there but has nothing to run
	a.Set(5)
	assert.Equal(t, 100, c.Get())

	require.NoError(t, c.SetFunc(func(args ...any) (int, error) {
		return a.Get() * 3, nil
	}))
	assert.True(t, c.IsComputed())
	assert.Equal(t, 15, c.Get())
	assert.Equal(t, 100, c.Previous())
}

// should leave SetSilently values in place until the next recomputation
func TestSilentUpdateOnComputed(t *testing.T) {
	sys := newSystem(t)
	a := observable.New(sys, 1)
	c, err := observable.NewComputed(sys, func(args ...any) (int, error) {
		return a.Get(), nil
	})
	require.NoError(t, err)

	c.SetSilently(50)
	assert.Equal(t, 50, c.Get())
	assert.True(t, c.IsComputed())

	a.Set(2)
	assert.Equal(t, 2, c.Get())
	assert.Equal(t, 50, c.Previous())
}

func TestSubscriptionGrowth(t *testing.T) {
	t.Run("per pass", func(t *testing.T) {
		sys := newSystem(t)
		a := observable.New(sys, 0)
		runs := 0
		_, err := observable.NewComputed(sys, func(args ...any) (int, error) {
			runs++
			return a.Get(), nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, a.SubscriberCount())

		// every handler recomputes and every recomputation subscribes again
		a.Set(1)
		assert.Equal(t, 2, a.SubscriberCount())
		assert.Equal(t, 2, runs)
		a.Set(2)
		assert.Equal(t, 4, a.SubscriberCount())
		assert.Equal(t, 4, runs)
		a.Set(3)
		assert.Equal(t, 8, a.SubscriberCount())
		assert.Equal(t, 8, runs)
	})

	t.Run("rewriting the func", func(t *testing.T) {
		sys := newSystem(t)
		a := observable.New(sys, 0)
		c := observable.New(sys, 0)
		fn := func(args ...any) (int, error) { return a.Get() + 1, nil }

		require.NoError(t, c.SetFunc(fn))
		require.NoError(t, c.SetFunc(fn))
		assert.Equal(t, 2, a.SubscriberCount())
	})

	t.Run("reuse", func(t *testing.T) {
		sys := newSystem(t, observable.WithSubscriptionReuse())
		a := observable.New(sys, 0)
		runs := 0
		c, err := observable.NewComputed(sys, func(args ...any) (int, error) {
			runs++
			return a.Get(), nil
		})
		require.NoError(t, err)

		for i := 1; i <= 5; i++ {
			a.Set(i)
			assert.Equal(t, 1, a.SubscriberCount())
			assert.Equal(t, i+1, runs)
		}
		assert.Equal(t, 5, c.Get())

		require.NoError(t, c.SetFunc(func(args ...any) (int, error) { return a.Get() * 2, nil }))
		assert.Equal(t, 1, a.SubscriberCount())
	})
}

// should keep reads of a computation started inside another one separate
func TestNestedComputation(t *testing.T) {
	sys := newSystem(t)
	a := observable.New(sys, 1)
	b := observable.New(sys, 10)

	var inner *observable.Cell[int]
	outer, err := observable.NewComputed(sys, func(args ...any) (int, error) {
		if inner == nil {
			var err error
			inner, err = observable.NewComputed(sys, func(args ...any) (int, error) {
				return b.Get() * 2, nil
			})
			if err != nil {
				return 0, err
			}
		}
		return a.Get() + 1, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, outer.Get())
	assert.Equal(t, 20, inner.Get())
	assert.Equal(t, 1, a.SubscriberCount())
	assert.Equal(t, 1, b.SubscriberCount())

	b.Set(11)
	assert.Equal(t, 22, inner.Get())
	assert.Equal(t, 2, outer.Get())
	assert.Equal(t, 1, a.SubscriberCount())
}

func TestUntrack(t *testing.T) {
	sys := newSystem(t)
	a := observable.New(sys, 1)
	b := observable.New(sys, 2)

	c, err := observable.NewComputed(sys, func(args ...any) (int, error) {
		var fromB int
		observable.Untrack(func() {
			fromB = b.Get()
		})
		return a.Get() + fromB, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, c.Get())
	assert.Equal(t, 1, a.SubscriberCount())
	assert.Equal(t, 0, b.SubscriberCount())

	b.Set(5)
	assert.Equal(t, 3, c.Get())
	a.Set(2)
	assert.Equal(t, 7, c.Get())
}

// should not attribute reads on one goroutine to a computation on another
func TestConcurrentComputations(t *testing.T) {
	sys := newSystem(t)
	const workers = 8

	sources := make([]*observable.Cell[int], workers)
	computed := make([]*observable.Cell[int], workers)
	for i := range sources {
		sources[i] = observable.New(sys, i)
	}

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			c, err := observable.NewComputed(sys, func(args ...any) (int, error) {
				return sources[i].Get() * 100, nil
			})
			if assert.NoError(t, err) {
				computed[i] = c
			}
		}(i)
	}
	close(start)
	wg.Wait()

	for i := 0; i < workers; i++ {
		assert.Equal(t, 1, sources[i].SubscriberCount(), "source %d", i)
		assert.Equal(t, i*100, computed[i].Get())
	}

	var writers sync.WaitGroup
	for i := 0; i < workers; i++ {
		writers.Add(1)
		go func(i int) {
			defer writers.Done()
			sources[i].Set(i + 1)
		}(i)
	}
	writers.Wait()
	for i := 0; i < workers; i++ {
		assert.Equal(t, (i+1)*100, computed[i].Get())
	}
}
