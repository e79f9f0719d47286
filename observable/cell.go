package observable

import (
	"sync"
	"sync/atomic"

	mapset "github.com/deckarep/golang-set/v2"
)

// Handler receives the current and previous value of a cell.
type Handler[T comparable] func(current, previous T)

// Subscription is the identity of one registered handler. Subscribing the
// same func twice yields two subscriptions.
type Subscription[T comparable] struct {
	handler Handler[T]
	removed atomic.Bool
}

// Cell holds a current and previous value and notifies subscribers when a
// write changes it. Cells are built with New, NewComputed or NewAsync; the
// zero Cell is not usable.
type Cell[T comparable] struct {
	sys *System

	mu       sync.Mutex
	value    T
	previous T
	// hasValue is false until a computed cell receives its first result.
	// An unset cell never equals anything, so that first write always lands.
	hasValue    bool
	subs        []*Subscription[T]
	computation *computation[T]
	// subscribed holds the dependencies already carrying a recompute handler
	// for this cell, used only with WithSubscriptionReuse.
	subscribed mapset.Set[dependency]
}

// New returns a plain cell holding v. A nil sys uses a shared default System.
func New[T comparable](sys *System, v T) *Cell[T] {
	return &Cell[T]{
		sys:      orDefault(sys),
		value:    v,
		hasValue: true,
	}
}

// Get returns the current value. Inside a computation pass the cell is
// recorded as a dependency of the computing cell.
func (c *Cell[T]) Get() T {
	if f := activeFrame(); f != nil {
		f.record(c)
	}
	return c.Peek()
}

// Peek returns the current value without recording a dependency.
func (c *Cell[T]) Peek() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Previous returns the value held before the last accepted write.
func (c *Cell[T]) Previous() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.previous
}

// Set stores v and publishes, unless v == the current value. Any computation
// is dropped and the cell returns to plain mode.
func (c *Cell[T]) Set(v T) {
	c.write(v, true)
}

func (c *Cell[T]) write(v T, dropComputation bool) {
	c.mu.Lock()
	if c.hasValue && c.value == v {
		c.mu.Unlock()
		return
	}
	c.previous = c.value
	c.value = v
	c.hasValue = true
	if dropComputation {
		c.computation = nil
	}
	c.mu.Unlock()

	c.Publish()
}

// SetSilently replaces the value without the equality check or a publish.
func (c *Cell[T]) SetSilently(v T) {
	c.mu.Lock()
	c.value = v
	c.hasValue = true
	c.mu.Unlock()
}

// SetPreviousSilently replaces the previous value without a publish.
func (c *Cell[T]) SetPreviousSilently(v T) {
	c.mu.Lock()
	c.previous = v
	c.mu.Unlock()
}

// Publish calls every subscriber, in subscription order, with the current
// and previous values. Subscriptions added during the pass are not called;
// ones removed during the pass are skipped.
func (c *Cell[T]) Publish() {
	c.mu.Lock()
	subs := make([]*Subscription[T], len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	c.sys.metrics.publishes.Inc()
	for _, sub := range subs {
		if sub.removed.Load() {
			continue
		}
		c.mu.Lock()
		current, previous := c.value, c.previous
		c.mu.Unlock()
		sub.handler(current, previous)
	}
}

// Subscribe registers h. With immediate set, h is also called right away with
// the current pair before Subscribe returns.
func (c *Cell[T]) Subscribe(h Handler[T], immediate bool) *Subscription[T] {
	sub := &Subscription[T]{handler: h}

	c.mu.Lock()
	c.subs = append(c.subs, sub)
	current, previous := c.value, c.previous
	c.mu.Unlock()
	c.sys.metrics.subscriptions.Inc()

	if immediate {
		h(current, previous)
	}
	return sub
}

// Unsubscribe removes sub. Unknown or already removed subscriptions are ignored.
func (c *Cell[T]) Unsubscribe(sub *Subscription[T]) {
	if sub == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, s := range c.subs {
		if s == sub {
			s.removed.Store(true)
			c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
			c.sys.metrics.subscriptions.Dec()
			return
		}
	}
}

// SubscriberCount reports registered subscriptions, including the ones
// computed cells hold on their dependencies.
func (c *Cell[T]) SubscriberCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}

// IsComputed reports whether the cell's value is derived from a function.
func (c *Cell[T]) IsComputed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.computation != nil
}

func (c *Cell[T]) onChange(fn func()) {
	c.Subscribe(func(T, T) { fn() }, false)
}
