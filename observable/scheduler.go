package observable

import "sync"

// Scheduler dispatches the tasks that wait on asynchronous computation results.
type Scheduler interface {
	Schedule(fn func())
}

// SchedulerFunc adapts a function into a Scheduler.
type SchedulerFunc func(func())

func (f SchedulerFunc) Schedule(fn func()) {
	if f == nil || fn == nil {
		return
	}
	f(fn)
}

// GoScheduler runs every task on its own goroutine.
type GoScheduler struct{}

func (GoScheduler) Schedule(fn func()) {
	if fn == nil {
		return
	}
	go fn()
}

// Queue holds tasks until Flush is called. Useful when the order in which
// async results land must be deterministic.
type Queue struct {
	mu      sync.Mutex
	pending []func()
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Schedule appends fn to the queue.
func (q *Queue) Schedule(fn func()) {
	if q == nil || fn == nil {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()
}

// Len reports how many tasks are waiting.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Flush runs queued tasks on the calling goroutine and returns the count.
// Tasks queued while flushing run in the same call.
func (q *Queue) Flush() int {
	if q == nil {
		return 0
	}
	ran := 0
	for {
		q.mu.Lock()
		pending := q.pending
		q.pending = nil
		q.mu.Unlock()
		if len(pending) == 0 {
			return ran
		}
		for _, fn := range pending {
			fn()
		}
		ran += len(pending)
	}
}
