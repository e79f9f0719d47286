// Package observable provides cells holding a current and previous value that
// notify subscribers on change, with computed cells that track the cells they
// read and recompute when those change.
package observable

import (
	"sync"

	"github.com/inconshreveable/log15"
	"github.com/prometheus/client_golang/prometheus"
)

// OnErrorFunc receives failures that have no caller to return to: rejected
// async results and errors from recomputations triggered by a dependency.
type OnErrorFunc func(from any, err error)

// System is the runtime shared by a set of cells.
type System struct {
	scheduler Scheduler
	log       log15.Logger
	onError   OnErrorFunc
	metrics   *metrics

	reuseSubscriptions bool
}

// Option configures a System.
type Option func(*System)

// WithScheduler sets where async results are awaited. Defaults to GoScheduler.
func WithScheduler(s Scheduler) Option {
	return func(sys *System) {
		if s != nil {
			sys.scheduler = s
		}
	}
}

func WithLogger(l log15.Logger) Option {
	return func(sys *System) {
		if l != nil {
			sys.log = l
		}
	}
}

// WithErrorHandler installs the sink for asynchronous failures. Without one
// they are logged at error level.
func WithErrorHandler(fn OnErrorFunc) Option {
	return func(sys *System) {
		sys.onError = fn
	}
}

// WithSubscriptionReuse makes a computed cell subscribe to each dependency at
// most once. By default every computation pass adds a new subscription to
// every cell it read, so a dependency that keeps changing accumulates
// recompute handlers: each write runs all of them and each run adds another.
// Subscriptions are never removed in either mode.
func WithSubscriptionReuse() Option {
	return func(sys *System) {
		sys.reuseSubscriptions = true
	}
}

// WithMetrics registers the system's collectors with reg. Collectors already
// registered there by another System are shared.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(sys *System) {
		if reg != nil {
			sys.metrics.register(reg)
		}
	}
}

// NewSystem returns a System with a GoScheduler and the package logger
// unless opts say otherwise.
func NewSystem(opts ...Option) *System {
	sys := &System{
		scheduler: GoScheduler{},
		log:       log15.New("pkg", "observable"),
		metrics:   newMetrics(),
	}
	for _, opt := range opts {
		opt(sys)
	}
	return sys
}

var defaultSystem = sync.OnceValue(func() *System { return NewSystem() })

// orDefault returns sys, or the shared default System when sys is nil.
func orDefault(sys *System) *System {
	if sys == nil {
		return defaultSystem()
	}
	return sys
}

// Logger returns the logger cells of this system write to.
func (sys *System) Logger() log15.Logger {
	return sys.log
}

func (sys *System) fail(from any, err error) {
	if sys.onError != nil {
		sys.onError(from, err)
		return
	}
	sys.log.Error("unhandled observable error", "err", err)
}
