package observable

import (
	"runtime"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
)

// dependency is the type-erased side of a cell that a computation can
// subscribe its recompute handler to.
type dependency interface {
	onChange(fn func())
}

// frame records the cells read during one computation pass.
type frame struct {
	seen    mapset.Set[dependency]
	pending []dependency
}

func newFrame() *frame {
	return &frame{seen: mapset.NewThreadUnsafeSet[dependency]()}
}

func (f *frame) record(dep dependency) {
	if f.seen.Add(dep) {
		f.pending = append(f.pending, dep)
	}
}

// frames holds the stack of active frames per goroutine. Only the goroutine
// owning a stack ever touches it, so the stacks themselves need no lock.
var frames sync.Map

func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	// "goroutine <id> [running]:..."
	var id uint64
	for i := len("goroutine "); i < n; i++ {
		if buf[i] == ' ' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}

// track pushes a fresh frame for the calling goroutine and returns it along
// with the func that pops it. The pop must run on every exit path.
func track() (*frame, func()) {
	gid := goroutineID()
	f := newFrame()

	var stack []*frame
	if v, ok := frames.Load(gid); ok {
		stack = v.([]*frame)
	}
	frames.Store(gid, append(stack, f))

	return f, func() {
		v, ok := frames.Load(gid)
		if !ok {
			return
		}
		stack := v.([]*frame)
		if len(stack) <= 1 {
			frames.Delete(gid)
			return
		}
		frames.Store(gid, stack[:len(stack)-1])
	}
}

// activeFrame returns the innermost frame of the calling goroutine, if any.
func activeFrame() *frame {
	v, ok := frames.Load(goroutineID())
	if !ok {
		return nil
	}
	stack := v.([]*frame)
	if len(stack) == 0 {
		return nil
	}
	return stack[len(stack)-1]
}

// Untrack runs fn with dependency tracking paused on the calling goroutine,
// so reads inside fn are not attributed to the enclosing computation.
func Untrack(fn func()) {
	gid := goroutineID()
	v, ok := frames.Load(gid)
	if !ok {
		fn()
		return
	}
	frames.Delete(gid)
	defer frames.Store(gid, v)
	fn()
}
