// Package obj manages handles to opaque values owned by an embedded host
// runtime.
//
// The host runtime counts references itself and its counters are not safe
// to touch concurrently: every mutation serializes on one package-wide
// exclusivity lock. Keep critical sections to a single handle at a time.
package obj

import (
	"fmt"
	"sync"

	"go.uber.org/atomic"
)

// Ref is an opaque handle to a host-runtime value.
type Ref uint64

// none is the process-wide sentinel standing for "no value". The host
// runtime owns it; it is never registered or released.
const none Ref = 1

type entry struct {
	value any
	refs  int
}

var (
	mu      sync.Mutex
	alive   = atomic.NewBool(true)
	nextRef = uint64(none)
	objects = map[Ref]*entry{}
)

// ensureAlive panics if the host runtime was torn down. There is no
// degraded mode: a dead runtime invalidates every handle at once.
func ensureAlive() {
	if !alive.Load() {
		panic("obj: host runtime is not available")
	}
}

// None returns the sentinel handle. Acquires the exclusivity lock, since
// the sentinel is handed out by the runtime like any other value.
func None() Ref {
	ensureAlive()
	mu.Lock()
	defer mu.Unlock()
	return none
}

// IsNone reports whether r is the sentinel handle.
func IsNone(r Ref) bool { return r == none }

// Register hands v over to the runtime and returns a handle holding one
// reference.
func Register(v any) Ref {
	ensureAlive()
	mu.Lock()
	defer mu.Unlock()
	nextRef++
	r := Ref(nextRef)
	objects[r] = &entry{value: v, refs: 1}
	return r
}

// Clone returns r with its reference count incremented. Cloning the
// sentinel is free: it is not counted.
func Clone(r Ref) Ref {
	ensureAlive()
	mu.Lock()
	defer mu.Unlock()
	if r == none {
		return none
	}
	lookup(r).refs++
	return r
}

// Release drops one reference; the value is discarded when the last
// reference goes. Releasing the sentinel is a no-op.
func Release(r Ref) {
	ensureAlive()
	mu.Lock()
	defer mu.Unlock()
	if r == none {
		return
	}
	e := lookup(r)
	e.refs--
	if e.refs == 0 {
		delete(objects, r)
	}
}

// RefCount returns current reference count of r, 0 for the sentinel.
func RefCount(r Ref) int {
	ensureAlive()
	mu.Lock()
	defer mu.Unlock()
	if r == none {
		return 0
	}
	return lookup(r).refs
}

// Value returns the value behind r, nil for the sentinel.
func Value(r Ref) any {
	ensureAlive()
	mu.Lock()
	defer mu.Unlock()
	if r == none {
		return nil
	}
	return lookup(r).value
}

func lookup(r Ref) *entry {
	e, ok := objects[r]
	if !ok {
		panic(fmt.Sprintf("obj: dangling handle %d", r))
	}
	return e
}

// Shutdown tears the runtime down. Any later touch of any handle panics.
// Intended for tests exercising teardown semantics.
func Shutdown() {
	alive.Store(false)
}
