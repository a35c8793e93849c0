package vkloader

import "sync/atomic"

// refCount counts the references to a loader node: the one handed to the
// creator plus one per child node. Safe for concurrent use.
type refCount struct {
	n      atomic.Int32
	closed atomic.Bool // creator's reference already released
}

func (r *refCount) init() { r.n.Store(1) }

// retain adds a reference. It fails once the count has reached zero.
func (r *refCount) retain() bool {
	for {
		n := r.n.Load()
		if n <= 0 {
			return false
		}
		if r.n.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// release drops a reference and reports whether it was the last one.
func (r *refCount) release() bool {
	return r.n.Add(-1) == 0
}

// releaseOwner drops the creator's reference exactly once.
func (r *refCount) releaseOwner() (last bool, err error) {
	if !r.closed.CompareAndSwap(false, true) {
		return false, ErrClosed
	}
	return r.release(), nil
}

// count returns the current number of references.
func (r *refCount) count() int32 { return r.n.Load() }
