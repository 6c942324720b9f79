package liteset

import "sync/atomic"

// idAllocator hands out set identifiers. Identifiers are strictly
// increasing and never reused, which is what keeps the slot records of
// different sets from colliding on a shared member.
type idAllocator struct {
	next atomic.Uint64
}

// alloc returns the next identifier.
func (a *idAllocator) alloc() uint64 {
	return a.next.Add(1)
}

// setIDs is the process-wide allocator consulted by New. The atomic makes
// set creation safe from multiple goroutines; it implies nothing about the
// sets themselves, which are single-threaded.
var setIDs idAllocator
