package liteset

// Tag carries the per-set slot annotations for a member value.
//
// Embed Tag in any struct whose pointers will be stored in a Set. The
// embedding struct may carry arbitrary additional fields; the set never
// reads them. The zero Tag is ready to use — the slot table is allocated
// on first membership.
type Tag struct {
	slots map[uint64]int
}

// tag returns the Tag itself. It is the (unexported) accessor that makes
// pointers to Tag-embedding structs satisfy Member.
func (t *Tag) tag() *Tag { return t }

// slot returns the slot index recorded for the given set identifier.
func (t *Tag) slot(id uint64) (int, bool) {
	i, ok := t.slots[id]
	return i, ok
}

// setSlot records the slot index for the given set identifier.
func (t *Tag) setSlot(id uint64, i int) {
	if t.slots == nil {
		t.slots = make(map[uint64]int, 1)
	}
	t.slots[id] = i
}

// clearSlot removes the record for the given set identifier.
func (t *Tag) clearSlot(id uint64) {
	delete(t.slots, id)
}

// Member is satisfied by pointers to structs that embed Tag.
//
// The constraint rules out primitive values at compile time: membership
// bookkeeping needs a mutable location on the member, which only a
// reference type can provide.
type Member interface {
	tag() *Tag
}

// Set is a densely packed collection of unique members with O(1) Add,
// Remove and IndexOf. Instead of keeping a per-set index map, each member
// records its own slot index in its embedded Tag, keyed by the set's
// process-unique identifier. The same member may therefore belong to any
// number of sets at once without the records colliding.
//
// Members stay in insertion order until the first removal: Remove swaps
// the last member into the vacated slot (swap-delete) to stay O(1).
//
// Set is not safe for concurrent use.
type Set[T Member] struct {
	// Items is the backing storage. Indexed access, len and range work
	// directly on it; mutating it bypasses the membership bookkeeping.
	Items []T

	id uint64
}

// New creates an empty Set with a fresh identifier from the process-wide
// allocator.
func New[T Member]() *Set[T] {
	return &Set[T]{id: setIDs.alloc()}
}

// IndexOf returns the slot index the item currently occupies, or -1 if the
// item is not a member of this set.
func (s *Set[T]) IndexOf(item T) int {
	if i, ok := item.tag().slot(s.id); ok {
		return i
	}
	return -1
}

// Contains reports whether the item is a member of this set.
func (s *Set[T]) Contains(item T) bool {
	_, ok := item.tag().slot(s.id)
	return ok
}

// Add appends the item to the set. Adding a member that is already present
// is a no-op.
func (s *Set[T]) Add(item T) {
	t := item.tag()
	if _, ok := t.slot(s.id); ok {
		return
	}
	t.setSlot(s.id, len(s.Items))
	s.Items = append(s.Items, item)
}

// Remove removes the item from the set. Removing an item that is not a
// member is a no-op.
//
// The last member is swapped into the vacated slot, so the order of the
// remaining members changes. An order-preserving shift would be O(n);
// swap-delete keeps removal O(1).
func (s *Set[T]) Remove(item T) {
	t := item.tag()
	i, ok := t.slot(s.id)
	if !ok {
		return
	}
	t.clearSlot(s.id)

	last := len(s.Items) - 1
	if i != last {
		moved := s.Items[last]
		s.Items[i] = moved
		moved.tag().setSlot(s.id, i)
	}

	var zero T
	s.Items[last] = zero // Avoid memory leak
	s.Items = s.Items[:last]
}

// Len returns the number of members in the set.
func (s *Set[T]) Len() int {
	return len(s.Items)
}

// Clear removes all members. Every member's annotation for this set is
// erased, so cleared members can be re-added later.
func (s *Set[T]) Clear() {
	for _, item := range s.Items {
		item.tag().clearSlot(s.id)
	}
	clear(s.Items) // release the references
	s.Items = s.Items[:0]
}
