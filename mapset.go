package liteset

// MapSet is the side-table variant of Set for member types that cannot
// embed Tag, such as pointers to structs owned by other packages. It keeps
// the same densely packed storage and swap-delete removal, but records slot
// indexes in a per-set map instead of on the members, trading the direct
// field access for one hash lookup per operation.
//
// T should be a reference type (pointer, interface). Value types work as
// far as the compiler is concerned, but membership is then decided by value
// equality rather than identity.
//
// MapSet is not safe for concurrent use.
type MapSet[T comparable] struct {
	// Items is the backing storage. Indexed access, len and range work
	// directly on it; mutating it bypasses the membership bookkeeping.
	Items []T

	index map[T]int
}

// NewMapSet creates an empty MapSet.
func NewMapSet[T comparable]() *MapSet[T] {
	return &MapSet[T]{index: make(map[T]int)}
}

// IndexOf returns the slot index the item currently occupies, or -1 if the
// item is not a member of this set.
func (s *MapSet[T]) IndexOf(item T) int {
	if i, ok := s.index[item]; ok {
		return i
	}
	return -1
}

// Contains reports whether the item is a member of this set.
func (s *MapSet[T]) Contains(item T) bool {
	_, ok := s.index[item]
	return ok
}

// Add appends the item to the set. Adding a member that is already present
// is a no-op.
func (s *MapSet[T]) Add(item T) {
	if _, ok := s.index[item]; ok {
		return
	}
	s.index[item] = len(s.Items)
	s.Items = append(s.Items, item)
}

// Remove removes the item from the set. Removing an item that is not a
// member is a no-op. Like Set.Remove, the last member is swapped into the
// vacated slot, so the order of the remaining members changes.
func (s *MapSet[T]) Remove(item T) {
	i, ok := s.index[item]
	if !ok {
		return
	}
	delete(s.index, item)

	last := len(s.Items) - 1
	if i != last {
		moved := s.Items[last]
		s.Items[i] = moved
		s.index[moved] = i
	}

	var zero T
	s.Items[last] = zero // Avoid memory leak
	s.Items = s.Items[:last]
}

// Len returns the number of members in the set.
func (s *MapSet[T]) Len() int {
	return len(s.Items)
}

// Clear removes all members.
func (s *MapSet[T]) Clear() {
	clear(s.index)
	clear(s.Items) // release the references
	s.Items = s.Items[:0]
}
