// Package liteset provides a specialized unordered collection for
// reference-type values with O(1) membership testing, insertion and
// removal, aimed at hot paths that repeatedly build and tear down small
// sets of objects.
//
// A general-purpose hash set pays for an index structure per set and for
// hashing on every operation. A Set avoids both: members are stored in a
// densely packed slice, and each member records its own slot index in an
// embedded Tag, keyed by the owning set's process-unique identifier.
// Membership testing is a field read, and the same object can belong to
// any number of sets at once.
//
// # Usage
//
// Embed Tag in the member struct and store pointers in the set:
//
//	type Node struct {
//	    liteset.Tag
//	    Name string // any extra fields are fine; the set ignores them
//	}
//
//	open := liteset.New[*Node]()
//	open.Add(n)
//	if open.Contains(n) { ... }
//	open.Remove(n)
//
// Reads go straight to the backing slice:
//
//	for _, n := range open.Items {
//	    ...
//	}
//	first := open.Items[0]
//	n := len(open.Items)
//
// # Ordering
//
// Members keep insertion order only until the first removal: Remove swaps
// the last member into the vacated slot (swap-delete) so that removal stays
// O(1). An order-preserving shift would be O(n) and is deliberately not
// offered.
//
// # Foreign member types
//
// When the member type cannot embed Tag, use MapSet. It has the same
// storage layout and semantics but keeps the slot indexes in a per-set side
// table, costing one hash lookup per operation instead of a field read.
//
// # Concurrency
//
// Sets are not safe for concurrent use. Creating sets from multiple
// goroutines is safe; mutating a set, or a shared member's annotations,
// from multiple goroutines without external synchronization is not.
package liteset
