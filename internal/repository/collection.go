// internal/repository/collection.go
package repository

// Collection is the durable store of one homogeneous record collection.
//
// The collection is the unit of storage: every mutation rewrites it wholesale,
// and all higher-level invariants (balance conservation, name uniqueness) are
// enforced by composing ReadAll/WriteAll correctly, not by the store itself.
type Collection[T any] interface {
	// EnsureReady guarantees the backing storage exists and is readable,
	// initializing it to an empty collection when absent. Idempotent.
	EnsureReady() error

	// ReadAll returns every persisted record in storage order. The returned
	// records are independent copies; mutating them has no effect until they
	// are passed back to WriteAll.
	ReadAll() ([]T, error)

	// WriteAll atomically replaces the persisted collection with exactly the
	// given records, in the given order. On failure the previous persisted
	// state remains intact.
	WriteAll(records []T) error

	// Append adds one record at the end of the collection. It is ReadAll
	// followed by WriteAll, so between independent writers the later write
	// wins; within one process the store serializes it.
	Append(record T) error

	// Update runs fn over the current records while holding the store's
	// exclusive scope across the whole read-compute-write sequence, then
	// persists whatever fn returns. fn returning an error aborts without
	// writing.
	Update(fn func(records []T) ([]T, error)) error
}
