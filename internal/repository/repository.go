package repository

// Error constants for the collection layer.
var (
	ErrNotFound = RepositoryError("not found")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// Collection is an insertion-ordered set of records keyed by an integer id.
// Implementations are not safe for concurrent use; the owner serialises access.
type Collection[T any] interface {
	// NextID returns max(existing ids, 0) + 1.
	NextID() int
	Append(item T)
	// Get returns the first record with the given id, or ErrNotFound.
	Get(id int) (T, error)
	// Replace overwrites the first record with the given id, or returns ErrNotFound.
	Replace(id int, item T) error
	// RemoveAll drops every record with the given id and reports how many were removed.
	RemoveAll(id int) int
	// List returns a copy of all records in insertion order.
	List() []T
	// Reset replaces the whole collection.
	Reset(items []T)
	Len() int
}
