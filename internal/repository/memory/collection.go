// internal/repository/memory/collection.go
package memory

import (
	"medpractice/doctor-dashboard/internal/domain"
	"medpractice/doctor-dashboard/internal/repository"
)

// collection implements repository.Collection over a slice.
type collection[T any] struct {
	items []T
	idOf  func(T) int
	clone func(T) T
}

// NewCollection creates a collection seeded with items. idOf extracts a record's id;
// clone, if non-nil, is applied on every copy in and out so callers never share memory with the store.
func NewCollection[T any](idOf func(T) int, clone func(T) T, items ...T) repository.Collection[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	c := &collection[T]{idOf: idOf, clone: clone}
	c.Reset(items)
	return c
}

func (c *collection[T]) NextID() int {
	maxID := 0
	for _, it := range c.items {
		if id := c.idOf(it); id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

func (c *collection[T]) Append(item T) {
	c.items = append(c.items, c.clone(item))
}

func (c *collection[T]) Get(id int) (T, error) {
	for _, it := range c.items {
		if c.idOf(it) == id {
			return c.clone(it), nil
		}
	}
	var zero T
	return zero, repository.ErrNotFound
}

func (c *collection[T]) Replace(id int, item T) error {
	for i, it := range c.items {
		if c.idOf(it) == id {
			c.items[i] = c.clone(item)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (c *collection[T]) RemoveAll(id int) int {
	kept := c.items[:0]
	removed := 0
	for _, it := range c.items {
		if c.idOf(it) == id {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	// Clear the tail so dropped records can be collected.
	var zero T
	for i := len(kept); i < len(c.items); i++ {
		c.items[i] = zero
	}
	c.items = kept
	return removed
}

func (c *collection[T]) List() []T {
	out := make([]T, len(c.items))
	for i, it := range c.items {
		out[i] = c.clone(it)
	}
	return out
}

func (c *collection[T]) Reset(items []T) {
	c.items = make([]T, 0, len(items))
	for _, it := range items {
		c.items = append(c.items, c.clone(it))
	}
}

func (c *collection[T]) Len() int {
	return len(c.items)
}

// NewDoctorCollection, NewPatientCollection, NewAppointmentCollection and
// NewTrainingCollection bind the generic collection to the dashboard's record types.

func NewDoctorCollection(items ...domain.Doctor) repository.Collection[domain.Doctor] {
	return NewCollection(func(d domain.Doctor) int { return d.ID }, nil, items...)
}

func NewPatientCollection(items ...domain.Patient) repository.Collection[domain.Patient] {
	return NewCollection(func(p domain.Patient) int { return p.ID }, domain.Patient.Clone, items...)
}

func NewAppointmentCollection(items ...domain.Appointment) repository.Collection[domain.Appointment] {
	return NewCollection(func(a domain.Appointment) int { return a.ID }, nil, items...)
}

func NewTrainingCollection(items ...domain.Training) repository.Collection[domain.Training] {
	return NewCollection(func(t domain.Training) int { return t.ID }, nil, items...)
}
