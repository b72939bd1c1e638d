// Package store provides the ordered in-memory collection that backs both
// programs.
//
// Lookups are a linear scan with case-sensitive exact matching on the record
// key; the first match wins, so duplicate ids loaded from a damaged file are
// tolerated. The store is not safe for concurrent use.
package store

// Keyed is implemented by every record type the store can hold.
type Keyed interface {
	Key() string
}

// ─────────────────────────────────────────────────────────────────────────────
// Store owns an ordered collection of records.
//
// WHY []*T AND NOT []T?
// ─────────────────────
// Find hands out a pointer into the store so an update (new quantity, new
// scores) changes the stored record directly. A pointer into a []T would
// go stale when append reallocates the backing array; a pointer to a
// separately allocated T never moves.
// ─────────────────────────────────────────────────────────────────────────────
type Store[T Keyed] struct {
	records []*T
}

// New returns a store holding a copy of records, in order.
func New[T Keyed](records []T) *Store[T] {
	s := &Store[T]{records: make([]*T, 0, len(records))}
	for _, r := range records {
		s.Append(r)
	}
	return s
}

// Exists reports whether a record with the given id is present.
func (s *Store[T]) Exists(id string) bool {
	_, ok := s.Find(id)
	return ok
}

// Find returns the first record whose key equals id. The returned pointer
// refers to the stored record, so updates through it mutate the store.
func (s *Store[T]) Find(id string) (*T, bool) {
	for _, r := range s.records {
		if (*r).Key() == id {
			return r, true
		}
	}
	return nil, false
}

// Append adds rec at the end and returns a pointer to the stored copy.
func (s *Store[T]) Append(rec T) *T {
	// A fresh variable per call, so every record gets its own address.
	r := rec
	s.records = append(s.records, &r)
	return &r
}

// All returns a copy of every record in insertion order. An empty store
// yields an empty, non-nil slice.
func (s *Store[T]) All() []T {
	out := make([]T, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, *r)
	}
	return out
}

// Len returns the number of records.
func (s *Store[T]) Len() int {
	return len(s.records)
}
