package types

// ─────────────────────────────────────────────────────────────────────────────
// ERROR TAXONOMY
// ──────────────
// Callers tell failures apart with errors.Is and errors.As, never by
// comparing message strings:
//
//	errors.Is(err, types.ErrNotFound)       // unknown id
//	errors.As(err, &validationErr)          // bad input, nothing changed
//	errors.As(err, &persistenceErr)         // file problem, memory is fine
//	errors.Is(err, types.ErrEmptyStore)     // average of nothing
//
// Both struct types implement Unwrap, so a wrapped cause (a strconv error,
// an *os.PathError) stays reachable through the chain.
// ─────────────────────────────────────────────────────────────────────────────

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no record matches an id.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateID is the cause behind the validation error raised when an
	// id is already taken.
	ErrDuplicateID = errors.New("id already exists")

	// ErrEmptyStore is returned by aggregates that have no meaningful value
	// without records (the class average).
	ErrEmptyStore = errors.New("no records")
)

// ValidationError reports the first field rule that failed.
type ValidationError struct {
	Field   string // e.g. "Price"
	Rule    string // validator tag, e.g. "gt"
	Value   string // offending input as typed
	Message string
	Err     error // optional cause, e.g. ErrDuplicateID or a strconv error
}

// Error returns the sentence shown to the user, e.g. "Price must be greater
// than 0.". It does not repeat the field or rule separately.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap exposes the cause so errors.Is(err, ErrDuplicateID) works. It is
// nil for plain rule failures.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// PersistenceError wraps an I/O or decode failure of the persisted file.
type PersistenceError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

// Error reads like "save inventory.txt: permission denied".
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying I/O or parse error.
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NotFound wraps ErrNotFound with the id that was looked up.
func NotFound(id string) error {
	return fmt.Errorf("id %q: %w", id, ErrNotFound)
}
