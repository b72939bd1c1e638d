// Package storage defines the persistence contract shared by both programs
// and the line codecs that map records to delimited fields.
//
// WHY AN INTERFACE?
// ─────────────────
// Domain packages (inventory, grades) depend only on the Storage interface,
// never on a concrete backend. The flat text file (flatfile) is the default;
// sqlite keeps the same snapshot in a database file. Swapping one for the
// other, or for a mock in tests, needs no change to the domain code.
//
// Both backends rewrite the whole collection on every Save.
package storage

// Delimiter separates fields on a persisted line. Values are written as-is:
// a delimiter inside a name or course is not escaped and breaks that line on
// the next load.
const Delimiter = ","

// ─────────────────────────────────────────────────────────────────────────────
// Storage is the persistence contract for one record type.
//
// Go interfaces are satisfied implicitly: any type with these three methods
// is a Storage, with no "implements" keyword. *flatfile.File[T] and
// *sqlite.SQLite[T] both are.
// ─────────────────────────────────────────────────────────────────────────────
type Storage[T any] interface {
	// Load returns every persisted record in stored order. A missing backing
	// file is not an error and yields no records.
	//
	// A record that fails to decode stops the load with a
	// *types.PersistenceError. The records decoded before it are still
	// returned next to the error, so the caller can keep them.
	Load() ([]T, error)

	// Save overwrites the persisted state with records, in order.
	Save(records []T) error

	// Location names the backing file for messages and logs.
	Location() string
}

// Codec converts one record to and from its delimited fields.
type Codec[T any] interface {
	// Fields is the exact field count of a well-formed line.
	Fields() int
	Encode(rec T) []string
	// Decode parses exactly Fields() values.
	Decode(fields []string) (T, error)
}
