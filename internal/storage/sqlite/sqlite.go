// Package sqlite keeps the record snapshot in a SQLite database instead of a
// text file, using Go's standard database/sql package.
//
// Each record is stored as its delimited line (the same encoding the flat
// file uses) together with its position, so ordering, skip rules and parse
// failures behave exactly like the text file. Several record kinds can
// share one database file.
package sqlite

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/aanand-mishra/records-cli/internal/storage"
	"github.com/aanand-mishra/records-cli/internal/types"

	// Registers the "sqlite3" driver with database/sql.
	_ "github.com/mattn/go-sqlite3"
)

// SQLite is a storage.Storage for one record kind.
type SQLite[T any] struct {
	Db     *sql.DB
	path   string
	kind   string
	codec  storage.Codec[T]
	logger *slog.Logger
}

// New opens the database at path, creates the records table if needed and
// returns a store for records of the given kind ("product", "student").
func New[T any](path, kind string, codec storage.Codec[T], logger *slog.Logger) (*SQLite[T], error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// seq is the record's position in the store, payload its encoded line.
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS records (
			kind    TEXT    NOT NULL,
			seq     INTEGER NOT NULL,
			payload TEXT    NOT NULL,
			PRIMARY KEY (kind, seq)
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite[T]{Db: db, path: path, kind: kind, codec: codec, logger: logger}, nil
}

// Location returns the database path and record kind.
func (s *SQLite[T]) Location() string {
	return s.path + "#" + s.kind
}

// Close releases the database.
func (s *SQLite[T]) Close() error {
	return s.Db.Close()
}

// ─────────────────────────────────────────────────────────────────────────────
// Load returns the snapshot in stored order.
//
// Rows follow the same rules as lines of the text file: a payload with the
// wrong number of fields is skipped, and one that fails to parse stops the
// load. The records read before it come back with the error.
//
// HOW rows.Next + Scan WORK:
// ──────────────────────────
// Query returns a cursor. Next advances it one row and returns false at the
// end or on error. Scan copies the current row's columns, in SELECT order,
// into the pointers passed to it. rows.Err after the loop tells a clean end
// from a failed read.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite[T]) Load() ([]T, error) {
	stmt, err := s.Db.Prepare("SELECT seq, payload FROM records WHERE kind = ? ORDER BY seq")
	if err != nil {
		return nil, s.fail("load", fmt.Errorf("prepare: %w", err))
	}
	defer stmt.Close()

	rows, err := stmt.Query(s.kind)
	if err != nil {
		return nil, s.fail("load", fmt.Errorf("query: %w", err))
	}
	defer rows.Close()

	records := make([]T, 0)
	for rows.Next() {
		var (
			seq     int64
			payload string
		)
		if err := rows.Scan(&seq, &payload); err != nil {
			return records, s.fail("load", fmt.Errorf("scan row: %w", err))
		}

		rec, ok, err := storage.DecodeLine(s.codec, payload)
		if err != nil {
			return records, s.fail("load", fmt.Errorf("seq %d: %w", seq, err))
		}
		if !ok {
			s.logger.Debug("skipping malformed row",
				slog.String("kind", s.kind),
				slog.Int64("seq", seq))
			continue
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return records, s.fail("load", fmt.Errorf("rows iteration: %w", err))
	}

	return records, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Save replaces every row of this kind with records.
//
// WHY A TRANSACTION?
// ──────────────────
// Save is "delete everything, insert everything". Without a transaction a
// failure between the two would leave the table empty. Inside one, either
// the new snapshot is committed whole or the old one stays untouched.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite[T]) Save(records []T) error {
	tx, err := s.Db.Begin()
	if err != nil {
		return s.fail("save", fmt.Errorf("begin: %w", err))
	}
	// Every early return below rolls back. After a successful Commit,
	// Rollback returns sql.ErrTxDone and changes nothing.
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM records WHERE kind = ?", s.kind); err != nil {
		return s.fail("save", fmt.Errorf("delete: %w", err))
	}

	stmt, err := tx.Prepare("INSERT INTO records (kind, seq, payload) VALUES (?, ?, ?)")
	if err != nil {
		return s.fail("save", fmt.Errorf("prepare: %w", err))
	}
	defer stmt.Close()

	// seq restarts at 0 on every save, so it is always the store position.
	for i, rec := range records {
		if _, err := stmt.Exec(s.kind, i, storage.EncodeLine(s.codec, rec)); err != nil {
			return s.fail("save", fmt.Errorf("insert: %w", err))
		}
	}

	if err := tx.Commit(); err != nil {
		return s.fail("save", fmt.Errorf("commit: %w", err))
	}
	return nil
}

func (s *SQLite[T]) fail(op string, err error) error {
	return &types.PersistenceError{Op: op, Path: s.Location(), Err: err}
}
