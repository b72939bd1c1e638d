// Package flatfile persists records as a plain text file: one record per
// line, fields separated by storage.Delimiter, no header.
//
// Every Save truncates and rewrites the file in place. There is no atomic
// rename and no partial-write protection; the file is owned by a single
// running process.
package flatfile

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/aanand-mishra/records-cli/internal/storage"
	"github.com/aanand-mishra/records-cli/internal/types"
)

// maxLineSize bounds a single persisted line.
const maxLineSize = 1 << 20

// File is a storage.Storage backed by a delimited text file.
type File[T any] struct {
	path   string
	codec  storage.Codec[T]
	logger *slog.Logger
}

// New returns a File storing records at path with the given codec.
func New[T any](path string, codec storage.Codec[T], logger *slog.Logger) *File[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &File[T]{path: path, codec: codec, logger: logger}
}

// Location returns the file path.
func (f *File[T]) Location() string {
	return f.path
}

// ─────────────────────────────────────────────────────────────────────────────
// Load reads every record from the file, in file order.
//
// LINE RULES:
// ───────────
//   - missing file        → no records, no error (first run)
//   - blank line          → skipped
//   - wrong field count   → skipped, logged at DEBUG
//   - number fails parse  → load stops here
//
// When the load stops, the records read before the bad line are returned
// together with a *types.PersistenceError naming the line number. Lines
// after it are never read. The caller keeps the prefix, and the next Save
// writes it back without the rest of the file.
// ─────────────────────────────────────────────────────────────────────────────
func (f *File[T]) Load() ([]T, error) {
	file, err := os.Open(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		f.logger.Info("no existing data file, starting fresh", slog.String("path", f.path))
		return []T{}, nil
	}
	if err != nil {
		return nil, f.fail("load", err)
	}
	// The file is only read, so a Close error has nothing to report.
	defer file.Close()

	records := make([]T, 0)

	// bufio.Scanner reads one line per Scan(). Its default limit is 64 KiB
	// per line; Buffer raises it so long names do not end the scan early.
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		rec, ok, err := storage.DecodeLine(f.codec, line)
		if err != nil {
			f.logger.Warn("load stopped at unparsable line",
				slog.String("path", f.path),
				slog.Int("line", lineNo),
				slog.Int("kept", len(records)))
			return records, f.fail("load", fmt.Errorf("line %d: %w", lineNo, err))
		}
		if !ok {
			f.logger.Debug("skipping malformed line",
				slog.String("path", f.path),
				slog.Int("line", lineNo))
			continue
		}
		records = append(records, rec)
	}
	// Scan returns false both at EOF and on a read error. Err tells them
	// apart: it is nil at a clean EOF.
	if err := scanner.Err(); err != nil {
		return records, f.fail("load", err)
	}

	return records, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Save overwrites the file with records, one line each, in order.
//
// WHY A NAMED RETURN?
// ───────────────────
// Closing a file that was written to can fail (the OS may flush data only
// on close). The deferred func below sees the named err and reports the
// Close failure, but only when nothing earlier already failed.
// ─────────────────────────────────────────────────────────────────────────────
func (f *File[T]) Save(records []T) (err error) {
	// os.Create truncates an existing file or creates a new one (mode 0666
	// before umask). It does not create missing parent directories.
	file, err := os.Create(f.path)
	if err != nil {
		return f.fail("save", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = f.fail("save", cerr)
		}
	}()

	// Buffer the writes: one syscall per few KiB instead of one per line.
	w := bufio.NewWriter(file)
	for _, rec := range records {
		if _, err := w.WriteString(storage.EncodeLine(f.codec, rec) + "\n"); err != nil {
			return f.fail("save", err)
		}
	}
	// Nothing reaches the file until Flush. Forgetting it loses the tail.
	if err := w.Flush(); err != nil {
		return f.fail("save", err)
	}

	f.logger.Debug("data file written",
		slog.String("path", f.path),
		slog.Int("records", len(records)))
	return nil
}

func (f *File[T]) fail(op string, err error) error {
	return &types.PersistenceError{Op: op, Path: f.path, Err: err}
}
