// Package grades implements the student grading operations: add, search,
// update scores, list and the class average.
//
// A record's final grade is always derived from its quiz and exam scores;
// no operation lets a caller set it directly.
package grades

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/aanand-mishra/records-cli/internal/storage"
	"github.com/aanand-mishra/records-cli/internal/store"
	"github.com/aanand-mishra/records-cli/internal/types"
	"github.com/aanand-mishra/records-cli/internal/validation"
)

// Gradebook is the student record collection and its persistence.
type Gradebook struct {
	records *store.Store[types.StudentRecord]
	storage storage.Storage[types.StudentRecord]
	logger  *slog.Logger
}

// ─────────────────────────────────────────────────────────────────────────────
// Open loads the persisted records and returns the gradebook with the number of
// records loaded.
//
// A failed load does not stop the program. Whatever the storage managed to
// read before the failure (often nothing) becomes the starting collection,
// and the load error is returned alongside it for the caller to report.
// The next Save writes that collection back.
// ─────────────────────────────────────────────────────────────────────────────
func Open(s storage.Storage[types.StudentRecord], logger *slog.Logger) (*Gradebook, int, error) {
	if logger == nil {
		logger = slog.Default()
	}

	loaded, err := s.Load()
	// store.New copies the slice, and a nil slice gives an empty store.
	gb := &Gradebook{records: store.New(loaded), storage: s, logger: logger}
	if err != nil {
		logger.Error("failed to load records",
			slog.String("path", s.Location()),
			slog.Int("kept", len(loaded)),
			slog.String("error", err.Error()))
		return gb, len(loaded), err
	}

	logger.Info("records loaded", slog.Int("students", len(loaded)))
	return gb, len(loaded), nil
}

// Exists reports whether a record with id is present.
func (gb *Gradebook) Exists(id string) bool {
	return gb.records.Exists(id)
}

// Find returns a copy of the first record with id.
func (gb *Gradebook) Find(id string) (types.StudentRecord, error) {
	r, ok := gb.records.Find(id)
	if !ok {
		return types.StudentRecord{}, types.NotFound(id)
	}
	return *r, nil
}

// Add validates r, computes its final grade, appends it and saves. Any
// Final value set on r is ignored.
func (gb *Gradebook) Add(r types.StudentRecord) (types.StudentRecord, error) {
	r, err := validation.StudentRecord(r, gb.records.Exists)
	if err != nil {
		return types.StudentRecord{}, err
	}
	if strings.Contains(r.Name, storage.Delimiter) || strings.Contains(r.Course, storage.Delimiter) {
		gb.logger.Warn("student record contains the field delimiter; the line will not reload",
			slog.String("id", r.ID))
	}

	stored := gb.records.Append(r)
	gb.logger.Info("student record added",
		slog.String("id", r.ID),
		slog.Float64("final", r.Final))
	return *stored, gb.Save()
}

// ─────────────────────────────────────────────────────────────────────────────
// UpdateScores replaces both scores of the record with id, recomputes its
// final grade and saves.
//
// ALL OR NOTHING:
// ───────────────
// An unknown id is reported first. Then quiz and exam are both checked
// before either is written, so a valid quiz with a bad exam leaves the
// record exactly as it was. SetScores updates all three numbers together;
// Final never disagrees with the scores it came from.
// ─────────────────────────────────────────────────────────────────────────────
func (gb *Gradebook) UpdateScores(id string, quiz, exam float64) (types.StudentRecord, error) {
	r, ok := gb.records.Find(id)
	if !ok {
		return types.StudentRecord{}, types.NotFound(id)
	}
	if err := validation.Score(validation.QuizLabel, quiz); err != nil {
		return types.StudentRecord{}, err
	}
	if err := validation.Score(validation.ExamLabel, exam); err != nil {
		return types.StudentRecord{}, err
	}

	r.SetScores(quiz, exam)
	gb.logger.Info("scores updated",
		slog.String("id", id),
		slog.Float64("final", r.Final))
	return *r, gb.Save()
}

// List returns every record in insertion order.
func (gb *Gradebook) List() []types.StudentRecord {
	return gb.records.All()
}

// Len returns the number of records.
func (gb *Gradebook) Len() int {
	return gb.records.Len()
}

// ClassAverage is the mean final grade. It returns ErrEmptyStore when there
// are no records.
func (gb *Gradebook) ClassAverage() (float64, error) {
	records := gb.records.All()
	if len(records) == 0 {
		return 0, types.ErrEmptyStore
	}

	var total float64
	for _, r := range records {
		total += r.Final
	}
	return total / float64(len(records)), nil
}

// Save writes every record to storage.
func (gb *Gradebook) Save() error {
	if err := gb.storage.Save(gb.records.All()); err != nil {
		gb.logger.Error("failed to save records",
			slog.String("path", gb.storage.Location()),
			slog.String("error", err.Error()))
		return fmt.Errorf("grades.Save: %w", err)
	}
	return nil
}
