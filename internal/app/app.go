// Package app wires configuration, storage, the domain packages and the
// shell into the two runnable programs.
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aanand-mishra/records-cli/internal/config"
	"github.com/aanand-mishra/records-cli/internal/grades"
	"github.com/aanand-mishra/records-cli/internal/inventory"
	"github.com/aanand-mishra/records-cli/internal/shell"
	"github.com/aanand-mishra/records-cli/internal/storage"
	"github.com/aanand-mishra/records-cli/internal/storage/flatfile"
	"github.com/aanand-mishra/records-cli/internal/storage/sqlite"
	"github.com/aanand-mishra/records-cli/internal/types"
	"github.com/aanand-mishra/records-cli/internal/utils/response"
)

// Record kinds in a shared sqlite database.
const (
	productKind = "product"
	studentKind = "student"
)

// NewStorage returns the configured backend for one record type. The close
// func releases it and is never nil.
func NewStorage[T any](cfg *config.Config, filePath, kind string, codec storage.Codec[T], logger *slog.Logger) (storage.Storage[T], func() error, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		s, err := sqlite.New(cfg.SQLitePath, kind, codec, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("app.NewStorage: %w", err)
		}
		return s, s.Close, nil
	default:
		return flatfile.New(filePath, codec, logger), func() error { return nil }, nil
	}
}

// RunInventory runs the inventory program until the user exits.
func RunInventory(cfg *config.Config, in io.Reader, out io.Writer, logger *slog.Logger) error {
	s, closeStorage, err := NewStorage[types.Product](cfg, cfg.InventoryPath, productKind, storage.ProductCodec{}, logger)
	if err != nil {
		return err
	}
	defer closeStorage()

	sh := shell.New(in, out)
	sh.Printf("Welcome to Inventory Management System!\n")

	inv, n, err := inventory.Open(s, logger)
	reportLoad(sh, s, n, "product(s)", err)

	sh.Run(shell.InventoryMenu(sh, inv))
	return nil
}

// RunStudents runs the grading program until the user exits.
func RunStudents(cfg *config.Config, in io.Reader, out io.Writer, logger *slog.Logger) error {
	s, closeStorage, err := NewStorage[types.StudentRecord](cfg, cfg.RecordsPath, studentKind, storage.StudentCodec{}, logger)
	if err != nil {
		return err
	}
	defer closeStorage()

	sh := shell.New(in, out)
	sh.Printf("Welcome to Student Management System!\n")

	gb, n, err := grades.Open(s, logger)
	reportLoad(sh, s, n, "student record(s)", err)

	sh.Run(shell.StudentsMenu(sh, gb))
	return nil
}

// reportLoad tells the user what was loaded at startup. A failed load is
// reported and the program continues with whatever was read before it.
func reportLoad[T any](sh *shell.Shell, s storage.Storage[T], n int, noun string, err error) {
	var perr *types.PersistenceError
	switch {
	case errors.As(err, &perr) && n > 0:
		response.WriteError(sh.Out(), s.Location(), err)
		sh.Printf("Kept %d %s read before the error.\n", n, noun)
	case errors.As(err, &perr):
		response.WriteError(sh.Out(), s.Location(), err)
		sh.Printf("Starting with an empty collection.\n")
	case err != nil:
		response.WriteError(sh.Out(), s.Location(), err)
	case n == 0:
		sh.Printf("No existing records found in %s. Starting fresh.\n", s.Location())
	default:
		sh.Printf("Loaded %d %s.\n", n, noun)
	}
}
