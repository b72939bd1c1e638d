// Package inventory implements the product operations of the inventory
// program: add, look up, update quantity, list and value reports.
//
// Every mutation is validated first and then flushed to storage. When the
// flush fails the change stays in memory and the operation returns the
// record together with a *types.PersistenceError.
package inventory

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/aanand-mishra/records-cli/internal/storage"
	"github.com/aanand-mishra/records-cli/internal/store"
	"github.com/aanand-mishra/records-cli/internal/types"
	"github.com/aanand-mishra/records-cli/internal/validation"
)

// Inventory is the product collection and its persistence.
type Inventory struct {
	products *store.Store[types.Product]
	storage  storage.Storage[types.Product]
	logger   *slog.Logger
}

// LineValue is one row of the inventory value breakdown.
type LineValue struct {
	Product types.Product
	Value   float64
}

// ─────────────────────────────────────────────────────────────────────────────
// Open loads the persisted products and returns the inventory with the number of
// products loaded.
//
// A failed load does not stop the program. Whatever the storage managed to
// read before the failure (often nothing) becomes the starting collection,
// and the load error is returned alongside it for the caller to report.
// The next Save writes that collection back.
// ─────────────────────────────────────────────────────────────────────────────
func Open(s storage.Storage[types.Product], logger *slog.Logger) (*Inventory, int, error) {
	if logger == nil {
		logger = slog.Default()
	}

	loaded, err := s.Load()
	// store.New copies the slice, and a nil slice gives an empty store.
	inv := &Inventory{products: store.New(loaded), storage: s, logger: logger}
	if err != nil {
		logger.Error("failed to load inventory",
			slog.String("path", s.Location()),
			slog.Int("kept", len(loaded)),
			slog.String("error", err.Error()))
		return inv, len(loaded), err
	}

	logger.Info("inventory loaded", slog.Int("products", len(loaded)))
	return inv, len(loaded), nil
}

// Exists reports whether a product with id is present.
func (inv *Inventory) Exists(id string) bool {
	return inv.products.Exists(id)
}

// Find returns a copy of the first product with id.
func (inv *Inventory) Find(id string) (types.Product, error) {
	p, ok := inv.products.Find(id)
	if !ok {
		return types.Product{}, types.NotFound(id)
	}
	return *p, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Add validates p, appends it and saves.
//
// ORDER OF CHECKS:
// ────────────────
// id → duplicate id → name → price → quantity. The first failure is
// returned as a *types.ValidationError and nothing is stored.
//
// Once p is appended it stays, even when the save that follows fails: the
// caller gets the stored product AND the *types.PersistenceError, and the
// next successful save (at the latest on exit) writes it out.
// ─────────────────────────────────────────────────────────────────────────────
func (inv *Inventory) Add(p types.Product) (types.Product, error) {
	p, err := validation.Product(p, inv.products.Exists)
	if err != nil {
		return types.Product{}, err
	}
	if strings.Contains(p.Name, storage.Delimiter) {
		inv.logger.Warn("product name contains the field delimiter; the line will not reload",
			slog.String("id", p.ID))
	}

	stored := inv.products.Append(p)
	inv.logger.Info("product added", slog.String("id", p.ID))
	return *stored, inv.Save()
}

// UpdateQuantity sets the quantity of the product with id and saves. An
// unknown id is reported before the quantity is looked at.
func (inv *Inventory) UpdateQuantity(id string, quantity int) (types.Product, error) {
	p, ok := inv.products.Find(id)
	if !ok {
		return types.Product{}, types.NotFound(id)
	}
	if err := validation.Quantity(quantity); err != nil {
		return types.Product{}, err
	}

	p.Quantity = quantity
	inv.logger.Info("quantity updated",
		slog.String("id", id),
		slog.Int("quantity", quantity))
	return *p, inv.Save()
}

// List returns every product in insertion order.
func (inv *Inventory) List() []types.Product {
	return inv.products.All()
}

// Len returns the number of products.
func (inv *Inventory) Len() int {
	return inv.products.Len()
}

// TotalValue sums price × quantity over all products; 0 when empty.
func (inv *Inventory) TotalValue() float64 {
	var total float64
	for _, p := range inv.products.All() {
		total += p.Value()
	}
	return total
}

// Breakdown returns the value of each product, in insertion order.
func (inv *Inventory) Breakdown() []LineValue {
	products := inv.products.All()
	lines := make([]LineValue, 0, len(products))
	for _, p := range products {
		lines = append(lines, LineValue{Product: p, Value: p.Value()})
	}
	return lines
}

// Save writes every product to storage.
func (inv *Inventory) Save() error {
	if err := inv.storage.Save(inv.products.All()); err != nil {
		inv.logger.Error("failed to save inventory",
			slog.String("path", inv.storage.Location()),
			slog.String("error", err.Error()))
		return fmt.Errorf("inventory.Save: %w", err)
	}
	return nil
}
