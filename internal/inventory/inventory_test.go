package inventory

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/aanand-mishra/records-cli/internal/storage"
	"github.com/aanand-mishra/records-cli/internal/storage/flatfile"
	"github.com/aanand-mishra/records-cli/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// mockStorage is an in-memory storage.Storage.
type mockStorage struct {
	loaded  []types.Product
	loadErr error
	saveErr error
	saved   [][]types.Product
}

func (m *mockStorage) Load() ([]types.Product, error) {
	return m.loaded, m.loadErr
}

func (m *mockStorage) Save(records []types.Product) error {
	m.saved = append(m.saved, records)
	return m.saveErr
}

func (m *mockStorage) Location() string { return "mock" }

func open(t *testing.T, m *mockStorage) *Inventory {
	t.Helper()
	inv, _, err := Open(m, discard)
	require.NoError(t, err)
	return inv
}

func Test_Open(t *testing.T) {
	// given
	m := &mockStorage{loaded: []types.Product{{ID: "P1"}, {ID: "P2"}}}
	// when
	inv, n, err := Open(m, discard)
	// then
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, inv.Len())
}

func Test_Open_LoadFailure(t *testing.T) {
	loadErr := &types.PersistenceError{Op: "load", Path: "inventory.txt", Err: errors.New("boom")}

	testCases := []struct {
		name     string
		loaded   []types.Product
		expected []types.Product
	}{
		{name: "nothing read", loaded: nil, expected: []types.Product{}},
		{name: "records read before the failure", loaded: []types.Product{{ID: "P1"}}, expected: []types.Product{{ID: "P1"}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			m := &mockStorage{loaded: tc.loaded, loadErr: loadErr}
			// when
			inv, n, err := Open(m, discard)
			// then
			require.ErrorIs(t, err, loadErr)
			require.NotNil(t, inv)
			assert.Equal(t, len(tc.expected), n)
			assert.Equal(t, tc.expected, inv.List())
		})
	}
}

func Test_Open_UnparsableLineKeepsEarlierProducts(t *testing.T) {
	// given a file whose second line has a bad price
	path := filepath.Join(t.TempDir(), "inventory.txt")
	require.NoError(t, os.WriteFile(path, []byte("P001,Widget,9.99,50\nP002,Bad,abc,1\n"), 0o644))
	inv, n, err := Open(flatfile.New[types.Product](path, storage.ProductCodec{}, discard), discard)
	var perr *types.PersistenceError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, 1, n)

	// when
	_, err = inv.Add(types.Product{ID: "P003", Name: "New", Price: 1, Quantity: 1})
	require.NoError(t, err)

	// then the product read before the bad line survives the rewrite
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "P001,Widget,9.99,50\nP003,New,1.0,1\n", string(content))
}

func Test_Inventory_AddThenFind(t *testing.T) {
	// given
	m := &mockStorage{}
	inv := open(t, m)
	in := types.Product{ID: "P001", Name: "Widget", Price: 9.99, Quantity: 50}

	// when
	added, err := inv.Add(in)
	require.NoError(t, err)
	found, err := inv.Find("P001")

	// then
	require.NoError(t, err)
	assert.Equal(t, in, added)
	assert.Equal(t, in, found)
	require.Len(t, m.saved, 1)
	assert.Equal(t, []types.Product{in}, m.saved[0])
}

func Test_Inventory_AddTrimsText(t *testing.T) {
	inv := open(t, &mockStorage{})

	added, err := inv.Add(types.Product{ID: " P001 ", Name: "  Widget ", Price: 1, Quantity: 0})

	require.NoError(t, err)
	assert.Equal(t, "P001", added.ID)
	assert.Equal(t, "Widget", added.Name)
	assert.True(t, inv.Exists("P001"))
}

func Test_Inventory_AddValidation(t *testing.T) {
	testCases := []struct {
		name    string
		product types.Product
		field   string
	}{
		{name: "duplicate id", product: types.Product{ID: "P001", Name: "Other", Price: 1, Quantity: 1}, field: "Product ID"},
		{name: "empty name", product: types.Product{ID: "P002", Name: " ", Price: 1, Quantity: 1}, field: "Product name"},
		{name: "zero price", product: types.Product{ID: "P002", Name: "W", Price: 0, Quantity: 1}, field: "Price"},
		{name: "negative quantity", product: types.Product{ID: "P002", Name: "W", Price: 1, Quantity: -1}, field: "Quantity"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			m := &mockStorage{loaded: []types.Product{{ID: "P001", Name: "Widget", Price: 1, Quantity: 1}}}
			inv := open(t, m)
			// when
			_, err := inv.Add(tc.product)
			// then
			var verr *types.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
			assert.Equal(t, 1, inv.Len(), "store size must not change")
			assert.Empty(t, m.saved, "nothing is saved on validation failure")
		})
	}
}

func Test_Inventory_AddDuplicateIsCaseSensitive(t *testing.T) {
	inv := open(t, &mockStorage{loaded: []types.Product{{ID: "P001"}}})

	_, err := inv.Add(types.Product{ID: "P001", Name: "W", Price: 1})
	assert.ErrorIs(t, err, types.ErrDuplicateID)

	_, err = inv.Add(types.Product{ID: "p001", Name: "W", Price: 1})
	assert.NoError(t, err)
	assert.Equal(t, 2, inv.Len())
}

func Test_Inventory_AddSaveFailureKeepsRecord(t *testing.T) {
	// given
	saveErr := &types.PersistenceError{Op: "save", Path: "inventory.txt", Err: errors.New("disk full")}
	inv := open(t, &mockStorage{saveErr: saveErr})

	// when
	added, err := inv.Add(types.Product{ID: "P1", Name: "W", Price: 1, Quantity: 1})

	// then
	var perr *types.PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "P1", added.ID)
	assert.True(t, inv.Exists("P1"))
}

func Test_Inventory_UpdateQuantity(t *testing.T) {
	testCases := []struct {
		name     string
		id       string
		quantity int
		expected error
	}{
		{name: "success", id: "P001", quantity: 7},
		{name: "zero accepted", id: "P001", quantity: 0},
		{name: "not found", id: "P999", quantity: 7, expected: types.ErrNotFound},
		{name: "not found wins over bad quantity", id: "P999", quantity: -1, expected: types.ErrNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			m := &mockStorage{loaded: []types.Product{{ID: "P001", Name: "Widget", Price: 2, Quantity: 3}}}
			inv := open(t, m)
			// when
			updated, err := inv.UpdateQuantity(tc.id, tc.quantity)
			// then
			if tc.expected != nil {
				assert.ErrorIs(t, err, tc.expected)
				assert.Empty(t, m.saved)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.quantity, updated.Quantity)
			found, _ := inv.Find(tc.id)
			assert.Equal(t, tc.quantity, found.Quantity)
			require.Len(t, m.saved, 1)
		})
	}
}

func Test_Inventory_UpdateQuantityNegative(t *testing.T) {
	m := &mockStorage{loaded: []types.Product{{ID: "P001", Name: "Widget", Price: 2, Quantity: 3}}}
	inv := open(t, m)

	_, err := inv.UpdateQuantity("P001", -1)

	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	found, _ := inv.Find("P001")
	assert.Equal(t, 3, found.Quantity)
	assert.Empty(t, m.saved)
}

func Test_Inventory_TotalValue(t *testing.T) {
	testCases := []struct {
		name     string
		products []types.Product
		expected float64
	}{
		{name: "empty", products: nil, expected: 0},
		{name: "two products", products: []types.Product{{ID: "A", Price: 2.0, Quantity: 3}, {ID: "B", Price: 5.0, Quantity: 1}}, expected: 11.0},
		{name: "zero quantity", products: []types.Product{{ID: "A", Price: 2.0, Quantity: 0}}, expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			inv := open(t, &mockStorage{loaded: tc.products})
			assert.Equal(t, tc.expected, inv.TotalValue())
		})
	}
}

func Test_Inventory_Breakdown(t *testing.T) {
	inv := open(t, &mockStorage{loaded: []types.Product{
		{ID: "A", Name: "Apple", Price: 2.0, Quantity: 3},
		{ID: "B", Name: "Bread", Price: 5.0, Quantity: 1},
	}})

	lines := inv.Breakdown()

	require.Len(t, lines, 2)
	assert.Equal(t, "Apple", lines[0].Product.Name)
	assert.Equal(t, 6.0, lines[0].Value)
	assert.Equal(t, 5.0, lines[1].Value)
}

func Test_Inventory_ListEmpty(t *testing.T) {
	inv := open(t, &mockStorage{})
	list := inv.List()
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
