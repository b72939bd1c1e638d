package response

import (
	"bytes"
	"errors"
	"testing"

	"github.com/aanand-mishra/records-cli/internal/inventory"
	"github.com/aanand-mishra/records-cli/internal/types"
	"github.com/stretchr/testify/assert"
)

func Test_GeneralError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "validation",
			err:      &types.ValidationError{Field: "Price", Rule: "gt", Message: "Price must be greater than 0."},
			expected: "Price must be greater than 0.",
		},
		{
			name:     "not found",
			err:      types.NotFound("P9"),
			expected: "Product ID not found.",
		},
		{
			name:     "persistence",
			err:      &types.PersistenceError{Op: "save", Path: "inventory.txt", Err: errors.New("disk full")},
			expected: "could not save inventory.txt: disk full",
		},
		{
			name:     "other",
			err:      errors.New("boom"),
			expected: "boom",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, GeneralError("Product ID", tc.err))
		})
	}
}

func Test_WriteError(t *testing.T) {
	var buf bytes.Buffer
	WriteError(&buf, "Student ID", types.NotFound("S1"))
	assert.Equal(t, "Error: Student ID not found.\n", buf.String())
}

func Test_WriteProducts(t *testing.T) {
	var buf bytes.Buffer
	WriteProducts(&buf, []types.Product{{ID: "P001", Name: "Widget", Price: 9.99, Quantity: 50}})

	out := buf.String()
	assert.Contains(t, out, "Product ID   Product Name")
	assert.Contains(t, out, "P001         Widget                    $9.99        50")
	assert.Contains(t, out, "Total Products: 1")
}

func Test_WriteInventoryValue(t *testing.T) {
	var buf bytes.Buffer
	WriteInventoryValue(&buf, 11, []inventory.LineValue{
		{Product: types.Product{Name: "Apple", Price: 2, Quantity: 3}, Value: 6},
		{Product: types.Product{Name: "Bread", Price: 5, Quantity: 1}, Value: 5},
	})

	out := buf.String()
	assert.Contains(t, out, "Total Inventory Value: $11.00")
	assert.Contains(t, out, "  Apple: $6.00 (3 × $2.00)")
	assert.Contains(t, out, "  Bread: $5.00 (1 × $5.00)")
}

func Test_WriteStudents(t *testing.T) {
	var buf bytes.Buffer
	WriteStudents(&buf, []types.StudentRecord{{ID: "S001", Name: "Jane Doe", Course: "CS101", Quiz: 85, Exam: 90, Final: 88}})

	out := buf.String()
	assert.Contains(t, out, "S001       Jane Doe                  CS101      85.00    90.00    88.00")
	assert.Contains(t, out, "Total Records: 1")
}
