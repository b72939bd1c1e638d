// Package response renders results and errors for the terminal.
//
// Every screen of both programs prints through these helpers so that error
// lines, tables and reports keep one consistent shape:
//
//	Error: Price must be greater than 0.
package response

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aanand-mishra/records-cli/internal/inventory"
	"github.com/aanand-mishra/records-cli/internal/types"
)

// Line prefixes.
const (
	StatusError = "Error"
)

// GeneralError converts any error into the message shown to the user.
// subject names the record kind in not-found messages, e.g. "Product ID".
func GeneralError(subject string, err error) string {
	var (
		verr *types.ValidationError
		perr *types.PersistenceError
	)
	switch {
	case errors.As(err, &verr):
		return verr.Message
	case errors.Is(err, types.ErrNotFound):
		return fmt.Sprintf("%s not found.", subject)
	case errors.As(err, &perr):
		return fmt.Sprintf("could not %s %s: %v", perr.Op, perr.Path, perr.Err)
	default:
		return err.Error()
	}
}

// WriteError prints err as a single "Error: ..." line.
func WriteError(w io.Writer, subject string, err error) {
	fmt.Fprintf(w, "%s: %s\n", StatusError, GeneralError(subject, err))
}

// Money formats an amount as dollars with two decimals.
func Money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// WriteProducts prints the product table followed by the product count.
func WriteProducts(w io.Writer, products []types.Product) {
	fmt.Fprintf(w, "\n%-12s %-25s %-12s %-10s\n", "Product ID", "Product Name", "Price", "Quantity")
	fmt.Fprintln(w, strings.Repeat("-", 70))
	for _, p := range products {
		fmt.Fprintf(w, "%-12s %-25s $%-11.2f %-10d\n", p.ID, p.Name, p.Price, p.Quantity)
	}
	fmt.Fprintf(w, "\nTotal Products: %d\n", len(products))
}

// WriteInventoryValue prints the total value and its per-product breakdown.
func WriteInventoryValue(w io.Writer, total float64, lines []inventory.LineValue) {
	fmt.Fprintf(w, "\nTotal Products: %d\n", len(lines))
	fmt.Fprintf(w, "Total Inventory Value: %s\n", Money(total))
	fmt.Fprintln(w, "\nBreakdown:")
	for _, l := range lines {
		fmt.Fprintf(w, "  %s: %s (%d × %s)\n",
			l.Product.Name, Money(l.Value), l.Product.Quantity, Money(l.Product.Price))
	}
}

// WriteStudents prints the student table followed by the record count.
func WriteStudents(w io.Writer, records []types.StudentRecord) {
	fmt.Fprintf(w, "\n%-10s %-25s %-10s %-8s %-8s %-8s\n", "ID", "Name", "Course", "Quiz", "Exam", "Final")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, r := range records {
		fmt.Fprintf(w, "%-10s %-25s %-10s %-8.2f %-8.2f %-8.2f\n",
			r.ID, r.Name, r.Course, r.Quiz, r.Exam, r.Final)
	}
	fmt.Fprintf(w, "\nTotal Records: %d\n", len(records))
}

// WriteStudent prints every field of one record.
func WriteStudent(w io.Writer, r types.StudentRecord) {
	fmt.Fprintf(w, "ID: %s\n", r.ID)
	fmt.Fprintf(w, "Name: %s\n", r.Name)
	fmt.Fprintf(w, "Course: %s\n", r.Course)
	fmt.Fprintf(w, "Quiz Score: %.2f\n", r.Quiz)
	fmt.Fprintf(w, "Exam Score: %.2f\n", r.Exam)
	fmt.Fprintf(w, "Final Grade: %.2f\n", r.Final)
}
