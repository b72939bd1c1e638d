package storage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aanand-mishra/records-cli/internal/types"
)

// ─────────────────────────────────────────────────────────────────────────────
// ProductCodec encodes products as one line of four fields:
//
//	P001,Widget,9.99,50
//	id   name   price quantity
//
// The struct has no fields. An empty struct takes no memory; it exists only
// to carry the Codec methods.
// ─────────────────────────────────────────────────────────────────────────────
type ProductCodec struct{}

// Fields returns 4.
func (ProductCodec) Fields() int { return 4 }

// Encode returns the fields of p in file order.
func (ProductCodec) Encode(p types.Product) []string {
	return []string{p.ID, p.Name, FormatFloat(p.Price), strconv.Itoa(p.Quantity)}
}

// Decode parses id, name, price and quantity. Numeric fields may carry
// surrounding spaces; id and name are kept exactly as written.
func (ProductCodec) Decode(fields []string) (types.Product, error) {
	// ParseFloat accepts "9.99", "1e3" and also "NaN"/"Inf". Loaded data is
	// not validated, so those load as-is.
	price, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil {
		return types.Product{}, fmt.Errorf("price: %w", err)
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(fields[3]))
	if err != nil {
		return types.Product{}, fmt.Errorf("quantity: %w", err)
	}
	return types.Product{
		ID:       fields[0],
		Name:     fields[1],
		Price:    price,
		Quantity: quantity,
	}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// StudentCodec encodes student records as one line of six fields:
//
//	S001,Jane Doe,CS101,85.0,90.0,88.0
//	id   name     course quiz exam final
//
// Final is read back as stored, not recomputed from quiz and exam. A file
// edited by hand therefore keeps whatever final grade it says.
// ─────────────────────────────────────────────────────────────────────────────
type StudentCodec struct{}

// Fields returns 6.
func (StudentCodec) Fields() int { return 6 }

// Encode returns the fields of s in file order.
func (StudentCodec) Encode(s types.StudentRecord) []string {
	return []string{
		s.ID,
		s.Name,
		s.Course,
		FormatFloat(s.Quiz),
		FormatFloat(s.Exam),
		FormatFloat(s.Final),
	}
}

// Decode parses a student line. The first score that does not parse is
// named in the error ("exam: strconv.ParseFloat: ...").
func (StudentCodec) Decode(fields []string) (types.StudentRecord, error) {
	// Fields 3, 4 and 5 are the three scores, in this order.
	var scores [3]float64
	for i, name := range []string{"quiz", "exam", "final"} {
		f, err := strconv.ParseFloat(strings.TrimSpace(fields[3+i]), 64)
		if err != nil {
			return types.StudentRecord{}, fmt.Errorf("%s: %w", name, err)
		}
		scores[i] = f
	}
	return types.StudentRecord{
		ID:     fields[0],
		Name:   fields[1],
		Course: fields[2],
		Quiz:   scores[0],
		Exam:   scores[1],
		Final:  scores[2],
	}, nil
}

// FormatFloat writes the shortest decimal that reads back to f, keeping a
// ".0" suffix on integral values (85 is written as 85.0).
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".IN") {
		s += ".0"
	}
	return s
}

// EncodeLine joins the encoded fields of rec into one line without the
// trailing newline.
func EncodeLine[T any](c Codec[T], rec T) string {
	return strings.Join(c.Encode(rec), Delimiter)
}

// DecodeLine splits a trimmed line. ok is false when the field count does
// not match, in which case the line is to be skipped.
func DecodeLine[T any](c Codec[T], line string) (rec T, ok bool, err error) {
	fields := strings.Split(line, Delimiter)
	if len(fields) != c.Fields() {
		return rec, false, nil
	}
	rec, err = c.Decode(fields)
	return rec, err == nil, err
}
