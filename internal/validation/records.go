package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aanand-mishra/records-cli/internal/types"
	"github.com/go-playground/validator/v10"
)

// productLabels maps a types.Product field name, as reported by
// FieldError.StructField, to the label used in messages.
var productLabels = map[string]string{
	"ID":       ProductIDLabel,
	"Name":     ProductNameLabel,
	"Price":    PriceLabel,
	"Quantity": QuantityLabel,
}

// studentLabels does the same for types.StudentRecord. Final has no label:
// it carries no validate tag because it is always computed.
var studentLabels = map[string]string{
	"ID":     StudentIDLabel,
	"Name":   NameLabel,
	"Course": CourseLabel,
	"Quiz":   QuizLabel,
	"Exam":   ExamLabel,
}

// Product trims the text fields of p and checks it for creation: id, then
// id uniqueness, then name, price and quantity. It returns the trimmed
// product.
func Product(p types.Product, exists func(string) bool) (types.Product, error) {
	p.ID = strings.TrimSpace(p.ID)
	p.Name = strings.TrimSpace(p.Name)

	if err := ID(ProductIDLabel, p.ID, exists); err != nil {
		return p, err
	}
	return p, structRules(p, productLabels)
}

// StudentRecord trims the text fields of r and checks it for creation in the
// order id, uniqueness, name, course, quiz, exam. Final is recomputed on the
// returned record.
func StudentRecord(r types.StudentRecord, exists func(string) bool) (types.StudentRecord, error) {
	r.ID = strings.TrimSpace(r.ID)
	r.Name = strings.TrimSpace(r.Name)
	r.Course = strings.TrimSpace(r.Course)
	r.SetScores(r.Quiz, r.Exam)

	if err := ID(StudentIDLabel, r.ID, exists); err != nil {
		return r, err
	}
	err := structRules(r, studentLabels)
	var verr *types.ValidationError
	if errors.As(err, &verr) && (verr.Rule == "gte" || verr.Rule == "lte") {
		verr.Message = fmt.Sprintf("%s must be between %g and %g.", verr.Field, MinScore, MaxScore)
	}
	return r, err
}

// structRules validates the struct tags of v and reports the first failing
// field in declaration order.
func structRules(v any, labels map[string]string) error {
	err := GetValidator().Struct(v)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return fmt.Errorf("validation.structRules: %w", err)
	}
	fe := errs[0]
	label, ok := labels[fe.StructField()]
	if !ok {
		label = fe.StructField()
	}
	return fromFieldError(label, fe)
}
