// Package validation applies the field rules for products and student
// records using go-playground/validator v10.
//
// Rules run one field at a time in prompt order and the first failure wins;
// errors are never aggregated. Every failure is a *types.ValidationError
// whose Message is ready to show to the user.
package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/aanand-mishra/records-cli/internal/types"
	"github.com/go-playground/validator/v10"
)

// Score bounds, inclusive.
const (
	MinScore = 0.0
	MaxScore = 100.0
)

// Field labels used in messages.
const (
	ProductIDLabel   = "Product ID"
	ProductNameLabel = "Product name"
	PriceLabel       = "Price"
	QuantityLabel    = "Quantity"
	StudentIDLabel   = "Student ID"
	NameLabel        = "Name"
	CourseLabel      = "Course"
	QuizLabel        = "Quiz score"
	ExamLabel        = "Exam score"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// GetValidator returns the shared validator with the "finite" rule
// registered.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Registration only fails for an empty tag or nil func.
		_ = validate.RegisterValidation("finite", isFinite)
	})
	return validate
}

func isFinite(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return true
	}
}

// Text checks that a free-text field is non-empty after trimming.
func Text(label, value string) error {
	return check(label, strings.TrimSpace(value), "required")
}

// ID checks that id is non-empty after trimming and, when exists is
// non-nil, that no record already uses it (case-sensitive exact match).
func ID(label, id string, exists func(string) bool) error {
	id = strings.TrimSpace(id)
	if err := Text(label, id); err != nil {
		return err
	}
	if exists != nil && exists(id) {
		return &types.ValidationError{
			Field:   label,
			Rule:    "unique",
			Value:   id,
			Message: fmt.Sprintf("%s already exists.", label),
			Err:     types.ErrDuplicateID,
		}
	}
	return nil
}

// Price checks that price is finite and strictly positive.
func Price(price float64) error {
	return check(PriceLabel, price, "finite,gt=0")
}

// ParsePrice parses and checks a price typed by the user.
func ParsePrice(s string) (float64, error) {
	price, err := parseFloat(PriceLabel, s)
	if err != nil {
		return 0, err
	}
	return price, Price(price)
}

// Quantity checks that quantity is not negative.
func Quantity(quantity int) error {
	return check(QuantityLabel, quantity, "gte=0")
}

// ParseQuantity parses and checks a quantity typed by the user.
func ParseQuantity(s string) (int, error) {
	s = strings.TrimSpace(s)
	quantity, err := strconv.Atoi(s)
	if err != nil {
		return 0, &types.ValidationError{
			Field:   QuantityLabel,
			Rule:    "int",
			Value:   s,
			Message: fmt.Sprintf("%s must be a valid integer.", QuantityLabel),
			Err:     err,
		}
	}
	return quantity, Quantity(quantity)
}

// Score checks that a quiz or exam score is finite and within [0, 100].
func Score(label string, score float64) error {
	err := check(label, score, "finite,gte=0,lte=100")
	var verr *types.ValidationError
	if errors.As(err, &verr) && (verr.Rule == "gte" || verr.Rule == "lte") {
		verr.Message = fmt.Sprintf("%s must be between %g and %g.", label, MinScore, MaxScore)
	}
	return err
}

// ParseScore parses and checks a score typed by the user.
func ParseScore(label, s string) (float64, error) {
	score, err := parseFloat(label, s)
	if err != nil {
		return 0, err
	}
	return score, Score(label, score)
}

func parseFloat(label, s string) (float64, error) {
	s = strings.TrimSpace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &types.ValidationError{
			Field:   label,
			Rule:    "number",
			Value:   s,
			Message: fmt.Sprintf("%s must be a valid number.", label),
			Err:     err,
		}
	}
	return f, nil
}

// check runs a single validator tag list against value and converts the
// first failing tag into a *types.ValidationError.
func check(label string, value any, tag string) error {
	err := GetValidator().Var(value, tag)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return fmt.Errorf("validation.check: %s: %w", label, err)
	}
	return fromFieldError(label, errs[0])
}

func fromFieldError(label string, fe validator.FieldError) *types.ValidationError {
	return &types.ValidationError{
		Field:   label,
		Rule:    fe.Tag(),
		Value:   fmt.Sprint(fe.Value()),
		Message: describe(label, fe.Tag(), fe.Param()),
	}
}

// describe turns a failed validator tag into a sentence.
func describe(label, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s cannot be empty.", label)
	case "finite":
		return fmt.Sprintf("%s must be a finite number.", label)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s.", label, param)
	case "gte":
		if param == "0" {
			return fmt.Sprintf("%s cannot be negative.", label)
		}
		return fmt.Sprintf("%s must be at least %s.", label, param)
	case "lte":
		return fmt.Sprintf("%s must be at most %s.", label, param)
	default:
		return fmt.Sprintf("%s is invalid.", label)
	}
}
