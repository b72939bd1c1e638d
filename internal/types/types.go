// Package types holds the record models shared across the application.
// Keeping them in one place prevents import cycles: storage, validation,
// the domain packages and the shell can all import types without
// depending on each other.
package types

// Weights of the two components of a final grade.
const (
	QuizWeight = 0.4
	ExamWeight = 0.6
)

// Product is one line of the inventory.
//
// The validate tags document the field rules; internal/validation applies
// them one field at a time so the first failing field wins.
type Product struct {
	ID       string  `validate:"required"`
	Name     string  `validate:"required"`
	Price    float64 `validate:"finite,gt=0"`
	Quantity int     `validate:"gte=0"`
}

// Key returns the product ID. The store looks records up by key.
func (p Product) Key() string { return p.ID }

// Value is price × quantity for this product.
func (p Product) Value() float64 {
	return p.Price * float64(p.Quantity)
}

// StudentRecord holds one student's enrolment and scores.
//
// Final is derived from Quiz and Exam. Use SetScores to change the scores so
// Final is always recomputed.
type StudentRecord struct {
	ID     string  `validate:"required"`
	Name   string  `validate:"required"`
	Course string  `validate:"required"`
	Quiz   float64 `validate:"finite,gte=0,lte=100"`
	Exam   float64 `validate:"finite,gte=0,lte=100"`
	Final  float64
}

// Key returns the student ID.
func (s StudentRecord) Key() string { return s.ID }

// SetScores replaces both scores and recomputes the final grade.
func (s *StudentRecord) SetScores(quiz, exam float64) {
	s.Quiz = quiz
	s.Exam = exam
	s.Final = FinalGrade(quiz, exam)
}

// FinalGrade computes quiz×0.4 + exam×0.6.
func FinalGrade(quiz, exam float64) float64 {
	return quiz*QuizWeight + exam*ExamWeight
}
