package shell

import (
	"errors"
	"strings"

	"github.com/aanand-mishra/records-cli/internal/grades"
	"github.com/aanand-mishra/records-cli/internal/types"
	"github.com/aanand-mishra/records-cli/internal/utils/response"
	"github.com/aanand-mishra/records-cli/internal/validation"
)

// StudentsMenu returns the six-choice menu of the grading program.
func StudentsMenu(s *Shell, gb *grades.Gradebook) Menu {
	c := studentCommands{sh: s, gb: gb}
	return Menu{
		Title: "Student Enrollment and Grading Management System",
		Items: []Item{
			{Label: "Add Student Record", Run: c.add},
			{Label: "View All Records", Run: c.list},
			{Label: "Search Student by ID", Run: c.search},
			{Label: "Update Student Scores", Run: c.updateScores},
			{Label: "Compute Class Average", Run: c.average},
		},
		Exit: Item{Label: "Exit", Run: c.exit},
	}
}

type studentCommands struct {
	sh *Shell
	gb *grades.Gradebook
}

func (c studentCommands) fail(err error) {
	response.WriteError(c.sh.Out(), validation.StudentIDLabel, err)
}

func (c studentCommands) saved(err error) bool {
	var perr *types.PersistenceError
	switch {
	case err == nil:
		c.sh.Printf("Records saved successfully.\n")
		return true
	case errors.As(err, &perr):
		c.fail(err)
		c.sh.Printf("The change is kept in memory but is not on disk.\n")
		return true
	default:
		c.fail(err)
		return false
	}
}

// promptText reads a field that must be non-empty.
func (c studentCommands) promptText(prompt, label string) (string, bool) {
	v, ok := c.sh.Prompt(prompt)
	if !ok {
		return "", false
	}
	if err := validation.Text(label, v); err != nil {
		c.fail(err)
		return "", false
	}
	return v, true
}

// promptScore reads a score in [0, 100].
func (c studentCommands) promptScore(prompt, label string) (float64, bool) {
	raw, ok := c.sh.Prompt(prompt)
	if !ok {
		return 0, false
	}
	score, err := validation.ParseScore(label, raw)
	if err != nil {
		c.fail(err)
		return 0, false
	}
	return score, true
}

func (c studentCommands) add() {
	c.sh.Printf("\n=== Add Student Record ===\n")

	id, ok := c.sh.Prompt("Enter Student ID: ")
	if !ok {
		return
	}
	if err := validation.ID(validation.StudentIDLabel, id, c.gb.Exists); err != nil {
		c.fail(err)
		return
	}

	name, ok := c.promptText("Enter Full Name: ", validation.NameLabel)
	if !ok {
		return
	}
	course, ok := c.promptText("Enter Course: ", validation.CourseLabel)
	if !ok {
		return
	}
	quiz, ok := c.promptScore("Enter Quiz Score (0-100): ", validation.QuizLabel)
	if !ok {
		return
	}
	exam, ok := c.promptScore("Enter Exam Score (0-100): ", validation.ExamLabel)
	if !ok {
		return
	}

	r, err := c.gb.Add(types.StudentRecord{ID: id, Name: name, Course: course, Quiz: quiz, Exam: exam})
	if c.saved(err) {
		c.sh.Printf("\nStudent record added successfully! Final Grade: %.2f\n", r.Final)
	}
}

func (c studentCommands) list() {
	c.sh.Printf("\n=== All Student Records ===\n")

	records := c.gb.List()
	if len(records) == 0 {
		c.sh.Printf("No records found.\n")
		return
	}
	response.WriteStudents(c.sh.Out(), records)
}

func (c studentCommands) search() {
	c.sh.Printf("\n=== Search Student by ID ===\n")

	id, ok := c.sh.Prompt("Enter Student ID to search: ")
	if !ok {
		return
	}
	r, err := c.gb.Find(strings.TrimSpace(id))
	if err != nil {
		c.fail(err)
		return
	}
	c.sh.Printf("\nStudent Found:\n")
	response.WriteStudent(c.sh.Out(), r)
}

func (c studentCommands) updateScores() {
	c.sh.Printf("\n=== Update Student Scores ===\n")

	id, ok := c.sh.Prompt("Enter Student ID to update: ")
	if !ok {
		return
	}
	id = strings.TrimSpace(id)
	r, err := c.gb.Find(id)
	if err != nil {
		c.fail(err)
		return
	}

	c.sh.Printf("\nCurrent Scores for %s:\n", r.Name)
	c.sh.Printf("Quiz Score: %.2f\n", r.Quiz)
	c.sh.Printf("Exam Score: %.2f\n", r.Exam)
	c.sh.Printf("Final Grade: %.2f\n", r.Final)

	quiz, ok := c.promptScore("\nEnter new Quiz Score (0-100): ", validation.QuizLabel)
	if !ok {
		return
	}
	exam, ok := c.promptScore("Enter new Exam Score (0-100): ", validation.ExamLabel)
	if !ok {
		return
	}

	r, err = c.gb.UpdateScores(id, quiz, exam)
	if c.saved(err) {
		c.sh.Printf("\nScores updated successfully! New Final Grade: %.2f\n", r.Final)
	}
}

func (c studentCommands) average() {
	c.sh.Printf("\n=== Compute Class Average ===\n")

	avg, err := c.gb.ClassAverage()
	if errors.Is(err, types.ErrEmptyStore) {
		c.sh.Printf("No records found. Cannot compute average.\n")
		return
	}
	if err != nil {
		c.fail(err)
		return
	}
	c.sh.Printf("\nTotal Students: %d\n", c.gb.Len())
	c.sh.Printf("Class Average (Final Grade): %.2f\n", avg)
}

func (c studentCommands) exit() {
	c.sh.Printf("\nSaving all records...\n")
	c.saved(c.gb.Save())
	c.sh.Printf("Thank you for using the Student Management System!\n")
}
