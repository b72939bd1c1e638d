// Package shell runs the numbered menus of both programs.
//
// The shell only prompts and prints. Every operation is delegated to the
// domain packages, and each prompt validates its field as soon as it is
// typed so the first bad field aborts the operation, as the domain would.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Shell reads one line per prompt from in and prints to out.
type Shell struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Shell over the given input and output.
func New(in io.Reader, out io.Writer) *Shell {
	return &Shell{in: bufio.NewReader(in), out: out}
}

// Out is where the shell prints.
func (s *Shell) Out() io.Writer {
	return s.out
}

// Printf prints to the shell output.
func (s *Shell) Printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Prompt prints label and reads one line without its line ending. ok is
// false at end of input.
//
// WHY bufio.Reader AND NOT bufio.Scanner?
// ───────────────────────────────────────
// A Scanner stops at its buffer limit (64 KiB by default) and from then on
// reports "no more input", which the menu would take as Exit. ReadString
// grows as needed, so a very long line is just a long line.
//
// A last line without a trailing newline is still returned. A read error
// other than EOF is printed and then treated as end of input.
// ─────────────────────────────────────────────────────────────────────────────
func (s *Shell) Prompt(label string) (line string, ok bool) {
	fmt.Fprint(s.out, label)

	line, err := s.in.ReadString('\n')
	switch {
	case err == nil, errors.Is(err, io.EOF) && line != "":
		return strings.TrimRight(line, "\r\n"), true
	case errors.Is(err, io.EOF):
		fmt.Fprintln(s.out)
	default:
		s.Printf("\nError: could not read input: %v\n", err)
	}
	return "", false
}

// Item is one menu entry.
type Item struct {
	Label string
	Run   func()
}

// Menu is a titled list of items. Exit is always shown last.
type Menu struct {
	Title string
	Items []Item
	Exit  Item
}

// Run shows the menu until the exit item is chosen or input ends; both run
// the exit action. Anything else that is not a listed number prints an
// error and shows the menu again.
func (s *Shell) Run(m Menu) {
	last := len(m.Items) + 1
	for {
		s.render(m)

		choice, ok := s.Prompt(fmt.Sprintf("\nEnter your choice (1-%d): ", last))
		if !ok {
			m.Exit.Run()
			return
		}

		n, valid := parseChoice(choice, last)
		switch {
		case !valid:
			s.Printf("Error: Invalid choice. Please enter a number between 1 and %d.\n", last)
		case n == last:
			m.Exit.Run()
			return
		default:
			m.Items[n-1].Run()
		}
	}
}

func (s *Shell) render(m Menu) {
	rule := strings.Repeat("=", 50)
	s.Printf("\n%s\n%s\n%s\n", rule, m.Title, rule)
	for i, item := range m.Items {
		s.Printf("%d. %s\n", i+1, item.Label)
	}
	s.Printf("%d. %s\n%s\n", len(m.Items)+1, m.Exit.Label, rule)
}

// parseChoice accepts exactly the digits of a number in [1, last].
func parseChoice(choice string, last int) (int, bool) {
	choice = strings.TrimSpace(choice)
	for i := 1; i <= last; i++ {
		if choice == fmt.Sprint(i) {
			return i, true
		}
	}
	return 0, false
}
