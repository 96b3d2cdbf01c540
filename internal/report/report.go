// Package report renders comparisons and grading results for people.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"regextk/internal/enumerate"
	"regextk/internal/equiv"
	"regextk/internal/fa"
	"regextk/internal/jflap"
	"regextk/internal/regex"
	"regextk/internal/transform"
)

// DefaultExamples is how many example strings are shown per difference.
const DefaultExamples = 4

// Config controls parsing and output.
type Config struct {
	Examples     int
	RegexOptions []regex.Option
	Opts         transform.Options
}

func (c Config) examples() int {
	if c.Examples <= 0 {
		return DefaultExamples
	}
	return c.Examples
}

// Quote shows a member string, writing ε for the empty string.
func Quote(s string) string {
	if s == "" {
		return "ε"
	}
	return fmt.Sprintf("%q", s)
}

// PrintMembers writes up to n members of the DFA a, one per line.
func PrintMembers(w io.Writer, a *fa.Automaton, n int) error {
	members, err := enumerate.Members(a, n, enumerate.Options{})
	if err != nil {
		return err
	}
	for _, m := range members {
		fmt.Fprintf(w, "    %s\n", Quote(m))
	}
	return nil
}

// CompareRegexps parses two expressions and reports how the second differs
// from the first. It returns whether they are equivalent.
func CompareRegexps(w io.Writer, first, second, labelFirst, labelSecond string, cfg Config) (bool, error) {
	a, err := regex.Parse(first, cfg.RegexOptions...)
	if err != nil {
		return false, fmt.Errorf("%s: %w", labelFirst, err)
	}
	b, err := regex.Parse(second, cfg.RegexOptions...)
	if err != nil {
		return false, fmt.Errorf("%s: %w", labelSecond, err)
	}

	c := equiv.Checker{Unknown: b, Known: a, Opts: cfg.Opts}
	result, err := c.Check()
	if err != nil {
		return false, err
	}
	if result.IsUnder() {
		fmt.Fprintf(w, "%s does not generate some strings in %s\n", labelSecond, labelFirst)
		if err := PrintMembers(w, c.Underproduced(), cfg.examples()); err != nil {
			return false, err
		}
	}
	if result.IsOver() {
		fmt.Fprintf(w, "%s generates some strings not in %s\n", labelSecond, labelFirst)
		if err := PrintMembers(w, c.Overproduced(), cfg.examples()); err != nil {
			return false, err
		}
	}
	if result == equiv.Equivalent {
		fmt.Fprintln(w, "Equivalent!")
	}
	return result == equiv.Equivalent, nil
}

// ErrMismatchedAnswers is returned when the answer list and the solution
// list have different lengths.
var ErrMismatchedAnswers = errors.New("number of answers does not match number of solutions")

// GradeRegexps compares each answer with the solution on the same line. A
// non-negative only restricts grading to that 0-based problem. The returned
// slice holds one entry per graded problem.
func GradeRegexps(w io.Writer, solutions, answers []string, only int, cfg Config) ([]Grade, error) {
	if len(solutions) != len(answers) {
		return nil, fmt.Errorf("%d solutions, %d answers: %w", len(solutions), len(answers), ErrMismatchedAnswers)
	}
	var grades []Grade
	for i := range solutions {
		if only >= 0 && i != only {
			continue
		}
		fmt.Fprintf(w, "Problem %d:\n\n", i+1)
		g := Grade{Problem: i + 1, Solution: solutions[i], Answer: answers[i]}
		ok, err := CompareRegexps(w, solutions[i], answers[i], "the language", "Your regular expression", cfg)
		if err != nil {
			g.Err = err
			fmt.Fprintf(w, "Error: %v\n", err)
		}
		g.Equivalent = ok
		grades = append(grades, g)
		fmt.Fprintln(w)
	}
	return grades, nil
}

// GradeAutomaton describes a student's imported automaton and compares it
// with the solution.
func GradeAutomaton(w io.Writer, student *fa.Automaton, features jflap.Features, solution *fa.Automaton, cfg Config) (equiv.Result, error) {
	fmt.Fprintf(w, "Your automaton has %d state(s)\n", student.NumStates())
	if features.Has(jflap.HasMultiSymbolTransition) {
		fmt.Fprintln(w, "Your automaton has transition(s) consuming multiple symbols")
	}
	non := ""
	if features.Has(jflap.Nondeterministic) {
		non = "non"
	}
	fmt.Fprintf(w, "Your automaton is %sdeterministic\n\n", non)

	c := equiv.Checker{Unknown: student, Known: solution, Opts: cfg.Opts}
	result, err := c.Check()
	if err != nil {
		return result, err
	}
	if result == equiv.Equivalent {
		fmt.Fprintln(w, "Equivalent!")
	}
	if result.IsUnder() {
		fmt.Fprintln(w, "Your automaton rejects some strings in the language:")
		if err := PrintMembers(w, c.Underproduced(), cfg.examples()); err != nil {
			return result, err
		}
	}
	if result.IsOver() {
		fmt.Fprintln(w, "Your automaton accepts some strings not in the language:")
		if err := PrintMembers(w, c.Overproduced(), cfg.examples()); err != nil {
			return result, err
		}
	}
	return result, nil
}

// Grade is the outcome of one graded problem.
type Grade struct {
	Problem    int
	Solution   string
	Answer     string
	Equivalent bool
	Err        error
}

func (g Grade) Status() string {
	switch {
	case g.Err != nil:
		return "error"
	case g.Equivalent:
		return "correct"
	}
	return "incorrect"
}

func oneLine(s string) string { return strings.Join(strings.Fields(s), " ") }
