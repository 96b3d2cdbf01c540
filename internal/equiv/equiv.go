// Package equiv decides language emptiness and compares two automata.
package equiv

import (
	"fmt"

	"regextk/internal/fa"
	"regextk/internal/transform"
)

// NonEmpty reports whether a accepts at least one string, by searching
// from the start state along every transition (epsilon included).
func NonEmpty(a *fa.Automaton) (bool, error) {
	start, err := a.StartState()
	if err != nil {
		return false, err
	}
	seen := make([]bool, a.NumStates())
	seen[start] = true
	queue := []fa.State{start}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		if a.IsAccepting(s) {
			return true, nil
		}
		for _, t := range a.Transitions(s) {
			if !seen[t.To] {
				seen[t.To] = true
				queue = append(queue, t.To)
			}
		}
	}
	return false, nil
}

// Result classifies an unknown automaton against a known one.
type Result int

const (
	Equivalent Result = iota
	// Over: the unknown accepts strings the known one rejects.
	Over
	// Under: the unknown rejects strings the known one accepts.
	Under
	OverAndUnder
)

func (r Result) IsOver() bool  { return r == Over || r == OverAndUnder }
func (r Result) IsUnder() bool { return r == Under || r == OverAndUnder }

func (r Result) String() string {
	switch r {
	case Equivalent:
		return "EQUIVALENT"
	case Over:
		return "OVER"
	case Under:
		return "UNDER"
	case OverAndUnder:
		return "OVER_AND_UNDER"
	}
	return fmt.Sprintf("Result(%d)", int(r))
}

// Difference returns a DFA for a − b without touching either input.
func Difference(a, b *fa.Automaton, opts transform.Options) (*fa.Automaton, error) {
	return transform.Apply(transform.NewDifference(opts), transform.Nondestructive, a, b)
}

// Checker compares Unknown against Known. After Check, Overproduced and
// Underproduced hold the two difference automata so examples can be listed.
type Checker struct {
	Unknown *fa.Automaton
	Known   *fa.Automaton
	Opts    transform.Options

	overproduced  *fa.Automaton
	underproduced *fa.Automaton
	result        Result
}

func (c *Checker) Check() (Result, error) {
	if c.Unknown == nil || c.Known == nil {
		return Equivalent, fmt.Errorf("equivalence check needs both automata: %w", transform.ErrArity)
	}
	over, err := Difference(c.Unknown, c.Known, c.Opts)
	if err != nil {
		return Equivalent, fmt.Errorf("unknown − known: %w", err)
	}
	under, err := Difference(c.Known, c.Unknown, c.Opts)
	if err != nil {
		return Equivalent, fmt.Errorf("known − unknown: %w", err)
	}
	isOver, err := NonEmpty(over)
	if err != nil {
		return Equivalent, err
	}
	isUnder, err := NonEmpty(under)
	if err != nil {
		return Equivalent, err
	}

	c.overproduced, c.underproduced = over, under
	switch {
	case !isOver && !isUnder:
		c.result = Equivalent
	case !isOver:
		c.result = Under
	case !isUnder:
		c.result = Over
	default:
		c.result = OverAndUnder
	}
	return c.result, nil
}

func (c *Checker) Result() Result { return c.result }

// Overproduced accepts exactly the strings Unknown accepts and Known rejects.
func (c *Checker) Overproduced() *fa.Automaton { return c.overproduced }

// Underproduced accepts exactly the strings Known accepts and Unknown rejects.
func (c *Checker) Underproduced() *fa.Automaton { return c.underproduced }

// Equal reports whether a and b recognize the same language.
func Equal(a, b *fa.Automaton, opts transform.Options) (bool, error) {
	c := Checker{Unknown: a, Known: b, Opts: opts}
	r, err := c.Check()
	return r == Equivalent, err
}
