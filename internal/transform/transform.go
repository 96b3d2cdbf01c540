// Package transform implements the automaton algebra: every operation is a
// Transformer that accumulates inputs with Add and produces one automaton
// with Execute.
package transform

import (
	"errors"
	"fmt"
	"log/slog"

	"regextk/internal/fa"
)

// Mode selects whether Execute may mutate its inputs.
type Mode int

const (
	// Destructive consumes and mutates the inputs in place.
	Destructive Mode = iota + 1
	// Nondestructive works on deep copies and leaves the inputs untouched.
	Nondestructive
)

func (m Mode) String() string {
	switch m {
	case Destructive:
		return "DESTRUCTIVE"
	case Nondestructive:
		return "NONDESTRUCTIVE"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

var (
	// ErrArity is returned for a second input to a single-input transformer,
	// or too few (or too many) inputs to a multi-input one.
	ErrArity = errors.New("arity violation")
	// ErrMode is returned when Execute gets a Mode other than Destructive or
	// Nondestructive. The mode is never defaulted.
	ErrMode = errors.New("invalid transformer mode")
	// ErrTooManyStates is returned when subset construction exceeds
	// Options.MaxDFAStates.
	ErrTooManyStates = errors.New("too many DFA states")
)

// Transformer is the contract shared by every operation in this package.
type Transformer interface {
	Add(a *fa.Automaton) error
	Execute(mode Mode) (*fa.Automaton, error)
}

// DefaultMaxDFAStates bounds subset construction when Options leaves it zero.
const DefaultMaxDFAStates = 1 << 16

// Options configures transformers that may determinize their input.
type Options struct {
	// MaxDFAStates caps the states created by subset construction. Zero means
	// DefaultMaxDFAStates; negative means unbounded.
	MaxDFAStates int

	// Logger for construction statistics. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		MaxDFAStates: DefaultMaxDFAStates,
	}
}

func (o Options) maxStates() int {
	if o.MaxDFAStates == 0 {
		return DefaultMaxDFAStates
	}
	return o.MaxDFAStates
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

func checkMode(m Mode) error {
	if m != Destructive && m != Nondestructive {
		return fmt.Errorf("%v: %w", m, ErrMode)
	}
	return nil
}

// prepare clones a when the mode asks for it.
func prepare(a *fa.Automaton, m Mode) *fa.Automaton {
	if m == Nondestructive {
		return a.Clone()
	}
	return a
}

// single holds the input of a one-input transformer.
type single struct {
	name  string
	input *fa.Automaton
}

func (s *single) Add(a *fa.Automaton) error {
	if s.input != nil {
		return fmt.Errorf("%s takes a single input automaton: %w", s.name, ErrArity)
	}
	if a == nil {
		return fmt.Errorf("%s: nil input automaton: %w", s.name, ErrArity)
	}
	s.input = a
	return nil
}

func (s *single) get() (*fa.Automaton, error) {
	if s.input == nil {
		return nil, fmt.Errorf("%s has no input automaton: %w", s.name, ErrArity)
	}
	return s.input, nil
}

// multi holds the inputs of a transformer taking min..max automata. A max
// of zero means unbounded.
type multi struct {
	name     string
	min, max int
	inputs   []*fa.Automaton
}

func (m *multi) Add(a *fa.Automaton) error {
	if m.max > 0 && len(m.inputs) >= m.max {
		return fmt.Errorf("%s takes at most %d input automata: %w", m.name, m.max, ErrArity)
	}
	if a == nil {
		return fmt.Errorf("%s: nil input automaton: %w", m.name, ErrArity)
	}
	m.inputs = append(m.inputs, a)
	return nil
}

func (m *multi) get() ([]*fa.Automaton, error) {
	if len(m.inputs) < m.min {
		return nil, fmt.Errorf("%s needs at least %d input automata, has %d: %w",
			m.name, m.min, len(m.inputs), ErrArity)
	}
	return m.inputs, nil
}

// Apply adds every input to t and executes it.
func Apply(t Transformer, mode Mode, inputs ...*fa.Automaton) (*fa.Automaton, error) {
	for _, a := range inputs {
		if err := t.Add(a); err != nil {
			return nil, err
		}
	}
	return t.Execute(mode)
}
