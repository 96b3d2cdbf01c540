package transform

import "regextk/internal/fa"

// Complement builds an automaton for the strings over Alphabet that its
// input rejects. The result is always deterministic; a nondeterministic
// input is determinized first.
type Complement struct {
	single

	// Alphabet defines the universe the complement is taken in. Nil means
	// the input's own alphabet.
	Alphabet []rune
	Opts     Options
}

func NewComplement(alphabet []rune, opts Options) *Complement {
	return &Complement{
		single:   single{name: "Complement"},
		Alphabet: alphabet,
		Opts:     opts,
	}
}

func (t *Complement) Execute(mode Mode) (*fa.Automaton, error) {
	if err := checkMode(mode); err != nil {
		return nil, err
	}
	a, err := t.get()
	if err != nil {
		return nil, err
	}

	if !fa.IsDeterministic(a) {
		if a, err = ToDFA(a, t.Opts); err != nil {
			return nil, err
		}
		// the DFA is ours, no need to copy it again
		mode = Destructive
	}

	alphabet := t.Alphabet
	if alphabet == nil {
		alphabet = fa.Alphabet(a)
	}
	if a, err = Apply(NewCreateExplicitRejectState(alphabet), mode, a); err != nil {
		return nil, err
	}

	for _, s := range a.States() {
		a.SetAccepting(s, !a.IsAccepting(s))
	}
	if _, err := a.StartState(); err != nil {
		return nil, err
	}
	return a, nil
}
