package transform

import "regextk/internal/fa"

// CreateExplicitRejectState routes every missing (state, symbol) transition
// to a single reject state that loops on the whole alphabet. The result has
// the same determinism as the input.
type CreateExplicitRejectState struct {
	single

	// Alphabet to totalize over. Nil means the automaton's own alphabet.
	Alphabet []rune
}

func NewCreateExplicitRejectState(alphabet []rune) *CreateExplicitRejectState {
	return &CreateExplicitRejectState{
		single:   single{name: "CreateExplicitRejectState"},
		Alphabet: alphabet,
	}
}

func (t *CreateExplicitRejectState) Execute(mode Mode) (*fa.Automaton, error) {
	if err := checkMode(mode); err != nil {
		return nil, err
	}
	in, err := t.get()
	if err != nil {
		return nil, err
	}
	if _, err := in.StartState(); err != nil {
		return nil, err
	}
	a := prepare(in, mode)

	alphabet := t.Alphabet
	if alphabet == nil {
		alphabet = fa.Alphabet(a)
	}

	reject := fa.State(-1)
	for _, s := range a.States() {
		for _, sym := range alphabet {
			if _, ok := a.Transition(s, sym); ok {
				continue
			}
			if reject < 0 {
				reject = a.CreateState()
				for _, c := range alphabet {
					if err := a.CreateTransition(reject, reject, c); err != nil {
						return nil, err
					}
				}
			}
			if err := a.CreateTransition(s, reject, sym); err != nil {
				return nil, err
			}
		}
	}
	return a, nil
}
