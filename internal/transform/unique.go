package transform

import "regextk/internal/fa"

// MakeUniqueAcceptingState funnels every accepting state into one new
// accepting state through epsilon transitions. An automaton that already has
// exactly one accepting state is returned as is.
type MakeUniqueAcceptingState struct {
	single
}

func NewMakeUniqueAcceptingState() *MakeUniqueAcceptingState {
	return &MakeUniqueAcceptingState{single: single{name: "MakeUniqueAcceptingState"}}
}

func (t *MakeUniqueAcceptingState) Execute(mode Mode) (*fa.Automaton, error) {
	if err := checkMode(mode); err != nil {
		return nil, err
	}
	in, err := t.get()
	if err != nil {
		return nil, err
	}
	a := prepare(in, mode)

	accepting := a.AcceptingStates()
	if len(accepting) == 1 {
		return a, nil
	}
	final := a.CreateState()
	a.SetAccepting(final, true)
	for _, s := range accepting {
		a.SetAccepting(s, false)
		if err := a.CreateTransition(s, final, fa.Epsilon); err != nil {
			return nil, err
		}
	}
	return a, nil
}
