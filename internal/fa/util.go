package fa

import "slices"

// FollowAll returns the states reached from any member of current by one
// transition on sym. Epsilon transitions are not followed.
func FollowAll(a *Automaton, current StateSet, sym rune) StateSet {
	if sym == Epsilon {
		return StateSet{}
	}
	var next []State
	for _, s := range current.ids {
		for _, t := range a.Transitions(s) {
			if t.Symbol == sym {
				next = append(next, t.To)
			}
		}
	}
	return NewStateSet(next...)
}

// Closure returns every state reachable from current through zero or more
// epsilon transitions.
func Closure(a *Automaton, current StateSet) StateSet {
	seen := make(map[State]bool, current.Len())
	work := slices.Clone(current.ids)
	for _, s := range work {
		seen[s] = true
	}
	for len(work) > 0 {
		s := work[len(work)-1]
		work = work[:len(work)-1]
		for _, t := range a.Transitions(s) {
			if t.Symbol == Epsilon && !seen[t.To] {
				seen[t.To] = true
				work = append(work, t.To)
			}
		}
	}
	out := make([]State, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	return NewStateSet(out...)
}

// ContainsAccepting reports whether any member of set is accepting in a.
func ContainsAccepting(a *Automaton, set StateSet) bool {
	for _, s := range set.ids {
		if a.IsAccepting(s) {
			return true
		}
	}
	return false
}

// Alphabet returns the sorted, distinct non-epsilon symbols used by a.
func Alphabet(a *Automaton) []rune {
	var out []rune
	for _, t := range a.trans {
		if t.Symbol != Epsilon {
			out = append(out, t.Symbol)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// UniversalAlphabet is the union of the alphabets of all given automata.
func UniversalAlphabet(automata ...*Automaton) []rune {
	var out []rune
	for _, a := range automata {
		out = append(out, Alphabet(a)...)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// IsDeterministic is false if a has any epsilon transition or any state with
// two transitions on the same symbol.
func IsDeterministic(a *Automaton) bool {
	for _, t := range a.trans {
		if t.Symbol == Epsilon {
			return false
		}
	}
	for _, list := range a.out {
		seen := make(map[rune]bool, len(list))
		for _, t := range list {
			if seen[t.Symbol] {
				return false
			}
			seen[t.Symbol] = true
		}
	}
	return true
}
