// Package jflap imports finite automata saved by JFLAP (.jff files).
package jflap

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"regextk/internal/fa"
)

// ErrFormat is wrapped by every error caused by the file's content.
var ErrFormat = errors.New("not a JFLAP finite automaton")

// Features records properties of the imported automaton that a grader may
// want to report.
type Features uint

const (
	// HasMultiSymbolTransition is set when some transition read more than
	// one symbol and was split through hidden states.
	HasMultiSymbolTransition Features = 1 << iota
	// Nondeterministic is set when the imported automaton is not a DFA.
	Nondeterministic
)

func (f Features) Has(x Features) bool { return f&x != 0 }

type structure struct {
	XMLName     xml.Name     `xml:"structure"`
	Type        string       `xml:"type"`
	Automaton   *automaton   `xml:"automaton"`
	States      []state      `xml:"state"`
	Transitions []transition `xml:"transition"`
}

type automaton struct {
	States      []state      `xml:"state"`
	Transitions []transition `xml:"transition"`
}

type state struct {
	ID      string    `xml:"id,attr"`
	Name    string    `xml:"name,attr"`
	Initial *struct{} `xml:"initial"`
	Final   *struct{} `xml:"final"`
}

type transition struct {
	From string  `xml:"from"`
	To   string  `xml:"to"`
	Read *string `xml:"read"`
}

// Import reads a JFLAP document from r. States keep their document order;
// hidden states for multi-symbol transitions are appended after them.
func Import(r io.Reader) (*fa.Automaton, Features, error) {
	var doc structure
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if strings.TrimSpace(doc.Type) != "fa" {
		return nil, 0, fmt.Errorf("%w: type is %q", ErrFormat, doc.Type)
	}
	states, transitions := doc.States, doc.Transitions
	if doc.Automaton != nil {
		states, transitions = doc.Automaton.States, doc.Automaton.Transitions
	}

	result := fa.New()
	byID := make(map[int]fa.State, len(states))
	for _, st := range states {
		id, err := strconv.Atoi(strings.TrimSpace(st.ID))
		if err != nil {
			return nil, 0, fmt.Errorf("%w: state id %q", ErrFormat, st.ID)
		}
		if _, dup := byID[id]; dup {
			return nil, 0, fmt.Errorf("%w: duplicate state id %d", ErrFormat, id)
		}
		s := result.CreateState()
		byID[id] = s
		result.SetStart(s, st.Initial != nil)
		result.SetAccepting(s, st.Final != nil)
	}

	var features Features
	for _, tr := range transitions {
		from, err := lookup(byID, tr.From, "from")
		if err != nil {
			return nil, 0, err
		}
		to, err := lookup(byID, tr.To, "to")
		if err != nil {
			return nil, 0, err
		}
		if tr.Read == nil {
			return nil, 0, fmt.Errorf("%w: transition %d -> %d has no read element", ErrFormat, from, to)
		}

		symbols := []rune(*tr.Read)
		switch len(symbols) {
		case 0:
			err = result.CreateTransition(from, to, fa.Epsilon)
		case 1:
			err = result.CreateTransition(from, to, symbols[0])
		default:
			last := from
			for _, c := range symbols[:len(symbols)-1] {
				hidden := result.CreateState()
				if err = result.CreateTransition(last, hidden, c); err != nil {
					break
				}
				last = hidden
			}
			if err == nil {
				err = result.CreateTransition(last, to, symbols[len(symbols)-1])
			}
			features |= HasMultiSymbolTransition
		}
		if err != nil {
			return nil, 0, err
		}
	}

	if !fa.IsDeterministic(result) {
		features |= Nondeterministic
	}
	return result, features, nil
}

func lookup(byID map[int]fa.State, raw, end string) (fa.State, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return -1, fmt.Errorf("%w: transition %s %q", ErrFormat, end, raw)
	}
	s, ok := byID[id]
	if !ok {
		return -1, fmt.Errorf("%w: transition %s nonexistent state with id=%d", ErrFormat, end, id)
	}
	return s, nil
}
