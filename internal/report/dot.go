package report

import (
	"fmt"
	"io"

	"regextk/internal/fa"
)

// Dot writes a Graphviz description of a.
func Dot(w io.Writer, a *fa.Automaton) {
	fmt.Fprintln(w, "digraph G {")
	fmt.Fprintln(w, "    rankdir=LR;")
	for _, s := range a.States() {
		shape := "circle"
		if a.IsAccepting(s) {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "    q%d [shape=%s];\n", s, shape)
	}
	for _, t := range a.AllTransitions() {
		fmt.Fprintf(w, "    q%d -> q%d [label=%q];\n", t.From, t.To, fa.SymbolString(t.Symbol))
	}
	if start, err := a.StartState(); err == nil {
		fmt.Fprintf(w, "    _start [shape=point]; _start -> q%d;\n", start)
	}
	fmt.Fprintln(w, "}")
}
