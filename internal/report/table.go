package report

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"regextk/internal/fa"
)

// TransitionTable renders every transition of a, grouped by source state.
func TransitionTable(w io.Writer, a *fa.Automaton) error {
	table := tablewriter.NewWriter(w)
	table.Header("From", "Symbol", "To")
	for _, s := range a.States() {
		for _, t := range a.Transitions(s) {
			table.Append([]string{stateLabel(a, t.From), fa.SymbolString(t.Symbol), stateLabel(a, t.To)})
		}
	}
	return table.Render()
}

// Summary renders one row per graded problem.
func Summary(w io.Writer, grades []Grade) error {
	table := tablewriter.NewWriter(w)
	table.Header("Problem", "Solution", "Answer", "Result")
	for _, g := range grades {
		table.Append([]string{strconv.Itoa(g.Problem), oneLine(g.Solution), oneLine(g.Answer), g.Status()})
	}
	return table.Render()
}

// stateLabel marks the start state with > and accepting states with *.
func stateLabel(a *fa.Automaton, s fa.State) string {
	label := "q" + strconv.Itoa(int(s))
	if a.IsStart(s) {
		label = ">" + label
	}
	if a.IsAccepting(s) {
		label += "*"
	}
	return label
}
