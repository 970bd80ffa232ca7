package desc

import (
	"fmt"
	"strings"

	"github.com/formalab/dfasim/dfa"
)

// Format renders an automaton as a human-readable block, one line per
// component and one line per state's transitions.
func Format(d *dfa.DFA) string {
	var sb strings.Builder

	sb.WriteString("===== DFA =====\n")
	fmt.Fprintf(&sb, "  Q             : %s\n", stateList(d.States()))
	fmt.Fprintf(&sb, "  Sigma         : %s\n", symbolList(d.Alphabet()))
	fmt.Fprintf(&sb, "  Initial State : %s\n", d.InitialState())
	fmt.Fprintf(&sb, "  Accepting     : %s\n", stateList(d.AcceptingStates()))
	sb.WriteString("  Transitions   :\n")

	for _, q := range d.States() {
		cells := make([]string, 0, len(d.Alphabet()))
		for _, s := range d.Alphabet() {
			cells = append(cells,
				fmt.Sprintf("%c->%s", rune(s), d.Step(q, s)))
		}
		fmt.Fprintf(&sb, "    %s: %s\n", q, strings.Join(cells, ", "))
	}

	return sb.String()
}

func stateList(states []dfa.State) string {
	names := make([]string, 0, len(states))
	for _, q := range states {
		names = append(names, string(q))
	}

	return "{" + strings.Join(names, ", ") + "}"
}

func symbolList(symbols []dfa.Symbol) string {
	chars := make([]string, 0, len(symbols))
	for _, s := range symbols {
		chars = append(chars, string(rune(s)))
	}

	return "{" + strings.Join(chars, ", ") + "}"
}
