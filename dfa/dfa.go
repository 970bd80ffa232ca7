// Package dfa models deterministic finite automata and simulates them over
// input strings.
package dfa

// Symbol is a single character in an automaton's alphabet.
type Symbol rune

// State identifies a state of an automaton. A state has no behavior of its
// own; membership in an automaton's state set is what gives it meaning.
type State string

// transitionKey identifies one cell of the transition table.
type transitionKey struct {
	from State
	on   Symbol
}

// A DFA is a fully-specified deterministic finite automaton. It is immutable
// after Build and can be shared across goroutines without locking.
type DFA struct {
	alphabet    []Symbol
	states      []State
	initial     State
	alphabetSet map[Symbol]bool
	stateSet    map[State]bool
	accepting   map[State]bool
	delta       map[transitionKey]State
}

// Alphabet returns the symbols the automaton is defined over, in declaration
// order.
func (d *DFA) Alphabet() []Symbol {
	alphabet := make([]Symbol, len(d.alphabet))
	copy(alphabet, d.alphabet)

	return alphabet
}

// States returns the automaton's states in declaration order.
func (d *DFA) States() []State {
	states := make([]State, len(d.states))
	copy(states, d.states)

	return states
}

// InitialState returns the state a run starts from.
func (d *DFA) InitialState() State {
	return d.initial
}

// IsAccepting returns whether q belongs to the accepting set.
func (d *DFA) IsAccepting(q State) bool {
	return d.accepting[q]
}

// AcceptingStates returns the accepting states in declaration order.
func (d *DFA) AcceptingStates() []State {
	accepting := make([]State, 0, len(d.accepting))
	for _, q := range d.states {
		if d.accepting[q] {
			accepting = append(accepting, q)
		}
	}

	return accepting
}

// InAlphabet returns whether s is one of the automaton's declared symbols.
func (d *DFA) InAlphabet(s Symbol) bool {
	return d.alphabetSet[s]
}

// Step applies the transition function once. It is total over the declared
// states and alphabet; Build guarantees a target exists for every pair.
// Calling Step with an undeclared state or symbol is a programmer error and
// panics.
func (d *DFA) Step(q State, s Symbol) State {
	to, found := d.delta[transitionKey{from: q, on: s}]
	if !found {
		panic("step outside the transition function's domain: state " +
			string(q) + ", symbol " + string(rune(s)))
	}

	return to
}
