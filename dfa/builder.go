package dfa

type transitionDecl struct {
	from State
	on   Symbol
	to   State
}

// Builder can be used to build a DFA.
type Builder struct {
	alphabet    []Symbol
	states      []State
	initial     State
	accepting   []State
	transitions []transitionDecl
}

// MakeBuilder creates a new builder.
func MakeBuilder() Builder {
	return Builder{}
}

// WithAlphabet adds symbols to the automaton's alphabet.
func (b Builder) WithAlphabet(symbols ...Symbol) Builder {
	b.alphabet = append(b.alphabet, symbols...)
	return b
}

// WithStates adds states to the automaton's state set.
func (b Builder) WithStates(states ...State) Builder {
	b.states = append(b.states, states...)
	return b
}

// WithInitialState sets the state runs start from.
func (b Builder) WithInitialState(q State) Builder {
	b.initial = q
	return b
}

// WithAcceptingStates marks states as accepting.
func (b Builder) WithAcceptingStates(states ...State) Builder {
	b.accepting = append(b.accepting, states...)
	return b
}

// WithTransition adds one cell of the transition table: reading symbol `on`
// in state `from` moves the automaton to state `to`.
func (b Builder) WithTransition(from State, on Symbol, to State) Builder {
	b.transitions = append(b.transitions,
		transitionDecl{from: from, on: on, to: to})
	return b
}

// Build validates the declared automaton and returns it. It fails with a
// *MalformedAutomatonError when the initial state or any accepting state is
// undeclared, when a transition references an undeclared state or symbol,
// or when the transition table does not cover every (state, symbol) pair.
func (b Builder) Build() (*DFA, error) {
	d := &DFA{
		alphabet:    b.alphabet,
		states:      b.states,
		initial:     b.initial,
		alphabetSet: make(map[Symbol]bool),
		stateSet:    make(map[State]bool),
		accepting:   make(map[State]bool),
		delta:       make(map[transitionKey]State),
	}

	if err := b.collectDeclarations(d); err != nil {
		return nil, err
	}

	if err := b.collectTransitions(d); err != nil {
		return nil, err
	}

	if err := b.checkCompleteness(d); err != nil {
		return nil, err
	}

	return d, nil
}

func (b Builder) collectDeclarations(d *DFA) error {
	for _, s := range b.alphabet {
		if d.alphabetSet[s] {
			return malformedf("symbol %q declared twice", rune(s))
		}
		d.alphabetSet[s] = true
	}

	for _, q := range b.states {
		if d.stateSet[q] {
			return malformedf("state %q declared twice", q)
		}
		d.stateSet[q] = true
	}

	if !d.stateSet[b.initial] {
		return malformedf("initial state %q is not in the set of states",
			b.initial)
	}

	for _, q := range b.accepting {
		if !d.stateSet[q] {
			return malformedf("accepting state %q is not in the set of states",
				q)
		}
		d.accepting[q] = true
	}

	return nil
}

func (b Builder) collectTransitions(d *DFA) error {
	for _, t := range b.transitions {
		if !d.stateSet[t.from] {
			return malformedf("transition from undeclared state %q", t.from)
		}

		if !d.alphabetSet[t.on] {
			return malformedf("transition on symbol %q, "+
				"which is not in the alphabet", rune(t.on))
		}

		if !d.stateSet[t.to] {
			return malformedf("transition from %q on %q "+
				"targets undeclared state %q", t.from, rune(t.on), t.to)
		}

		key := transitionKey{from: t.from, on: t.on}
		if prev, defined := d.delta[key]; defined && prev != t.to {
			return malformedf("conflicting transitions from %q on %q",
				t.from, rune(t.on))
		}

		d.delta[key] = t.to
	}

	return nil
}

// checkCompleteness requires a target for every (state, symbol) pair, so
// that Step is total. A partial table is a malformed input, not a silent
// dead state.
func (b Builder) checkCompleteness(d *DFA) error {
	for _, q := range d.states {
		for _, s := range d.alphabet {
			if _, defined := d.delta[transitionKey{from: q, on: s}]; !defined {
				return malformedf("state %q does not handle symbol %q",
					q, rune(s))
			}
		}
	}

	return nil
}
