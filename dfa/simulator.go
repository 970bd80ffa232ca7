package dfa

// A RunResult reports the outcome of evaluating one input string against an
// automaton. It is created fresh per run and never mutated afterwards.
type RunResult struct {
	// ID is assigned by whoever retains or persists the result; the
	// simulator itself leaves it empty so that identical runs produce
	// identical results.
	ID         string  `json:"id,omitempty"`
	Input      string  `json:"input"`
	FinalState State   `json:"final_state"`
	Accepted   bool    `json:"accepted"`
	Path       []State `json:"path,omitempty"`
}

// StepInfo describes one application of the transition function during a
// run. It is the hook item at HookPosAfterStep.
type StepInfo struct {
	Position int
	Symbol   Symbol
	From     State
	To       State
}

// A Simulator replays an automaton's transition function over input
// strings. Hooks registered on the simulator observe every run; the
// simulator itself keeps no state between runs, so one simulator may serve
// any number of goroutines as long as its hooks tolerate that.
type Simulator struct {
	HookableBase
}

// NewSimulator creates a Simulator with no hooks attached.
func NewSimulator() *Simulator {
	s := new(Simulator)
	s.HookableBase = *NewHookableBase()
	return s
}

// Run walks d over input, one symbol at a time, starting from the initial
// state. It returns an *UnknownSymbolError if input contains a character
// outside d's alphabet. When recordPath is true the result carries every
// visited state in order, the initial state first, len(input)+1 states in
// total. Run is deterministic: the same automaton and input always produce
// the same result.
func (s *Simulator) Run(
	d *DFA,
	input string,
	recordPath bool,
) (RunResult, error) {
	current := d.InitialState()

	var path []State
	if recordPath {
		path = append(path, current)
	}

	s.InvokeHook(HookCtx{
		Domain: s,
		Pos:    HookPosRunStart,
		Item:   input,
		Detail: current,
	})

	position := 0
	for _, r := range input {
		symbol := Symbol(r)
		if !d.InAlphabet(symbol) {
			return RunResult{}, &UnknownSymbolError{
				Symbol:   symbol,
				Position: position,
			}
		}

		next := d.Step(current, symbol)

		s.InvokeHook(HookCtx{
			Domain: s,
			Pos:    HookPosAfterStep,
			Item: StepInfo{
				Position: position,
				Symbol:   symbol,
				From:     current,
				To:       next,
			},
		})

		current = next
		if recordPath {
			path = append(path, current)
		}
		position++
	}

	result := RunResult{
		Input:      input,
		FinalState: current,
		Accepted:   d.IsAccepting(current),
		Path:       path,
	}

	s.InvokeHook(HookCtx{
		Domain: s,
		Pos:    HookPosRunEnd,
		Item:   result,
	})

	return result, nil
}

// Run evaluates one input string against d without any hooks attached. It
// is shorthand for NewSimulator().Run(d, input, recordPath).
func Run(d *DFA, input string, recordPath bool) (RunResult, error) {
	return NewSimulator().Run(d, input, recordPath)
}
