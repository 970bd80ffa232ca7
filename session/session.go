// Package session ties an automaton, a simulator, a recorder, and an
// optional monitor together so that one constructed DFA can serve many
// input strings.
package session

import (
	"sync"

	"github.com/formalab/dfasim/dfa"
	"github.com/formalab/dfasim/monitoring"
	"github.com/formalab/dfasim/recording"
)

// A Session provides the service required to evaluate input strings
// against one automaton.
type Session struct {
	id        string
	automaton *dfa.DFA
	simulator *dfa.Simulator
	recorder  recording.RunRecorder
	monitor   *monitoring.Monitor

	resultsLock sync.Mutex
	results     []dfa.RunResult
}

// ID returns the session's identifier.
func (s *Session) ID() string {
	return s.id
}

// Automaton returns the automaton the session evaluates against.
func (s *Session) Automaton() *dfa.DFA {
	return s.automaton
}

// Simulator returns the simulator used in the session. Hooks attached to
// it observe every evaluation.
func (s *Session) Simulator() *dfa.Simulator {
	return s.simulator
}

// Monitor returns the monitor used in the session, or nil if monitoring is
// off.
func (s *Session) Monitor() *monitoring.Monitor {
	return s.monitor
}

// Evaluate runs one input string against the session's automaton, records
// the result, and retains it for later listing. An *dfa.UnknownSymbolError
// reports a string that cannot be evaluated; it does not affect the
// session's ability to evaluate further strings.
func (s *Session) Evaluate(
	input string,
	recordPath bool,
) (dfa.RunResult, error) {
	result, err := s.simulator.Run(s.automaton, input, recordPath)
	if err != nil {
		return dfa.RunResult{}, err
	}

	result.ID = dfa.GetIDGenerator().Generate()

	s.recorder.RecordRun(result)

	s.resultsLock.Lock()
	s.results = append(s.results, result)
	s.resultsLock.Unlock()

	return result, nil
}

// Results returns the results of all the strings evaluated so far.
func (s *Session) Results() []dfa.RunResult {
	s.resultsLock.Lock()
	defer s.resultsLock.Unlock()

	results := make([]dfa.RunResult, len(s.results))
	copy(results, s.results)

	return results
}

// Terminate terminates the session, flushing and closing the recorder.
func (s *Session) Terminate() {
	s.recorder.Close()
}
