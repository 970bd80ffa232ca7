package session

import (
	"github.com/rs/xid"

	"github.com/formalab/dfasim/dfa"
	"github.com/formalab/dfasim/monitoring"
	"github.com/formalab/dfasim/recording"
)

// Builder can be used to build a session.
type Builder struct {
	automaton   *dfa.DFA
	recorder    recording.RunRecorder
	recordingOn bool
	recordPath  string
	monitorOn   bool
	monitorPort int
}

// MakeBuilder creates a new builder.
func MakeBuilder() Builder {
	return Builder{}
}

// WithAutomaton sets the automaton the session evaluates against.
func (b Builder) WithAutomaton(d *dfa.DFA) Builder {
	b.automaton = d
	return b
}

// WithRecording sets the session to persist run results into a SQLite
// database at the given path. An empty path generates a fresh name.
func (b Builder) WithRecording(path string) Builder {
	b.recordingOn = true
	b.recordPath = path
	return b
}

// WithRecorder sets a custom recorder, replacing the SQLite one.
func (b Builder) WithRecorder(r recording.RunRecorder) Builder {
	b.recorder = r
	return b
}

// WithMonitoring sets the session to serve a monitoring server on the
// given port.
func (b Builder) WithMonitoring(port int) Builder {
	b.monitorOn = true
	b.monitorPort = port
	return b
}

func (b Builder) parametersMustBeValid() {
	if b.automaton == nil {
		panic("a session requires an automaton")
	}

	if b.recorder != nil && b.recordingOn {
		panic("cannot set both a custom recorder and a recording path")
	}
}

// Build builds the session.
func (b Builder) Build() *Session {
	b.parametersMustBeValid()

	s := &Session{
		id:        xid.New().String(),
		automaton: b.automaton,
		simulator: dfa.NewSimulator(),
	}

	s.recorder = recording.NullRecorder{}
	if b.recorder != nil {
		s.recorder = b.recorder
	}
	if b.recordingOn {
		s.recorder = recording.NewSQLiteRecorder(b.recordPath)
	}

	if b.monitorOn {
		s.monitor = monitoring.NewMonitor()
		if b.monitorPort > 0 {
			s.monitor.WithPortNumber(b.monitorPort)
		}
		s.monitor.RegisterAutomaton(b.automaton)
		s.monitor.RegisterEvaluator(s)
		s.monitor.StartServer()
	}

	return s
}
