// Package desc loads deterministic finite automata from their JSON
// description form.
//
// The description format is:
//
//	{
//	    "Sigma": ["a", "b"],
//	    "InitialState": "q0",
//	    "AcceptingStates": ["q2"],
//	    "States": {
//	        "q0": {"a": "q1", "b": "q0"},
//	        "q1": {"b": "q2", "a": "q1"},
//	        "q2": {"a": "q2", "b": "q2"}
//	    }
//	}
//
// "States" maps each state name to a mapping from every symbol in Sigma to
// the target state. The example above recognizes strings over {a, b} that
// contain the substring "ab".
package desc

import (
	"encoding/json"
	"os"
	"sort"
	"strconv"
	"unicode/utf8"

	"github.com/formalab/dfasim/dfa"
)

// document mirrors the JSON description. Fields are decoded individually so
// that a missing key can be reported by name.
type document struct {
	Sigma           []string
	InitialState    string
	AcceptingStates []string
	States          map[string]map[string]string
}

var requiredKeys = []string{
	"Sigma", "InitialState", "AcceptingStates", "States",
}

// Parse decodes a JSON description and builds the automaton it declares.
// Every failure, from ill-formed JSON to a violated model invariant, is a
// *dfa.MalformedAutomatonError; a description that parses always yields a
// fully-validated DFA.
func Parse(data []byte) (*dfa.DFA, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &dfa.MalformedAutomatonError{
			Reason: "description is not a JSON object: " + err.Error(),
		}
	}

	for _, key := range requiredKeys {
		if _, present := raw[key]; !present {
			return nil, &dfa.MalformedAutomatonError{
				Reason: "description missing key " + key,
			}
		}
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &dfa.MalformedAutomatonError{
			Reason: "description has the wrong shape: " + err.Error(),
		}
	}

	return buildFromDocument(doc)
}

// Load reads a description file and parses it.
func Load(path string) (*dfa.DFA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

func buildFromDocument(doc document) (*dfa.DFA, error) {
	b := dfa.MakeBuilder().
		WithInitialState(dfa.State(doc.InitialState))

	for _, entry := range doc.Sigma {
		symbol, err := symbolFromString(entry)
		if err != nil {
			return nil, err
		}
		b = b.WithAlphabet(symbol)
	}

	// Map iteration order is random; sort the state names so the built
	// automaton reports its states deterministically.
	names := make([]string, 0, len(doc.States))
	for name := range doc.States {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		b = b.WithStates(dfa.State(name))
	}

	for _, q := range doc.AcceptingStates {
		b = b.WithAcceptingStates(dfa.State(q))
	}

	for _, name := range names {
		for entry, target := range doc.States[name] {
			symbol, err := symbolFromString(entry)
			if err != nil {
				return nil, err
			}

			b = b.WithTransition(
				dfa.State(name), symbol, dfa.State(target))
		}
	}

	return b.Build()
}

func symbolFromString(entry string) (dfa.Symbol, error) {
	r, size := utf8.DecodeRuneInString(entry)
	if size == 0 || size != len(entry) || r == utf8.RuneError {
		return 0, &dfa.MalformedAutomatonError{
			Reason: "symbol " + strconv.Quote(entry) +
				" is not a single character",
		}
	}

	return dfa.Symbol(r), nil
}
