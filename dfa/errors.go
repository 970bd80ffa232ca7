package dfa

import "fmt"

// A MalformedAutomatonError reports that an automaton description violates a
// construction invariant. It is only returned at build time; a successfully
// built DFA can never raise it.
type MalformedAutomatonError struct {
	Reason string
}

func (e *MalformedAutomatonError) Error() string {
	return "malformed automaton: " + e.Reason
}

func malformedf(format string, args ...any) *MalformedAutomatonError {
	return &MalformedAutomatonError{Reason: fmt.Sprintf(format, args...)}
}

// An UnknownSymbolError reports that an input string contains a character
// outside the automaton's alphabet. Position is the rune index of the
// offending character. The string could not be evaluated at all; this is
// distinct from the automaton rejecting it.
type UnknownSymbolError struct {
	Symbol   Symbol
	Position int
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown symbol %q at position %d",
		rune(e.Symbol), e.Position)
}
