package dfa

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Builder", func() {
	It("should build a well-formed automaton", func() {
		d, err := containsAB()

		Expect(err).ToNot(HaveOccurred())
		Expect(d.States()).To(Equal([]State{"q0", "q1", "q2"}))
		Expect(d.Alphabet()).To(Equal([]Symbol{'a', 'b'}))
		Expect(d.InitialState()).To(Equal(State("q0")))
		Expect(d.AcceptingStates()).To(Equal([]State{"q2"}))
		Expect(d.IsAccepting("q2")).To(BeTrue())
		Expect(d.IsAccepting("q0")).To(BeFalse())
	})

	It("should define a step for every state and symbol", func() {
		d, _ := containsAB()

		for _, q := range d.States() {
			for _, s := range d.Alphabet() {
				var to State
				Expect(func() { to = d.Step(q, s) }).ToNot(Panic())
				Expect(d.States()).To(ContainElement(to))
			}
		}
	})

	It("should allow an empty accepting set", func() {
		_, err := MakeBuilder().
			WithAlphabet('a').
			WithStates("q0").
			WithInitialState("q0").
			WithTransition("q0", 'a', "q0").
			Build()

		Expect(err).ToNot(HaveOccurred())
	})

	It("should reject an undeclared initial state", func() {
		_, err := MakeBuilder().
			WithAlphabet('a').
			WithStates("q0").
			WithInitialState("q9").
			WithTransition("q0", 'a', "q0").
			Build()

		Expect(err).To(
			MatchError(&MalformedAutomatonError{
				Reason: `initial state "q9" is not in the set of states`,
			}))
	})

	It("should reject an undeclared accepting state", func() {
		_, err := MakeBuilder().
			WithAlphabet('a').
			WithStates("q0").
			WithInitialState("q0").
			WithAcceptingStates("q9").
			WithTransition("q0", 'a', "q0").
			Build()

		Expect(err).To(BeAssignableToTypeOf(&MalformedAutomatonError{}))
	})

	It("should reject a transition from an undeclared state", func() {
		_, err := MakeBuilder().
			WithAlphabet('a').
			WithStates("q0").
			WithInitialState("q0").
			WithTransition("q0", 'a', "q0").
			WithTransition("q9", 'a', "q0").
			Build()

		Expect(err).To(BeAssignableToTypeOf(&MalformedAutomatonError{}))
	})

	It("should reject a transition on a symbol outside the alphabet", func() {
		_, err := MakeBuilder().
			WithAlphabet('a').
			WithStates("q0").
			WithInitialState("q0").
			WithTransition("q0", 'a', "q0").
			WithTransition("q0", 'z', "q0").
			Build()

		Expect(err).To(BeAssignableToTypeOf(&MalformedAutomatonError{}))
	})

	It("should reject a transition to an undeclared state", func() {
		_, err := MakeBuilder().
			WithAlphabet('a').
			WithStates("q0").
			WithInitialState("q0").
			WithTransition("q0", 'a', "q9").
			Build()

		Expect(err).To(BeAssignableToTypeOf(&MalformedAutomatonError{}))
	})

	It("should reject a table that omits a (state, symbol) pair", func() {
		_, err := MakeBuilder().
			WithAlphabet('a', 'b').
			WithStates("q0", "q1").
			WithInitialState("q0").
			WithTransition("q0", 'a', "q1").
			WithTransition("q0", 'b', "q0").
			WithTransition("q1", 'a', "q1").
			Build()

		Expect(err).To(
			MatchError(&MalformedAutomatonError{
				Reason: `state "q1" does not handle symbol 'b'`,
			}))
	})

	It("should reject conflicting transitions", func() {
		_, err := MakeBuilder().
			WithAlphabet('a').
			WithStates("q0", "q1").
			WithInitialState("q0").
			WithTransition("q0", 'a', "q0").
			WithTransition("q0", 'a', "q1").
			WithTransition("q1", 'a', "q1").
			Build()

		Expect(err).To(BeAssignableToTypeOf(&MalformedAutomatonError{}))
	})

	It("should reject duplicate declarations", func() {
		_, err := MakeBuilder().
			WithAlphabet('a', 'a').
			WithStates("q0").
			WithInitialState("q0").
			WithTransition("q0", 'a', "q0").
			Build()

		Expect(err).To(BeAssignableToTypeOf(&MalformedAutomatonError{}))
	})

	It("should panic when stepping outside the declared domain", func() {
		d, _ := containsAB()

		Expect(func() { d.Step("q0", 'z') }).To(Panic())
	})
})
