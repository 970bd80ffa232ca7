package monitoring

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/formalab/dfasim/dfa"
)

// sampleEvaluator evaluates against the automaton directly and keeps the
// results in memory, standing in for a session.
type sampleEvaluator struct {
	automaton *dfa.DFA
	results   []dfa.RunResult
}

func (e *sampleEvaluator) Evaluate(
	input string,
	recordPath bool,
) (dfa.RunResult, error) {
	result, err := dfa.Run(e.automaton, input, recordPath)
	if err != nil {
		return dfa.RunResult{}, err
	}

	e.results = append(e.results, result)

	return result, nil
}

func (e *sampleEvaluator) Results() []dfa.RunResult {
	return e.results
}

func containsAB() *dfa.DFA {
	d, err := dfa.MakeBuilder().
		WithAlphabet('a', 'b').
		WithStates("q0", "q1", "q2").
		WithInitialState("q0").
		WithAcceptingStates("q2").
		WithTransition("q0", 'a', "q1").
		WithTransition("q0", 'b', "q0").
		WithTransition("q1", 'a', "q1").
		WithTransition("q1", 'b', "q2").
		WithTransition("q2", 'a', "q2").
		WithTransition("q2", 'b', "q2").
		Build()
	if err != nil {
		panic(err)
	}

	return d
}

var _ = Describe("Monitor", func() {
	var (
		m      *Monitor
		server *httptest.Server
	)

	BeforeEach(func() {
		automaton := containsAB()

		m = NewMonitor()
		m.RegisterAutomaton(automaton)
		m.RegisterEvaluator(&sampleEvaluator{automaton: automaton})

		server = httptest.NewServer(m.router())
	})

	AfterEach(func() {
		server.Close()
	})

	It("should describe the automaton", func() {
		rsp, err := http.Get(server.URL + "/api/automaton")
		Expect(err).ToNot(HaveOccurred())
		defer rsp.Body.Close()

		var body automatonRsp
		Expect(json.NewDecoder(rsp.Body).Decode(&body)).To(Succeed())
		Expect(body.States).To(Equal([]dfa.State{"q0", "q1", "q2"}))
		Expect(body.Alphabet).To(Equal([]string{"a", "b"}))
		Expect(body.InitialState).To(Equal(dfa.State("q0")))
		Expect(body.AcceptingStates).To(Equal([]dfa.State{"q2"}))
	})

	It("should evaluate a submitted string", func() {
		rsp, err := http.Post(server.URL+"/api/run", "application/json",
			strings.NewReader(`{"input": "ab", "record_path": true}`))
		Expect(err).ToNot(HaveOccurred())
		defer rsp.Body.Close()

		Expect(rsp.StatusCode).To(Equal(http.StatusOK))

		var result dfa.RunResult
		Expect(json.NewDecoder(rsp.Body).Decode(&result)).To(Succeed())
		Expect(result.Accepted).To(BeTrue())
		Expect(result.FinalState).To(Equal(dfa.State("q2")))
		Expect(result.Path).To(Equal([]dfa.State{"q0", "q1", "q2"}))
	})

	It("should report an unevaluable string", func() {
		rsp, err := http.Post(server.URL+"/api/run", "application/json",
			strings.NewReader(`{"input": "abc"}`))
		Expect(err).ToNot(HaveOccurred())
		defer rsp.Body.Close()

		Expect(rsp.StatusCode).To(Equal(http.StatusUnprocessableEntity))

		var body runErrRsp
		Expect(json.NewDecoder(rsp.Body).Decode(&body)).To(Succeed())
		Expect(body.Symbol).To(Equal("c"))
		Expect(body.Position).To(Equal(2))
	})

	It("should list the results collected so far", func() {
		rsp, err := http.Get(server.URL + "/api/runs")
		Expect(err).ToNot(HaveOccurred())
		rsp.Body.Close()

		_, err = http.Post(server.URL+"/api/run", "application/json",
			strings.NewReader(`{"input": "ba"}`))
		Expect(err).ToNot(HaveOccurred())

		rsp, err = http.Get(server.URL + "/api/runs")
		Expect(err).ToNot(HaveOccurred())
		defer rsp.Body.Close()

		var results []dfa.RunResult
		Expect(json.NewDecoder(rsp.Body).Decode(&results)).To(Succeed())
		Expect(results).To(HaveLen(1))
		Expect(results[0].Input).To(Equal("ba"))
		Expect(results[0].Accepted).To(BeFalse())
	})

	It("should serve the describe block as text", func() {
		rsp, err := http.Get(server.URL + "/api/describe")
		Expect(err).ToNot(HaveOccurred())
		defer rsp.Body.Close()

		buf := make([]byte, 32)
		n, _ := rsp.Body.Read(buf)
		Expect(string(buf[:n])).To(HavePrefix("===== DFA ====="))
	})
})
