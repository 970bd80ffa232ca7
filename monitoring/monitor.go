// Package monitoring turns a running evaluation session into a web server
// so the loaded automaton and its run results can be inspected externally.
package monitoring

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"time"

	// Enable profiling
	_ "net/http/pprof"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/formalab/dfasim/desc"
	"github.com/formalab/dfasim/dfa"
)

// An Evaluator can evaluate input strings against an automaton and report
// the results collected so far.
type Evaluator interface {
	Evaluate(input string, recordPath bool) (dfa.RunResult, error)
	Results() []dfa.RunResult
}

// Monitor can turn an evaluation session into a server and allows external
// inspection of the automaton and submission of input strings.
type Monitor struct {
	automaton  *dfa.DFA
	evaluator  Evaluator
	portNumber int
	url        string
}

// NewMonitor creates a new Monitor
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n",
			portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterAutomaton registers the automaton that the session evaluates
// against.
func (m *Monitor) RegisterAutomaton(d *dfa.DFA) {
	m.automaton = d
}

// RegisterEvaluator registers the evaluator that serves run requests.
func (m *Monitor) RegisterEvaluator(e Evaluator) {
	m.evaluator = e
}

// URL returns the address the monitor serves on. It is only valid after
// StartServer has returned.
func (m *Monitor) URL() string {
	return m.url
}

func (m *Monitor) router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/automaton", m.describeAutomaton)
	r.HandleFunc("/api/describe", m.describeText)
	r.HandleFunc("/api/run", m.run).Methods(http.MethodPost)
	r.HandleFunc("/api/runs", m.listRuns)
	r.HandleFunc("/api/inspect", m.inspect)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/profile", m.collectProfile)

	return r
}

// StartServer starts the monitor as a web server with a custom port if
// wanted.
func (m *Monitor) StartServer() {
	r := m.router()

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	m.url = fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)

	fmt.Fprintf(os.Stderr, "Monitoring evaluation with %s\n", m.url)

	go func() {
		err = http.Serve(listener, r)
		dieOnErr(err)
	}()
}

type automatonRsp struct {
	States          []dfa.State `json:"states"`
	Alphabet        []string    `json:"alphabet"`
	InitialState    dfa.State   `json:"initial_state"`
	AcceptingStates []dfa.State `json:"accepting_states"`
}

func (m *Monitor) describeAutomaton(w http.ResponseWriter, _ *http.Request) {
	alphabet := make([]string, 0, len(m.automaton.Alphabet()))
	for _, s := range m.automaton.Alphabet() {
		alphabet = append(alphabet, string(rune(s)))
	}

	rsp := automatonRsp{
		States:          m.automaton.States(),
		Alphabet:        alphabet,
		InitialState:    m.automaton.InitialState(),
		AcceptingStates: m.automaton.AcceptingStates(),
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) describeText(w http.ResponseWriter, _ *http.Request) {
	_, err := w.Write([]byte(desc.Format(m.automaton)))
	dieOnErr(err)
}

type runReq struct {
	Input      string `json:"input"`
	RecordPath bool   `json:"record_path"`
}

type runErrRsp struct {
	Error    string `json:"error"`
	Symbol   string `json:"symbol,omitempty"`
	Position int    `json:"position,omitempty"`
}

func (m *Monitor) run(w http.ResponseWriter, r *http.Request) {
	var req runReq

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, "Error: %s", err)
		return
	}

	result, err := m.evaluator.Evaluate(req.Input, req.RecordPath)
	if err != nil {
		m.writeRunError(w, err)
		return
	}

	bytes, err := json.Marshal(result)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) writeRunError(w http.ResponseWriter, err error) {
	rsp := runErrRsp{Error: err.Error()}

	var unknown *dfa.UnknownSymbolError
	if errors.As(err, &unknown) {
		rsp.Symbol = string(rune(unknown.Symbol))
		rsp.Position = unknown.Position
		w.WriteHeader(http.StatusUnprocessableEntity)
	} else {
		w.WriteHeader(http.StatusInternalServerError)
	}

	bytes, marshalErr := json.Marshal(rsp)
	dieOnErr(marshalErr)

	_, writeErr := w.Write(bytes)
	dieOnErr(writeErr)
}

func (m *Monitor) listRuns(w http.ResponseWriter, _ *http.Request) {
	results := m.evaluator.Results()
	if results == nil {
		results = []dfa.RunResult{}
	}

	bytes, err := json.Marshal(results)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) inspect(w http.ResponseWriter, _ *http.Request) {
	serializer := goseth.NewSerializer()
	serializer.SetRoot(m.automaton)
	serializer.SetMaxDepth(1)

	err := serializer.Serialize(w)
	dieOnErr(err)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	process, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := process.CPUPercent()
	dieOnErr(err)

	memorySize, err := process.MemoryInfo()
	dieOnErr(err)

	rsp := resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	dieOnErr(err)

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	bytes, err := json.Marshal(prof)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
