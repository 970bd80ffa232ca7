package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/formalab/dfasim/desc"
	"github.com/formalab/dfasim/dfa"
	"github.com/formalab/dfasim/session"
)

var (
	runShowPath   bool
	runRecord     bool
	runRecordPath string
)

var runCmd = &cobra.Command{
	Use:   "run <dfa.json> <string>...",
	Short: "Check whether strings are in the language of a DFA",
	Long: `Run loads the automaton described by the given JSON file and evaluates ` +
		`each of the given strings against it. A string containing a character ` +
		`outside the automaton's alphabet is reported as unevaluable; the ` +
		`remaining strings are still evaluated.`,
	Args: cobra.MinimumNArgs(2),
	Run:  runStrings,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&runShowPath, "show-path", false,
		"show the path of states taken for each string")
	runCmd.Flags().BoolVar(&runRecord, "record", false,
		"record run results into a SQLite database")
	runCmd.Flags().StringVar(&runRecordPath, "record-file",
		envDefault("DFASIM_RECORD", ""),
		"name of the recording database, without the .sqlite3 suffix")
}

func runStrings(_ *cobra.Command, args []string) {
	fmt.Println("=> Parsing the DFA")

	automaton := mustLoadAutomaton(args[0])

	fmt.Println("=> DFA Created")
	fmt.Println(desc.Format(automaton))

	b := session.MakeBuilder().WithAutomaton(automaton)
	if runRecord || runRecordPath != "" {
		b = b.WithRecording(runRecordPath)
	}
	s := b.Build()
	defer s.Terminate()

	fmt.Println("=> Processing Strings....")
	fmt.Println()

	failed := false
	for _, input := range args[1:] {
		if !evaluateOne(s, input) {
			failed = true
		}
	}

	if failed {
		s.Terminate()
		atexit.Exit(1)
	}
}

func evaluateOne(s *session.Session, input string) bool {
	result, err := s.Evaluate(input, runShowPath)
	if err != nil {
		fmt.Printf("==> String %q cannot be evaluated: %s\n", input, err)
		return false
	}

	if result.Accepted {
		fmt.Printf("==> String %q is in the language\n", input)
	} else {
		fmt.Printf("==> String %q is not in the language\n", input)
	}

	if runShowPath {
		fmt.Printf("    Path: %s\n", formatPath(result.Path))
	}

	return true
}

func formatPath(path []dfa.State) string {
	var sb strings.Builder
	for _, q := range path {
		sb.WriteString("->")
		sb.WriteString(string(q))
	}

	return sb.String()
}

// mustLoadAutomaton loads a description file, treating any failure as
// fatal. Construction must succeed before any string is evaluated.
func mustLoadAutomaton(path string) *dfa.DFA {
	automaton, err := desc.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "=> Error: %s\n", err)
		atexit.Exit(1)
	}

	return automaton
}
