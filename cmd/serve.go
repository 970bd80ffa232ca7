package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/formalab/dfasim/session"
)

var (
	servePort int
	serveOpen bool
)

var serveCmd = &cobra.Command{
	Use:   "serve <dfa.json>",
	Short: "Serve a DFA for inspection and evaluation over HTTP",
	Long: `Serve loads the automaton described by the given JSON file and starts a ` +
		`monitoring server. Strings can be submitted with POST /api/run; the ` +
		`automaton and the results collected so far are available under /api.`,
	Args: cobra.ExactArgs(1),
	Run:  serveAutomaton,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	defaultPort, err := strconv.Atoi(envDefault("DFASIM_PORT", "0"))
	if err != nil {
		defaultPort = 0
	}

	serveCmd.Flags().IntVar(&servePort, "port", defaultPort,
		"port number for the monitoring server, 0 picks a random port")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false,
		"open the monitoring server in a browser")
}

func serveAutomaton(_ *cobra.Command, args []string) {
	automaton := mustLoadAutomaton(args[0])

	s := session.MakeBuilder().
		WithAutomaton(automaton).
		WithMonitoring(servePort).
		Build()

	if serveOpen {
		err := browser.OpenURL(s.Monitor().URL())
		if err != nil {
			fmt.Fprintf(os.Stderr, "=> Error: %s\n", err)
		}
	}

	// Serve until interrupted.
	select {}
}
