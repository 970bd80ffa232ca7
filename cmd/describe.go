package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/formalab/dfasim/desc"
)

var describeCmd = &cobra.Command{
	Use:   "describe <dfa.json>",
	Short: "Print the automaton a description file declares",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		automaton := mustLoadAutomaton(args[0])
		fmt.Print(desc.Format(automaton))
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
