// Package cmd provides the command-line interface for dfasim.
package cmd

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dfasim",
	Short: "dfasim simulates deterministic finite automata over input strings.",
	Long: `dfasim loads a deterministic finite automaton from a JSON description and ` +
		`tells whether input strings belong to the language it recognizes. It can ` +
		`also record runs into a SQLite database and serve the loaded automaton ` +
		`for external inspection.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

var loadEnvOnce sync.Once

// envDefault resolves a flag default from the environment, falling back to
// the given value. A .env file in the working directory, if one exists,
// supplies the environment: DFASIM_PORT and DFASIM_RECORD mirror the
// --port and --record-file flags.
func envDefault(key, fallback string) string {
	loadEnvOnce.Do(func() { _ = godotenv.Load() })

	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return fallback
}
