// Command deferlist is a small interactive demo of package deferred:
// it drives a sequence of strings from the command line or a REPL and
// prints its state between edits.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/deferlist/deferlist/deferred"
)

var (
	verbose bool
	list    *deferred.List[string]
)

var rootCmd = &cobra.Command{
	Use:   "deferlist",
	Short: "Drive a deferred.List[string] from the command line",
	Long: `
deferlist demonstrates the deferred sequence: edits queue in an
operation tree and only settle into a backing array on commit, either
explicit or automatic once the tree grows past its height-bound
threshold.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		list = deferred.New[string](deferred.WithLogger(logger))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log auto-commit and poisoning events")
	rootCmd.AddCommand(getCmd, setCmd, insertCmd, removeCmd, commitCmd, statsCmd, benchCmd, replCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
