// Package cmd implements the calc command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go-chi-calculator/internal/observability"
)

// errReported marks failures whose message was already printed as the
// command's output.
var errReported = errors.New("reported")

var rootCmd = &cobra.Command{
	Use:   "calc",
	Short: "Evaluate calculator operations from the terminal",
	Long: `calc runs the calculator's evaluator and keypad outside the browser.

Examples:
  calc eval 7 + 8          # prints 15
  calc eval 5 / 0          # prints the division by zero message, exits 1
  calc keys "7+8="         # replays keypad presses, prints 15
  calc keys --trace 2+3*4= # prints the display after every key`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			return nil
		}
		return observability.InitLogger(true)
	},
}

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each calculation to stderr")
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.ExecuteContext(context.Background())
	defer observability.SyncLogger()

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errReported):
		return 1
	default:
		fmt.Fprintf(os.Stderr, "calc: %v\n", err)
		return 2
	}
}
