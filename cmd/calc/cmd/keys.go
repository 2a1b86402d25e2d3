package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"go-chi-calculator/internal/calculator"
	"go-chi-calculator/internal/keypad"
)

var keysCmd = &cobra.Command{
	Use:   "keys <sequence>...",
	Short: "Replay keypad presses and print the display",
	Long: `Replay a sequence of keypad presses through a fresh calculator and print
the final display. Keys are 0-9 . + - * / = and C; blanks are ignored and
multiple arguments are joined.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runKeys,
}

var keysTrace bool

func init() {
	keysCmd.Flags().BoolVar(&keysTrace, "trace", false, "print the display after every key")
	rootCmd.AddCommand(keysCmd)
}

func runKeys(cmd *cobra.Command, args []string) error {
	events, err := keypad.ParseKeys(strings.Join(args, ""))
	if err != nil {
		return err
	}

	m := keypad.NewMachine(contextEvaluator(cmd.Context()))
	out := cmd.OutOrStdout()

	var s keypad.State
	for _, ev := range events {
		s = m.Press(ev)
		if keysTrace {
			fmt.Fprintf(out, "%s\t%-16s\t%s\n", ev.Key(), s.Phase(), s.Display)
		}
	}

	if !keysTrace {
		fmt.Fprintln(out, s.Display)
	}
	if s.Failed {
		return fmt.Errorf("%w: %s", errReported, s.Display)
	}
	return nil
}

func contextEvaluator(ctx context.Context) keypad.Evaluator {
	return keypad.EvaluatorFunc(func(num1, num2 string, op calculator.Operator) (float64, error) {
		return calculator.Compute(ctx, num1, num2, op.Symbol())
	})
}
