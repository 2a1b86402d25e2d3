package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-chi-calculator/internal/calculator"
)

var evalCmd = &cobra.Command{
	Use:   "eval <num1> <operator> <num2>",
	Short: "Evaluate one binary operation",
	Long: `Evaluate one binary operation and print the result the way the
calculator display would show it. Operators are + - * /. Quote * in the shell.
Use -- before a negative first operand.`,
	Args: cobra.ExactArgs(3),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	result, err := calculator.Compute(cmd.Context(), args[0], args[2], args[1])
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), calculator.Message(err))
		return fmt.Errorf("%w: %v", errReported, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), calculator.FormatResult(result))
	return nil
}
