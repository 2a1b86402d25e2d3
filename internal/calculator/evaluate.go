package calculator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Evaluate performs a single binary operation. Division fails only when
// b is exactly zero; a result too large for float64 fails with ErrOverflow.
func Evaluate(a, b float64, op Operator) (float64, error) {
	var v float64
	switch op {
	case Add:
		v = a + b
	case Subtract:
		v = a - b
	case Multiply:
		v = a * b
	case Divide:
		if b == 0 {
			return 0, fmt.Errorf("%g / %g: %w", a, b, ErrDivisionByZero)
		}
		v = a / b
	default:
		return 0, fmt.Errorf("operator %d: %w", int(op), ErrInvalidOperator)
	}

	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%g %s %g: %w", a, op.Symbol(), b, ErrOverflow)
	}
	return v, nil
}

// Submit validates the raw form fields and evaluates them. Operands that
// are not finite decimal numbers, or an empty operator, fail with
// ErrInvalidInput before the evaluator is reached.
func Submit(num1, num2, operator string) (float64, error) {
	a, err := ParseOperand(num1)
	if err != nil {
		return 0, fmt.Errorf("num1: %w", err)
	}
	b, err := ParseOperand(num2)
	if err != nil {
		return 0, fmt.Errorf("num2: %w", err)
	}
	if operator == "" {
		return 0, fmt.Errorf("operator missing: %w", ErrInvalidInput)
	}

	op, err := ParseOperator(operator)
	if err != nil {
		return 0, err
	}

	return Evaluate(a, b, op)
}

// ParseOperand converts an operand string to a finite float64.
func ParseOperand(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "xX_") {
		return 0, fmt.Errorf("operand %q: %w", s, ErrInvalidInput)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("operand %q: %w", s, ErrInvalidInput)
	}
	return v, nil
}

// FormatResult renders v as the shortest decimal that parses back to v.
// Exponent notation is used only for very large or very small magnitudes.
func FormatResult(v float64) string {
	if v == 0 {
		return "0"
	}
	if abs := math.Abs(v); abs >= 1e21 || abs < 1e-6 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
