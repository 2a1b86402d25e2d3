// Package keypad holds the calculator's input state machine: the operands
// and pending operator being assembled from discrete button presses.
//
// Transitions are pure functions from (State, Event) to a new State. The
// only outside dependency is the Evaluator that performs the arithmetic
// once an operation is complete.
package keypad

import (
	"strings"

	"go-chi-calculator/internal/calculator"
)

// Phase is the externally visible state of the machine, derived from State.
type Phase int

const (
	EnteringFirst Phase = iota
	OperatorSelected
	EnteringSecond
	ResultDisplayed
)

func (p Phase) String() string {
	switch p {
	case OperatorSelected:
		return "operator_selected"
	case EnteringSecond:
		return "entering_second"
	case ResultDisplayed:
		return "result_displayed"
	default:
		return "entering_first"
	}
}

// State is the full record for one session. The zero value is the cleared
// calculator.
type State struct {
	Prev     string              // first operand
	Current  string              // active entry buffer
	Op       calculator.Operator // pending operator, NoOperator if none
	Awaiting bool                // next digit replaces Current instead of appending
	Display  string
	Failed   bool // Display holds an error message
}

// Phase derives the machine phase from the tracked fields.
func (s State) Phase() Phase {
	switch {
	case s.Op.Valid() && s.Current == "":
		return OperatorSelected
	case s.Op.Valid():
		return EnteringSecond
	case s.Awaiting && s.Current != "":
		return ResultDisplayed
	default:
		return EnteringFirst
	}
}

// Evaluator performs the arithmetic for a completed operation.
type Evaluator interface {
	Evaluate(num1, num2 string, op calculator.Operator) (float64, error)
}

// EvaluatorFunc adapts a function to Evaluator.
type EvaluatorFunc func(num1, num2 string, op calculator.Operator) (float64, error)

func (f EvaluatorFunc) Evaluate(num1, num2 string, op calculator.Operator) (float64, error) {
	return f(num1, num2, op)
}

// Local evaluates in-process through the same validation as the form
// boundary.
var Local Evaluator = EvaluatorFunc(func(num1, num2 string, op calculator.Operator) (float64, error) {
	return calculator.Submit(num1, num2, op.Symbol())
})

// Apply returns the state that follows s after ev.
func Apply(s State, ev Event, eval Evaluator) State {
	switch ev.Kind {
	case DigitKey:
		return PressDigit(s, ev.Digit)
	case OperatorKey:
		return PressOperator(s, ev.Op, eval)
	case EqualsKey:
		return PressEquals(s, eval)
	default:
		return State{}
	}
}

// PressDigit appends d ('0'-'9' or '.') to the active buffer, or replaces
// the buffer when the machine is awaiting a fresh operand. A second decimal
// point in one buffer is ignored.
func PressDigit(s State, d byte) State {
	if d != '.' && (d < '0' || d > '9') {
		return s
	}
	if s.Awaiting {
		s.Current = ""
		s.Awaiting = false
	}

	switch {
	case d == '.' && strings.Contains(s.Current, "."):
		return s
	case d == '.' && s.Current == "":
		s.Current = "0."
	case s.Current == "0" && d != '.':
		s.Current = string(d)
	default:
		s.Current += string(d)
	}

	s.Failed = false
	s.Display = s.Current
	return s
}

// PressOperator records op as the pending operator. When a complete
// operation is already pending it is evaluated first and its result becomes
// the first operand. With an empty buffer the previous first operand is
// kept, or "0" if there is none.
func PressOperator(s State, op calculator.Operator, eval Evaluator) State {
	if !op.Valid() {
		return s
	}

	switch {
	case s.Prev != "" && s.Op.Valid() && s.Current != "" && !s.Awaiting:
		v, err := eval.Evaluate(s.Prev, s.Current, s.Op)
		if err != nil {
			return Fail(err)
		}
		s.Prev = calculator.FormatResult(v)
	case s.Current != "":
		s.Prev = s.Current
	case s.Prev == "":
		s.Prev = "0"
	}

	s.Op = op
	s.Current = ""
	s.Awaiting = true
	s.Failed = false
	s.Display = s.Prev + " " + op.Glyph() + " "
	return s
}

// PressEquals evaluates the pending operation. It is a no-op unless a
// first operand, a second operand and an operator are all present.
func PressEquals(s State, eval Evaluator) State {
	if s.Prev == "" || s.Current == "" || !s.Op.Valid() {
		return s
	}

	v, err := eval.Evaluate(s.Prev, s.Current, s.Op)
	if err != nil {
		return Fail(err)
	}
	return Result(calculator.FormatResult(v))
}

// Result is the state after a successful evaluation: the result is shown
// and kept as the next first operand.
func Result(display string) State {
	return State{
		Current:  display,
		Awaiting: true,
		Display:  display,
	}
}

// Fail is the state after a failed evaluation: everything is reset and the
// display shows the error message.
func Fail(err error) State {
	return State{
		Display: calculator.Message(err),
		Failed:  true,
	}
}

// Absorb adopts an outcome produced outside the keypad, such as a direct
// form submission, as if it had come from PressEquals.
func Absorb(result float64, err error) State {
	if err != nil {
		return Fail(err)
	}
	return Result(calculator.FormatResult(result))
}
