package calculator

import "errors"

var (
	ErrDivisionByZero  = errors.New("division by zero")
	ErrInvalidOperator = errors.New("invalid operator")
	ErrInvalidInput    = errors.New("invalid input")
	ErrOverflow        = errors.New("result out of range")
)

// Kind classifies a calculation failure.
type Kind int

const (
	KindUnexpected Kind = iota
	KindDivisionByZero
	KindInvalidOperator
	KindInvalidInput
	KindOverflow
)

// Display literals, one per Kind. Raw error text never reaches the display.
const (
	MsgDivisionByZero  = "Error: cannot divide by zero."
	MsgInvalidOperator = "Error: invalid operator."
	MsgInvalidInput    = "Error: invalid input."
	MsgOverflow        = "Error: result out of range."
	MsgUnexpected      = "Error: an unexpected error occurred."
)

// Classify maps err onto a Kind. Anything that is not one of the
// package's sentinel errors is KindUnexpected.
func Classify(err error) Kind {
	switch {
	case errors.Is(err, ErrDivisionByZero):
		return KindDivisionByZero
	case errors.Is(err, ErrInvalidOperator):
		return KindInvalidOperator
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, ErrOverflow):
		return KindOverflow
	default:
		return KindUnexpected
	}
}

func (k Kind) String() string {
	switch k {
	case KindDivisionByZero:
		return "division_by_zero"
	case KindInvalidOperator:
		return "invalid_operator"
	case KindInvalidInput:
		return "invalid_input"
	case KindOverflow:
		return "overflow"
	default:
		return "unexpected"
	}
}

// Message returns the display literal for k.
func (k Kind) Message() string {
	switch k {
	case KindDivisionByZero:
		return MsgDivisionByZero
	case KindInvalidOperator:
		return MsgInvalidOperator
	case KindInvalidInput:
		return MsgInvalidInput
	case KindOverflow:
		return MsgOverflow
	default:
		return MsgUnexpected
	}
}

// Message returns the display literal for err.
func Message(err error) string {
	return Classify(err).Message()
}
