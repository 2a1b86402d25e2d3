package calculator

import "fmt"

// Operator is one of the four supported binary operations.
// The zero value means "no operator".
type Operator int

const (
	NoOperator Operator = iota
	Add
	Subtract
	Multiply
	Divide
)

// Operators lists every valid operator in keypad order.
var Operators = []Operator{Add, Subtract, Multiply, Divide}

// ParseOperator maps an input symbol (+ - * /) to its Operator.
func ParseOperator(symbol string) (Operator, error) {
	switch symbol {
	case "+":
		return Add, nil
	case "-":
		return Subtract, nil
	case "*":
		return Multiply, nil
	case "/":
		return Divide, nil
	default:
		return NoOperator, fmt.Errorf("operator %q: %w", symbol, ErrInvalidOperator)
	}
}

// OperatorByName maps an API name (add, subtract, ...) to its Operator.
func OperatorByName(name string) (Operator, error) {
	for _, op := range Operators {
		if op.Name() == name {
			return op, nil
		}
	}
	return NoOperator, fmt.Errorf("operation %q: %w", name, ErrInvalidOperator)
}

// Valid reports whether op is one of the four operations.
func (op Operator) Valid() bool {
	return op >= Add && op <= Divide
}

// Symbol is the form/input symbol.
func (op Operator) Symbol() string {
	switch op {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	default:
		return ""
	}
}

// Glyph is the symbol shown on the keypad and in the display.
func (op Operator) Glyph() string {
	switch op {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "×"
	case Divide:
		return "÷"
	default:
		return ""
	}
}

// Name is the operation name used in routes, spans and metric attributes.
func (op Operator) Name() string {
	switch op {
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Multiply:
		return "multiply"
	case Divide:
		return "divide"
	default:
		return "none"
	}
}

func (op Operator) String() string {
	return op.Name()
}
