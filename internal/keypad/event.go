package keypad

import (
	"errors"
	"fmt"
	"strings"

	"go-chi-calculator/internal/calculator"
)

// ErrUnknownKey is returned for keys that are not on the keypad.
var ErrUnknownKey = errors.New("unknown key")

// EventKind identifies which keypad button was pressed.
type EventKind int

const (
	DigitKey EventKind = iota
	OperatorKey
	EqualsKey
	ClearKey
)

// Event is a single keypad press.
type Event struct {
	Kind  EventKind
	Digit byte                // '0'-'9' or '.', for DigitKey
	Op    calculator.Operator // for OperatorKey
}

func Digit(d byte) Event { return Event{Kind: DigitKey, Digit: d} }

func Operator(op calculator.Operator) Event { return Event{Kind: OperatorKey, Op: op} }

func Equals() Event { return Event{Kind: EqualsKey} }

func Clear() Event { return Event{Kind: ClearKey} }

// ParseKey maps a button value (the same values the page posts) to an Event.
func ParseKey(key string) (Event, error) {
	switch key {
	case "=":
		return Equals(), nil
	case "C", "c":
		return Clear(), nil
	case ".":
		return Digit('.'), nil
	}

	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		return Digit(key[0]), nil
	}

	if op, err := calculator.ParseOperator(key); err == nil {
		return Operator(op), nil
	}

	return Event{}, fmt.Errorf("key %q: %w", key, ErrUnknownKey)
}

// ParseKeys splits a compact key sequence such as "7+8=" into events.
// Blanks are ignored.
func ParseKeys(seq string) ([]Event, error) {
	events := make([]Event, 0, len(seq))
	for _, r := range strings.Join(strings.Fields(seq), "") {
		ev, err := ParseKey(string(r))
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

// Key returns the button value for ev.
func (ev Event) Key() string {
	switch ev.Kind {
	case DigitKey:
		return string(ev.Digit)
	case OperatorKey:
		return ev.Op.Symbol()
	case EqualsKey:
		return "="
	default:
		return "C"
	}
}

func (k EventKind) String() string {
	switch k {
	case DigitKey:
		return "digit"
	case OperatorKey:
		return "operator"
	case EqualsKey:
		return "equals"
	default:
		return "clear"
	}
}
