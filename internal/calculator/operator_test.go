package calculator

import (
	"errors"
	"testing"
)

func TestParseOperator(t *testing.T) {
	for _, op := range Operators {
		got, err := ParseOperator(op.Symbol())
		if err != nil {
			t.Fatalf("symbol %q: unexpected error: %v", op.Symbol(), err)
		}
		if got != op {
			t.Fatalf("symbol %q: expected %s, got %s", op.Symbol(), op, got)
		}
	}

	for _, symbol := range []string{"", "x", "÷", "++", "add"} {
		if _, err := ParseOperator(symbol); !errors.Is(err, ErrInvalidOperator) {
			t.Fatalf("symbol %q: expected ErrInvalidOperator, got %v", symbol, err)
		}
	}
}

func TestOperatorByName(t *testing.T) {
	for _, op := range Operators {
		got, err := OperatorByName(op.Name())
		if err != nil || got != op {
			t.Fatalf("name %q: expected %s, got %s (%v)", op.Name(), op, got, err)
		}
	}

	if _, err := OperatorByName("chain"); !errors.Is(err, ErrInvalidOperator) {
		t.Fatalf("expected ErrInvalidOperator, got %v", err)
	}
}

func TestOperatorGlyphs(t *testing.T) {
	want := map[Operator]string{Add: "+", Subtract: "-", Multiply: "×", Divide: "÷"}
	for op, glyph := range want {
		if got := op.Glyph(); got != glyph {
			t.Fatalf("%s: expected glyph %q, got %q", op, glyph, got)
		}
	}

	if NoOperator.Valid() || NoOperator.Symbol() != "" {
		t.Fatal("expected zero operator to be invalid with no symbol")
	}
}

func TestClassifyAndMessage(t *testing.T) {
	tests := []struct {
		err  error
		kind Kind
		msg  string
	}{
		{ErrDivisionByZero, KindDivisionByZero, MsgDivisionByZero},
		{ErrInvalidOperator, KindInvalidOperator, MsgInvalidOperator},
		{ErrInvalidInput, KindInvalidInput, MsgInvalidInput},
		{ErrOverflow, KindOverflow, MsgOverflow},
		{errors.New("disk on fire"), KindUnexpected, MsgUnexpected},
	}

	seen := map[string]bool{}
	for _, tc := range tests {
		wrapped := errors.Join(errors.New("context"), tc.err)
		if got := Classify(wrapped); got != tc.kind {
			t.Fatalf("%v: expected kind %s, got %s", tc.err, tc.kind, got)
		}
		if got := Message(wrapped); got != tc.msg {
			t.Fatalf("%v: expected message %q, got %q", tc.err, tc.msg, got)
		}
		if seen[tc.msg] {
			t.Fatalf("message %q is not distinct", tc.msg)
		}
		seen[tc.msg] = true
	}
}
