package keypad

import (
	"errors"
	"testing"

	"go-chi-calculator/internal/calculator"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		key  string
		want Event
	}{
		{key: "0", want: Digit('0')},
		{key: "9", want: Digit('9')},
		{key: ".", want: Digit('.')},
		{key: "+", want: Operator(calculator.Add)},
		{key: "-", want: Operator(calculator.Subtract)},
		{key: "*", want: Operator(calculator.Multiply)},
		{key: "/", want: Operator(calculator.Divide)},
		{key: "=", want: Equals()},
		{key: "C", want: Clear()},
		{key: "c", want: Clear()},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			got, err := ParseKey(tc.key)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
			if tc.key != "c" && got.Key() != tc.key {
				t.Fatalf("expected Key() %q, got %q", tc.key, got.Key())
			}
		})
	}
}

func TestParseKeyRejectsUnknownKeys(t *testing.T) {
	for _, key := range []string{"", "12", "x", "%", "×", "M+"} {
		if _, err := ParseKey(key); !errors.Is(err, ErrUnknownKey) {
			t.Fatalf("key %q: expected ErrUnknownKey, got %v", key, err)
		}
	}
}

func TestParseKeysIgnoresBlanks(t *testing.T) {
	events, err := ParseKeys(" 7 + 8 = ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Event{Digit('7'), Operator(calculator.Add), Digit('8'), Equals()}
	if len(events) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(events))
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("event %d: expected %+v, got %+v", i, want[i], events[i])
		}
	}

	if _, err := ParseKeys("7^2"); !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
}
