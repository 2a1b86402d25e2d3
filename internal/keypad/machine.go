package keypad

import "sync"

// Machine owns the State of one session. Events are applied one at a time.
type Machine struct {
	mu    sync.Mutex
	state State
	eval  Evaluator
}

// NewMachine returns a cleared machine that evaluates with eval.
func NewMachine(eval Evaluator) *Machine {
	if eval == nil {
		eval = Local
	}
	return &Machine{eval: eval}
}

// Press applies ev using the machine's own evaluator.
func (m *Machine) Press(ev Event) State {
	return m.PressWith(m.eval, ev)
}

// PressWith applies ev using eval for this event only. HTTP handlers use it
// to evaluate under the request context.
func (m *Machine) PressWith(eval Evaluator, ev Event) State {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = Apply(m.state, ev, eval)
	return m.state
}

// Absorb replaces the state with an externally produced outcome.
func (m *Machine) Absorb(result float64, err error) State {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = Absorb(result, err)
	return m.state
}

// State returns a copy of the current state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}
