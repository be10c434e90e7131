package intro

import (
	"fmt"

	"github.com/papapumpkin/warren/internal/phase"
)

// Controls are debug hooks bound to one Machine. They let a test harness
// read or force the phase and trigger navigation without waiting on real
// timers. New returns them only in debug mode; once the machine is closed
// they no longer change anything.
type Controls struct {
	// Phase returns the current phase.
	Phase func() phase.Phase
	// ForcePhase enters p through the same path a natural transition takes:
	// the old timer is cancelled, p's entry action runs, and p's own timer
	// is armed.
	ForcePhase func(p phase.Phase) error
	// Activate delivers the primary activation.
	Activate func()
	// ForceNavigate navigates immediately. An empty target means the
	// machine's configured target. It reports whether navigation fired;
	// it never fires twice per machine.
	ForceNavigate func(target string) bool
}

func (m *Machine) controls() *Controls {
	return &Controls{
		Phase:         m.Phase,
		ForcePhase:    m.forcePhase,
		Activate:      m.Activate,
		ForceNavigate: m.forceNavigate,
	}
}

func (m *Machine) forcePhase(p phase.Phase) error {
	if !p.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownPhase, int(p))
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	m.started = true
	m.enter(p, true)
	m.mu.Unlock()
	m.flush()
	return nil
}

func (m *Machine) forceNavigate(target string) bool {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return false
	}
	fired := m.navigate(target, true)
	m.mu.Unlock()
	m.flush()
	return fired
}
