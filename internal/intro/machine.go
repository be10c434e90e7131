// Package intro implements the orchestrator behind the rabbit intro: a timed
// state machine that walks the phases in order, arms exactly one timer per
// phase, and navigates away once the terminal phase has settled.
//
// The only external input is the primary activation. Every later transition
// comes from a timer armed on entry to the phase it leaves; a fire that no
// longer matches the current phase and timer generation is dropped.
package intro

import (
	"errors"
	"sync"

	"github.com/papapumpkin/warren/internal/phase"
	"github.com/papapumpkin/warren/internal/schedule"
	"github.com/papapumpkin/warren/internal/telemetry"
)

// Sentinel errors returned by the debug controls.
var (
	ErrClosed       = errors.New("intro: machine is closed")
	ErrUnknownPhase = errors.New("intro: unknown phase")
)

// Options configures a Machine.
type Options struct {
	// Scheduler arms phase timers. Defaults to the wall clock.
	Scheduler schedule.Scheduler
	// Navigator receives the single navigation. Defaults to a no-op.
	Navigator Navigator
	// Target is the route passed to Navigator. Defaults to DefaultTarget.
	Target string
	// Debug makes New return the debug Controls.
	Debug bool
	// OnChange, if set, is called after every phase change.
	OnChange func(Change)
	// Emitter records telemetry. A nil emitter records nothing.
	Emitter *telemetry.Emitter
	// SessionID tags telemetry events. Defaults to a fresh id.
	SessionID string
}

// Machine is the intro orchestrator. All state sits behind one mutex, so the
// machine has a single logical writer no matter which goroutine a timer
// fires on. Hooks run after the mutex is released, in the order their events
// happened, and may call back into the machine.
type Machine struct {
	mu       sync.Mutex
	sched    schedule.Scheduler
	slot     *schedule.Slot
	nav      Navigator
	target   string
	onChange func(Change)
	emitter  *telemetry.Emitter
	session  string

	phase     phase.Phase
	started   bool
	closed    bool
	navigated bool

	outbox      []func()
	dispatching bool
}

// New builds a machine in idle without arming anything or emitting events;
// call Start to enter idle. The debug Controls are returned only when
// opts.Debug is set, and nil otherwise.
func New(opts Options) (*Machine, *Controls) {
	if opts.Scheduler == nil {
		opts.Scheduler = schedule.NewReal()
	}
	if opts.Navigator == nil {
		opts.Navigator = discardNavigator{}
	}
	if opts.Target == "" {
		opts.Target = DefaultTarget
	}
	if opts.SessionID == "" {
		opts.SessionID = telemetry.NewSessionID()
	}

	m := &Machine{
		sched:    opts.Scheduler,
		slot:     schedule.NewSlot(opts.Scheduler),
		nav:      opts.Navigator,
		target:   opts.Target,
		onChange: opts.OnChange,
		emitter:  opts.Emitter,
		session:  opts.SessionID,
		phase:    phase.Idle,
	}

	if !opts.Debug {
		return m, nil
	}
	return m, m.controls()
}

// Start enters idle and runs its entry action. Calls after the first, or
// after Close, do nothing.
func (m *Machine) Start() {
	m.mu.Lock()
	if m.started || m.closed {
		m.mu.Unlock()
		return
	}
	m.started = true
	m.record(telemetry.KindIntroStart, "", map[string]string{"target": m.target})
	m.enter(phase.Idle, false)
	m.mu.Unlock()
	m.flush()
}

// Activate delivers the primary activation. It is a no-op unless the machine
// is idle.
func (m *Machine) Activate() {
	m.Advance(Activation{})
}

// Advance feeds one event to the machine and reports whether it caused a
// phase change. Activations outside idle and stale timer fires are ignored.
func (m *Machine) Advance(ev Event) bool {
	m.mu.Lock()
	moved := m.advance(ev)
	m.mu.Unlock()
	m.flush()
	return moved
}

// Close tears the machine down: the pending timer is cancelled and no
// transition or navigation happens afterwards. Close is idempotent.
func (m *Machine) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	m.slot.Cancel()
	m.record(telemetry.KindTeardown, m.phase.String(), nil)
	m.mu.Unlock()
	m.flush()
}

// Phase returns the current phase.
func (m *Machine) Phase() phase.Phase {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.phase
}

// Navigated reports whether the navigation has fired.
func (m *Machine) Navigated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.navigated
}

// Closed reports whether Close has been called.
func (m *Machine) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Target returns the route the machine navigates to.
func (m *Machine) Target() string {
	return m.target
}

// SessionID returns the identifier used in telemetry events.
func (m *Machine) SessionID() string {
	return m.session
}

// advance applies ev. Caller must hold m.mu.
func (m *Machine) advance(ev Event) bool {
	if m.closed || !m.started {
		return false
	}

	switch ev := ev.(type) {
	case Activation:
		if m.phase != phase.Idle {
			m.record(telemetry.KindActivationIgnored, m.phase.String(), nil)
			return false
		}
		m.enter(phase.Clicked, false)
		return true

	case TimerFired:
		if ev.Phase != m.phase || !m.slot.Consume(ev.Generation) {
			m.record(telemetry.KindTimerStale, m.phase.String(), map[string]any{
				"fired_for":  ev.Phase.String(),
				"generation": ev.Generation,
			})
			return false
		}
		next, ok := phase.Next(m.phase)
		if !ok {
			m.navigate("", false)
			return false
		}
		m.enter(next, false)
		return true
	}
	return false
}

// enter makes p current, runs its entry action, and arms its timer. The
// previous phase's timer is always cancelled first. Caller must hold m.mu.
func (m *Machine) enter(p phase.Phase, forced bool) {
	from := m.phase
	m.phase = p

	var gen uint64
	switch d, ok := phase.Delay(p); {
	case ok:
		gen = m.slot.Arm(d, m.fireFor(p))
	case p.Terminal():
		gen = m.slot.Arm(phase.NavigateDelay, m.fireFor(p))
	default:
		m.slot.Cancel()
		gen = m.slot.Generation()
	}

	c := Change{
		From:       from,
		To:         p,
		At:         m.sched.Now(),
		Action:     phase.EntryAction(p),
		Forced:     forced,
		Generation: gen,
	}
	m.record(telemetry.KindPhaseEnter, p.String(), map[string]any{
		"from":   from.String(),
		"action": c.Action.String(),
		"forced": forced,
	})
	if m.onChange != nil {
		onChange := m.onChange
		m.outbox = append(m.outbox, func() { onChange(c) })
	}
}

// navigate consumes the navigation intent. A second attempt is suppressed.
// Caller must hold m.mu.
func (m *Machine) navigate(target string, forced bool) bool {
	if target == "" {
		target = m.target
	}
	if m.navigated {
		m.record(telemetry.KindNavigateSuppressed, m.phase.String(), map[string]any{
			"target": target,
			"forced": forced,
		})
		return false
	}
	m.navigated = true
	m.record(telemetry.KindNavigate, m.phase.String(), map[string]any{
		"target": target,
		"forced": forced,
	})
	nav := m.nav
	m.outbox = append(m.outbox, func() { nav.Navigate(target) })
	return true
}

func (m *Machine) fireFor(p phase.Phase) func(gen uint64) {
	return func(gen uint64) {
		m.Advance(TimerFired{Phase: p, Generation: gen})
	}
}

// record queues a telemetry event. Caller must hold m.mu.
func (m *Machine) record(kind, ph string, data any) {
	if m.emitter == nil {
		return
	}
	evt := telemetry.Event{
		Timestamp: m.sched.Now(),
		Kind:      kind,
		SessionID: m.session,
		Phase:     ph,
		Data:      data,
	}
	em := m.emitter
	m.outbox = append(m.outbox, func() { _ = em.Emit(evt) })
}

// flush runs queued hooks outside the lock. Only one goroutine dispatches at
// a time; a nested or concurrent flush leaves its hooks to the active
// dispatcher, which keeps delivery in event order.
func (m *Machine) flush() {
	m.mu.Lock()
	if m.dispatching {
		m.mu.Unlock()
		return
	}
	m.dispatching = true
	for len(m.outbox) > 0 {
		batch := m.outbox
		m.outbox = nil
		m.mu.Unlock()
		for _, fn := range batch {
			fn()
		}
		m.mu.Lock()
	}
	m.dispatching = false
	m.mu.Unlock()
}
