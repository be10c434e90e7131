package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/warren/internal/schedule"
)

// msgTimerFire is delivered when a timer armed through a teaScheduler
// elapses. The id names the timer within its scheduler; a stopped id is
// dropped.
type msgTimerFire struct {
	sched *teaScheduler
	id    uint64
}

// teaScheduler implements schedule.Scheduler on the bubbletea event loop.
// AfterFunc records a tea.Tick command instead of starting a goroutine timer,
// and the callback runs inside Update when the tick message comes back, so
// the intro machine is only ever driven from the program goroutine.
type teaScheduler struct {
	mu      sync.Mutex
	now     func() time.Time
	nextID  uint64
	pending map[uint64]func()
	cmds    []tea.Cmd
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{
		now:     time.Now,
		pending: make(map[uint64]func()),
	}
}

func (s *teaScheduler) Now() time.Time {
	return s.now()
}

func (s *teaScheduler) AfterFunc(d time.Duration, f func()) schedule.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.pending[id] = f
	s.cmds = append(s.cmds, tea.Tick(d, func(time.Time) tea.Msg {
		return msgTimerFire{sched: s, id: id}
	}))
	return &teaTimer{sched: s, id: id}
}

// Fire runs the callback for id if it is still pending.
func (s *teaScheduler) Fire(id uint64) bool {
	s.mu.Lock()
	f, ok := s.pending[id]
	delete(s.pending, id)
	s.mu.Unlock()
	if !ok {
		return false
	}
	f()
	return true
}

// Drain returns the tick commands recorded since the last call.
func (s *teaScheduler) Drain() []tea.Cmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	cmds := s.cmds
	s.cmds = nil
	return cmds
}

// StopAll drops every pending timer. Ticks already in flight still arrive
// but find nothing to run.
func (s *teaScheduler) StopAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.pending)
	s.cmds = nil
}

// Pending returns the number of timers that have not fired or been stopped.
func (s *teaScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

type teaTimer struct {
	sched *teaScheduler
	id    uint64
}

func (t *teaTimer) Stop() bool {
	t.sched.mu.Lock()
	defer t.sched.mu.Unlock()
	_, ok := t.sched.pending[t.id]
	delete(t.sched.pending, t.id)
	return ok
}

var _ schedule.Scheduler = (*teaScheduler)(nil)
