package tui

import (
	"slices"
	"testing"
	"time"
)

// pendingIDs returns the ids of timers that have not fired or been stopped.
func pendingIDs(s *teaScheduler) []uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]uint64, 0, len(s.pending))
	for id := range s.pending {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func TestTeaSchedulerAfterFunc(t *testing.T) {
	t.Parallel()

	s := newTeaScheduler()
	fired := 0
	s.AfterFunc(time.Second, func() { fired++ })

	if got := s.Pending(); got != 1 {
		t.Fatalf("Pending() = %d, want 1", got)
	}
	if cmds := s.Drain(); len(cmds) != 1 || cmds[0] == nil {
		t.Fatalf("Drain() = %d commands, want one tick", len(cmds))
	}
	if cmds := s.Drain(); len(cmds) != 0 {
		t.Errorf("second Drain() = %d commands, want 0", len(cmds))
	}

	id := pendingIDs(s)[0]
	if !s.Fire(id) || fired != 1 {
		t.Fatalf("Fire(%d) did not run the callback", id)
	}
	if s.Fire(id) || fired != 1 {
		t.Error("a timer fired twice")
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d after fire, want 0", s.Pending())
	}
}

func TestTeaSchedulerStop(t *testing.T) {
	t.Parallel()

	s := newTeaScheduler()
	fired := false
	timer := s.AfterFunc(time.Second, func() { fired = true })
	id := pendingIDs(s)[0]

	if !timer.Stop() {
		t.Error("Stop() on a pending timer = false, want true")
	}
	if timer.Stop() {
		t.Error("second Stop() = true, want false")
	}
	if s.Fire(id) || fired {
		t.Error("a stopped timer fired")
	}
}

func TestTeaSchedulerStopAll(t *testing.T) {
	t.Parallel()

	s := newTeaScheduler()
	count := 0
	for range 3 {
		s.AfterFunc(time.Millisecond, func() { count++ })
	}
	ids := pendingIDs(s)
	s.StopAll()

	for _, id := range ids {
		s.Fire(id)
	}
	if count != 0 {
		t.Errorf("%d callbacks ran after StopAll", count)
	}
	if len(s.Drain()) != 0 {
		t.Error("StopAll should discard undelivered ticks")
	}
}

func TestTeaSchedulerNow(t *testing.T) {
	t.Parallel()

	s := newTeaScheduler()
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }
	if !s.Now().Equal(fixed) {
		t.Errorf("Now() = %v, want %v", s.Now(), fixed)
	}
}
