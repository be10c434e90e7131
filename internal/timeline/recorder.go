package timeline

import (
	"sync"
	"time"

	"github.com/papapumpkin/warren/internal/intro"
)

// Recorder builds a Timeline from a machine's hooks. Pass OnChange as the
// machine's change hook and the recorder itself as its Navigator (or call
// Navigate from one). It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	now     func() time.Time
	origin  time.Time
	started bool
	entries []Entry
	nav     *Navigation
}

// NewRecorder returns a recorder that timestamps navigation with now, which
// should be the machine scheduler's clock.
func NewRecorder(now func() time.Time) *Recorder {
	if now == nil {
		now = time.Now
	}
	return &Recorder{now: now}
}

// OnChange records c. The unforced entry into idle at start is skipped.
func (r *Recorder) OnChange(c intro.Change) {
	if c.Initial() {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{
		Phase:  c.To.String(),
		AtMS:   r.offset(c.At),
		Forced: c.Forced,
	})
}

// Navigate records the navigation.
func (r *Recorder) Navigate(target string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nav = &Navigation{Target: target, AtMS: r.offset(r.now())}
}

// Timeline returns a copy of what has been recorded so far.
func (r *Recorder) Timeline() Timeline {
	r.mu.Lock()
	defer r.mu.Unlock()
	tl := Timeline{Entries: append([]Entry(nil), r.entries...)}
	if r.nav != nil {
		nav := *r.nav
		tl.Navigation = &nav
	}
	return tl
}

// offset converts t to milliseconds since the first recorded event. Caller
// must hold r.mu.
func (r *Recorder) offset(t time.Time) int64 {
	if !r.started {
		r.started = true
		r.origin = t
	}
	return t.Sub(r.origin).Milliseconds()
}

var _ intro.Navigator = (*Recorder)(nil)
