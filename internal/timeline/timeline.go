// Package timeline records when the intro entered each phase and compares
// runs against golden timelines. Offsets are milliseconds measured from the
// first recorded phase change, normally the activation that enters clicked.
package timeline

import (
	"fmt"
	"time"

	"github.com/papapumpkin/warren/internal/intro"
	"github.com/papapumpkin/warren/internal/phase"
)

// Entry is one phase change.
type Entry struct {
	Phase  string `toml:"phase"`
	AtMS   int64  `toml:"at_ms"`
	Forced bool   `toml:"forced,omitempty"`
}

// Navigation is the single navigation that ended the run.
type Navigation struct {
	Target string `toml:"target"`
	AtMS   int64  `toml:"at_ms"`
}

// Timeline is the observable history of one intro run.
type Timeline struct {
	Name       string      `toml:"name,omitempty"`
	Entries    []Entry     `toml:"entry"`
	Navigation *Navigation `toml:"navigation,omitempty"`
}

// Phases returns the phases in the order they were entered. Names that do
// not parse are reported as an error.
func (tl Timeline) Phases() ([]phase.Phase, error) {
	out := make([]phase.Phase, 0, len(tl.Entries))
	for i, e := range tl.Entries {
		p, err := phase.Parse(e.Phase)
		if err != nil {
			return nil, fmt.Errorf("timeline: entry %d: %w", i, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// Expected returns the timeline of an undisturbed run: one activation at
// offset zero, every phase entered on its own timer, and navigation to the
// default target once the terminal phase has settled.
func Expected() Timeline {
	tl := Timeline{Name: "organic"}
	for _, p := range phase.All() {
		if p == phase.Idle {
			continue
		}
		tl.Entries = append(tl.Entries, Entry{
			Phase: p.String(),
			AtMS:  phase.Offset(p).Milliseconds(),
		})
	}
	tl.Navigation = &Navigation{
		Target: intro.DefaultTarget,
		AtMS:   (phase.Offset(phase.Last) + phase.NavigateDelay).Milliseconds(),
	}
	return tl
}

// Mismatch is one difference between two timelines.
// Mismatch is one difference found by Compare. Path names the field, such
// as entry[3].at_ms.
type Mismatch struct {
	Path string
	Want string
	Got  string
}

// String formats the mismatch as "path: want X, got Y".
func (m Mismatch) String() string {
	return fmt.Sprintf("%s: want %s, got %s", m.Path, m.Want, m.Got)
}

// Compare reports every difference between want and got. Offsets within
// tolerance of each other are treated as equal. The name is ignored.
func Compare(want, got Timeline, tolerance time.Duration) []Mismatch {
	tol := tolerance.Milliseconds()
	var out []Mismatch

	n := max(len(want.Entries), len(got.Entries))
	for i := range n {
		path := fmt.Sprintf("entry[%d]", i)
		switch {
		case i >= len(got.Entries):
			out = append(out, Mismatch{Path: path, Want: want.Entries[i].Phase, Got: "nothing"})
			continue
		case i >= len(want.Entries):
			out = append(out, Mismatch{Path: path, Want: "nothing", Got: got.Entries[i].Phase})
			continue
		}

		w, g := want.Entries[i], got.Entries[i]
		if w.Phase != g.Phase {
			out = append(out, Mismatch{Path: path + ".phase", Want: w.Phase, Got: g.Phase})
		}
		if !within(w.AtMS, g.AtMS, tol) {
			out = append(out, Mismatch{Path: path + ".at_ms", Want: ms(w.AtMS), Got: ms(g.AtMS)})
		}
		if w.Forced != g.Forced {
			out = append(out, Mismatch{
				Path: path + ".forced",
				Want: fmt.Sprint(w.Forced),
				Got:  fmt.Sprint(g.Forced),
			})
		}
	}

	wn, gn := want.Navigation, got.Navigation
	switch {
	case wn == nil && gn == nil:
	case wn == nil:
		out = append(out, Mismatch{Path: "navigation", Want: "none", Got: gn.Target})
	case gn == nil:
		out = append(out, Mismatch{Path: "navigation", Want: wn.Target, Got: "none"})
	default:
		if wn.Target != gn.Target {
			out = append(out, Mismatch{Path: "navigation.target", Want: wn.Target, Got: gn.Target})
		}
		if !within(wn.AtMS, gn.AtMS, tol) {
			out = append(out, Mismatch{Path: "navigation.at_ms", Want: ms(wn.AtMS), Got: ms(gn.AtMS)})
		}
	}
	return out
}

func within(a, b, tol int64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func ms(v int64) string {
	return fmt.Sprintf("%dms", v)
}
