package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/papapumpkin/warren/internal/ansi"
	"github.com/papapumpkin/warren/internal/intro"
	"github.com/papapumpkin/warren/internal/layers"
	"github.com/papapumpkin/warren/internal/phase"
	"github.com/papapumpkin/warren/internal/timeline"
)

// Printer writes human-readable output for the headless commands.
// Color is used only when the destination is a terminal.
type Printer struct {
	w io.Writer
	c ansi.Palette
}

// New returns a printer that writes to stderr.
func New() *Printer {
	return NewWriter(os.Stderr)
}

// NewWriter returns a printer that writes to w.
func NewWriter(w io.Writer) *Printer {
	return &Printer{w: w, c: ansi.For(w)}
}

// Banner prints the warren banner.
func (p *Printer) Banner() {
	fmt.Fprintln(p.w, p.c.Bold+p.c.Magenta+"  ╔═══════════════════════════════════╗"+p.c.Reset)
	fmt.Fprintln(p.w, p.c.Bold+p.c.Magenta+"  ║"+p.c.Reset+p.c.Bold+"   WARREN  "+p.c.Dim+"down the rabbit hole"+p.c.Reset+p.c.Bold+p.c.Magenta+"    ║"+p.c.Reset)
	fmt.Fprintln(p.w, p.c.Bold+p.c.Magenta+"  ╚═══════════════════════════════════╝"+p.c.Reset)
	fmt.Fprintln(p.w)
}

// PhaseChange prints one transition. offset is the time since activation.
func (p *Printer) PhaseChange(c intro.Change, offset time.Duration) {
	color := p.c.Cyan
	if c.To.Terminal() {
		color = p.c.Green
	}
	tag := ""
	if c.Forced {
		tag = p.c.Yellow + " (forced)" + p.c.Reset
	}
	action := ""
	if c.Action != phase.ActionNone {
		action = p.c.Dim + " " + c.Action.String() + p.c.Reset
	}
	fmt.Fprintf(p.w, p.c.Dim+"%7s"+p.c.Reset+" "+color+p.c.Bold+"▶ %-15s"+p.c.Reset+"%s%s\n",
		formatOffset(offset), c.To, action, tag)
}

// Navigate prints the navigation and its offset.
func (p *Printer) Navigate(target string, offset time.Duration) {
	fmt.Fprintf(p.w, p.c.Dim+"%7s"+p.c.Reset+" "+p.c.Green+p.c.Bold+"✓ navigate"+p.c.Reset+" → %s\n", formatOffset(offset), target)
}

// Teardown prints an early teardown in the given phase.
func (p *Printer) Teardown(at phase.Phase) {
	fmt.Fprintf(p.w, p.c.Yellow+p.c.Bold+"■ teardown"+p.c.Reset+p.c.Dim+" in %s"+p.c.Reset+"\n", at)
}

// Error prints an error message.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.w, p.c.Red+p.c.Bold+"error: "+p.c.Reset+"%s\n", msg)
}

// Info prints a dim informational line.
func (p *Printer) Info(msg string) {
	fmt.Fprintf(p.w, p.c.Dim+"%s"+p.c.Reset+"\n", msg)
}

// LayerTable prints the mounted layer set for every phase.
func (p *Printer) LayerTable(rows []layers.Row) {
	fmt.Fprintln(p.w, p.c.Bold+fmt.Sprintf("%-15s %s", "PHASE", "LAYERS")+p.c.Reset)
	for _, r := range rows {
		names := make([]string, len(r.Layers))
		for i, l := range r.Layers {
			names[i] = l.String()
		}
		fmt.Fprintf(p.w, p.c.Blue+"%-15s"+p.c.Reset+" %s\n", r.Phase, strings.Join(names, ", "))
	}
}

// VerifyResult prints the outcome of comparing a run against a golden
// timeline.
func (p *Printer) VerifyResult(name string, ms []timeline.Mismatch) {
	if name == "" {
		name = "timeline"
	}
	if len(ms) == 0 {
		fmt.Fprintf(p.w, p.c.Green+p.c.Bold+"✓ %s"+p.c.Reset+" matches\n", name)
		return
	}
	fmt.Fprintf(p.w, p.c.Red+p.c.Bold+"✗ %s"+p.c.Reset+" %d mismatch(es):\n", name, len(ms))
	for _, m := range ms {
		fmt.Fprintf(p.w, "  "+p.c.Red+"• "+p.c.Reset+"%s\n", m)
	}
}

func formatOffset(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
