package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/warren/internal/intro"
	"github.com/papapumpkin/warren/internal/layers"
	"github.com/papapumpkin/warren/internal/particles"
	"github.com/papapumpkin/warren/internal/phase"
	"github.com/papapumpkin/warren/internal/telemetry"
)

// Default intro canvas, used until the first WindowSizeMsg arrives.
const (
	DefaultIntroWidth  = 62
	DefaultIntroHeight = 19
	DefaultFPS         = 30
)

// IntroOptions configures one mounted intro.
type IntroOptions struct {
	Target    string
	Particles int
	Seed      uint64
	Debug     bool
	FPS       int
	Width     int
	Height    int
	Emitter   *telemetry.Emitter
	SessionID string
}

// introState is shared by every copy of an IntroModel. Machine hooks write
// to it from inside Update.
type introState struct {
	frame      int
	phaseFrame int
	phaseSpan  time.Duration
	navs       []string
}

// IntroModel is the intro screen. It owns the phase machine, a scheduler
// that arms phase timers as tea commands, and the particle field.
type IntroModel struct {
	opts     IntroOptions
	machine  *intro.Machine
	controls *intro.Controls
	sched    *teaScheduler
	field    *particles.Field
	state    *introState
	keys     KeyMap
}

// NewIntro builds an unstarted intro. Init starts the machine.
func NewIntro(opts IntroOptions) IntroModel {
	if opts.FPS <= 0 {
		opts.FPS = DefaultFPS
	}
	if opts.Width <= 0 {
		opts.Width = DefaultIntroWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultIntroHeight
	}

	st := &introState{}
	sched := newTeaScheduler()
	machine, controls := intro.New(intro.Options{
		Scheduler: sched,
		Navigator: intro.NavigatorFunc(func(target string) {
			st.navs = append(st.navs, target)
		}),
		Target:    opts.Target,
		Debug:     opts.Debug,
		Emitter:   opts.Emitter,
		SessionID: opts.SessionID,
		OnChange: func(c intro.Change) {
			st.phaseFrame = st.frame
			st.phaseSpan = phaseSpan(c.To)
		},
	})

	return IntroModel{
		opts:     opts,
		machine:  machine,
		controls: controls,
		sched:    sched,
		field:    particles.NewField(opts.Particles, opts.Seed, particles.DefaultRanges()),
		state:    st,
		keys:     IntroKeyMap(opts.Debug),
	}
}

// phaseSpan is how long p lasts before its timer fires.
func phaseSpan(p phase.Phase) time.Duration {
	if d, ok := phase.Delay(p); ok {
		return d
	}
	if p.Terminal() {
		return phase.NavigateDelay
	}
	return 0
}

// Init enters idle, starts the frame clock, and populates the particle field
// in the background so the first frame renders without it.
func (m IntroModel) Init() tea.Cmd {
	m.machine.Start()
	return tea.Batch(m.frameTick(), m.populate(), m.effects())
}

func (m IntroModel) frameTick() tea.Cmd {
	owner := m.state
	return tea.Tick(time.Second/time.Duration(m.opts.FPS), func(t time.Time) tea.Msg {
		return msgFrame{owner: owner, at: t}
	})
}

func (m IntroModel) populate() tea.Cmd {
	f := m.field
	return func() tea.Msg {
		f.Populate()
		f.Wait()
		return msgFieldReady{field: f}
	}
}

// effects turns what the machine did during this update into commands: the
// tick for any newly armed timer and a MsgNavigate per navigation.
func (m IntroModel) effects() tea.Cmd {
	cmds := m.sched.Drain()
	for _, target := range m.state.navs {
		cmds = append(cmds, func() tea.Msg { return MsgNavigate{Target: target} })
	}
	m.state.navs = nil
	return tea.Batch(cmds...)
}

// Update handles input, timer fires, and frame ticks.
func (m IntroModel) Update(msg tea.Msg) (IntroModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.machine.Activate()
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Activate):
			m.machine.Activate()
		case key.Matches(msg, m.keys.Teardown):
			m.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.ForcePhase) && m.controls != nil:
			if p, err := phase.Parse(msg.String()); err == nil {
				_ = m.controls.ForcePhase(p)
			}
		case key.Matches(msg, m.keys.ForceNavigate) && m.controls != nil:
			m.controls.ForceNavigate("")
		}

	case msgTimerFire:
		if msg.sched == m.sched {
			m.sched.Fire(msg.id)
		}

	case msgFrame:
		if msg.owner != m.state || m.machine.Closed() {
			return m, nil
		}
		m.state.frame++
		return m, tea.Batch(m.frameTick(), m.effects())
	}

	return m, m.effects()
}

// SetSize resizes the canvas.
func (m *IntroModel) SetSize(width, height int) {
	m.opts.Width = max(width, 1)
	m.opts.Height = max(height, 1)
}

// Close tears the intro down. No transition or navigation happens afterwards.
func (m IntroModel) Close() {
	m.machine.Close()
	m.sched.StopAll()
}

// Phase returns the current phase.
func (m IntroModel) Phase() phase.Phase {
	return m.machine.Phase()
}

// Closed reports whether the intro has been torn down.
func (m IntroModel) Closed() bool {
	return m.machine.Closed()
}

// Keys returns the bindings active on the intro screen.
func (m IntroModel) Keys() KeyMap {
	return m.keys
}

func (m IntroModel) frameDuration() time.Duration {
	return time.Second / time.Duration(m.opts.FPS)
}

// progress is the fraction of the current phase that has elapsed, by frame
// count.
func (m IntroModel) progress() float64 {
	if m.state.phaseSpan <= 0 {
		return 0
	}
	spent := time.Duration(m.state.frame-m.state.phaseFrame) * m.frameDuration()
	return min(1, float64(spent)/float64(m.state.phaseSpan))
}

func (m IntroModel) scene() scene {
	p := m.machine.Phase()
	return scene{
		width:     m.opts.Width,
		height:    m.opts.Height,
		phase:     p,
		layers:    layers.For(p),
		frame:     m.state.frame,
		progress:  m.progress(),
		elapsed:   time.Duration(m.state.frame) * m.frameDuration(),
		particles: m.field.Specs(),
		hud:       m.opts.Debug,
	}
}

// View renders the mounted layers for the current phase.
func (m IntroModel) View() string {
	return m.scene().render().String()
}
