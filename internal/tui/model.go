package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/warren/internal/intro"
)

// Screen identifies which screen the app is showing.
type Screen int

const (
	// ScreenIntro is the rabbit intro.
	ScreenIntro Screen = iota
	// ScreenHome is the screen the intro navigates to.
	ScreenHome
)

// footerHeight is the footer's border line plus its hint line.
const footerHeight = 2

// AppModel is the root model. It mounts one screen at a time and switches
// screens when it receives a MsgNavigate for a known target.
type AppModel struct {
	Screen Screen
	Intro  IntroModel
	Home   HomeModel
	Footer Footer
	Width  int
	Height int

	// Route is the target registered for the home screen.
	Route string
	// Navigations counts accepted navigations.
	Navigations int

	introOpts IntroOptions
	keys      KeyMap
}

// NewAppModel builds an app that starts on the intro.
func NewAppModel(opts IntroOptions) AppModel {
	if opts.Target == "" {
		opts.Target = intro.DefaultTarget
	}
	m := AppModel{
		Screen:    ScreenIntro,
		Intro:     NewIntro(opts),
		Home:      NewHome(),
		Route:     opts.Target,
		introOpts: opts,
		keys:      DefaultKeyMap(),
	}
	m.syncFooter()
	return m
}

// Init starts the intro.
func (m AppModel) Init() tea.Cmd {
	return m.Intro.Init()
}

// Update routes messages to the mounted screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			if m.Screen == ScreenIntro {
				m.Intro.Close()
			}
			return m, tea.Quit
		}

	case MsgNavigate:
		return m.navigate(msg.Target)
	}

	var cmd tea.Cmd
	switch m.Screen {
	case ScreenIntro:
		m.Intro, cmd = m.Intro.Update(msg)
	case ScreenHome:
		m.Home, cmd = m.Home.Update(msg)
	}
	return m, cmd
}

// navigate switches screens. Leaving the intro tears it down; an unknown
// target leaves the current screen mounted and is reported in the footer.
func (m AppModel) navigate(target string) (tea.Model, tea.Cmd) {
	switch target {
	case m.Route:
		if m.Screen == ScreenIntro {
			m.Intro.Close()
		}
		m.Screen = ScreenHome
		m.Footer.Notice = ""
	case RouteIntro:
		if m.Screen == ScreenIntro {
			m.Intro.Close()
		}
		opts := m.introOpts
		opts.SessionID = ""
		m.Intro = NewIntro(opts)
		m.Screen = ScreenIntro
		m.Footer.Notice = ""
		m.resize()
		m.Navigations++
		return m, m.Intro.Init()
	default:
		m.Footer.Notice = fmt.Sprintf("no screen for %q", target)
		return m, nil
	}
	m.Navigations++
	m.syncFooter()
	return m, nil
}

func (m *AppModel) resize() {
	if m.Width <= 0 || m.Height <= 0 {
		m.syncFooter()
		return
	}
	bodyHeight := max(m.Height-footerHeight, 1)
	m.Intro.SetSize(m.Width, bodyHeight)
	m.Home.Width = m.Width
	m.Home.Height = bodyHeight
	m.syncFooter()
}

func (m *AppModel) syncFooter() {
	m.Footer.Width = m.Width
	switch m.Screen {
	case ScreenIntro:
		m.Footer.Bindings = IntroFooterBindings(m.Intro.Keys())
	case ScreenHome:
		m.Footer.Bindings = HomeFooterBindings(m.Home.Keys())
	}
}

// View renders the mounted screen above the footer.
func (m AppModel) View() string {
	var body string
	switch m.Screen {
	case ScreenIntro:
		body = m.Intro.View()
	case ScreenHome:
		body = m.Home.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.Footer.View())
}
