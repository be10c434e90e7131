package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	Activate key.Binding
	Teardown key.Binding
	Quit     key.Binding
	Back     key.Binding

	// Debug bindings, active only when the intro runs with debug controls.
	ForcePhase    key.Binding
	ForceNavigate key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Activate: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter/click", "follow the rabbit"),
		),
		Teardown: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "back to the rabbit"),
		),
		ForcePhase: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8"),
			key.WithHelp("0-8", "force phase"),
		),
		ForceNavigate: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "force navigate"),
		),
	}
}

// IntroKeyMap returns the bindings active during the intro. The debug
// bindings are disabled unless debug is set.
func IntroKeyMap(debug bool) KeyMap {
	km := DefaultKeyMap()
	km.Back.SetEnabled(false)
	km.ForcePhase.SetEnabled(debug)
	km.ForceNavigate.SetEnabled(debug)
	return km
}

// HomeKeyMap returns the bindings active on the home screen.
func HomeKeyMap() KeyMap {
	km := DefaultKeyMap()
	km.Activate.SetEnabled(false)
	km.Teardown.SetEnabled(false)
	km.ForcePhase.SetEnabled(false)
	km.ForceNavigate.SetEnabled(false)
	return km
}
